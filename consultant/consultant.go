// Package consultant wraps the external language-model call behind a single
// request/response function. Failures never propagate: callers always get
// text back, worst case a fixed apology.
package consultant

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sashabaranov/go-openai"
)

const apology = "An error occurred while connecting to our AI Architect. Please try again later."

const systemPrompt = `You are 'MILEDESIGNS AI', a world-class senior consultant for MILEDESIGNS Design & Build.
You specialize in residential and commercial construction, architectural design, material selection, and sustainable building practices.
Keep your answers professional, technical but accessible, and always prioritize safety and local building codes.
If asked about costs, provide general ranges but emphasize that an official quote requires a site visit.
Mention that MILEDESIGNS Design & Build offers these services.`

// ChatMessage is one turn of the consultation history.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type Module struct {
	client *openai.Client
}

// NewModule builds the consultant. An empty API key yields a module that
// always answers with the apology.
func NewModule(apiKey string) *Module {
	if apiKey == "" {
		log.Println("OPENAI_API_KEY not set, AI consultant will be disabled")
		return &Module{}
	}
	return &Module{client: openai.NewClient(apiKey)}
}

func (m *Module) RegisterRoutes(router *gin.Engine) {
	router.POST("/api/consultant", m.advise)
}

// GetAdvice answers a visitor's question with the conversation history as
// context. It never returns an error; any failure degrades to the apology.
func (m *Module) GetAdvice(ctx context.Context, prompt string, history []ChatMessage) string {
	if m.client == nil {
		return apology
	}

	messages := make([]openai.ChatCompletionMessage, 0, len(history)+2)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: systemPrompt,
	})
	for _, h := range history {
		role := openai.ChatMessageRoleAssistant
		if strings.EqualFold(h.Role, "user") {
			role = openai.ChatMessageRoleUser
		}
		messages = append(messages, openai.ChatCompletionMessage{Role: role, Content: h.Content})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: prompt,
	})

	resp, err := m.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       openai.GPT4oMini,
		Messages:    messages,
		Temperature: 0.7,
		TopP:        0.9,
		MaxTokens:   1000,
	})
	if err != nil {
		log.Printf("consultant request failed: %v", err)
		return apology
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "I'm sorry, I couldn't generate a response. Please try again."
	}
	return resp.Choices[0].Message.Content
}

func (m *Module) advise(c *gin.Context) {
	var req struct {
		Prompt  string        `json:"prompt"`
		History []ChatMessage `json:"history"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Prompt) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "prompt is required"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"advice": m.GetAdvice(c.Request.Context(), req.Prompt, req.History),
	})
}
