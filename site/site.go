// Package site is the public read path: it renders whatever the content
// store currently holds and exposes no write operations.
package site

import (
	"bytes"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	htmlrenderer "github.com/yuin/goldmark/renderer/html"

	"miledesigns/cache"
	"miledesigns/content"
)

// CacheName is the file-cache key for the public payload; the admin module
// clears it after every publish and reset.
const CacheName = "site"

const cacheMaxAge = 10 * time.Minute

// markdown renderer configured with Goldmark and useful extensions
var md = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		extension.Linkify,
	),
	goldmark.WithRendererOptions(
		htmlrenderer.WithUnsafe(),
	),
)

type Module struct {
	store *content.Store
}

func NewModule(store *content.Store) *Module {
	return &Module{store: store}
}

func (s *Module) RegisterRoutes(router *gin.Engine) {
	router.GET("/api/site", cache.Middleware(CacheName, cacheMaxAge), s.siteContent)
}

// PublicAbout is AboutContent plus the markdown fields rendered to HTML.
type PublicAbout struct {
	content.AboutContent
	IntroHTML         string `json:"introHtml"`
	BodyHTML          string `json:"bodyHtml"`
	RotateBackgrounds bool   `json:"rotateBackgrounds"`
}

// PublicView is the aggregate as the public site sees it: disabled social
// links are filtered out and the admin profile is never exposed.
type PublicView struct {
	Projects       []content.Project      `json:"projects"`
	Services       []content.Service      `json:"services"`
	Testimonials   []content.Testimonial  `json:"testimonials"`
	SocialLinks    []content.SocialLink   `json:"socialLinks"`
	TeamMembers    []content.TeamMember   `json:"teamMembers"`
	VlogEntries    []content.VlogEntry    `json:"vlogEntries"`
	ContactDetails content.ContactDetails `json:"contactDetails"`
	About          PublicAbout            `json:"about"`
}

func (s *Module) siteContent(c *gin.Context) {
	data, err := s.store.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "content is temporarily unavailable"})
		return
	}

	c.JSON(http.StatusOK, BuildPublicView(data))
}

// BuildPublicView derives the public payload from a normalized aggregate.
func BuildPublicView(data content.SiteContentData) PublicView {
	enabled := make([]content.SocialLink, 0, len(data.SocialLinks))
	for _, link := range data.SocialLinks {
		if link.Enabled {
			enabled = append(enabled, link)
		}
	}

	testimonials := make([]content.Testimonial, len(data.Testimonials))
	copy(testimonials, data.Testimonials)
	for i := range testimonials {
		if testimonials[i].AvatarURL == "" {
			// Placeholder keyed by id, so the same author keeps the
			// same face across reloads.
			testimonials[i].AvatarURL = "https://i.pravatar.cc/150?u=" + testimonials[i].ID
		}
	}

	return PublicView{
		Projects:       data.Projects,
		Services:       data.Services,
		Testimonials:   testimonials,
		SocialLinks:    enabled,
		TeamMembers:    data.TeamMembers,
		VlogEntries:    data.VlogEntries,
		ContactDetails: data.ContactDetails,
		About: PublicAbout{
			AboutContent:      data.AboutContent,
			IntroHTML:         renderMarkdown(data.AboutContent.IntroText),
			BodyHTML:          renderMarkdown(data.AboutContent.BodyText),
			RotateBackgrounds: len(data.AboutContent.HomeBackgroundImages) >= 2,
		},
	}
}

func renderMarkdown(source string) string {
	var buf bytes.Buffer
	if err := md.Convert([]byte(source), &buf); err != nil {
		return source
	}
	return buf.String()
}
