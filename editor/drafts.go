package editor

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"miledesigns/content"
)

// MaxImageBytes caps uploads converted to inline data URLs.
const MaxImageBytes = 5 * 1024 * 1024

// Draft constructors mint a fresh id and collection-appropriate defaults.
// Ids are never reused: deletion drops the entity, a new add gets a new id.

func NewProjectDraft() content.Project {
	return content.Project{
		ID:       newID(),
		Category: content.CategoryResidential,
		Year:     time.Now().Year(),
		Tags:     []string{},
		Features: []string{},
		Gallery:  []string{},
	}
}

func NewServiceDraft() content.Service {
	return content.Service{ID: newID()}
}

func NewTestimonialDraft() content.Testimonial {
	return content.Testimonial{ID: newID(), Rating: 5}
}

func NewSocialLinkDraft() content.SocialLink {
	return content.SocialLink{ID: newID(), Platform: content.PlatformWebsite, Enabled: true}
}

func NewTeamMemberDraft() content.TeamMember {
	return content.TeamMember{ID: newID()}
}

func NewVlogEntryDraft() content.VlogEntry {
	return content.VlogEntry{ID: newID()}
}

func newID() string {
	return uuid.NewString()
}

// NormalizeVlogURL trims the input, defaults the scheme to https, and
// requires the result to parse as an absolute URL with a host. The
// canonical string form is returned.
func NormalizeVlogURL(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", fmt.Errorf("%w: url is empty", ErrValidation)
	}

	lower := strings.ToLower(s)
	if !strings.HasPrefix(lower, "http://") && !strings.HasPrefix(lower, "https://") {
		s = "https://" + s
	}

	parsed, err := url.Parse(s)
	if err != nil {
		return "", fmt.Errorf("%w: invalid url: %v", ErrValidation, err)
	}
	if parsed.Host == "" {
		return "", fmt.Errorf("%w: url has no host", ErrValidation)
	}
	return parsed.String(), nil
}

// EncodeImage validates an uploaded file and converts it to an inline
// data URL. Anything that is not an image, or is over the size cap,
// is rejected without touching the draft.
func EncodeImage(name string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("%w: %s is empty", ErrValidation, name)
	}
	if len(data) > MaxImageBytes {
		return "", fmt.Errorf("%w: %s exceeds the 5 MB limit", ErrValidation, name)
	}

	mime := http.DetectContentType(data)
	if !strings.HasPrefix(mime, "image/") {
		return "", fmt.Errorf("%w: %s is not an image (%s)", ErrValidation, name, mime)
	}

	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

// ImageBatchResult reports one file of a multi-image upload.
type ImageBatchResult struct {
	Name    string `json:"name"`
	DataURL string `json:"dataUrl,omitempty"`
	Error   string `json:"error,omitempty"`
}

// EncodeImageBatch processes each file independently: failures are skipped
// and reported per file, successes are returned in order for the caller to
// append to the existing list, never to replace it.
func EncodeImageBatch(files map[string][]byte, order []string) []ImageBatchResult {
	results := make([]ImageBatchResult, 0, len(order))
	for _, name := range order {
		data, ok := files[name]
		if !ok {
			continue
		}
		encoded, err := EncodeImage(name, data)
		if err != nil {
			results = append(results, ImageBatchResult{Name: name, Error: err.Error()})
			continue
		}
		results = append(results, ImageBatchResult{Name: name, DataURL: encoded})
	}
	return results
}
