package content

// ProjectCategory is the closed set of portfolio categories.
type ProjectCategory string

const (
	CategoryResidential ProjectCategory = "Residential"
	CategoryCommercial  ProjectCategory = "Commercial"
	CategoryIndustrial  ProjectCategory = "Industrial"
)

// SocialPlatform is the closed set of supported social networks.
type SocialPlatform string

const (
	PlatformLinkedIn  SocialPlatform = "LinkedIn"
	PlatformInstagram SocialPlatform = "Instagram"
	PlatformFacebook  SocialPlatform = "Facebook"
	PlatformYouTube   SocialPlatform = "YouTube"
	PlatformTikTok    SocialPlatform = "TikTok"
	PlatformWhatsApp  SocialPlatform = "WhatsApp"
	PlatformWebsite   SocialPlatform = "Website"
)

type Project struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Category    ProjectCategory `json:"category"`
	Location    string          `json:"location"`
	ImageURL    string          `json:"imageUrl"`
	Year        int             `json:"year"`
	Description string          `json:"description"`
	Tags        []string        `json:"tags"`
	Features    []string        `json:"features"`
	Gallery     []string        `json:"gallery"`
}

type Service struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	ImageURL    string `json:"imageUrl"`
}

type Testimonial struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	ProjectType string `json:"projectType"`
	Feedback    string `json:"feedback"`
	Rating      int    `json:"rating"`
	AvatarURL   string `json:"avatarUrl,omitempty"`
}

type SocialLink struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Platform SocialPlatform `json:"platform"`
	URL      string         `json:"url"`
	Enabled  bool           `json:"enabled"`
}

type TeamMember struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Bio      string `json:"bio"`
	ImageURL string `json:"imageUrl"`
}

type VlogEntry struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Topic        string `json:"topic"`
	Duration     string `json:"duration"`
	ThumbnailURL string `json:"thumbnailUrl"`
	URL          string `json:"url"`
}

type ContactDetails struct {
	ID                      string   `json:"id"`
	Location                string   `json:"location"`
	PhoneNumbers            []string `json:"phoneNumbers"`
	InquiryEmail            string   `json:"inquiryEmail"`
	InquiryWhatsAppNumber   string   `json:"inquiryWhatsAppNumber"`
	ShowFloatingWhatsApp    bool     `json:"showFloatingWhatsApp"`
	FloatingWhatsAppMessage string   `json:"floatingWhatsAppMessage"`
}

type AboutStat struct {
	Value       string `json:"value"`
	Suffix      string `json:"suffix"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

type AboutContent struct {
	ID                   string      `json:"id"`
	Badge                string      `json:"badge"`
	HeadingPrefix        string      `json:"headingPrefix"`
	HeadingHighlight     string      `json:"headingHighlight"`
	HeadingSuffix        string      `json:"headingSuffix"`
	IntroText            string      `json:"introText"`
	BodyText             string      `json:"bodyText"`
	Stats                []AboutStat `json:"stats"`
	HomeBackgroundImages []string    `json:"homeBackgroundImages"`
	CertificateImages    []string    `json:"certificateImages"`
	ImageURL             string      `json:"imageUrl"`
	VisionText           string      `json:"visionText"`
	CTAText              string      `json:"ctaText"`
	CTAButtonText        string      `json:"ctaButtonText"`
}

type SubAdmin struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Enabled bool   `json:"enabled"`
}

type AdminProfile struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	AvatarURL string     `json:"avatarUrl"`
	SubAdmins []SubAdmin `json:"subAdmins"`
}

// ItemID keys the collection entities for generic id-based helpers.

func (p Project) ItemID() string     { return p.ID }
func (s Service) ItemID() string     { return s.ID }
func (t Testimonial) ItemID() string { return t.ID }
func (l SocialLink) ItemID() string  { return l.ID }
func (m TeamMember) ItemID() string  { return m.ID }
func (v VlogEntry) ItemID() string   { return v.ID }

// SiteContentData is the aggregate persisted as one unit in the singleton
// content row. Field order matters for snapshot serialization: both the
// store and the editor serialize this struct, so equal aggregates always
// produce equal JSON.
type SiteContentData struct {
	Projects       []Project      `json:"projects"`
	Services       []Service      `json:"services"`
	Testimonials   []Testimonial  `json:"testimonials"`
	SocialLinks    []SocialLink   `json:"socialLinks"`
	TeamMembers    []TeamMember   `json:"teamMembers"`
	VlogEntries    []VlogEntry    `json:"vlogEntries"`
	ContactDetails ContactDetails `json:"contactDetails"`
	AboutContent   AboutContent   `json:"aboutContent"`
	AdminProfile   AdminProfile   `json:"adminProfile"`
}
