// Package admin is the password-gated dashboard API: it exposes the editing
// session's working state, per-collection CRUD, image handling, publish,
// reset, and sub-admin management over JSON.
package admin

import (
	"errors"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"miledesigns/auth"
	"miledesigns/cache"
	"miledesigns/content"
	"miledesigns/editor"
	"miledesigns/site"
)

type Module struct {
	auth    *auth.Module
	session *editor.Session

	loadOnce sync.Mutex
	loaded   bool
}

func NewModule(authModule *auth.Module, session *editor.Session) *Module {
	session.OnPublish(func() {
		if err := cache.Clear(site.CacheName); err != nil {
			log.Printf("clearing site cache: %v", err)
		}
	})
	return &Module{auth: authModule, session: session}
}

func (a *Module) RegisterRoutes(router *gin.Engine) {
	router.POST("/admin/login", a.login)
	router.POST("/admin/logout", a.logout)
	router.GET("/admin/me", a.me)

	api := router.Group("/admin/api")
	api.Use(a.auth.RequireAuth, a.ensureLoaded)
	{
		api.GET("/state", a.state)
		api.GET("/drafts/:tab", a.draft)

		api.PUT("/projects", a.upsertProject)
		api.DELETE("/projects/:id", a.deleteProject)
		api.PUT("/services", a.upsertService)
		api.DELETE("/services/:id", a.deleteService)
		api.PUT("/testimonials", a.upsertTestimonial)
		api.DELETE("/testimonials/:id", a.deleteTestimonial)
		api.PUT("/social-links", a.upsertSocialLink)
		api.DELETE("/social-links/:id", a.deleteSocialLink)
		api.PUT("/team-members", a.upsertTeamMember)
		api.DELETE("/team-members/:id", a.deleteTeamMember)
		api.PUT("/vlogs", a.upsertVlogEntry)
		api.DELETE("/vlogs/:id", a.deleteVlogEntry)

		api.PUT("/contact-details", a.setContactDetails)
		api.PUT("/about", a.setAboutContent)
		api.PUT("/profile", a.setAdminProfile)

		api.POST("/images", a.encodeImage)
		api.POST("/images/batch", a.encodeImageBatch)

		api.POST("/publish", a.publish)
		api.POST("/reset", a.resetAll)

		api.POST("/subadmins", a.addSubAdmin)
		api.POST("/subadmins/:id/toggle", a.toggleSubAdmin)
		api.DELETE("/subadmins/:id", a.removeSubAdmin)

		api.POST("/password", a.updatePassword)
	}
}

// ensureLoaded lazily seeds the editing session from the store on the first
// authenticated request.
func (a *Module) ensureLoaded(c *gin.Context) {
	a.loadOnce.Lock()
	defer a.loadOnce.Unlock()
	if a.loaded {
		c.Next()
		return
	}
	if err := a.session.Load(c.Request.Context()); err != nil {
		c.AbortWithStatusJSON(http.StatusBadGateway, gin.H{"error": "failed to load site content: " + err.Error()})
		return
	}
	a.loaded = true
	c.Next()
}

func (a *Module) login(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
		return
	}

	if err := a.auth.SignIn(c, req.Email, req.Password); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"email": req.Email})
}

func (a *Module) logout(c *gin.Context) {
	a.auth.SignOut(c)
	c.JSON(http.StatusOK, gin.H{"message": "signed out"})
}

func (a *Module) me(c *gin.Context) {
	email := a.auth.CurrentUserEmail(c)
	if email == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not signed in"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"email": email})
}

func (a *Module) state(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"content":           a.session.Working(),
		"hasUnsavedChanges": a.session.HasUnsavedChanges(),
	})
}

// draft hands out a pre-filled draft for the requested tab, with a fresh id
// and collection defaults.
func (a *Module) draft(c *gin.Context) {
	switch c.Param("tab") {
	case "projects":
		c.JSON(http.StatusOK, editor.NewProjectDraft())
	case "services":
		c.JSON(http.StatusOK, editor.NewServiceDraft())
	case "testimonials":
		c.JSON(http.StatusOK, editor.NewTestimonialDraft())
	case "social-links":
		c.JSON(http.StatusOK, editor.NewSocialLinkDraft())
	case "team-members":
		c.JSON(http.StatusOK, editor.NewTeamMemberDraft())
	case "vlogs":
		c.JSON(http.StatusOK, editor.NewVlogEntryDraft())
	default:
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown tab"})
	}
}

func (a *Module) upsertProject(c *gin.Context) {
	var item content.Project
	if err := c.ShouldBindJSON(&item); err != nil || item.ID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project"})
		return
	}
	a.session.UpsertProject(item)
	a.saved(c, "Project saved")
}

func (a *Module) deleteProject(c *gin.Context) {
	a.respondDelete(c, a.session.DeleteProject(c.Param("id")), "Project deleted")
}

func (a *Module) upsertService(c *gin.Context) {
	var item content.Service
	if err := c.ShouldBindJSON(&item); err != nil || item.ID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid service"})
		return
	}
	a.session.UpsertService(item)
	a.saved(c, "Service saved")
}

func (a *Module) deleteService(c *gin.Context) {
	a.respondDelete(c, a.session.DeleteService(c.Param("id")), "Service deleted")
}

func (a *Module) upsertTestimonial(c *gin.Context) {
	var item content.Testimonial
	if err := c.ShouldBindJSON(&item); err != nil || item.ID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid testimonial"})
		return
	}
	if item.Rating < 1 || item.Rating > 5 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "rating must be between 1 and 5"})
		return
	}
	a.session.UpsertTestimonial(item)
	a.saved(c, "Testimonial saved")
}

func (a *Module) deleteTestimonial(c *gin.Context) {
	a.respondDelete(c, a.session.DeleteTestimonial(c.Param("id")), "Testimonial deleted")
}

func (a *Module) upsertSocialLink(c *gin.Context) {
	var item content.SocialLink
	if err := c.ShouldBindJSON(&item); err != nil || item.ID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid social link"})
		return
	}
	a.session.UpsertSocialLink(item)
	a.saved(c, "Social link saved")
}

func (a *Module) deleteSocialLink(c *gin.Context) {
	a.respondDelete(c, a.session.DeleteSocialLink(c.Param("id")), "Social link deleted")
}

func (a *Module) upsertTeamMember(c *gin.Context) {
	var item content.TeamMember
	if err := c.ShouldBindJSON(&item); err != nil || item.ID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid team member"})
		return
	}
	a.session.UpsertTeamMember(item)
	a.saved(c, "Team member saved")
}

func (a *Module) deleteTeamMember(c *gin.Context) {
	a.respondDelete(c, a.session.DeleteTeamMember(c.Param("id")), "Team member deleted")
}

func (a *Module) upsertVlogEntry(c *gin.Context) {
	var item content.VlogEntry
	if err := c.ShouldBindJSON(&item); err != nil || item.ID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid vlog entry"})
		return
	}
	if err := a.session.UpsertVlogEntry(item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	a.saved(c, "Vlog entry saved")
}

func (a *Module) deleteVlogEntry(c *gin.Context) {
	a.respondDelete(c, a.session.DeleteVlogEntry(c.Param("id")), "Vlog entry deleted")
}

func (a *Module) setContactDetails(c *gin.Context) {
	var details content.ContactDetails
	if err := c.ShouldBindJSON(&details); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid contact details"})
		return
	}
	a.session.SetContactDetails(details)
	a.saved(c, "Contact details saved")
}

func (a *Module) setAboutContent(c *gin.Context) {
	var about content.AboutContent
	if err := c.ShouldBindJSON(&about); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid about content"})
		return
	}
	a.session.SetAboutContent(about)
	a.saved(c, "About content saved")
}

func (a *Module) setAdminProfile(c *gin.Context) {
	var profile content.AdminProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid profile"})
		return
	}
	a.session.SetAdminProfile(profile)
	a.saved(c, "Profile saved")
}

func (a *Module) encodeImage(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no file uploaded"})
		return
	}
	defer file.Close()

	data, err := readUpload(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read upload"})
		return
	}

	dataURL, err := editor.EncodeImage(header.Filename, data)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"dataUrl": dataURL})
}

// encodeImageBatch handles multi-image fields (home backgrounds,
// certificates): every file is processed independently, failures are
// reported per file, and the caller appends successes to the existing list.
func (a *Module) encodeImageBatch(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no files uploaded"})
		return
	}

	headers := form.File["files"]
	if len(headers) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no files uploaded"})
		return
	}

	files := make(map[string][]byte, len(headers))
	order := make([]string, 0, len(headers))
	for _, header := range headers {
		f, err := header.Open()
		if err != nil {
			continue
		}
		data, err := readUpload(f)
		f.Close()
		if err != nil {
			continue
		}
		files[header.Filename] = data
		order = append(order, header.Filename)
	}

	c.JSON(http.StatusOK, gin.H{"results": editor.EncodeImageBatch(files, order)})
}

func (a *Module) publish(c *gin.Context) {
	if err := a.session.Publish(c.Request.Context()); err != nil {
		if errors.Is(err, editor.ErrPublishInFlight) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "publish failed: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":           "All changes published",
		"hasUnsavedChanges": a.session.HasUnsavedChanges(),
	})
}

func (a *Module) resetAll(c *gin.Context) {
	if err := a.session.ResetAll(c.Request.Context()); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "reset failed: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Content reset to defaults"})
}

func (a *Module) addSubAdmin(c *gin.Context) {
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	sub, err := a.session.AddSubAdmin(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, editor.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"subAdmin": sub, "message": "Sub-admin added"})
}

func (a *Module) toggleSubAdmin(c *gin.Context) {
	sub, err := a.session.ToggleSubAdmin(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, editor.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	// Keep the login in step with the profile flag.
	if err := a.auth.SetUserEnabled(c.Request.Context(), sub.Email, sub.Enabled); err != nil {
		log.Printf("syncing login enabled flag for %s: %v", sub.Email, err)
	}
	c.JSON(http.StatusOK, gin.H{"subAdmin": sub})
}

func (a *Module) removeSubAdmin(c *gin.Context) {
	if err := a.session.RemoveSubAdmin(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, editor.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Sub-admin removed. Their login remains until revoked."})
}

func (a *Module) updatePassword(c *gin.Context) {
	var req struct {
		NewPassword string `json:"newPassword"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	email := a.auth.CurrentUserEmail(c)
	if err := a.auth.UpdatePassword(c.Request.Context(), email, req.NewPassword); err != nil {
		if errors.Is(err, auth.ErrWeakPassword) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "password update failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password updated"})
}

func (a *Module) saved(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{
		"message":           message,
		"hasUnsavedChanges": a.session.HasUnsavedChanges(),
	})
}

func (a *Module) respondDelete(c *gin.Context, err error, message string) {
	if err != nil {
		if errors.Is(err, editor.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	a.saved(c, message)
}

func readUpload(f multipart.File) ([]byte, error) {
	// Read one byte past the cap so EncodeImage can reject oversized files
	// with a proper message instead of silently truncating them.
	return io.ReadAll(io.LimitReader(f, editor.MaxImageBytes+1))
}
