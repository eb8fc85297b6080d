// Package editor holds the admin dashboard's in-memory working copy of the
// site aggregate: per-collection CRUD against the working copy only, dirty
// tracking by snapshot comparison, and a single Publish that writes the
// whole aggregate back through the content store.
package editor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"miledesigns/content"
)

var (
	ErrPublishInFlight = errors.New("a publish is already in progress")
	ErrNotFound        = errors.New("item not found")
	ErrValidation      = errors.New("validation failed")
)

// IdentityProvider is the slice of the identity layer the editor needs for
// sub-admin provisioning.
type IdentityProvider interface {
	CreateUserFromAdmin(ctx context.Context, email, password string) error
}

// Session is one operator's editing session. All mutations apply to the
// working copy; nothing reaches the store until Publish, with the single
// deliberate exception of sub-admin changes (see subadmins.go).
type Session struct {
	store    *content.Store
	identity IdentityProvider

	mu         sync.Mutex
	working    content.SiteContentData
	baseline   string
	publishing bool
	onPublish  func()
}

func NewSession(store *content.Store, identity IdentityProvider) *Session {
	return &Session{store: store, identity: identity}
}

// OnPublish registers a hook run after every successful Publish or Reset,
// so the presentation layer can refetch.
func (s *Session) OnPublish(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onPublish = fn
}

// Load seeds the working copy from the store and records the saved baseline.
func (s *Session) Load(ctx context.Context) error {
	data, err := s.store.GetAll(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.working = data
	s.baseline = serialize(data)
	return nil
}

// Working returns a copy of the current working aggregate.
func (s *Session) Working() content.SiteContentData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.working
}

// HasUnsavedChanges reports whether the working copy diverges from the last
// saved snapshot. Full structural equality, not an edit counter: reverting
// a change by hand flips it back to false.
func (s *Session) HasUnsavedChanges() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return serialize(s.working) != s.baseline
}

// Publish writes the whole working aggregate through the store. Only one
// publish may be in flight at a time. On failure the working copy and the
// baseline are left untouched so the operator can retry.
func (s *Session) Publish(ctx context.Context) error {
	s.mu.Lock()
	if s.publishing {
		s.mu.Unlock()
		return ErrPublishInFlight
	}
	s.publishing = true
	data := s.working
	hook := s.onPublish
	s.mu.Unlock()

	err := s.store.SaveAll(ctx, data)

	s.mu.Lock()
	s.publishing = false
	if err == nil {
		s.baseline = serialize(data)
	}
	s.mu.Unlock()

	if err != nil {
		return err
	}
	if hook != nil {
		hook()
	}
	return nil
}

// ResetAll overwrites the store with the default catalog and reloads the
// working copy from it. The in-memory state is not reconciled incrementally;
// a full reload is the contract.
func (s *Session) ResetAll(ctx context.Context) error {
	if err := s.store.Reset(ctx); err != nil {
		return err
	}
	if err := s.Load(ctx); err != nil {
		return err
	}

	s.mu.Lock()
	hook := s.onPublish
	s.mu.Unlock()
	if hook != nil {
		hook()
	}
	return nil
}

type identified interface {
	ItemID() string
}

// upsert replaces the item carrying the same id in place, keeping its list
// position and leaving every other entry untouched; an unseen id appends.
func upsert[T identified](list []T, item T) []T {
	for i := range list {
		if list[i].ItemID() == item.ItemID() {
			out := make([]T, len(list))
			copy(out, list)
			out[i] = item
			return out
		}
	}
	out := make([]T, 0, len(list)+1)
	out = append(out, list...)
	return append(out, item)
}

func remove[T identified](list []T, id string) ([]T, bool) {
	out := make([]T, 0, len(list))
	found := false
	for _, item := range list {
		if item.ItemID() == id {
			found = true
			continue
		}
		out = append(out, item)
	}
	return out, found
}

func (s *Session) UpsertProject(p content.Project) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.working.Projects = upsert(s.working.Projects, p)
}

func (s *Session) DeleteProject(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	list, ok := remove(s.working.Projects, id)
	if !ok {
		return fmt.Errorf("%w: project %q", ErrNotFound, id)
	}
	s.working.Projects = list
	return nil
}

func (s *Session) UpsertService(sv content.Service) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.working.Services = upsert(s.working.Services, sv)
}

func (s *Session) DeleteService(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	list, ok := remove(s.working.Services, id)
	if !ok {
		return fmt.Errorf("%w: service %q", ErrNotFound, id)
	}
	s.working.Services = list
	return nil
}

func (s *Session) UpsertTestimonial(t content.Testimonial) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.working.Testimonials = upsert(s.working.Testimonials, t)
}

func (s *Session) DeleteTestimonial(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	list, ok := remove(s.working.Testimonials, id)
	if !ok {
		return fmt.Errorf("%w: testimonial %q", ErrNotFound, id)
	}
	s.working.Testimonials = list
	return nil
}

func (s *Session) UpsertSocialLink(l content.SocialLink) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.working.SocialLinks = upsert(s.working.SocialLinks, l)
}

func (s *Session) DeleteSocialLink(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	list, ok := remove(s.working.SocialLinks, id)
	if !ok {
		return fmt.Errorf("%w: social link %q", ErrNotFound, id)
	}
	s.working.SocialLinks = list
	return nil
}

func (s *Session) UpsertTeamMember(m content.TeamMember) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.working.TeamMembers = upsert(s.working.TeamMembers, m)
}

func (s *Session) DeleteTeamMember(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	list, ok := remove(s.working.TeamMembers, id)
	if !ok {
		return fmt.Errorf("%w: team member %q", ErrNotFound, id)
	}
	s.working.TeamMembers = list
	return nil
}

// UpsertVlogEntry validates and canonicalizes the entry's URL before the
// working copy is touched; a bad URL rejects the whole submit.
func (s *Session) UpsertVlogEntry(v content.VlogEntry) error {
	normalized, err := NormalizeVlogURL(v.URL)
	if err != nil {
		return err
	}
	v.URL = normalized

	s.mu.Lock()
	defer s.mu.Unlock()
	s.working.VlogEntries = upsert(s.working.VlogEntries, v)
	return nil
}

func (s *Session) DeleteVlogEntry(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	list, ok := remove(s.working.VlogEntries, id)
	if !ok {
		return fmt.Errorf("%w: vlog entry %q", ErrNotFound, id)
	}
	s.working.VlogEntries = list
	return nil
}

// Singleton records are always edited as a whole; there is no add or delete.

func (s *Session) SetContactDetails(details content.ContactDetails) {
	s.mu.Lock()
	defer s.mu.Unlock()
	details.ID = content.ContactDetailsID
	s.working.ContactDetails = details
}

func (s *Session) SetAboutContent(about content.AboutContent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	about.ID = content.AboutContentID
	s.working.AboutContent = about
}

// SetAdminProfile replaces the profile's scalar fields only. The sub-admin
// list is managed through the eager write-through path in subadmins.go.
func (s *Session) SetAdminProfile(profile content.AdminProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	profile.ID = content.AdminProfileID
	profile.SubAdmins = s.working.AdminProfile.SubAdmins
	s.working.AdminProfile = profile
}

func serialize(data content.SiteContentData) string {
	payload, err := json.Marshal(data)
	if err != nil {
		// The aggregate is plain data; this cannot happen in practice.
		return ""
	}
	return string(payload)
}
