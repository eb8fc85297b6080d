package editor

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"miledesigns/content"
)

// Sub-admin changes are the one asymmetry in the save model: they write
// through to the store immediately instead of waiting for Publish, because
// adding one also provisions a login in the identity layer, a side effect
// that cannot be staged. The baseline is rebased so the eager write does
// not show up as an unsaved change.

const minSubAdminPassword = 8

// AddSubAdmin validates, provisions the login, then persists the updated
// profile. Every validation failure aborts before the identity layer is
// touched. A store failure after provisioning leaves a login that is not
// listed in the profile; that inconsistency is surfaced to the caller
// rather than silently retried.
func (s *Session) AddSubAdmin(ctx context.Context, name, email, password string) (content.SubAdmin, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)

	if name == "" || email == "" || password == "" {
		return content.SubAdmin{}, fmt.Errorf("%w: name, email, and password are required", ErrValidation)
	}
	if len(password) < minSubAdminPassword {
		return content.SubAdmin{}, fmt.Errorf("%w: password must be at least %d characters", ErrValidation, minSubAdminPassword)
	}

	s.mu.Lock()
	profile := s.working.AdminProfile
	s.mu.Unlock()

	if strings.EqualFold(email, profile.Email) {
		return content.SubAdmin{}, fmt.Errorf("%w: %s is the main admin email", ErrValidation, email)
	}
	for _, sub := range profile.SubAdmins {
		if strings.EqualFold(sub.Email, email) {
			return content.SubAdmin{}, fmt.Errorf("%w: a sub-admin with email %s already exists", ErrValidation, email)
		}
	}

	if err := s.identity.CreateUserFromAdmin(ctx, email, password); err != nil {
		return content.SubAdmin{}, fmt.Errorf("provisioning sub-admin login: %w", err)
	}

	sub := content.SubAdmin{ID: newID(), Name: name, Email: email, Enabled: true}

	s.mu.Lock()
	s.working.AdminProfile.SubAdmins = append(s.working.AdminProfile.SubAdmins, sub)
	profile = s.working.AdminProfile
	s.mu.Unlock()

	if err := s.writeProfileThrough(ctx, profile); err != nil {
		return sub, fmt.Errorf("login for %s was created but the profile update failed: %w", email, err)
	}
	return sub, nil
}

// ToggleSubAdmin flips the enabled flag and writes through immediately.
// The slice is rebuilt rather than flipped in place: snapshots handed out
// by Working share the backing array and may be read without the lock.
func (s *Session) ToggleSubAdmin(ctx context.Context, id string) (content.SubAdmin, error) {
	s.mu.Lock()
	subs := make([]content.SubAdmin, len(s.working.AdminProfile.SubAdmins))
	copy(subs, s.working.AdminProfile.SubAdmins)

	var toggled *content.SubAdmin
	for i := range subs {
		if subs[i].ID == id {
			subs[i].Enabled = !subs[i].Enabled
			toggled = &subs[i]
			break
		}
	}
	if toggled == nil {
		s.mu.Unlock()
		return content.SubAdmin{}, fmt.Errorf("%w: sub-admin %q", ErrNotFound, id)
	}
	sub := *toggled
	s.working.AdminProfile.SubAdmins = subs
	profile := s.working.AdminProfile
	s.mu.Unlock()

	if err := s.writeProfileThrough(ctx, profile); err != nil {
		return sub, err
	}
	return sub, nil
}

// RemoveSubAdmin drops the entry from the profile and writes through. The
// provisioned login is not deleted; it simply stops being listed.
func (s *Session) RemoveSubAdmin(ctx context.Context, id string) error {
	s.mu.Lock()
	subs := s.working.AdminProfile.SubAdmins
	kept := make([]content.SubAdmin, 0, len(subs))
	found := false
	for _, sub := range subs {
		if sub.ID == id {
			found = true
			continue
		}
		kept = append(kept, sub)
	}
	if !found {
		s.mu.Unlock()
		return fmt.Errorf("%w: sub-admin %q", ErrNotFound, id)
	}
	s.working.AdminProfile.SubAdmins = kept
	profile := s.working.AdminProfile
	s.mu.Unlock()

	return s.writeProfileThrough(ctx, profile)
}

// writeProfileThrough persists the profile eagerly and rebases the saved
// baseline's adminProfile portion, so other pending edits keep their dirty
// state while the profile itself reads as saved.
func (s *Session) writeProfileThrough(ctx context.Context, profile content.AdminProfile) error {
	if err := s.store.SaveAdminProfile(ctx, profile); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.baseline == "" {
		return nil
	}
	var base content.SiteContentData
	if err := json.Unmarshal([]byte(s.baseline), &base); err != nil {
		return nil
	}
	base.AdminProfile = profile
	s.baseline = serialize(base)
	return nil
}
