package editor

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"miledesigns/content"
)

type fakeIdentity struct {
	calls []string
	err   error
}

func (f *fakeIdentity) CreateUserFromAdmin(_ context.Context, email, _ string) error {
	f.calls = append(f.calls, email)
	return f.err
}

func subAdminSession(t *testing.T) (*Session, *fakeIdentity, *content.Store) {
	t.Helper()
	store, _ := setupStore(t)
	identity := &fakeIdentity{}
	s := NewSession(store, identity)
	require.NoError(t, s.Load(context.Background()))
	return s, identity, store
}

func TestAddSubAdmin_ProvisionsAndWritesThrough(t *testing.T) {
	s, identity, store := subAdminSession(t)
	ctx := context.Background()

	sub, err := s.AddSubAdmin(ctx, "  Dana  ", " dana@example.com ", "longenough")
	require.NoError(t, err)
	assert.Equal(t, "Dana", sub.Name)
	assert.Equal(t, "dana@example.com", sub.Email)
	assert.True(t, sub.Enabled)
	assert.NotEmpty(t, sub.ID)
	assert.Equal(t, []string{"dana@example.com"}, identity.calls)

	// Persisted immediately, no Publish involved.
	profile, err := store.AdminProfile(ctx)
	require.NoError(t, err)
	require.Len(t, profile.SubAdmins, 1)
	assert.Equal(t, sub, profile.SubAdmins[0])

	// And the baseline was rebased so the eager write reads as saved.
	assert.False(t, s.HasUnsavedChanges())
}

func TestAddSubAdmin_ValidationRejectsBeforeIdentityCall(t *testing.T) {
	s, identity, _ := subAdminSession(t)
	ctx := context.Background()

	cases := []struct {
		name, email, password string
	}{
		{"", "x@example.com", "longenough"},
		{"Name", "", "longenough"},
		{"Name", "x@example.com", ""},
		{"Name", "x@example.com", "short"},
	}
	for _, tc := range cases {
		_, err := s.AddSubAdmin(ctx, tc.name, tc.email, tc.password)
		assert.ErrorIs(t, err, ErrValidation)
	}
	assert.Empty(t, identity.calls, "rejected input must never reach the identity layer")
}

func TestAddSubAdmin_EmailCollisionsAreCaseInsensitive(t *testing.T) {
	s, identity, _ := subAdminSession(t)
	ctx := context.Background()

	adminEmail := s.Working().AdminProfile.Email
	_, err := s.AddSubAdmin(ctx, "Imposter", strings.ToUpper(adminEmail), "longenough")
	assert.ErrorIs(t, err, ErrValidation)
	assert.Empty(t, identity.calls)

	_, err = s.AddSubAdmin(ctx, "First", "dup@example.com", "longenough")
	require.NoError(t, err)

	_, err = s.AddSubAdmin(ctx, "Second", "DUP@Example.Com", "longenough")
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, []string{"dup@example.com"}, identity.calls)
}

func TestAddSubAdmin_IdentityFailureLeavesProfileAlone(t *testing.T) {
	s, identity, store := subAdminSession(t)
	ctx := context.Background()

	identity.err = errors.New("provisioning down")
	_, err := s.AddSubAdmin(ctx, "Dana", "dana@example.com", "longenough")
	require.Error(t, err)

	assert.Empty(t, s.Working().AdminProfile.SubAdmins)
	profile, storeErr := store.AdminProfile(ctx)
	require.NoError(t, storeErr)
	assert.Empty(t, profile.SubAdmins)
}

func TestAddSubAdmin_EagerWriteKeepsOtherEditsDirty(t *testing.T) {
	s, _, _ := subAdminSession(t)
	ctx := context.Background()

	project := s.Working().Projects[0]
	project.Title = "Still Pending"
	s.UpsertProject(project)
	require.True(t, s.HasUnsavedChanges())

	_, err := s.AddSubAdmin(ctx, "Dana", "dana@example.com", "longenough")
	require.NoError(t, err)

	// The project edit is still unpublished; only the profile portion of
	// the baseline moved.
	assert.True(t, s.HasUnsavedChanges())
	assert.Equal(t, "Still Pending", s.Working().Projects[0].Title)
}

func TestToggleSubAdmin(t *testing.T) {
	s, _, store := subAdminSession(t)
	ctx := context.Background()

	sub, err := s.AddSubAdmin(ctx, "Dana", "dana@example.com", "longenough")
	require.NoError(t, err)

	toggled, err := s.ToggleSubAdmin(ctx, sub.ID)
	require.NoError(t, err)
	assert.False(t, toggled.Enabled)

	profile, err := store.AdminProfile(ctx)
	require.NoError(t, err)
	require.Len(t, profile.SubAdmins, 1)
	assert.False(t, profile.SubAdmins[0].Enabled)

	toggled, err = s.ToggleSubAdmin(ctx, sub.ID)
	require.NoError(t, err)
	assert.True(t, toggled.Enabled)

	_, err = s.ToggleSubAdmin(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestToggleSubAdmin_LeavesSnapshotsAlone(t *testing.T) {
	s, _, _ := subAdminSession(t)
	ctx := context.Background()

	sub, err := s.AddSubAdmin(ctx, "Dana", "dana@example.com", "longenough")
	require.NoError(t, err)

	snapshot := s.Working()
	_, err = s.ToggleSubAdmin(ctx, sub.ID)
	require.NoError(t, err)

	// Snapshots taken before the toggle keep the state they were taken
	// with; the flip happens on a fresh slice.
	assert.True(t, snapshot.AdminProfile.SubAdmins[0].Enabled)
	assert.False(t, s.Working().AdminProfile.SubAdmins[0].Enabled)
}

func TestRemoveSubAdmin(t *testing.T) {
	s, _, store := subAdminSession(t)
	ctx := context.Background()

	first, err := s.AddSubAdmin(ctx, "First", "first@example.com", "longenough")
	require.NoError(t, err)
	second, err := s.AddSubAdmin(ctx, "Second", "second@example.com", "longenough")
	require.NoError(t, err)

	require.NoError(t, s.RemoveSubAdmin(ctx, first.ID))

	profile, err := store.AdminProfile(ctx)
	require.NoError(t, err)
	require.Len(t, profile.SubAdmins, 1)
	assert.Equal(t, second.ID, profile.SubAdmins[0].ID)
	assert.False(t, s.HasUnsavedChanges())

	assert.ErrorIs(t, s.RemoveSubAdmin(ctx, first.ID), ErrNotFound)
}
