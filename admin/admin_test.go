package admin

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"miledesigns/auth"
	"miledesigns/content"
	"miledesigns/editor"
	"miledesigns/models"
)

const (
	testAdminEmail    = "admin@miledesigns.com"
	testAdminPassword = "super-secret"
)

// testServer wires the dashboard exactly like main does, minus the public
// site, and keeps the signed-in cookies for follow-up requests.
type testServer struct {
	router  *gin.Engine
	cookies []*http.Cookie
	store   *content.Store
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.SiteContent{}))

	authModule := auth.NewModule(db, nil)
	require.NoError(t, authModule.EnsureAdmin(context.Background(), testAdminEmail, testAdminPassword))

	store := content.NewStore(db)
	session := editor.NewSession(store, authModule)

	router := gin.New()
	router.Use(sessions.Sessions("test-session", cookie.NewStore([]byte("test-secret"))))
	NewModule(authModule, session).RegisterRoutes(router)

	return &testServer{router: router, store: store}
}

func (ts *testServer) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for _, c := range ts.cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)
	return w
}

func (ts *testServer) login(t *testing.T) {
	t.Helper()
	w := ts.do(t, http.MethodPost, "/admin/login", gin.H{"email": testAdminEmail, "password": testAdminPassword})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	ts.cookies = w.Result().Cookies()
	require.NotEmpty(t, ts.cookies)
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]json.RawMessage {
	t.Helper()
	out := map[string]json.RawMessage{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func (ts *testServer) dirty(t *testing.T) bool {
	t.Helper()
	w := ts.do(t, http.MethodGet, "/admin/api/state", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var flag bool
	require.NoError(t, json.Unmarshal(decodeBody(t, w)["hasUnsavedChanges"], &flag))
	return flag
}

func TestDashboard_RequiresAuth(t *testing.T) {
	ts := newTestServer(t)

	for _, probe := range []struct{ method, path string }{
		{http.MethodGet, "/admin/api/state"},
		{http.MethodPut, "/admin/api/projects"},
		{http.MethodPost, "/admin/api/publish"},
		{http.MethodPost, "/admin/api/subadmins"},
	} {
		w := ts.do(t, probe.method, probe.path, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", probe.method, probe.path)
	}
}

func TestLogin_RejectsBadCredentials(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(t, http.MethodPost, "/admin/login", gin.H{"email": testAdminEmail, "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = ts.do(t, http.MethodGet, "/admin/me", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginAndMe(t *testing.T) {
	ts := newTestServer(t)
	ts.login(t)

	w := ts.do(t, http.MethodGet, "/admin/me", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), testAdminEmail)

	w = ts.do(t, http.MethodPost, "/admin/logout", nil)
	require.Equal(t, http.StatusOK, w.Code)
	ts.cookies = w.Result().Cookies()

	w = ts.do(t, http.MethodGet, "/admin/me", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// Full edit-then-publish round trip: add a project, verify the dirty flag,
// publish, and confirm the store serves the new aggregate.
func TestEditPublishRoundTrip(t *testing.T) {
	ts := newTestServer(t)
	ts.login(t)
	ctx := context.Background()

	assert.False(t, ts.dirty(t))

	w := ts.do(t, http.MethodGet, "/admin/api/drafts/projects", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var draft content.Project
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &draft))
	require.NotEmpty(t, draft.ID)

	draft.Title = "Harborfront Pavilion"
	draft.Description = "Mixed-use waterfront build"
	draft.Year = 2025
	w = ts.do(t, http.MethodPut, "/admin/api/projects", draft)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.True(t, ts.dirty(t))

	// Not visible in the store until publish.
	stored, err := ts.store.Projects(ctx)
	require.NoError(t, err)
	assert.Len(t, stored, len(content.Defaults().Projects))

	w = ts.do(t, http.MethodPost, "/admin/api/publish", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.False(t, ts.dirty(t))

	stored, err = ts.store.Projects(ctx)
	require.NoError(t, err)
	require.Len(t, stored, len(content.Defaults().Projects)+1)
	assert.Equal(t, "Harborfront Pavilion", stored[len(stored)-1].Title)
}

func TestDeleteTestimonial(t *testing.T) {
	ts := newTestServer(t)
	ts.login(t)

	w := ts.do(t, http.MethodDelete, "/admin/api/testimonials/t1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, ts.dirty(t))

	w = ts.do(t, http.MethodDelete, "/admin/api/testimonials/t1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpsertValidation(t *testing.T) {
	ts := newTestServer(t)
	ts.login(t)

	// Missing id.
	w := ts.do(t, http.MethodPut, "/admin/api/projects", gin.H{"title": "No ID"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Rating out of range.
	w = ts.do(t, http.MethodPut, "/admin/api/testimonials", gin.H{"id": "t9", "rating": 6})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Unparseable vlog URL.
	w = ts.do(t, http.MethodPut, "/admin/api/vlogs", gin.H{"id": "v9", "title": "Bad", "url": "ht tp://x"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// None of the rejects dirtied the session.
	assert.False(t, ts.dirty(t))
}

func TestContactDetailsUpdate(t *testing.T) {
	ts := newTestServer(t)
	ts.login(t)

	details := content.Defaults().ContactDetails
	details.Location = "12 Marina Blvd"
	w := ts.do(t, http.MethodPut, "/admin/api/contact-details", details)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, ts.dirty(t))

	w = ts.do(t, http.MethodGet, "/admin/api/state", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var state struct {
		Content content.SiteContentData `json:"content"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &state))
	assert.Equal(t, "12 Marina Blvd", state.Content.ContactDetails.Location)
}

func TestReset(t *testing.T) {
	ts := newTestServer(t)
	ts.login(t)

	w := ts.do(t, http.MethodDelete, "/admin/api/services/arch-design", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, ts.dirty(t))

	w = ts.do(t, http.MethodPost, "/admin/api/reset", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, ts.dirty(t))

	services, err := ts.store.Services(context.Background())
	require.NoError(t, err)
	assert.Equal(t, content.Defaults().Services, services)
}

func multipartUpload(t *testing.T, field string, files map[string][]byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for name, data := range files {
		part, err := mw.CreateFormFile(field, name)
		require.NoError(t, err)
		_, err = part.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func smallPNG(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 2, 2))))
	return buf.Bytes()
}

func (ts *testServer) upload(t *testing.T, path string, body *bytes.Buffer, contentType string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, body)
	req.Header.Set("Content-Type", contentType)
	for _, c := range ts.cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)
	return w
}

func TestImageUpload(t *testing.T) {
	ts := newTestServer(t)
	ts.login(t)

	body, contentType := multipartUpload(t, "file", map[string][]byte{"hero.png": smallPNG(t)})
	w := ts.upload(t, "/admin/api/images", body, contentType)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), "data:image/png;base64,")

	body, contentType = multipartUpload(t, "file", map[string][]byte{"notes.txt": []byte("not an image")})
	w = ts.upload(t, "/admin/api/images", body, contentType)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestImageBatchUpload(t *testing.T) {
	ts := newTestServer(t)
	ts.login(t)

	body, contentType := multipartUpload(t, "files", map[string][]byte{
		"one.png": smallPNG(t),
		"two.txt": []byte("text file"),
	})
	w := ts.upload(t, "/admin/api/images/batch", body, contentType)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Results []editor.ImageBatchResult `json:"results"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Results, 2)

	byName := map[string]editor.ImageBatchResult{}
	for _, r := range resp.Results {
		byName[r.Name] = r
	}
	assert.NotEmpty(t, byName["one.png"].DataURL)
	assert.NotEmpty(t, byName["two.txt"].Error)
}

func TestSubAdminEndpoints(t *testing.T) {
	ts := newTestServer(t)
	ts.login(t)
	ctx := context.Background()

	w := ts.do(t, http.MethodPost, "/admin/api/subadmins", gin.H{
		"name": "Dana", "email": "dana@miledesigns.com", "password": "longenough",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp struct {
		SubAdmin content.SubAdmin `json:"subAdmin"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.SubAdmin.ID)

	// Eager write-through: profile persists without a publish, flag stays clean.
	assert.False(t, ts.dirty(t))
	profile, err := ts.store.AdminProfile(ctx)
	require.NoError(t, err)
	require.Len(t, profile.SubAdmins, 1)

	// Duplicate email is a validation error, not a gateway failure.
	w = ts.do(t, http.MethodPost, "/admin/api/subadmins", gin.H{
		"name": "Copy", "email": "DANA@miledesigns.com", "password": "longenough",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = ts.do(t, http.MethodPost, fmt.Sprintf("/admin/api/subadmins/%s/toggle", resp.SubAdmin.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	profile, err = ts.store.AdminProfile(ctx)
	require.NoError(t, err)
	assert.False(t, profile.SubAdmins[0].Enabled)

	w = ts.do(t, http.MethodDelete, "/admin/api/subadmins/"+resp.SubAdmin.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	profile, err = ts.store.AdminProfile(ctx)
	require.NoError(t, err)
	assert.Empty(t, profile.SubAdmins)
}

func TestUpdatePasswordEndpoint(t *testing.T) {
	ts := newTestServer(t)
	ts.login(t)

	w := ts.do(t, http.MethodPost, "/admin/api/password", gin.H{"newPassword": "short"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = ts.do(t, http.MethodPost, "/admin/api/password", gin.H{"newPassword": "a-much-stronger-one"})
	require.Equal(t, http.StatusOK, w.Code)

	// Old password no longer signs in, the new one does.
	ts.cookies = nil
	w = ts.do(t, http.MethodPost, "/admin/login", gin.H{"email": testAdminEmail, "password": testAdminPassword})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	w = ts.do(t, http.MethodPost, "/admin/login", gin.H{"email": testAdminEmail, "password": "a-much-stronger-one"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDraftEndpoint_UnknownTab(t *testing.T) {
	ts := newTestServer(t)
	ts.login(t)

	w := ts.do(t, http.MethodGet, "/admin/api/drafts/unknown", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
