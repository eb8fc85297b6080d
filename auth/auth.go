// Package auth is the identity boundary for the admin dashboard: sign-in,
// sign-out, current-identity lookup, password updates, sub-admin login
// provisioning, and an auth-state change stream.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"sync"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"miledesigns/email"
	"miledesigns/models"
)

const sessionEmailKey = "user_email"

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountDisabled    = errors.New("account is disabled")
	ErrEmailTaken         = errors.New("email is already registered")
	ErrWeakPassword       = errors.New("password must be at least 8 characters")
)

type Module struct {
	db   *gorm.DB
	mail *email.Service

	mu      sync.Mutex
	nextSub int
	subs    map[int]func(email string)
}

// NewModule wires the identity layer. mail may be nil; sub-admin invites
// are then skipped.
func NewModule(db *gorm.DB, mail *email.Service) *Module {
	return &Module{db: db, mail: mail, subs: make(map[int]func(string))}
}

// EnsureAdmin seeds the main admin login if no user exists yet. Called once
// on boot with credentials from the environment.
func (m *Module) EnsureAdmin(ctx context.Context, adminEmail, password string) error {
	if adminEmail == "" || password == "" {
		return nil
	}

	var count int64
	if err := m.db.WithContext(ctx).Model(&models.User{}).Where("email = ?", adminEmail).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := hashPassword(password)
	if err != nil {
		return err
	}
	user := models.User{Email: adminEmail, PasswordHash: hash, Enabled: true}
	return m.db.WithContext(ctx).Create(&user).Error
}

// SignIn validates the credentials and binds the identity to the caller's
// session, then notifies the auth-state stream.
func (m *Module) SignIn(c *gin.Context, userEmail, password string) error {
	var user models.User
	if err := m.db.Where("email = ?", userEmail).First(&user).Error; err != nil {
		return ErrInvalidCredentials
	}
	if !checkPasswordHash(password, user.PasswordHash) {
		return ErrInvalidCredentials
	}
	if !user.Enabled {
		return ErrAccountDisabled
	}

	session := sessions.Default(c)
	session.Set(sessionEmailKey, user.Email)
	if err := session.Save(); err != nil {
		return fmt.Errorf("saving session: %w", err)
	}

	m.notify(user.Email)
	return nil
}

// SignOut clears the caller's session and notifies the stream with the
// empty identity.
func (m *Module) SignOut(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	if err := session.Save(); err != nil {
		log.Printf("clearing session: %v", err)
	}
	m.notify("")
}

// CurrentUserEmail returns the signed-in email, or "" when anonymous. It
// reflects the latest value the auth-state stream has delivered for this
// session.
func (m *Module) CurrentUserEmail(c *gin.Context) string {
	session := sessions.Default(c)
	if v, ok := session.Get(sessionEmailKey).(string); ok {
		return v
	}
	return ""
}

// UpdatePassword rehashes and stores a new password for the given account.
func (m *Module) UpdatePassword(ctx context.Context, userEmail, newPassword string) error {
	if len(newPassword) < 8 {
		return ErrWeakPassword
	}

	var user models.User
	if err := m.db.WithContext(ctx).Where("email = ?", userEmail).First(&user).Error; err != nil {
		return fmt.Errorf("looking up account: %w", err)
	}

	hash, err := hashPassword(newPassword)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	return m.db.WithContext(ctx).Save(&user).Error
}

// CreateUserFromAdmin provisions a new sub-admin login without disturbing
// the caller's own session: sessions are server-side cookies here, so the
// caller's identity is simply never replaced. An invite email is sent best
// effort.
func (m *Module) CreateUserFromAdmin(ctx context.Context, userEmail, password string) error {
	if len(password) < 8 {
		return ErrWeakPassword
	}

	var existing models.User
	if err := m.db.WithContext(ctx).Where("email = ?", userEmail).First(&existing).Error; err == nil {
		return ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("checking for existing account: %w", err)
	}

	hash, err := hashPassword(password)
	if err != nil {
		return err
	}
	user := models.User{Email: userEmail, PasswordHash: hash, Enabled: true, IsSubAdmin: true}
	if err := m.db.WithContext(ctx).Create(&user).Error; err != nil {
		return fmt.Errorf("creating login: %w", err)
	}

	if m.mail != nil {
		if err := m.mail.SendSubAdminInvite(userEmail); err != nil {
			log.Printf("failed to send invite to %s: %v", userEmail, err)
		}
	}
	return nil
}

// SetUserEnabled blocks or unblocks sign-in for a login.
func (m *Module) SetUserEnabled(ctx context.Context, userEmail string, enabled bool) error {
	result := m.db.WithContext(ctx).Model(&models.User{}).
		Where("email = ?", userEmail).
		Update("enabled", enabled)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("no account with email %s", userEmail)
	}
	return nil
}

// OnAuthStateChange subscribes to identity changes. The callback receives
// the signed-in email, or "" on sign-out. The returned function
// unsubscribes.
func (m *Module) OnAuthStateChange(fn func(email string)) func() {
	m.mu.Lock()
	id := m.nextSub
	m.nextSub++
	m.subs[id] = fn
	m.mu.Unlock()

	return func() {
		m.mu.Lock()
		delete(m.subs, id)
		m.mu.Unlock()
	}
}

func (m *Module) notify(userEmail string) {
	m.mu.Lock()
	callbacks := make([]func(string), 0, len(m.subs))
	for _, fn := range m.subs {
		callbacks = append(callbacks, fn)
	}
	m.mu.Unlock()

	for _, fn := range callbacks {
		fn(userEmail)
	}
}

// RequireAuth aborts unauthenticated requests with 401.
func (m *Module) RequireAuth(c *gin.Context) {
	userEmail := m.CurrentUserEmail(c)
	if userEmail == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	// A disabled login ends the session immediately.
	var user models.User
	if err := m.db.Where("email = ?", userEmail).First(&user).Error; err != nil || !user.Enabled {
		m.SignOut(c)
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	c.Set("user_email", strings.ToLower(userEmail))
	c.Next()
}

func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	return string(bytes), err
}

func checkPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
