package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"educonnect/models"
	"educonnect/storage"
	"educonnect/utils"
)

// SessionKey is the store key holding the signed-in user.
const SessionKey = "educonnect_user"

const googleAvatar = "https://lh3.googleusercontent.com/a/default-user=s96-c"

// AuthService is the mock authentication stub. Every login succeeds; the
// signed-in user is remembered in a SessionStore so a later process sees it.
type AuthService struct {
	store  storage.SessionStore
	logger *utils.Logger
	ids    *utils.IDGenerator
	now    func() time.Time

	mu   sync.RWMutex
	user *models.User
}

// NewAuthService restores any remembered user from store. A missing or
// unreadable session leaves the service signed out.
func NewAuthService(ctx context.Context, store storage.SessionStore, logger *utils.Logger) *AuthService {
	a := &AuthService{
		store:  store,
		logger: logger,
		ids:    utils.NewIDGenerator(),
		now:    time.Now,
	}
	a.restore(ctx)
	return a
}

func (a *AuthService) restore(ctx context.Context) {
	raw, err := a.store.Get(ctx, SessionKey)
	if errors.Is(err, storage.ErrSessionNotFound) {
		return
	}
	if err != nil {
		a.logger.Warn("[auth] Could not read session: %v", err)
		return
	}

	var u models.User
	if err := json.Unmarshal(raw, &u); err != nil {
		a.logger.Warn("[auth] Ignoring unreadable session: %v", err)
		return
	}
	a.user = &u
	a.logger.Debug("[auth] Restored session for %s", u.Email)
}

// Login signs in as email. The password is not checked.
func (a *AuthService) Login(ctx context.Context, email, password string) models.AuthResponse {
	u := &models.User{
		ID:        "1",
		Email:     email,
		Name:      strings.SplitN(email, "@", 2)[0],
		UserType:  models.UserTypeStudent,
		CreatedAt: a.now().UTC().Format(time.RFC3339),
	}
	if err := a.remember(ctx, u); err != nil {
		a.logger.Error("[auth] Login failed: %v", err)
		return models.AuthResponse{Success: false, Error: "Invalid credentials"}
	}
	a.logger.Info("[auth] Signed in as %s", email)
	return models.AuthResponse{Success: true}
}

// LoginWithGoogle signs in as a fixed Google account.
func (a *AuthService) LoginWithGoogle(ctx context.Context) models.AuthResponse {
	avatar := googleAvatar
	u := &models.User{
		ID:        fmt.Sprintf("google_%d", a.now().UnixMilli()),
		Email:     "user@gmail.com",
		Name:      "Google User",
		UserType:  models.UserTypeStudent,
		Avatar:    &avatar,
		CreatedAt: a.now().UTC().Format(time.RFC3339),
		Provider:  "google",
	}
	if err := a.remember(ctx, u); err != nil {
		a.logger.Error("[auth] Google sign-in failed: %v", err)
		return models.AuthResponse{Success: false, Error: "Google sign-in failed"}
	}
	a.logger.Info("[auth] Signed in with Google")
	return models.AuthResponse{Success: true}
}

// Register creates an account from the supplied fields and signs it in.
// User type defaults to student. A password is kept only as a bcrypt hash.
func (a *AuthService) Register(ctx context.Context, in models.User) models.AuthResponse {
	userType := in.UserType
	if userType == "" {
		userType = models.UserTypeStudent
	}
	password, err := hashPassword(in.Password)
	if err != nil {
		a.logger.Error("[auth] Registration failed: %v", err)
		return models.AuthResponse{Success: false, Error: "Registration failed"}
	}
	u := &models.User{
		ID:        a.ids.New(),
		Email:     in.Email,
		Name:      in.Name,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Password:  password,
		UserType:  userType,
		CreatedAt: a.now().UTC().Format(time.RFC3339),
	}
	if err := a.remember(ctx, u); err != nil {
		a.logger.Error("[auth] Registration failed: %v", err)
		return models.AuthResponse{Success: false, Error: "Registration failed"}
	}
	a.logger.Info("[auth] Registered %s as %s", u.Email, u.UserType)
	return models.AuthResponse{Success: true}
}

// Logout forgets the user. A store failure is logged; the in-memory session
// is cleared regardless.
func (a *AuthService) Logout(ctx context.Context) {
	a.mu.Lock()
	a.user = nil
	a.mu.Unlock()

	if err := a.store.Clear(ctx, SessionKey); err != nil {
		a.logger.Warn("[auth] Could not clear session: %v", err)
	}
}

// IsAuthenticated reports whether a user is signed in.
func (a *AuthService) IsAuthenticated() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.user != nil
}

// User returns a copy of the signed-in user, or nil.
func (a *AuthService) User() *models.User {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.user == nil {
		return nil
	}
	u := *a.user
	return &u
}

func hashPassword(password string) (string, error) {
	if password == "" {
		return "", nil
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("auth: hash password: %w", err)
	}
	return string(hashed), nil
}

func (a *AuthService) remember(ctx context.Context, u *models.User) error {
	raw, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("auth: encode user: %w", err)
	}
	if err := a.store.Set(ctx, SessionKey, raw); err != nil {
		return fmt.Errorf("auth: save session: %w", err)
	}

	a.mu.Lock()
	a.user = u
	a.mu.Unlock()
	return nil
}
