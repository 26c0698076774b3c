package stores

import (
	"context"
	"sync"

	"github.com/venkatakrishna06/restaurant-pos/client"
	"github.com/venkatakrishna06/restaurant-pos/models"
	"github.com/venkatakrishna06/restaurant-pos/services"
	"github.com/venkatakrishna06/restaurant-pos/utils"
)

// AuthStore owns the session lifecycle: initialised from whatever token
// survived in the store, mutated by login/logout, and torn down when the
// client reports a 401.
type AuthStore struct {
	mu            sync.Mutex
	svc           *services.AuthService
	tokens        *client.TokenStore
	user          *models.User
	authenticated bool
	loading       bool
	err           string
}

func NewAuthStore(svc *services.AuthService, tokens *client.TokenStore) *AuthStore {
	return &AuthStore{
		svc:           svc,
		tokens:        tokens,
		authenticated: tokens.Valid(),
	}
}

func (s *AuthStore) User() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	user := *s.user
	return &user
}

func (s *AuthStore) Authenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.authenticated
}

func (s *AuthStore) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *AuthStore) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *AuthStore) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = ""
}

// Init validates the persisted token at startup. An expired or unreadable
// token is cleared so the caller lands on the login screen.
func (s *AuthStore) Init() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.tokens.Valid() {
		s.authenticated = true
		return
	}
	s.tokens.Clear()
	s.user = nil
	s.authenticated = false
}

// SessionExpired tears the session down after the HTTP layer handled a
// 401; wired as the client's OnUnauthorized hook.
func (s *AuthStore) SessionExpired() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	s.authenticated = false
	utils.InfoLogger.Println("Session expired, credentials cleared")
}

func (s *AuthStore) Login(ctx context.Context, email, password string) error {
	s.begin()
	defer s.finish()

	resp, err := s.svc.Login(ctx, services.LoginCredentials{Email: email, Password: password})
	if err != nil {
		s.fail("Invalid credentials", err)
		return err
	}
	s.commitSession(resp)
	return nil
}

func (s *AuthStore) Signup(ctx context.Context, data services.SignupData) error {
	s.begin()
	defer s.finish()

	resp, err := s.svc.Signup(ctx, data)
	if err != nil {
		s.fail("Failed to create account", err)
		return err
	}
	s.commitSession(resp)
	return nil
}

// Logout clears credentials regardless of whether the server call
// succeeds; a dead session must never strand the user logged in locally.
func (s *AuthStore) Logout(ctx context.Context) {
	s.begin()

	if err := s.svc.Logout(ctx); err != nil {
		utils.ErrorLogger.Printf("Logout request failed: %v", err)
	}

	s.tokens.Clear()
	s.mu.Lock()
	s.user = nil
	s.authenticated = false
	s.loading = false
	s.mu.Unlock()
}

func (s *AuthStore) UpdateProfile(ctx context.Context, patch models.UserPatch) error {
	s.begin()
	defer s.finish()

	updated, err := s.svc.UpdateProfile(ctx, patch)
	if err != nil {
		s.fail("Failed to update profile", err)
		return err
	}
	s.mu.Lock()
	s.user = &updated
	s.mu.Unlock()
	return nil
}

func (s *AuthStore) ChangePassword(ctx context.Context, current, next string) error {
	s.begin()
	defer s.finish()

	if err := s.svc.ChangePassword(ctx, current, next); err != nil {
		s.fail("Failed to change password", err)
		return err
	}
	return nil
}

func (s *AuthStore) commitSession(resp services.AuthResponse) {
	s.tokens.SetToken(resp.Token)
	if resp.RefreshToken != "" {
		s.tokens.SetRefreshToken(resp.RefreshToken)
	}
	s.mu.Lock()
	user := resp.User
	s.user = &user
	s.authenticated = true
	s.mu.Unlock()
}

func (s *AuthStore) begin() {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()
}

func (s *AuthStore) finish() {
	s.mu.Lock()
	s.loading = false
	s.mu.Unlock()
}

func (s *AuthStore) fail(msg string, err error) {
	s.mu.Lock()
	s.err = msg
	s.mu.Unlock()
	utils.ErrorLogger.Printf("%s: %v", msg, err)
}
