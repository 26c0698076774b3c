package client

import (
	"strconv"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Storage keys. Fixed strings so a future persistent backend stays
// compatible with what the browser client stored in session storage.
const (
	tokenKey        = "auth_token"
	refreshTokenKey = "refresh_token"
)

// TokenStore holds the bearer and refresh tokens for the life of the
// process, the analogue of session storage: nothing survives a restart.
type TokenStore struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewTokenStore() *TokenStore {
	return &TokenStore{values: make(map[string]string)}
}

func (s *TokenStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.values[tokenKey]
}

func (s *TokenStore) SetToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[tokenKey] = token
}

func (s *TokenStore) RefreshToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.values[refreshTokenKey]
}

func (s *TokenStore) SetRefreshToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[refreshTokenKey] = token
}

// Clear drops both tokens.
func (s *TokenStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, tokenKey)
	delete(s.values, refreshTokenKey)
}

// Valid reports whether a token is present and not yet expired. The
// signature is not checked here; the server is the authority and rejects
// bad tokens with 401 anyway.
func (s *TokenStore) Valid() bool {
	exp, ok := s.expiry()
	return ok && exp.After(time.Now())
}

// ExpiresAt returns the token expiry when one can be read.
func (s *TokenStore) ExpiresAt() (time.Time, bool) {
	return s.expiry()
}

// UserID returns the numeric subject claim of the stored token.
func (s *TokenStore) UserID() (uint, bool) {
	claims, ok := s.claims()
	if !ok {
		return 0, false
	}
	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return 0, false
	}
	id, err := strconv.ParseUint(sub, 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

func (s *TokenStore) expiry() (time.Time, bool) {
	claims, ok := s.claims()
	if !ok {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

func (s *TokenStore) claims() (jwt.MapClaims, bool) {
	token := s.Token()
	if token == "" {
		return nil, false
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, false
	}
	return claims, true
}
