package services

import (
	"sync"

	"github.com/google/uuid"

	"restaurant_finder/logger"
	"restaurant_finder/models"
	"restaurant_finder/repository"
)

// AuthService issues opaque session tokens for the admin panel. Sessions
// live in memory; a restart signs everyone out.
type AuthService struct {
	mu       sync.RWMutex
	sessions map[string]string // token -> username
}

func NewAuthService() *AuthService {
	return &AuthService{sessions: make(map[string]string)}
}

// Login checks the credentials and returns a fresh token with the matched
// user. The error is sql.ErrNoRows for a bad username/password pair.
func (s *AuthService) Login(username, password string) (string, *models.AdminUser, error) {
	admin, err := repository.FindAdmin(username, password)
	if err != nil {
		return "", nil, err
	}

	token := uuid.NewString()
	s.mu.Lock()
	s.sessions[token] = admin.Username
	s.mu.Unlock()

	logger.Info("Admin logged in", "username", admin.Username)
	return token, admin, nil
}

// Validate reports whether token belongs to a live session.
func (s *AuthService) Validate(token string) bool {
	if token == "" {
		return false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.sessions[token]
	return ok
}

// Logout drops the session.
func (s *AuthService) Logout(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}
