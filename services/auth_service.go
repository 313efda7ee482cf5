package services

import (
	"context"
	"strings"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/yashrajoria/classroom-shop/errors"
)

const (
	DemoEmail    = "valid@example.com"
	DemoPassword = "validPassword"
)

// UserStore resolves a password hash by email.
type UserStore interface {
	PasswordHash(ctx context.Context, email string) ([]byte, bool)
}

// MemoryUserStore keeps bcrypt hashes keyed by lower-cased email.
type MemoryUserStore struct {
	mu     sync.RWMutex
	hashes map[string][]byte
}

func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{hashes: make(map[string][]byte)}
}

// NewDemoUserStore holds the single demo account used by the login page.
func NewDemoUserStore() (*MemoryUserStore, error) {
	store := NewMemoryUserStore()
	if err := store.Add(DemoEmail, DemoPassword); err != nil {
		return nil, err
	}
	return store, nil
}

// Add hashes password and registers the account.
func (s *MemoryUserStore) Add(email, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.hashes[strings.ToLower(email)] = hash
	s.mu.Unlock()
	return nil
}

func (s *MemoryUserStore) PasswordHash(_ context.Context, email string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	hash, ok := s.hashes[strings.ToLower(strings.TrimSpace(email))]
	return hash, ok
}

// IAuthService is consumed by the auth controller.
type IAuthService interface {
	Login(ctx context.Context, email, password string) (string, error)
}

type AuthService struct {
	users  UserStore
	tokens *TokenService
	logger *zap.Logger
}

func NewAuthService(users UserStore, tokens *TokenService, logger *zap.Logger) *AuthService {
	return &AuthService{users: users, tokens: tokens, logger: logger}
}

// Login checks the credentials and returns a signed session token.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	hash, ok := s.users.PasswordHash(ctx, email)
	if !ok {
		s.logger.Info("Login rejected: unknown email")
		return "", apperrors.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(hash, []byte(password)); err != nil {
		s.logger.Info("Login rejected: wrong password")
		return "", apperrors.ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		s.logger.Error("Failed to sign token", zap.Error(err))
		return "", apperrors.ErrInternalServer.Wrap(err)
	}
	return token, nil
}
