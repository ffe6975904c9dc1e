package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/microposts/posts-api/internal/core/domain"
	"github.com/microposts/posts-api/internal/core/ports"
)

const tokenType = "bearer"

// AuthService implements signup and login.
type AuthService struct {
	users  ports.UserRepository
	tokens ports.TokenService
	log    zerolog.Logger
}

func NewAuthService(users ports.UserRepository, tokens ports.TokenService, log zerolog.Logger) *AuthService {
	return &AuthService{users: users, tokens: tokens, log: log}
}

// Signup registers a new account and returns a freshly issued token. The
// password policy runs before hashing so a weak password never touches
// bcrypt or the store.
func (s *AuthService) Signup(ctx context.Context, email, password string) (*ports.TokenResult, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if err := domain.ValidatePassword(password); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	if _, err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.log.Info().Str("subject", email).Msg("user registered")
	return s.issue(email)
}

// Login verifies the password for an existing account and returns a token.
// Unknown subject and password mismatch are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.TokenResult, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	s.log.Debug().Str("subject", email).Msg("login succeeded")
	return s.issue(user.Email)
}

func (s *AuthService) issue(subject string) (*ports.TokenResult, error) {
	token, err := s.tokens.Issue(subject)
	if err != nil {
		return nil, err
	}
	return &ports.TokenResult{AccessToken: token, TokenType: tokenType}, nil
}
