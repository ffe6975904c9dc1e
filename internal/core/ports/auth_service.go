package ports

import "context"

// TokenResult is the credential envelope returned by signup and login.
type TokenResult struct {
	AccessToken string
	TokenType   string
}

// AuthService implements registration and login use cases.
type AuthService interface {
	Signup(ctx context.Context, email, password string) (*TokenResult, error)
	Login(ctx context.Context, email, password string) (*TokenResult, error)
}
