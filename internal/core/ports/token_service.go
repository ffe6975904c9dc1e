package ports

import "github.com/microposts/posts-api/internal/core/domain"

// TokenService issues and verifies signed, time-limited bearer tokens.
// Verify never trusts an unverified claim: the returned Principal's subject
// comes from the validated token only.
type TokenService interface {
	Issue(subject string) (string, error)
	Verify(token string) (domain.Principal, error)
}
