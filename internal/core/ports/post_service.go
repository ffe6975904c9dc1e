package ports

import "context"

// PostService defines the post use cases for an authenticated subject.
// Create and Delete invalidate the subject's cached listing before they
// return, so a subsequent List by the same caller observes fresh data.
type PostService interface {
	Create(ctx context.Context, subject, text string) (string, error)
	List(ctx context.Context, subject string) ([]PostItem, error)
	Delete(ctx context.Context, subject, postID string) error
}
