package ports

import (
	"context"
	"time"
)

// PostItem is the listing view of a post. It is what the cache stores and
// what GET /api/posts returns, so it carries its JSON shape directly.
type PostItem struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// PostRepository defines the interface for post persistence. ListByOwner
// returns posts ordered by creation time. Delete reports false when no post
// with that id belongs to the owner; it never deletes across owners.
type PostRepository interface {
	Create(ctx context.Context, ownerID, text string) (string, error)
	ListByOwner(ctx context.Context, ownerID string) ([]PostItem, error)
	Delete(ctx context.Context, ownerID, postID string) (bool, error)
}
