package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/microposts/posts-api/internal/api/metrics"
	"github.com/microposts/posts-api/internal/core/domain"
	"github.com/microposts/posts-api/internal/core/ports"
)

// PostService implements the post use cases. Listing goes through the
// per-subject cache; any write for a subject invalidates that subject's
// entry before the call returns, so the next read is guaranteed fresh.
type PostService struct {
	posts ports.PostRepository
	cache ports.PostCache
	log   zerolog.Logger
}

func NewPostService(posts ports.PostRepository, cache ports.PostCache, log zerolog.Logger) *PostService {
	return &PostService{posts: posts, cache: cache, log: log}
}

// Create persists a new post for subject and invalidates the listing cache.
func (s *PostService) Create(ctx context.Context, subject, text string) (string, error) {
	id, err := s.posts.Create(ctx, subject, text)
	if err != nil {
		s.log.Error().Err(err).Str("subject", subject).Msg("failed to create post")
		return "", err
	}

	s.invalidate(ctx, subject)
	metrics.PostsCreatedTotal.Inc()
	s.log.Info().Str("subject", subject).Str("post_id", id).Msg("post created")
	return id, nil
}

// List returns the subject's posts in creation order, served through the
// cache when a fresh entry exists.
func (s *PostService) List(ctx context.Context, subject string) ([]ports.PostItem, error) {
	items, hit, err := s.cache.GetOrLoad(ctx, subject, func(ctx context.Context) ([]ports.PostItem, error) {
		return s.posts.ListByOwner(ctx, subject)
	})
	if err != nil {
		return nil, err
	}

	result := "miss"
	if hit {
		result = "hit"
	}
	metrics.CacheRequestsTotal.WithLabelValues(result).Inc()
	return items, nil
}

// Delete removes a post if it belongs to subject. A post that is absent or
// owned by someone else yields ErrPostNotFound; nothing is deleted and the
// cache entry is left untouched.
func (s *PostService) Delete(ctx context.Context, subject, postID string) error {
	deleted, err := s.posts.Delete(ctx, subject, postID)
	if err != nil {
		s.log.Error().Err(err).Str("subject", subject).Str("post_id", postID).Msg("failed to delete post")
		return err
	}
	if !deleted {
		return domain.ErrPostNotFound
	}

	s.invalidate(ctx, subject)
	metrics.PostsDeletedTotal.Inc()
	s.log.Info().Str("subject", subject).Str("post_id", postID).Msg("post deleted")
	return nil
}

// invalidate drops the subject's cached listing. A failure here (possible
// only with the Redis backend) leaves a stale entry that the TTL will clear;
// the write itself has already succeeded, so the error is logged, not
// surfaced.
func (s *PostService) invalidate(ctx context.Context, subject string) {
	if err := s.cache.Invalidate(ctx, subject); err != nil {
		s.log.Warn().Err(err).Str("subject", subject).Msg("cache invalidation failed")
	}
}
