package bookmark

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/campusboard-backend/internal/domain"
	"github.com/heartmarshall/campusboard-backend/internal/metrics"
	"github.com/heartmarshall/campusboard-backend/pkg/ctxutil"
)

// Unsave removes the caller's bookmark on a topic. Removing a bookmark that
// does not exist succeeds; an unknown topic is reported as not found.
// Visibility is not checked so stale bookmarks can always be dropped.
func (s *Service) Unsave(ctx context.Context, input SaveInput) error {
	err := s.unsave(ctx, input)
	metrics.ObserveMutation("unsave", err)
	return err
}

func (s *Service) unsave(ctx context.Context, input SaveInput) error {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return err
	}

	if _, err := s.topics.GetByID(ctx, input.TopicID); err != nil {
		return fmt.Errorf("get topic: %w", err)
	}

	removed, err := s.bookmarks.Unsave(ctx, actor.UserID, input.TopicID)
	if err != nil {
		return fmt.Errorf("unsave bookmark: %w", err)
	}

	if removed {
		s.log.InfoContext(ctx, "topic unsaved",
			slog.String("user_id", actor.UserID.String()),
			slog.String("topic_id", input.TopicID.String()),
		)
	}

	return nil
}
