package bookmark

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/campusboard-backend/internal/domain"
	"github.com/heartmarshall/campusboard-backend/internal/metrics"
	"github.com/heartmarshall/campusboard-backend/pkg/ctxutil"
)

// Save bookmarks a topic for the caller. Saving twice is a no-op.
// A topic the caller may not see is reported as not found.
func (s *Service) Save(ctx context.Context, input SaveInput) error {
	err := s.save(ctx, input)
	metrics.ObserveMutation("save", err)
	return err
}

func (s *Service) save(ctx context.Context, input SaveInput) error {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return err
	}

	topic, err := s.topics.GetByID(ctx, input.TopicID)
	if err != nil {
		return fmt.Errorf("get topic: %w", err)
	}
	if !domain.CanView(actor, topic) {
		return fmt.Errorf("topic %s: %w", input.TopicID, domain.ErrNotFound)
	}

	created, err := s.bookmarks.Save(ctx, actor.UserID, input.TopicID)
	if err != nil {
		return fmt.Errorf("save bookmark: %w", err)
	}

	if created {
		s.log.InfoContext(ctx, "topic saved",
			slog.String("user_id", actor.UserID.String()),
			slog.String("topic_id", input.TopicID.String()),
		)
	}

	return nil
}
