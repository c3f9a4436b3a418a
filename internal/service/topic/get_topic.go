package topic

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/campusboard-backend/internal/domain"
	"github.com/heartmarshall/campusboard-backend/internal/metrics"
	"github.com/heartmarshall/campusboard-backend/pkg/ctxutil"
)

// GetTopic returns a single topic with its derived status and the caller's
// bookmark state. A topic the caller may not see is reported as not found.
func (s *Service) GetTopic(ctx context.Context, topicID uuid.UUID) (*domain.TopicView, error) {
	defer metrics.ObserveQuery("get", time.Now())

	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if topicID == uuid.Nil {
		return nil, domain.NewValidationError("topic_id", domain.CodeMissingRequiredField, "required")
	}

	topic, err := s.topics.GetByID(ctx, topicID)
	if err != nil {
		return nil, fmt.Errorf("get topic: %w", err)
	}
	if !domain.CanView(actor, topic) {
		return nil, fmt.Errorf("topic %s: %w", topicID, domain.ErrNotFound)
	}

	saved, err := s.bookmarks.IsSaved(ctx, actor.UserID, topicID)
	if err != nil {
		return nil, fmt.Errorf("check bookmark: %w", err)
	}

	return &domain.TopicView{
		Topic:   topic,
		Status:  domain.DeriveStatus(topic, s.now()),
		IsSaved: saved,
	}, nil
}
