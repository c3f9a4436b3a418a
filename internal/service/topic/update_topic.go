package topic

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/heartmarshall/campusboard-backend/internal/domain"
	"github.com/heartmarshall/campusboard-backend/internal/metrics"
	"github.com/heartmarshall/campusboard-backend/pkg/ctxutil"
)

// UpdateTopic applies a partial patch to a stored topic.
// The read, validation and write happen in one transaction with the row
// locked; a concurrent write detected at commit is retried once and then
// reported as domain.ErrConflict.
func (s *Service) UpdateTopic(ctx context.Context, input UpdateTopicInput) (*domain.Topic, error) {
	topic, err := s.updateTopic(ctx, input)
	metrics.ObserveMutation("update", err)
	return topic, err
}

func (s *Service) updateTopic(ctx context.Context, input UpdateTopicInput) (*domain.Topic, error) {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if !canAuthor(actor) {
		return nil, domain.ErrForbidden
	}

	delay := s.cfg.UpdateRetryDelay
	if delay <= 0 {
		delay = time.Millisecond
	}
	backoff := retry.WithMaxRetries(1, retry.NewConstant(delay))

	var updated *domain.Topic
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		var attemptErr error
		updated, attemptErr = s.updateOnce(ctx, actor, input)
		if errors.Is(attemptErr, domain.ErrConflict) {
			s.log.WarnContext(ctx, "topic update conflict",
				slog.String("topic_id", input.TopicID.String()),
			)
			return retry.RetryableError(attemptErr)
		}
		return attemptErr
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "topic updated",
		slog.String("user_id", actor.UserID.String()),
		slog.String("topic_id", input.TopicID.String()),
	)

	return updated, nil
}

func (s *Service) updateOnce(ctx context.Context, actor domain.Actor, input UpdateTopicInput) (*domain.Topic, error) {
	var updated *domain.Topic
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		existing, getErr := s.topics.GetForUpdate(txCtx, input.TopicID)
		if getErr != nil {
			return fmt.Errorf("get topic: %w", getErr)
		}
		if !domain.CanView(actor, existing) {
			return fmt.Errorf("topic %s: %w", input.TopicID, domain.ErrNotFound)
		}
		if !domain.CanManage(actor, existing.DepartmentID()) {
			return domain.ErrForbidden
		}

		merged, valErr := validateUpdate(txCtx, existing, input.Patch, s.depts)
		if valErr != nil {
			return valErr
		}
		if !domain.CanManage(actor, merged.DepartmentID()) {
			return domain.ErrForbidden
		}

		var updateErr error
		updated, updateErr = s.topics.Update(txCtx, merged, existing.UpdatedAt)
		if updateErr != nil {
			return fmt.Errorf("update topic: %w", updateErr)
		}

		// Skip audit if nothing actually changed.
		changes := buildTopicChanges(existing, updated)
		if len(changes) > 0 {
			if auditErr := s.audit.Log(txCtx, domain.AuditRecord{
				UserID:     actor.UserID,
				EntityType: domain.EntityTypeTopic,
				EntityID:   &input.TopicID,
				Action:     domain.AuditActionUpdate,
				Changes:    changes,
			}); auditErr != nil {
				return fmt.Errorf("audit log: %w", auditErr)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
