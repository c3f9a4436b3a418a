package topic

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/campusboard-backend/internal/domain"
	"github.com/heartmarshall/campusboard-backend/internal/metrics"
	"github.com/heartmarshall/campusboard-backend/pkg/ctxutil"
)

// DeleteTopic hard-deletes a topic. Its bookmarks go with it in the same
// transaction.
func (s *Service) DeleteTopic(ctx context.Context, input DeleteTopicInput) error {
	err := s.deleteTopic(ctx, input)
	metrics.ObserveMutation("delete", err)
	return err
}

func (s *Service) deleteTopic(ctx context.Context, input DeleteTopicInput) error {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return err
	}
	if !canAuthor(actor) {
		return domain.ErrForbidden
	}

	var topic *domain.Topic
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var getErr error
		topic, getErr = s.topics.GetForUpdate(txCtx, input.TopicID)
		if getErr != nil {
			return fmt.Errorf("get topic: %w", getErr)
		}
		if !domain.CanView(actor, topic) {
			return fmt.Errorf("topic %s: %w", input.TopicID, domain.ErrNotFound)
		}
		if !domain.CanManage(actor, topic.DepartmentID()) {
			return domain.ErrForbidden
		}

		if deleteErr := s.topics.Delete(txCtx, input.TopicID); deleteErr != nil {
			return fmt.Errorf("delete topic: %w", deleteErr)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     actor.UserID,
			EntityType: domain.EntityTypeTopic,
			EntityID:   &input.TopicID,
			Action:     domain.AuditActionDelete,
			Changes:    wrapOld(snapshot(topic)),
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "topic deleted",
		slog.String("user_id", actor.UserID.String()),
		slog.String("topic_id", input.TopicID.String()),
		slog.String("title", topic.Title),
	)

	return nil
}
