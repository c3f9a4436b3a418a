package topic

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/campusboard-backend/internal/domain"
	"github.com/heartmarshall/campusboard-backend/internal/metrics"
	"github.com/heartmarshall/campusboard-backend/pkg/ctxutil"
)

// CreateTopic validates a create payload and stores the topic.
// Only admins and coordinators may create; coordinators only within their
// own department.
func (s *Service) CreateTopic(ctx context.Context, input TopicInput) (*domain.Topic, error) {
	topic, err := s.createTopic(ctx, input)
	metrics.ObserveMutation("create", err)
	return topic, err
}

func (s *Service) createTopic(ctx context.Context, input TopicInput) (*domain.Topic, error) {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if !canAuthor(actor) {
		return nil, domain.ErrForbidden
	}

	topic, err := validateCreate(ctx, input, s.depts)
	if err != nil {
		return nil, err
	}
	if !domain.CanManage(actor, topic.DepartmentID()) {
		return nil, domain.ErrForbidden
	}

	var created *domain.Topic
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		created, createErr = s.topics.Create(txCtx, topic)
		if createErr != nil {
			return fmt.Errorf("create topic: %w", createErr)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     actor.UserID,
			EntityType: domain.EntityTypeTopic,
			EntityID:   &created.ID,
			Action:     domain.AuditActionCreate,
			Changes:    wrapNew(snapshot(created)),
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "topic created",
		slog.String("user_id", actor.UserID.String()),
		slog.String("topic_id", created.ID.String()),
		slog.String("type", created.Type.String()),
	)

	return created, nil
}

// canAuthor reports whether the role may write topics at all.
func canAuthor(a domain.Actor) bool {
	return a.Role == domain.UserRoleAdmin || a.Role == domain.UserRoleCoordinator
}
