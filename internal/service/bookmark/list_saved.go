package bookmark

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/campusboard-backend/internal/domain"
	"github.com/heartmarshall/campusboard-backend/internal/metrics"
	"github.com/heartmarshall/campusboard-backend/internal/query"
	"github.com/heartmarshall/campusboard-backend/pkg/ctxutil"
)

// ListSaved pages through the caller's saved topics that are still visible
// to them, newest first, with the same ordering and status derivation as a
// board query.
func (s *Service) ListSaved(ctx context.Context, input ListSavedInput) (domain.TopicPage, error) {
	defer metrics.ObserveQuery("saved", time.Now())

	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return domain.TopicPage{}, domain.ErrUnauthorized
	}

	filter := domain.TopicFilter{Page: 1, Limit: s.cfg.DefaultPageLimit}
	if input.Page != nil {
		filter.Page = *input.Page
	}
	if input.Limit != nil {
		filter.Limit = *input.Limit
	}
	if err := query.ValidateFilter(filter, s.cfg.MaxPageLimit); err != nil {
		return domain.TopicPage{}, err
	}

	userID := actor.UserID
	candidates, err := s.topics.ListCandidates(ctx, domain.CandidateFilter{
		Scope:   domain.ScopeFor(actor),
		SavedBy: &userID,
	})
	if err != nil {
		return domain.TopicPage{}, fmt.Errorf("list saved topics: %w", err)
	}

	ids := make([]uuid.UUID, 0, len(candidates))
	for _, t := range candidates {
		ids = append(ids, t.ID)
	}

	return query.Run(candidates, filter, query.Options{
		Actor:    actor,
		Now:      s.now(),
		Saved:    query.IDSet(ids),
		MaxLimit: s.cfg.MaxPageLimit,
	})
}
