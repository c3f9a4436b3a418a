package topic

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/campusboard-backend/internal/domain"
	"github.com/heartmarshall/campusboard-backend/internal/metrics"
	"github.com/heartmarshall/campusboard-backend/internal/query"
	"github.com/heartmarshall/campusboard-backend/pkg/ctxutil"
)

// QueryTopics lists the topics visible to the caller, filtered by type,
// derived status and free-text search, newest first.
func (s *Service) QueryTopics(ctx context.Context, input QueryTopicsInput) (domain.TopicPage, error) {
	defer metrics.ObserveQuery("query", time.Now())

	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return domain.TopicPage{}, domain.ErrUnauthorized
	}

	filter, err := s.buildFilter(input)
	if err != nil {
		return domain.TopicPage{}, err
	}
	if err := query.ValidateFilter(filter, s.cfg.MaxPageLimit); err != nil {
		return domain.TopicPage{}, err
	}

	var (
		candidates []*domain.Topic
		savedIDs   []uuid.UUID
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var listErr error
		candidates, listErr = s.topics.ListCandidates(gctx, domain.CandidateFilter{
			Scope: domain.ScopeFor(actor),
			Type:  filter.Type,
		})
		if listErr != nil {
			return fmt.Errorf("list topics: %w", listErr)
		}
		return nil
	})
	g.Go(func() error {
		var savedErr error
		savedIDs, savedErr = s.bookmarks.SavedTopicIDs(gctx, actor.UserID)
		if savedErr != nil {
			return fmt.Errorf("list bookmarks: %w", savedErr)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return domain.TopicPage{}, err
	}

	return query.Run(candidates, filter, query.Options{
		Actor:    actor,
		Now:      s.now(),
		Saved:    query.IDSet(savedIDs),
		MaxLimit: s.cfg.MaxPageLimit,
	})
}

func (s *Service) buildFilter(input QueryTopicsInput) (domain.TopicFilter, error) {
	typ, err := domain.ParseTypeFilter(input.Type)
	if err != nil {
		return domain.TopicFilter{}, err
	}
	status, err := domain.ParseStatusFilter(input.Status)
	if err != nil {
		return domain.TopicFilter{}, err
	}

	f := domain.TopicFilter{
		Type:   typ,
		Status: status,
		Search: input.Search,
		Page:   1,
		Limit:  s.cfg.DefaultPageLimit,
	}
	if input.Page != nil {
		f.Page = *input.Page
	}
	if input.Limit != nil {
		f.Limit = *input.Limit
	}
	return f, nil
}
