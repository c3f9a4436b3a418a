// Package query implements the topic list pipeline: visibility scoping, type
// and derived-status filters, free-text search, stable ordering and
// pagination. It works on an in-memory candidate set so that the derived
// status never has to be a stored column.
package query

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/campusboard-backend/internal/domain"
)

// Options carries the per-call context of Run.
type Options struct {
	Actor    domain.Actor
	Now      time.Time
	Saved    map[uuid.UUID]struct{} // topics the actor has bookmarked
	MaxLimit int                    // 0 = no upper bound
}

// ValidateFilter checks pagination and filter parameters.
func ValidateFilter(f domain.TopicFilter, maxLimit int) error {
	if f.Limit <= 0 {
		return domain.NewQueryParamError("limit", "must be greater than 0")
	}
	if maxLimit > 0 && f.Limit > maxLimit {
		return domain.NewQueryParamError("limit", fmt.Sprintf("must not exceed %d", maxLimit))
	}
	if f.Page <= 0 {
		return domain.NewQueryParamError("page", "must be greater than 0")
	}
	if f.Type != nil && !f.Type.IsValid() {
		return domain.NewQueryParamError("type", "unknown topic type "+f.Type.String())
	}
	if f.Status != nil && !f.Status.IsValid() {
		return domain.NewQueryParamError("status", "unknown status "+f.Status.String())
	}
	return nil
}

// Run filters, orders and paginates candidates for the actor.
// Stages run in a fixed order: visibility, type, status, search, sort, slice.
// Total counts matches after every filter and before slicing.
func Run(candidates []*domain.Topic, f domain.TopicFilter, opts Options) (domain.TopicPage, error) {
	if err := ValidateFilter(f, opts.MaxLimit); err != nil {
		return domain.TopicPage{}, err
	}

	needle := domain.NormalizeText(f.Search)

	type match struct {
		topic  *domain.Topic
		status domain.TopicStatus
	}
	matches := make([]match, 0, len(candidates))

	for _, t := range candidates {
		if !domain.CanView(opts.Actor, t) {
			continue
		}
		if f.Type != nil && t.Type != *f.Type {
			continue
		}
		status := domain.DeriveStatus(t, opts.Now)
		if f.Status != nil && status != *f.Status {
			continue
		}
		if needle != "" && !matchesSearch(t, needle) {
			continue
		}
		matches = append(matches, match{topic: t, status: status})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return less(matches[i].topic, matches[j].topic)
	})

	total := len(matches)
	page := domain.TopicPage{
		Items: []domain.TopicView{},
		Total: total,
		Page:  f.Page,
		Limit: f.Limit,
	}
	if total > 0 {
		page.TotalPages = (total-1)/f.Limit + 1
	}

	// Compared before multiplying so a huge page cannot overflow start.
	if f.Page > page.TotalPages {
		return page, nil
	}
	start := (f.Page - 1) * f.Limit
	end := start + min(f.Limit, total-start)

	for _, m := range matches[start:end] {
		_, saved := opts.Saved[m.topic.ID]
		page.Items = append(page.Items, domain.TopicView{
			Topic:   m.topic,
			Status:  m.status,
			IsSaved: saved,
		})
	}

	return page, nil
}

// less orders by CreatedAt descending, ties broken by ID ascending.
func less(a, b *domain.Topic) bool {
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	return bytes.Compare(a.ID[:], b.ID[:]) < 0
}

func matchesSearch(t *domain.Topic, needle string) bool {
	haystack := []string{t.Title, t.Description, t.Type.String()}
	if t.Department != nil {
		haystack = append(haystack, t.Department.Name, t.Department.Code)
	}
	for _, h := range haystack {
		if strings.Contains(domain.NormalizeText(h), needle) {
			return true
		}
	}
	return false
}

// IDSet builds a lookup set from topic IDs.
func IDSet(ids []uuid.UUID) map[uuid.UUID]struct{} {
	set := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
