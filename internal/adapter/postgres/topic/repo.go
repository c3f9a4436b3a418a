// Package topic implements the Topic repository using PostgreSQL.
// Reads join the referenced department so search can match its name and code.
package topic

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/campusboard-backend/internal/adapter/postgres"
	"github.com/heartmarshall/campusboard-backend/internal/domain"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

var topicColumns = []string{
	"t.id", "t.type", "t.title", "t.description", "t.department_id",
	"d.name AS department_name", "d.code AS department_code",
	"t.start_date", "t.end_date", "t.location", "t.organizer",
	"t.application_deadline", "t.requirements", "t.value", "t.provider",
	"t.eligibility", "t.application_process",
	"t.is_important",
	"t.company", "t.position", "t.salary", "t.contact_info",
	"t.created_at", "t.updated_at",
}

// Repo provides topic persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new topic repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

func selectTopics() squirrel.SelectBuilder {
	return psql.Select(topicColumns...).
		From("topics t").
		LeftJoin("departments d ON d.id = t.department_id")
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a topic by primary key.
// Returns domain.ErrNotFound if the topic does not exist.
func (r *Repo) GetByID(ctx context.Context, topicID uuid.UUID) (*domain.Topic, error) {
	return r.getOne(ctx, selectTopics().Where(squirrel.Eq{"t.id": topicID}), topicID)
}

// GetForUpdate returns a topic and locks its row until the surrounding
// transaction ends. Outside a transaction the lock is released immediately.
func (r *Repo) GetForUpdate(ctx context.Context, topicID uuid.UUID) (*domain.Topic, error) {
	return r.getOne(ctx, selectTopics().Where(squirrel.Eq{"t.id": topicID}).Suffix("FOR UPDATE OF t"), topicID)
}

func (r *Repo) getOne(ctx context.Context, b squirrel.SelectBuilder, topicID uuid.UUID) (*domain.Topic, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build topic query: %w", err)
	}

	var row topicRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "topic", topicID)
	}
	return row.toDomain(), nil
}

// ListCandidates returns the topics inside the filter's scope, newest first.
// Returns an empty slice (not nil) when nothing matches.
func (r *Repo) ListCandidates(ctx context.Context, f domain.CandidateFilter) ([]*domain.Topic, error) {
	b := selectTopics()

	switch {
	case f.Scope.All:
	case f.Scope.DepartmentID != nil:
		b = b.Where(squirrel.Or{
			squirrel.Eq{"t.department_id": nil},
			squirrel.Eq{"t.department_id": *f.Scope.DepartmentID},
		})
	default:
		b = b.Where(squirrel.Eq{"t.department_id": nil})
	}

	if f.Type != nil {
		b = b.Where(squirrel.Eq{"t.type": string(*f.Type)})
	}
	if f.SavedBy != nil {
		b = b.Join("bookmarks b ON b.topic_id = t.id").
			Where(squirrel.Eq{"b.user_id": *f.SavedBy})
	}

	query, args, err := b.OrderBy("t.created_at DESC", "t.id ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list topics query: %w", err)
	}

	var rows []topicRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}

	topics := make([]*domain.Topic, len(rows))
	for i := range rows {
		topics[i] = rows[i].toDomain()
	}
	return topics, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new topic and returns it as stored.
// Returns domain.ErrNotFound if the referenced department does not exist.
func (r *Repo) Create(ctx context.Context, topic *domain.Topic) (*domain.Topic, error) {
	query, args, err := psql.Insert("topics").
		SetMap(topicValues(topic)).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert topic: %w", err)
	}

	var id uuid.UUID
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return nil, postgres.MapError(err, "topic", uuid.Nil)
	}

	return r.GetByID(ctx, id)
}

// Update overwrites every column of the topic if its stored updated_at still
// equals expectedUpdatedAt, and returns the stored result. updated_at is moved
// strictly forward on every successful write, including writes that change
// nothing else. Returns domain.ErrConflict if the guard does not match.
func (r *Repo) Update(ctx context.Context, topic *domain.Topic, expectedUpdatedAt time.Time) (*domain.Topic, error) {
	query, args, err := psql.Update("topics").
		SetMap(topicValues(topic)).
		Set("updated_at", squirrel.Expr("GREATEST(now(), updated_at + interval '1 microsecond')")).
		Where(squirrel.Eq{"id": topic.ID, "updated_at": expectedUpdatedAt}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update topic: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "topic", topic.ID)
	}
	if tag.RowsAffected() == 0 {
		return nil, fmt.Errorf("topic %s: %w", topic.ID, domain.ErrConflict)
	}

	return r.GetByID(ctx, topic.ID)
}

// Delete hard-deletes a topic; its bookmarks are removed by cascade.
// Returns domain.ErrNotFound if the topic does not exist.
func (r *Repo) Delete(ctx context.Context, topicID uuid.UUID) error {
	query, args, err := psql.Delete("topics").Where(squirrel.Eq{"id": topicID}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete topic: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "topic", topicID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("topic %s: %w", topicID, domain.ErrNotFound)
	}

	return nil
}
