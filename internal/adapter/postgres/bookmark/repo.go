// Package bookmark implements the per-user saved relation on topics using
// PostgreSQL. Rows are removed together with their topic by cascade.
package bookmark

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/campusboard-backend/internal/adapter/postgres"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repo provides bookmark persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new bookmark repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Save inserts the (user, topic) relation. It reports whether a row was
// created; saving an existing relation is a no-op.
// Returns domain.ErrNotFound if the user or topic does not exist.
func (r *Repo) Save(ctx context.Context, userID, topicID uuid.UUID) (bool, error) {
	query, args, err := psql.Insert("bookmarks").
		Columns("user_id", "topic_id").
		Values(userID, topicID).
		Suffix("ON CONFLICT (user_id, topic_id) DO NOTHING").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build insert bookmark: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return false, postgres.MapError(err, "bookmark", topicID)
	}
	return tag.RowsAffected() > 0, nil
}

// Unsave deletes the relation. It reports whether a row was removed.
func (r *Repo) Unsave(ctx context.Context, userID, topicID uuid.UUID) (bool, error) {
	query, args, err := psql.Delete("bookmarks").
		Where(squirrel.Eq{"user_id": userID, "topic_id": topicID}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build delete bookmark: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return false, postgres.MapError(err, "bookmark", topicID)
	}
	return tag.RowsAffected() > 0, nil
}

// SavedTopicIDs returns the IDs of every topic the user has saved, most
// recently saved first. Returns an empty slice (not nil) when there are none.
func (r *Repo) SavedTopicIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	query, args, err := psql.Select("topic_id").
		From("bookmarks").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "topic_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build saved topic ids: %w", err)
	}

	ids := []uuid.UUID{}
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.pool), &ids, query, args...); err != nil {
		return nil, fmt.Errorf("saved topic ids: %w", err)
	}
	return ids, nil
}

// IsSaved reports whether the user has saved the topic.
func (r *Repo) IsSaved(ctx context.Context, userID, topicID uuid.UUID) (bool, error) {
	var saved bool
	err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM bookmarks WHERE user_id = $1 AND topic_id = $2)`,
		userID, topicID,
	).Scan(&saved)
	if err != nil {
		return false, fmt.Errorf("check bookmark: %w", err)
	}
	return saved, nil
}
