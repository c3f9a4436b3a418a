// Package audit implements the Audit repository using PostgreSQL.
// It provides append-only operations for audit log records.
package audit

import (
	"context"
	"encoding/json"
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

const returningColumns = "RETURNING id, user_id, entity_type, entity_id, action, changes, created_at"

// Repo provides audit log persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new audit repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

type auditRow struct {
	ID         uuid.UUID  `db:"id"`
	UserID     uuid.UUID  `db:"user_id"`
	EntityType string     `db:"entity_type"`
	EntityID   *uuid.UUID `db:"entity_id"`
	Action     string     `db:"action"`
	Changes    []byte     `db:"changes"`
	CreatedAt  time.Time  `db:"created_at"`
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new audit record and returns it as stored. A nil ID and a
// zero CreatedAt are assigned by the database.
func (r *Repo) Create(ctx context.Context, record domain.AuditRecord) (domain.AuditRecord, error) {
	changesJSON, err := json.Marshal(record.Changes)
	if err != nil {
		return domain.AuditRecord{}, fmt.Errorf("audit_record marshal changes: %w", err)
	}
	if record.Changes == nil {
		changesJSON = []byte("{}")
	}

	values := map[string]any{
		"user_id":     record.UserID,
		"entity_type": string(record.EntityType),
		"entity_id":   record.EntityID,
		"action":      string(record.Action),
		"changes":     changesJSON,
	}
	if record.ID != uuid.Nil {
		values["id"] = record.ID
	}
	if !record.CreatedAt.IsZero() {
		values["created_at"] = record.CreatedAt
	}

	query, args, err := psql.Insert("audit_log").SetMap(values).Suffix(returningColumns).ToSql()
	if err != nil {
		return domain.AuditRecord{}, fmt.Errorf("build insert audit_record: %w", err)
	}

	var row auditRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &row, query, args...); err != nil {
		return domain.AuditRecord{}, postgres.MapError(err, "audit_record", record.ID)
	}

	return toDomainAuditRecord(row)
}

// Log creates an audit record without returning it.
// Satisfies topic.auditLogger.
func (r *Repo) Log(ctx context.Context, record domain.AuditRecord) error {
	_, err := r.Create(ctx, record)
	return err
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByEntity returns the change history for a specific entity, newest
// first, limited to `limit` records.
func (r *Repo) GetByEntity(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID, limit int) ([]domain.AuditRecord, error) {
	query, args, err := psql.Select("id", "user_id", "entity_type", "entity_id", "action", "changes", "created_at").
		From("audit_log").
		Where(squirrel.Eq{"entity_type": string(entityType), "entity_id": entityID}).
		OrderBy("created_at DESC", "id").
		Limit(uint64(max(limit, 0))).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build audit_records by entity: %w", err)
	}

	var rows []auditRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("get audit_records by entity: %w", err)
	}

	records := make([]domain.AuditRecord, len(rows))
	for i, row := range rows {
		rec, err := toDomainAuditRecord(row)
		if err != nil {
			return nil, err
		}
		records[i] = rec
	}

	return records, nil
}

// toDomainAuditRecord converts a stored row into a domain.AuditRecord.
func toDomainAuditRecord(row auditRow) (domain.AuditRecord, error) {
	record := domain.AuditRecord{
		ID:         row.ID,
		UserID:     row.UserID,
		EntityType: domain.EntityType(row.EntityType),
		EntityID:   row.EntityID,
		Action:     domain.AuditAction(row.Action),
		CreatedAt:  row.CreatedAt.UTC(),
	}

	if len(row.Changes) > 0 {
		changes := make(map[string]any)
		if err := json.Unmarshal(row.Changes, &changes); err != nil {
			return domain.AuditRecord{}, fmt.Errorf("audit_record %s unmarshal changes: %w", row.ID, err)
		}
		record.Changes = changes
	}

	return record, nil
}
