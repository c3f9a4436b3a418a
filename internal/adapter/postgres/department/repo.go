// Package department implements the department directory using PostgreSQL.
package department

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/campusboard-backend/internal/adapter/postgres"
	"github.com/heartmarshall/campusboard-backend/internal/domain"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repo provides department lookups backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new department repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

type departmentRow struct {
	ID   uuid.UUID `db:"id"`
	Name string    `db:"name"`
	Code string    `db:"code"`
}

func (r departmentRow) toDomain() domain.Department {
	return domain.Department{ID: r.ID, Name: r.Name, Code: r.Code}
}

// Exists reports whether a department with the given ID exists.
func (r *Repo) Exists(ctx context.Context, departmentID uuid.UUID) (bool, error) {
	var exists bool
	err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM departments WHERE id = $1)`, departmentID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check department %s: %w", departmentID, err)
	}
	return exists, nil
}

// GetByID returns a department by primary key.
func (r *Repo) GetByID(ctx context.Context, departmentID uuid.UUID) (*domain.Department, error) {
	query, args, err := psql.Select("id", "name", "code").
		From("departments").
		Where(squirrel.Eq{"id": departmentID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build department query: %w", err)
	}

	var row departmentRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "department", departmentID)
	}
	d := row.toDomain()
	return &d, nil
}

// List returns all departments ordered by code.
func (r *Repo) List(ctx context.Context) ([]domain.Department, error) {
	query, args, err := psql.Select("id", "name", "code").From("departments").OrderBy("code").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list departments: %w", err)
	}

	var rows []departmentRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list departments: %w", err)
	}

	out := make([]domain.Department, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out, nil
}

// Create inserts a department. Returns domain.ErrAlreadyExists if the code is taken.
func (r *Repo) Create(ctx context.Context, name, code string) (*domain.Department, error) {
	query, args, err := psql.Insert("departments").
		Columns("name", "code").
		Values(name, code).
		Suffix("RETURNING id, name, code").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert department: %w", err)
	}

	var row departmentRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "department", uuid.Nil)
	}
	d := row.toDomain()
	return &d, nil
}
