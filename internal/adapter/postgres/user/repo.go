// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/campusboard-backend/internal/adapter/postgres"
	"github.com/heartmarshall/campusboard-backend/internal/domain"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

var userColumns = []string{"id", "email", "name", "role", "department_id", "created_at", "updated_at"}

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

type userRow struct {
	ID           uuid.UUID  `db:"id"`
	Email        string     `db:"email"`
	Name         string     `db:"name"`
	Role         string     `db:"role"`
	DepartmentID *uuid.UUID `db:"department_id"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at"`
}

func (r userRow) toDomain() *domain.User {
	return &domain.User{
		ID:           r.ID,
		Email:        r.Email,
		Name:         r.Name,
		Role:         domain.UserRole(r.Role),
		DepartmentID: r.DepartmentID,
		CreatedAt:    r.CreatedAt.UTC(),
		UpdatedAt:    r.UpdatedAt.UTC(),
	}
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id}, id)
}

// GetByEmail returns a user by email address.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getOne(ctx, squirrel.Eq{"email": email}, uuid.Nil)
}

func (r *Repo) getOne(ctx context.Context, where squirrel.Eq, id uuid.UUID) (*domain.User, error) {
	query, args, err := psql.Select(userColumns...).From("users").Where(where).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build user query: %w", err)
	}

	var row userRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return row.toDomain(), nil
}

// Create inserts a new user and returns the persisted domain.User.
// Returns domain.ErrAlreadyExists if the email is taken and
// domain.ErrNotFound if the department does not exist.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	id := u.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	query, args, err := psql.Insert("users").
		Columns("id", "email", "name", "role", "department_id").
		Values(id, u.Email, u.Name, string(u.Role), u.DepartmentID).
		Suffix("RETURNING " + strings.Join(userColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert user: %w", err)
	}

	var row userRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return row.toDomain(), nil
}

// DepartmentOf returns the department a user belongs to, or nil if none.
func (r *Repo) DepartmentOf(ctx context.Context, userID uuid.UUID) (*uuid.UUID, error) {
	u, err := r.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return u.DepartmentID, nil
}

