package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/campusboard-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedDepartment creates a department with a unique code.
func SeedDepartment(t *testing.T, pool *pgxpool.Pool, name string) domain.Department {
	t.Helper()

	dept := domain.Department{
		ID:   uuid.New(),
		Name: name,
		Code: "D" + uniqueSuffix(),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO departments (id, name, code) VALUES ($1, $2, $3)`,
		dept.ID, dept.Name, dept.Code,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedDepartment: %v", err)
	}

	return dept
}

// SeedUser creates a user with the given role. dept may be nil.
func SeedUser(t *testing.T, pool *pgxpool.Pool, role domain.UserRole, dept *uuid.UUID) domain.User {
	t.Helper()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Email:        "user-" + suffix + "@campus.test",
		Name:         "Test User " + suffix,
		Role:         role,
		DepartmentID: dept,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, email, name, role, department_id, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		user.ID, user.Email, user.Name, string(user.Role), user.DepartmentID, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return user
}

// SeedTopic inserts a dateless notification topic. dept may be nil for a
// general topic. createdAt orders topics in list queries.
func SeedTopic(t *testing.T, pool *pgxpool.Pool, title string, dept *uuid.UUID, createdAt time.Time) domain.Topic {
	t.Helper()

	createdAt = createdAt.UTC().Truncate(time.Microsecond)
	topic := domain.Topic{
		ID:          uuid.New(),
		Type:        domain.TopicTypeNotification,
		Title:       title,
		Description: title + " details",
		CreatedAt:   createdAt,
		UpdatedAt:   createdAt,
	}
	if dept != nil {
		topic.Department = &domain.Department{ID: *dept}
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO topics (id, type, title, description, department_id, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		topic.ID, string(topic.Type), topic.Title, topic.Description, dept, topic.CreatedAt, topic.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTopic: %v", err)
	}

	return topic
}

// SeedBookmark saves topicID for userID.
func SeedBookmark(t *testing.T, pool *pgxpool.Pool, userID, topicID uuid.UUID) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO bookmarks (user_id, topic_id) VALUES ($1, $2)`,
		userID, topicID,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedBookmark: %v", err)
	}
}
