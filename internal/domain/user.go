package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is a dashboard account: a student, a department coordinator or an admin.
type User struct {
	ID           uuid.UUID
	Email        string
	Name         string
	Role         UserRole
	DepartmentID *uuid.UUID // enrolled (student) or coordinated (coordinator) department
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Actor returns the identity a request made by this user runs as.
func (u *User) Actor() Actor {
	return Actor{UserID: u.ID, Role: u.Role, DepartmentID: u.DepartmentID}
}

// Actor is the caller of a topic or bookmark operation.
type Actor struct {
	UserID       uuid.UUID
	Role         UserRole
	DepartmentID *uuid.UUID
}

// InDepartment reports whether the actor belongs to the given department.
func (a Actor) InDepartment(id uuid.UUID) bool {
	return a.DepartmentID != nil && *a.DepartmentID == id
}
