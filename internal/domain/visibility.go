package domain

import "github.com/google/uuid"

// CanView reports whether the actor may see the topic.
// General topics are visible to everyone; department topics to admins and to
// coordinators and students of that department.
func CanView(a Actor, t *Topic) bool {
	if t.Department == nil {
		return true
	}
	switch a.Role {
	case UserRoleAdmin:
		return true
	case UserRoleCoordinator, UserRoleStudent:
		return a.InDepartment(t.Department.ID)
	}
	return false
}

// CanManage reports whether the actor may create, edit or delete a topic
// scoped to departmentID (nil = general topic).
// Admins manage everything; coordinators manage their own department only;
// general topics are admin-only.
func CanManage(a Actor, departmentID *uuid.UUID) bool {
	switch a.Role {
	case UserRoleAdmin:
		return true
	case UserRoleCoordinator:
		return departmentID != nil && a.InDepartment(*departmentID)
	}
	return false
}

// ViewScope describes which topics an actor may list, in a form a storage
// layer can push down.
type ViewScope struct {
	All          bool       // every topic
	DepartmentID *uuid.UUID // general topics plus this department; nil = general only
}

// ScopeFor returns the listing scope of the actor.
func ScopeFor(a Actor) ViewScope {
	switch a.Role {
	case UserRoleAdmin:
		return ViewScope{All: true}
	case UserRoleCoordinator, UserRoleStudent:
		if a.DepartmentID != nil {
			id := *a.DepartmentID
			return ViewScope{DepartmentID: &id}
		}
	}
	return ViewScope{}
}
