package domain

import (
	"time"

	"github.com/google/uuid"
)

// Topic is a campus notice. All nine variants share this record; which
// attributes may be set is decided by the variant registry.
type Topic struct {
	ID          uuid.UUID
	Type        TopicType
	Title       string
	Description string
	Department  *Department // nil = general, visible to every department

	// event, volunteer, extracurricular
	StartDate *time.Time
	EndDate   *time.Time
	Location  *string
	Organizer *string

	// scholarship
	ApplicationDeadline *time.Time
	Requirements        *string
	Value               *string
	Provider            *string
	Eligibility         *string
	ApplicationProcess  *string

	// notification
	IsImportant *bool

	// job, internship, recruitment
	Company     *string
	Position    *string
	Salary      *string
	ContactInfo *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DepartmentID returns the referenced department ID, or nil for general topics.
func (t *Topic) DepartmentID() *uuid.UUID {
	if t.Department == nil {
		return nil
	}
	id := t.Department.ID
	return &id
}

// IsGeneral reports whether the topic is visible to all departments.
func (t *Topic) IsGeneral() bool {
	return t.Department == nil
}

// Clone returns a deep copy of the topic.
func (t *Topic) Clone() *Topic {
	c := *t
	if t.Department != nil {
		d := *t.Department
		c.Department = &d
	}
	c.StartDate = cloneTime(t.StartDate)
	c.EndDate = cloneTime(t.EndDate)
	c.ApplicationDeadline = cloneTime(t.ApplicationDeadline)
	c.Location = cloneString(t.Location)
	c.Organizer = cloneString(t.Organizer)
	c.Requirements = cloneString(t.Requirements)
	c.Value = cloneString(t.Value)
	c.Provider = cloneString(t.Provider)
	c.Eligibility = cloneString(t.Eligibility)
	c.ApplicationProcess = cloneString(t.ApplicationProcess)
	c.Company = cloneString(t.Company)
	c.Position = cloneString(t.Position)
	c.Salary = cloneString(t.Salary)
	c.ContactInfo = cloneString(t.ContactInfo)
	if t.IsImportant != nil {
		v := *t.IsImportant
		c.IsImportant = &v
	}
	return &c
}

// TopicView is a topic as served to a caller: with its derived status and
// the caller's bookmark state.
type TopicView struct {
	Topic   *Topic
	Status  TopicStatus
	IsSaved bool
}

// Department is an academic department. Topics reference at most one.
type Department struct {
	ID   uuid.UUID
	Name string
	Code string
}

// Bookmark is a per-user saved relation to a topic.
type Bookmark struct {
	UserID    uuid.UUID
	TopicID   uuid.UUID
	CreatedAt time.Time
}

// AuditRecord logs a mutation event on a domain entity.
type AuditRecord struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	EntityType EntityType
	EntityID   *uuid.UUID
	Action     AuditAction
	Changes    map[string]any
	CreatedAt  time.Time
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
