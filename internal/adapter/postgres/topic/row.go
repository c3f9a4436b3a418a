package topic

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/campusboard-backend/internal/domain"
)

// topicRow is the scan target of topicColumns.
type topicRow struct {
	ID             uuid.UUID  `db:"id"`
	Type           string     `db:"type"`
	Title          string     `db:"title"`
	Description    string     `db:"description"`
	DepartmentID   *uuid.UUID `db:"department_id"`
	DepartmentName *string    `db:"department_name"`
	DepartmentCode *string    `db:"department_code"`

	StartDate *time.Time `db:"start_date"`
	EndDate   *time.Time `db:"end_date"`
	Location  *string    `db:"location"`
	Organizer *string    `db:"organizer"`

	ApplicationDeadline *time.Time `db:"application_deadline"`
	Requirements        *string    `db:"requirements"`
	Value               *string    `db:"value"`
	Provider            *string    `db:"provider"`
	Eligibility         *string    `db:"eligibility"`
	ApplicationProcess  *string    `db:"application_process"`

	IsImportant *bool `db:"is_important"`

	Company     *string `db:"company"`
	Position    *string `db:"position"`
	Salary      *string `db:"salary"`
	ContactInfo *string `db:"contact_info"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (r *topicRow) toDomain() *domain.Topic {
	t := &domain.Topic{
		ID:                  r.ID,
		Type:                domain.TopicType(r.Type),
		Title:               r.Title,
		Description:         r.Description,
		StartDate:           utc(r.StartDate),
		EndDate:             utc(r.EndDate),
		Location:            r.Location,
		Organizer:           r.Organizer,
		ApplicationDeadline: utc(r.ApplicationDeadline),
		Requirements:        r.Requirements,
		Value:               r.Value,
		Provider:            r.Provider,
		Eligibility:         r.Eligibility,
		ApplicationProcess:  r.ApplicationProcess,
		IsImportant:         r.IsImportant,
		Company:             r.Company,
		Position:            r.Position,
		Salary:              r.Salary,
		ContactInfo:         r.ContactInfo,
		CreatedAt:           r.CreatedAt.UTC(),
		UpdatedAt:           r.UpdatedAt.UTC(),
	}
	if r.DepartmentID != nil {
		t.Department = &domain.Department{ID: *r.DepartmentID}
		if r.DepartmentName != nil {
			t.Department.Name = *r.DepartmentName
		}
		if r.DepartmentCode != nil {
			t.Department.Code = *r.DepartmentCode
		}
	}
	return t
}

// topicValues returns the writable columns of a topic. id and the
// timestamps are owned by the database.
func topicValues(t *domain.Topic) map[string]any {
	return map[string]any{
		"type":                 string(t.Type),
		"title":                t.Title,
		"description":          t.Description,
		"department_id":        t.DepartmentID(),
		"start_date":           t.StartDate,
		"end_date":             t.EndDate,
		"location":             t.Location,
		"organizer":            t.Organizer,
		"application_deadline": t.ApplicationDeadline,
		"requirements":         t.Requirements,
		"value":                t.Value,
		"provider":             t.Provider,
		"eligibility":          t.Eligibility,
		"application_process":  t.ApplicationProcess,
		"is_important":         t.IsImportant,
		"company":              t.Company,
		"position":             t.Position,
		"salary":               t.Salary,
		"contact_info":         t.ContactInfo,
	}
}

func utc(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := t.UTC()
	return &v
}
