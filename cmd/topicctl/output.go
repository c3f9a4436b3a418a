package main

import (
	"encoding/json"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/campusboard-backend/internal/domain"
)

type departmentJSON struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
	Code string `json:"code,omitempty"`
}

type topicJSON struct {
	ID          string          `json:"id"`
	Type        string          `json:"type"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Department  *departmentJSON `json:"department"`

	StartDate *string `json:"startDate,omitempty"`
	EndDate   *string `json:"endDate,omitempty"`
	Location  *string `json:"location,omitempty"`
	Organizer *string `json:"organizer,omitempty"`

	ApplicationDeadline *string `json:"applicationDeadline,omitempty"`
	Requirements        *string `json:"requirements,omitempty"`
	Value               *string `json:"value,omitempty"`
	Provider            *string `json:"provider,omitempty"`
	Eligibility         *string `json:"eligibility,omitempty"`
	ApplicationProcess  *string `json:"applicationProcess,omitempty"`

	IsImportant *bool `json:"isImportant,omitempty"`

	Company     *string `json:"company,omitempty"`
	Position    *string `json:"position,omitempty"`
	Salary      *string `json:"salary,omitempty"`
	ContactInfo *string `json:"contactInfo,omitempty"`

	Status  string `json:"status,omitempty"`
	IsSaved *bool  `json:"isSaved,omitempty"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

type pageJSON struct {
	Items      []topicJSON `json:"items"`
	Total      int         `json:"total"`
	Page       int         `json:"page"`
	Limit      int         `json:"limit"`
	TotalPages int         `json:"totalPages"`
}

func toTopicJSON(t *domain.Topic) topicJSON {
	out := topicJSON{
		ID:                  t.ID.String(),
		Type:                string(t.Type),
		Title:               t.Title,
		Description:         t.Description,
		StartDate:           formatTime(t.StartDate),
		EndDate:             formatTime(t.EndDate),
		Location:            t.Location,
		Organizer:           t.Organizer,
		ApplicationDeadline: formatTime(t.ApplicationDeadline),
		Requirements:        t.Requirements,
		Value:               t.Value,
		Provider:            t.Provider,
		Eligibility:         t.Eligibility,
		ApplicationProcess:  t.ApplicationProcess,
		IsImportant:         t.IsImportant,
		Company:             t.Company,
		Position:            t.Position,
		Salary:              t.Salary,
		ContactInfo:         t.ContactInfo,
		CreatedAt:           t.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:           t.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if t.Department != nil {
		out.Department = &departmentJSON{
			ID:   t.Department.ID.String(),
			Name: t.Department.Name,
			Code: t.Department.Code,
		}
	}
	return out
}

func toViewJSON(v domain.TopicView) topicJSON {
	out := toTopicJSON(v.Topic)
	out.Status = string(v.Status)
	saved := v.IsSaved
	out.IsSaved = &saved
	return out
}

func toPageJSON(p domain.TopicPage) pageJSON {
	items := make([]topicJSON, len(p.Items))
	for i, v := range p.Items {
		items[i] = toViewJSON(v)
	}
	return pageJSON{Items: items, Total: p.Total, Page: p.Page, Limit: p.Limit, TotalPages: p.TotalPages}
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(time.RFC3339Nano)
	return &s
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

type auditJSON struct {
	ID        string         `json:"id"`
	UserID    string         `json:"userId"`
	Action    string         `json:"action"`
	Changes   map[string]any `json:"changes"`
	CreatedAt string         `json:"createdAt"`
}

func toAuditJSON(r domain.AuditRecord) auditJSON {
	return auditJSON{
		ID:        r.ID.String(),
		UserID:    r.UserID.String(),
		Action:    string(r.Action),
		Changes:   r.Changes,
		CreatedAt: r.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

type userJSON struct {
	ID           string  `json:"id"`
	Email        string  `json:"email"`
	Name         string  `json:"name"`
	Role         string  `json:"role"`
	DepartmentID *string `json:"departmentId"`
}

func uuidString(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}
