package topic

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/campusboard-backend/internal/domain"
)

// TopicInput is a create payload or an update patch.
// A nil field was not supplied. On update an empty string clears an
// optional attribute. Dates are raw strings so format errors can be reported
// per field.
type TopicInput struct {
	Type        *string
	Title       *string
	Description *string
	Department  *string // department id; "", "none", "null", "all" and "general" mean general

	StartDate *string
	EndDate   *string
	Location  *string
	Organizer *string

	ApplicationDeadline *string
	Requirements        *string
	Value               *string
	Provider            *string
	Eligibility         *string
	ApplicationProcess  *string

	IsImportant *bool
	// ClearIsImportant unsets isImportant. It is ignored when IsImportant is set.
	ClearIsImportant bool

	Company     *string
	Position    *string
	Salary      *string
	ContactInfo *string
}

// UpdateTopicInput holds the parameters for updating a topic.
type UpdateTopicInput struct {
	TopicID uuid.UUID
	Patch   TopicInput
}

// Validate checks the identifier. Patch contents are checked against the
// stored record inside the update transaction.
func (i UpdateTopicInput) Validate() error {
	if i.TopicID == uuid.Nil {
		return domain.NewValidationError("topic_id", domain.CodeMissingRequiredField, "required")
	}
	return nil
}

// DeleteTopicInput holds the parameters for deleting a topic.
type DeleteTopicInput struct {
	TopicID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i DeleteTopicInput) Validate() error {
	if i.TopicID == uuid.Nil {
		return domain.NewValidationError("topic_id", domain.CodeMissingRequiredField, "required")
	}
	return nil
}

// QueryTopicsInput holds raw list parameters as received from a caller.
// Type and Status accept "" or "all" for no filter.
type QueryTopicsInput struct {
	Type   string
	Status string
	Search string
	Page   *int // nil = 1
	Limit  *int // nil = configured default
}
