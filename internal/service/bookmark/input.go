package bookmark

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/campusboard-backend/internal/domain"
)

// SaveInput identifies the topic to save or unsave for the caller.
type SaveInput struct {
	TopicID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i SaveInput) Validate() error {
	if i.TopicID == uuid.Nil {
		return domain.NewValidationError("topic_id", domain.CodeMissingRequiredField, "required")
	}
	return nil
}

// ListSavedInput holds paging for the caller's saved topics.
type ListSavedInput struct {
	Page  *int // nil = 1
	Limit *int // nil = configured default
}
