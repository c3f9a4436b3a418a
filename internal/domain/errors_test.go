package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestValidationError_SingleField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("title", CodeEmptyStringField, "must not be empty")

	if got := err.Error(); got != "validation: title: must not be empty" {
		t.Fatalf("unexpected Error(): %q", got)
	}
	if !errors.Is(err, ErrValidation) {
		t.Fatal("errors.Is(err, ErrValidation) = false")
	}
}

func TestValidationError_MultipleFields(t *testing.T) {
	t.Parallel()

	err := NewValidationErrors([]FieldError{
		{Field: "title", Code: CodeMissingRequiredField, Message: "required"},
		{Field: "endDate", Code: CodeInvalidDateOrder, Message: "must be after startDate"},
	})

	if got := err.Error(); got != "validation: 2 errors" {
		t.Fatalf("unexpected Error(): %q", got)
	}
	if len(err.Errors) != 2 {
		t.Fatalf("expected 2 field errors, got %d", len(err.Errors))
	}
}

func TestValidationError_ByField(t *testing.T) {
	t.Parallel()

	err := NewValidationErrors([]FieldError{
		{Field: "startDate", Code: CodeInvalidDateFormat},
		{Field: "startDate", Code: CodeForbiddenFieldForVariant},
		{Field: "title", Code: CodeEmptyStringField},
	})

	got := err.ByField()
	if len(got) != 2 {
		t.Fatalf("expected 2 fields, got %d", len(got))
	}
	if got["startDate"] != CodeInvalidDateFormat {
		t.Errorf("startDate: got %s, want first reported code", got["startDate"])
	}
	if !err.Has("startDate", CodeForbiddenFieldForVariant) {
		t.Error("Has should see every reported code, not just the first")
	}
	if err.Has("title", CodeMissingRequiredField) {
		t.Error("Has matched a code that was not reported")
	}
}

func TestValidationError_As(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("create topic: %w", NewValidationError("type", CodeInvalidTopicType, "unknown"))

	var ve *ValidationError
	if !errors.As(wrapped, &ve) {
		t.Fatal("errors.As should find *ValidationError through wrapping")
	}
	if ve.Errors[0].Code != CodeInvalidTopicType {
		t.Errorf("code: got %s", ve.Errors[0].Code)
	}
}

func TestQueryParamError(t *testing.T) {
	t.Parallel()

	err := NewQueryParamError("limit", "must be positive")
	if !errors.Is(err, ErrInvalidQuery) {
		t.Fatal("errors.Is(err, ErrInvalidQuery) = false")
	}
	if got := err.Error(); got != "invalid query parameter limit: must be positive" {
		t.Errorf("unexpected Error(): %q", got)
	}
}

func TestSentinelErrors_AreDistinct(t *testing.T) {
	t.Parallel()

	sentinels := []error{
		ErrNotFound, ErrAlreadyExists, ErrValidation,
		ErrUnauthorized, ErrForbidden, ErrConflict, ErrInvalidQuery,
	}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j && errors.Is(a, b) {
				t.Errorf("sentinel errors %d and %d should not match", i, j)
			}
		}
	}
}
