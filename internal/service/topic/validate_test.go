package topic

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/campusboard-backend/internal/domain"
)

func ptr[T any](v T) *T { return &v }

// departments returns a directory that knows exactly the given IDs.
func departments(ids ...uuid.UUID) *departmentDirectoryMock {
	known := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		known[id] = true
	}
	return &departmentDirectoryMock{
		ExistsFunc: func(ctx context.Context, id uuid.UUID) (bool, error) {
			return known[id], nil
		},
	}
}

func requireValidation(t *testing.T, err error) *domain.ValidationError {
	t.Helper()
	require.Error(t, err)
	var ve *domain.ValidationError
	require.True(t, errors.As(err, &ve), "expected ValidationError, got %T: %v", err, err)
	assert.True(t, errors.Is(err, domain.ErrValidation))
	return ve
}

func TestValidateCreate_EventEndBeforeStart(t *testing.T) {
	t.Parallel()

	_, err := validateCreate(context.Background(), TopicInput{
		Type:        ptr("event"),
		Title:       ptr("Tech Fair"),
		Description: ptr("Annual fair"),
		StartDate:   ptr("2025-01-10T09:00Z"),
		EndDate:     ptr("2025-01-10T08:00Z"),
	}, departments())

	ve := requireValidation(t, err)
	require.Len(t, ve.Errors, 1)
	assert.True(t, ve.Has("endDate", domain.CodeInvalidDateOrder))
}

func TestValidateCreate_EventEqualDatesRejected(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		start, end string
	}{
		{"identical", "2025-01-10T09:00:00Z", "2025-01-10T09:00:00Z"},
		{"equal after microsecond rounding", "2025-01-10T09:00:00.0000001Z", "2025-01-10T09:00:00.0000004Z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := validateCreate(context.Background(), TopicInput{
				Type:        ptr("event"),
				Title:       ptr("Tech Fair"),
				Description: ptr("Annual fair"),
				StartDate:   ptr(tt.start),
				EndDate:     ptr(tt.end),
			}, departments())

			ve := requireValidation(t, err)
			assert.Equal(t, map[string]domain.FieldErrorCode{"endDate": domain.CodeInvalidDateOrder}, ve.ByField())
		})
	}
}

func TestParseInstant_TruncatesToMicroseconds(t *testing.T) {
	t.Parallel()

	got, ok := parseInstant("2025-01-10T09:00:00.1234567Z")
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, 1, 10, 9, 0, 0, 123456000, time.UTC), got)
}

func TestValidateCreate_ScholarshipWithoutDeadline(t *testing.T) {
	t.Parallel()

	_, err := validateCreate(context.Background(), TopicInput{
		Type:        ptr("scholarship"),
		Title:       ptr("Merit Award"),
		Description: ptr("For top students"),
	}, departments())

	ve := requireValidation(t, err)
	require.Len(t, ve.Errors, 1)
	assert.True(t, ve.Has("applicationDeadline", domain.CodeMissingRequiredField))
}

func TestValidateCreate_CollectsAllViolations(t *testing.T) {
	t.Parallel()

	_, err := validateCreate(context.Background(), TopicInput{
		Type:      ptr("event"),
		Title:     ptr("   "),
		StartDate: ptr("next tuesday"),
		Company:   ptr("Acme"),
	}, departments())

	ve := requireValidation(t, err)
	assert.Equal(t, map[string]domain.FieldErrorCode{
		"title":       domain.CodeEmptyStringField,
		"description": domain.CodeMissingRequiredField,
		"startDate":   domain.CodeInvalidDateFormat,
		"endDate":     domain.CodeMissingRequiredField,
		"company":     domain.CodeForbiddenFieldForVariant,
	}, ve.ByField())
	assert.Len(t, ve.Errors, 5)
}

func TestValidateCreate_Type(t *testing.T) {
	t.Parallel()

	_, err := validateCreate(context.Background(), TopicInput{
		Title:       ptr("Hello"),
		Description: ptr("World"),
	}, departments())
	ve := requireValidation(t, err)
	assert.Equal(t, map[string]domain.FieldErrorCode{"type": domain.CodeMissingRequiredField}, ve.ByField())

	_, err = validateCreate(context.Background(), TopicInput{
		Type:     ptr("webinar"),
		Location: ptr("Online"),
	}, departments())
	ve = requireValidation(t, err)
	assert.Equal(t, map[string]domain.FieldErrorCode{
		"type":        domain.CodeInvalidTopicType,
		"title":       domain.CodeMissingRequiredField,
		"description": domain.CodeMissingRequiredField,
	}, ve.ByField())

	got, err := validateCreate(context.Background(), TopicInput{
		Type:        ptr(" Advertisement "),
		Title:       ptr("Bike for sale"),
		Description: ptr("Barely used"),
	}, departments())
	require.NoError(t, err)
	assert.Equal(t, domain.TopicTypeAdvertisement, got.Type)
}

func TestValidateCreate_Normalizes(t *testing.T) {
	t.Parallel()

	got, err := validateCreate(context.Background(), TopicInput{
		Type:        ptr("event"),
		Title:       ptr("  Tech Fair "),
		Description: ptr("\tAnnual fair\n"),
		StartDate:   ptr("2025-01-10T12:00:00+03:00"),
		EndDate:     ptr("2025-01-10"),
		Location:    ptr("  Hall A "),
		Organizer:   ptr("   "),
		Department:  ptr("all"),
	}, departments())

	// 2025-01-10 is midnight UTC, before 09:00 UTC.
	ve := requireValidation(t, err)
	assert.True(t, ve.Has("endDate", domain.CodeInvalidDateOrder))

	got, err = validateCreate(context.Background(), TopicInput{
		Type:        ptr("event"),
		Title:       ptr("  Tech Fair "),
		Description: ptr("\tAnnual fair\n"),
		StartDate:   ptr("2025-01-10T12:00:00+03:00"),
		EndDate:     ptr("2025-01-10T18:30"),
		Location:    ptr("  Hall A "),
		Organizer:   ptr("   "),
		Department:  ptr("all"),
	}, departments())
	require.NoError(t, err)

	assert.Equal(t, "Tech Fair", got.Title)
	assert.Equal(t, "Annual fair", got.Description)
	assert.Equal(t, time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC), *got.StartDate)
	assert.Equal(t, time.Date(2025, 1, 10, 18, 30, 0, 0, time.UTC), *got.EndDate)
	assert.Equal(t, time.UTC, got.StartDate.Location())
	require.NotNil(t, got.Location)
	assert.Equal(t, "Hall A", *got.Location)
	assert.Nil(t, got.Organizer, "blank optional attribute is absent")
	assert.Nil(t, got.Department)
}

func TestValidateCreate_Department(t *testing.T) {
	t.Parallel()

	cs := uuid.New()
	base := func(ref string) TopicInput {
		return TopicInput{
			Type:        ptr("notification"),
			Title:       ptr("Exam schedule"),
			Description: ptr("Posted"),
			Department:  ptr(ref),
		}
	}

	for _, ref := range []string{"", "null", "none", "ALL", "general"} {
		got, err := validateCreate(context.Background(), base(ref), departments(cs))
		require.NoError(t, err, ref)
		assert.Nil(t, got.Department, ref)
	}

	got, err := validateCreate(context.Background(), base(cs.String()), departments(cs))
	require.NoError(t, err)
	require.NotNil(t, got.Department)
	assert.Equal(t, cs, got.Department.ID)

	_, err = validateCreate(context.Background(), base("CSE"), departments(cs))
	ve := requireValidation(t, err)
	assert.True(t, ve.Has("department", domain.CodeUnknownDepartmentReference))

	_, err = validateCreate(context.Background(), base(uuid.NewString()), departments(cs))
	ve = requireValidation(t, err)
	assert.True(t, ve.Has("department", domain.CodeUnknownDepartmentReference))
}

func TestValidateCreate_DepartmentLookupFails(t *testing.T) {
	t.Parallel()

	dbErr := errors.New("connection refused")
	depts := &departmentDirectoryMock{
		ExistsFunc: func(ctx context.Context, id uuid.UUID) (bool, error) {
			return false, dbErr
		},
	}

	_, err := validateCreate(context.Background(), TopicInput{
		Type:        ptr("job"),
		Title:       ptr("Barista"),
		Description: ptr("Part time"),
		Department:  ptr(uuid.NewString()),
	}, depts)
	require.Error(t, err)
	assert.ErrorIs(t, err, dbErr)
	assert.False(t, errors.Is(err, domain.ErrValidation))
}

func TestValidateCreate_NotificationImportance(t *testing.T) {
	t.Parallel()

	got, err := validateCreate(context.Background(), TopicInput{
		Type:        ptr("notification"),
		Title:       ptr("Campus closed"),
		Description: ptr("Snow day"),
		IsImportant: ptr(true),
	}, departments())
	require.NoError(t, err)
	require.NotNil(t, got.IsImportant)
	assert.True(t, *got.IsImportant)

	_, err = validateCreate(context.Background(), TopicInput{
		Type:        ptr("job"),
		Title:       ptr("Barista"),
		Description: ptr("Part time"),
		IsImportant: ptr(true),
	}, departments())
	ve := requireValidation(t, err)
	assert.True(t, ve.Has("isImportant", domain.CodeForbiddenFieldForVariant))
}

func storedEvent() *domain.Topic {
	start := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	loc := "Hall A"
	return &domain.Topic{
		ID:          uuid.New(),
		Type:        domain.TopicTypeEvent,
		Title:       "Tech Fair",
		Description: "Annual fair",
		StartDate:   &start,
		EndDate:     &end,
		Location:    &loc,
		CreatedAt:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		UpdatedAt:   time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
	}
}

func TestValidateUpdate_DateOrderAgainstStoredCounterpart(t *testing.T) {
	t.Parallel()

	existing := storedEvent()

	_, err := validateUpdate(context.Background(), existing, TopicInput{EndDate: ptr("2025-03-01T09:00:00Z")}, departments())
	ve := requireValidation(t, err)
	assert.True(t, ve.Has("endDate", domain.CodeInvalidDateOrder))

	_, err = validateUpdate(context.Background(), existing, TopicInput{StartDate: ptr("2025-03-01T13:00:00Z")}, departments())
	ve = requireValidation(t, err)
	assert.True(t, ve.Has("endDate", domain.CodeInvalidDateOrder))

	got, err := validateUpdate(context.Background(), existing, TopicInput{EndDate: ptr("2025-03-01T15:00:00Z")}, departments())
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 1, 15, 0, 0, 0, time.UTC), *got.EndDate)
	assert.Equal(t, *existing.StartDate, *got.StartDate)
}

func TestValidateUpdate_DoesNotMutateExisting(t *testing.T) {
	t.Parallel()

	existing := storedEvent()
	before := existing.Clone()

	_, err := validateUpdate(context.Background(), existing, TopicInput{
		Title:    ptr("Renamed"),
		Location: ptr(""),
	}, departments())
	require.NoError(t, err)
	assert.Equal(t, before, existing)
}

func TestValidateUpdate_EmptyPatchRoundTrip(t *testing.T) {
	t.Parallel()

	existing := storedEvent()

	got, err := validateUpdate(context.Background(), existing, TopicInput{}, departments())
	require.NoError(t, err)
	assert.Equal(t, existing, got)
	assert.NotSame(t, existing, got)
}

func TestValidateUpdate_TypeIsImmutable(t *testing.T) {
	t.Parallel()

	existing := storedEvent()

	_, err := validateUpdate(context.Background(), existing, TopicInput{Type: ptr("job")}, departments())
	ve := requireValidation(t, err)
	assert.Equal(t, map[string]domain.FieldErrorCode{"type": domain.CodeImmutableField}, ve.ByField())

	_, err = validateUpdate(context.Background(), existing, TopicInput{Type: ptr("EVENT")}, departments())
	assert.NoError(t, err)
}

func TestValidateUpdate_Clearing(t *testing.T) {
	t.Parallel()

	existing := storedEvent()

	got, err := validateUpdate(context.Background(), existing, TopicInput{Location: ptr("")}, departments())
	require.NoError(t, err)
	assert.Nil(t, got.Location)

	_, err = validateUpdate(context.Background(), existing, TopicInput{StartDate: ptr("")}, departments())
	ve := requireValidation(t, err)
	assert.True(t, ve.Has("startDate", domain.CodeMissingRequiredField))

	_, err = validateUpdate(context.Background(), existing, TopicInput{Title: ptr(" ")}, departments())
	ve = requireValidation(t, err)
	assert.True(t, ve.Has("title", domain.CodeEmptyStringField))
}

func TestValidateUpdate_ClearIsImportant(t *testing.T) {
	t.Parallel()

	important := true
	notice := &domain.Topic{
		ID:          uuid.New(),
		Type:        domain.TopicTypeNotification,
		Title:       "Exam week",
		Description: "Library hours extended",
		IsImportant: &important,
	}

	got, err := validateUpdate(context.Background(), notice, TopicInput{ClearIsImportant: true}, departments())
	require.NoError(t, err)
	assert.Nil(t, got.IsImportant)

	got, err = validateUpdate(context.Background(), notice, TopicInput{IsImportant: ptr(false), ClearIsImportant: true}, departments())
	require.NoError(t, err)
	require.NotNil(t, got.IsImportant)
	assert.False(t, *got.IsImportant)

	_, err = validateUpdate(context.Background(), storedEvent(), TopicInput{ClearIsImportant: true}, departments())
	ve := requireValidation(t, err)
	assert.Equal(t, map[string]domain.FieldErrorCode{"isImportant": domain.CodeForbiddenFieldForVariant}, ve.ByField())
}

func TestValidateUpdate_ForbiddenField(t *testing.T) {
	t.Parallel()

	deadline := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	existing := &domain.Topic{
		ID:                  uuid.New(),
		Type:                domain.TopicTypeScholarship,
		Title:               "Merit Award",
		Description:         "For top students",
		ApplicationDeadline: &deadline,
	}

	_, err := validateUpdate(context.Background(), existing, TopicInput{
		StartDate: ptr("2025-04-01"),
		Salary:    ptr("1000"),
	}, departments())
	ve := requireValidation(t, err)
	assert.Equal(t, map[string]domain.FieldErrorCode{
		"startDate": domain.CodeForbiddenFieldForVariant,
		"salary":    domain.CodeForbiddenFieldForVariant,
	}, ve.ByField())
}

func TestParseInstant(t *testing.T) {
	t.Parallel()

	want := time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC)
	for _, s := range []string{
		"2025-01-10T09:00Z",
		"2025-01-10T09:00:00Z",
		"2025-01-10T09:00:00.000Z",
		"2025-01-10T11:00:00+02:00",
		"2025-01-10T09:00:00",
		"2025-01-10T09:00",
		" 2025-01-10T09:00Z ",
	} {
		got, ok := parseInstant(s)
		require.True(t, ok, s)
		assert.True(t, want.Equal(got), "%s parsed as %s", s, got)
		assert.Equal(t, time.UTC, got.Location(), s)
	}

	got, ok := parseInstant("2025-01-10")
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC), got)

	for _, s := range []string{"", "tomorrow", "10/01/2025", "2025-13-01"} {
		_, ok := parseInstant(s)
		assert.False(t, ok, s)
	}
}
