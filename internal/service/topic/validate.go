package topic

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"

	"github.com/heartmarshall/campusboard-backend/internal/domain"
)

// Accepted instant layouts, tried in order. Layouts without a zone are UTC.
// Parsed instants are truncated to microseconds, the precision of timestamptz.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

func parseInstant(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC().Truncate(time.Microsecond), true
		}
	}
	return time.Time{}, false
}

var (
	errBlank         = validation.NewError(domain.CodeEmptyStringField.String(), "must not be blank")
	errBadDate       = validation.NewError(domain.CodeInvalidDateFormat.String(), "must be an ISO-8601 instant")
	errBadDepartment = validation.NewError(domain.CodeUnknownDepartmentReference.String(), "must be a department id")

	textRules       = []validation.Rule{validation.Required.ErrorObject(errBlank)}
	departmentRules = []validation.Rule{is.UUID.ErrorObject(errBadDepartment)}
	dateRules       = []validation.Rule{validation.By(func(value any) error {
		s, _ := value.(string)
		if _, ok := parseInstant(s); !ok {
			return errBadDate
		}
		return nil
	})}
)

type textAttr struct {
	field domain.Field
	in    func(*TopicInput) *string
	out   func(*domain.Topic) **string
}

type dateAttr struct {
	field domain.Field
	in    func(*TopicInput) *string
	out   func(*domain.Topic) **time.Time
}

var dateAttrs = []dateAttr{
	{domain.FieldStartDate, func(i *TopicInput) *string { return i.StartDate }, func(t *domain.Topic) **time.Time { return &t.StartDate }},
	{domain.FieldEndDate, func(i *TopicInput) *string { return i.EndDate }, func(t *domain.Topic) **time.Time { return &t.EndDate }},
	{domain.FieldApplicationDeadline, func(i *TopicInput) *string { return i.ApplicationDeadline }, func(t *domain.Topic) **time.Time { return &t.ApplicationDeadline }},
}

var optionalTextAttrs = []textAttr{
	{domain.FieldLocation, func(i *TopicInput) *string { return i.Location }, func(t *domain.Topic) **string { return &t.Location }},
	{domain.FieldOrganizer, func(i *TopicInput) *string { return i.Organizer }, func(t *domain.Topic) **string { return &t.Organizer }},
	{domain.FieldRequirements, func(i *TopicInput) *string { return i.Requirements }, func(t *domain.Topic) **string { return &t.Requirements }},
	{domain.FieldValue, func(i *TopicInput) *string { return i.Value }, func(t *domain.Topic) **string { return &t.Value }},
	{domain.FieldProvider, func(i *TopicInput) *string { return i.Provider }, func(t *domain.Topic) **string { return &t.Provider }},
	{domain.FieldEligibility, func(i *TopicInput) *string { return i.Eligibility }, func(t *domain.Topic) **string { return &t.Eligibility }},
	{domain.FieldApplicationProcess, func(i *TopicInput) *string { return i.ApplicationProcess }, func(t *domain.Topic) **string { return &t.ApplicationProcess }},
	{domain.FieldCompany, func(i *TopicInput) *string { return i.Company }, func(t *domain.Topic) **string { return &t.Company }},
	{domain.FieldPosition, func(i *TopicInput) *string { return i.Position }, func(t *domain.Topic) **string { return &t.Position }},
	{domain.FieldSalary, func(i *TopicInput) *string { return i.Salary }, func(t *domain.Topic) **string { return &t.Salary }},
	{domain.FieldContactInfo, func(i *TopicInput) *string { return i.ContactInfo }, func(t *domain.Topic) **string { return &t.ContactInfo }},
}

// schema wraps the registry entry of a variant. For an unknown variant every
// attribute is allowed and none is required, so the remaining checks can
// still run and be reported together with InvalidTopicType.
type schema struct {
	req   domain.Requirements
	known bool
}

func (s schema) allows(f domain.Field) bool   { return !s.known || s.req.Allows(f) }
func (s schema) requires(f domain.Field) bool { return s.known && s.req.Requires(f) }

// violations collects field errors in the order they are found.
type violations struct {
	errs    []domain.FieldError
	flagged map[domain.Field]bool
}

func (v *violations) add(f domain.Field, code domain.FieldErrorCode, msg string) {
	if v.flagged == nil {
		v.flagged = make(map[domain.Field]bool)
	}
	v.flagged[f] = true
	v.errs = append(v.errs, domain.FieldError{Field: f.String(), Code: code, Message: msg})
}

// check runs ozzo rules on a value and records the first failure.
func (v *violations) check(f domain.Field, value any, rules ...validation.Rule) bool {
	err := validation.Validate(value, rules...)
	if err == nil {
		return true
	}
	var ve validation.Error
	if errors.As(err, &ve) {
		v.add(f, domain.FieldErrorCode(ve.Code()), ve.Message())
	} else {
		v.add(f, domain.CodeInvalidDateFormat, err.Error())
	}
	return false
}

func (v *violations) err() error {
	if len(v.errs) == 0 {
		return nil
	}
	return domain.NewValidationErrors(v.errs)
}

// validateCreate turns a create payload into a normalized topic.
// All violations are reported at once as a *domain.ValidationError.
func validateCreate(ctx context.Context, in TopicInput, depts departmentDirectory) (*domain.Topic, error) {
	var v violations
	t := &domain.Topic{}

	sc := schema{}
	switch {
	case in.Type == nil || strings.TrimSpace(*in.Type) == "":
		v.add(domain.FieldType, domain.CodeMissingRequiredField, "required")
	default:
		t.Type = domain.TopicType(strings.ToLower(strings.TrimSpace(*in.Type)))
		sc.req, sc.known = domain.RequirementsFor(t.Type)
		if !sc.known {
			v.add(domain.FieldType, domain.CodeInvalidTopicType, fmt.Sprintf("unknown topic type %q", t.Type))
		}
	}

	if err := applyInput(ctx, t, &in, sc, depts, &v); err != nil {
		return nil, err
	}
	checkRecord(t, sc, &v)

	if err := v.err(); err != nil {
		return nil, err
	}
	return t, nil
}

// validateUpdate applies a patch to a copy of the stored record and
// re-validates the merged result. Date order is checked against the stored
// counterpart when only one side of the interval is patched.
func validateUpdate(ctx context.Context, existing *domain.Topic, in TopicInput, depts departmentDirectory) (*domain.Topic, error) {
	var v violations
	t := existing.Clone()

	if in.Type != nil && domain.TopicType(strings.ToLower(strings.TrimSpace(*in.Type))) != existing.Type {
		v.add(domain.FieldType, domain.CodeImmutableField, "type cannot be changed")
	}

	sc := schema{}
	sc.req, sc.known = domain.RequirementsFor(existing.Type)

	if err := applyInput(ctx, t, &in, sc, depts, &v); err != nil {
		return nil, err
	}
	checkRecord(t, sc, &v)

	if err := v.err(); err != nil {
		return nil, err
	}
	return t, nil
}

// applyInput copies every supplied field of in onto t, normalizing values
// and recording per-field violations. Only infrastructure failures are
// returned as errors.
func applyInput(ctx context.Context, t *domain.Topic, in *TopicInput, sc schema, depts departmentDirectory, v *violations) error {
	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		if v.check(domain.FieldTitle, title, textRules...) {
			t.Title = title
		}
	}
	if in.Description != nil {
		desc := strings.TrimSpace(*in.Description)
		if v.check(domain.FieldDescription, desc, textRules...) {
			t.Description = desc
		}
	}

	if in.Department != nil {
		dept, err := resolveDepartment(ctx, *in.Department, depts, v)
		if err != nil {
			return err
		}
		if !v.flagged[domain.FieldDepartment] {
			t.Department = dept
		}
	}

	for _, a := range dateAttrs {
		raw := a.in(in)
		if raw == nil {
			continue
		}
		if !sc.allows(a.field) {
			v.add(a.field, domain.CodeForbiddenFieldForVariant, fmt.Sprintf("not allowed for %s", t.Type))
			continue
		}
		s := strings.TrimSpace(*raw)
		if s == "" {
			*a.out(t) = nil
			continue
		}
		if !v.check(a.field, s, dateRules...) {
			continue
		}
		ts, _ := parseInstant(s)
		*a.out(t) = &ts
	}

	for _, a := range optionalTextAttrs {
		raw := a.in(in)
		if raw == nil {
			continue
		}
		if !sc.allows(a.field) {
			v.add(a.field, domain.CodeForbiddenFieldForVariant, fmt.Sprintf("not allowed for %s", t.Type))
			continue
		}
		*a.out(t) = trimOrNil(raw)
	}

	if in.IsImportant != nil || in.ClearIsImportant {
		switch {
		case !sc.allows(domain.FieldIsImportant):
			v.add(domain.FieldIsImportant, domain.CodeForbiddenFieldForVariant, fmt.Sprintf("not allowed for %s", t.Type))
		case in.IsImportant != nil:
			important := *in.IsImportant
			t.IsImportant = &important
		default:
			t.IsImportant = nil
		}
	}

	return nil
}

// resolveDepartment maps a department reference to a department.
// nil means a general topic.
func resolveDepartment(ctx context.Context, ref string, depts departmentDirectory, v *violations) (*domain.Department, error) {
	ref = strings.ToLower(domain.NormalizeDepartmentRef(ref))
	if ref == "" {
		return nil, nil
	}
	if !v.check(domain.FieldDepartment, ref, departmentRules...) {
		return nil, nil
	}
	id := uuid.MustParse(ref)

	ok, err := depts.Exists(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("check department: %w", err)
	}
	if !ok {
		v.add(domain.FieldDepartment, domain.CodeUnknownDepartmentReference, "department does not exist")
		return nil, nil
	}
	return &domain.Department{ID: id}, nil
}

// checkRecord enforces the whole-record invariants on the merged topic.
// Fields that already failed a per-field check are not reported twice.
func checkRecord(t *domain.Topic, sc schema, v *violations) {
	if t.Title == "" && !v.flagged[domain.FieldTitle] {
		v.add(domain.FieldTitle, domain.CodeMissingRequiredField, "required")
	}
	if t.Description == "" && !v.flagged[domain.FieldDescription] {
		v.add(domain.FieldDescription, domain.CodeMissingRequiredField, "required")
	}

	for _, a := range dateAttrs {
		if sc.requires(a.field) && *a.out(t) == nil && !v.flagged[a.field] {
			v.add(a.field, domain.CodeMissingRequiredField, fmt.Sprintf("required for %s", t.Type))
		}
	}

	if t.StartDate != nil && t.EndDate != nil &&
		!v.flagged[domain.FieldStartDate] && !v.flagged[domain.FieldEndDate] &&
		!t.EndDate.After(*t.StartDate) {
		v.add(domain.FieldEndDate, domain.CodeInvalidDateOrder, "must be after startDate")
	}
}
