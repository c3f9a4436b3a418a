package domain

import "sort"

// Field names a Topic attribute as it appears in payloads and error reports.
type Field string

const (
	FieldType                Field = "type"
	FieldTitle               Field = "title"
	FieldDescription         Field = "description"
	FieldDepartment          Field = "department"
	FieldStartDate           Field = "startDate"
	FieldEndDate             Field = "endDate"
	FieldLocation            Field = "location"
	FieldOrganizer           Field = "organizer"
	FieldApplicationDeadline Field = "applicationDeadline"
	FieldRequirements        Field = "requirements"
	FieldValue               Field = "value"
	FieldProvider            Field = "provider"
	FieldEligibility         Field = "eligibility"
	FieldApplicationProcess  Field = "applicationProcess"
	FieldIsImportant         Field = "isImportant"
	FieldCompany             Field = "company"
	FieldPosition            Field = "position"
	FieldSalary              Field = "salary"
	FieldContactInfo         Field = "contactInfo"
)

func (f Field) String() string { return string(f) }

// IsDate reports whether the field holds an instant.
func (f Field) IsDate() bool {
	switch f {
	case FieldStartDate, FieldEndDate, FieldApplicationDeadline:
		return true
	}
	return false
}

// FieldSet is an unordered set of fields.
type FieldSet map[Field]struct{}

func newFieldSet(fields ...Field) FieldSet {
	s := make(FieldSet, len(fields))
	for _, f := range fields {
		s[f] = struct{}{}
	}
	return s
}

// Has reports whether f is in the set.
func (s FieldSet) Has(f Field) bool {
	_, ok := s[f]
	return ok
}

// Sorted returns the fields in lexical order.
func (s FieldSet) Sorted() []Field {
	out := make([]Field, 0, len(s))
	for f := range s {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Requirements declares the attributes a variant accepts.
// Fields in neither set are forbidden for the variant.
type Requirements struct {
	Required FieldSet
	Optional FieldSet
}

// Allows reports whether f may be present on the variant.
func (r Requirements) Allows(f Field) bool {
	return r.Required.Has(f) || r.Optional.Has(f)
}

// Requires reports whether f must be present on the variant.
func (r Requirements) Requires(f Field) bool {
	return r.Required.Has(f)
}

// DateFields returns the date attributes the variant accepts, in a fixed order.
func (r Requirements) DateFields() []Field {
	var out []Field
	for _, f := range []Field{FieldStartDate, FieldEndDate, FieldApplicationDeadline} {
		if r.Allows(f) {
			out = append(out, f)
		}
	}
	return out
}

// Fields common to every variant.
var (
	commonRequired = []Field{FieldTitle, FieldDescription}
	commonOptional = []Field{FieldDepartment}
)

var (
	schedulingFields = []Field{FieldStartDate, FieldEndDate, FieldLocation, FieldOrganizer}
	employmentFields = []Field{FieldCompany, FieldPosition, FieldSalary, FieldContactInfo}
)

func variant(required, optional []Field) Requirements {
	return Requirements{
		Required: newFieldSet(append(append([]Field{}, commonRequired...), required...)...),
		Optional: newFieldSet(append(append([]Field{}, commonOptional...), optional...)...),
	}
}

// variantRegistry is the single source of truth for per-variant attributes.
// Adding a variant means adding a TopicType constant and one entry here.
var variantRegistry = map[TopicType]Requirements{
	TopicTypeEvent: variant(
		[]Field{FieldStartDate, FieldEndDate},
		[]Field{FieldLocation, FieldOrganizer},
	),
	TopicTypeScholarship: variant(
		[]Field{FieldApplicationDeadline},
		[]Field{FieldRequirements, FieldValue, FieldProvider, FieldEligibility, FieldApplicationProcess},
	),
	TopicTypeNotification:    variant(nil, []Field{FieldIsImportant}),
	TopicTypeJob:             variant(nil, employmentFields),
	TopicTypeAdvertisement:   variant(nil, nil),
	TopicTypeInternship:      variant(nil, employmentFields),
	TopicTypeRecruitment:     variant(nil, employmentFields),
	TopicTypeVolunteer:       variant(nil, schedulingFields),
	TopicTypeExtracurricular: variant(nil, schedulingFields),
}

// RequirementsFor returns the attribute requirements of a variant.
// ok is false for an unknown variant.
func RequirementsFor(t TopicType) (Requirements, bool) {
	r, ok := variantRegistry[t]
	return r, ok
}

// TopicTypes returns every registered variant in lexical order.
func TopicTypes() []TopicType {
	out := make([]TopicType, 0, len(variantRegistry))
	for t := range variantRegistry {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// PresentFields returns the variant attributes that are set on the topic,
// excluding the always-present type, title and description.
func (t *Topic) PresentFields() FieldSet {
	s := make(FieldSet)
	add := func(f Field, present bool) {
		if present {
			s[f] = struct{}{}
		}
	}
	add(FieldDepartment, t.Department != nil)
	add(FieldStartDate, t.StartDate != nil)
	add(FieldEndDate, t.EndDate != nil)
	add(FieldLocation, t.Location != nil)
	add(FieldOrganizer, t.Organizer != nil)
	add(FieldApplicationDeadline, t.ApplicationDeadline != nil)
	add(FieldRequirements, t.Requirements != nil)
	add(FieldValue, t.Value != nil)
	add(FieldProvider, t.Provider != nil)
	add(FieldEligibility, t.Eligibility != nil)
	add(FieldApplicationProcess, t.ApplicationProcess != nil)
	add(FieldIsImportant, t.IsImportant != nil)
	add(FieldCompany, t.Company != nil)
	add(FieldPosition, t.Position != nil)
	add(FieldSalary, t.Salary != nil)
	add(FieldContactInfo, t.ContactInfo != nil)
	return s
}
