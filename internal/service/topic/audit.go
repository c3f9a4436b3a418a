package topic

import (
	"time"

	"github.com/heartmarshall/campusboard-backend/internal/domain"
)

// snapshot flattens the audited attributes of a topic. Absent attributes
// are omitted.
func snapshot(t *domain.Topic) map[string]any {
	out := map[string]any{
		domain.FieldType.String():        string(t.Type),
		domain.FieldTitle.String():       t.Title,
		domain.FieldDescription.String(): t.Description,
	}
	if t.Department != nil {
		out[domain.FieldDepartment.String()] = t.Department.ID.String()
	}
	for _, a := range dateAttrs {
		if ts := *a.out(t); ts != nil {
			out[a.field.String()] = ts.UTC().Format(time.RFC3339Nano)
		}
	}
	for _, a := range optionalTextAttrs {
		if s := *a.out(t); s != nil {
			out[a.field.String()] = *s
		}
	}
	if t.IsImportant != nil {
		out[domain.FieldIsImportant.String()] = *t.IsImportant
	}
	return out
}

// buildTopicChanges returns only changed fields for audit.
func buildTopicChanges(old, updated *domain.Topic) map[string]any {
	before, after := snapshot(old), snapshot(updated)
	changes := make(map[string]any)
	for k, oldVal := range before {
		if newVal, ok := after[k]; !ok {
			changes[k] = map[string]any{"old": oldVal, "new": nil}
		} else if newVal != oldVal {
			changes[k] = map[string]any{"old": oldVal, "new": newVal}
		}
	}
	for k, newVal := range after {
		if _, ok := before[k]; !ok {
			changes[k] = map[string]any{"old": nil, "new": newVal}
		}
	}
	return changes
}

// wrapNew wraps a snapshot as {"field": {"new": value}} for create records.
func wrapNew(s map[string]any) map[string]any {
	out := make(map[string]any, len(s))
	for k, v := range s {
		out[k] = map[string]any{"new": v}
	}
	return out
}

// wrapOld wraps a snapshot as {"field": {"old": value}} for delete records.
func wrapOld(s map[string]any) map[string]any {
	out := make(map[string]any, len(s))
	for k, v := range s {
		out[k] = map[string]any{"old": v}
	}
	return out
}
