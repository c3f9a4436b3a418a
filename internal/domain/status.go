package domain

import "time"

// DeriveStatus classifies a topic relative to now. It only reads the date
// attributes the topic's variant accepts and has no side effects.
//
//   - no relevant dates: indefinite
//   - now after applicationDeadline: expired
//   - now before startDate: upcoming
//   - now after endDate: ended
//   - otherwise inside [startDate, endDate] (both ends inclusive): ongoing
//   - only a future applicationDeadline: upcoming
func DeriveStatus(t *Topic, now time.Time) TopicStatus {
	start, end, deadline := relevantDates(t)

	if start == nil && end == nil && deadline == nil {
		return TopicStatusIndefinite
	}

	if deadline != nil && now.After(*deadline) {
		return TopicStatusExpired
	}

	if start != nil || end != nil {
		if start != nil && now.Before(*start) {
			return TopicStatusUpcoming
		}
		if end != nil && now.After(*end) {
			return TopicStatusEnded
		}
		return TopicStatusOngoing
	}

	return TopicStatusUpcoming
}

func relevantDates(t *Topic) (start, end, deadline *time.Time) {
	req, ok := RequirementsFor(t.Type)
	if !ok {
		return t.StartDate, t.EndDate, t.ApplicationDeadline
	}
	for _, f := range req.DateFields() {
		switch f {
		case FieldStartDate:
			start = t.StartDate
		case FieldEndDate:
			end = t.EndDate
		case FieldApplicationDeadline:
			deadline = t.ApplicationDeadline
		}
	}
	return start, end, deadline
}
