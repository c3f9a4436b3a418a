package domain

import (
	"strings"

	"github.com/google/uuid"
)

// TopicFilter holds the list parameters of a topic query.
type TopicFilter struct {
	Type   *TopicType   // nil = all variants
	Status *TopicStatus // computed per record, never a stored column
	Search string       // case-insensitive substring; empty = no text filter
	Page   int          // 1-based
	Limit  int
}

// TopicPage is one page of a topic query.
type TopicPage struct {
	Items      []TopicView
	Total      int // matches after every filter, before slicing
	Page       int
	Limit      int
	TotalPages int
}

// CandidateFilter is the part of a topic query a storage layer can push down.
// It narrows the candidate set only; visibility is still re-checked in memory.
type CandidateFilter struct {
	Scope   ViewScope
	Type    *TopicType
	SavedBy *uuid.UUID // only topics bookmarked by this user
}

// ParseTypeFilter parses a variant filter. Empty and "all" mean no filter.
func ParseTypeFilter(s string) (*TopicType, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == "all" {
		return nil, nil
	}
	t := TopicType(s)
	if !t.IsValid() {
		return nil, NewQueryParamError("type", "unknown topic type "+s)
	}
	return &t, nil
}

// ParseStatusFilter parses a status filter. Empty and "all" mean no filter.
func ParseStatusFilter(s string) (*TopicStatus, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == "all" {
		return nil, nil
	}
	st := TopicStatus(s)
	if !st.IsValid() {
		return nil, NewQueryParamError("status", "unknown status "+s)
	}
	return &st, nil
}
