package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/heartmarshall/campusboard-backend/internal/service/topic"
)

// stringFields maps payload keys to TopicInput fields.
var stringFields = map[string]func(*topic.TopicInput) **string{
	"type":                func(in *topic.TopicInput) **string { return &in.Type },
	"title":               func(in *topic.TopicInput) **string { return &in.Title },
	"description":         func(in *topic.TopicInput) **string { return &in.Description },
	"department":          func(in *topic.TopicInput) **string { return &in.Department },
	"startDate":           func(in *topic.TopicInput) **string { return &in.StartDate },
	"endDate":             func(in *topic.TopicInput) **string { return &in.EndDate },
	"location":            func(in *topic.TopicInput) **string { return &in.Location },
	"organizer":           func(in *topic.TopicInput) **string { return &in.Organizer },
	"applicationDeadline": func(in *topic.TopicInput) **string { return &in.ApplicationDeadline },
	"requirements":        func(in *topic.TopicInput) **string { return &in.Requirements },
	"value":               func(in *topic.TopicInput) **string { return &in.Value },
	"provider":            func(in *topic.TopicInput) **string { return &in.Provider },
	"eligibility":         func(in *topic.TopicInput) **string { return &in.Eligibility },
	"applicationProcess":  func(in *topic.TopicInput) **string { return &in.ApplicationProcess },
	"company":             func(in *topic.TopicInput) **string { return &in.Company },
	"position":            func(in *topic.TopicInput) **string { return &in.Position },
	"salary":              func(in *topic.TopicInput) **string { return &in.Salary },
	"contactInfo":         func(in *topic.TopicInput) **string { return &in.ContactInfo },
}

// decodeTopicInput reads a JSON object into a TopicInput.
// An absent key stays nil. JSON null is sent as "" so it clears an optional
// attribute and makes a topic general when given for department. A null
// isImportant sets ClearIsImportant.
// String fields also accept numbers (e.g. "value": 5000).
func decodeTopicInput(r io.Reader) (topic.TopicInput, error) {
	var raw map[string]json.RawMessage
	dec := json.NewDecoder(r)
	if err := dec.Decode(&raw); err != nil {
		if err == io.EOF {
			return topic.TopicInput{}, nil
		}
		return topic.TopicInput{}, fmt.Errorf("decode payload: %w", err)
	}

	var (
		in      topic.TopicInput
		unknown []string
	)
	for key, msg := range raw {
		if key == "isImportant" {
			b, err := decodeBool(msg)
			if err != nil {
				return topic.TopicInput{}, fmt.Errorf("isImportant: %w", err)
			}
			in.IsImportant = b
			in.ClearIsImportant = b == nil
			continue
		}
		field, ok := stringFields[key]
		if !ok {
			unknown = append(unknown, key)
			continue
		}
		s, err := decodeString(msg)
		if err != nil {
			return topic.TopicInput{}, fmt.Errorf("%s: %w", key, err)
		}
		*field(&in) = &s
	}

	if len(unknown) > 0 {
		sort.Strings(unknown)
		return topic.TopicInput{}, fmt.Errorf("unknown fields: %s", strings.Join(unknown, ", "))
	}
	return in, nil
}

func decodeString(msg json.RawMessage) (string, error) {
	msg = bytes.TrimSpace(msg)
	if bytes.Equal(msg, []byte("null")) {
		return "", nil
	}
	var s string
	if err := json.Unmarshal(msg, &s); err == nil {
		return s, nil
	}
	var n json.Number
	if err := json.Unmarshal(msg, &n); err == nil {
		return n.String(), nil
	}
	return "", fmt.Errorf("expected a string, got %s", msg)
}

func decodeBool(msg json.RawMessage) (*bool, error) {
	msg = bytes.TrimSpace(msg)
	if bytes.Equal(msg, []byte("null")) {
		return nil, nil
	}
	var b bool
	if err := json.Unmarshal(msg, &b); err == nil {
		return &b, nil
	}
	var s string
	if err := json.Unmarshal(msg, &s); err == nil {
		if v, err := strconv.ParseBool(s); err == nil {
			return &v, nil
		}
	}
	return nil, fmt.Errorf("expected a boolean, got %s", msg)
}
