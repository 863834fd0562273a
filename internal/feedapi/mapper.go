// Package feedapi loads the image comments feed from a remote HTTP API.
package feedapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/evcraddock/image-comments/internal/comment"
)

// wireTimeLayout is the created_at layout written by Encode.
const wireTimeLayout = "2006-01-02T15:04:05-0700"

// TimeParser parses a created_at value.
type TimeParser func(string) (time.Time, error)

// ParseISO8601 parses an ISO-8601 date-time with either a Z suffix or a
// numeric UTC offset, with or without a colon (+0000 and +00:00).
// Fractional seconds are rejected.
func ParseISO8601(s string) (time.Time, error) {
	// The seconds field ends at offset 19 in every accepted layout.
	if len(s) > 19 && s[19] == '.' {
		return time.Time{}, fmt.Errorf("invalid ISO-8601 date-time %q: fractional seconds", s)
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05Z0700"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid ISO-8601 date-time %q", s)
}

// Mapper decodes feed responses into comments.
type Mapper struct {
	parseTime TimeParser
}

// MapperOption configures a Mapper.
type MapperOption func(*Mapper)

// WithTimeParser sets the parser used for created_at.
func WithTimeParser(p TimeParser) MapperOption {
	return func(m *Mapper) {
		m.parseTime = p
	}
}

// NewMapper creates a Mapper. By default created_at is parsed with ParseISO8601.
func NewMapper(opts ...MapperOption) *Mapper {
	m := &Mapper{parseTime: ParseISO8601}
	for _, o := range opts {
		o(m)
	}
	return m
}

var defaultMapper = NewMapper()

// Map decodes a feed response using the default Mapper.
func Map(data []byte, statusCode int) ([]comment.Comment, error) {
	return defaultMapper.Map(data, statusCode)
}

// object is a decoded JSON object. Keys are matched exactly, unlike
// encoding/json struct fields, so "ID" never stands in for "id".
type object map[string]json.RawMessage

var jsonNull = []byte("null")

// decode unmarshals the value at key into v. A missing or null key is an error.
func (o object) decode(key string, v any) error {
	raw, ok := o[key]
	if !ok || bytes.Equal(bytes.TrimSpace(raw), jsonNull) {
		return fmt.Errorf("missing %s", key)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("decoding %s: %w", key, err)
	}
	return nil
}

// Map decodes a feed response. Any status other than 200 and any decoding
// problem is reported as ErrInvalidData. An empty items array yields an
// empty, non-nil slice.
func (m *Mapper) Map(data []byte, statusCode int) ([]comment.Comment, error) {
	if statusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %d", ErrInvalidData, statusCode)
	}

	var root object
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %v", ErrInvalidData, err)
	}

	var items []object
	if err := root.decode("items", &items); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidData, err)
	}

	comments := make([]comment.Comment, 0, len(items))
	for i, it := range items {
		c, err := m.comment(it)
		if err != nil {
			return nil, fmt.Errorf("%w: item %d: %v", ErrInvalidData, i, err)
		}
		comments = append(comments, c)
	}

	return comments, nil
}

func (m *Mapper) comment(it object) (comment.Comment, error) {
	var rawID, message, rawCreatedAt, username string
	var author object

	if err := it.decode("id", &rawID); err != nil {
		return comment.Comment{}, err
	}
	if err := it.decode("message", &message); err != nil {
		return comment.Comment{}, err
	}
	if err := it.decode("created_at", &rawCreatedAt); err != nil {
		return comment.Comment{}, err
	}
	if err := it.decode("author", &author); err != nil {
		return comment.Comment{}, err
	}
	if err := author.decode("username", &username); err != nil {
		return comment.Comment{}, fmt.Errorf("author: %w", err)
	}

	id, err := parseUUID(rawID)
	if err != nil {
		return comment.Comment{}, err
	}

	createdAt, err := m.parseTime(rawCreatedAt)
	if err != nil {
		return comment.Comment{}, fmt.Errorf("parsing created_at: %w", err)
	}

	return comment.New(id, message, createdAt, comment.Author{Username: username}), nil
}

// parseUUID accepts only the canonical 8-4-4-4-12 form.
func parseUUID(s string) (uuid.UUID, error) {
	if len(s) != 36 {
		return uuid.UUID{}, fmt.Errorf("invalid id %q", s)
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.UUID{}, fmt.Errorf("invalid id %q: %w", s, err)
	}
	return id, nil
}
