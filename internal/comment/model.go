// Package comment provides the image comment domain model and the loader
// capability used to fetch a feed of comments.
package comment

import (
	"time"

	"github.com/google/uuid"
)

// Comment is a single comment on an image.
type Comment struct {
	ID        uuid.UUID `json:"id"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
	Author    Author    `json:"author"`
}

// Author is the user who wrote a comment.
type Author struct {
	Username string `json:"username"`
}

// New creates a comment.
func New(id uuid.UUID, message string, createdAt time.Time, author Author) Comment {
	return Comment{
		ID:        id,
		Message:   message,
		CreatedAt: createdAt,
		Author:    author,
	}
}

// Equal reports whether c and o hold the same values.
// Timestamps are compared as instants, so the same moment in two
// locations is equal.
func (c Comment) Equal(o Comment) bool {
	return c.ID == o.ID &&
		c.Message == o.Message &&
		c.CreatedAt.Equal(o.CreatedAt) &&
		c.Author == o.Author
}

// EqualSlices reports whether a and b contain equal comments in the same order.
func EqualSlices(a, b []Comment) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}
