// Package fixture serves a static comments feed over HTTP for local testing.
package fixture

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/evcraddock/image-comments/internal/comment"
)

// File is the YAML layout of a fixture feed.
type File struct {
	Comments []Entry `yaml:"comments"`
}

// Entry is one comment in a fixture file. An empty ID gets a random one.
type Entry struct {
	ID        string    `yaml:"id"`
	Message   string    `yaml:"message"`
	CreatedAt time.Time `yaml:"created_at"`
	Author    string    `yaml:"author"`
}

// Load reads a fixture file.
func Load(path string) ([]comment.Comment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading fixture: %w", err)
	}
	return Parse(data)
}

// Parse decodes fixture YAML into comments, in file order.
func Parse(data []byte) ([]comment.Comment, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing fixture: %w", err)
	}

	comments := make([]comment.Comment, 0, len(f.Comments))
	for i, e := range f.Comments {
		id := uuid.New()
		if e.ID != "" {
			var err error
			id, err = uuid.Parse(e.ID)
			if err != nil {
				return nil, fmt.Errorf("comment %d: invalid id %q: %w", i, e.ID, err)
			}
		}
		if e.CreatedAt.IsZero() {
			return nil, fmt.Errorf("comment %d: created_at is required", i)
		}
		comments = append(comments, comment.New(id, e.Message, e.CreatedAt, comment.Author{Username: e.Author}))
	}

	return comments, nil
}

// Sample returns a small feed with timestamps relative to now.
func Sample(now time.Time) []comment.Comment {
	now = now.Truncate(time.Second)
	return []comment.Comment{
		comment.New(uuid.New(), "The light in this one is unreal.", now.Add(-5*time.Minute), comment.Author{Username: "marta"}),
		comment.New(uuid.New(), "Where was this taken?", now.Add(-3*time.Hour), comment.Author{Username: "jules"}),
		comment.New(uuid.New(), "Saving this for my next trip.", now.Add(-49*time.Hour), comment.Author{Username: "kenji"}),
	}
}
