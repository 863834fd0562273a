package feedapi

import (
	"encoding/json"
	"fmt"

	"github.com/evcraddock/image-comments/internal/comment"
)

type encodedRoot struct {
	Items []encodedItem `json:"items"`
}

type encodedItem struct {
	ID        string        `json:"id"`
	Message   string        `json:"message"`
	CreatedAt string        `json:"created_at"`
	Author    encodedAuthor `json:"author"`
}

type encodedAuthor struct {
	Username string `json:"username"`
}

// Encode writes comments in the feed wire format. Timestamps keep their
// offset and are truncated to whole seconds.
func Encode(comments []comment.Comment) ([]byte, error) {
	r := encodedRoot{Items: make([]encodedItem, 0, len(comments))}
	for _, c := range comments {
		r.Items = append(r.Items, encodedItem{
			ID:        c.ID.String(),
			Message:   c.Message,
			CreatedAt: c.CreatedAt.Format(wireTimeLayout),
			Author:    encodedAuthor{Username: c.Author.Username},
		})
	}

	data, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("encoding feed: %w", err)
	}
	return data, nil
}
