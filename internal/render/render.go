// Package render draws the image comments screen in a terminal.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/evcraddock/image-comments/internal/comment"
	"github.com/evcraddock/image-comments/internal/presentation"
)

// Format selects how comments are written.
type Format string

const (
	// FormatText writes lipgloss-styled lines for a terminal.
	FormatText Format = "text"
	// FormatJSON writes only the settled feed, or its error, as JSON.
	FormatJSON Format = "json"
)

const timeLayout = "2006-01-02 15:04"

type styles struct {
	title   lipgloss.Style
	muted   lipgloss.Style
	author  lipgloss.Style
	message lipgloss.Style
	err     lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		title:   r.NewStyle().Bold(true).Underline(true),
		muted:   r.NewStyle().Faint(true),
		author:  r.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
		message: r.NewStyle().PaddingLeft(2),
		err:     r.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	}
}

// Screen writes a ViewModel's events to w.
// Output is serialized, so events may arrive from any goroutine.
type Screen struct {
	mu      sync.Mutex
	w       io.Writer
	format  Format
	styles  styles
	err     error
	settled chan struct{}
	once    sync.Once
}

// NewScreen creates a Screen writing to w in the given format.
func NewScreen(w io.Writer, format Format) *Screen {
	return &Screen{
		w:       w,
		format:  format,
		styles:  newStyles(lipgloss.NewRenderer(w)),
		settled: make(chan struct{}),
	}
}

// Bind subscribes the Screen to every channel of vm, replacing any
// handlers already attached.
func (s *Screen) Bind(vm *presentation.ViewModel) {
	vm.OnLoadingStateChange(s.loadingStateChanged)
	vm.OnErrorStateChange(s.errorStateChanged)
	vm.OnFeedLoad(s.feedLoaded)
}

// Settled is closed after the first feed or error has been written.
func (s *Screen) Settled() <-chan struct{} {
	return s.settled
}

// Err returns the first write error, if any.
func (s *Screen) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Title writes the screen header.
func (s *Screen) Title(title string) {
	if s.format == FormatJSON {
		return
	}
	s.write(s.styles.title.Render(title) + "\n\n")
}

func (s *Screen) loadingStateChanged(isLoading bool) {
	if !isLoading || s.format == FormatJSON {
		return
	}
	s.write(s.styles.muted.Render("Loading…") + "\n")
}

func (s *Screen) errorStateChanged(message string) {
	if s.format == FormatJSON {
		data, err := json.Marshal(map[string]string{"error": message})
		if err != nil {
			s.setErr(fmt.Errorf("marshaling error: %w", err))
		} else {
			s.write(string(data) + "\n")
		}
	} else {
		s.write(s.styles.err.Render("✖ "+message) + "\n")
	}
	s.settle()
}

func (s *Screen) feedLoaded(comments []comment.Comment) {
	if s.format == FormatJSON {
		s.writeJSON(comments)
	} else {
		s.write(s.text(comments))
	}
	s.settle()
}

func (s *Screen) text(comments []comment.Comment) string {
	if len(comments) == 0 {
		return "No comments.\n"
	}

	var b strings.Builder
	for _, c := range comments {
		fmt.Fprintf(&b, "%s %s\n%s\n\n",
			s.styles.author.Render(c.Author.Username),
			s.styles.muted.Render(c.CreatedAt.Format(timeLayout)),
			s.styles.message.Render(c.Message))
	}
	fmt.Fprintf(&b, "Total: %d comments\n", len(comments))
	return b.String()
}

func (s *Screen) writeJSON(comments []comment.Comment) {
	if comments == nil {
		comments = []comment.Comment{}
	}
	data, err := json.MarshalIndent(comments, "", "  ")
	if err != nil {
		s.setErr(fmt.Errorf("marshaling comments: %w", err))
		return
	}
	s.write(string(data) + "\n")
}

func (s *Screen) write(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := io.WriteString(s.w, text); err != nil && s.err == nil {
		s.err = fmt.Errorf("writing output: %w", err)
	}
}

func (s *Screen) setErr(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err == nil {
		s.err = err
	}
}

func (s *Screen) settle() {
	s.once.Do(func() { close(s.settled) })
}
