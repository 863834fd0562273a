package render

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/evcraddock/image-comments/internal/comment"
	"github.com/evcraddock/image-comments/internal/localization"
	"github.com/evcraddock/image-comments/internal/presentation"
)

// stubLoader completes every load synchronously with result.
type stubLoader struct {
	result comment.LoadResult
}

type noopTask struct{}

func (noopTask) Cancel() {}

func (l stubLoader) Load(completion func(comment.LoadResult)) comment.Task {
	completion(l.result)
	return noopTask{}
}

func isSettled(s *Screen) bool {
	select {
	case <-s.Settled():
		return true
	default:
		return false
	}
}

func sample() []comment.Comment {
	return []comment.Comment{
		comment.New(uuid.MustParse("2b7f2c0e-8d6a-4a6e-9a3e-5b8c7d1e0f11"), "Lovely light", time.Date(2020, 5, 20, 11, 24, 59, 0, time.UTC), comment.Author{Username: "alice"}),
		comment.New(uuid.MustParse("9f3c1a22-7b4d-4e8f-a0b1-c2d3e4f5a6b7"), "Great shot", time.Date(2020, 5, 21, 8, 0, 0, 0, time.UTC), comment.Author{Username: "bob"}),
	}
}

func TestScreenTextFeed(t *testing.T) {
	var buf bytes.Buffer
	s := NewScreen(&buf, FormatText)
	vm := presentation.New(stubLoader{result: comment.LoadResult{Comments: sample()}})
	s.Bind(vm)

	s.Title(vm.Title())
	vm.Load()

	out := buf.String()
	for _, want := range []string{vm.Title(), "Loading", "alice", "Lovely light", "2020-05-20 11:24", "bob", "Great shot", "Total: 2 comments"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Index(out, "alice") > strings.Index(out, "bob") {
		t.Error("expected comments in feed order")
	}
	if !isSettled(s) {
		t.Error("expected screen to be settled")
	}
	if err := s.Err(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestScreenTextEmptyFeed(t *testing.T) {
	var buf bytes.Buffer
	s := NewScreen(&buf, FormatText)
	vm := presentation.New(stubLoader{result: comment.LoadResult{Comments: []comment.Comment{}}})
	s.Bind(vm)

	vm.Load()

	if !strings.Contains(buf.String(), "No comments.") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestScreenTextError(t *testing.T) {
	var buf bytes.Buffer
	s := NewScreen(&buf, FormatText)
	vm := presentation.New(stubLoader{result: comment.LoadResult{Err: errors.New("boom")}})
	s.Bind(vm)

	vm.Load()

	want := localization.Default().Lookup(localization.KeyLoadError)
	if !strings.Contains(buf.String(), want) {
		t.Errorf("output missing %q:\n%s", want, buf.String())
	}
	if !isSettled(s) {
		t.Error("expected screen to be settled")
	}
}

func TestScreenJSONFeed(t *testing.T) {
	var buf bytes.Buffer
	s := NewScreen(&buf, FormatJSON)
	vm := presentation.New(stubLoader{result: comment.LoadResult{Comments: sample()}})
	s.Bind(vm)

	s.Title(vm.Title())
	vm.Load()

	var got []comment.Comment
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not a JSON comment list: %v\n%s", err, buf.String())
	}
	if !comment.EqualSlices(sample(), got) {
		t.Errorf("comments = %+v", got)
	}
}

func TestScreenJSONEmptyFeed(t *testing.T) {
	var buf bytes.Buffer
	s := NewScreen(&buf, FormatJSON)
	vm := presentation.New(stubLoader{result: comment.LoadResult{Comments: nil}})
	s.Bind(vm)

	vm.Load()

	if strings.TrimSpace(buf.String()) != "[]" {
		t.Errorf("output = %q, want []", buf.String())
	}
}

func TestScreenJSONError(t *testing.T) {
	var buf bytes.Buffer
	s := NewScreen(&buf, FormatJSON)
	vm := presentation.New(stubLoader{result: comment.LoadResult{Err: errors.New("boom")}})
	s.Bind(vm)

	vm.Load()

	var got map[string]string
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	if got["error"] != localization.Default().Lookup(localization.KeyLoadError) {
		t.Errorf("error = %q", got["error"])
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestScreenRecordsWriteError(t *testing.T) {
	s := NewScreen(failingWriter{}, FormatText)
	vm := presentation.New(stubLoader{result: comment.LoadResult{Comments: sample()}})
	s.Bind(vm)

	vm.Load()

	if s.Err() == nil {
		t.Fatal("expected write error")
	}
	if !isSettled(s) {
		t.Error("expected screen to settle even when writes fail")
	}
}
