package feedapi

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/evcraddock/image-comments/internal/comment"
	"github.com/evcraddock/image-comments/internal/httpclient"
)

// RemoteLoader loads the comments feed from a fixed URL.
type RemoteLoader struct {
	url    string
	client httpclient.Client
	mapper *Mapper
}

var _ comment.Loader = (*RemoteLoader)(nil)

// NewRemoteLoader creates a loader that fetches url with client.
func NewRemoteLoader(url string, client httpclient.Client) *RemoteLoader {
	return &RemoteLoader{
		url:    url,
		client: client,
		mapper: defaultMapper,
	}
}

// Load issues one GET for the feed. Every call is an independent request.
// The returned Task cancels the request and suppresses completion.
func (l *RemoteLoader) Load(completion func(comment.LoadResult)) comment.Task {
	ctx, cancel := context.WithCancel(context.Background())
	t := &task{completion: completion, cancel: cancel}

	l.client.Get(ctx, l.url, func(resp httpclient.Response, err error) {
		t.complete(l.result(resp, err))
	})

	return t
}

func (l *RemoteLoader) result(resp httpclient.Response, err error) comment.LoadResult {
	if err != nil {
		switch httpclient.KindOf(err) {
		case httpclient.KindConnectivity:
			slog.Debug("comments feed unreachable", "url", l.url, "error", err)
			return comment.LoadResult{Err: fmt.Errorf("%w: %v", ErrConnectivity, err)}
		default:
			slog.Debug("comments feed request failed", "url", l.url, "error", err)
			return comment.LoadResult{Err: fmt.Errorf("%w: %v", ErrInvalidData, err)}
		}
	}

	comments, err := l.mapper.Map(resp.Body, resp.StatusCode)
	if err != nil {
		slog.Debug("comments feed rejected", "url", l.url, "status", resp.StatusCode, "error", err)
		return comment.LoadResult{Err: err}
	}

	slog.Debug("comments feed loaded", "url", l.url, "count", len(comments))
	return comment.LoadResult{Comments: comments}
}

// task guards a load's completion. Whichever of Cancel or complete runs
// first disarms the completion, so it is called at most once and never
// after Cancel.
type task struct {
	mu         sync.Mutex
	completion func(comment.LoadResult)
	cancel     context.CancelFunc
}

// Cancel implements comment.Task.
func (t *task) Cancel() {
	t.mu.Lock()
	t.completion = nil
	t.mu.Unlock()
	t.cancel()
}

func (t *task) complete(result comment.LoadResult) {
	t.mu.Lock()
	completion := t.completion
	t.completion = nil
	t.mu.Unlock()
	t.cancel()

	if completion != nil {
		completion(result)
	}
}
