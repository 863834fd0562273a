// Package httpclient provides the HTTP GET transport used to fetch feeds.
package httpclient

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// Response is the body and status of a completed request.
type Response struct {
	Body       []byte
	StatusCode int
}

// Client performs asynchronous HTTP GET requests.
type Client interface {
	// Get starts a GET request for url and returns immediately.
	// completion is called exactly once, with either a Response or an
	// *Error. Cancelling ctx aborts the request.
	Get(ctx context.Context, url string, completion func(Response, error))
}

// NetClient is a Client backed by net/http.
type NetClient struct {
	httpClient *http.Client
}

// NewNetClient creates a NetClient with the given request timeout.
// A zero timeout means no timeout.
func NewNetClient(timeout time.Duration) *NetClient {
	return &NetClient{
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Get implements Client. The request runs on its own goroutine.
func (c *NetClient) Get(ctx context.Context, url string, completion func(Response, error)) {
	go func() {
		resp, err := c.get(ctx, url)
		completion(resp, err)
	}()
}

func (c *NetClient) get(ctx context.Context, url string) (Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Response{}, &Error{Kind: KindOther, Err: fmt.Errorf("creating request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Response{}, classify(fmt.Errorf("request failed: %w", err))
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			slog.Warn("closing response body", "url", url, "error", cerr)
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Response{}, classify(fmt.Errorf("reading response: %w", err))
	}

	return Response{Body: body, StatusCode: resp.StatusCode}, nil
}
