package presentation

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/evcraddock/image-comments/internal/feedapi"
	"github.com/evcraddock/image-comments/internal/httpclient"
)

// manualClient holds requests until the test delivers a response.
type manualClient struct {
	completions []func(httpclient.Response, error)
}

func (c *manualClient) Get(_ context.Context, _ string, completion func(httpclient.Response, error)) {
	c.completions = append(c.completions, completion)
}

func TestCancelledRemoteLoadEmitsNothingAfterLoading(t *testing.T) {
	client := &manualClient{}
	vm := New(feedapi.NewRemoteLoader("https://any-url.com", client))
	v := bind(vm)

	vm.Load()
	vm.CancelLoadIfNeeded()
	client.completions[0](httpclient.Response{Body: []byte(`{"items":[]}`), StatusCode: http.StatusOK}, nil)

	if diff := cmp.Diff([]string{"loading:true"}, v.recorded()); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
}

func TestRemoteLoadThroughViewModel(t *testing.T) {
	client := &manualClient{}
	vm := New(feedapi.NewRemoteLoader("https://any-url.com", client))
	v := bind(vm)

	vm.Load()
	client.completions[0](httpclient.Response{Body: []byte("not json"), StatusCode: http.StatusOK}, nil)
	vm.Load()
	client.completions[1](httpclient.Response{}, &httpclient.Error{Kind: httpclient.KindConnectivity})
	vm.Load()
	client.completions[2](httpclient.Response{Body: []byte(`{"items":[]}`), StatusCode: http.StatusOK}, nil)

	want := []string{
		"loading:true", "loading:false", "error:" + loadError(),
		"loading:true", "loading:false", "error:" + loadError(),
		"loading:true", "loading:false", "feed:0",
	}
	if diff := cmp.Diff(want, v.recorded()); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
}
