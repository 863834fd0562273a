package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/evcraddock/image-comments/internal/comment"
	"github.com/evcraddock/image-comments/internal/fixture"
)

type serveOptions struct {
	port    int
	fixture string
	status  int
}

func newServeCmd() *cobra.Command {
	var opts serveOptions

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a fixture comments feed",
		Long:  "Start an HTTP server answering GET /image/{id}/comments with a fixture feed. Without --fixture a generated sample feed is served.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			srv, err := newFixtureServer(opts)
			if err != nil {
				return err
			}
			return srv.ListenAndServe(opts.port)
		},
	}

	cmd.Flags().IntVar(&opts.port, "port", 8080, "port to listen on")
	cmd.Flags().StringVar(&opts.fixture, "fixture", "", "YAML fixture file with the comments to serve")
	cmd.Flags().IntVar(&opts.status, "status", 200, "HTTP status code of feed responses")

	return cmd
}

func newFixtureServer(opts serveOptions) (*fixture.Server, error) {
	if opts.status < 100 || opts.status > 599 {
		return nil, fmt.Errorf("invalid status code: %d", opts.status)
	}

	var comments []comment.Comment
	if opts.fixture != "" {
		var err error
		comments, err = fixture.Load(opts.fixture)
		if err != nil {
			return nil, err
		}
	} else {
		comments = fixture.Sample(time.Now())
	}

	return fixture.NewServer(comments, fixture.WithStatus(opts.status))
}
