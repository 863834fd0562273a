package cli

import (
	"errors"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/evcraddock/image-comments/internal/feedapi"
	"github.com/evcraddock/image-comments/internal/httpclient"
	"github.com/evcraddock/image-comments/internal/localization"
	"github.com/evcraddock/image-comments/internal/presentation"
	"github.com/evcraddock/image-comments/internal/render"
)

// ErrLoadCancelled is returned by show when an interrupt cancels the load.
var ErrLoadCancelled = errors.New("load cancelled")

type showOptions struct {
	url      string
	language string
	timeout  time.Duration
}

func newShowCmd() *cobra.Command {
	var opts showOptions

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the comments feed",
		Long:  "Fetch the comments feed and print it. Press Ctrl-C while loading to cancel.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.url, "url", "", "feed URL (default: $ICF_FEED_URL, config, or "+defaultFeedURL+")")
	cmd.Flags().StringVar(&opts.language, "lang", "", "language of user-facing messages (default: $ICF_LANG, config, or en)")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 30*time.Second, "request timeout (0 for none)")

	return cmd
}

func runShow(cmd *cobra.Command, opts showOptions) error {
	format, err := outputFormat()
	if err != nil {
		return err
	}

	table, err := localization.Load(getLanguage(opts.language))
	if err != nil {
		return err
	}

	loader := feedapi.NewRemoteLoader(getFeedURL(opts.url), httpclient.NewNetClient(opts.timeout))
	vm := presentation.New(loader, presentation.WithStrings(table))

	screen := render.NewScreen(cmd.OutOrStdout(), format)
	screen.Bind(vm)
	screen.Title(vm.Title())

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	vm.Load()

	select {
	case <-screen.Settled():
		return screen.Err()
	case <-ctx.Done():
		vm.CancelLoadIfNeeded()
		return ErrLoadCancelled
	}
}
