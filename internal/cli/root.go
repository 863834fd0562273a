// Package cli defines the cobra command tree for icf.
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/evcraddock/image-comments/internal/logging"
	"github.com/evcraddock/image-comments/internal/render"
)

var (
	flagFormat string
	flagDebug  bool
)

// NewRootCmd creates the root cobra command with global flags.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "icf",
		Short:         "Browse the comments feed of an image",
		Long:          "A tool to fetch and display the comments feed of an image, and to serve a fixture feed for local testing.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if _, err := outputFormat(); err != nil {
				return err
			}
			logging.Setup(flagDebug)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&flagFormat, "format", "text", "output format (text|json)")
	root.PersistentFlags().BoolVar(&flagDebug, "debug", false, "human-readable debug logging on stderr")

	root.AddCommand(
		newShowCmd(),
		newServeCmd(),
		newConfigCmd(),
		newVersionCmd(),
	)

	return root
}

// outputFormat validates the --format flag.
func outputFormat() (render.Format, error) {
	switch f := render.Format(flagFormat); f {
	case render.FormatText, render.FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("invalid format %q (want text or json)", flagFormat)
	}
}

// isJSON returns true if the --format flag is set to json.
func isJSON() bool {
	return flagFormat == string(render.FormatJSON)
}

// ExitCode maps a command error to a process exit status. An interrupted
// load exits with 130, as a shell reports SIGINT.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrLoadCancelled):
		return 130
	default:
		return 1
	}
}
