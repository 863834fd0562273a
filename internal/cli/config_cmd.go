package cli

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"

	"github.com/evcraddock/image-comments/internal/localization"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change CLI configuration",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Print the effective configuration",
			Args:  cobra.NoArgs,
			RunE:  runConfigShow,
		},
		&cobra.Command{
			Use:   "set-url <url>",
			Short: "Set the default feed URL",
			Args:  cobra.ExactArgs(1),
			RunE:  runConfigSetURL,
		},
		&cobra.Command{
			Use:   "set-language <lang>",
			Short: "Set the language of user-facing messages",
			Args:  cobra.ExactArgs(1),
			RunE:  runConfigSetLanguage,
		},
	)

	return cmd
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	path, err := configPath()
	if err != nil {
		return err
	}

	effective := CLIConfig{
		FeedURL:  getFeedURL(""),
		Language: getLanguage(""),
	}

	if isJSON() {
		return printJSON(cmd.OutOrStdout(), effective)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Config:   %s\n", path)
	fmt.Fprintf(out, "Feed URL: %s\n", effective.FeedURL)
	fmt.Fprintf(out, "Language: %s\n", effective.Language)
	return nil
}

func runConfigSetURL(cmd *cobra.Command, args []string) error {
	u, err := url.Parse(args[0])
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid feed URL: %s", args[0])
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cfg.FeedURL = args[0]
	if err := saveConfig(cfg); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Feed URL set to %s\n", args[0])
	return nil
}

func runConfigSetLanguage(cmd *cobra.Command, args []string) error {
	if _, err := localization.Load(args[0]); err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cfg.Language = args[0]
	if err := saveConfig(cfg); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Language set to %s\n", args[0])
	return nil
}
