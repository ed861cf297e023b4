package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"pinboard"
	"pinboard/internal/app"
	"pinboard/internal/config"
	"pinboard/internal/logger"
	"pinboard/internal/pagetitle"
)

var application *app.App

// overrideFlags maps persistent flag names to config keys.
var overrideFlags = map[string]string{
	"token":     "auth_token",
	"test-mode": "test_mode",
	"output":    "output",
	"log-level": "log_level",
	"timeout":   "timeout",
}

var rootCmd = &cobra.Command{
	Use:           "pinboard",
	Short:         "Pinboard v2 API client",
	Long:          "Command-line access to the Pinboard v2 API: bookmarks, tags and notes.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configPath, err := cmd.Flags().GetString("config")
		if err != nil {
			return err
		}

		cfg, err := config.Load(configPath, flagOverrides(cmd.Flags()))
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		level, err := logger.ParseLevel(cfg.LogLevel)
		if err != nil {
			return err
		}
		log := logger.New(level)

		client, err := app.NewClient(cfg, log)
		if err != nil {
			return err
		}

		application = app.NewApp(
			app.WithConfig(cfg),
			app.WithClient(client),
			app.WithTitleFetcher(pagetitle.New(nil)),
			app.WithOutput(cmd.OutOrStdout()),
			app.WithLogger(log),
		)
		return nil
	},
}

var helloCmd = &cobra.Command{
	Use:   "hello",
	Short: "Check connectivity and credentials",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return application.Run(cmd.Context(), "hello", func(ctx context.Context, api pinboard.API) (any, error) {
			return api.Hello(ctx)
		})
	},
}

var lastUpdateCmd = &cobra.Command{
	Use:   "last-update",
	Short: "Show when bookmarks were last changed",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return application.Run(cmd.Context(), "last-update", func(ctx context.Context, api pinboard.API) (any, error) {
			return api.LastUpdate(ctx)
		})
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "YAML config file")
	flags.String("token", "", "API token in username:TOKEN form")
	flags.Bool("test-mode", false, "Use the test API endpoint")
	flags.String("output", "json", "Output format: json or yaml")
	flags.String("log-level", "info", "Log level: error, warn, info or debug")
	flags.Duration("timeout", 10*time.Second, "Per-request timeout")

	rootCmd.AddCommand(helloCmd, lastUpdateCmd)
}

// flagOverrides returns config values for the persistent flags the user
// set explicitly, so unset flags never mask the config file.
func flagOverrides(flags *pflag.FlagSet) map[string]any {
	overrides := map[string]any{}
	for name, key := range overrideFlags {
		f := flags.Lookup(name)
		if f == nil || !f.Changed {
			continue
		}
		overrides[key] = f.Value.String()
	}
	return overrides
}

// parseTime accepts RFC 3339 timestamps or plain dates.
func parseTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q: use YYYY-MM-DD or RFC 3339", s)
	}
	return t, nil
}
