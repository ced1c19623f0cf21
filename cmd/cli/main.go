package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/jakechorley/skip-hire/cmd/cli/commands"
	"github.com/jakechorley/skip-hire/internal/config"
	"github.com/jakechorley/skip-hire/pkg/clients/skipclient"
	"github.com/jakechorley/skip-hire/pkg/core/offers"
	"github.com/jakechorley/skip-hire/pkg/utils/logging"
)

var (
	env     string
	verbose bool
	app     = &commands.AppContext{}
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "skiphire",
		Short: "Skip hire CLI - Browse and select skips for your location",
		Long:  `A CLI tool for browsing skip hire prices at a location, selecting a skip and serving offers to the booking UI.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app.Logger != nil {
				app.Logger.Sync()
			}
		},
		SilenceUsage: true,
	}

	bindPersistentFlags(rootCmd.PersistentFlags())
	rootCmd.MarkPersistentFlagRequired("env")

	rootCmd.AddCommand(commands.ListSkipsCmd(app))
	rootCmd.AddCommand(commands.SelectSkipCmd(app))
	rootCmd.AddCommand(commands.ServeCmd(app))
	rootCmd.AddCommand(commands.InteractiveCmd(app))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func bindPersistentFlags(flags *pflag.FlagSet) {
	flags.StringVarP(&env, "env", "e", "", "Environment (required: test, prod, etc.)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Show debug logs on the console")
}

// initApp loads config and sets up the logger and skip client
func initApp() error {
	var err error
	app.Ctx = context.Background()

	app.Cfg, err = config.LoadWithEnv(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	app.Logger, err = logging.InitLogger(env, app.Cfg.LogDir, verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	app.Logger.Info("Starting application",
		zap.String("environment", env),
		zap.String("postcode", app.Cfg.Location.Postcode),
		zap.String("area", app.Cfg.Location.Area))

	app.SkipSource = skipclient.NewClient(app.Cfg.SkipAPIBaseURL, app.Cfg.Timeout(), app.Logger)
	app.Fallback = offers.FallbackFunc(offers.Fallback)
	app.Logger.Debug("Skip client initialized", zap.String("base_url", app.Cfg.SkipAPIBaseURL))

	return nil
}
