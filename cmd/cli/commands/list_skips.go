package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// ListSkipsCmd creates the listSkips command
func ListSkipsCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "listSkips",
		Short: "List the skips available at the configured location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app.Logger.Debug("listSkips command")

			result := app.FetchOffers()
			if result.UsedFallback {
				app.Logger.Warn("Showing fallback offers", zap.String("reason", result.ErrorMessage))
			}

			printOffers(cmd.OutOrStdout(), app.Cfg.Location, result, "")
			return nil
		},
	}
}
