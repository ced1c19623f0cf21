package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jakechorley/skip-hire/pkg/core/services"
)

// SelectSkipCmd creates the selectSkip command
func SelectSkipCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "selectSkip <skip_id>",
		Short: "Select a skip and continue to the next step",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			skipID := args[0]
			app.Logger.Debug("selectSkip command", zap.String("skip_id", skipID))

			result := app.FetchOffers()

			summary, err := services.ConfirmSelection(result.Offers, skipID)
			if err != nil {
				if result.UsedFallback {
					app.Logger.Warn("Skip lookup failed", zap.String("reason", result.ErrorMessage))
				}
				return err
			}

			app.Logger.Info("Selection confirmed",
				zap.String("reference", summary.Reference),
				zap.String("skip_id", summary.Offer.ID),
				zap.Bool("fallback", result.UsedFallback))

			printSelection(cmd.OutOrStdout(), summary.Offer)
			printSummary(cmd.OutOrStdout(), summary)
			return nil
		},
	}
}
