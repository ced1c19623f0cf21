package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/jakechorley/skip-hire/pkg/core/model"
	"github.com/jakechorley/skip-hire/pkg/core/services"
)

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorGreen  = "\033[32m"
	colorRed    = "\033[31m"
	colorYellow = "\033[33m"
	colorDim    = "\033[2m"
)

// printOffers renders the offer list, marking selectedID if set
func printOffers(w io.Writer, location model.Location, result services.FetchOffersResult, selectedID string) {
	fmt.Fprintf(w, "\nChoose Your Skip Size - %s, %s\n\n", location.Area, location.Postcode)

	if result.UsedFallback {
		fmt.Fprintf(w, "%s%s%s\n", colorRed, result.ErrorMessage, colorReset)
		fmt.Fprintf(w, "%sShowing standard prices. Run again or type 'retry' to reload.%s\n\n", colorYellow, colorReset)
	}

	if len(result.Offers) == 0 {
		fmt.Fprintln(w, "No skips available for your location.")
		return
	}

	idWidth := len("ID")
	for _, o := range result.Offers {
		if len(o.ID) > idWidth {
			idWidth = len(o.ID)
		}
	}
	idWidth += 2

	fmt.Fprintf(w, "   %-*s%-10s%-10s%-12s%s\n", idWidth, "ID", "Size", "Price", "Hire", "Capacity")
	fmt.Fprintf(w, "   %s\n", strings.Repeat("-", idWidth+10+10+12+16))

	for _, o := range result.Offers {
		marker := " "
		color := ""
		if o.ID == selectedID {
			marker = "✓"
			color = colorGreen
		}

		fmt.Fprintf(w, "%s %s %-*s%-10s%-10s%-12s%s%s\n",
			color,
			marker,
			idWidth, o.ID,
			o.Size+" yard",
			fmt.Sprintf("£%d", o.Price),
			o.Period,
			o.Capacity,
			resetIf(color),
		)
		if o.Description != "" {
			fmt.Fprintf(w, "     %s%s%s\n", colorDim, o.Description, colorReset)
		}
	}
	fmt.Fprintln(w)
}

// printSelection renders the sticky summary for the current selection
func printSelection(w io.Writer, offer model.SkipOffer) {
	fmt.Fprintf(w, "%s%s Yard Skip Selected%s\n", colorGreen, offer.Size, colorReset)
	fmt.Fprintf(w, "£%d/%s • %s hire\n", offer.Price, offer.Period, offer.Period)
}

func printSummary(w io.Writer, summary *model.SelectionSummary) {
	fmt.Fprintf(w, "\n✓ %s\n", summary.Message)
	fmt.Fprintf(w, "Reference: %s\n\n", summary.Reference)
}

func resetIf(color string) string {
	if color == "" {
		return ""
	}
	return colorReset
}
