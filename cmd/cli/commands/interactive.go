package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jakechorley/skip-hire/pkg/core/services"
)

// session holds the state of one interactive skip selection
type session struct {
	app        *AppContext
	out        io.Writer
	result     services.FetchOffersResult
	selectedID string
}

func newSession(app *AppContext, out io.Writer) *session {
	return &session{app: app, out: out}
}

// load fetches offers and clears any selection that no longer exists
func (s *session) load() {
	s.result = s.app.FetchOffers()
	if _, ok := services.FindOffer(s.result.Offers, s.selectedID); !ok {
		s.selectedID = ""
	}
	printOffers(s.out, s.app.Cfg.Location, s.result, s.selectedID)
}

// handle runs one input line and reports whether the session should end
func (s *session) handle(line string) bool {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return false
	}

	cmdName := parts[0]
	cmdArgs := parts[1:]

	switch cmdName {
	case "exit", "quit":
		fmt.Fprintln(s.out, "👋 Goodbye!")
		return true
	case "help":
		printInteractiveHelp(s.out)
	case "list":
		printOffers(s.out, s.app.Cfg.Location, s.result, s.selectedID)
	case "retry":
		s.load()
	case "select":
		if len(cmdArgs) != 1 {
			fmt.Fprintln(s.out, "❌ Usage: select <skip_id>")
			break
		}
		s.selectOffer(cmdArgs[0])
	case "summary":
		s.printCurrentSelection()
	case "continue":
		s.continueWithSelection()
	default:
		fmt.Fprintf(s.out, "❌ Unknown command: %s (type 'help' for available commands)\n\n", cmdName)
	}

	return false
}

func (s *session) selectOffer(id string) {
	if _, ok := services.FindOffer(s.result.Offers, id); !ok {
		fmt.Fprintf(s.out, "❌ No skip with ID %s\n\n", id)
		return
	}

	s.selectedID = services.ToggleSelection(s.selectedID, id)
	if s.selectedID == "" {
		fmt.Fprintf(s.out, "Deselected %s\n\n", id)
		return
	}
	s.printCurrentSelection()
}

func (s *session) printCurrentSelection() {
	offer, ok := services.FindOffer(s.result.Offers, s.selectedID)
	if !ok {
		fmt.Fprintln(s.out, "No skip selected")
		fmt.Fprintln(s.out)
		return
	}
	printSelection(s.out, offer)
	fmt.Fprintln(s.out)
}

func (s *session) continueWithSelection() {
	summary, err := services.ConfirmSelection(s.result.Offers, s.selectedID)
	if errors.Is(err, services.ErrNoSelection) {
		fmt.Fprintln(s.out, "❌ Select a skip first (select <skip_id>)")
		fmt.Fprintln(s.out)
		return
	}
	if err != nil {
		fmt.Fprintf(s.out, "❌ Error: %v\n\n", err)
		return
	}

	s.app.Logger.Info("Selection confirmed",
		zap.String("reference", summary.Reference),
		zap.String("skip_id", summary.Offer.ID))
	printSummary(s.out, summary)
}

// InteractiveCmd creates the interactive command
func InteractiveCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "interactive",
		Short: "Browse and select skips in an interactive session",
		Long: `Start an interactive session where you can browse skips, select one and continue.
The session will keep running until you type 'exit' or 'quit'.

Type 'help' to see available commands.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "\n🚀 Starting interactive session...")
			fmt.Fprintln(out, "Type 'help' for available commands, 'exit' or 'quit' to leave")

			return runSession(newSession(app, out), cmd.InOrStdin())
		},
	}
}

func runSession(s *session, in io.Reader) error {
	s.load()

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(s.out, "> ")

		if !scanner.Scan() {
			break
		}

		if s.handle(strings.TrimSpace(scanner.Text())) {
			return nil
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading input: %w", err)
	}

	return nil
}

func printInteractiveHelp(w io.Writer) {
	fmt.Fprintln(w, "\nAvailable commands:")
	fmt.Fprintf(w, "  %-30s %s\n", "list", "Show the available skips")
	fmt.Fprintf(w, "  %-30s %s\n", "select <skip_id>", "Select a skip (select it again to deselect)")
	fmt.Fprintf(w, "  %-30s %s\n", "summary", "Show the selected skip")
	fmt.Fprintf(w, "  %-30s %s\n", "continue", "Continue with the selected skip")
	fmt.Fprintf(w, "  %-30s %s\n", "retry", "Reload skips from the server")
	fmt.Fprintln(w, "\n  help                           Show this help message")
	fmt.Fprintln(w, "  exit, quit                     Exit the interactive session")
}
