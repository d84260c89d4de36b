package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/SscSPs/event_split_app/internal/utils"
	"github.com/spf13/cobra"
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "List events and their join codes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		container, closeFn, err := openContainer(cmd.Context())
		if err != nil {
			return err
		}
		defer closeFn()

		events, err := container.Event.ListEvents(cmd.Context())
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "CODE\tTITLE\tCREATED")
		for _, e := range events {
			fmt.Fprintf(w, "%s\t%s\t%s\n", e.Code, e.Title, e.CreatedAt.Format("2006-01-02 15:04"))
		}
		return w.Flush()
	},
}

var summaryCmd = &cobra.Command{
	Use:   "summary <event-code>",
	Short: "Show paid, owed and net amounts for an event, followed by the settling transfers",
	Args:  cobra.ExactArgs(1),
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(eventsCmd, summaryCmd)
	summaryCmd.Flags().Int("digits", utils.DefaultMinorUnitDigits, "Minor unit digits used to format amounts")
}

func runSummary(cmd *cobra.Command, args []string) error {
	digits, _ := cmd.Flags().GetInt("digits")
	ctx := cmd.Context()

	container, closeFn, err := openContainer(ctx)
	if err != nil {
		return err
	}
	defer closeFn()

	event, err := container.Event.FindEventByCode(ctx, args[0])
	if err != nil {
		return err
	}
	summary, err := container.Balance.Summary(ctx, event.EventID)
	if err != nil {
		return err
	}

	names := make(map[string]string, len(summary.Participants))
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s (%s)\n\n", event.Title, event.Code)

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "PARTICIPANT\tPAID\tOWED\tNET\t")
	for _, p := range summary.Participants {
		names[p.ParticipantID] = p.Name
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t\n", p.Name,
			utils.FormatMinorUnits(p.Paid, digits),
			utils.FormatMinorUnits(p.Owed, digits),
			utils.FormatMinorUnits(p.Net, digits))
	}
	fmt.Fprintf(w, "TOTAL\t%s\t\t\t\n", utils.FormatMinorUnits(summary.TotalSpent, digits))
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(out)
	if len(summary.Settlements) == 0 {
		fmt.Fprintln(out, "Everyone is settled up.")
		return nil
	}
	for _, s := range summary.Settlements {
		fmt.Fprintf(out, "%s pays %s %s\n", names[s.FromID], names[s.ToID], utils.FormatMinorUnits(s.Amount, digits))
	}
	return nil
}
