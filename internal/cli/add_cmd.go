package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"tasklog/internal/cli/formatter"
	"tasklog/internal/domain"
)

func newAddCmd(app *App) *cobra.Command {
	var (
		date  string
		hours float64
	)

	cmd := &cobra.Command{
		Use:   "add <description>",
		Short: "Add a new task to the log",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := domain.NewRecord(args[0], date, hours)
			if err != nil {
				return err
			}
			if err := app.Store.Append(rec); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatAdded(rec))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "date of the task in YYYY-MM-DD format (defaults to today)")
	cmd.Flags().Float64Var(&hours, "hours", 0, "hours spent on the task")

	return cmd
}
