package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"tasklog/internal/cli/formatter"
	"tasklog/internal/query"
)

func newQueryCmd(app *App) *cobra.Command {
	var model string

	cmd := &cobra.Command{
		Use:   `query "<question>"`,
		Short: "Query tasks using natural language",
		Long:  "Send the whole task log plus a natural-language question to the Ollama server and print its answer.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			name := model
			if name == "" {
				name = app.Config.Model
			}
			fmt.Fprintln(out, formatter.FormatQueryHeader(name, args[0]))

			answer, err := app.Gateway.Answer(cmd.Context(), args[0], model)
			if errors.Is(err, query.ErrNoTasks) {
				fmt.Fprintln(out, formatter.FormatNoTasks())
				return nil
			}
			if err != nil {
				return err
			}

			fmt.Fprintln(out, formatter.FormatAnswer(answer))
			return nil
		},
	}

	cmd.Flags().StringVar(&model, "model", "", "Ollama model to use (defaults to the configured model)")

	return cmd
}
