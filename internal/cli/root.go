package cli

import (
	"github.com/spf13/cobra"

	"tasklog/internal/config"
	"tasklog/internal/query"
	"tasklog/internal/store"
)

// App holds the wired components the CLI commands run against.
type App struct {
	Store   *store.Store
	Gateway *query.Gateway
	Config  *config.Config
}

// NewRootCmd creates the top-level "tasklog" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "tasklog",
		Short:         "Log tasks and query them in natural language",
		Long:          "Log tasks with dates and hours to a CSV file, and ask questions about the log through a locally running Ollama model.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newAddCmd(app),
		newQueryCmd(app),
	)

	return root
}
