package commands

import (
	"github.com/spf13/cobra"

	"github.com/doeshing/claudectl/internal/app"
	"github.com/doeshing/claudectl/internal/infrastructure/cli/render"
)

// NewHealthCommand creates the health command
func NewHealthCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Score the environment and record the result",
		Long: "Checks the vector database, Docker services, backups and configuration files,\n" +
			"prints a 0-100 health score and appends it to the stats database.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			report := container.HealthService().Run(cmd.Context())
			render.Health(cmd.OutOrStdout(), report, container.Config.Targets)
			return nil
		},
	}
}
