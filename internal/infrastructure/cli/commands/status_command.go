package commands

import (
	"github.com/spf13/cobra"

	"github.com/doeshing/claudectl/internal/app"
	"github.com/doeshing/claudectl/internal/infrastructure/cli/render"
)

// NewStatusCommand creates the status command
func NewStatusCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show a detailed, read-only environment overview",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			board := container.StatusService().Board(cmd.Context())
			render.Status(cmd.OutOrStdout(), board)
			return nil
		},
	}
}
