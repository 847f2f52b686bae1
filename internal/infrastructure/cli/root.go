package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/doeshing/claudectl/internal/app"
	"github.com/doeshing/claudectl/internal/infrastructure/cli/commands"
)

// Options holds CLI-level configuration.
type Options struct {
	Verbose    bool
	ConfigPath string
}

// NewRootCmd wires the cobra root command. The returned container must be
// closed once the command has executed.
func NewRootCmd(ctx context.Context, opts Options) (*cobra.Command, *app.Container, error) {
	container, err := app.BuildContainer(ctx, app.Options{
		Verbose:    opts.Verbose,
		ConfigPath: opts.ConfigPath,
	})
	if err != nil {
		return nil, nil, err
	}
	return NewRootCmdWithContainer(container), container, nil
}

// NewRootCmdWithContainer builds the command tree around an existing container.
func NewRootCmdWithContainer(container *app.Container) *cobra.Command {
	root := &cobra.Command{
		Use:   "claudectl",
		Short: "claudectl - local Claude environment maintenance",
		Long: "claudectl monitors the local Claude environment (vector database, Docker services,\n" +
			"backups and configuration files) and initializes the vector database collections.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(commands.NewHealthCommand(container))
	root.AddCommand(commands.NewStatusCommand(container))
	root.AddCommand(commands.NewInitVectorDBCommand(container))
	root.AddCommand(commands.NewHistoryCommand(container))
	root.AddCommand(commands.NewConfigCommand(container))
	root.AddCommand(commands.NewVersionCommand())
	return root
}
