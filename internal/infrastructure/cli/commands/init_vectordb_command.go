package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/doeshing/claudectl/internal/app"
	"github.com/doeshing/claudectl/internal/application/vectordb"
	"github.com/doeshing/claudectl/internal/infrastructure/cli/render"
)

// NewInitVectorDBCommand creates the init-vectordb command
func NewInitVectorDBCommand(container *app.Container) *cobra.Command {
	var opts vectordb.Options

	cmd := &cobra.Command{
		Use:   "init-vectordb",
		Short: "Create the standard vector database collections",
		Long: "Creates the standard collections through the vector database HTTP API.\n" +
			"Existing collections are left untouched, so the command can be re-run safely.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInitVectorDB(cmd, cmd.OutOrStdout(), container, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.WithSamples, "with-samples", false, "Add sample documents to the memory collection")
	cmd.Flags().BoolVar(&opts.WriteTest, "write-test", false, "Insert one test document to verify write access")
	return cmd
}

// runInitVectorDB initializes collections; an unreachable database fails the command
func runInitVectorDB(cmd *cobra.Command, out io.Writer, container *app.Container, opts vectordb.Options) error {
	fmt.Fprintln(out, "Checking Chroma connection...")

	report, err := container.VectorDBService().Run(cmd.Context(), opts)
	if err != nil {
		if errors.Is(err, vectordb.ErrUnreachable) {
			render.InitUnreachable(out, report.URL)
		}
		return err
	}

	render.Init(out, report)
	return nil
}
