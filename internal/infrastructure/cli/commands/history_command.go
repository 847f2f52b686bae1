package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/doeshing/claudectl/internal/app"
)

// NewHistoryCommand creates the history command
func NewHistoryCommand(container *app.Container) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded health checks, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit < 0 {
				return errors.New(ErrInvalidHistoryLimit)
			}
			return listHealthChecks(cmd, cmd.OutOrStdout(), container, limit)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", DefaultHistoryLimit, "Max entries to show (0 for all)")
	return cmd
}

// listHealthChecks prints stored health check rows
func listHealthChecks(cmd *cobra.Command, out io.Writer, container *app.Container, limit int) error {
	history, err := container.HealthHistory()
	if err != nil {
		return fmt.Errorf("stats database unavailable: %w", err)
	}

	rows, err := history.RecentHealthChecks(cmd.Context(), limit)
	if err != nil {
		return fmt.Errorf("failed to retrieve health checks: %w", err)
	}

	if len(rows) == 0 {
		fmt.Fprintln(out, MsgNoHistoryRecorded)
		return nil
	}

	for _, row := range rows {
		fmt.Fprintf(out, "%s | %s | %s | %s\n",
			row.Timestamp.Local().Format(TimestampFormat),
			row.Component,
			row.Status,
			row.Details)
	}

	return nil
}
