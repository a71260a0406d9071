package cli

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/herodex/internal/tui"
)

func newTUICmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Browse heroes in an interactive terminal UI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _, err := a.openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			// The terminal belongs to the UI while it runs.
			quiet := slog.New(slog.NewTextHandler(io.Discard, nil))
			return tui.Run(s, tui.WithLogger(quiet), tui.WithPageSize(a.cfg.PageSize))
		},
	}
}
