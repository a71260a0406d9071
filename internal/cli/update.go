package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/herodex/internal/pages"
)

func newUpdateCmd(a *app) *cobra.Command {
	var hf heroFlags

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a hero",
		Long: `Update sends the changed hero through the simulated remote round-trip
and applies the result. Fields without a flag keep their current value.
Progress, including the loading flag, is reported on stderr.

Example:
  herodex update 1 --name "superman prime"
  herodex update 6 --power "Speed Force" --latency 200ms`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			s, coord, err := a.openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			h, err := lookup(s, id)
			if err != nil {
				return err
			}
			sub, err := hf.fill(cmd, &h)
			if err != nil {
				return err
			}

			page := pages.NewEditPage(s, cliNav{}, pages.WithLogger(a.logger))
			page.Load(id)
			d := page.Save(sub)

			stderr := cmd.ErrOrStderr()
			fmt.Fprintf(stderr, "Updating hero %d (loading: %t)\n", id, coord.Busy())
			updated, err := d.Wait(cmd.Context())
			if err != nil {
				return fmt.Errorf("update hero %d: %w", id, err)
			}
			fmt.Fprintf(stderr, "Updated hero %d (loading: %t)\n", id, coord.Busy())

			return a.printHero(cmd, updated)
		},
	}
	hf.register(cmd)
	return cmd
}
