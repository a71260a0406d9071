package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/herodex/internal/pages"
)

// deleteOutput is the JSON shape of a delete result.
type deleteOutput struct {
	Deleted int    `json:"deleted"`
	Status  string `json:"status"`
}

func newDeleteCmd(a *app) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a hero",
		Long: `Delete asks for confirmation, then removes the hero once the simulated
remote round-trip succeeds. Use --yes to skip the question.

Example:
  herodex delete 2
  herodex delete 2 --yes --json`,
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

			list := pages.NewListPage(s, cliNav{}, pages.WithLogger(a.logger))
			c := list.RequestDelete(h)

			confirmed := yes
			if !confirmed {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s [y/N] ", c.Message())
				confirmed = readYes(cmd)
			}

			w := cmd.OutOrStdout()
			d := list.Confirm(c, confirmed)
			if d == nil {
				if a.flags.jsonMode {
					return printJSON(w, deleteOutput{Deleted: 0, Status: "cancelled"})
				}
				fmt.Fprintln(w, "Cancelled.")
				return nil
			}

			fmt.Fprintf(cmd.ErrOrStderr(), "Deleting hero %d (loading: %t)\n", id, coord.Busy())
			if _, err := d.Wait(cmd.Context()); err != nil {
				return fmt.Errorf("delete hero %d: %w", id, err)
			}

			if a.flags.jsonMode {
				return printJSON(w, deleteOutput{Deleted: id, Status: "success"})
			}
			fmt.Fprintf(w, "Deleted hero %d: %s (%d remaining)\n", id, h.Name, len(s.GetAll()))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "delete without asking")
	return cmd
}

// readYes reads one answer line from the command's input.
func readYes(cmd *cobra.Command) bool {
	line, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes", "s", "si", "sí":
		return true
	}
	return false
}
