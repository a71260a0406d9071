package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/herodex/internal/heroes"
	"github.com/mesh-intelligence/herodex/pkg/types"
)

func newGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a hero by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			s, _, err := a.openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			h, err := lookup(s, id)
			if err != nil {
				return err
			}
			return a.printHero(cmd, h)
		},
	}
}

func (a *app) printHero(cmd *cobra.Command, h types.Hero) error {
	if a.flags.jsonMode {
		return printJSON(cmd.OutOrStdout(), h)
	}
	printHero(cmd.OutOrStdout(), h)
	return nil
}

// parseID converts a positional argument into a hero ID.
func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", types.ErrInvalidID, arg)
	}
	return id, nil
}

// lookup returns the hero with id or a not-found error naming it.
func lookup(s *heroes.Store, id int) (types.Hero, error) {
	h, ok := s.GetByID(id)
	if !ok {
		return types.Hero{}, fmt.Errorf("hero %d: %w", id, types.ErrNotFound)
	}
	return h, nil
}
