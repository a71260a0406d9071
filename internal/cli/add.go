package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/herodex/internal/form"
	"github.com/mesh-intelligence/herodex/internal/pages"
	"github.com/mesh-intelligence/herodex/pkg/types"
)

// heroFlags are the field flags shared by add and update.
type heroFlags struct {
	name        string
	power       string
	description string
}

func (f *heroFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "hero name (stored upper-cased)")
	cmd.Flags().StringVar(&f.power, "power", "", "hero power")
	cmd.Flags().StringVar(&f.description, "description", "", "hero description")
}

// fill runs the values through a form bound to h (nil for a new hero) and
// returns the submission. Flags that were not given keep the bound values.
func (f *heroFlags) fill(cmd *cobra.Command, h *types.Hero) (form.Submission, error) {
	st := form.New()
	st.Bind(h)
	if cmd.Flags().Changed("name") {
		st.SetName(f.name)
	}
	if cmd.Flags().Changed("power") {
		st.SetPower(f.power)
	}
	if cmd.Flags().Changed("description") {
		st.SetDescription(f.description)
	}

	sub, ok := st.Submit()
	if !ok {
		var msgs []string
		for _, m := range []string{st.NameError(), st.PowerError(), st.DescriptionError()} {
			if m != "" {
				msgs = append(msgs, m)
			}
		}
		return form.Submission{}, fmt.Errorf("%w: %s", types.ErrInvalidData, strings.Join(msgs, "; "))
	}
	return sub, nil
}

func newAddCmd(a *app) *cobra.Command {
	var hf heroFlags

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a hero",
		Long: `Add creates a hero with the next free ID and prints it.

Example:
  herodex add --name "she hulk" --power "Fuerza" --description "Abogada gamma"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sub, err := hf.fill(cmd, nil)
			if err != nil {
				return err
			}
			s, _, err := a.openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			page := pages.NewAddPage(s, cliNav{}, pages.WithLogger(a.logger))
			h, err := page.Save(sub.Draft)
			if err != nil {
				return err
			}
			return a.printHero(cmd, h)
		},
	}
	hf.register(cmd)
	return cmd
}
