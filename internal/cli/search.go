package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/herodex/internal/search"
	"github.com/mesh-intelligence/herodex/pkg/types"
)

// searchOutput is the JSON shape of a search result.
type searchOutput struct {
	Term       string       `json:"term"`
	Heroes     []types.Hero `json:"heroes"`
	Suggestion *types.Hero  `json:"suggestion,omitempty"`
}

func newSearchCmd(a *app) *cobra.Command {
	var compact bool

	cmd := &cobra.Command{
		Use:   "search <term>",
		Short: "Find heroes by name",
		Long: `Search lists heroes whose name contains the term, ignoring case and
surrounding spaces. With --compact, spaces inside names and the term are
ignored too, so "spider man" finds SPIDERMAN. When nothing matches, the
closest name is suggested.

Example:
  herodex search man
  herodex search --compact "spider man"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			term := strings.Join(args, " ")
			s, _, err := a.openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			var found []types.Hero
			if compact {
				found = search.FilterCompact(s.GetAll(), term)
			} else {
				found = s.Search(term)
			}

			out := searchOutput{Term: term, Heroes: found}
			if len(found) == 0 {
				if h, ok := search.Suggest(s.GetAll(), term); ok {
					out.Suggestion = &h
				}
			}

			w := cmd.OutOrStdout()
			if a.flags.jsonMode {
				return printJSON(w, out)
			}
			printHeroTable(w, found)
			if out.Suggestion != nil {
				fmt.Fprintf(w, "Did you mean %s?\n", out.Suggestion.Name)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&compact, "compact", false, "ignore spaces inside names")
	return cmd
}
