package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/herodex/internal/search"
	"github.com/mesh-intelligence/herodex/pkg/types"
)

var errInvalidPage = errors.New("page must be at least 1")

// pageOutput is the JSON shape of a listed page.
type pageOutput struct {
	Heroes []types.Hero `json:"heroes"`
	Page   int          `json:"page"`
	Pages  int          `json:"pages"`
	Total  int          `json:"total"`
}

func newListCmd(a *app) *cobra.Command {
	var page int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List heroes one page at a time",
		Long: `List prints one page of heroes in insertion order. The page size comes
from page_size in config.yaml (HERODEX_PAGE_SIZE).

Example:
  herodex list
  herodex list --page 2
  herodex list --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if page < 1 {
				return errInvalidPage
			}
			s, _, err := a.openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			pg := search.Paginate(s.GetAll(), a.cfg.PageSize, page-1)
			return a.printPage(cmd, pg)
		},
	}
	cmd.Flags().IntVar(&page, "page", 1, "page number, starting at 1")
	return cmd
}

func (a *app) printPage(cmd *cobra.Command, pg search.Page) error {
	w := cmd.OutOrStdout()
	if a.flags.jsonMode {
		return printJSON(w, pageOutput{Heroes: pg.Items, Page: pg.Index + 1, Pages: pg.Count, Total: pg.Total})
	}
	printHeroTable(w, pg.Items)
	fmt.Fprintf(w, "Page %d of %d, %d hero(es)\n", pg.Index+1, pg.Count, pg.Total)
	return nil
}
