package cli

import "github.com/mesh-intelligence/herodex/internal/pages"

var _ pages.Navigator = cliNav{}

// cliNav satisfies pages.Navigator for one-shot commands, which have no
// screens to move between.
type cliNav struct{}

func (cliNav) ToList()    {}
func (cliNav) ToAdd()     {}
func (cliNav) ToEdit(int) {}
