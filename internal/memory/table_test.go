package memory

import (
	"testing"

	"github.com/mesh-intelligence/herodex/internal/tabletest"
	"github.com/mesh-intelligence/herodex/pkg/types"
)

func TestTableContract(t *testing.T) {
	tabletest.Run(t, func(t *testing.T) types.Table {
		tbl := NewTable()
		t.Cleanup(func() { tbl.Close() })
		return tbl
	})
}
