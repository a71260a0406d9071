package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/mesh-intelligence/herodex/pkg/types"
)

// printJSON writes v as indented JSON.
func printJSON(w io.Writer, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Fprintln(w, string(out))
	return nil
}

// printHeroTable prints heroes in a human-readable table.
func printHeroTable(w io.Writer, heroes []types.Hero) {
	if len(heroes) == 0 {
		fmt.Fprintln(w, "No heroes found.")
		return
	}

	var sb strings.Builder
	tw := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tPOWER\tDESCRIPTION")
	fmt.Fprintln(tw, "--\t----\t-----\t-----------")
	for _, h := range heroes {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", h.ID, h.Name, h.Power, truncate(h.Description, 50))
	}
	tw.Flush()

	for _, line := range strings.Split(strings.TrimRight(sb.String(), "\n"), "\n") {
		fmt.Fprintln(w, strings.TrimRight(line, " "))
	}
}

// printHero prints one hero as labelled lines.
func printHero(w io.Writer, h types.Hero) {
	fmt.Fprintf(w, "ID:          %d\n", h.ID)
	fmt.Fprintf(w, "Name:        %s\n", h.Name)
	fmt.Fprintf(w, "Power:       %s\n", h.Power)
	fmt.Fprintf(w, "Description: %s\n", h.Description)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
