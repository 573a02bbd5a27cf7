package production

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
)

// highlightGlyphs maps highlight codes to the marker used in the summary table:
// compare, found, pivot and done. Unknown codes render as '*'.
var highlightGlyphs = map[int]string{0: ".", 1: "c", 2: "f", 3: "p", 4: "d"}

// WriteSummary renders doc as a table, one row per step. Descriptions longer than
// width runes are clipped when width is positive.
func WriteSummary(w io.Writer, doc TraceDocument, width int) {
	tbl := tablewriter.NewWriter(w)
	tbl.SetHeader([]string{"Step", "Action", "Data", "Highlighted", "Description", "Complexity"})
	tbl.SetAutoWrapText(false)
	tbl.SetAlignment(tablewriter.ALIGN_LEFT)
	for _, s := range doc.Steps {
		tbl.Append([]string{
			strconv.Itoa(s.Step),
			s.Action,
			joinInts(s.Data),
			glyphs(s.Highlighted),
			clipText(s.Description, width),
			s.Complexity,
		})
	}
	tbl.Render()
	fmt.Fprintf(w, "total steps: %d\n", doc.TotalSteps)
}

func joinInts(vs []int) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.Itoa(v)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func glyphs(hl []int) string {
	var b strings.Builder
	for _, h := range hl {
		g, ok := highlightGlyphs[h]
		if !ok {
			g = "*"
		}
		b.WriteString(g)
	}
	return b.String()
}

func clipText(s string, width int) string {
	r := []rune(s)
	if width <= 0 || len(r) <= width {
		return s
	}
	if width <= 3 {
		return string(r[:width])
	}
	return string(r[:width-3]) + "..."
}
