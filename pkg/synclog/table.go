package synclog

import (
	"fmt"
	"sort"
	"strings"
)

const (
	// maxTableRows bounds how many rows a rendered table shows.
	// Additional rows collapse into a single overflow marker line.
	maxTableRows = 50
	// maxCellWidth bounds individual cell width; longer values are elided.
	maxCellWidth = 80
	// maxLineWidth bounds rendered line width, indent included.
	maxLineWidth = 120

	tableIndent = "  "
)

// eventTable is a transient column-oriented table built for a single
// event. Columns are registered independently per event branch and must
// all carry the same number of rows; the builder is populated, rendered
// and discarded within one log call.
type eventTable struct {
	names   []string
	columns map[string][]string
}

func newEventTable() *eventTable {
	return &eventTable{columns: make(map[string][]string)}
}

// addColumn registers a named column. Empty columns are skipped so the
// rendered table only carries fields that occur for this event.
func (t *eventTable) addColumn(name string, values []string) {
	if len(values) == 0 {
		return
	}
	t.names = append(t.names, name)
	t.columns[name] = values
}

// column returns the named column, or nil when absent.
func (t *eventTable) column(name string) []string {
	return t.columns[name]
}

// rowCount returns the number of rows. All columns share it.
func (t *eventTable) rowCount() int {
	if len(t.names) == 0 {
		return 0
	}
	return len(t.columns[t.names[0]])
}

// sortBy reorders all rows by the given key columns, compared in order.
// Key columns missing from the table are skipped; if none remain, row
// order is left untouched. The sort is stable.
func (t *eventTable) sortBy(keys ...string) {
	var keyCols [][]string
	for _, k := range keys {
		if col, ok := t.columns[k]; ok {
			keyCols = append(keyCols, col)
		}
	}
	if len(keyCols) == 0 {
		return
	}

	n := t.rowCount()
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		for _, col := range keyCols {
			if col[order[a]] != col[order[b]] {
				return col[order[a]] < col[order[b]]
			}
		}
		return false
	})

	for _, name := range t.names {
		col := t.columns[name]
		sorted := make([]string, n)
		for i, idx := range order {
			sorted[i] = col[idx]
		}
		t.columns[name] = sorted
	}
}

// render serializes the table as aligned text, one row per line, each
// line indented so the table nests under the event's header line.
// Cells are elided at maxCellWidth, lines cut at maxLineWidth, and at
// most maxTableRows rows are shown followed by an overflow marker.
// An empty table renders as an empty string. render never fails.
func (t *eventTable) render() string {
	rows := t.rowCount()
	if rows == 0 {
		return ""
	}
	shown := rows
	if shown > maxTableRows {
		shown = maxTableRows
	}

	// Column widths over the displayed rows, after cell elision.
	widths := make([]int, len(t.names))
	cells := make([][]string, len(t.names))
	for i, name := range t.names {
		col := t.columns[name]
		cells[i] = make([]string, shown)
		for r := 0; r < shown; r++ {
			cell := elide(col[r], maxCellWidth)
			cells[i][r] = cell
			if w := runeLen(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	lines := make([]string, 0, shown+1)
	for r := 0; r < shown; r++ {
		var line strings.Builder
		line.WriteString(tableIndent)
		for i := range t.names {
			cell := cells[i][r]
			line.WriteString(cell)
			if i < len(t.names)-1 {
				line.WriteString(strings.Repeat(" ", widths[i]-runeLen(cell)+2))
			}
		}
		lines = append(lines, elide(strings.TrimRight(line.String(), " "), maxLineWidth))
	}
	if rows > shown {
		lines = append(lines, fmt.Sprintf("%s… (%d more rows)", tableIndent, rows-shown))
	}
	return strings.Join(lines, "\n")
}

func runeLen(s string) int {
	return len([]rune(s))
}

// elide truncates s to max runes, marking the cut with a single "…".
func elide(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
