package table

import (
	"fmt"
	"slices"
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Diff compares two tables row-wise and returns a unified-style text
// diff with one line per row. The empty string means the tables are
// equal. Rows are compared by their rendered cell values, so two
// tables agree exactly when their diff is empty.
func Diff(from, to *Table) string {
	var b strings.Builder
	if !slices.Equal(from.cols, to.cols) {
		fmt.Fprintf(&b, "- columns: %s\n", strings.Join(from.cols, ", "))
		fmt.Fprintf(&b, "+ columns: %s\n", strings.Join(to.cols, ", "))
	}

	runeMap := map[string]rune{}
	lineMap := map[rune]string{}
	fromRunes := mapRowsTo(runeMap, lineMap, from)
	toRunes := mapRowsTo(runeMap, lineMap, to)

	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)
	changed := false
	for i := range diffs {
		diff := &diffs[i]
		for _, r := range diff.Text {
			switch diff.Type {
			case diffpatch.DiffDelete:
				fmt.Fprintf(&b, "- %s\n", lineMap[r])
				changed = true
			case diffpatch.DiffInsert:
				fmt.Fprintf(&b, "+ %s\n", lineMap[r])
				changed = true
			case diffpatch.DiffEqual:
				fmt.Fprintf(&b, "  %s\n", lineMap[r])
			}
		}
	}
	if !changed && slices.Equal(from.cols, to.cols) {
		return ""
	}
	return b.String()
}

func mapRowsTo(runeMap map[string]rune, lineMap map[rune]string, t *Table) []rune {
	res := make([]rune, 0, t.Len())
	for _, row := range t.rows {
		parts := make([]string, len(row))
		for j, v := range row {
			parts[j] = cellString(v)
		}
		line := strings.Join(parts, "  ")
		r, ok := runeMap[line]
		if !ok {
			r = rune(len(runeMap) + 1)
			runeMap[line] = r
			lineMap[r] = line
		}
		res = append(res, r)
	}
	return res
}
