package table

import (
	"fmt"
	"slices"
	"sort"
)

// Concat joins tables side by side on row position. The result is
// truncated to the shortest input, matching an inner positional join.
func Concat(ts ...*Table) *Table {
	if len(ts) == 0 {
		return New()
	}
	n := ts[0].Len()
	var cols []string
	for _, t := range ts {
		cols = append(cols, t.cols...)
		if t.Len() < n {
			n = t.Len()
		}
	}
	res := New(cols...)
	res.rows = make([][]any, n)
	for i := 0; i < n; i++ {
		row := make([]any, 0, len(cols))
		for _, t := range ts {
			row = append(row, t.rows[i]...)
		}
		res.rows[i] = row
	}
	return res
}

// Stack appends tables vertically. Every table must carry the same
// columns in the same order.
func Stack(ts ...*Table) (*Table, error) {
	if len(ts) == 0 {
		return New(), nil
	}
	res := ts[0].Clone()
	for _, t := range ts[1:] {
		if !slices.Equal(t.cols, res.cols) {
			return nil, fmt.Errorf("cannot stack columns %v onto %v", t.cols, res.cols)
		}
		for _, row := range t.rows {
			res.rows = append(res.rows, slices.Clone(row))
		}
	}
	return res, nil
}

// DropColumns removes the named columns; unknown names are ignored.
func (t *Table) DropColumns(names ...string) *Table {
	keep := make([]int, 0, len(t.cols))
	for j, c := range t.cols {
		if !slices.Contains(names, c) {
			keep = append(keep, j)
		}
	}
	res := New()
	for _, j := range keep {
		res.cols = append(res.cols, t.cols[j])
	}
	res.rows = make([][]any, len(t.rows))
	for i, row := range t.rows {
		nr := make([]any, len(keep))
		for k, j := range keep {
			nr[k] = row[j]
		}
		res.rows[i] = nr
	}
	return res
}

// DropLastRow removes the trailing row, used to discard end-of-run
// sentinel rows.
func (t *Table) DropLastRow() *Table {
	res := t.Clone()
	if len(res.rows) > 0 {
		res.rows = res.rows[:len(res.rows)-1]
	}
	return res
}

// Melt unpivots valueVars into (varName, valueName) pairs, repeating
// the idVars on every produced row. Rows are emitted per value
// variable, then per source row, preserving source order within each
// block.
func (t *Table) Melt(idVars, valueVars []string, varName, valueName string) (*Table, error) {
	for _, c := range append(slices.Clone(idVars), valueVars...) {
		if t.ColumnIndex(c) < 0 {
			return nil, fmt.Errorf("table has no column %q", c)
		}
	}
	res := New(append(slices.Clone(idVars), varName, valueName)...)
	for _, v := range valueVars {
		vj := t.ColumnIndex(v)
		for _, row := range t.rows {
			nr := make([]any, 0, len(idVars)+2)
			for _, id := range idVars {
				nr = append(nr, row[t.ColumnIndex(id)])
			}
			nr = append(nr, v, row[vj])
			res.rows = append(res.rows, nr)
		}
	}
	return res, nil
}

// SortByFloat stably sorts rows ascending by a numeric column.
// Non-numeric cells sort last.
func (t *Table) SortByFloat(col string) (*Table, error) {
	j := t.ColumnIndex(col)
	if j < 0 {
		return nil, fmt.Errorf("table has no column %q", col)
	}
	res := t.Clone()
	sort.SliceStable(res.rows, func(a, b int) bool {
		fa, aok := res.rows[a][j].(float64)
		fb, bok := res.rows[b][j].(float64)
		if aok && bok {
			return fa < fb
		}
		return aok && !bok
	})
	return res, nil
}
