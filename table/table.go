// Package table provides the rectangular named-column tables produced
// by the reshaping layer.
//
// Tables hold insertion-ordered rows of generic cells (float64, string
// or nil for a missing value) and are built fresh on every call; no
// table shares storage with the model document it was derived from.
package table

import (
	"fmt"
	"slices"
)

type Table struct {
	cols []string
	rows [][]any
}

func New(cols ...string) *Table {
	return &Table{cols: slices.Clone(cols)}
}

// FromColumn builds a one-column table.
func FromColumn(name string, values []any) *Table {
	t := New(name)
	for _, v := range values {
		t.rows = append(t.rows, []any{v})
	}
	return t
}

// FromFloats builds a one-column table of numbers.
func FromFloats(name string, values []float64) *Table {
	t := New(name)
	for _, v := range values {
		t.rows = append(t.rows, []any{v})
	}
	return t
}

// FromStrings builds a one-column table of strings.
func FromStrings(name string, values []string) *Table {
	t := New(name)
	for _, v := range values {
		t.rows = append(t.rows, []any{v})
	}
	return t
}

func (t *Table) Columns() []string {
	return slices.Clone(t.cols)
}

func (t *Table) Len() int {
	return len(t.rows)
}

func (t *Table) Row(i int) []any {
	return slices.Clone(t.rows[i])
}

// ColumnIndex returns the position of col, or -1.
func (t *Table) ColumnIndex(col string) int {
	return slices.Index(t.cols, col)
}

func (t *Table) Cell(i int, col string) (any, error) {
	j := t.ColumnIndex(col)
	if j < 0 {
		return nil, fmt.Errorf("table has no column %q", col)
	}
	return t.rows[i][j], nil
}

func (t *Table) AppendRow(vals ...any) error {
	if len(vals) != len(t.cols) {
		return fmt.Errorf("row has %d cells, table has %d columns", len(vals), len(t.cols))
	}
	t.rows = append(t.rows, slices.Clone(vals))
	return nil
}

// AddColumn appends a column whose value repeats on every row, such as
// a phase tag or a broadcast run parameter.
func (t *Table) AddColumn(name string, value any) *Table {
	t.cols = append(t.cols, name)
	for i := range t.rows {
		t.rows[i] = append(t.rows[i], value)
	}
	return t
}

// Float reads a numeric cell.
func (t *Table) Float(i int, col string) (float64, error) {
	v, err := t.Cell(i, col)
	if err != nil {
		return 0, err
	}
	f, ok := v.(float64)
	if !ok {
		return 0, fmt.Errorf("cell [%d]%q is %T, not a number", i, col, v)
	}
	return f, nil
}

// Floats reads a whole numeric column.
func (t *Table) Floats(col string) ([]float64, error) {
	j := t.ColumnIndex(col)
	if j < 0 {
		return nil, fmt.Errorf("table has no column %q", col)
	}
	res := make([]float64, len(t.rows))
	for i, row := range t.rows {
		f, ok := row[j].(float64)
		if !ok {
			return nil, fmt.Errorf("cell [%d]%q is %T, not a number", i, col, row[j])
		}
		res[i] = f
	}
	return res, nil
}

// Clone copies t, rows included.
func (t *Table) Clone() *Table {
	res := New(t.cols...)
	res.rows = make([][]any, len(t.rows))
	for i, row := range t.rows {
		res.rows[i] = slices.Clone(row)
	}
	return res
}

// rowEnv exposes one row as an expression environment keyed by column
// name.
func (t *Table) rowEnv(i int) map[string]any {
	env := make(map[string]any, len(t.cols))
	for j, c := range t.cols {
		env[c] = t.rows[i][j]
	}
	return env
}
