package table

import (
	"fmt"

	"github.com/expr-lang/expr"
)

// Filter keeps the rows for which src evaluates to true. Columns whose
// names are valid identifiers are bound directly (FCC_A1 > 1e-6);
// every column is also reachable through the row map, which covers
// names with spaces (row["Temperature in C"] < 1000).
func (t *Table) Filter(src string) (*Table, error) {
	prog, err := expr.Compile(src, expr.AsBool(), expr.AllowUndefinedVariables())
	if err != nil {
		return nil, fmt.Errorf("error compiling filter %q: %w", src, err)
	}
	res := New(t.cols...)
	for i := range t.rows {
		env := t.rowEnv(i)
		env["row"] = t.rowEnv(i)
		keep, err := expr.Run(prog, env)
		if err != nil {
			return nil, fmt.Errorf("error evaluating filter %q on row %d: %w", src, i, err)
		}
		if keep.(bool) {
			res.rows = append(res.rows, t.Row(i))
		}
	}
	return res, nil
}
