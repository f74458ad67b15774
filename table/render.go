package table

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

type RenderOption func(*renderState)

type renderState struct {
	csv    bool
	colors *Colors
}

func RenderCSV(v bool) RenderOption {
	return func(rs *renderState) { rs.csv = v }
}

func RenderColors(c *Colors) RenderOption {
	return func(rs *renderState) { rs.colors = c }
}

type Colors struct {
	Header  func(string, ...any) string
	Number  func(string, ...any) string
	Missing func(string, ...any) string
}

func NewColors() *Colors {
	return &Colors{
		Header:  color.RGB(196, 96, 16).SprintfFunc(),
		Number:  color.RGB(128, 216, 236).SprintfFunc(),
		Missing: color.RGB(168, 0, 196).SprintfFunc(),
	}
}

// Write renders the table as aligned text, or CSV with RenderCSV.
func (t *Table) Write(w io.Writer, opts ...RenderOption) error {
	rs := &renderState{}
	for _, f := range opts {
		f(rs)
	}
	if rs.csv {
		return t.writeCSV(w)
	}
	return t.writeText(w, rs)
}

func (t *Table) writeCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.cols); err != nil {
		return err
	}
	rec := make([]string, len(t.cols))
	for _, row := range t.rows {
		for j, v := range row {
			rec[j] = cellString(v)
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func (t *Table) writeText(w io.Writer, rs *renderState) error {
	widths := make([]int, len(t.cols))
	for j, c := range t.cols {
		widths[j] = len(c)
	}
	cells := make([][]string, len(t.rows))
	for i, row := range t.rows {
		cells[i] = make([]string, len(row))
		for j, v := range row {
			s := cellString(v)
			cells[i][j] = s
			if len(s) > widths[j] {
				widths[j] = len(s)
			}
		}
	}
	line := make([]string, len(t.cols))
	for j, c := range t.cols {
		s := pad(c, widths[j])
		if rs.colors != nil {
			s = rs.colors.Header("%s", s)
		}
		line[j] = s
	}
	if _, err := fmt.Fprintln(w, strings.Join(line, "  ")); err != nil {
		return err
	}
	for i, row := range t.rows {
		for j, v := range row {
			s := pad(cells[i][j], widths[j])
			if rs.colors != nil {
				switch v.(type) {
				case float64:
					s = rs.colors.Number("%s", s)
				case nil:
					s = rs.colors.Missing("%s", s)
				}
			}
			line[j] = s
		}
		if _, err := fmt.Fprintln(w, strings.TrimRight(strings.Join(line, "  "), " ")); err != nil {
			return err
		}
	}
	return nil
}

func pad(s string, n int) string {
	if len(s) >= n {
		return s
	}
	return s + strings.Repeat(" ", n-len(s))
}

func cellString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	default:
		return fmt.Sprintf("%v", x)
	}
}
