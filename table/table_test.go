package table

import (
	"bytes"
	"slices"
	"strings"
	"testing"
)

func fractions() *Table {
	t := New("Temperature in C", "LIQUID", "FCC_A1")
	t.AppendRow(1000.0, 1.0, 0.0)
	t.AppendRow(1200.0, 0.7, 0.3)
	t.AppendRow(1400.0, 0.2, 0.8)
	return t
}

func TestConcatInnerJoin(t *testing.T) {
	a := FromFloats("Percent solidified molar", []float64{0, 50, 100, 100})
	b := fractions()
	got := Concat(a, b)
	if got.Len() != 3 {
		t.Fatalf("Concat: got %d rows, want 3 (shortest input)", got.Len())
	}
	want := []string{"Percent solidified molar", "Temperature in C", "LIQUID", "FCC_A1"}
	if !slices.Equal(got.Columns(), want) {
		t.Errorf("Concat columns: got %v", got.Columns())
	}
}

func TestStack(t *testing.T) {
	a := fractions()
	b := fractions()
	got, err := Stack(a, b)
	if err != nil {
		t.Fatalf("Stack: %v", err)
	}
	if got.Len() != 6 {
		t.Errorf("Stack: got %d rows", got.Len())
	}
	if _, err := Stack(a, FromFloats("x", nil)); err == nil {
		t.Errorf("Stack with mismatched columns: expected error")
	}
}

func TestDropColumns(t *testing.T) {
	got := fractions().DropColumns("LIQUID", "missing")
	want := []string{"Temperature in C", "FCC_A1"}
	if !slices.Equal(got.Columns(), want) {
		t.Errorf("DropColumns: got %v", got.Columns())
	}
	if got.Len() != 3 || len(got.Row(0)) != 2 {
		t.Errorf("DropColumns: rows not narrowed")
	}
}

func TestDropLastRow(t *testing.T) {
	got := fractions().DropLastRow()
	if got.Len() != 2 {
		t.Errorf("DropLastRow: got %d rows", got.Len())
	}
	if New("a").DropLastRow().Len() != 0 {
		t.Errorf("DropLastRow on empty table changed length")
	}
}

func TestMelt(t *testing.T) {
	got, err := fractions().Melt(
		[]string{"Temperature in C"},
		[]string{"LIQUID", "FCC_A1"},
		"Phase", "Phase Fraction")
	if err != nil {
		t.Fatalf("Melt: %v", err)
	}
	if got.Len() != 6 {
		t.Fatalf("Melt: got %d rows, want 6", got.Len())
	}
	want := []string{"Temperature in C", "Phase", "Phase Fraction"}
	if !slices.Equal(got.Columns(), want) {
		t.Errorf("Melt columns: got %v", got.Columns())
	}
	// first block is all LIQUID in source order
	v, _ := got.Cell(0, "Phase")
	if v != "LIQUID" {
		t.Errorf("Melt row 0 phase: got %v", v)
	}
	f, _ := got.Float(1, "Phase Fraction")
	if f != 0.7 {
		t.Errorf("Melt row 1 fraction: got %v", f)
	}
	if _, err := fractions().Melt(nil, []string{"nope"}, "a", "b"); err == nil {
		t.Errorf("Melt with unknown value var: expected error")
	}
}

func TestSortByFloat(t *testing.T) {
	src := New("t", "label")
	src.AppendRow(3.0, "c")
	src.AppendRow(1.0, "a")
	src.AppendRow(nil, "missing")
	src.AppendRow(2.0, "b")
	got, err := src.SortByFloat("t")
	if err != nil {
		t.Fatalf("SortByFloat: %v", err)
	}
	var order []any
	for i := 0; i < got.Len(); i++ {
		v, _ := got.Cell(i, "label")
		order = append(order, v)
	}
	want := []any{"a", "b", "c", "missing"}
	if !slices.Equal(order, want) {
		t.Errorf("SortByFloat order: got %v", order)
	}
}

type filterTest struct {
	src  string
	rows int
	err  bool
}

var filterTests = []filterTest{
	{src: "FCC_A1 > 0.1", rows: 2},
	{src: "FCC_A1 > 0.1 && LIQUID > 0.5", rows: 1},
	{src: `row["Temperature in C"] >= 1200`, rows: 2},
	{src: "true", rows: 3},
	{src: "><", err: true},
}

func TestFilter(t *testing.T) {
	for _, tst := range filterTests {
		got, err := fractions().Filter(tst.src)
		if tst.err {
			if err == nil {
				t.Errorf("Filter(%q): expected error", tst.src)
			}
			continue
		}
		if err != nil {
			t.Errorf("Filter(%q): %v", tst.src, err)
			continue
		}
		if got.Len() != tst.rows {
			t.Errorf("Filter(%q): got %d rows, want %d", tst.src, got.Len(), tst.rows)
		}
	}
}

func TestWriteCSV(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	if err := fractions().Write(buf, RenderCSV(true)); err != nil {
		t.Fatalf("Write: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("csv: got %d lines", len(lines))
	}
	if lines[0] != "Temperature in C,LIQUID,FCC_A1" {
		t.Errorf("csv header: got %q", lines[0])
	}
	if lines[1] != "1000,1,0" {
		t.Errorf("csv row: got %q", lines[1])
	}
}

func TestWriteText(t *testing.T) {
	src := New("Phase Region", "t")
	src.AppendRow("LIQUID+FCC_A1", 1.5)
	src.AppendRow(nil, 2.0)
	buf := bytes.NewBuffer(nil)
	if err := src.Write(buf); err != nil {
		t.Fatalf("Write: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "LIQUID+FCC_A1  1.5") {
		t.Errorf("text render: got\n%s", out)
	}
}

func TestDiff(t *testing.T) {
	a := fractions()
	if d := Diff(a, fractions()); d != "" {
		t.Errorf("Diff of equal tables: got\n%s", d)
	}
	b := fractions()
	b.AppendRow(1600.0, 0.0, 1.0)
	d := Diff(a, b)
	if !strings.Contains(d, "+ 1600") {
		t.Errorf("Diff missing inserted row:\n%s", d)
	}
	if strings.Contains(d, "- 1000") {
		t.Errorf("Diff reports common row as deleted:\n%s", d)
	}
	c := b.DropColumns("FCC_A1")
	if d := Diff(b, c); !strings.Contains(d, "+ columns:") {
		t.Errorf("Diff missing column change:\n%s", d)
	}
}
