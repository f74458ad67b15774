// Package sim reshapes model documents into tables.
//
// The raw blocks are positionally indexed: temperature points carry a
// value per unit, fraction points a value per basis, and phase and
// component axes follow the order of their coordinate arrays. Model,
// Solidification and Scheil expose those blocks as named-column
// tables. All methods are pure reads of the underlying document; the
// one exception is the Scheil aggregate, computed once at
// construction.
package sim

import (
	"fmt"
	"slices"

	"gonum.org/v1/gonum/floats"

	"github.com/icmd-tools/icmdout/doc"
	"github.com/icmd-tools/icmdout/table"
	"github.com/icmd-tools/icmdout/unit"
)

// Model reshapes the phase, temperature and composition blocks of a
// single model document.
type Model struct {
	doc *doc.Document
}

func NewModel(d *doc.Document) *Model {
	return &Model{doc: d}
}

func (m *Model) Doc() *doc.Document {
	return m.doc
}

// PhaseNames returns the phase coordinate. Its order defines the
// column order of every phase-fraction table.
func (m *Model) PhaseNames() ([]string, error) {
	v, err := m.doc.Coord("phase")
	if err != nil {
		return nil, err
	}
	return doc.Strings(v)
}

// Elements returns the component coordinate as a one-column table.
func (m *Model) Elements() (*table.Table, error) {
	elems, err := m.elements()
	if err != nil {
		return nil, err
	}
	return table.FromStrings("Element", elems), nil
}

func (m *Model) elements() ([]string, error) {
	v, err := m.doc.Coord("component")
	if err != nil {
		return nil, err
	}
	return doc.Strings(v)
}

// rawTemperatures selects one value per point at the unit's position.
// In parametric mode every run keeps its full sequence; otherwise the
// block is a single-run series with a singleton inner dimension.
func (m *Model) rawTemperatures(u unit.Temp, parametric bool) ([][]float64, error) {
	data, err := m.doc.DataVar("temperature_values", "temperature")
	if err != nil {
		return nil, err
	}
	idx := u.ValueIndex()
	if parametric {
		res := make([][]float64, len(data))
		for i, run := range data {
			rows, err := doc.Slices(run)
			if err != nil {
				return nil, fmt.Errorf("temperature run %d: %w", i, err)
			}
			seq := make([]float64, len(rows))
			for j, row := range rows {
				seq[j], err = doc.Float(row[idx])
				if err != nil {
					return nil, fmt.Errorf("temperature run %d step %d: %w", i, j, err)
				}
			}
			res[i] = seq
		}
		return res, nil
	}
	seq := make([]float64, len(data))
	for i, point := range data {
		rows, err := doc.Slices(point)
		if err != nil {
			return nil, fmt.Errorf("temperature point %d: %w", i, err)
		}
		seq[i], err = doc.Float(rows[0][idx])
		if err != nil {
			return nil, fmt.Errorf("temperature point %d: %w", i, err)
		}
	}
	return [][]float64{seq}, nil
}

// Temperatures returns the temperature series at the given unit. In
// parametric mode each run contributes its full sequence, tagged with
// a Run column.
func (m *Model) Temperatures(u unit.Temp, parametric bool) (*table.Table, error) {
	seqs, err := m.rawTemperatures(u, parametric)
	if err != nil {
		return nil, err
	}
	if !parametric {
		return table.FromFloats(u.Column(), seqs[0]), nil
	}
	res := table.New("Run", u.Column())
	for run, seq := range seqs {
		for _, v := range seq {
			res.AppendRow(float64(run), v)
		}
	}
	return res, nil
}

// rawPhaseFraction selects the basis value out of every fraction pair.
func (m *Model) rawPhaseFraction(b unit.Basis, parametric bool) ([][][]float64, error) {
	data, err := m.doc.DataVar("phase_fraction")
	if err != nil {
		return nil, err
	}
	if !parametric {
		data = data[:1]
	}
	idx := b.Index()
	res := make([][][]float64, len(data))
	for r, run := range data {
		steps, err := doc.Slice(run)
		if err != nil {
			return nil, fmt.Errorf("phase_fraction run %d: %w", r, err)
		}
		block := make([][]float64, len(steps))
		for i, step := range steps {
			points, err := doc.Slices(step)
			if err != nil {
				return nil, fmt.Errorf("phase_fraction run %d step %d: %w", r, i, err)
			}
			row := make([]float64, len(points))
			for j, pt := range points {
				row[j], err = doc.Float(pt[idx])
				if err != nil {
					return nil, fmt.Errorf("phase_fraction run %d step %d phase %d: %w", r, i, j, err)
				}
			}
			block[i] = row
		}
		res[r] = block
	}
	return res, nil
}

// PhaseFraction builds a temperature column plus one column per phase.
// In parametric mode each run's block is expanded row-per-step with
// the run's composition parameters broadcast onto every row.
func (m *Model) PhaseFraction(b unit.Basis, u unit.Temp, parametric bool) (*table.Table, error) {
	phases, err := m.PhaseNames()
	if err != nil {
		return nil, err
	}
	values, err := m.rawPhaseFraction(b, parametric)
	if err != nil {
		return nil, err
	}
	temps, err := m.rawTemperatures(u, parametric)
	if err != nil {
		return nil, err
	}
	if !parametric {
		return fractionBlock(u.Column(), temps[0], phases, values[0]), nil
	}

	components, err := m.Components("")
	if err != nil {
		return nil, err
	}
	params := components.Columns()
	var blocks []*table.Table
	for run := range values {
		if run >= len(temps) || run >= components.Len() {
			break
		}
		block := fractionBlock(u.Column(), temps[run], phases, values[run])
		// broadcast the run's composition parameters, keeping them
		// ahead of the temperature column
		pt := table.New(params...)
		for i := 0; i < block.Len(); i++ {
			pt.AppendRow(components.Row(run)...)
		}
		blocks = append(blocks, table.Concat(pt, block))
	}
	return table.Stack(blocks...)
}

func fractionBlock(tempCol string, temps []float64, phases []string, values [][]float64) *table.Table {
	res := table.New(append([]string{tempCol}, phases...)...)
	n := len(values)
	if len(temps) < n {
		n = len(temps)
	}
	for i := 0; i < n; i++ {
		row := make([]any, 0, len(phases)+1)
		row = append(row, temps[i])
		for _, v := range values[i] {
			row = append(row, v)
		}
		res.AppendRow(row...)
	}
	return res
}

// VolumeFraction mirrors PhaseFraction for the volume_fraction block,
// which carries no basis selector and only a single run.
func (m *Model) VolumeFraction(u unit.Temp, parametric bool) (*table.Table, error) {
	phases, err := m.PhaseNames()
	if err != nil {
		return nil, err
	}
	data, err := m.doc.DataVar("volume_fraction")
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("volume_fraction: %w: empty block", doc.ErrBadShape)
	}
	steps, err := doc.Slice(data[0])
	if err != nil {
		return nil, fmt.Errorf("volume_fraction: %w", err)
	}
	values := make([][]float64, len(steps))
	for i, step := range steps {
		values[i], err = doc.Floats(step)
		if err != nil {
			return nil, fmt.Errorf("volume_fraction step %d: %w", i, err)
		}
	}
	temps, err := m.rawTemperatures(u, parametric)
	if err != nil {
		return nil, err
	}
	return fractionBlock(u.Column(), temps[0], phases, values), nil
}

// Composition extracts per-element values for each requested phase
// (default all) across all steps, tags every block with a Phase
// column and concatenates the blocks in request order.
func (m *Model) Composition(phases []string, b unit.Basis) (*table.Table, error) {
	all, err := m.PhaseNames()
	if err != nil {
		return nil, err
	}
	if phases == nil {
		phases = all
	}
	elements, err := m.elements()
	if err != nil {
		return nil, err
	}
	data, err := m.doc.DataVar("composition", "phase_composition")
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("composition: %w: empty block", doc.ErrBadShape)
	}
	steps, err := doc.Slice(data[0])
	if err != nil {
		return nil, fmt.Errorf("composition: %w", err)
	}
	idx := b.Index()
	cols := append(slices.Clone(elements), "Phase")
	var blocks []*table.Table
	for _, phase := range phases {
		pi := slices.Index(all, phase)
		if pi < 0 {
			return nil, fmt.Errorf("%w: %q", ErrPhaseNotFound, phase)
		}
		block := table.New(cols...)
		for i, step := range steps {
			rows, err := doc.Slices(step)
			if err != nil {
				return nil, fmt.Errorf("composition step %d: %w", i, err)
			}
			points, err := doc.Slices(rows[pi])
			if err != nil {
				return nil, fmt.Errorf("composition step %d phase %q: %w", i, phase, err)
			}
			row := make([]any, 0, len(elements)+1)
			for e := range elements {
				v, err := doc.Float(points[e][idx])
				if err != nil {
					return nil, fmt.Errorf("composition step %d phase %q element %d: %w", i, phase, e, err)
				}
				row = append(row, v)
			}
			row = append(row, phase)
			block.AppendRow(row...)
		}
		blocks = append(blocks, block)
	}
	return table.Stack(blocks...)
}

// Components pivots the per-component sample arrays of the input
// composition into one column per component. exclude drops one
// component, typically the solvent/balance element.
func (m *Model) Components(exclude string) (*table.Table, error) {
	v, err := m.doc.Attr("input_dict", "composition", "components")
	if err != nil {
		return nil, err
	}
	recs, err := doc.Slice(v)
	if err != nil {
		return nil, fmt.Errorf("components: %w", err)
	}
	var (
		names   []string
		samples [][]float64
	)
	for i, rec := range recs {
		rm, err := doc.Map(rec)
		if err != nil {
			return nil, fmt.Errorf("component %d: %w", i, err)
		}
		name, err := doc.String(rm["name"])
		if err != nil {
			return nil, fmt.Errorf("component %d name: %w", i, err)
		}
		if name == exclude {
			continue
		}
		ss, err := doc.Floats(rm["samples"])
		if err != nil {
			return nil, fmt.Errorf("component %q samples: %w", name, err)
		}
		names = append(names, name)
		samples = append(samples, ss)
	}
	res := table.New(names...)
	if len(samples) == 0 {
		return res, nil
	}
	n := len(samples[0])
	for _, ss := range samples {
		if len(ss) != n {
			return nil, fmt.Errorf("components: %w: sample counts differ", doc.ErrBadShape)
		}
	}
	for r := 0; r < n; r++ {
		row := make([]any, len(samples))
		for c := range samples {
			row[c] = samples[c][r]
		}
		res.AppendRow(row...)
	}
	return res, nil
}

// NearestRun finds the parametric run whose input composition is
// closest to target in the euclidean sense. When balance names a
// component, it receives the remainder to 100 before matching, so
// callers only specify the swept components.
func (m *Model) NearestRun(target map[string]float64, balance string) (int, error) {
	components, err := m.Components("")
	if err != nil {
		return 0, err
	}
	if components.Len() == 0 {
		return 0, fmt.Errorf("no parametric runs in document")
	}
	cols := components.Columns()
	goal := make(map[string]float64, len(target)+1)
	for k, v := range target {
		goal[k] = v
	}
	if balance != "" {
		sum := 0.0
		for k, v := range goal {
			if k != balance {
				sum += v
			}
		}
		goal[balance] = max(100-sum, 0)
	}
	want := make([]float64, len(cols))
	for i, c := range cols {
		want[i] = goal[c]
	}
	best, bestDist := 0, 0.0
	for run := 0; run < components.Len(); run++ {
		got := make([]float64, len(cols))
		for i, c := range cols {
			got[i], err = components.Float(run, c)
			if err != nil {
				return 0, err
			}
		}
		d := floats.Distance(got, want, 2)
		if run == 0 || d < bestDist {
			best, bestDist = run, d
		}
	}
	return best, nil
}
