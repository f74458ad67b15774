package sim

import (
	"fmt"

	"github.com/icmd-tools/icmdout/doc"
	"github.com/icmd-tools/icmdout/table"
	"github.com/icmd-tools/icmdout/unit"
)

// noneSentinel marks an inactive region step in the
// temperature_by_phase_region block.
const noneSentinel = "None"

// Solidification adds the solidification-specific views of a model
// document.
type Solidification struct {
	*Model
}

func NewSolidification(d *doc.Document) *Solidification {
	return &Solidification{Model: NewModel(d)}
}

func (s *Solidification) regionNames() ([]string, error) {
	v, err := s.doc.Coord("solidification_region")
	if err != nil {
		return nil, err
	}
	return doc.Strings(v)
}

// SolidRegions returns the calculated solidification regions.
func (s *Solidification) SolidRegions() (*table.Table, error) {
	regions, err := s.regionNames()
	if err != nil {
		return nil, err
	}
	return table.FromStrings("Phase Region", regions), nil
}

// TemperatureByPhaseRegion reshapes the single-run
// temperature_by_phase_region block into one column per region at the
// given unit position. Inactive steps keep the "None" sentinel.
func (s *Solidification) TemperatureByPhaseRegion(u unit.Temp) (*table.Table, error) {
	regions, err := s.regionNames()
	if err != nil {
		return nil, err
	}
	data, err := s.doc.DataVar("temperature_by_phase_region")
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("temperature_by_phase_region: %w: empty block", doc.ErrBadShape)
	}
	steps, err := doc.Slice(data[0])
	if err != nil {
		return nil, fmt.Errorf("temperature_by_phase_region: %w", err)
	}
	idx := u.RegionIndex()
	res := table.New(regions...)
	for i, step := range steps {
		points, err := doc.Slices(step)
		if err != nil {
			return nil, fmt.Errorf("temperature_by_phase_region step %d: %w", i, err)
		}
		row := make([]any, len(points))
		for j, pt := range points {
			row[j] = pt[idx]
		}
		res.AppendRow(row...)
	}
	return res, nil
}

// PercentSolidifiedMolar returns the percent-solidified series.
func (s *Solidification) PercentSolidifiedMolar() (*table.Table, error) {
	data, err := s.doc.DataVar("percent_solidified_molar_values")
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("percent_solidified_molar_values: %w: empty block", doc.ErrBadShape)
	}
	vals, err := doc.Floats(data[0])
	if err != nil {
		return nil, fmt.Errorf("percent_solidified_molar_values: %w", err)
	}
	return table.FromFloats("Percent solidified molar", vals), nil
}

// ScheilPlotData builds the table behind the Scheil plot: per step,
// the first region (in declaration order, liquid excluded) that is
// not the "None" sentinel, joined positionally with percent-solidified
// and temperature. Steps where every region is inactive keep a missing
// label; that happens before solidification begins.
func (s *Solidification) ScheilPlotData(u unit.Temp) (*table.Table, error) {
	regions, err := s.TemperatureByPhaseRegion(u)
	if err != nil {
		return nil, err
	}
	regions = regions.DropColumns("LIQUID")
	cols := regions.Columns()
	labels := table.New("Phase Region")
	for i := 0; i < regions.Len(); i++ {
		var label any
		for _, c := range cols {
			v, err := regions.Cell(i, c)
			if err != nil {
				return nil, err
			}
			if v == nil || v == noneSentinel {
				continue
			}
			label = c
			break
		}
		labels.AppendRow(label)
	}
	percent, err := s.PercentSolidifiedMolar()
	if err != nil {
		return nil, err
	}
	temps, err := s.Temperatures(u, false)
	if err != nil {
		return nil, err
	}
	return table.Concat(percent, temps, labels), nil
}
