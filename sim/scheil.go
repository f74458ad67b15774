package sim

import (
	"sort"
	"strings"

	"github.com/icmd-tools/icmdout/doc"
	"github.com/icmd-tools/icmdout/table"
	"github.com/icmd-tools/icmdout/unit"
)

// DefaultThreshold is the phase fraction above which a phase counts as
// present when labeling phase regions.
const DefaultThreshold = 1e-6

// solidColumn is the aggregate solid-fraction column of the phase
// fraction block; it never names a phase region.
const solidColumn = "SOLID"

// Scheil combines the solidification and phase-fraction views into
// plotting-ready tables. Construction eagerly computes the
// default-threshold temperature-to-phase-region mapping; the cache is
// written once and never mutated, so a Scheil value is safe for
// concurrent readers.
type Scheil struct {
	*Solidification
	tempByPhase *table.Table
}

func NewScheil(d *doc.Document) (*Scheil, error) {
	s := &Scheil{Solidification: NewSolidification(d)}
	cached, err := s.computeTempByPhase(DefaultThreshold)
	if err != nil {
		return nil, err
	}
	s.tempByPhase = cached
	return s, nil
}

// TempByPhase returns the cached default-threshold mapping from
// temperature to phase-region label.
func (s *Scheil) TempByPhase() *table.Table {
	return s.tempByPhase.Clone()
}

// computeTempByPhase labels every step with the sorted, "+"-joined
// set of phases whose fraction exceeds threshold, excluding the
// temperature column and the SOLID aggregate.
func (s *Scheil) computeTempByPhase(threshold float64) (*table.Table, error) {
	fractions, err := s.PhaseFraction(unit.Mole, unit.Celsius, false)
	if err != nil {
		return nil, err
	}
	tempCol := unit.Celsius.Column()
	var phases []string
	for _, c := range fractions.Columns() {
		if c != tempCol && c != solidColumn {
			phases = append(phases, c)
		}
	}
	res := table.New(tempCol, "Phase Region")
	for i := 0; i < fractions.Len(); i++ {
		temp, err := fractions.Float(i, tempCol)
		if err != nil {
			return nil, err
		}
		var present []string
		for _, p := range phases {
			v, err := fractions.Float(i, p)
			if err != nil {
				return nil, err
			}
			if v > threshold {
				present = append(present, p)
			}
		}
		sort.Strings(present)
		res.AppendRow(temp, strings.Join(present, "+"))
	}
	return res, nil
}

// ScheilDF joins percent-solidified with the phase-region mapping for
// threshold and drops the trailing end-of-run sentinel row.
func (s *Scheil) ScheilDF(threshold float64) (*table.Table, error) {
	mapping := s.tempByPhase
	if threshold != DefaultThreshold {
		var err error
		mapping, err = s.computeTempByPhase(threshold)
		if err != nil {
			return nil, err
		}
	}
	percent, err := s.PercentSolidifiedMolar()
	if err != nil {
		return nil, err
	}
	return table.Concat(percent, mapping).DropLastRow(), nil
}

// OnsetTemperatures reports, per phase, the temperature of the first
// step whose fraction exceeds threshold. Phases that never exceed it
// are omitted, as are the liquid phase and the SOLID aggregate.
func (s *Scheil) OnsetTemperatures(threshold float64, u unit.Temp) (*table.Table, error) {
	fractions, err := s.PhaseFraction(unit.Mole, u, false)
	if err != nil {
		return nil, err
	}
	tempCol := u.Column()
	res := table.New("Phase", "Onset temperature in "+u.String())
	for _, c := range fractions.Columns() {
		if c == tempCol || c == solidColumn || c == "LIQUID" {
			continue
		}
		for i := 0; i < fractions.Len(); i++ {
			v, err := fractions.Float(i, c)
			if err != nil {
				return nil, err
			}
			if v > threshold {
				temp, err := fractions.Float(i, tempCol)
				if err != nil {
					return nil, err
				}
				res.AppendRow(c, temp)
				break
			}
		}
	}
	return res, nil
}
