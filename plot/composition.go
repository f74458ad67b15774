package plot

import (
	"fmt"
	"io"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"gonum.org/v1/gonum/floats"

	"github.com/icmd-tools/icmdout/sim"
	"github.com/icmd-tools/icmdout/unit"
)

// peakFloor hides phases that never grow beyond trace amounts.
const peakFloor = 1e-4

// CompositionStep draws temperature against phase fractions for one
// solidification, the liquid phase emphasized in black, with onset
// markers where each solid phase first exceeds the threshold.
func CompositionStep(w io.Writer, s *sim.Scheil, b unit.Basis, u unit.Temp, opts ...Option) error {
	st := newState(peakFloor, opts...)
	df, err := s.PhaseFraction(b, u, false)
	if err != nil {
		return err
	}
	tempCol := u.Column()
	temps, err := df.Floats(tempCol)
	if err != nil {
		return err
	}
	phases, err := s.PhaseNames()
	if err != nil {
		return err
	}

	ch := &chart.Chart{
		XAxis: chart.XAxis{Name: tempCol},
		YAxis: chart.YAxis{Name: fmt.Sprintf("Phase fraction (%s)", b)},
	}
	ci := 0
	for _, p := range phases {
		if p == "SOLID" || df.ColumnIndex(p) < 0 {
			continue
		}
		ys, err := df.Floats(p)
		if err != nil {
			return err
		}
		style := lineStyle(seriesColor(ci), 1.5)
		if p == "LIQUID" {
			style = lineStyle(drawing.ColorBlack, 2)
		} else {
			if floats.Max(ys) <= peakFloor {
				continue
			}
			ci++
		}
		ch.Series = append(ch.Series, chart.ContinuousSeries{
			Name:    p,
			XValues: temps,
			YValues: ys,
			Style:   style,
		})
	}
	if len(ch.Series) == 0 {
		return fmt.Errorf("no phases to plot")
	}

	onsets, err := s.OnsetTemperatures(st.threshold, u)
	if err != nil {
		return err
	}
	var marks []chart.Value2
	for i := 0; i < onsets.Len(); i++ {
		phase, err := onsets.Cell(i, "Phase")
		if err != nil {
			return err
		}
		temp, err := onsets.Float(i, "Onset temperature in "+u.String())
		if err != nil {
			return err
		}
		marks = append(marks, chart.Value2{
			XValue: temp,
			YValue: st.threshold,
			Label:  phase.(string),
		})
	}
	if len(marks) > 0 {
		ch.Series = append(ch.Series, chart.AnnotationSeries{Annotations: marks})
	}
	return st.render(ch, w)
}
