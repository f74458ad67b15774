package plot

import (
	"fmt"
	"io"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/icmd-tools/icmdout/sim"
	"github.com/icmd-tools/icmdout/table"
	"github.com/icmd-tools/icmdout/unit"
)

// Scheil draws percent-solidified against temperature with one line
// per phase-region label. With fromRegions the labels come from the
// solidification-region block (ScheilPlotData); otherwise from the
// thresholded phase-fraction mapping (ScheilDF).
func Scheil(w io.Writer, s *sim.Scheil, u unit.Temp, fromRegions bool, opts ...Option) error {
	st := newState(sim.DefaultThreshold, opts...)
	var (
		df  *table.Table
		err error
	)
	if fromRegions {
		df, err = s.ScheilPlotData(u)
	} else {
		df, err = s.ScheilDF(st.threshold)
	}
	if err != nil {
		return err
	}
	tempCol, err := temperatureColumn(df)
	if err != nil {
		return err
	}

	// one series per region label, in order of first appearance
	var order []string
	groups := map[string][][2]float64{}
	for i := 0; i < df.Len(); i++ {
		label, err := df.Cell(i, "Phase Region")
		if err != nil {
			return err
		}
		name, ok := label.(string)
		if !ok || name == "" {
			continue
		}
		x, err := df.Float(i, "Percent solidified molar")
		if err != nil {
			return err
		}
		y, err := df.Float(i, tempCol)
		if err != nil {
			return err
		}
		if _, seen := groups[name]; !seen {
			order = append(order, name)
		}
		groups[name] = append(groups[name], [2]float64{x, y})
	}
	if len(order) == 0 {
		return fmt.Errorf("no labeled solidification steps to plot")
	}

	ch := &chart.Chart{
		XAxis: chart.XAxis{Name: "Percent solidified molar"},
		YAxis: chart.YAxis{Name: tempCol},
	}
	for i, name := range order {
		pts := groups[name]
		xs := make([]float64, len(pts))
		ys := make([]float64, len(pts))
		for j, p := range pts {
			xs[j], ys[j] = p[0], p[1]
		}
		style := lineStyle(seriesColor(i), 3)
		if len(pts) == 1 {
			// single-point regions still need a visible mark
			style.DotWidth = 4
			style.DotColor = seriesColor(i)
		}
		ch.Series = append(ch.Series, chart.ContinuousSeries{
			Name:    name,
			XValues: xs,
			YValues: ys,
			Style:   style,
		})
	}
	return st.render(ch, w)
}

// ScheilStep draws phase fraction against temperature, one line per
// phase, from the long-format melt of the phase fraction table with
// the SOLID aggregate removed and rows sorted by temperature
// ascending. The y axis is logarithmic by default.
func ScheilStep(w io.Writer, m *sim.Model, b unit.Basis, u unit.Temp, opts ...Option) error {
	st := newState(sim.DefaultThreshold, opts...)
	df, err := m.PhaseFraction(b, u, false)
	if err != nil {
		return err
	}
	tempCol := u.Column()
	phases, err := m.PhaseNames()
	if err != nil {
		return err
	}
	var keep []string
	for _, p := range phases {
		if p != "SOLID" && df.ColumnIndex(p) >= 0 {
			keep = append(keep, p)
		}
	}
	long, err := df.Melt([]string{tempCol}, keep, "Phase", "Phase Fraction")
	if err != nil {
		return err
	}
	long, err = long.SortByFloat(tempCol)
	if err != nil {
		return err
	}

	ch := &chart.Chart{
		XAxis: chart.XAxis{Name: tempCol},
		YAxis: chart.YAxis{Name: fmt.Sprintf("Phase fraction (%s)", b)},
	}
	logY := true
	if st.logYSet {
		logY = st.logY
	}
	switch {
	case st.rangeSet:
		ch.YAxis.Range = &chart.ContinuousRange{Min: st.yMin, Max: st.yMax}
	case logY:
		ch.YAxis.Range = &chart.LogarithmicRange{Min: 1e-4, Max: 1}
	}
	for i, p := range keep {
		sub, err := long.Filter(fmt.Sprintf("Phase == %q", p))
		if err != nil {
			return err
		}
		xs, err := sub.Floats(tempCol)
		if err != nil {
			return err
		}
		ys, err := sub.Floats("Phase Fraction")
		if err != nil {
			return err
		}
		if logY && !st.rangeSet {
			ys = clampPositive(ys, 1e-12)
		}
		ch.Series = append(ch.Series, chart.ContinuousSeries{
			Name:    p,
			XValues: xs,
			YValues: ys,
			Style:   lineStyle(seriesColor(i), 2),
		})
	}
	if len(ch.Series) == 0 {
		return fmt.Errorf("no phases to plot")
	}
	return st.render(ch, w)
}

// clampPositive keeps values usable on a log axis.
func clampPositive(vs []float64, floor float64) []float64 {
	res := make([]float64, len(vs))
	for i, v := range vs {
		if v < floor {
			v = floor
		}
		res[i] = v
	}
	return res
}
