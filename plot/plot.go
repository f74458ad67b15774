// Package plot renders diagnostic charts from reshaped tables.
package plot

import (
	"fmt"
	"io"
	"strings"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/icmd-tools/icmdout/debug"
	"github.com/icmd-tools/icmdout/table"
)

type Option func(*state)

type state struct {
	title     string
	width     int
	height    int
	svg       bool
	logY      bool
	logYSet   bool
	yMin      float64
	yMax      float64
	rangeSet  bool
	threshold float64
}

func Title(v string) Option {
	return func(s *state) { s.title = v }
}

func Size(width, height int) Option {
	return func(s *state) { s.width, s.height = width, height }
}

func SVG(v bool) Option {
	return func(s *state) { s.svg = v }
}

func LogY(v bool) Option {
	return func(s *state) { s.logY = v; s.logYSet = true }
}

func YRange(min, max float64) Option {
	return func(s *state) { s.yMin, s.yMax = min, max; s.rangeSet = true }
}

// Threshold overrides the phase-presence threshold used for region
// labels and onset markers.
func Threshold(v float64) Option {
	return func(s *state) { s.threshold = v }
}

func newState(threshold float64, opts ...Option) *state {
	s := &state{width: 900, height: 600, threshold: threshold}
	for _, f := range opts {
		f(s)
	}
	return s
}

func (s *state) render(ch *chart.Chart, w io.Writer) error {
	ch.Width = s.width
	ch.Height = s.height
	ch.Title = s.title
	ch.Background = chart.Style{Padding: chart.Box{Top: 16, Left: 16, Right: 16, Bottom: 16}}
	ch.Elements = []chart.Renderable{chart.Legend(ch)}
	if debug.Plot() {
		debug.Logf("plot: render %dx%d svg=%v", s.width, s.height, s.svg)
	}
	if s.svg {
		return ch.Render(chart.SVG, w)
	}
	return ch.Render(chart.PNG, w)
}

func lineStyle(col drawing.Color, width float64) chart.Style {
	return chart.Style{
		StrokeColor: col,
		StrokeWidth: width,
	}
}

func seriesColor(i int) drawing.Color {
	return chart.GetDefaultColor(i)
}

// temperatureColumn finds the conventional temperature column of a
// reshaped table, whatever its unit suffix.
func temperatureColumn(t *table.Table) (string, error) {
	for _, c := range t.Columns() {
		if strings.HasPrefix(c, "Temperature in ") {
			return c, nil
		}
	}
	return "", fmt.Errorf("table has no temperature column (columns: %v)", t.Columns())
}
