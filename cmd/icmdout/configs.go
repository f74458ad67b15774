package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/icmd-tools/icmdout/parse"
	"github.com/icmd-tools/icmdout/sim"
	"github.com/icmd-tools/icmdout/table"
	"github.com/icmd-tools/icmdout/unit"
)

type MainConfig struct {
	Y     bool `cli:"name=y aliases=yaml desc='parse model documents as yaml'"`
	CSV   bool `cli:"name=csv desc='write tables as csv'"`
	Color bool `cli:"name=color desc='render tables with color'"`

	Patch string `cli:"name=patch desc='apply an RFC 6902 patch file to each document before reshaping'"`
	Where string `cli:"name=where desc='keep only table rows matching an expression'"`

	TempUnit unit.Temp
	Basis    unit.Basis

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) tempFunc() cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		u, err := unit.ParseTemp(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		cfg.TempUnit = u
		return v, nil
	})
}

func (cfg *MainConfig) basisFunc() cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		b, err := unit.ParseBasis(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		cfg.Basis = b
		return v, nil
	})
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func (cfg *MainConfig) parseOpts() ([]parse.ParseOption, error) {
	res := []parse.ParseOption{}
	if cfg.Y {
		res = append(res, parse.WithFormat(parse.YAMLFormat))
	}
	if cfg.Patch != "" {
		p, err := os.ReadFile(cfg.Patch)
		if err != nil {
			return nil, fmt.Errorf("could not read patch %q: %w", cfg.Patch, err)
		}
		res = append(res, parse.WithPatch(p))
	}
	return res, nil
}

func (cfg *MainConfig) renderOpts(cc *cli.Context) []table.RenderOption {
	if cfg.CSV {
		return []table.RenderOption{table.RenderCSV(true)}
	}
	if cfg.Color {
		return []table.RenderOption{table.RenderColors(table.NewColors())}
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return nil
	}
	f, ok := cc.Out.(*os.File)
	if !ok {
		return nil
	}
	if isatty.IsTerminal(f.Fd()) {
		return []table.RenderOption{table.RenderColors(table.NewColors())}
	}
	return nil
}

// writeTable applies the -where filter, if any, and renders t on the
// command's output.
func (cfg *MainConfig) writeTable(cc *cli.Context, t *table.Table) error {
	if cfg.Where != "" {
		var err error
		t, err = t.Filter(cfg.Where)
		if err != nil {
			return fmt.Errorf("%w: bad -where expression: %w", cli.ErrUsage, err)
		}
	}
	return t.Write(cc.Out, cfg.renderOpts(cc)...)
}

type TempsConfig struct {
	*MainConfig
	Parametric bool `cli:"name=p aliases=parametric desc='one row per parametric run and step'"`

	Temps *cli.Command
}

type FractionConfig struct {
	*MainConfig
	Parametric bool `cli:"name=p aliases=parametric desc='stack all parametric runs with their compositions'"`

	Fraction *cli.Command
}

type VolumeConfig struct {
	*MainConfig
	Parametric bool `cli:"name=p aliases=parametric desc='stack all parametric runs with their compositions'"`

	Volume *cli.Command
}

type CompositionConfig struct {
	*MainConfig

	Composition *cli.Command
}

type ComponentsConfig struct {
	*MainConfig
	Exclude string `cli:"name=x desc='component to leave out, e.g. the balance element'"`

	Components *cli.Command
}

type RegionsConfig struct {
	*MainConfig
	Temps bool `cli:"name=temps desc='show the temperature span of each phase region'"`

	Regions *cli.Command
}

type ScheilConfig struct {
	*MainConfig
	Threshold float64
	PlotData  bool `cli:"name=plotdata desc='emit percent solidified with leftmost active region labels'"`
	Onset     bool `cli:"name=onset desc='emit the onset temperature of each solid phase'"`

	Scheil *cli.Command
}

func (cfg *ScheilConfig) thresholdFunc() cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		x, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: bad threshold %q: %w", cli.ErrUsage, v, err)
		}
		cfg.Threshold = x
		return x, nil
	})
}

type PlotConfig struct {
	*MainConfig
	Step      bool   `cli:"name=step desc='step plot of phase fraction vs temperature'"`
	Comp      bool   `cli:"name=comp desc='liquid composition vs temperature with onset markers'"`
	Regions   bool   `cli:"name=regions desc='label the scheil curve from the solidification region block'"`
	SVG       bool   `cli:"name=svg desc='render svg instead of png'"`
	Linear    bool   `cli:"name=linear desc='linear y axis for step plots'"`
	Title     string `cli:"name=title desc='chart title'"`
	Width     int    `cli:"name=w desc='chart width in pixels'"`
	Height    int    `cli:"name=h desc='chart height in pixels'"`
	Threshold float64

	Plot *cli.Command
}

func (cfg *PlotConfig) thresholdFunc() cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		x, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: bad threshold %q: %w", cli.ErrUsage, v, err)
		}
		cfg.Threshold = x
		return x, nil
	})
}

type DiffConfig struct {
	*MainConfig
	Method string `cli:"name=m desc='table to compare: temps, fraction, volume, percent, regions, scheil'"`

	Diff *cli.Command
}

func (cfg *DiffConfig) tableOf(s *sim.Scheil) (*table.Table, error) {
	switch cfg.Method {
	case "", "scheil":
		return s.ScheilDF(sim.DefaultThreshold)
	case "temps":
		return s.Temperatures(cfg.TempUnit, false)
	case "fraction":
		return s.PhaseFraction(cfg.Basis, cfg.TempUnit, false)
	case "volume":
		return s.VolumeFraction(cfg.TempUnit, false)
	case "percent":
		return s.PercentSolidifiedMolar()
	case "regions":
		return s.TemperatureByPhaseRegion(cfg.TempUnit)
	}
	return nil, fmt.Errorf("%w: unknown method %q", cli.ErrUsage, cfg.Method)
}

type ServeConfig struct {
	*MainConfig

	Serve *cli.Command
}
