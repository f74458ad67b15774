package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/icmd-tools/icmdout/plot"
)

func plotCmd(cfg *PlotConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Plot.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Step && cfg.Comp {
		return fmt.Errorf("%w: -step and -comp are mutually exclusive", cli.ErrUsage)
	}
	path, rest := pathArg(args)
	if len(rest) != 0 {
		return fmt.Errorf("%w: plot takes at most one file, got %v", cli.ErrUsage, args)
	}
	s, err := getModelFile(cfg.MainConfig, cc, path)
	if err != nil {
		return err
	}

	opts := []plot.Option{
		plot.SVG(cfg.SVG),
		plot.Threshold(cfg.Threshold),
	}
	if cfg.Title != "" {
		opts = append(opts, plot.Title(cfg.Title))
	}
	if cfg.Width > 0 && cfg.Height > 0 {
		opts = append(opts, plot.Size(cfg.Width, cfg.Height))
	}
	if cfg.Linear {
		opts = append(opts, plot.LogY(false))
	}

	switch {
	case cfg.Step:
		return plot.ScheilStep(cc.Out, s.Model, cfg.Basis, cfg.TempUnit, opts...)
	case cfg.Comp:
		return plot.CompositionStep(cc.Out, s, cfg.Basis, cfg.TempUnit, opts...)
	}
	return plot.Scheil(cc.Out, s, cfg.TempUnit, cfg.Regions, opts...)
}
