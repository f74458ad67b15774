package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/icmd-tools/icmdout/table"
)

func temps(cfg *TempsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Temps.Parse(cc, args)
	if err != nil {
		return err
	}
	path, rest := pathArg(args)
	if len(rest) != 0 {
		return fmt.Errorf("%w: temps takes at most one file, got %v", cli.ErrUsage, args)
	}
	s, err := getModelFile(cfg.MainConfig, cc, path)
	if err != nil {
		return err
	}
	t, err := s.Temperatures(cfg.TempUnit, cfg.Parametric)
	if err != nil {
		return err
	}
	return cfg.writeTable(cc, t)
}

func fraction(cfg *FractionConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fraction.Parse(cc, args)
	if err != nil {
		return err
	}
	path, rest := pathArg(args)
	if len(rest) != 0 {
		return fmt.Errorf("%w: fraction takes at most one file, got %v", cli.ErrUsage, args)
	}
	s, err := getModelFile(cfg.MainConfig, cc, path)
	if err != nil {
		return err
	}
	t, err := s.PhaseFraction(cfg.Basis, cfg.TempUnit, cfg.Parametric)
	if err != nil {
		return err
	}
	return cfg.writeTable(cc, t)
}

func volume(cfg *VolumeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Volume.Parse(cc, args)
	if err != nil {
		return err
	}
	path, rest := pathArg(args)
	if len(rest) != 0 {
		return fmt.Errorf("%w: volume takes at most one file, got %v", cli.ErrUsage, args)
	}
	s, err := getModelFile(cfg.MainConfig, cc, path)
	if err != nil {
		return err
	}
	t, err := s.VolumeFraction(cfg.TempUnit, cfg.Parametric)
	if err != nil {
		return err
	}
	return cfg.writeTable(cc, t)
}

func composition(cfg *CompositionConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Composition.Parse(cc, args)
	if err != nil {
		return err
	}
	path, phases := pathArg(args)
	s, err := getModelFile(cfg.MainConfig, cc, path)
	if err != nil {
		return err
	}
	t, err := s.Composition(phases, cfg.Basis)
	if err != nil {
		return err
	}
	return cfg.writeTable(cc, t)
}

func components(cfg *ComponentsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Components.Parse(cc, args)
	if err != nil {
		return err
	}
	path, _ := pathArg(args)
	s, err := getModelFile(cfg.MainConfig, cc, path)
	if err != nil {
		return err
	}
	t, err := s.Components(cfg.Exclude)
	if err != nil {
		return err
	}
	return cfg.writeTable(cc, t)
}

func elements(cfg *ComponentsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Components.Parse(cc, args)
	if err != nil {
		return err
	}
	path, _ := pathArg(args)
	s, err := getModelFile(cfg.MainConfig, cc, path)
	if err != nil {
		return err
	}
	t, err := s.Elements()
	if err != nil {
		return err
	}
	return cfg.writeTable(cc, t)
}

func regions(cfg *RegionsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Regions.Parse(cc, args)
	if err != nil {
		return err
	}
	path, _ := pathArg(args)
	s, err := getModelFile(cfg.MainConfig, cc, path)
	if err != nil {
		return err
	}
	var tab *table.Table
	if cfg.Temps {
		tab, err = s.TemperatureByPhaseRegion(cfg.TempUnit)
	} else {
		tab, err = s.SolidRegions()
	}
	if err != nil {
		return err
	}
	return cfg.writeTable(cc, tab)
}

func percent(cfg *RegionsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Regions.Parse(cc, args)
	if err != nil {
		return err
	}
	path, _ := pathArg(args)
	s, err := getModelFile(cfg.MainConfig, cc, path)
	if err != nil {
		return err
	}
	t, err := s.PercentSolidifiedMolar()
	if err != nil {
		return err
	}
	return cfg.writeTable(cc, t)
}

func scheil(cfg *ScheilConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Scheil.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.PlotData && cfg.Onset {
		return fmt.Errorf("%w: -plotdata and -onset are mutually exclusive", cli.ErrUsage)
	}
	path, _ := pathArg(args)
	s, err := getModelFile(cfg.MainConfig, cc, path)
	if err != nil {
		return err
	}
	switch {
	case cfg.PlotData:
		tab, err := s.ScheilPlotData(cfg.TempUnit)
		if err != nil {
			return err
		}
		return cfg.writeTable(cc, tab)
	case cfg.Onset:
		tab, err := s.OnsetTemperatures(cfg.Threshold, cfg.TempUnit)
		if err != nil {
			return err
		}
		return cfg.writeTable(cc, tab)
	}
	tab, err := s.ScheilDF(cfg.Threshold)
	if err != nil {
		return err
	}
	return cfg.writeTable(cc, tab)
}
