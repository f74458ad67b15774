package main

import (
	"github.com/scott-cotton/cli"

	"github.com/icmd-tools/icmdout/sim"
	"github.com/icmd-tools/icmdout/unit"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{TempUnit: unit.Celsius, Basis: unit.Mole}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "u",
			Aliases:     []string{"unit"},
			Description: "temperature unit: C, K, F",
			Type:        cli.NamedFuncOpt(cfg.tempFunc(), "(unit)"),
		}, &cli.Opt{
			Name:        "b",
			Aliases:     []string{"basis"},
			Description: "composition basis: mole, mass",
			Type:        cli.NamedFuncOpt(cfg.basisFunc(), "(basis)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "icmdout").
		WithSynopsis("icmdout [opts] command [opts]").
		WithDescription("icmdout reshapes solidification simulation output into flat tables and plots.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return icmdMain(cfg, cc, args)
		}).
		WithSubs(
			TempsCommand(cfg),
			FractionCommand(cfg),
			VolumeCommand(cfg),
			CompositionCommand(cfg),
			ComponentsCommand(cfg),
			ElementsCommand(cfg),
			RegionsCommand(cfg),
			PercentCommand(cfg),
			ScheilCommand(cfg),
			PlotCommand(cfg),
			DiffCommand(cfg),
			ServeCommand(cfg))
}

func TempsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &TempsConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("temps").
		WithAliases("t").
		WithOpts(opts...).
		WithSynopsis("temps [-p] [file]").
		WithDescription("show the temperature sequence of a model run").
		WithRun(func(cc *cli.Context, args []string) error {
			return temps(cfg, cc, args)
		})
	cfg.Temps = cmd
	return cmd
}

func FractionCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FractionConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("fraction").
		WithAliases("f", "fr").
		WithOpts(opts...).
		WithSynopsis("fraction [-p] [file]").
		WithDescription("show phase fractions against temperature").
		WithRun(func(cc *cli.Context, args []string) error {
			return fraction(cfg, cc, args)
		})
	cfg.Fraction = cmd
	return cmd
}

func VolumeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &VolumeConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("volume").
		WithAliases("vol").
		WithOpts(opts...).
		WithSynopsis("volume [-p] [file]").
		WithDescription("show phase volume fractions against temperature").
		WithRun(func(cc *cli.Context, args []string) error {
			return volume(cfg, cc, args)
		})
	cfg.Volume = cmd
	return cmd
}

func CompositionCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CompositionConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("composition").
		WithAliases("c", "comp").
		WithSynopsis("composition [file [phases...]]").
		WithDescription("show per-phase element compositions, all phases when none are named").
		WithRun(func(cc *cli.Context, args []string) error {
			return composition(cfg, cc, args)
		})
	cfg.Composition = cmd
	return cmd
}

func ComponentsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ComponentsConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("components").
		WithOpts(opts...).
		WithSynopsis("components [-x element] [file]").
		WithDescription("show the sampled alloy composition of each parametric run").
		WithRun(func(cc *cli.Context, args []string) error {
			return components(cfg, cc, args)
		})
	cfg.Components = cmd
	return cmd
}

func ElementsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ComponentsConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("elements").
		WithSynopsis("elements [file]").
		WithDescription("list the elements of the simulated system").
		WithRun(func(cc *cli.Context, args []string) error {
			return elements(cfg, cc, args)
		})
	cfg.Components = cmd
	return cmd
}

func RegionsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &RegionsConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("regions").
		WithAliases("r").
		WithOpts(opts...).
		WithSynopsis("regions [-temps] [file]").
		WithDescription("show the solidification phase regions").
		WithRun(func(cc *cli.Context, args []string) error {
			return regions(cfg, cc, args)
		})
	cfg.Regions = cmd
	return cmd
}

func PercentCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &RegionsConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("percent").
		WithSynopsis("percent [file]").
		WithDescription("show percent solidified on a molar basis").
		WithRun(func(cc *cli.Context, args []string) error {
			return percent(cfg, cc, args)
		})
	cfg.Regions = cmd
	return cmd
}

func ScheilCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ScheilConfig{MainConfig: mainCfg, Threshold: sim.DefaultThreshold}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts,
		&cli.Opt{
			Name:        "t",
			Description: "phase fraction threshold for region labels",
			Type:        cli.NamedFuncOpt(cfg.thresholdFunc(), "(fraction)"),
		})
	cmd := cli.NewCommand("scheil").
		WithAliases("s").
		WithOpts(opts...).
		WithSynopsis("scheil [-t fraction] [-plotdata | -onset] [file]").
		WithDescription("show percent solidified with derived phase region labels").
		WithRun(func(cc *cli.Context, args []string) error {
			return scheil(cfg, cc, args)
		})
	cfg.Scheil = cmd
	return cmd
}

func PlotCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PlotConfig{MainConfig: mainCfg, Threshold: sim.DefaultThreshold}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts,
		&cli.Opt{
			Name:        "t",
			Description: "phase fraction threshold",
			Type:        cli.NamedFuncOpt(cfg.thresholdFunc(), "(fraction)"),
		})
	cmd := cli.NewCommand("plot").
		WithAliases("p").
		WithOpts(opts...).
		WithSynopsis("plot [-step | -comp] [-svg] [-o out] [file]").
		WithDescription("render solidification diagnostics as png or svg").
		WithRun(func(cc *cli.Context, args []string) error {
			return plotCmd(cfg, cc, args)
		})
	cfg.Plot = cmd
	return cmd
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("diff").
		WithAliases("d").
		WithOpts(opts...).
		WithSynopsis("diff [-m method] file1 file2").
		WithDescription("diff the reshaped tables of two model documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func ServeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ServeConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("serve").
		WithSynopsis("serve <file>").
		WithDescription("serve reshaped tables over json-rpc on stdin/stdout").
		WithRun(func(cc *cli.Context, args []string) error {
			return serve(cfg, cc, args)
		})
	cfg.Serve = cmd
	return cmd
}
