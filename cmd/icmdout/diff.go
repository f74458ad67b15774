package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/icmd-tools/icmdout/table"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	s1, err := getModelFile(cfg.MainConfig, cc, args[0])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	s2, err := getModelFile(cfg.MainConfig, cc, args[1])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	t1, err := cfg.tableOf(s1)
	if err != nil {
		return err
	}
	t2, err := cfg.tableOf(s2)
	if err != nil {
		return err
	}
	d := table.Diff(t1, t2)
	if d == "" {
		return nil
	}
	if _, err := fmt.Fprint(cc.Out, d); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}
