package main

import (
	"context"
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/icmd-tools/icmdout/rpc"
)

func serve(cfg *ServeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Serve.Parse(cc, args)
	if err != nil {
		return err
	}
	path, _ := pathArg(args)
	// stdin carries the rpc stream, so the model must come from a file.
	if path == "-" {
		return fmt.Errorf("%w: serve requires a model file", cli.ErrUsage)
	}
	s, err := getModelFile(cfg.MainConfig, cc, path)
	if err != nil {
		return err
	}
	return rpc.NewServer(s).ServeStdio(context.Background())
}
