package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/icmd-tools/icmdout/parse"
	"github.com/icmd-tools/icmdout/sim"
)

// getModelFile loads a model document from path, "-" meaning the
// command's input stream, and wraps it for reshaping.
func getModelFile(cfg *MainConfig, cc *cli.Context, path string) (*sim.Scheil, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}

	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	opts, err := cfg.parseOpts()
	if err != nil {
		return nil, err
	}
	doc, err := parse.Parse(d, opts...)
	if err != nil {
		return nil, fmt.Errorf("error decoding %q: %w", path, err)
	}
	return sim.NewScheil(doc)
}

// pathArg extracts the model file argument, defaulting to stdin, and
// returns the remaining args.
func pathArg(args []string) (string, []string) {
	if len(args) == 0 {
		return "-", nil
	}
	return args[0], args[1:]
}
