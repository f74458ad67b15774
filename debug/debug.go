// Package debug exposes env-gated switches for tracing the reshaping
// pipeline without threading a flag through every command.
package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Resolve bool
	Parse   bool
	RPC     bool
	Plot    bool
}

var d *debug

func init() {
	d = &debug{}
	d.Resolve = boolEnv("ICMDOUT_DEBUG_RESOLVE")
	d.Parse = boolEnv("ICMDOUT_DEBUG_PARSE")
	d.RPC = boolEnv("ICMDOUT_DEBUG_RPC")
	d.Plot = boolEnv("ICMDOUT_DEBUG_PLOT")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Resolve() bool {
	return d.Resolve
}
func Parse() bool {
	return d.Parse
}
func RPC() bool {
	return d.RPC
}
func Plot() bool {
	return d.Plot
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(d)
	os.Stderr.Write([]byte("\n"))
}
