// Package rpc serves reshaped tables to external plotting and UI
// collaborators over JSON-RPC 2.0.
package rpc

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"go.lsp.dev/jsonrpc2"

	"github.com/icmd-tools/icmdout/debug"
	"github.com/icmd-tools/icmdout/sim"
	"github.com/icmd-tools/icmdout/table"
	"github.com/icmd-tools/icmdout/unit"
)

// Server exposes the reshaping operations of one model run.
type Server struct {
	scheil *sim.Scheil
}

func NewServer(s *sim.Scheil) *Server {
	return &Server{scheil: s}
}

// TableParams selects units and scope for table methods. Zero values
// mean Celsius, mole basis, non-parametric, all phases.
type TableParams struct {
	TempUnit   string   `json:"tempUnit,omitempty"`
	Basis      string   `json:"basis,omitempty"`
	Parametric bool     `json:"parametric,omitempty"`
	Phases     []string `json:"phases,omitempty"`
	Exclude    string   `json:"exclude,omitempty"`
	Threshold  *float64 `json:"threshold,omitempty"`
}

// TableResult is the wire form of a table.
type TableResult struct {
	Columns []string `json:"columns"`
	Rows    [][]any  `json:"rows"`
}

type NearestRunParams struct {
	Target  map[string]float64 `json:"target"`
	Balance string             `json:"balance,omitempty"`
}

type NearestRunResult struct {
	Run int `json:"run"`
}

func (p *TableParams) tempUnit() (unit.Temp, error) {
	if p.TempUnit == "" {
		return unit.Celsius, nil
	}
	return unit.ParseTemp(p.TempUnit)
}

func (p *TableParams) basis() (unit.Basis, error) {
	if p.Basis == "" {
		return unit.Mole, nil
	}
	return unit.ParseBasis(p.Basis)
}

func (p *TableParams) threshold() float64 {
	if p.Threshold == nil {
		return sim.DefaultThreshold
	}
	return *p.Threshold
}

func tableResult(t *table.Table) *TableResult {
	res := &TableResult{Columns: t.Columns(), Rows: make([][]any, t.Len())}
	for i := 0; i < t.Len(); i++ {
		res.Rows[i] = t.Row(i)
	}
	return res
}

// Serve runs the service on rwc until the connection closes.
func (s *Server) Serve(ctx context.Context, rwc io.ReadWriteCloser) error {
	conn := jsonrpc2.NewConn(jsonrpc2.NewStream(rwc))
	conn.Go(ctx, s.handle)
	<-conn.Done()
	return conn.Err()
}

// ServeStdio runs the service on the process's standard streams, the
// transport the interactive UI spawns us with.
func (s *Server) ServeStdio(ctx context.Context) error {
	return s.Serve(ctx, &stdioReadWriteCloser{read: os.Stdin, write: os.Stdout})
}

func (s *Server) handle(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	res, err := s.dispatch(req.Method(), req.Params())
	if debug.RPC() {
		debug.Logf("rpc: %s err=%v", req.Method(), err)
	}
	return reply(ctx, res, err)
}

// dispatch routes one request. Unknown methods report
// jsonrpc2.ErrMethodNotFound; reshaping failures surface unchanged as
// JSON-RPC errors.
func (s *Server) dispatch(method string, raw json.RawMessage) (any, error) {
	if method == "icmd/nearestRun" {
		var p NearestRunParams
		if err := unmarshalParams(raw, &p); err != nil {
			return nil, err
		}
		run, err := s.scheil.NearestRun(p.Target, p.Balance)
		if err != nil {
			return nil, err
		}
		return &NearestRunResult{Run: run}, nil
	}

	var p TableParams
	if err := unmarshalParams(raw, &p); err != nil {
		return nil, err
	}
	u, err := p.tempUnit()
	if err != nil {
		return nil, err
	}
	b, err := p.basis()
	if err != nil {
		return nil, err
	}

	var t *table.Table
	switch method {
	case "icmd/phaseNames":
		names, err := s.scheil.PhaseNames()
		if err != nil {
			return nil, err
		}
		t = table.FromStrings("Phase", names)
	case "icmd/temperatures":
		t, err = s.scheil.Temperatures(u, p.Parametric)
	case "icmd/phaseFraction":
		t, err = s.scheil.PhaseFraction(b, u, p.Parametric)
	case "icmd/volumeFraction":
		t, err = s.scheil.VolumeFraction(u, p.Parametric)
	case "icmd/composition":
		t, err = s.scheil.Composition(p.Phases, b)
	case "icmd/components":
		t, err = s.scheil.Components(p.Exclude)
	case "icmd/elements":
		t, err = s.scheil.Elements()
	case "icmd/solidRegions":
		t, err = s.scheil.SolidRegions()
	case "icmd/percentSolidified":
		t, err = s.scheil.PercentSolidifiedMolar()
	case "icmd/temperatureByPhaseRegion":
		t, err = s.scheil.TemperatureByPhaseRegion(u)
	case "icmd/scheilDF":
		t, err = s.scheil.ScheilDF(p.threshold())
	case "icmd/scheilPlotData":
		t, err = s.scheil.ScheilPlotData(u)
	case "icmd/tempByPhase":
		t = s.scheil.TempByPhase()
	default:
		return nil, jsonrpc2.ErrMethodNotFound
	}
	if err != nil {
		return nil, err
	}
	return tableResult(t), nil
}

func unmarshalParams(raw json.RawMessage, v any) error {
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("%w: %s", jsonrpc2.ErrParse, err)
	}
	return nil
}

type stdioReadWriteCloser struct {
	read  io.Reader
	write io.Writer
}

func (s *stdioReadWriteCloser) Read(p []byte) (int, error) {
	return s.read.Read(p)
}

func (s *stdioReadWriteCloser) Write(p []byte) (int, error) {
	return s.write.Write(p)
}

func (s *stdioReadWriteCloser) Close() error {
	return nil
}
