package rpc

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"testing"
	"time"

	"go.lsp.dev/jsonrpc2"

	"github.com/icmd-tools/icmdout/parse"
	"github.com/icmd-tools/icmdout/sim"
	"github.com/icmd-tools/icmdout/unit"
)

const serverDoc = `{
  "coords": {
    "phase": {"data": ["LIQUID", "FCC_A1", "SOLID"]},
    "component": {"data": ["Al", "Si"]},
    "solidification_region": {"data": ["LIQUID", "FCC_A1"]}
  },
  "data_vars": {
    "temperature_values": {"data": [[[1000, 1273.15, 1832]], [[1200, 1473.15, 2192]]]},
    "phase_fraction": {"data": [[
      [[1, 1], [0, 0], [0, 0]],
      [[0.5, 0.45], [0.5, 0.55], [0.5, 0.55]]
    ]]},
    "volume_fraction": {"data": [[
      [1, 0, 0],
      [0.5, 0.5, 0.5]
    ]]},
    "percent_solidified_molar_values": {"data": [[0, 100]]},
    "temperature_by_phase_region": {"data": [
      [[1000, 1832, 1273.15], ["None", "None", "None"]],
      [["None", "None", "None"], [1200, 2192, 1473.15]]
    ]}
  },
  "attrs": {
    "input_dict": {
      "composition": {
        "components": [
          {"name": "Al", "samples": [90]},
          {"name": "Si", "samples": [10]}
        ]
      }
    }
  }
}`

func newTestServer(t *testing.T) *Server {
	t.Helper()
	d, err := parse.Parse([]byte(serverDoc))
	if err != nil {
		t.Fatal(err)
	}
	s, err := sim.NewScheil(d)
	if err != nil {
		t.Fatal(err)
	}
	return NewServer(s)
}

func TestDispatchTemperatures(t *testing.T) {
	srv := newTestServer(t)
	res, err := srv.dispatch("icmd/temperatures", json.RawMessage(`{"tempUnit": "K"}`))
	if err != nil {
		t.Fatal(err)
	}
	tr, ok := res.(*TableResult)
	if !ok {
		t.Fatalf("got %T, want *TableResult", res)
	}
	if got, want := tr.Columns[0], unit.Kelvin.Column(); got != want {
		t.Errorf("got column %q, want %q", got, want)
	}
	if got := tr.Rows[0][0].(float64); got != 1273.15 {
		t.Errorf("got %v, want 1273.15", got)
	}
}

func TestDispatchBadUnit(t *testing.T) {
	srv := newTestServer(t)
	_, err := srv.dispatch("icmd/temperatures", json.RawMessage(`{"tempUnit": "X"}`))
	if !errors.Is(err, unit.ErrUnsupportedUnit) {
		t.Fatalf("got %v, want ErrUnsupportedUnit", err)
	}
}

func TestDispatchUnknownMethod(t *testing.T) {
	srv := newTestServer(t)
	_, err := srv.dispatch("icmd/unknown", nil)
	if !errors.Is(err, jsonrpc2.ErrMethodNotFound) {
		t.Fatalf("got %v, want ErrMethodNotFound", err)
	}
}

func TestDispatchNearestRun(t *testing.T) {
	srv := newTestServer(t)
	res, err := srv.dispatch("icmd/nearestRun", json.RawMessage(`{"target": {"Si": 9}, "balance": "Al"}`))
	if err != nil {
		t.Fatal(err)
	}
	nr := res.(*NearestRunResult)
	if nr.Run != 0 {
		t.Errorf("got run %d, want 0", nr.Run)
	}
}

func TestDispatchScheilDF(t *testing.T) {
	srv := newTestServer(t)
	res, err := srv.dispatch("icmd/scheilDF", nil)
	if err != nil {
		t.Fatal(err)
	}
	tr := res.(*TableResult)
	if len(tr.Rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(tr.Rows))
	}
	if got := tr.Rows[0][2].(string); got != "LIQUID" {
		t.Errorf("got region %q, want LIQUID", got)
	}
}

func TestServeRoundTrip(t *testing.T) {
	srv := newTestServer(t)
	client, server := net.Pipe()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- srv.Serve(ctx, server)
	}()

	conn := jsonrpc2.NewConn(jsonrpc2.NewStream(client))
	conn.Go(ctx, jsonrpc2.MethodNotFoundHandler)

	var res TableResult
	if _, err := conn.Call(ctx, "icmd/phaseNames", &TableParams{}, &res); err != nil {
		t.Fatal(err)
	}
	if got, want := len(res.Rows), 3; got != want {
		t.Errorf("got %d phases, want %d", got, want)
	}

	if _, err := conn.Call(ctx, "icmd/nope", nil, nil); err == nil {
		t.Error("expected error for unknown method")
	}

	if err := conn.Close(); err != nil {
		t.Fatal(err)
	}
	<-done
}
