package plot

import (
	"bytes"
	"strings"
	"testing"

	"github.com/icmd-tools/icmdout/parse"
	"github.com/icmd-tools/icmdout/sim"
	"github.com/icmd-tools/icmdout/unit"
)

const fixtureDoc = `{
  "coords": {
    "phase": {"data": ["LIQUID", "FCC_A1", "SOLID"]},
    "component": {"data": ["Al", "Si"]},
    "solidification_region": {"data": ["LIQUID", "FCC_A1"]}
  },
  "data_vars": {
    "temperature_values": {
      "data": [
        [[1000, 1273.15, 1832]],
        [[1200, 1473.15, 2192]],
        [[1400, 1673.15, 2552]]
      ]
    },
    "phase_fraction": {
      "data": [
        [
          [[1.0, 0.95], [0.0, 0.0], [0.0, 0.0]],
          [[0.7, 0.65], [0.3, 0.35], [0.3, 0.35]],
          [[0.2, 0.15], [0.8, 0.85], [0.8, 0.85]]
        ]
      ]
    },
    "volume_fraction": {
      "data": [[[1.0, 0.0, 0.0], [0.68, 0.32, 0.32], [0.19, 0.81, 0.81]]]
    },
    "percent_solidified_molar_values": {
      "data": [[0, 50, 100]]
    },
    "temperature_by_phase_region": {
      "data": [
        [
          [[1000, 1832, 1273.15], ["None", "None", "None"]],
          [[1200, 2192, 1473.15], [1200, 2192, 1473.15]],
          [["None", "None", "None"], [1400, 2552, 1673.15]]
        ]
      ]
    }
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

func newScheil(t *testing.T) *sim.Scheil {
	t.Helper()
	d, err := parse.Parse([]byte(fixtureDoc))
	if err != nil {
		t.Fatalf("parse fixture: %v", err)
	}
	s, err := sim.NewScheil(d)
	if err != nil {
		t.Fatalf("NewScheil: %v", err)
	}
	return s
}

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestScheilPNG(t *testing.T) {
	s := newScheil(t)
	buf := bytes.NewBuffer(nil)
	if err := Scheil(buf, s, unit.Celsius, false); err != nil {
		t.Fatalf("Scheil: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), pngMagic) {
		t.Errorf("Scheil output is not a PNG")
	}
}

func TestScheilFromRegions(t *testing.T) {
	s := newScheil(t)
	buf := bytes.NewBuffer(nil)
	if err := Scheil(buf, s, unit.Celsius, true, Title("regions")); err != nil {
		t.Fatalf("Scheil from regions: %v", err)
	}
	if buf.Len() == 0 {
		t.Errorf("empty render")
	}
}

func TestScheilStepSVG(t *testing.T) {
	s := newScheil(t)
	buf := bytes.NewBuffer(nil)
	if err := ScheilStep(buf, s.Model, unit.Mole, unit.Celsius, SVG(true)); err != nil {
		t.Fatalf("ScheilStep: %v", err)
	}
	if !strings.Contains(buf.String(), "<svg") {
		t.Errorf("ScheilStep output is not SVG")
	}
	// the SOLID aggregate is never a series
	if strings.Contains(buf.String(), ">SOLID<") {
		t.Errorf("ScheilStep plotted the SOLID aggregate")
	}
}

func TestScheilStepLinear(t *testing.T) {
	s := newScheil(t)
	buf := bytes.NewBuffer(nil)
	if err := ScheilStep(buf, s.Model, unit.Mole, unit.Kelvin, LogY(false), YRange(0, 1)); err != nil {
		t.Fatalf("ScheilStep linear: %v", err)
	}
	if buf.Len() == 0 {
		t.Errorf("empty render")
	}
}

func TestCompositionStep(t *testing.T) {
	s := newScheil(t)
	buf := bytes.NewBuffer(nil)
	if err := CompositionStep(buf, s, unit.Mole, unit.Celsius); err != nil {
		t.Fatalf("CompositionStep: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), pngMagic) {
		t.Errorf("CompositionStep output is not a PNG")
	}
}
