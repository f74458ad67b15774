package sim

import (
	"testing"

	"github.com/icmd-tools/icmdout/parse"
)

// singleRunDoc is a three-step solidification of a binary Al-Si melt:
// all liquid at 1000C, FCC_A1 appearing from 1200C on. The last
// percent-solidified entry is the end-of-run summary row.
const singleRunDoc = `{
  "coords": {
    "phase": {"data": ["LIQUID", "FCC_A1", "SOLID"]},
    "component": {"data": ["Al", "Si"]},
    "solidification_region": {"data": ["LIQUID", "FCC_A1", "FCC_A1+BCC_A2"]}
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
    "composition": {
      "data": [
        [
          [[[0.9, 0.88], [0.1, 0.12]], [[0.0, 0.0], [0.0, 0.0]], [[0.0, 0.0], [0.0, 0.0]]],
          [[[0.88, 0.86], [0.12, 0.14]], [[0.97, 0.96], [0.03, 0.04]], [[0.97, 0.96], [0.03, 0.04]]],
          [[[0.85, 0.83], [0.15, 0.17]], [[0.96, 0.95], [0.04, 0.05]], [[0.96, 0.95], [0.04, 0.05]]]
        ]
      ]
    },
    "volume_fraction": {
      "data": [
        [
          [1.0, 0.0, 0.0],
          [0.68, 0.32, 0.32],
          [0.19, 0.81, 0.81]
        ]
      ]
    },
    "percent_solidified_molar_values": {
      "data": [[0, 50, 100]]
    },
    "temperature_by_phase_region": {
      "data": [
        [
          [[1000, 1832, 1273.15], ["None", "None", "None"], ["None", "None", "None"]],
          [[1200, 2192, 1473.15], [1200, 2192, 1473.15], ["None", "None", "None"]],
          [["None", "None", "None"], [1400, 2552, 1673.15], [1400, 2552, 1673.15]]
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

// paramDoc sweeps the Si content over two runs of two steps each.
// It uses the legacy temperature/phase_composition key names.
const paramDoc = `{
  "coords": {
    "phase": {"data": ["LIQUID", "FCC_A1"]},
    "component": {"data": ["Al", "Si"]}
  },
  "data_vars": {
    "temperature": {
      "data": [
        [[1000, 1273.15, 1832], [1200, 1473.15, 2192]],
        [[1100, 1373.15, 2012], [1300, 1573.15, 2372]]
      ]
    },
    "phase_fraction": {
      "data": [
        [
          [[1.0, 0.95], [0.0, 0.0]],
          [[0.6, 0.55], [0.4, 0.45]]
        ],
        [
          [[0.9, 0.85], [0.1, 0.15]],
          [[0.5, 0.45], [0.5, 0.55]]
        ]
      ]
    },
    "phase_composition": {
      "data": [
        [
          [[[0.9, 0.88], [0.1, 0.12]], [[0.0, 0.0], [0.0, 0.0]]],
          [[[0.88, 0.86], [0.12, 0.14]], [[0.97, 0.96], [0.03, 0.04]]]
        ]
      ]
    }
  },
  "attrs": {
    "input_dict": {
      "composition": {
        "components": [
          {"name": "Al", "samples": [90, 85]},
          {"name": "Si", "samples": [10, 15]}
        ]
      }
    }
  }
}`

func newModel(t *testing.T, src string) *Model {
	t.Helper()
	d, err := parse.Parse([]byte(src))
	if err != nil {
		t.Fatalf("parse fixture: %v", err)
	}
	return NewModel(d)
}

func newSolidification(t *testing.T) *Solidification {
	t.Helper()
	d, err := parse.Parse([]byte(singleRunDoc))
	if err != nil {
		t.Fatalf("parse fixture: %v", err)
	}
	return NewSolidification(d)
}

func newScheil(t *testing.T) *Scheil {
	t.Helper()
	d, err := parse.Parse([]byte(singleRunDoc))
	if err != nil {
		t.Fatalf("parse fixture: %v", err)
	}
	s, err := NewScheil(d)
	if err != nil {
		t.Fatalf("NewScheil: %v", err)
	}
	return s
}
