package unit

import (
	"errors"
	"fmt"
)

// Temp is a temperature unit selector for the positionally indexed
// value triples in model documents.
type Temp int

const (
	Celsius Temp = iota
	Kelvin
	Fahrenheit
)

// Basis selects the normalization of phase and elemental fractions.
type Basis int

const (
	Mole Basis = iota
	Mass
)

var ErrUnsupportedUnit = errors.New("unsupported unit")

func ParseTemp(v string) (Temp, error) {
	t, ok := map[string]Temp{
		"C": Celsius,
		"K": Kelvin,
		"F": Fahrenheit,
	}[v]
	if ok {
		return t, nil
	}
	return 0, fmt.Errorf("%w: temperature %q", ErrUnsupportedUnit, v)
}

func ParseBasis(v string) (Basis, error) {
	b, ok := map[string]Basis{
		"mole": Mole,
		"mass": Mass,
	}[v]
	if ok {
		return b, nil
	}
	return 0, fmt.Errorf("%w: fraction basis %q", ErrUnsupportedUnit, v)
}

func (t Temp) String() string {
	switch t {
	case Celsius:
		return "C"
	case Kelvin:
		return "K"
	case Fahrenheit:
		return "F"
	default:
		return fmt.Sprintf("<err: %d is not a temperature unit>", t)
	}
}

func (b Basis) String() string {
	switch b {
	case Mole:
		return "mole"
	case Mass:
		return "mass"
	default:
		return fmt.Sprintf("<err: %d is not a fraction basis>", b)
	}
}

func (t Temp) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Temp) UnmarshalText(d []byte) error {
	pt, err := ParseTemp(string(d))
	if err != nil {
		return err
	}
	*t = pt
	return nil
}

func (b Basis) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

func (b *Basis) UnmarshalText(d []byte) error {
	pb, err := ParseBasis(string(d))
	if err != nil {
		return err
	}
	*b = pb
	return nil
}

// ValueIndex gives the offset of t in the temperature value triples of
// data_vars.temperature_values, which are ordered C, K, F.
func (t Temp) ValueIndex() int {
	return map[Temp]int{
		Celsius:    0,
		Kelvin:     1,
		Fahrenheit: 2,
	}[t]
}

// RegionIndex gives the offset of t in the triples of
// data_vars.temperature_by_phase_region. The schema orders that block
// C, F, K, unlike the temperature value triples.
func (t Temp) RegionIndex() int {
	return map[Temp]int{
		Celsius:    0,
		Fahrenheit: 1,
		Kelvin:     2,
	}[t]
}

// Index gives the offset of b in the fraction value pairs, which are
// ordered mole, mass.
func (b Basis) Index() int {
	if b == Mass {
		return 1
	}
	return 0
}

// Column is the conventional temperature column name for unit t.
func (t Temp) Column() string {
	return "Temperature in " + t.String()
}
