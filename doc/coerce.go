package doc

import (
	"encoding/json"
	"fmt"
)

// Coercions from the generic parsed tree. Wrong nesting depth is not
// validated up front; it surfaces here as an ErrBadShape when a block
// does not have the type an accessor expects.

func Slice(v any) ([]any, error) {
	s, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: got %T, want array", ErrBadShape, v)
	}
	return s, nil
}

func Map(v any) (map[string]any, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: got %T, want object", ErrBadShape, v)
	}
	return m, nil
}

func String(v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: got %T, want string", ErrBadShape, v)
	}
	return s, nil
}

func Float(v any) (float64, error) {
	switch x := v.(type) {
	case float64:
		return x, nil
	case int:
		return float64(x), nil
	case json.Number:
		return x.Float64()
	default:
		return 0, fmt.Errorf("%w: got %T, want number", ErrBadShape, v)
	}
}

func Strings(v any) ([]string, error) {
	s, err := Slice(v)
	if err != nil {
		return nil, err
	}
	res := make([]string, len(s))
	for i, e := range s {
		res[i], err = String(e)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
	}
	return res, nil
}

func Floats(v any) ([]float64, error) {
	s, err := Slice(v)
	if err != nil {
		return nil, err
	}
	res := make([]float64, len(s))
	for i, e := range s {
		res[i], err = Float(e)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
	}
	return res, nil
}

// Slices coerces one level of nesting, so callers indexing
// multi-dimensional blocks can peel dimensions off one at a time.
func Slices(v any) ([][]any, error) {
	s, err := Slice(v)
	if err != nil {
		return nil, err
	}
	res := make([][]any, len(s))
	for i, e := range s {
		res[i], err = Slice(e)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
	}
	return res, nil
}
