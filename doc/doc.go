// Package doc holds the parsed model document and exposes its named
// sections by fixed key paths.
//
// A model document has three sections: coords (named coordinate
// arrays), data_vars (multi-dimensional data blocks) and attrs
// (free-form metadata). Each coordinate and data variable wraps its
// payload in a "data" field. Some data variables have been renamed
// across schema versions; accessors take an ordered list of candidate
// names and try them in sequence.
package doc

import (
	"fmt"
	"strings"

	"github.com/icmd-tools/icmdout/debug"
)

// Document is an immutable parsed model tree. It is never mutated
// after construction, so any number of callers may read it
// concurrently.
type Document struct {
	root map[string]any
}

func New(root map[string]any) *Document {
	return &Document{root: root}
}

// Lookup walks the nested maps of the document along path and
// returns the addressed sub-structure unchanged.
func (d *Document) Lookup(path ...string) (any, error) {
	var cur any = d.root
	for i, key := range path {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: %s is not an object", ErrMissingKey, pathString(path[:i]))
		}
		cur, ok = m[key]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingKey, pathString(path[:i+1]))
		}
	}
	return cur, nil
}

// resolve tries each candidate name under section in order and
// returns the "data" payload of the first that exists.
func (d *Document) resolve(section string, names ...string) ([]any, error) {
	for _, name := range names {
		v, err := d.Lookup(section, name, "data")
		if err != nil {
			continue
		}
		if debug.Resolve() && name != names[0] {
			debug.Logf("resolve: %s.%s served via legacy key %s", section, names[0], name)
		}
		return Slice(v)
	}
	return nil, fmt.Errorf("%w: %s.{%s}", ErrMissingKey, section, strings.Join(names, "|"))
}

// Coord returns the coordinate array named name.
func (d *Document) Coord(name string) ([]any, error) {
	return d.resolve("coords", name)
}

// DataVar returns the data block stored under the first of names that
// exists. Multiple names support schema-evolution aliases such as
// temperature_values vs temperature.
func (d *Document) DataVar(names ...string) ([]any, error) {
	return d.resolve("data_vars", names...)
}

// Attr returns the metadata value under attrs at path.
func (d *Document) Attr(path ...string) (any, error) {
	return d.Lookup(append([]string{"attrs"}, path...)...)
}

func pathString(path []string) string {
	if len(path) == 0 {
		return "$"
	}
	return strings.Join(path, ".")
}
