// Package parse loads model documents from JSON or YAML bytes.
package parse

import (
	"encoding/json"
	"errors"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/goccy/go-yaml"

	"github.com/icmd-tools/icmdout/debug"
	"github.com/icmd-tools/icmdout/doc"
)

type Format int

const (
	JSONFormat Format = iota
	YAMLFormat
)

var ErrBadFormat = errors.New("bad format")

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"j":    JSONFormat,
		"json": JSONFormat,
		"y":    YAMLFormat,
		"yaml": YAMLFormat,
	}[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

type ParseOption func(*parseOpts)

type parseOpts struct {
	format Format
	patch  []byte
}

func WithFormat(f Format) ParseOption {
	return func(po *parseOpts) { po.format = f }
}

// WithPatch applies an RFC 6902 JSON patch to the raw document before
// it is wrapped. Legacy exports can be normalized this way without the
// reshaping layer knowing about them.
func WithPatch(patch []byte) ParseOption {
	return func(po *parseOpts) { po.patch = patch }
}

// Parse decodes d into an immutable model document.
func Parse(d []byte, opts ...ParseOption) (*doc.Document, error) {
	pOpts := &parseOpts{format: JSONFormat}
	for _, f := range opts {
		f(pOpts)
	}
	if pOpts.format == YAMLFormat {
		jd, err := yaml.YAMLToJSON(d)
		if err != nil {
			return nil, fmt.Errorf("error converting yaml: %w", err)
		}
		d = jd
	}
	if pOpts.patch != nil {
		ops, err := jsonpatch.DecodePatch(pOpts.patch)
		if err != nil {
			return nil, fmt.Errorf("error decoding patch: %w", err)
		}
		d, err = ops.Apply(d)
		if err != nil {
			return nil, fmt.Errorf("error applying patch: %w", err)
		}
	}
	var root map[string]any
	if err := json.Unmarshal(d, &root); err != nil {
		return nil, fmt.Errorf("error decoding document: %w", err)
	}
	if debug.Parse() {
		debug.Logf("parse: %d byte document, patched=%v", len(d), pOpts.patch != nil)
	}
	return doc.New(root), nil
}
