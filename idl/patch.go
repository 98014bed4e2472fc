// Package idl rewrites the metadata section of Anchor IDL files.
//
// Anchor writes one IDL per program under target/idl/. Client tooling reads the deployed program
// id from metadata.address, which anchor build does not set for every cluster. Patch fills it in:
//
//	err := idl.Patch("./target/idl/photon.json", "3cAFEXstVzff2dXH8PFMgm81h8sQgpdskFGZqqoDgQkJ")
//
// The default strategy discards whatever metadata held before. Use WithStrategy(StrategyMerge) to
// keep the other metadata keys.
package idl

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	jsonpatch "github.com/evanphx/json-patch"
)

// Strategy selects how the new address is written into the metadata section.
type Strategy string

const (
	// StrategyReplace replaces metadata with an object holding only the address.
	StrategyReplace Strategy = "replace"
	// StrategyMerge sets metadata.address and keeps the other metadata keys.
	StrategyMerge Strategy = "merge"
)

// ParseStrategy returns the Strategy named by s. An empty string selects StrategyReplace.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case "", StrategyReplace:
		return StrategyReplace, nil
	case StrategyMerge:
		return StrategyMerge, nil
	default:
		return "", fmt.Errorf("unknown patch strategy %q (must be %q or %q)", s, StrategyReplace, StrategyMerge)
	}
}

// Option configures a Patcher.
type Option func(*Patcher)

// WithStrategy sets the patch strategy. The default is StrategyReplace.
func WithStrategy(s Strategy) Option {
	return func(p *Patcher) {
		p.strategy = s
	}
}

// WithIndent makes the patcher write indented JSON instead of compact JSON.
func WithIndent(indent bool) Option {
	return func(p *Patcher) {
		p.indent = indent
	}
}

// Patcher writes program addresses into IDL files.
type Patcher struct {
	strategy Strategy
	indent   bool
}

// NewPatcher creates a Patcher. Without options it replaces metadata and writes compact JSON.
func NewPatcher(opts ...Option) *Patcher {
	p := &Patcher{strategy: StrategyReplace}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

var defaultPatcher = NewPatcher()

// Patch sets metadata.address of the IDL at path using the default Patcher.
func Patch(path, address string) error {
	return defaultPatcher.Patch(path, address)
}

// Strategy returns the patch strategy in use.
func (p *Patcher) Strategy() Strategy { return p.strategy }

// Patch reads the JSON object at path, sets metadata.address to address and writes the document
// back to path. The file is only written once the new document has been fully built.
func (p *Patcher) Patch(path, address string) error {
	info, err := os.Stat(path)
	if err != nil {
		return readError(path, err)
	}

	doc, err := os.ReadFile(path)
	if err != nil {
		return readError(path, err)
	}

	if err = checkObject(path, doc); err != nil {
		return err
	}

	out, err := p.apply(doc, address)
	if err != nil {
		return fmt.Errorf("failed to patch %s: %w", path, err)
	}

	if p.indent {
		var buf bytes.Buffer
		if err = json.Indent(&buf, out, "", "  "); err != nil {
			return fmt.Errorf("failed to indent %s: %w", path, err)
		}
		out = buf.Bytes()
	}

	if err = os.WriteFile(path, out, info.Mode().Perm()); err != nil {
		return fmt.Errorf("%w: failed to write %s: %w", ErrIO, path, err)
	}

	return nil
}

// apply returns doc with the address written according to the strategy.
func (p *Patcher) apply(doc []byte, address string) ([]byte, error) {
	metadata := map[string]string{"address": address}

	switch p.strategy {
	case StrategyMerge:
		mp, err := json.Marshal(map[string]any{"metadata": metadata})
		if err != nil {
			return nil, err
		}

		return jsonpatch.MergePatch(doc, mp)
	case StrategyReplace, "":
		// "add" on an existing member replaces it.
		ops, err := json.Marshal([]map[string]any{
			{"op": "add", "path": "/metadata", "value": metadata},
		})
		if err != nil {
			return nil, err
		}

		patch, err := jsonpatch.DecodePatch(ops)
		if err != nil {
			return nil, err
		}

		return patch.Apply(doc)
	default:
		return nil, fmt.Errorf("unknown patch strategy %q", p.strategy)
	}
}

// checkObject returns an error unless doc is valid JSON with an object at the top level.
func checkObject(path string, doc []byte) error {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(doc, &top); err != nil {
		return decodeError(path, err)
	}

	if top == nil {
		return fmt.Errorf("%w: %s: top level is null, want object", ErrSchema, path)
	}

	return nil
}
