// Package descriptor loads Venn diagram descriptors from JSON.
//
// A descriptor names a diagram, gives its number of curves and its base
// curve as SVG path data, and optionally carries the diagram's matrix
// encoding:
//
//	{"name": "Victoria", "n": 7, "curve": "M -17.277 -15.676 C …", "code": ["010000000000", …]}
//
// Descriptors are read either one per document or from a collection that
// lists the keys of its diagrams in order:
//
//	{"diagrams_list": ["victoria", "5"], "victoria": {…}, "5": {…}}
package descriptor

import (
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/tidwall/gjson"

	"honnef.co/go/venn"
	"honnef.co/go/venn/curve"
)

// Descriptor is a diagram as described in JSON.
type Descriptor struct {
	// Key identifies the descriptor within its collection. Single
	// descriptors use their name as key.
	Key   string
	Name  string
	N     int
	Curve string
	// Code is the matrix encoding, if the descriptor provides one.
	Code Encoding
}

// Diagram parses the descriptor's curve and returns the diagram it
// describes. A matrix encoding, if present, must be valid for N curves.
func (d Descriptor) Diagram() (venn.Diagram, error) {
	if len(d.Code) > 0 {
		if err := d.Code.Validate(d.N); err != nil {
			return venn.Diagram{}, fmt.Errorf("diagram %q: %w", d.Key, err)
		}
	}
	p, err := curve.ParseSVG(d.Curve)
	if err != nil {
		return venn.Diagram{}, fmt.Errorf("diagram %q: %w: %w", d.Key, venn.ErrInvalidConfig, err)
	}
	return venn.Diagram{Name: d.Name, N: d.N, Curve: p}, nil
}

// Collection is an ordered set of descriptors.
type Collection struct {
	Descriptors []Descriptor
}

// Keys returns the keys of all descriptors, in order.
func (c *Collection) Keys() []string {
	out := make([]string, len(c.Descriptors))
	for i, d := range c.Descriptors {
		out[i] = d.Key
	}
	return out
}

// Lookup returns the descriptor with the given key. Failing that, it
// returns the first descriptor whose name matches case-insensitively.
func (c *Collection) Lookup(key string) (Descriptor, bool) {
	for _, d := range c.Descriptors {
		if d.Key == key {
			return d, true
		}
	}
	for _, d := range c.Descriptors {
		if strings.EqualFold(d.Name, key) {
			return d, true
		}
	}
	return Descriptor{}, false
}

// Parse reads a single descriptor or a collection of descriptors. A
// collection may also be wrapped in a JavaScript variable declaration, as in
// "const venn_diagrams = {…};".
func Parse(data []byte) (*Collection, error) {
	data = unwrapScript(data)
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("descriptor: %w: malformed JSON", venn.ErrInvalidConfig)
	}
	doc := gjson.ParseBytes(data)
	if !doc.IsObject() {
		return nil, fmt.Errorf("descriptor: %w: document is not an object", venn.ErrInvalidConfig)
	}

	list := doc.Get("diagrams_list")
	if !list.Exists() {
		d, err := parseDescriptor("", doc)
		if err != nil {
			return nil, err
		}
		return &Collection{Descriptors: []Descriptor{d}}, nil
	}
	if !list.IsArray() {
		return nil, fmt.Errorf("descriptor: %w: diagrams_list is not an array", venn.ErrInvalidConfig)
	}

	// Keys may contain characters that are special in gjson paths.
	members := make(map[string]gjson.Result)
	doc.ForEach(func(k, v gjson.Result) bool {
		members[k.String()] = v
		return true
	})
	c := &Collection{}
	seen := make(map[string]bool)
	for _, k := range list.Array() {
		key := k.String()
		if seen[key] {
			return nil, fmt.Errorf("descriptor: %w: diagram %q listed twice", venn.ErrInvalidConfig, key)
		}
		seen[key] = true
		v, ok := members[key]
		if !ok {
			return nil, fmt.Errorf("descriptor: %w: diagram %q is listed but missing", venn.ErrInvalidConfig, key)
		}
		d, err := parseDescriptor(key, v)
		if err != nil {
			return nil, err
		}
		c.Descriptors = append(c.Descriptors, d)
	}
	return c, nil
}

func unwrapScript(data []byte) []byte {
	s := strings.TrimSpace(string(data))
	for _, kw := range []string{"const ", "let ", "var "} {
		if !strings.HasPrefix(s, kw) {
			continue
		}
		_, rhs, ok := strings.Cut(s, "=")
		if !ok {
			break
		}
		return []byte(strings.TrimSuffix(strings.TrimSpace(rhs), ";"))
	}
	return data
}

func parseDescriptor(key string, v gjson.Result) (Descriptor, error) {
	if !v.IsObject() {
		return Descriptor{}, fmt.Errorf("descriptor %q: %w: not an object", key, venn.ErrInvalidConfig)
	}
	d := Descriptor{
		Key:   key,
		Name:  v.Get("name").String(),
		Curve: v.Get("curve").String(),
	}
	if d.Key == "" {
		d.Key = d.Name
	}

	n := v.Get("n")
	if n.Type != gjson.Number || n.Num != float64(int(n.Num)) {
		return Descriptor{}, fmt.Errorf("descriptor %q: %w: n must be an integer", d.Key, venn.ErrInvalidConfig)
	}
	d.N = int(n.Int())
	if d.N < 2 || d.N > venn.MaxCurves {
		return Descriptor{}, fmt.Errorf("descriptor %q: %w: n = %d outside [2, %d]", d.Key, venn.ErrInvalidConfig, d.N, venn.MaxCurves)
	}
	if d.Curve == "" {
		return Descriptor{}, fmt.Errorf("descriptor %q: %w: missing curve", d.Key, venn.ErrInvalidConfig)
	}

	switch code := v.Get("code"); {
	case !code.Exists():
	case code.IsArray():
		for _, row := range code.Array() {
			d.Code = append(d.Code, row.String())
		}
	case code.Type == gjson.String:
		d.Code = ParseEncoding(code.String())
	default:
		return Descriptor{}, fmt.Errorf("descriptor %q: %w: code must be a string or an array of rows", d.Key, venn.ErrInvalidConfig)
	}
	return d, nil
}

// Load reads descriptors from a file. A leading ~ in path refers to the
// user's home directory.
func Load(path string) (*Collection, error) {
	p, err := homedir.Expand(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(p)
	if err != nil {
		return nil, err
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Diagrams parses every descriptor of the collection.
func (c *Collection) Diagrams() ([]venn.Diagram, error) {
	out := make([]venn.Diagram, len(c.Descriptors))
	for i, d := range c.Descriptors {
		var err error
		if out[i], err = d.Diagram(); err != nil {
			return nil, err
		}
	}
	return out, nil
}
