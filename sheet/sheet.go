// Package sheet reads named selector definitions from YAML and builds them.
package sheet

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/multierr"
	yaml "gopkg.in/yaml.v3"

	"cssb/selector"
)

type (
	// Part holds exactly one simple selector.
	Part struct {
		Element       *string `yaml:"element,omitempty"`
		ID            *string `yaml:"id,omitempty"`
		Class         *string `yaml:"class,omitempty"`
		Attr          *string `yaml:"attr,omitempty"`
		PseudoClass   *string `yaml:"pseudo_class,omitempty"`
		PseudoElement *string `yaml:"pseudo_element,omitempty"`
	}

	// Node is either a compound selector (Parts) or a combination.
	Node struct {
		Parts   []Part   `yaml:"parts,omitempty"`
		Combine *Combine `yaml:"combine,omitempty"`
	}

	Combine struct {
		Left       Node   `yaml:"left"`
		Combinator string `yaml:"combinator"`
		Right      Node   `yaml:"right"`
	}

	Definition struct {
		Name string `yaml:"name"`
		Node `yaml:",inline"`
	}

	Sheet struct {
		Selectors []Definition `yaml:"selectors"`
	}

	// Entry is a successfully built definition.
	Entry struct {
		Name     string
		Selector selector.Selector
	}
)

// Load decodes sheet definitions. Unknown keys, unnamed and duplicate
// definitions are rejected.
func Load(data []byte) (*Sheet, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var sh Sheet
	if err := dec.Decode(&sh); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode selector definitions: %w", err)
	}

	names := make(map[string]struct{}, len(sh.Selectors))
	for i, def := range sh.Selectors {
		if len(def.Name) == 0 {
			return nil, fmt.Errorf("selector definition %d has no name", i+1)
		}
		if _, exists := names[def.Name]; exists {
			return nil, fmt.Errorf("duplicate selector definition %q", def.Name)
		}
		names[def.Name] = struct{}{}
	}
	return &sh, nil
}

// LoadFile reads sheet definitions from file.
func LoadFile(path string) (*Sheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read selector definitions: %w", err)
	}
	sh, err := Load(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sh, nil
}

// Build constructs all defined selectors in definition order. Failures are
// collected, definitions which were built successfully are returned even if
// some others failed.
func (s *Sheet) Build(b *selector.Builder) ([]Entry, error) {
	var (
		entries = make([]Entry, 0, len(s.Selectors))
		errs    error
	)
	for _, def := range s.Selectors {
		sel, err := def.Node.build(b)
		if err == nil {
			err = sel.Err()
		}
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("selector %q: %w", def.Name, err))
			continue
		}
		entries = append(entries, Entry{Name: def.Name, Selector: sel})
	}
	return entries, errs
}

func (n *Node) build(b *selector.Builder) (selector.Selector, error) {
	switch {
	case n.Combine != nil && len(n.Parts) > 0:
		return nil, errors.New("node must have either parts or combine, not both")
	case n.Combine != nil:
		left, err := n.Combine.Left.build(b)
		if err != nil {
			return nil, fmt.Errorf("left: %w", err)
		}
		right, err := n.Combine.Right.build(b)
		if err != nil {
			return nil, fmt.Errorf("right: %w", err)
		}
		return b.Combine(left, n.Combine.Combinator, right), nil
	case len(n.Parts) > 0:
		sel := b.Empty()
		for i, p := range n.Parts {
			kind, value, err := p.resolve()
			if err != nil {
				return nil, fmt.Errorf("part %d: %w", i+1, err)
			}
			sel = sel.Append(kind, value)
		}
		return sel, nil
	default:
		return nil, errors.New("node must have either parts or combine")
	}
}

func (p *Part) resolve() (selector.PartKind, string, error) {
	var (
		kind  selector.PartKind
		value string
		count int
	)
	set := func(k selector.PartKind, v *string) {
		if v != nil {
			kind, value = k, *v
			count++
		}
	}
	set(selector.PartKindElement, p.Element)
	set(selector.PartKindId, p.ID)
	set(selector.PartKindClass, p.Class)
	set(selector.PartKindAttribute, p.Attr)
	set(selector.PartKindPseudoClass, p.PseudoClass)
	set(selector.PartKindPseudoElement, p.PseudoElement)

	if count != 1 {
		return 0, "", fmt.Errorf("part must have exactly one of element, id, class, attr, pseudo_class, pseudo_element, got %d", count)
	}
	return kind, value, nil
}

// Rendered is output form of a built entry.
type Rendered struct {
	Name     string `json:"name" yaml:"name"`
	Selector string `json:"selector" yaml:"selector"`
}

// Render renders built entries, entries are valid so rendering never fails.
func Render(entries []Entry) []Rendered {
	out := make([]Rendered, 0, len(entries))
	for _, e := range entries {
		out = append(out, Rendered{Name: e.Name, Selector: e.Selector.String()})
	}
	return out
}
