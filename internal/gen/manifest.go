package gen

import (
	"bytes"
	"fmt"
	"go/token"
	"os"

	"gopkg.in/yaml.v3"

	fix "github.com/shabbyrobe/go-fix"
)

// Manifest describes the descriptors of one generated file.
type Manifest struct {
	Package string `yaml:"package"`

	// Widths restricts the containers the descriptors may resolve to. Empty
	// means every width.
	Widths []int `yaml:"widths,omitempty"`

	Types  []Type    `yaml:"types"`
	Derive []Derived `yaml:"derive,omitempty"`
}

// Type is a descriptor given explicitly.
type Type struct {
	Name     string `yaml:"name"`
	Radix    int    `yaml:"radix"`
	Digits   int    `yaml:"digits"`
	Exponent int    `yaml:"exponent"`
	Signed   bool   `yaml:"signed"`
}

// Derived is the result descriptor of an operation on two earlier entries.
type Derived struct {
	Name string `yaml:"name"`
	Op   Op     `yaml:"op"`
	A    string `yaml:"a"`
	B    string `yaml:"b"`
}

type Op string

const (
	OpAdd Op = "add"
	OpSub Op = "sub"
	OpMul Op = "mul"
	OpDiv Op = "div"
)

func (op Op) Symbol() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	}
	return "?"
}

func (op Op) apply(w fix.Widths, a, b fix.Descriptor) (fix.Descriptor, error) {
	switch op {
	case OpAdd:
		return w.SumOf(a, b)
	case OpSub:
		return w.DifferenceOf(a, b)
	case OpMul:
		return w.ProductOf(a, b)
	case OpDiv:
		return w.QuotientOf(a, b)
	}
	return fix.Descriptor{}, fmt.Errorf("unknown op %q, expected add, sub, mul or div", string(op))
}

// Load reads and parses a manifest file.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	return Parse(data)
}

// Parse parses a manifest. Unknown fields are rejected.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	if err := m.validate(); err != nil {
		return nil, fmt.Errorf("invalid manifest: %w", err)
	}
	return &m, nil
}

func (m *Manifest) validate() error {
	if !token.IsIdentifier(m.Package) {
		return fmt.Errorf("package %q is not a valid identifier", m.Package)
	}
	if len(m.Types) == 0 {
		return fmt.Errorf("types list is required and must be non-empty")
	}
	if _, err := m.widths(); err != nil {
		return err
	}

	seen := map[string]bool{}
	check := func(kind string, i int, name string) error {
		if !token.IsIdentifier(name) {
			return fmt.Errorf("%s[%d]: name %q is not a valid identifier", kind, i, name)
		}
		if name == importName {
			return fmt.Errorf("%s[%d]: name %q is reserved for the %s import", kind, i, name, ImportPath)
		}
		if seen[name] {
			return fmt.Errorf("%s[%d]: duplicate name %q", kind, i, name)
		}
		seen[name] = true
		return nil
	}
	for i, t := range m.Types {
		if err := check("types", i, t.Name); err != nil {
			return err
		}
	}
	for i, d := range m.Derive {
		if !seen[d.A] {
			return fmt.Errorf("derive[%d]: %q is not defined before %q", i, d.A, d.Name)
		}
		if !seen[d.B] {
			return fmt.Errorf("derive[%d]: %q is not defined before %q", i, d.B, d.Name)
		}
		if err := check("derive", i, d.Name); err != nil {
			return err
		}
	}
	return nil
}

func (m *Manifest) widths() (fix.Widths, error) {
	if len(m.Widths) == 0 {
		return fix.AllWidths, nil
	}
	return fix.WidthsOf(m.Widths...)
}
