package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"text/template"

	fix "github.com/shabbyrobe/go-fix"
)

// ImportPath is the import path generated files use for the fix package.
const ImportPath = "github.com/shabbyrobe/go-fix"

// importName is the name generated files import ImportPath as. A manifest
// may not declare a descriptor with this name.
const importName = "fix"

// Entry is one resolved manifest descriptor.
type Entry struct {
	Name string
	Desc fix.Descriptor

	// Kind is the container under the manifest's widths. It is the same as
	// Desc.Storage().
	Kind fix.StorageKind

	// Expr is the operation a derived entry comes from, e.g. "A * B".
	Expr string
}

// Resolve builds every descriptor in the manifest, in order, checking each
// against the manifest's widths only: the widths fixgen itself was built with
// do not matter.
func Resolve(m *Manifest) ([]Entry, error) {
	widths, err := m.widths()
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(m.Types)+len(m.Derive))
	byName := make(map[string]fix.Descriptor, cap(entries))

	add := func(name string, d fix.Descriptor, expr string) {
		entries = append(entries, Entry{Name: name, Desc: d, Kind: d.Storage(), Expr: expr})
		byName[name] = d
	}

	for _, t := range m.Types {
		d, err := widths.NewDescriptor(t.Radix, t.Digits, t.Exponent, t.Signed)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", t.Name, err)
		}
		add(t.Name, d, "")
	}

	for _, dv := range m.Derive {
		a, ok := byName[dv.A]
		if !ok {
			return nil, fmt.Errorf("%s: %q is not defined", dv.Name, dv.A)
		}
		b, ok := byName[dv.B]
		if !ok {
			return nil, fmt.Errorf("%s: %q is not defined", dv.Name, dv.B)
		}
		d, err := dv.Op.apply(widths, a, b)
		if err != nil {
			return nil, fmt.Errorf("%s (%s %s %s): %w", dv.Name, a, dv.Op.Symbol(), b, err)
		}
		add(dv.Name, d, fmt.Sprintf("%s %s %s", dv.A, dv.Op.Symbol(), dv.B))
	}

	return entries, nil
}

var fileTemplate = template.Must(template.New("").Parse(`// Code generated by fixgen. DO NOT EDIT.

package {{.Package}}

import {{.ImportName}} "{{.Import}}"
{{range .Entries}}
// {{.Name}} is {{if .Expr}}{{.Expr}}: {{end}}{{.Desc}}, stored as {{.Kind}}.
var {{.Name}} = {{$.ImportName}}.MustDescriptor({{.Desc.Radix}}, {{.Desc.Digits}}, {{.Desc.Exponent}}, {{.Desc.Signed}})
{{end}}`))

// Generate resolves the manifest and renders it as a gofmt-formatted Go file.
func Generate(m *Manifest) ([]byte, error) {
	entries, err := Resolve(m)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	err = fileTemplate.Execute(&buf, struct {
		Package    string
		ImportName string
		Import     string
		Entries    []Entry
	}{m.Package, importName, ImportPath, entries})
	if err != nil {
		return nil, err
	}

	out, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("generated code does not parse: %w\n%s", err, buf.Bytes())
	}
	return out, nil
}
