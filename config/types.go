package config

import (
	"fmt"

	"github.com/Yamlte/ExcelFilter/domain"
	"gopkg.in/yaml.v3"
)

// DirectiveConfig: placement of one value, keyed by value index in SheetConfig.Directives
type DirectiveConfig struct {
	Type      string   `yaml:"type"`                // cell / cells / range
	Address   string   `yaml:"address,omitempty"`   // cell
	Addresses []string `yaml:"addresses,omitempty"` // cells
	Start     string   `yaml:"start,omitempty"`     // range
	End       string   `yaml:"end,omitempty"`       // range
	Center    bool     `yaml:"center,omitempty"`
}

// SheetConfig: one worksheet, its values and where each value goes
type SheetConfig struct {
	Name       string                  `yaml:"name"`
	Values     []Value                 `yaml:"values"`
	Directives map[int]DirectiveConfig `yaml:"directives"`
}

// Form: template, output and the sheets to fill
type Form struct {
	Template string        `yaml:"template"`
	Output   string        `yaml:"output"`
	Sheets   []SheetConfig `yaml:"sheets"`
}

// Data: values per sheet name, loaded separately from the form layout
type Data map[string][]Value

// Value is one entry of a values list. Numbers keep their source text, so
// 01012001 stays "01012001" instead of being read as octal.
type Value struct {
	v any
}

// NewValue wraps an already typed value.
func NewValue(x any) Value {
	return Value{v: x}
}

// NewValues wraps every element of xs.
func NewValues(xs []any) []Value {
	values := make([]Value, len(xs))
	for i, x := range xs {
		values[i] = NewValue(x)
	}
	return values
}

// Any returns the wrapped value.
func (v Value) Any() any {
	return v.v
}

func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: value must be a scalar", node.Line)
	}

	switch node.ShortTag() {
	case "!!int", "!!float":
		v.v = node.Value
		return nil
	}

	var x any
	if err := node.Decode(&x); err != nil {
		return err
	}
	v.v = x
	return nil
}

// Jobs converts the form into fill jobs for the processor.
func (f *Form) Jobs() []domain.Sheet {
	jobs := make([]domain.Sheet, 0, len(f.Sheets))
	for _, s := range f.Sheets {
		values := make([]any, len(s.Values))
		for i, v := range s.Values {
			values[i] = v.Any()
		}

		table := make(domain.DirectiveTable, len(s.Directives))
		for i, d := range s.Directives {
			table[i] = domain.Directive{
				Kind:      domain.Kind(d.Type),
				Address:   d.Address,
				Addresses: d.Addresses,
				Start:     d.Start,
				End:       d.End,
				Center:    d.Center,
			}
		}
		jobs = append(jobs, domain.Sheet{Name: s.Name, Values: values, Directives: table})
	}
	return jobs
}
