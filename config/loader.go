package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed forms/payment_certificate.yaml
var paymentCertificate []byte

// PaymentCertificate returns the built-in form for the payment certificate cover sheet.
func PaymentCertificate() (*Form, error) {
	return Parse(paymentCertificate)
}

// Load reads a form from a YAML file. Relative template and output paths
// are resolved against the directory of the file.
func Load(path string) (*Form, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read form file: %w", err)
	}

	form, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	dir := filepath.Dir(path)
	form.Template = resolve(dir, form.Template)
	form.Output = resolve(dir, form.Output)

	return form, nil
}

// Parse decodes and validates a form from YAML.
func Parse(data []byte) (*Form, error) {
	var form Form
	if err := decodeStrict(data, &form); err != nil {
		return nil, fmt.Errorf("failed to parse form: %w", err)
	}

	if err := Validate(&form); err != nil {
		return nil, err
	}

	return &form, nil
}

// LoadData reads per-sheet values from a YAML file of the form
//
//	Титульный лист: [7708123450, 770801001, ...]
func LoadData(path string) (Data, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read data file: %w", err)
	}

	var data Data
	if err := decodeStrict(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to parse data file: %w", err)
	}

	return data, nil
}

// ApplyData replaces the values of every sheet named in data.
func (f *Form) ApplyData(data Data) error {
	for name, values := range data {
		i := f.sheetIndex(name)
		if i < 0 {
			return fmt.Errorf("data for unknown sheet %q", name)
		}
		f.Sheets[i].Values = values
	}
	return nil
}

// SheetNames lists the sheets of the form in fill order.
func (f *Form) SheetNames() []string {
	names := make([]string, len(f.Sheets))
	for i, s := range f.Sheets {
		names[i] = s.Name
	}
	return names
}

func (f *Form) sheetIndex(name string) int {
	for i, s := range f.Sheets {
		if s.Name == name {
			return i
		}
	}
	return -1
}

func decodeStrict(data []byte, v any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func resolve(dir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}
