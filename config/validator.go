package config

import (
	"errors"
	"fmt"
)

// Validate checks the structure of a form. Directive types and cell
// addresses are checked while filling.
func Validate(form *Form) error {
	if len(form.Sheets) == 0 {
		return errors.New("form must have at least one sheet")
	}

	seen := make(map[string]struct{}, len(form.Sheets))
	for i := range form.Sheets {
		sheet := &form.Sheets[i]
		if err := ValidateSheet(sheet); err != nil {
			return fmt.Errorf("sheet %d error: %w", i, err)
		}
		if _, dup := seen[sheet.Name]; dup {
			return fmt.Errorf("sheet %d error: duplicate sheet name '%s'", i, sheet.Name)
		}
		seen[sheet.Name] = struct{}{}
	}
	return nil
}

// ValidateSheet checks one sheet of a form.
func ValidateSheet(sheet *SheetConfig) error {
	if sheet.Name == "" {
		return errors.New("sheet name is required")
	}
	for i := range sheet.Directives {
		if i < 0 {
			return fmt.Errorf("sheet '%s' has negative directive index %d", sheet.Name, i)
		}
	}
	return nil
}
