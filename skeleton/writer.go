package skeleton

import (
	"errors"
	"fmt"

	"github.com/Yamlte/ExcelFilter/excel"
	excelize "github.com/xuri/excelize/v2"
)

// gridColumns is how many columns get the narrow one-character width (A:AN).
const gridColumns = 40

// gridWidth is the width of a single character box.
const gridWidth = 3.5

// WriteToFile creates a blank template containing exactly the named sheets and saves it to path.
func WriteToFile(sheets []string, path string) error {
	f, err := build(sheets)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}

	return nil
}

// WriteToBytes creates a blank template containing exactly the named sheets and returns it as bytes.
func WriteToBytes(sheets []string) ([]byte, error) {
	f, err := build(sheets)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write to buffer: %w", err)
	}

	return buf.Bytes(), nil
}

func build(sheets []string) (*excelize.File, error) {
	if len(sheets) == 0 {
		return nil, errors.New("skeleton needs at least one sheet")
	}

	f := excelize.NewFile()
	seen := make(map[string]struct{}, len(sheets))

	for i, sheet := range sheets {
		if _, dup := seen[sheet]; dup {
			f.Close()
			return nil, fmt.Errorf("duplicate sheet %q", sheet)
		}
		seen[sheet] = struct{}{}

		if err := addSheet(f, i, sheet); err != nil {
			f.Close()
			return nil, fmt.Errorf("sheet %q: %w", sheet, err)
		}

		if err := setGrid(f, sheet); err != nil {
			f.Close()
			return nil, fmt.Errorf("sheet %q grid: %w", sheet, err)
		}
	}

	return f, nil
}

// addSheet renames the default sheet for the first name and appends the rest.
func addSheet(f *excelize.File, i int, sheet string) error {
	if i == 0 {
		return f.SetSheetName(f.GetSheetName(0), sheet)
	}
	_, err := f.NewSheet(sheet)
	return err
}

func setGrid(f *excelize.File, sheet string) error {
	last, err := excel.IndexToColumn(gridColumns)
	if err != nil {
		return err
	}
	return f.SetColWidth(sheet, "A", last, gridWidth)
}
