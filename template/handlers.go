package template

import (
	"fmt"

	"github.com/Yamlte/ExcelFilter/domain"
	"github.com/Yamlte/ExcelFilter/excel"
)

// RegisterDefaults registers the built-in placement handlers (cell, cells, range).
func RegisterDefaults(r *Registry) {
	r.Register(domain.KindCell, handleCell)
	r.Register(domain.KindCells, handleCells)
	r.Register(domain.KindRange, handleRange)
}

// ---------- cell ----------

// handleCell writes the whole text into a single cell.
func handleCell(t *Target, d domain.Directive, text string) error {
	cell, err := normalize(d.Address)
	if err != nil {
		return err
	}
	return t.Set(cell, text)
}

// ---------- cells ----------

// handleCells writes one character per listed address, in list order.
// Addresses past the end of the text get the placeholder; characters past
// the last address are dropped.
func handleCells(t *Target, d domain.Directive, text string) error {
	if len(d.Addresses) == 0 {
		t.Warn("no addresses for value, skipped")
		return nil
	}

	cells := make([]string, len(d.Addresses))
	for i, addr := range d.Addresses {
		cell, err := normalize(addr)
		if err != nil {
			return err
		}
		cells[i] = cell
	}

	chars := []rune(text)
	if len(chars) > len(cells) {
		t.Warn("not enough cells, excess characters dropped",
			"cells", len(cells), "length", len(chars))
	}

	for i, cell := range cells {
		value := domain.Placeholder
		if i < len(chars) {
			value = string(chars[i])
		}
		if err := t.Set(cell, value); err != nil {
			return err
		}
	}

	return nil
}

// ---------- range ----------

// handleRange scans the rectangle Start:End row by row, left to right,
// writing one character per cell and the placeholder once the text runs out.
// Nothing is written outside the rectangle.
func handleRange(t *Target, d domain.Directive, text string) error {
	startCol, startRow, err := excel.ParseCoordinates(d.Start)
	if err != nil {
		return fmt.Errorf("range start: %w", err)
	}
	endCol, endRow, err := excel.ParseCoordinates(d.End)
	if err != nil {
		return fmt.Errorf("range end: %w", err)
	}

	chars := []rune(text)
	next := 0

	for row := startRow; row <= endRow; row++ {
		for col := startCol; col <= endCol; col++ {
			cell, err := excel.CellName(col, row)
			if err != nil {
				return err
			}

			value := domain.Placeholder
			if next < len(chars) {
				value = string(chars[next])
				next++
			}
			if err := t.Set(cell, value); err != nil {
				return err
			}
		}
	}

	if next < len(chars) {
		t.Warn("range exhausted, excess characters dropped",
			"range", d.Start+":"+d.End, "written", next, "length", len(chars))
	}

	return nil
}

// ---------- helpers ----------

// normalize validates addr and returns it with upper-cased column letters.
func normalize(addr string) (string, error) {
	col, row, err := excel.ParseCoordinates(addr)
	if err != nil {
		return "", err
	}
	return excel.CellName(col, row)
}
