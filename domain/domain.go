package domain

import (
	"fmt"
	"math"
	"strconv"
)

// Placeholder is written into target cells left over once a value's text runs out.
const Placeholder = "-"

// Kind selects how a value is placed into the sheet.
type Kind string

const (
	KindCell  Kind = "cell"  // whole text into one cell
	KindCells Kind = "cells" // one character per listed cell
	KindRange Kind = "range" // one character per cell of a rectangle, row by row
)

// Directive describes where one value's text goes.
// Only the fields relevant to Kind are read: Address for cell,
// Addresses for cells, Start and End for range.
type Directive struct {
	Kind      Kind
	Address   string
	Addresses []string
	Start     string
	End       string

	// Center applies a centered style to every cell the directive writes.
	Center bool
}

// DirectiveTable maps a value index to its directive. It may be sparse.
type DirectiveTable map[int]Directive

// Sheet is one worksheet to fill: its name, the ordered values
// and the directives keyed by value index.
type Sheet struct {
	Name       string
	Values     []any
	Directives DirectiveTable
}

// Text renders a value the way it is written into cells.
// Numbers are plain base-10 without grouping or exponent.
func Text(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case int:
		return strconv.Itoa(x)
	case int8, int16, int32, int64:
		return fmt.Sprintf("%d", x)
	case uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", x)
	case float32:
		return formatFloat(float64(x), 32)
	case float64:
		return formatFloat(x, 64)
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}

func formatFloat(f float64, bits int) string {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return strconv.FormatFloat(f, 'g', -1, bits)
	}
	return strconv.FormatFloat(f, 'f', -1, bits)
}
