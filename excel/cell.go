package excel

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ErrInvalidAddress reports a malformed column label, column index or cell address.
var ErrInvalidAddress = errors.New("invalid address")

// ColumnToIndex converts Excel column letters to a 1-based column index (A→1, Z→26, AA→27).
// Letters are case-insensitive. Labels past XFD (excelize.MaxColumns) are rejected.
func ColumnToIndex(label string) (int, error) {
	if label == "" {
		return 0, fmt.Errorf("%w: empty column label", ErrInvalidAddress)
	}

	n := 0
	for _, r := range strings.ToUpper(label) {
		if r < 'A' || r > 'Z' {
			return 0, fmt.Errorf("%w: column label %q", ErrInvalidAddress, label)
		}
		n = n*26 + int(r-'A') + 1
		if n > excelize.MaxColumns {
			return 0, fmt.Errorf("%w: column label %q beyond %d columns", ErrInvalidAddress, label, excelize.MaxColumns)
		}
	}
	return n, nil
}

// IndexToColumn converts a 1-based column index to Excel column letters (1→A, 26→Z, 27→AA).
func IndexToColumn(n int) (string, error) {
	if n <= 0 || n > excelize.MaxColumns {
		return "", fmt.Errorf("%w: column index %d", ErrInvalidAddress, n)
	}

	var buf []byte
	for n > 0 {
		n--
		buf = append(buf, byte('A'+n%26))
		n /= 26
	}
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return string(buf), nil
}

// ParseAddress splits a cell address such as "ak10" into its upper-cased
// column letters and 1-based row ("AK", 10).
func ParseAddress(s string) (col string, row int, err error) {
	i := 0
	for i < len(s) && isLetter(s[i]) {
		i++
	}
	if i == 0 || i == len(s) {
		return "", 0, fmt.Errorf("%w: %q", ErrInvalidAddress, s)
	}

	for j := i; j < len(s); j++ {
		if s[j] < '0' || s[j] > '9' {
			return "", 0, fmt.Errorf("%w: %q", ErrInvalidAddress, s)
		}
	}

	row, err = strconv.Atoi(s[i:])
	if err != nil || row < 1 {
		return "", 0, fmt.Errorf("%w: row in %q", ErrInvalidAddress, s)
	}

	return strings.ToUpper(s[:i]), row, nil
}

// ParseCoordinates is ParseAddress with the column already converted to its index.
func ParseCoordinates(s string) (col, row int, err error) {
	label, row, err := ParseAddress(s)
	if err != nil {
		return 0, 0, err
	}
	col, err = ColumnToIndex(label)
	if err != nil {
		return 0, 0, err
	}
	return col, row, nil
}

// CellName converts 1-based column and row numbers to a cell reference (e.g. 37,10 → "AK10").
func CellName(col, row int) (string, error) {
	if row < 1 {
		return "", fmt.Errorf("%w: row %d", ErrInvalidAddress, row)
	}
	label, err := IndexToColumn(col)
	if err != nil {
		return "", err
	}
	return label + strconv.Itoa(row), nil
}

func isLetter(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}
