package processor

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/Yamlte/ExcelFilter/domain"
	"github.com/Yamlte/ExcelFilter/excel"
	"github.com/Yamlte/ExcelFilter/skeleton"
	"github.com/Yamlte/ExcelFilter/template"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const (
	cover = "Титульный лист"
	page2 = "Страница 2"
)

func newProcessor() *Processor {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(template.NewFiller(template.WithLogger(logger)), logger)
}

func writeTemplate(t *testing.T, sheets ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "template.xlsx")
	require.NoError(t, skeleton.WriteToFile(sheets, path))
	return path
}

func jobs() []domain.Sheet {
	return []domain.Sheet{
		{
			Name:   cover,
			Values: []any{7708123450, "24"},
			Directives: domain.DirectiveTable{
				0: {Kind: domain.KindCells, Addresses: []string{"O1", "P1", "Q1"}},
				1: {Kind: domain.KindRange, Start: "E27", End: "H27"},
			},
		},
		{
			Name:   page2,
			Values: []any{"ok"},
			Directives: domain.DirectiveTable{
				0: {Kind: domain.KindCell, Address: "A1"},
			},
		},
	}
}

func cell(t *testing.T, f *excelize.File, sheet, name string) string {
	t.Helper()
	v, err := f.GetCellValue(sheet, name)
	require.NoError(t, err)
	return v
}

func TestProcessFile(t *testing.T) {
	input := writeTemplate(t, cover, page2)
	output := filepath.Join(t.TempDir(), "out", "filled.xlsx")

	require.NoError(t, newProcessor().ProcessFile(input, output, jobs()))

	f, err := excelize.OpenFile(output)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, "7", cell(t, f, cover, "O1"))
	assert.Equal(t, "0", cell(t, f, cover, "Q1"))
	assert.Equal(t, "2", cell(t, f, cover, "E27"))
	assert.Equal(t, "-", cell(t, f, cover, "H27"))
	assert.Equal(t, "ok", cell(t, f, page2, "A1"))

	// the template itself is left untouched
	tpl, err := excelize.OpenFile(input)
	require.NoError(t, err)
	defer tpl.Close()
	assert.Empty(t, cell(t, tpl, cover, "O1"))
}

func TestProcessFile_OverwritesOutput(t *testing.T) {
	input := writeTemplate(t, cover, page2)
	output := filepath.Join(t.TempDir(), "filled.xlsx")
	require.NoError(t, os.WriteFile(output, []byte("stale"), 0o644))

	require.NoError(t, newProcessor().ProcessFile(input, output, jobs()))

	f, err := excelize.OpenFile(output)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, "ok", cell(t, f, page2, "A1"))
}

func TestProcessFile_TemplateRead(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "filled.xlsx")

	err := newProcessor().ProcessFile(filepath.Join(dir, "missing.xlsx"), output, jobs())
	require.ErrorIs(t, err, ErrTemplateRead)
	assert.ErrorIs(t, err, os.ErrNotExist)

	corrupt := filepath.Join(dir, "corrupt.xlsx")
	require.NoError(t, os.WriteFile(corrupt, []byte("not a workbook"), 0o644))
	err = newProcessor().ProcessFile(corrupt, output, jobs())
	require.ErrorIs(t, err, ErrTemplateRead)

	assert.NoFileExists(t, output)
}

func TestProcessFile_MissingWorksheetWritesNothing(t *testing.T) {
	input := writeTemplate(t, cover)
	output := filepath.Join(t.TempDir(), "filled.xlsx")

	err := newProcessor().ProcessFile(input, output, jobs())
	require.ErrorIs(t, err, template.ErrMissingWorksheet)
	assert.NoFileExists(t, output)
}

func TestProcessFile_InvalidAddress(t *testing.T) {
	input := writeTemplate(t, cover)
	output := filepath.Join(t.TempDir(), "filled.xlsx")

	err := newProcessor().ProcessFile(input, output, []domain.Sheet{{
		Name:       cover,
		Values:     []any{"x"},
		Directives: domain.DirectiveTable{0: {Kind: domain.KindCell, Address: "A"}},
	}})
	require.ErrorIs(t, err, excel.ErrInvalidAddress)
	assert.NoFileExists(t, output)
}

func TestProcessFile_OutputWrite(t *testing.T) {
	input := writeTemplate(t, cover, page2)
	dir := t.TempDir()

	// excelize only saves workbook extensions
	err := newProcessor().ProcessFile(input, filepath.Join(dir, "filled.txt"), jobs())
	require.ErrorIs(t, err, ErrOutputWrite)

	// a regular file where the output directory should be
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))
	err = newProcessor().ProcessFile(input, filepath.Join(blocker, "filled.xlsx"), jobs())
	require.ErrorIs(t, err, ErrOutputWrite)
}

func TestProcessBytes(t *testing.T) {
	data, err := skeleton.WriteToBytes([]string{cover, page2})
	require.NoError(t, err)

	out, err := newProcessor().ProcessBytes(data, jobs())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, "7", cell(t, f, cover, "O1"))
	assert.Equal(t, "ok", cell(t, f, page2, "A1"))
}

func TestProcessBytes_Errors(t *testing.T) {
	_, err := newProcessor().ProcessBytes([]byte("garbage"), jobs())
	assert.ErrorIs(t, err, ErrTemplateRead)

	data, err := skeleton.WriteToBytes([]string{page2})
	require.NoError(t, err)
	out, err := newProcessor().ProcessBytes(data, jobs())
	assert.ErrorIs(t, err, template.ErrMissingWorksheet)
	assert.Nil(t, out)
}
