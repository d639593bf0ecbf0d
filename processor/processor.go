package processor

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Yamlte/ExcelFilter/domain"
	"github.com/Yamlte/ExcelFilter/template"
	"github.com/xuri/excelize/v2"
)

var (
	// ErrTemplateRead reports a template that is missing or cannot be parsed.
	ErrTemplateRead = errors.New("template read")
	// ErrOutputWrite reports a failure persisting the filled workbook.
	ErrOutputWrite = errors.New("output write")
)

// Processor fills sheets of a template workbook and persists the result.
type Processor struct {
	filler *template.Filler
	logger *slog.Logger
}

// New creates a Processor that fills sheets with the given Filler.
func New(filler *template.Filler, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{filler: filler, logger: logger}
}

// ProcessFile opens the template at input, fills every sheet in order and
// saves the workbook to output, overwriting it. Nothing is written when
// opening or filling fails.
func (p *Processor) ProcessFile(input, output string, sheets []domain.Sheet) error {
	f, err := excelize.OpenFile(input)
	if err != nil {
		return fmt.Errorf("%w: open %s: %w", ErrTemplateRead, input, err)
	}
	defer f.Close()

	if err := p.fillSheets(f, sheets); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(output), 0o755); err != nil {
		return fmt.Errorf("%w: create output dir: %w", ErrOutputWrite, err)
	}

	if err := f.SaveAs(output); err != nil {
		return fmt.Errorf("%w: save %s: %w", ErrOutputWrite, output, err)
	}

	p.logger.Info("workbook saved", "output", output)
	return nil
}

// ProcessBytes reads a template from raw bytes, fills every sheet in order,
// and returns the resulting file as bytes.
func (p *Processor) ProcessBytes(data []byte, sheets []domain.Sheet) ([]byte, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: open from bytes: %w", ErrTemplateRead, err)
	}
	defer f.Close()

	if err := p.fillSheets(f, sheets); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("%w: write to buffer: %w", ErrOutputWrite, err)
	}

	return buf.Bytes(), nil
}

func (p *Processor) fillSheets(f *excelize.File, sheets []domain.Sheet) error {
	for _, sheet := range sheets {
		if err := p.filler.Fill(f, sheet); err != nil {
			return fmt.Errorf("fill: %w", err)
		}
		p.logger.Info("sheet filled", "sheet", sheet.Name, "values", len(sheet.Values))
	}

	return nil
}
