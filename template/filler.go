package template

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/Yamlte/ExcelFilter/domain"
	"github.com/xuri/excelize/v2"
)

// ErrMissingWorksheet reports that the workbook has no sheet with the requested name.
var ErrMissingWorksheet = errors.New("missing worksheet")

// Workbook is the part of *excelize.File the filler writes through.
type Workbook interface {
	GetSheetIndex(sheet string) (int, error)
	SetCellStr(sheet, cell, value string) error
	SetCellStyle(sheet, hcell, vcell string, styleID int) error
	NewStyle(style *excelize.Style) (int, error)
}

// Target is a workbook bound to one sheet and one value index.
// Handlers write cells through it.
type Target struct {
	wb     Workbook
	sheet  string
	index  int
	center bool
	styles *StyleManager
	log    *slog.Logger
}

// Sheet returns the name of the sheet being filled.
func (t *Target) Sheet() string { return t.sheet }

// Index returns the index of the value being written.
func (t *Target) Index() int { return t.index }

// Warn emits a non-fatal diagnostic for the current value.
func (t *Target) Warn(msg string, args ...any) {
	t.log.Warn(msg, append([]any{"sheet", t.sheet, "index", t.index}, args...)...)
}

// Set writes value into cell, applying the centered style when the directive asks for it.
func (t *Target) Set(cell, value string) error {
	if err := t.wb.SetCellStr(t.sheet, cell, value); err != nil {
		return fmt.Errorf("set %s: %w", cell, err)
	}

	if !t.center {
		return nil
	}

	styleID, err := t.styles.Centered()
	if err != nil {
		return fmt.Errorf("centered style: %w", err)
	}
	if err := t.wb.SetCellStyle(t.sheet, cell, cell, styleID); err != nil {
		return fmt.Errorf("style %s: %w", cell, err)
	}

	return nil
}

// Filler writes ordered values into a worksheet according to a directive table.
type Filler struct {
	registry *Registry
	logger   *slog.Logger
}

// Option configures a Filler.
type Option func(*Filler)

// WithLogger sets the logger that receives fill diagnostics (default: slog.Default()).
func WithLogger(logger *slog.Logger) Option {
	return func(f *Filler) { f.logger = logger }
}

// WithRegistry replaces the default cell/cells/range handlers.
func WithRegistry(r *Registry) Option {
	return func(f *Filler) { f.registry = r }
}

// NewFiller creates a Filler with the default handlers registered.
func NewFiller(opts ...Option) *Filler {
	f := &Filler{}
	for _, opt := range opts {
		opt(f)
	}
	if f.registry == nil {
		f.registry = New()
		RegisterDefaults(f.registry)
	}
	if f.logger == nil {
		f.logger = slog.Default()
	}
	return f
}

// Fill writes sheet.Values into the named worksheet of wb.
//
// Values are visited in index order. A value without a directive, a directive
// of unknown kind and characters that do not fit their target cells are
// reported as warnings and skipped. A missing worksheet, a malformed address
// or a failed cell write stops the fill and is returned.
func (f *Filler) Fill(wb Workbook, sheet domain.Sheet) error {
	idx, err := wb.GetSheetIndex(sheet.Name)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrMissingWorksheet, sheet.Name, err)
	}
	if idx < 0 {
		return fmt.Errorf("%w: %q", ErrMissingWorksheet, sheet.Name)
	}

	log := f.logger.With("sheet", sheet.Name)
	styles := NewStyleManager(wb)

	for i, v := range sheet.Values {
		d, ok := sheet.Directives[i]
		if !ok {
			log.Warn("no directive for value, skipped", "index", i)
			continue
		}

		t := &Target{
			wb:     wb,
			sheet:  sheet.Name,
			index:  i,
			center: d.Center,
			styles: styles,
			log:    f.logger,
		}

		handled, err := f.registry.Process(t, d, domain.Text(v))
		if err != nil {
			return fmt.Errorf("sheet %q value %d: %w", sheet.Name, i, err)
		}
		if !handled {
			log.Warn("unknown directive kind, skipped", "index", i, "kind", string(d.Kind))
		}
	}

	if extra := unusedDirectives(sheet); len(extra) > 0 {
		log.Debug("directives without values ignored", "indices", extra)
	}

	return nil
}

func unusedDirectives(sheet domain.Sheet) []int {
	var extra []int
	for i := range sheet.Directives {
		if i < 0 || i >= len(sheet.Values) {
			extra = append(extra, i)
		}
	}
	sort.Ints(extra)
	return extra
}
