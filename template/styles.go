package template

import "github.com/xuri/excelize/v2"

// styler is the part of a workbook needed to register styles.
type styler interface {
	NewStyle(style *excelize.Style) (int, error)
}

// StyleManager caches Excel styles so each style is created only once per workbook.
type StyleManager struct {
	file  styler
	cache map[string]int
}

// NewStyleManager creates a style manager bound to the given workbook.
func NewStyleManager(f styler) *StyleManager {
	return &StyleManager{file: f, cache: make(map[string]int)}
}

// Centered returns a style that centers a single character in its box (cached).
func (sm *StyleManager) Centered() (int, error) {
	return sm.getOrCreate("centered", &excelize.Style{
		Font:      defaultFont(),
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
}

func (sm *StyleManager) getOrCreate(key string, style *excelize.Style) (int, error) {
	if id, ok := sm.cache[key]; ok {
		return id, nil
	}

	id, err := sm.file.NewStyle(style)
	if err != nil {
		return 0, err
	}

	sm.cache[key] = id
	return id, nil
}

func defaultFont() *excelize.Font {
	return &excelize.Font{Family: "Courier New", Size: 11}
}
