package xl

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Workbook is the root of a document. It owns the style repository shared
// by its sheets; independent workbooks never share styles.
type Workbook struct {
	AppName string
	Sheets  []*Sheet

	styles   *StyleRepository
	sheetMap map[string]*Sheet // keyed by lower-cased name
}

func NewWorkbook() *Workbook {
	return &Workbook{
		styles:   NewStyleRepository(),
		sheetMap: map[string]*Sheet{},
	}
}

// Styles returns the workbook style repository.
func (wb *Workbook) Styles() *StyleRepository {
	return wb.styles
}

func (wb *Workbook) AddSheet(name string) (*Sheet, error) {
	if err := validateSheetName(name); err != nil {
		return nil, err
	}

	key := strings.ToLower(name)
	if _, exists := wb.sheetMap[key]; exists {
		return nil, fmt.Errorf("%w: '%s'", ErrSheetExists, name)
	}

	sheet := newSheet(name, wb.styles)
	wb.Sheets = append(wb.Sheets, sheet)
	wb.sheetMap[key] = sheet

	return sheet, nil
}

// Sheet finds a sheet by name, ignoring case.
func (wb *Workbook) Sheet(name string) (*Sheet, bool) {
	s, ok := wb.sheetMap[strings.ToLower(name)]
	return s, ok
}

func validateSheetName(s string) error {
	n := utf8.RuneCountInString(s)
	if n == 0 {
		return fmt.Errorf("%w: empty sheet name is not allowed", ErrSheetName)
	} else if n > 31 {
		return fmt.Errorf("%w: the sheet name is too long", ErrSheetName)
	}
	if strings.HasPrefix(s, "'") || strings.HasSuffix(s, "'") {
		return fmt.Errorf("%w: the first or last character of the sheet name can not be a single quote", ErrSheetName)
	}
	if strings.ContainsAny(s, ":\\/?*[]") {
		return fmt.Errorf("%w: the sheet can not contain any of the characters :\\/?*[]", ErrSheetName)
	}
	return nil
}
