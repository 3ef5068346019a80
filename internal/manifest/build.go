package manifest

import (
	"fmt"
	"time"

	"github.com/adnsv/go-xlbuilder/xl"
)

var cellTypes = map[string]xl.CellType{
	"inline":  xl.CellTypeInlineString,
	"shared":  xl.CellTypeSharedString,
	"formula": xl.CellTypeFormula,
}

// Build creates the workbook described by m. Named styles are resolved
// once and registered with the workbook style repository.
func (m *Manifest) Build() (*xl.Workbook, error) {
	wb := xl.NewWorkbook()
	wb.AppName = m.App
	styles := newStyleSet(m.Styles)

	for i := range m.Sheets {
		spec := &m.Sheets[i]
		sh, err := wb.AddSheet(spec.Name)
		if err != nil {
			return nil, err
		}
		if err := spec.apply(sh, styles); err != nil {
			return nil, fmt.Errorf("sheet '%s': %w", spec.Name, err)
		}
	}
	return wb, nil
}

func (spec *SheetSpec) apply(sh *xl.Sheet, styles *styleSet) error {
	for letters, w := range spec.Columns {
		col, err := xl.LettersToColumn(letters)
		if err != nil {
			return fmt.Errorf("column %q: %w", letters, err)
		}
		if err := sh.SetColumnWidth(col, w); err != nil {
			return err
		}
	}
	for row, h := range spec.Rows {
		if err := sh.SetRowHeight(row-1, h); err != nil {
			return err
		}
	}

	for _, c := range spec.Cells {
		if err := c.apply(sh, styles); err != nil {
			return fmt.Errorf("cell %s: %w", c.Ref, err)
		}
	}

	for _, r := range spec.Ranges {
		rng, err := xl.ParseRange(r.Ref)
		if err != nil {
			return err
		}
		if r.Value != nil {
			if err := sh.SetRangeValue(rng, r.Value); err != nil {
				return err
			}
		}
		if r.Style != "" {
			st, err := styles.get(r.Style)
			if err != nil {
				return fmt.Errorf("range %s: %w", r.Ref, err)
			}
			if err := sh.AppendRangeStyle(rng, st); err != nil {
				return err
			}
		}
	}

	for _, ref := range spec.Merge {
		rng, err := xl.ParseRange(ref)
		if err != nil {
			return err
		}
		if err := sh.Merge(rng); err != nil {
			return err
		}
	}

	if spec.AutoFilter != "" {
		rng, err := xl.ParseRange(spec.AutoFilter)
		if err != nil {
			return fmt.Errorf("autofilter: %w", err)
		}
		sh.SetAutoFilter(rng)
	}

	if spec.Freeze != "" {
		a, err := xl.ParseAddress(spec.Freeze)
		if err != nil {
			return fmt.Errorf("freeze: %w", err)
		}
		sh.FreezePanes(a)
	}
	return nil
}

func (c CellSpec) value() (xl.Value, error) {
	set := 0
	for _, b := range []bool{c.Value != nil, c.Formula != "", c.Date != ""} {
		if b {
			set++
		}
	}
	if set > 1 {
		return xl.Value{}, fmt.Errorf("%w: value, formula and date are exclusive", ErrManifest)
	}

	switch {
	case c.Formula != "":
		return xl.FormulaValue(c.Formula), nil
	case c.Date != "":
		t, err := parseDate(c.Date)
		if err != nil {
			return xl.Value{}, err
		}
		return xl.DateValue(t), nil
	case c.Value != nil:
		return xl.ValueOf(c.Value)
	}
	return xl.EmptyValue(), nil
}

func (c CellSpec) apply(sh *xl.Sheet, styles *styleSet) error {
	a, err := xl.ParseAddress(c.Ref)
	if err != nil {
		return err
	}
	v, err := c.value()
	if err != nil {
		return err
	}
	cell, err := sh.SetValueAt(a, v)
	if err != nil {
		return err
	}
	if c.Type != "" {
		t, ok := cellTypes[c.Type]
		if !ok {
			return fmt.Errorf("%w: type %q", ErrUnknownOption, c.Type)
		}
		if err := cell.ForceType(t); err != nil {
			return err
		}
	}
	if c.Style != "" {
		st, err := styles.get(c.Style)
		if err != nil {
			return err
		}
		if _, err := cell.AppendStyle(sh.Styles(), st); err != nil {
			return err
		}
	}
	return nil
}

func parseDate(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: date %q", ErrManifest, s)
}
