package xl

import (
	"fmt"
	"slices"

	"golang.org/x/exp/maps"
)

// Sheet is a worksheet. It shares the style repository of its workbook,
// handed over when the sheet is created.
type Sheet struct {
	Name    string
	Columns map[int]*Column // 0-based

	styles     *StyleRepository
	rows       map[int]*Row
	merges     []Range
	autoFilter Option[Range]
	freeze     Address // top-left scrollable cell; A1 means no frozen panes
	nextRow    int     // 0-based, incremented as we add rows
}

type Column struct {
	Width  float32
	Hidden bool
}

func newSheet(name string, styles *StyleRepository) *Sheet {
	return &Sheet{
		Name:    name,
		Columns: map[int]*Column{},
		styles:  styles,
		rows:    map[int]*Row{},
	}
}

// Styles is the repository canonical styles of this sheet live in.
func (s *Sheet) Styles() *StyleRepository { return s.styles }

// AddRow appends a row below the last row added through the cursor.
func (s *Sheet) AddRow() (*Row, error) {
	if s.nextRow >= MaxRows {
		return nil, fmt.Errorf("%w: sheet %q has no free row", ErrRange, s.Name)
	}
	return s.row(s.nextRow), nil
}

// Row returns the row at the zero-based index, creating it if needed.
func (s *Sheet) Row(index int) (*Row, error) {
	if index < 0 || index >= MaxRows {
		return nil, fmt.Errorf("%w: row index %d", ErrRange, index)
	}
	return s.row(index), nil
}

func (s *Sheet) row(index int) *Row {
	if r, ok := s.rows[index]; ok {
		return r
	}
	r := newRow(index)
	s.rows[index] = r
	if index >= s.nextRow {
		s.nextRow = index + 1
	}
	return r
}

// Rows returns the existing rows ordered by index.
func (s *Sheet) Rows() []*Row {
	idx := maps.Keys(s.rows)
	slices.Sort(idx)
	out := make([]*Row, len(idx))
	for i, n := range idx {
		out[i] = s.rows[n]
	}
	return out
}

// CellAt returns the cell at a, creating it if needed.
func (s *Sheet) CellAt(a Address) *Cell {
	return s.row(a.Row()).cellAt(a.Column())
}

// Cell returns the cell at the A1 reference, creating it if needed.
func (s *Sheet) Cell(ref string) (*Cell, error) {
	a, err := ParseAddress(ref)
	if err != nil {
		return nil, err
	}
	return s.CellAt(a), nil
}

// Lookup returns the cell at a without creating it.
func (s *Sheet) Lookup(a Address) (*Cell, bool) {
	r, ok := s.rows[a.Row()]
	if !ok {
		return nil, false
	}
	c, ok := r.cells[a.Column()]
	return c, ok
}

// Remove deletes the cell at a. It reports whether a cell was present.
func (s *Sheet) Remove(a Address) bool {
	r, ok := s.rows[a.Row()]
	if !ok {
		return false
	}
	if _, ok := r.cells[a.Column()]; !ok {
		return false
	}
	delete(r.cells, a.Column())
	return true
}

// Set stores v at the A1 reference. v is converted with ValueOf.
func (s *Sheet) Set(ref string, v any) (*Cell, error) {
	a, err := ParseAddress(ref)
	if err != nil {
		return nil, err
	}
	val, err := ValueOf(v)
	if err != nil {
		return nil, fmt.Errorf("cell %s: %w", a, err)
	}
	return s.SetValueAt(a, val)
}

// SetValueAt stores v at a. Date and time values on an unstyled cell get
// the built-in date or time number format.
func (s *Sheet) SetValueAt(a Address, v Value) (*Cell, error) {
	c := s.CellAt(a)
	c.SetValue(v)
	if c.style != nil {
		return c, nil
	}
	var def *Style
	switch v.Kind() {
	case KindDate:
		def = StyleDate()
		if t := v.Time(); t.Hour() != 0 || t.Minute() != 0 || t.Second() != 0 {
			def = StyleDateTime()
		}
	case KindTime:
		def = StyleTime()
	default:
		return c, nil
	}
	if _, err := c.SetStyle(s.styles, def); err != nil {
		return nil, err
	}
	return c, nil
}

// SetRangeValue stores v in every cell of r.
func (s *Sheet) SetRangeValue(r Range, v any) error {
	val, err := ValueOf(v)
	if err != nil {
		return fmt.Errorf("range %s: %w", r, err)
	}
	for a := range r.All() {
		if _, err := s.SetValueAt(a, val); err != nil {
			return err
		}
	}
	return nil
}

// SetStyle assigns st to the cell at the A1 reference.
func (s *Sheet) SetStyle(ref string, st *Style) (*Style, error) {
	a, err := ParseAddress(ref)
	if err != nil {
		return nil, err
	}
	return s.CellAt(a).SetStyle(s.styles, st)
}

// SetRangeStyle assigns st to every cell of r, creating empty cells where
// needed. All cells end up sharing one canonical style.
func (s *Sheet) SetRangeStyle(r Range, st *Style) (*Style, error) {
	if st == nil {
		return nil, fmt.Errorf("%w: nil style for range %s", ErrStyle, r)
	}
	canonical, err := s.styles.Add(st)
	if err != nil {
		return nil, fmt.Errorf("range %s: %w", r, err)
	}
	for a := range r.All() {
		s.CellAt(a).style = canonical
	}
	return canonical, nil
}

// AppendRangeStyle merges st into the current style of every cell of r.
func (s *Sheet) AppendRangeStyle(r Range, st *Style) error {
	if st == nil {
		return fmt.Errorf("%w: nil style for range %s", ErrStyle, r)
	}
	for a := range r.All() {
		if _, err := s.CellAt(a).AppendStyle(s.styles, st); err != nil {
			return err
		}
	}
	return nil
}

// Merge defines r as a merged cell block. Single cells and blocks that
// overlap an existing merge are rejected.
func (s *Sheet) Merge(r Range) error {
	if r.Size() < 2 {
		return fmt.Errorf("%w: merge of single cell %s", ErrRange, r.Start())
	}
	for _, m := range s.merges {
		if m.Overlaps(r) {
			return fmt.Errorf("%w: merge %s overlaps %s", ErrRange, r, m)
		}
	}
	s.merges = append(s.merges, NewRange(r.Start().Plain(), r.End().Plain()))
	return nil
}

// Unmerge removes the merge equal to r. It reports whether one existed.
func (s *Sheet) Unmerge(r Range) bool {
	for i, m := range s.merges {
		if m.Equal(r) {
			s.merges = slices.Delete(s.merges, i, i+1)
			return true
		}
	}
	return false
}

// Merges returns the merged blocks in definition order.
func (s *Sheet) Merges() []Range {
	return slices.Clone(s.merges)
}

func (s *Sheet) SetAutoFilter(r Range) {
	s.autoFilter = Some(NewRange(r.Start().Plain(), r.End().Plain()))
}

func (s *Sheet) ClearAutoFilter() {
	s.autoFilter = None[Range]()
}

func (s *Sheet) AutoFilter() (Range, bool) {
	return s.autoFilter.Value(), s.autoFilter.Has()
}

// FreezePanes freezes the rows above and the columns left of a. A1
// removes frozen panes.
func (s *Sheet) FreezePanes(a Address) {
	s.freeze = a.Plain()
}

// Frozen returns the top-left scrollable cell and whether panes are frozen.
func (s *Sheet) Frozen() (Address, bool) {
	return s.freeze, s.freeze.Key() != 0
}

// SetColumnWidth sets the width of the zero-based column; w <= 0 restores
// the default width.
func (s *Sheet) SetColumnWidth(col int, w float32) error {
	if col < 0 || col >= MaxColumns {
		return fmt.Errorf("%w: column index %d", ErrRange, col)
	}
	if w <= 0.0 {
		delete(s.Columns, col)
	} else {
		c, exists := s.Columns[col]
		if !exists {
			c = &Column{
				Width: w,
			}
		} else {
			c.Width = w
		}
		s.Columns[col] = c
	}
	return nil
}

// SetRowHeight sets the height of the zero-based row in points.
func (s *Sheet) SetRowHeight(row int, h float32) error {
	r, err := s.Row(row)
	if err != nil {
		return err
	}
	r.Height = max(h, 0)
	return nil
}

// Dimension returns the smallest range covering every written cell.
func (s *Sheet) Dimension() (Range, bool) {
	var lo, hi Address
	found := false
	for _, r := range s.rows {
		for _, c := range r.cells {
			if !c.writable() {
				continue
			}
			a := c.address
			if !found {
				lo, hi, found = a, a, true
				continue
			}
			lo.col, lo.row = min(lo.col, a.col), min(lo.row, a.row)
			hi.col, hi.row = max(hi.col, a.col), max(hi.row, a.row)
		}
	}
	return NewRange(lo, hi), found
}
