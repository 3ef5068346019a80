package xl

import (
	"fmt"
	"iter"
	"strings"
)

// Range is a rectangular block of cells. Start is always the top-left
// corner and End the bottom-right corner: both constructors normalize each
// axis independently, and a '$' marker travels with its coordinate.
type Range struct {
	start Address
	end   Address
}

// NewRange returns the range spanned by two corner addresses, given in any
// order.
func NewRange(a, b Address) Range {
	var s, e Address
	s.col, s.typ, e.col, e.typ = sortAxis(a.col, b.col, a.typ, b.typ, RefFixedColumn)
	var st, et ReferenceType
	s.row, st, e.row, et = sortAxis(a.row, b.row, a.typ, b.typ, RefFixedRow)
	s.typ |= st
	e.typ |= et
	return Range{start: s, end: e}
}

// sortAxis orders one coordinate pair and keeps only mask bits of the
// reference type that belong to it.
func sortAxis(x, y int32, tx, ty, mask ReferenceType) (int32, ReferenceType, int32, ReferenceType) {
	if y < x {
		x, y, tx, ty = y, x, ty, tx
	}
	return x, tx & mask, y, ty & mask
}

// RangeFromSpan builds a range from two zero-based column/row pairs.
func RangeFromSpan(startCol, startRow, endCol, endRow int) (Range, error) {
	a, err := NewAddress(startCol, startRow)
	if err != nil {
		return Range{}, err
	}
	b, err := NewAddress(endCol, endRow)
	if err != nil {
		return Range{}, err
	}
	return NewRange(a, b), nil
}

// MustRange is like ParseRange but panics on error.
func MustRange(text string) Range {
	r, err := ParseRange(text)
	if err != nil {
		panic(err)
	}
	return r
}

// ParseRange parses "A1:C3" style text. Exactly one ':' separator is
// required.
func ParseRange(text string) (Range, error) {
	if n := strings.Count(text, ":"); n != 1 {
		return Range{}, fmt.Errorf("%w: range %q has %d separators", ErrFormat, text, n)
	}
	lhs, rhs, _ := strings.Cut(text, ":")
	a, err := ParseAddress(lhs)
	if err != nil {
		return Range{}, fmt.Errorf("range start: %w", err)
	}
	b, err := ParseAddress(rhs)
	if err != nil {
		return Range{}, fmt.Errorf("range end: %w", err)
	}
	return NewRange(a, b), nil
}

func (r Range) Start() Address { return r.start }
func (r Range) End() Address   { return r.end }

func (r Range) Columns() int { return int(r.end.col-r.start.col) + 1 }
func (r Range) Rows() int    { return int(r.end.row-r.start.row) + 1 }

// Size is the number of enclosed cells.
func (r Range) Size() int64 {
	return int64(r.Columns()) * int64(r.Rows())
}

func (r Range) Contains(a Address) bool {
	return a.col >= r.start.col && a.col <= r.end.col &&
		a.row >= r.start.row && a.row <= r.end.row
}

// Overlaps reports whether r and o share at least one cell.
func (r Range) Overlaps(o Range) bool {
	return r.start.col <= o.end.col && o.start.col <= r.end.col &&
		r.start.row <= o.end.row && o.start.row <= r.end.row
}

// Equal compares both corners by coordinates only.
func (r Range) Equal(o Range) bool {
	return r.start.Equal(o.start) && r.end.Equal(o.end)
}

// String renders the range as "A1:C3", keeping '$' markers. A single
// cell range is rendered as "A1:A1".
func (r Range) String() string {
	return r.start.String() + ":" + r.end.String()
}

// All yields every enclosed address in column-major order: all rows of
// the first column, then the next column. Yielded addresses have no
// fixed-reference markers.
func (r Range) All() iter.Seq[Address] {
	return func(yield func(Address) bool) {
		for c := r.start.col; c <= r.end.col; c++ {
			for row := r.start.row; row <= r.end.row; row++ {
				if !yield(Address{col: c, row: row}) {
					return
				}
			}
		}
	}
}

// Addresses returns the enclosed addresses in the order of All. Use All
// to walk large ranges without materializing them.
func (r Range) Addresses() []Address {
	out := make([]Address, 0, min(r.Size(), 1<<16))
	for a := range r.All() {
		out = append(out, a)
	}
	return out
}
