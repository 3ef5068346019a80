package xl

import (
	"fmt"
	"regexp"
	"strconv"
)

// ReferenceType tells which coordinates of an address carry the '$'
// fixed-reference marker. The two markers are independent bits.
type ReferenceType uint8

const (
	RefDefault           ReferenceType = 0
	RefFixedColumn       ReferenceType = 1 << 0 // $A1
	RefFixedRow          ReferenceType = 1 << 1 // A$1
	RefFixedRowAndColumn               = RefFixedColumn | RefFixedRow
)

func (t ReferenceType) fixedColumn() bool { return t&RefFixedColumn != 0 }
func (t ReferenceType) fixedRow() bool    { return t&RefFixedRow != 0 }

func (t ReferenceType) String() string {
	switch t {
	case RefDefault:
		return "default"
	case RefFixedColumn:
		return "fixed-column"
	case RefFixedRow:
		return "fixed-row"
	case RefFixedRowAndColumn:
		return "fixed-row-and-column"
	}
	return fmt.Sprintf("ReferenceType(%d)", uint8(t))
}

// Address is a zero-based (column, row) cell coordinate. Addresses are
// values; the zero Address is A1.
//
// The reference type is an annotation: it is kept through copies and
// formatting but ignored by Equal, Compare and Key. Use Plain or Key when
// an address is needed as a map key.
type Address struct {
	col int32
	row int32
	typ ReferenceType
}

// NewAddress returns the address at the zero-based column and row.
func NewAddress(col, row int) (Address, error) {
	return NewAddressType(col, row, RefDefault)
}

func NewAddressType(col, row int, t ReferenceType) (Address, error) {
	if col < 0 || col >= MaxColumns {
		return Address{}, fmt.Errorf("%w: column index %d", ErrRange, col)
	}
	if row < 0 || row >= MaxRows {
		return Address{}, fmt.Errorf("%w: row index %d", ErrRange, row)
	}
	if t > RefFixedRowAndColumn {
		return Address{}, fmt.Errorf("%w: reference type %d", ErrRange, t)
	}
	return Address{col: int32(col), row: int32(row), typ: t}, nil
}

// MustAddress is like ParseAddress but panics on error. It is meant for
// literals known to be valid.
func MustAddress(text string) Address {
	a, err := ParseAddress(text)
	if err != nil {
		panic(err)
	}
	return a
}

func (a Address) Column() int         { return int(a.col) }
func (a Address) Row() int            { return int(a.row) }
func (a Address) Type() ReferenceType { return a.typ }

// WithType returns a copy of a with the given reference type.
func (a Address) WithType(t ReferenceType) Address {
	a.typ = t & RefFixedRowAndColumn
	return a
}

// Plain returns a copy of a without fixed-reference markers.
func (a Address) Plain() Address {
	a.typ = RefDefault
	return a
}

// Key is the column-major ordering key column*MaxRows + row.
func (a Address) Key() int64 {
	return int64(a.col)*MaxRows + int64(a.row)
}

func (a Address) Equal(b Address) bool {
	return a.col == b.col && a.row == b.row
}

// Compare orders addresses column-major. It returns -1, 0 or +1.
func (a Address) Compare(b Address) int {
	ka, kb := a.Key(), b.Key()
	switch {
	case ka < kb:
		return -1
	case ka > kb:
		return 1
	}
	return 0
}

func (a Address) Less(b Address) bool {
	return a.Key() < b.Key()
}

// Offset returns the address dc columns and dr rows away from a, keeping
// the reference type.
func (a Address) Offset(dc, dr int) (Address, error) {
	return NewAddressType(int(a.col)+dc, int(a.row)+dr, a.typ)
}

// String renders the address in A1 notation including '$' markers.
func (a Address) String() string {
	return formatAddress(int(a.col), int(a.row), a.typ)
}

// FormatAddress renders zero-based coordinates in A1 notation.
func FormatAddress(col, row int, t ReferenceType) (string, error) {
	a, err := NewAddressType(col, row, t)
	if err != nil {
		return "", err
	}
	return a.String(), nil
}

func formatAddress(col, row int, t ReferenceType) string {
	buf := make([]byte, 0, 12)
	if t.fixedColumn() {
		buf = append(buf, '$')
	}
	buf = append(buf, columnLetters(col)...)
	if t.fixedRow() {
		buf = append(buf, '$')
	}
	buf = strconv.AppendInt(buf, int64(row)+1, 10)
	return string(buf)
}

// addressRegex matches A1, $A1, A$1, $A$1 with up to three column
// letters and seven row digits.
var addressRegex = regexp.MustCompile(`^(\$?)([A-Za-z]{1,3})(\$?)([0-9]{1,7})$`)

// ParseAddress parses an address in A1 notation, case-insensitive.
// Malformed text yields ErrFormat; well-formed text outside the sheet
// bounds (XFE1, A1048577, A0) yields ErrRange.
func ParseAddress(text string) (Address, error) {
	m := addressRegex.FindStringSubmatch(text)
	if m == nil {
		return Address{}, fmt.Errorf("%w: address %q", ErrFormat, text)
	}

	col, err := LettersToColumn(m[2])
	if err != nil {
		return Address{}, fmt.Errorf("address %s: %w", text, err)
	}
	row, err := strconv.Atoi(m[4])
	if err != nil {
		return Address{}, fmt.Errorf("%w: address %q", ErrFormat, text)
	}

	var t ReferenceType
	if m[1] != "" {
		t |= RefFixedColumn
	}
	if m[3] != "" {
		t |= RefFixedRow
	}
	return NewAddressType(col, row-1, t)
}

// RefKind is the result of ClassifyReference.
type RefKind int

const (
	KindInvalid RefKind = iota
	KindAddress
	KindRange
)

func (k RefKind) String() string {
	switch k {
	case KindAddress:
		return "address"
	case KindRange:
		return "range"
	}
	return "invalid"
}

// ClassifyReference tells whether text is a single address, a range or
// neither. It never fails.
func ClassifyReference(text string) RefKind {
	if _, err := ParseAddress(text); err == nil {
		return KindAddress
	}
	if _, err := ParseRange(text); err == nil {
		return KindRange
	}
	return KindInvalid
}
