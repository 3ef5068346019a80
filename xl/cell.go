package xl

import "fmt"

// Cell is a single worksheet cell: a value, the type it is written as, its
// address and an optional canonical style.
type Cell struct {
	address Address
	value   Value
	typ     CellType // overrides value.Type() when forced is set
	forced  bool
	style   *Style
	picture *PictureInfo
}

// CellType is the type of cell value type.
type CellType int

// Cell value types enumeration.
const (
	CellTypeUnset CellType = iota
	CellTypeEmpty
	CellTypeBool
	CellTypeDate
	CellTypeTime
	CellTypeError
	CellTypeFormula
	CellTypeInlineString
	CellTypeNumber
	CellTypeSharedString

	// internal
	cellTypePicture
)

var cellTypeNames = [...]string{
	CellTypeUnset:        "unset",
	CellTypeEmpty:        "empty",
	CellTypeBool:         "bool",
	CellTypeDate:         "date",
	CellTypeTime:         "time",
	CellTypeError:        "error",
	CellTypeFormula:      "formula",
	CellTypeInlineString: "inline-string",
	CellTypeNumber:       "number",
	CellTypeSharedString: "string",
	cellTypePicture:      "picture",
}

func (t CellType) String() string {
	if t >= 0 && int(t) < len(cellTypeNames) {
		return cellTypeNames[t]
	}
	return fmt.Sprintf("CellType(%d)", int(t))
}

// NewCell returns a detached cell. Worksheets create their cells through
// Sheet.CellAt and Row.AddCell instead.
func NewCell(v Value, a Address) *Cell {
	return &Cell{address: a.Plain(), value: v}
}

func (c *Cell) Address() Address { return c.address }
func (c *Cell) Value() Value     { return c.value }

// Type is the resolved cell type: the forced type if any, otherwise the
// type of the value.
func (c *Cell) Type() CellType {
	if c.forced {
		return c.typ
	}
	if c.picture != nil {
		return cellTypePicture
	}
	return c.value.Type()
}

// SetValue replaces the value and drops a forced type.
func (c *Cell) SetValue(v Value) {
	c.value = v
	c.forced = false
	c.picture = nil
}

// ForceType writes a string value as another textual type: a formula or an
// inline string. Other conversions are rejected.
func (c *Cell) ForceType(t CellType) error {
	if c.value.kind != KindString {
		return fmt.Errorf("%w: cannot force %s value to %s", ErrValue, c.value.Type(), t)
	}
	switch t {
	case CellTypeFormula, CellTypeInlineString, CellTypeSharedString:
		c.typ = t
		c.forced = true
		return nil
	}
	return fmt.Errorf("%w: cannot force string value to %s", ErrValue, t)
}

func (c *Cell) SetBool(v bool) {
	c.SetValue(BoolValue(v))
}

func (c *Cell) SetInt(v int64) {
	c.SetValue(IntValue(v))
}

func (c *Cell) SetFloat(v float64) {
	c.SetValue(NumberValue(v))
}

func (c *Cell) SetStr(v string) {
	c.SetValue(StringValue(v))
}

func (c *Cell) SetFormula(f string) {
	c.SetValue(FormulaValue(f))
}

func (c *Cell) SetPicture(p *PictureInfo) {
	c.SetValue(Value{})
	c.picture = p
}

// Style returns the canonical style of the cell, or nil for an unstyled
// cell.
func (c *Cell) Style() *Style { return c.style }

// SetStyle registers s with repo and points the cell at the canonical
// result. The returned style is shared with every other cell of equal
// formatting and must not be modified; use Copy to derive a new one.
func (c *Cell) SetStyle(repo *StyleRepository, s *Style) (*Style, error) {
	if repo == nil {
		return nil, fmt.Errorf("%w: no style repository", ErrStyle)
	}
	if s == nil {
		return nil, fmt.Errorf("%w: nil style for cell %s", ErrStyle, c.address)
	}
	canonical, err := repo.Add(s)
	if err != nil {
		return nil, fmt.Errorf("cell %s: %w", c.address, err)
	}
	c.style = canonical
	return canonical, nil
}

// AppendStyle merges the explicitly set fields of s into the current
// style of the cell.
func (c *Cell) AppendStyle(repo *StyleRepository, s *Style) (*Style, error) {
	if s == nil {
		return nil, fmt.Errorf("%w: nil style for cell %s", ErrStyle, c.address)
	}
	return c.SetStyle(repo, c.style.Append(s))
}

func (c *Cell) ClearStyle() {
	c.style = nil
}

// writable reports whether the cell produces a <c> element.
func (c *Cell) writable() bool {
	return c.style != nil || c.picture != nil ||
		(c.value.kind != KindUnset && c.value.kind != KindEmpty)
}
