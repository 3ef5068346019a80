package xl

import "fmt"

// HAlign is the horizontal alignment of cell content.
type HAlign string

const (
	HAlignGeneral          HAlign = "general"
	HAlignLeft             HAlign = "left"
	HAlignCenter           HAlign = "center"
	HAlignRight            HAlign = "right"
	HAlignFill             HAlign = "fill"
	HAlignJustify          HAlign = "justify"
	HAlignCenterContinuous HAlign = "centerContinuous"
	HAlignDistributed      HAlign = "distributed"
)

// VAlign is the vertical alignment of cell content.
type VAlign string

const (
	VAlignTop         VAlign = "top"
	VAlignCenter      VAlign = "center"
	VAlignBottom      VAlign = "bottom"
	VAlignJustify     VAlign = "justify"
	VAlignDistributed VAlign = "distributed"
)

// RotationVertical stacks characters vertically.
const RotationVertical = 255

// CellFormat holds alignment and protection of a cell.
type CellFormat struct {
	Horizontal   Option[HAlign]
	Vertical     Option[VAlign]
	TextRotation Option[int] // 0..90 up, 91..180 down, or RotationVertical
	Indent       Option[int]
	Wrap         Option[bool]
	Shrink       Option[bool]
	Locked       Option[bool] // true unless set
	Hidden       Option[bool]
}

type formatKey struct {
	horizontal HAlign
	vertical   VAlign
	rotation   int
	indent     int
	wrap       bool
	shrink     bool
	locked     bool
	hidden     bool
}

func (f CellFormat) key() formatKey {
	return formatKey{
		horizontal: f.Horizontal.ValueOrDefault(HAlignGeneral),
		vertical:   f.Vertical.ValueOrDefault(VAlignBottom),
		rotation:   f.TextRotation.Value(),
		indent:     f.Indent.Value(),
		wrap:       f.Wrap.Value(),
		shrink:     f.Shrink.Value(),
		locked:     f.Locked.ValueOrDefault(true),
		hidden:     f.Hidden.Value(),
	}
}

func (f CellFormat) Equal(o CellFormat) bool {
	return f.key() == o.key()
}

func (f CellFormat) IsDefault() bool {
	return f.key() == CellFormat{}.key()
}

func (k formatKey) hasAlignment() bool {
	d := CellFormat{}.key()
	return k.horizontal != d.horizontal || k.vertical != d.vertical ||
		k.rotation != d.rotation || k.indent != d.indent || k.wrap || k.shrink
}

func (k formatKey) hasProtection() bool {
	return !k.locked || k.hidden
}

// Append returns f with every explicitly set field of o applied on top.
func (f CellFormat) Append(o CellFormat) CellFormat {
	f.Horizontal = overlay(f.Horizontal, o.Horizontal)
	f.Vertical = overlay(f.Vertical, o.Vertical)
	f.TextRotation = overlay(f.TextRotation, o.TextRotation)
	f.Indent = overlay(f.Indent, o.Indent)
	f.Wrap = overlay(f.Wrap, o.Wrap)
	f.Shrink = overlay(f.Shrink, o.Shrink)
	f.Locked = overlay(f.Locked, o.Locked)
	f.Hidden = overlay(f.Hidden, o.Hidden)
	return f
}

func (f CellFormat) validate() error {
	if r := f.TextRotation.Value(); (r < 0 || r > 180) && r != RotationVertical {
		return fmt.Errorf("%w: text rotation %d", ErrStyle, r)
	}
	if i := f.Indent.Value(); i < 0 || i > 250 {
		return fmt.Errorf("%w: indent %d", ErrStyle, i)
	}
	return nil
}
