package xl

// BorderStyle is the ST_BorderStyle line style of one border edge.
type BorderStyle string

const (
	BorderNone             BorderStyle = "none"
	BorderThin             BorderStyle = "thin"
	BorderMedium           BorderStyle = "medium"
	BorderDashed           BorderStyle = "dashed"
	BorderDotted           BorderStyle = "dotted"
	BorderThick            BorderStyle = "thick"
	BorderDouble           BorderStyle = "double"
	BorderHair             BorderStyle = "hair"
	BorderMediumDashed     BorderStyle = "mediumDashed"
	BorderDashDot          BorderStyle = "dashDot"
	BorderMediumDashDot    BorderStyle = "mediumDashDot"
	BorderDashDotDot       BorderStyle = "dashDotDot"
	BorderMediumDashDotDot BorderStyle = "mediumDashDotDot"
	BorderSlantDashDot     BorderStyle = "slantDashDot"
)

// BorderEdge is one side of a cell border.
type BorderEdge struct {
	Style Option[BorderStyle]
	Color Option[Color]
}

// Border is the set of cell border edges.
type Border struct {
	Left         BorderEdge
	Right        BorderEdge
	Top          BorderEdge
	Bottom       BorderEdge
	Diagonal     BorderEdge
	DiagonalUp   Option[bool]
	DiagonalDown Option[bool]
}

// Frame returns a border with the same line on all four outer edges.
func Frame(s BorderStyle, c Color) Border {
	e := BorderEdge{Style: Some(s), Color: Some(c)}
	return Border{Left: e, Right: e, Top: e, Bottom: e}
}

type edgeKey struct {
	style BorderStyle
	color Color
}

type borderKey struct {
	left, right, top, bottom, diagonal edgeKey
	diagonalUp, diagonalDown           bool
}

func (e BorderEdge) key() edgeKey {
	return edgeKey{style: e.Style.ValueOrDefault(BorderNone), color: e.Color.Value().canonical()}
}

func (e BorderEdge) append(o BorderEdge) BorderEdge {
	e.Style = overlay(e.Style, o.Style)
	e.Color = overlay(e.Color, o.Color)
	return e
}

func (b Border) key() borderKey {
	return borderKey{
		left:         b.Left.key(),
		right:        b.Right.key(),
		top:          b.Top.key(),
		bottom:       b.Bottom.key(),
		diagonal:     b.Diagonal.key(),
		diagonalUp:   b.DiagonalUp.Value(),
		diagonalDown: b.DiagonalDown.Value(),
	}
}

func (b Border) Equal(o Border) bool {
	return b.key() == o.key()
}

func (b Border) IsDefault() bool {
	return b.key() == Border{}.key()
}

// Append returns b with every explicitly set field of o applied on top.
func (b Border) Append(o Border) Border {
	b.Left = b.Left.append(o.Left)
	b.Right = b.Right.append(o.Right)
	b.Top = b.Top.append(o.Top)
	b.Bottom = b.Bottom.append(o.Bottom)
	b.Diagonal = b.Diagonal.append(o.Diagonal)
	b.DiagonalUp = overlay(b.DiagonalUp, o.DiagonalUp)
	b.DiagonalDown = overlay(b.DiagonalDown, o.DiagonalDown)
	return b
}
