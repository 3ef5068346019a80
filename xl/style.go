package xl

import "fmt"

// Style is the complete formatting of a cell. Two styles are equal when
// their resolved content is equal; pointer identity does not matter.
//
// A Style is mutable while it is being built. Once it has been handed to a
// StyleRepository, the repository works on its own canonical copy, so later
// changes to the original never reach cells that are already styled.
type Style struct {
	Font   Font
	Fill   Fill
	Border Border
	Format CellFormat
	NumFmt NumberFormat
}

// styleKey is the resolved content of a Style. It drives both Equal and
// the repository lookup.
type styleKey struct {
	font   fontKey
	fill   fillKey
	border borderKey
	format formatKey
	numFmt numFmtKey
}

func NewStyle() *Style {
	return &Style{}
}

func (s *Style) key() styleKey {
	return styleKey{
		font:   s.Font.key(),
		fill:   s.Fill.key(),
		border: s.Border.key(),
		format: s.Format.key(),
		numFmt: s.NumFmt.key(),
	}
}

// Equal reports whether s and o describe the same formatting. Two nil
// styles are equal.
func (s *Style) Equal(o *Style) bool {
	if s == nil || o == nil {
		return s == o
	}
	return s == o || s.key() == o.key()
}

// Copy returns an independent copy of s.
func (s *Style) Copy() *Style {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}

// Append returns a new style: a copy of s with every field that o sets
// explicitly laid over it. Fields o leaves unset keep the value from s.
func (s *Style) Append(o *Style) *Style {
	c := s.Copy()
	if c == nil {
		c = NewStyle()
	}
	if o == nil {
		return c
	}
	c.Font = c.Font.Append(o.Font)
	c.Fill = c.Fill.Append(o.Fill)
	c.Border = c.Border.Append(o.Border)
	c.Format = c.Format.Append(o.Format)
	c.NumFmt = c.NumFmt.Append(o.NumFmt)
	return c
}

// IsDefault reports whether s renders as an unformatted cell.
func (s *Style) IsDefault() bool {
	return s.key() == (&Style{}).key()
}

// Validate checks field values that cannot be written to a styles part.
func (s *Style) Validate() error {
	if s == nil {
		return fmt.Errorf("%w: nil style", ErrStyle)
	}
	if err := s.Format.validate(); err != nil {
		return err
	}
	if err := s.NumFmt.validate(); err != nil {
		return err
	}
	if sz := s.Font.Size.ValueOrDefault(DefaultFontSize); sz < 1 || sz > 409 {
		return fmt.Errorf("%w: font size %g", ErrStyle, sz)
	}
	for _, c := range s.colors() {
		if c != "" && !c.valid() {
			return fmt.Errorf("%w: color %q", ErrStyle, c)
		}
	}
	return nil
}

func (s *Style) colors() []Color {
	b := &s.Border
	return []Color{
		s.Font.Color.Value(),
		s.Fill.Foreground.Value(),
		s.Fill.Background.Value(),
		b.Left.Color.Value(),
		b.Right.Color.Value(),
		b.Top.Color.Value(),
		b.Bottom.Color.Value(),
		b.Diagonal.Color.Value(),
	}
}
