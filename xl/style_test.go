package xl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boldRed() *Style {
	s := NewStyle()
	s.Font.Bold = Some(true)
	s.Fill = SolidFill(ColorRed)
	return s
}

func TestStyleEqual(t *testing.T) {
	a, b := boldRed(), boldRed()
	require.NotSame(t, a, b)
	assert.True(t, a.Equal(b))

	b.Font.Italic = Some(true)
	assert.False(t, a.Equal(b))

	var none *Style
	assert.True(t, none.Equal(nil))
	assert.False(t, a.Equal(nil))
}

func TestStyleEqualResolvesDefaults(t *testing.T) {
	// unset and explicitly default fields describe the same formatting
	a := NewStyle()
	b := NewStyle()
	b.Font.Bold = Some(false)
	b.Font.Size = Some(DefaultFontSize)
	b.Format.Locked = Some(true)
	b.Border.Left.Style = Some(BorderNone)
	assert.True(t, a.Equal(b))
	assert.True(t, b.IsDefault())

	// a colored fill without a pattern is solid
	c := NewStyle()
	c.Fill.Foreground = Some(ColorRed)
	assert.True(t, c.Equal(boldRed().Append(&Style{Font: Font{Bold: Some(false)}})))
}

func TestStyleCopyIsIndependent(t *testing.T) {
	a := boldRed()
	b := a.Copy()
	b.Font.Bold = Some(false)
	b.Fill.Foreground = Some(ColorBlue)

	assert.True(t, a.Font.Bold.Value())
	assert.Equal(t, ColorRed, a.Fill.Foreground.Value())
	assert.Nil(t, (*Style)(nil).Copy())
}

func TestStyleAppendOverlaysOnlySetFields(t *testing.T) {
	base := NewStyle()
	base.Font.Bold = Some(true)
	base.Font.Name = Some("Arial")
	base.Format.Horizontal = Some(HAlignCenter)

	overlay := NewStyle()
	overlay.Font.Bold = Some(false) // explicit false must win
	overlay.Font.Italic = Some(true)
	overlay.Border.Bottom.Style = Some(BorderThin)

	got := base.Append(overlay)
	assert.False(t, got.Font.Bold.Value())
	assert.True(t, got.Font.Bold.Has())
	assert.True(t, got.Font.Italic.Value())
	assert.Equal(t, "Arial", got.Font.Name.Value())
	assert.Equal(t, HAlignCenter, got.Format.Horizontal.Value())
	assert.Equal(t, BorderThin, got.Border.Bottom.Style.Value())
	assert.False(t, got.Border.Top.Style.Has())

	// receiver is untouched
	assert.True(t, base.Font.Bold.Value())
	assert.False(t, base.Font.Italic.Has())
}

func TestStyleAppendNil(t *testing.T) {
	a := boldRed()
	assert.True(t, a.Append(nil).Equal(a))
	assert.True(t, (*Style)(nil).Append(a).Equal(a))
}

func TestNumberFormatAppend(t *testing.T) {
	s := &Style{NumFmt: CustomFormat("0.000")}
	got := s.Append(&Style{NumFmt: BuiltinFormat(NumFmtPercent)})
	assert.True(t, got.NumFmt.Equal(BuiltinFormat(NumFmtPercent)))

	got = s.Append(&Style{Font: Font{Bold: Some(true)}})
	assert.Equal(t, "0.000", got.NumFmt.Code.Value())
}

func TestStyleValidate(t *testing.T) {
	tests := []struct {
		name  string
		style *Style
	}{
		{"nil", nil},
		{"rotation", &Style{Format: CellFormat{TextRotation: Some(200)}}},
		{"indent", &Style{Format: CellFormat{Indent: Some(-1)}}},
		{"font size", &Style{Font: Font{Size: Some(0.0)}}},
		{"color", &Style{Font: Font{Color: Some(Color("red"))}}},
		{"custom id", &Style{NumFmt: BuiltinFormat(200)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.style.Validate(), ErrStyle)
		})
	}

	ok := &Style{Format: CellFormat{TextRotation: Some(RotationVertical)}}
	assert.NoError(t, ok.Validate())
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#ff0000")
	require.NoError(t, err)
	assert.Equal(t, ColorRed, c)

	c, err = ParseColor("80112233")
	require.NoError(t, err)
	assert.Equal(t, Color("80112233"), c)

	assert.Equal(t, Color("FF0A0B0C"), RGB(10, 11, 12))

	for _, bad := range []string{"", "#fff", "GG0000", "#12345"} {
		_, err := ParseColor(bad)
		assert.ErrorIs(t, err, ErrFormat, bad)
	}
}

func TestSubComponentDefaults(t *testing.T) {
	assert.True(t, Font{}.IsDefault())
	assert.False(t, Font{Name: Some("Arial")}.IsDefault())
	assert.True(t, Fill{Pattern: Some(PatternNone)}.IsDefault())
	assert.True(t, Border{}.IsDefault())
	assert.False(t, Frame(BorderThin, ColorBlack).IsDefault())
	assert.True(t, CellFormat{Vertical: Some(VAlignBottom)}.IsDefault())
	assert.True(t, NumberFormat{ID: Some(NumFmtGeneral)}.IsDefault())
}
