package xl

// Font represents font formatting properties for cell content.
// These properties correspond to the OpenXML font element as defined in ECMA-376.
// Unset fields take the workbook default (Calibri 11, theme scheme).
type Font struct {
	Name      Option[string]
	Size      Option[float64] // points
	Family    Option[int]
	Charset   Option[int]
	Scheme    Option[FontScheme]
	Bold      Option[bool]
	Italic    Option[bool]
	Strike    Option[bool]
	Underline Option[UnderlineType]
	VertAlign Option[VertAlign]
	Color     Option[Color]
}

const (
	DefaultFontName   = "Calibri"
	DefaultFontSize   = 11.0
	DefaultFontFamily = 2
)

// UnderlineType represents the type of underline formatting.
type UnderlineType string

// Underline type constants as defined in ECMA-376 (ST_UnderlineValues).
const (
	UnderlineNone             UnderlineType = ""                 // No underline (default)
	UnderlineSingle           UnderlineType = "single"           // Single underline
	UnderlineDouble           UnderlineType = "double"           // Double underline
	UnderlineSingleAccounting UnderlineType = "singleAccounting" // Single accounting underline
	UnderlineDoubleAccounting UnderlineType = "doubleAccounting" // Double accounting underline
)

// VertAlign is the ST_VerticalAlignRun value of a font.
type VertAlign string

const (
	VertAlignNone        VertAlign = ""
	VertAlignSuperscript VertAlign = "superscript"
	VertAlignSubscript   VertAlign = "subscript"
)

// FontScheme binds a font to the theme's major or minor font.
type FontScheme string

const (
	SchemeNone  FontScheme = "none"
	SchemeMinor FontScheme = "minor"
	SchemeMajor FontScheme = "major"
)

// fontKey is the resolved content of a Font.
type fontKey struct {
	name      string
	size      float64
	family    int
	charset   int // -1 when not written
	scheme    FontScheme
	bold      bool
	italic    bool
	strike    bool
	underline UnderlineType
	vertAlign VertAlign
	color     Color
}

func (f Font) key() fontKey {
	scheme := SchemeNone
	if !f.Name.Has() {
		// the default font follows the theme
		scheme = SchemeMinor
	}
	return fontKey{
		name:      f.Name.ValueOrDefault(DefaultFontName),
		size:      f.Size.ValueOrDefault(DefaultFontSize),
		family:    f.Family.ValueOrDefault(DefaultFontFamily),
		charset:   f.Charset.ValueOrDefault(-1),
		scheme:    f.Scheme.ValueOrDefault(scheme),
		bold:      f.Bold.Value(),
		italic:    f.Italic.Value(),
		strike:    f.Strike.Value(),
		underline: f.Underline.Value(),
		vertAlign: f.VertAlign.Value(),
		color:     f.Color.Value().canonical(),
	}
}

func (f Font) Equal(o Font) bool {
	return f.key() == o.key()
}

// IsDefault returns true if the font resolves to the workbook default font.
func (f Font) IsDefault() bool {
	return f.key() == Font{}.key()
}

// Append returns f with every explicitly set field of o applied on top.
func (f Font) Append(o Font) Font {
	f.Name = overlay(f.Name, o.Name)
	f.Size = overlay(f.Size, o.Size)
	f.Family = overlay(f.Family, o.Family)
	f.Charset = overlay(f.Charset, o.Charset)
	f.Scheme = overlay(f.Scheme, o.Scheme)
	f.Bold = overlay(f.Bold, o.Bold)
	f.Italic = overlay(f.Italic, o.Italic)
	f.Strike = overlay(f.Strike, o.Strike)
	f.Underline = overlay(f.Underline, o.Underline)
	f.VertAlign = overlay(f.VertAlign, o.VertAlign)
	f.Color = overlay(f.Color, o.Color)
	return f
}
