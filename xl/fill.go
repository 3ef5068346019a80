package xl

// Fill is the pattern fill of a cell.
type Fill struct {
	Pattern    Option[PatternType]
	Foreground Option[Color]
	Background Option[Color]
}

// PatternType is the ST_PatternType value of a fill.
type PatternType string

const (
	PatternNone            PatternType = "none"
	PatternSolid           PatternType = "solid"
	PatternMediumGray      PatternType = "mediumGray"
	PatternDarkGray        PatternType = "darkGray"
	PatternLightGray       PatternType = "lightGray"
	PatternDarkHorizontal  PatternType = "darkHorizontal"
	PatternDarkVertical    PatternType = "darkVertical"
	PatternDarkDown        PatternType = "darkDown"
	PatternDarkUp          PatternType = "darkUp"
	PatternDarkGrid        PatternType = "darkGrid"
	PatternDarkTrellis     PatternType = "darkTrellis"
	PatternLightHorizontal PatternType = "lightHorizontal"
	PatternLightVertical   PatternType = "lightVertical"
	PatternLightDown       PatternType = "lightDown"
	PatternLightUp         PatternType = "lightUp"
	PatternLightGrid       PatternType = "lightGrid"
	PatternLightTrellis    PatternType = "lightTrellis"
	PatternGray125         PatternType = "gray125"
	PatternGray0625        PatternType = "gray0625"
)

// SolidFill returns a solid fill of the given color.
func SolidFill(c Color) Fill {
	return Fill{Pattern: Some(PatternSolid), Foreground: Some(c)}
}

type fillKey struct {
	pattern PatternType
	fg, bg  Color
}

func (f Fill) key() fillKey {
	def := PatternNone
	if f.Foreground.Has() {
		// a colored fill without an explicit pattern is solid
		def = PatternSolid
	}
	return fillKey{
		pattern: f.Pattern.ValueOrDefault(def),
		fg:      f.Foreground.Value().canonical(),
		bg:      f.Background.Value().canonical(),
	}
}

func (f Fill) Equal(o Fill) bool {
	return f.key() == o.key()
}

func (f Fill) IsDefault() bool {
	return f.key() == Fill{}.key()
}

// Append returns f with every explicitly set field of o applied on top.
func (f Fill) Append(o Fill) Fill {
	f.Pattern = overlay(f.Pattern, o.Pattern)
	f.Foreground = overlay(f.Foreground, o.Foreground)
	f.Background = overlay(f.Background, o.Background)
	return f
}
