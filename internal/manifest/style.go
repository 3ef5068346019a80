package manifest

import (
	"fmt"
	"slices"

	"github.com/adnsv/go-xlbuilder/xl"
)

var (
	underlines = []xl.UnderlineType{xl.UnderlineSingle, xl.UnderlineDouble, xl.UnderlineSingleAccounting, xl.UnderlineDoubleAccounting}
	halign     = []xl.HAlign{xl.HAlignGeneral, xl.HAlignLeft, xl.HAlignCenter, xl.HAlignRight, xl.HAlignFill, xl.HAlignJustify, xl.HAlignCenterContinuous, xl.HAlignDistributed}
	valign     = []xl.VAlign{xl.VAlignTop, xl.VAlignCenter, xl.VAlignBottom, xl.VAlignJustify, xl.VAlignDistributed}
	borders    = []xl.BorderStyle{xl.BorderNone, xl.BorderThin, xl.BorderMedium, xl.BorderDashed, xl.BorderDotted, xl.BorderThick, xl.BorderDouble, xl.BorderHair, xl.BorderMediumDashed, xl.BorderDashDot, xl.BorderMediumDashDot, xl.BorderDashDotDot, xl.BorderMediumDashDotDot, xl.BorderSlantDashDot}
	patterns   = []xl.PatternType{xl.PatternNone, xl.PatternSolid, xl.PatternMediumGray, xl.PatternDarkGray, xl.PatternLightGray, xl.PatternDarkHorizontal, xl.PatternDarkVertical, xl.PatternDarkDown, xl.PatternDarkUp, xl.PatternDarkGrid, xl.PatternDarkTrellis, xl.PatternLightHorizontal, xl.PatternLightVertical, xl.PatternLightDown, xl.PatternLightUp, xl.PatternLightGrid, xl.PatternLightTrellis, xl.PatternGray125, xl.PatternGray0625}
)

// choice maps a manifest keyword onto one of the allowed values. An empty
// keyword leaves the option unset.
func choice[T ~string](field, v string, allowed []T) (xl.Option[T], error) {
	if v == "" {
		return xl.None[T](), nil
	}
	if !slices.Contains(allowed, T(v)) {
		return xl.None[T](), fmt.Errorf("%w: %s %q", ErrUnknownOption, field, v)
	}
	return xl.Some(T(v)), nil
}

func optional[T comparable](p *T) xl.Option[T] {
	if p == nil {
		return xl.None[T]()
	}
	return xl.Some(*p)
}

func color(field, v string) (xl.Option[xl.Color], error) {
	if v == "" {
		return xl.None[xl.Color](), nil
	}
	c, err := xl.ParseColor(v)
	if err != nil {
		return xl.None[xl.Color](), fmt.Errorf("%s: %w", field, err)
	}
	return xl.Some(c), nil
}

// own converts the fields set on s, ignoring Base.
func (s StyleSpec) own() (*xl.Style, error) {
	st := xl.NewStyle()
	var err error

	st.Font.Name = optional(nilIfEmpty(s.Font))
	st.Font.Size = optional(s.Size)
	st.Font.Bold = optional(s.Bold)
	st.Font.Italic = optional(s.Italic)
	st.Font.Strike = optional(s.Strike)
	if s.Underline == "none" {
		st.Font.Underline = xl.Some(xl.UnderlineNone)
	} else if st.Font.Underline, err = choice("underline", s.Underline, underlines); err != nil {
		return nil, err
	}
	if st.Font.Color, err = color("color", s.Color); err != nil {
		return nil, err
	}

	if st.Fill.Foreground, err = color("fill", s.Fill); err != nil {
		return nil, err
	}
	if st.Fill.Pattern, err = choice("pattern", s.Pattern, patterns); err != nil {
		return nil, err
	}

	if s.Border != "" {
		line, err := choice("border", s.Border, borders)
		if err != nil {
			return nil, err
		}
		c := xl.ColorBlack
		if s.BorderColor != "" {
			if c, err = xl.ParseColor(s.BorderColor); err != nil {
				return nil, fmt.Errorf("border_color: %w", err)
			}
		}
		st.Border = xl.Frame(line.Value(), c)
	} else if s.BorderColor != "" {
		return nil, fmt.Errorf("%w: border_color without border", ErrManifest)
	}

	if st.Format.Horizontal, err = choice("align", s.Align, halign); err != nil {
		return nil, err
	}
	if st.Format.Vertical, err = choice("valign", s.VAlign, valign); err != nil {
		return nil, err
	}
	st.Format.Wrap = optional(s.Wrap)
	st.Format.Shrink = optional(s.Shrink)
	st.Format.TextRotation = optional(s.Rotation)
	st.Format.Indent = optional(s.Indent)
	st.Format.Locked = optional(s.Locked)
	st.Format.Hidden = optional(s.Hidden)

	switch {
	case s.Format != "":
		st.NumFmt = xl.CustomFormat(s.Format)
	case s.NumFmt != nil:
		st.NumFmt = xl.BuiltinFormat(*s.NumFmt)
	}
	return st, nil
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// styleSet resolves named styles on demand, following Base chains.
type styleSet struct {
	specs    map[string]StyleSpec
	resolved map[string]*xl.Style
	visiting map[string]bool
}

func newStyleSet(specs map[string]StyleSpec) *styleSet {
	return &styleSet{
		specs:    specs,
		resolved: map[string]*xl.Style{},
		visiting: map[string]bool{},
	}
}

func (ss *styleSet) get(name string) (*xl.Style, error) {
	if st, ok := ss.resolved[name]; ok {
		return st, nil
	}
	spec, ok := ss.specs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStyle, name)
	}
	if ss.visiting[name] {
		return nil, fmt.Errorf("%w: %q", ErrStyleCycle, name)
	}
	ss.visiting[name] = true
	defer delete(ss.visiting, name)

	st, err := spec.own()
	if err != nil {
		return nil, fmt.Errorf("style %q: %w", name, err)
	}
	if spec.Base != "" {
		base, err := ss.get(spec.Base)
		if err != nil {
			return nil, fmt.Errorf("style %q: %w", name, err)
		}
		st = base.Append(st)
	}
	if err := st.Validate(); err != nil {
		return nil, fmt.Errorf("style %q: %w", name, err)
	}
	ss.resolved[name] = st
	return st, nil
}
