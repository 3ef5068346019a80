package xl

// Pre-built styles. Each call returns a fresh, unregistered Style.

func StyleBold() *Style {
	return &Style{Font: Font{Bold: Some(true)}}
}

func StyleItalic() *Style {
	return &Style{Font: Font{Italic: Some(true)}}
}

func StyleUnderline() *Style {
	return &Style{Font: Font{Underline: Some(UnderlineSingle)}}
}

func StyleStrike() *Style {
	return &Style{Font: Font{Strike: Some(true)}}
}

func StyleFill(c Color) *Style {
	return &Style{Fill: SolidFill(c)}
}

func StyleFrame(b BorderStyle) *Style {
	return &Style{Border: Frame(b, ColorBlack)}
}

func StyleCenter() *Style {
	return &Style{Format: CellFormat{
		Horizontal: Some(HAlignCenter),
		Vertical:   Some(VAlignCenter),
	}}
}

func StyleWrap() *Style {
	return &Style{Format: CellFormat{Wrap: Some(true)}}
}

func StyleDate() *Style {
	return &Style{NumFmt: BuiltinFormat(NumFmtDate)}
}

func StyleTime() *Style {
	return &Style{NumFmt: BuiltinFormat(NumFmtTime)}
}

func StyleDateTime() *Style {
	return &Style{NumFmt: BuiltinFormat(NumFmtDateTime)}
}
