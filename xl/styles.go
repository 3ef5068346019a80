package xl

import (
	"bytes"
	"strconv"

	"github.com/adnsv/srw/xml"
)

// styleTable flattens canonical styles into the indexed record lists of a
// styles part. Sub-records are shared between styles with equal content.
type styleTable struct {
	numFmts map[string]int // custom format code -> id
	codes   []string

	fonts   []fontKey
	fontIdx map[fontKey]int

	fills   []fillKey
	fillIdx map[fillKey]int

	borders   []borderKey
	borderIdx map[borderKey]int

	xfs []xfRecord
}

type xfRecord struct {
	numFmt  int
	font    int
	fill    int
	border  int
	format  formatKey
	applyNF bool
}

func newStyleTable() *styleTable {
	t := &styleTable{
		numFmts:   map[string]int{},
		fontIdx:   map[fontKey]int{},
		fillIdx:   map[fillKey]int{},
		borderIdx: map[borderKey]int{},
	}
	// fills 0 and 1 are reserved by spreadsheet applications
	t.fill(Fill{}.key())
	t.fill(fillKey{pattern: PatternGray125})
	t.font(Font{}.key())
	t.border(Border{}.key())
	return t
}

func (t *styleTable) font(k fontKey) int {
	if i, ok := t.fontIdx[k]; ok {
		return i
	}
	t.fontIdx[k] = len(t.fonts)
	t.fonts = append(t.fonts, k)
	return len(t.fonts) - 1
}

func (t *styleTable) fill(k fillKey) int {
	if i, ok := t.fillIdx[k]; ok {
		return i
	}
	t.fillIdx[k] = len(t.fills)
	t.fills = append(t.fills, k)
	return len(t.fills) - 1
}

func (t *styleTable) border(k borderKey) int {
	if i, ok := t.borderIdx[k]; ok {
		return i
	}
	t.borderIdx[k] = len(t.borders)
	t.borders = append(t.borders, k)
	return len(t.borders) - 1
}

func (t *styleTable) numFmt(k numFmtKey) int {
	if k.id >= 0 {
		return k.id
	}
	if id, ok := t.numFmts[k.code]; ok {
		return id
	}
	id := firstCustomNumFmt + len(t.codes)
	t.numFmts[k.code] = id
	t.codes = append(t.codes, k.code)
	return id
}

func (t *styleTable) add(s *Style) {
	k := s.key()
	t.xfs = append(t.xfs, xfRecord{
		numFmt:  t.numFmt(k.numFmt),
		font:    t.font(k.font),
		fill:    t.fill(k.fill),
		border:  t.border(k.border),
		format:  k.format,
		applyNF: k.numFmt != NumberFormat{}.key(),
	})
}

func buildStyleTable(repo *StyleRepository) *styleTable {
	t := newStyleTable()
	for _, s := range repo.Styles() {
		t.add(s)
	}
	return t
}

func (w *Writer) writeStyles(repo *StyleRepository) error {
	_, rid := w.nextWorkbookID()

	relpath := "styles.xml"
	abspath := "/xl/" + relpath

	w.PartContentTypes[abspath] = "application/vnd.openxmlformats-officedocument.spreadsheetml.styles+xml"
	w.WorkbookRels[rid] = RelInfo{
		Type:   "http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles",
		Target: relpath,
	}

	t := buildStyleTable(repo)

	bb := bytes.Buffer{}
	x := xml.NewWriter(&bb, xml.WriterConfig{Indent: xml.Indent2Spaces})
	x.XmlStandaloneDecl()

	x.OTag("styleSheet")
	x.Attr("xmlns", "http://schemas.openxmlformats.org/spreadsheetml/2006/main")

	if len(t.codes) > 0 {
		x.OTag("+numFmts").Attr("count", len(t.codes))
		for i, code := range t.codes {
			x.OTag("+numFmt")
			x.Attr("numFmtId", firstCustomNumFmt+i)
			x.Attr("formatCode", code)
			x.CTag()
		}
		x.CTag()
	}

	x.OTag("+fonts").Attr("count", len(t.fonts))
	for _, f := range t.fonts {
		x.OTag("+font")
		if f.bold {
			x.OTag("+b").CTag()
		}
		if f.italic {
			x.OTag("+i").CTag()
		}
		if f.strike {
			x.OTag("+strike").CTag()
		}
		if f.underline != UnderlineNone {
			x.OTag("+u")
			if f.underline != UnderlineSingle {
				x.Attr("val", string(f.underline))
			}
			x.CTag()
		}
		if f.vertAlign != VertAlignNone {
			x.OTag("+vertAlign").Attr("val", string(f.vertAlign)).CTag()
		}
		x.OTag("+sz").Attr("val", strconv.FormatFloat(f.size, 'f', -1, 64)).CTag()
		if f.color != "" {
			x.OTag("+color").Attr("rgb", string(f.color)).CTag()
		} else {
			x.OTag("+color").Attr("theme", 1).CTag()
		}
		x.OTag("+name").Attr("val", f.name).CTag()
		x.OTag("+family").Attr("val", f.family).CTag()
		if f.charset >= 0 {
			x.OTag("+charset").Attr("val", f.charset).CTag()
		}
		if f.scheme != SchemeNone {
			x.OTag("+scheme").Attr("val", string(f.scheme)).CTag()
		}
		x.CTag() // font
	}
	x.CTag() // fonts

	x.OTag("+fills").Attr("count", len(t.fills))
	for _, f := range t.fills {
		x.OTag("+fill")
		x.OTag("+patternFill").Attr("patternType", string(f.pattern))
		if f.fg != "" {
			x.OTag("+fgColor").Attr("rgb", string(f.fg)).CTag()
		}
		if f.bg != "" {
			x.OTag("+bgColor").Attr("rgb", string(f.bg)).CTag()
		} else if f.pattern == PatternSolid {
			x.OTag("+bgColor").Attr("indexed", 64).CTag()
		}
		x.CTag() // patternFill
		x.CTag() // fill
	}
	x.CTag() // fills

	// edge completes an open edge element
	edge := func(e edgeKey) {
		if e.style != BorderNone {
			x.Attr("style", string(e.style))
			if e.color != "" {
				x.OTag("+color").Attr("rgb", string(e.color)).CTag()
			} else {
				x.OTag("+color").Attr("auto", 1).CTag()
			}
		}
		x.CTag()
	}

	x.OTag("+borders").Attr("count", len(t.borders))
	for _, b := range t.borders {
		x.OTag("+border")
		if b.diagonalUp {
			x.Attr("diagonalUp", 1)
		}
		if b.diagonalDown {
			x.Attr("diagonalDown", 1)
		}
		x.OTag("+left")
		edge(b.left)
		x.OTag("+right")
		edge(b.right)
		x.OTag("+top")
		edge(b.top)
		x.OTag("+bottom")
		edge(b.bottom)
		x.OTag("+diagonal")
		edge(b.diagonal)
		x.CTag() // border
	}
	x.CTag() // borders

	x.OTag("+cellStyleXfs").Attr("count", 1)
	x.OTag("+xf").Attr("numFmtId", 0).Attr("fontId", 0).Attr("fillId", 0).Attr("borderId", 0).CTag()
	x.CTag()

	x.OTag("+cellXfs").Attr("count", len(t.xfs))
	for _, xf := range t.xfs {
		x.OTag("+xf")
		x.Attr("numFmtId", xf.numFmt)
		x.Attr("fontId", xf.font)
		x.Attr("fillId", xf.fill)
		x.Attr("borderId", xf.border)
		x.Attr("xfId", 0)
		if xf.applyNF {
			x.Attr("applyNumberFormat", 1)
		}
		if xf.font > 0 {
			x.Attr("applyFont", 1)
		}
		if xf.fill > 0 {
			x.Attr("applyFill", 1)
		}
		if xf.border > 0 {
			x.Attr("applyBorder", 1)
		}
		f := xf.format
		if f.hasAlignment() {
			x.Attr("applyAlignment", 1)
		}
		if f.hasProtection() {
			x.Attr("applyProtection", 1)
		}
		if f.hasAlignment() {
			x.OTag("+alignment")
			if f.horizontal != HAlignGeneral {
				x.Attr("horizontal", string(f.horizontal))
			}
			if f.vertical != VAlignBottom {
				x.Attr("vertical", string(f.vertical))
			}
			if f.rotation != 0 {
				x.Attr("textRotation", f.rotation)
			}
			if f.wrap {
				x.Attr("wrapText", 1)
			}
			if f.indent > 0 {
				x.Attr("indent", f.indent)
			}
			if f.shrink {
				x.Attr("shrinkToFit", 1)
			}
			x.CTag()
		}
		if f.hasProtection() {
			x.OTag("+protection")
			if !f.locked {
				x.Attr("locked", 0)
			}
			if f.hidden {
				x.Attr("hidden", 1)
			}
			x.CTag()
		}
		x.CTag() // xf
	}
	x.CTag() // cellXfs

	x.OTag("+cellStyles").Attr("count", 1)
	x.OTag("+cellStyle").Attr("name", "Normal").Attr("xfId", 0).Attr("builtinId", 0).CTag()
	x.CTag()

	x.CTag() // styleSheet

	return w.out.WriteBlob(abspath, bb.Bytes())
}
