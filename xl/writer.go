package xl

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/adnsv/srw/xml"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/maps"
)

type Writer struct {
	out            Storage
	lastGlobalId   int
	lastWorkbookId int
	lastRichDataId int

	GlobalRels          map[string]RelInfo // maps id to absolute path
	WorkbookRels        map[string]RelInfo // maps id to absolute paths
	DefaultContentTypes map[string]string  // maps path extension to content-type
	PartContentTypes    map[string]string  // maps path partname to content-type

	sharedStrings   []string
	sharedStringMap map[string]int // 0-based index into sharedStrings

	media    []*MediaInfo
	mediaMap map[string]*MediaInfo // maps media name to media info

	RichDataRels map[string]RelInfo
}

type RelInfo struct {
	Type   string // url to schema type
	Target string // relative path
}

type MediaInfo struct {
	Name string // hashed blob + extension
	Blob []byte
	IId  int
	RId  string
}

func NewWriter(s Storage) *Writer {
	w := &Writer{
		out:                 s,
		GlobalRels:          map[string]RelInfo{},
		WorkbookRels:        map[string]RelInfo{},
		DefaultContentTypes: map[string]string{},
		PartContentTypes:    map[string]string{},

		sharedStringMap: map[string]int{},

		mediaMap: map[string]*MediaInfo{},

		RichDataRels: map[string]RelInfo{},
	}

	w.DefaultContentTypes["xml"] = "application/xml"
	w.DefaultContentTypes["rels"] = "application/vnd.openxmlformats-package.relationships+xml"

	return w
}

func (w *Writer) SharedString(s string) int {
	if i, ok := w.sharedStringMap[s]; ok {
		return i
	}
	i := len(w.sharedStrings)
	w.sharedStrings = append(w.sharedStrings, s)
	w.sharedStringMap[s] = i
	return i
}

func (w *Writer) nextGlobalID() (int, string) {
	w.lastGlobalId++
	return w.lastGlobalId, fmt.Sprintf("rId%d", w.lastGlobalId)
}
func (w *Writer) nextWorkbookID() (int, string) {
	w.lastWorkbookId++
	return w.lastWorkbookId, fmt.Sprintf("rId%d", w.lastWorkbookId)
}
func (w *Writer) nextRichDataID() (int, string) {
	w.lastRichDataId++
	return w.lastRichDataId, fmt.Sprintf("rId%d", w.lastRichDataId)
}

// Write emits every part of wb to the storage. A Writer is good for one
// workbook only.
func (w *Writer) Write(wb *Workbook) error {
	var err error

	if len(wb.Sheets) == 0 {
		return errors.New("workbook has no sheets")
	}

	err = w.writeWorkbook(wb)
	if err != nil {
		return err
	}

	if len(w.media) > 0 {

		err = w.writeMedia()
		if err != nil {
			return err
		}

		err = w.writeRichValueRel()
		if err != nil {
			return err
		}

		err = w.writeRels("/xl/richData/_rels/richValueRel.xml.rels", w.RichDataRels)
		if err != nil {
			return err
		}

		err = w.writeRichValueStructure()
		if err != nil {
			return err
		}

		err = w.writeRichValueData()
		if err != nil {
			return err
		}

		err = w.writeMetadata()
		if err != nil {
			return err
		}
	}

	err = w.writeCoreProperties()
	if err != nil {
		return err
	}
	err = w.writeExtendedProperties(wb.AppName)
	if err != nil {
		return err
	}

	if len(w.sharedStrings) > 0 {
		err = w.writeSharedStrings()
		if err != nil {
			return err
		}
	}

	err = w.writeRels("/xl/_rels/workbook.xml.rels", w.WorkbookRels)
	if err != nil {
		return err
	}

	err = w.writeRels("/_rels/.rels", w.GlobalRels)
	if err != nil {
		return err
	}

	err = w.writeContentTypes()
	if err != nil {
		return err
	}

	return nil
}

func (w *Writer) writeCoreProperties() error {
	_, rid := w.nextGlobalID()

	relpath := "docProps/core.xml"
	abspath := "/" + relpath

	w.PartContentTypes[abspath] = "application/vnd.openxmlformats-package.core-properties+xml"
	w.GlobalRels[rid] = RelInfo{
		Type:   "http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties",
		Target: relpath,
	}

	bb := bytes.Buffer{}
	x := xml.NewWriter(&bb, xml.WriterConfig{Indent: xml.Indent2Spaces})

	x.XmlStandaloneDecl()
	x.OTag("cp:coreProperties")
	x.Attr("xmlns:cp", "http://schemas.openxmlformats.org/package/2006/metadata/core-properties")
	x.Attr("xmlns:dc", "http://purl.org/dc/elements/1.1/")
	x.Attr("xmlns:dcterms", "http://purl.org/dc/terms/")
	x.Attr("xmlns:dcmitype", "http://purl.org/dc/dcmitype/")
	x.Attr("xmlns:xsi", "http://www.w3.org/2001/XMLSchema-instance")

	x.OTag("+dcterms:created")
	x.Attr("xsi:type", "dcterms:W3CDTF")
	x.Write(time.Now().UTC().Format(time.RFC3339))
	x.CTag()

	x.CTag()

	return w.out.WriteBlob(abspath, bb.Bytes())
}

func (w *Writer) writeExtendedProperties(appname string) error {
	_, rid := w.nextGlobalID()

	relpath := "docProps/app.xml"
	abspath := "/" + relpath

	w.PartContentTypes[abspath] = "application/vnd.openxmlformats-officedocument.extended-properties+xml"
	w.GlobalRels[rid] = RelInfo{
		Type:   "http://schemas.openxmlformats.org/officeDocument/2006/relationships/extended-properties",
		Target: relpath,
	}

	bb := bytes.Buffer{}
	x := xml.NewWriter(&bb, xml.WriterConfig{Indent: xml.Indent2Spaces})
	x.XmlStandaloneDecl()

	x.OTag("Properties")
	x.Attr("xmlns", "http://schemas.openxmlformats.org/officeDocument/2006/extended-properties")
	x.Attr("xmlns:vt", "http://schemas.openxmlformats.org/officeDocument/2006/docPropsVTypes")

	if appname != "" {
		x.OTag("+Application").String(appname).CTag()
	}

	x.CTag()

	return w.out.WriteBlob(abspath, bb.Bytes())
}

func (w *Writer) writeContentTypes() error {
	bb := bytes.Buffer{}
	x := xml.NewWriter(&bb, xml.WriterConfig{Indent: xml.Indent2Spaces})

	x.XmlStandaloneDecl()
	x.OTag("Types")
	x.Attr("xmlns", "http://schemas.openxmlformats.org/package/2006/content-types")
	enumerate(w.DefaultContentTypes, func(ext, ctype string) error {
		x.OTag("+Default").Attr("Extension", ext).Attr("ContentType", ctype).CTag()
		return nil
	})
	enumerate(w.PartContentTypes, func(abspath, ctype string) error {
		x.OTag("+Override").Attr("PartName", abspath).Attr("ContentType", ctype).CTag()
		return nil
	})

	x.CTag()

	return w.out.WriteBlob("[Content_Types].xml", bb.Bytes())
}

func (w *Writer) writeWorkbook(wb *Workbook) error {
	_, rid := w.nextGlobalID()

	relpath := "xl/workbook.xml"
	abspath := "/" + relpath

	w.PartContentTypes[abspath] = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet.main+xml"
	w.GlobalRels[rid] = RelInfo{
		Type:   "http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument",
		Target: relpath,
	}

	bb := bytes.Buffer{}
	x := xml.NewWriter(&bb, xml.WriterConfig{Indent: xml.Indent2Spaces})
	x.XmlStandaloneDecl()

	x.OTag("workbook")
	x.Attr("xmlns", "http://schemas.openxmlformats.org/spreadsheetml/2006/main")
	x.Attr("xmlns:r", "http://schemas.openxmlformats.org/officeDocument/2006/relationships")

	x.OTag("+sheets")
	for i, sheet := range wb.Sheets {
		sheet_id, sheet_rid := w.nextWorkbookID()
		{
			x.OTag("+sheet")
			x.Attr("name", sheet.Name)
			x.Attr("sheetId", sheet_id)
			x.Attr("r:id", sheet_rid)
			x.CTag()
		}

		err := w.writeSheet(sheet, wb.styles, i+1, sheet_rid)
		if err != nil {
			return err
		}
	}
	x.CTag()

	// autofilters need a hidden _FilterDatabase name per sheet
	filtered := false
	for i, sheet := range wb.Sheets {
		r, ok := sheet.AutoFilter()
		if !ok {
			continue
		}
		if !filtered {
			x.OTag("+definedNames")
			filtered = true
		}
		x.OTag("+definedName")
		x.Attr("name", "_xlnm._FilterDatabase")
		x.Attr("localSheetId", i)
		x.Attr("hidden", 1)
		x.String(quoteSheetName(sheet.Name) + "!" + absoluteRange(r))
		x.CTag()
	}
	if filtered {
		x.CTag()
	}

	x.CTag()

	err := w.out.WriteBlob(abspath, bb.Bytes())
	if err != nil {
		return err
	}

	return w.writeStyles(wb.styles)
}

func (w *Writer) writeSheet(sh *Sheet, styles *StyleRepository, n int, rid string) error {
	relpath := fmt.Sprintf("worksheets/sheet%d.xml", n)
	abspath := "/xl/" + relpath

	w.PartContentTypes[abspath] = "application/vnd.openxmlformats-officedocument.spreadsheetml.worksheet+xml"
	w.WorkbookRels[rid] = RelInfo{
		Type:   "http://schemas.openxmlformats.org/officeDocument/2006/relationships/worksheet",
		Target: relpath,
	}

	bb := bytes.Buffer{}
	x := xml.NewWriter(&bb, xml.WriterConfig{Indent: xml.Indent2Spaces})
	x.XmlStandaloneDecl()

	x.OTag("worksheet")
	x.Attr("xmlns", "http://schemas.openxmlformats.org/spreadsheetml/2006/main")
	x.Attr("xmlns:r", "http://schemas.openxmlformats.org/officeDocument/2006/relationships")

	if dim, ok := sh.Dimension(); ok {
		x.OTag("+dimension").Attr("ref", compactRange(dim)).CTag()
	}

	if tl, ok := sh.Frozen(); ok {
		// freeze everything above and left of tl
		pane := "bottomRight"
		switch {
		case tl.Column() == 0:
			pane = "bottomLeft"
		case tl.Row() == 0:
			pane = "topRight"
		}

		x.OTag("+sheetViews")
		x.OTag("+sheetView").Attr("workbookViewId", 0)
		x.OTag("+pane")
		if tl.Column() > 0 {
			x.Attr("xSplit", tl.Column())
		}
		if tl.Row() > 0 {
			x.Attr("ySplit", tl.Row())
		}
		x.Attr("topLeftCell", tl.String())
		x.Attr("activePane", pane)
		x.Attr("state", "frozen")
		x.CTag()
		x.OTag("+selection").Attr("pane", pane).CTag()
		x.CTag() // sheetView
		x.CTag() // sheetViews
	}

	if len(sh.Columns) > 0 {
		x.OTag("+cols")
		enumerate(sh.Columns, func(n int, v *Column) error {
			x.OTag("+col").Attr("min", n+1).Attr("max", n+1)
			if v.Width > 0 {
				x.Attr("width", v.Width).Attr("customWidth", 1)
			}
			if v.Hidden {
				x.Attr("hidden", 1)
			}
			x.CTag()
			return nil
		})
		x.CTag()
	}

	writeCell := func(cell *Cell) error {
		x.OTag("+c").Attr("r", cell.address.String())

		if cell.style != nil {
			slot, err := styles.Slot(cell.style)
			if err != nil {
				return fmt.Errorf("cell %s: %w", cell.address, err)
			}
			if slot != 0 {
				x.Attr("s", slot)
			}
		}

		v := cell.value
		switch cell.Type() {
		case CellTypeBool:
			x.Attr("t", "b")
			if v.Bool() {
				x.OTag("v").Write(1).CTag()
			} else {
				x.OTag("v").Write(0).CTag()
			}
		case CellTypeNumber, CellTypeDate, CellTypeTime:
			n, err := v.serial()
			if err != nil {
				return fmt.Errorf("cell %s: %w", cell.address, err)
			}
			x.Attr("t", "n")
			x.OTag("v").Write(formatNumber(n)).CTag()
		case CellTypeError:
			x.Attr("t", "e")
			x.OTag("v").String(v.Text()).CTag()
		case CellTypeFormula:
			x.OTag("f").String(strings.TrimPrefix(v.Text(), "=")).CTag()
		case CellTypeSharedString:
			x.Attr("t", "s")
			x.OTag("v").Write(w.SharedString(v.Text())).CTag()
		case CellTypeInlineString:
			x.Attr("t", "inlineStr")
			x.OTag("is")
			x.OTag("t")
			if preserveSpace(v.Text()) {
				x.Attr("xml:space", "preserve")
			}
			x.String(v.Text())
			x.CTag() // t
			x.CTag() // is
		case cellTypePicture:
			n, ext, ctype, err := cell.picture.mediaName()
			if err != nil {
				return fmt.Errorf("cell %s: %w", cell.address, err)
			}
			w.DefaultContentTypes[ext] = ctype
			info, ok := w.mediaMap[n]
			if !ok {
				_, rid := w.nextRichDataID()
				info = &MediaInfo{
					Name: n,
					Blob: cell.picture.Blob,
					IId:  len(w.media),
					RId:  rid,
				}
				w.mediaMap[n] = info
				w.media = append(w.media, info)
			}
			x.Attr("t", "e").Attr("vm", info.IId+1)
			x.OTag("v").Write("#VALUE!").CTag()
		}
		x.CTag() // c
		return nil
	}

	x.OTag("+sheetData")
	for _, row := range sh.Rows() {
		cells := row.Cells()
		if !slices.ContainsFunc(cells, (*Cell).writable) && row.Height <= 0 && !row.Hidden {
			continue
		}

		x.OTag("+row").Attr("r", row.index+1)
		if row.Height > 0 {
			x.Attr("ht", row.Height).Attr("customHeight", 1)
		}
		if row.Hidden {
			x.Attr("hidden", 1)
		}

		for _, cell := range cells {
			if !cell.writable() {
				continue
			}
			err := writeCell(cell)
			if err != nil {
				return fmt.Errorf("sheet '%s': %w", sh.Name, err)
			}
		}

		x.CTag() // row
	}
	x.CTag() // sheetData

	if r, ok := sh.AutoFilter(); ok {
		x.OTag("+autoFilter").Attr("ref", compactRange(r)).CTag()
	}

	if merges := sh.Merges(); len(merges) > 0 {
		x.OTag("+mergeCells").Attr("count", len(merges))
		for _, m := range merges {
			x.OTag("+mergeCell").Attr("ref", m.String()).CTag()
		}
		x.CTag()
	}

	x.CTag() // worksheet

	return w.out.WriteBlob(abspath, bb.Bytes())
}

func (w *Writer) writeSharedStrings() error {
	_, rid := w.nextWorkbookID()

	relpath := "sharedStrings.xml"
	abspath := "/xl/" + relpath

	w.PartContentTypes[abspath] = "application/vnd.openxmlformats-officedocument.spreadsheetml.sharedStrings+xml"
	w.WorkbookRels[rid] = RelInfo{
		Type:   "http://schemas.openxmlformats.org/officeDocument/2006/relationships/sharedStrings",
		Target: relpath,
	}

	bb := bytes.Buffer{}
	x := xml.NewWriter(&bb, xml.WriterConfig{Indent: xml.Indent2Spaces})
	x.XmlStandaloneDecl()

	x.OTag("sst")
	x.Attr("xmlns", "http://schemas.openxmlformats.org/spreadsheetml/2006/main")
	x.Attr("count", len(w.sharedStrings))
	x.Attr("uniqueCount", len(w.sharedStrings))

	for _, s := range w.sharedStrings {
		x.OTag("+si")
		x.OTag("t")
		if preserveSpace(s) {
			x.Attr("xml:space", "preserve")
		}
		x.String(s)
		x.CTag()
		x.CTag()
	}

	x.CTag()

	return w.out.WriteBlob(abspath, bb.Bytes())
}

func (w *Writer) writeMedia() error {
	if len(w.media) == 0 {
		return nil
	}

	for _, m := range w.media {
		fn := "/xl/media/" + m.Name
		err := w.out.WriteBlob(fn, m.Blob)
		if err != nil {
			return err
		}
		w.RichDataRels[m.RId] = RelInfo{
			Type:   "http://schemas.openxmlformats.org/officeDocument/2006/relationships/image",
			Target: "../media/" + m.Name,
		}
	}
	return nil
}

func (w *Writer) writeMetadata() error {
	_, rid := w.nextWorkbookID()

	relpath := "metadata.xml"
	abspath := "/xl/" + relpath

	w.PartContentTypes[abspath] = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheetMetadata+xml"
	w.WorkbookRels[rid] = RelInfo{
		Type:   "http://schemas.openxmlformats.org/officeDocument/2006/relationships/sheetMetadata",
		Target: relpath,
	}

	bb := bytes.Buffer{}
	x := xml.NewWriter(&bb, xml.WriterConfig{Indent: xml.Indent2Spaces})
	x.XmlStandaloneDecl()

	x.OTag("metadata")
	x.Attr("xmlns", "http://schemas.openxmlformats.org/spreadsheetml/2006/main")
	x.Attr("xmlns:xlrd", "http://schemas.microsoft.com/office/spreadsheetml/2017/richdata")

	x.OTag("+metadataTypes").Attr("count", 1)
	x.OTag("+metadataType")
	x.Attr("name", "XLRICHVALUE")
	x.Attr("minSupportedVersion", "120000")
	for _, s := range []xml.NameString{"copy", "pasteAll", "pasteValues",
		"merge", "splitFirst", "rowColShift", "clearFormats",
		"clearComments", "assign", "coerce"} {
		x.Attr(s, 1)
	}
	x.CTag() // metadataType
	x.CTag() // metadataTypes

	x.OTag("futureMetadata").Attr("name", "XLRICHVALUE").Attr("count", len(w.media))
	for _, m := range w.media {
		x.OTag("+bk")
		x.OTag("extLst")
		x.OTag("ext").Attr("uri", "{3e2802c4-a4d2-4d8b-9148-e3be6c30e623}")
		x.OTag("xlrd:rvb").Attr("i", m.IId).CTag()
		x.CTag() // ext
		x.CTag() // extLst
		x.CTag() // bk
	}
	x.CTag() // futureMetadata

	x.OTag("valueMetadata").Attr("count", len(w.media))
	for _, m := range w.media {
		x.OTag("+bk")
		x.OTag("rc").Attr("t", 1).Attr("v", m.IId).CTag()
		x.CTag() // bk
	}
	x.CTag() // valueMetadata

	x.CTag() // metadata

	return w.out.WriteBlob(abspath, bb.Bytes())
}

func (w *Writer) writeRichValueRel() error {
	_, rid := w.nextWorkbookID()

	relpath := "richData/richValueRel.xml"
	abspath := "/xl/" + relpath

	w.PartContentTypes[abspath] = "application/vnd.ms-excel.richvaluerel+xml"
	w.WorkbookRels[rid] = RelInfo{
		Type:   "http://schemas.microsoft.com/office/2022/10/relationships/richValueRel",
		Target: relpath,
	}

	bb := bytes.Buffer{}
	x := xml.NewWriter(&bb, xml.WriterConfig{Indent: xml.Indent2Spaces})
	x.XmlStandaloneDecl()

	x.OTag("richValueRels")
	x.Attr("xmlns", "http://schemas.microsoft.com/office/spreadsheetml/2022/richvaluerel")
	x.Attr("xmlns:r", "http://schemas.openxmlformats.org/officeDocument/2006/relationships")

	for _, m := range w.media {
		x.OTag("+rel")
		x.Attr("r:id", m.RId)
		x.CTag()
	}

	x.CTag()

	return w.out.WriteBlob(abspath, bb.Bytes())
}

func (w *Writer) writeRichValueStructure() error {
	_, rid := w.nextWorkbookID()

	relpath := "richData/rdrichvaluestructure.xml"
	abspath := "/xl/" + relpath

	w.PartContentTypes[abspath] = "application/vnd.ms-excel.rdrichvaluestructure+xml"
	w.WorkbookRels[rid] = RelInfo{
		Type:   "http://schemas.microsoft.com/office/2017/06/relationships/rdRichValueStructure",
		Target: relpath,
	}

	bb := bytes.Buffer{}
	x := xml.NewWriter(&bb, xml.WriterConfig{Indent: xml.Indent2Spaces})
	x.XmlStandaloneDecl()

	x.OTag("rvStructures")
	x.Attr("xmlns", "http://schemas.microsoft.com/office/spreadsheetml/2017/richdata")
	x.Attr("count", 1)

	// define _localImage{Id, CalcOrigin}
	x.OTag("+s").Attr("t", "_localImage")
	x.OTag("+k").Attr("n", "_rvRel:LocalImageIdentifier").Attr("t", "i").CTag()
	x.OTag("+k").Attr("n", "CalcOrigin").Attr("t", "i").CTag()
	x.CTag()

	x.CTag()

	return w.out.WriteBlob(abspath, bb.Bytes())
}

func (w *Writer) writeRichValueData() error {
	_, rid := w.nextWorkbookID()

	relpath := "richData/rdrichvalue.xml"
	abspath := "/xl/" + relpath

	w.PartContentTypes[abspath] = "application/vnd.ms-excel.rdrichvalue+xml"
	w.WorkbookRels[rid] = RelInfo{
		Type:   "http://schemas.microsoft.com/office/2017/06/relationships/rdRichValue",
		Target: relpath,
	}

	bb := bytes.Buffer{}
	x := xml.NewWriter(&bb, xml.WriterConfig{Indent: xml.Indent2Spaces})
	x.XmlStandaloneDecl()

	x.OTag("rvData")

	x.Attr("xmlns", "http://schemas.microsoft.com/office/spreadsheetml/2017/richdata")
	x.Attr("count", len(w.media))

	for _, m := range w.media {
		x.OTag("+rv").Attr("s", 0)
		x.OTag("v").Write(m.IId).CTag() // image resource numeric id
		x.OTag("v").Write(5).CTag()
		x.CTag()
	}

	x.CTag()

	return w.out.WriteBlob(abspath, bb.Bytes())
}

func (w *Writer) writeRels(path string, rels map[string]RelInfo) error {
	bb := bytes.Buffer{}
	x := xml.NewWriter(&bb, xml.WriterConfig{Indent: xml.Indent2Spaces})
	x.XmlStandaloneDecl()

	x.OTag("Relationships")
	x.Attr("xmlns", "http://schemas.openxmlformats.org/package/2006/relationships")
	err := enumerate(rels, func(rid string, info RelInfo) error {
		x.OTag("+Relationship").Attr("Id", rid).Attr("Type", info.Type).Attr("Target", info.Target)
		x.CTag()

		return nil
	})
	if err != nil {
		return err
	}
	x.CTag()

	return w.out.WriteBlob(path, bb.Bytes())
}

// formatNumber writes plain decimals, using an exponent only for very
// large or very small magnitudes.
func formatNumber(v float64) string {
	if a := math.Abs(v); a != 0 && (a >= 1e21 || a < 1e-7) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func preserveSpace(s string) bool {
	return s != strings.TrimSpace(s)
}

// compactRange renders r as "A1" for a single cell and "A1:C3" otherwise.
func compactRange(r Range) string {
	if r.Size() == 1 {
		return r.Start().Plain().String()
	}
	return NewRange(r.Start().Plain(), r.End().Plain()).String()
}

// absoluteRange renders r as "$A$1:$C$3".
func absoluteRange(r Range) string {
	s := r.Start().WithType(RefFixedRowAndColumn)
	e := r.End().WithType(RefFixedRowAndColumn)
	return s.String() + ":" + e.String()
}

func quoteSheetName(name string) string {
	return "'" + strings.ReplaceAll(name, "'", "''") + "'"
}

func enumerate[M ~map[K]V, K constraints.Ordered, V any](m M, callback func(k K, v V) error) error {
	keys := maps.Keys(m)
	slices.Sort(keys)
	for _, k := range keys {
		err := callback(k, m[k])
		if err != nil {
			return err
		}
	}
	return nil
}
