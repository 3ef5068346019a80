package xl

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// memStorage keeps written parts in memory.
type memStorage map[string][]byte

func (m memStorage) WriteBlob(path string, blob []byte) error {
	m[path] = bytes.Clone(blob)
	return nil
}

func sampleWorkbook(t *testing.T) *Workbook {
	t.Helper()
	wb := NewWorkbook()
	wb.AppName = "xlbuild"
	sh, err := wb.AddSheet("Report")
	require.NoError(t, err)

	_, err = sh.Set("A1", "Name")
	require.NoError(t, err)
	_, err = sh.Set("B1", "Amount")
	require.NoError(t, err)
	_, err = sh.SetRangeStyle(MustRange("A1:B1"), StyleBold().Append(StyleFill(ColorYellow)))
	require.NoError(t, err)

	_, err = sh.Set("A2", "  padded ")
	require.NoError(t, err)
	_, err = sh.Set("B2", 42.5)
	require.NoError(t, err)
	_, err = sh.Set("A3", true)
	require.NoError(t, err)
	_, err = sh.Set("B3", time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	c, err := sh.Cell("B4")
	require.NoError(t, err)
	c.SetFormula("=SUM(B2:B3)")

	require.NoError(t, sh.Merge(MustRange("C1:D2")))
	sh.SetAutoFilter(MustRange("A1:B3"))
	sh.FreezePanes(MustAddress("A2"))
	require.NoError(t, sh.SetColumnWidth(0, 24))
	return wb
}

func TestWriteParts(t *testing.T) {
	wb := sampleWorkbook(t)
	parts := memStorage{}
	require.NoError(t, NewWriter(parts).Write(wb))

	for _, p := range []string{
		"[Content_Types].xml",
		"/_rels/.rels",
		"/xl/workbook.xml",
		"/xl/_rels/workbook.xml.rels",
		"/xl/worksheets/sheet1.xml",
		"/xl/styles.xml",
		"/xl/sharedStrings.xml",
	} {
		assert.Contains(t, parts, p)
	}

	sheet := string(parts["/xl/worksheets/sheet1.xml"])
	for _, want := range []string{"<dimension", "A1:B4", "<mergeCell", "C1:D2", "<autoFilter", "frozen", "SUM(B2:B3)"} {
		assert.Contains(t, sheet, want)
	}
	assert.NotContains(t, sheet, "=SUM")

	book := string(parts["/xl/workbook.xml"])
	assert.Contains(t, book, "_xlnm._FilterDatabase")
	assert.Contains(t, book, "$A$1:$B$3")

	assert.Contains(t, string(parts["/xl/sharedStrings.xml"]), "preserve")

	styles := string(parts["/xl/styles.xml"])
	assert.Contains(t, styles, "gray125")
	assert.Contains(t, styles, "Normal")
}

func TestWriteNoSheets(t *testing.T) {
	assert.Error(t, NewWriter(memStorage{}).Write(NewWorkbook()))
}

func TestWriteRejectsForeignStyle(t *testing.T) {
	wb, sh := newTestSheet(t)
	_, err := sh.Set("A1", 1)
	require.NoError(t, err)
	c, _ := sh.Lookup(MustAddress("A1"))

	other := NewStyleRepository()
	_, err = c.SetStyle(other, StyleItalic())
	require.NoError(t, err)

	err = NewWriter(memStorage{}).Write(wb)
	assert.ErrorIs(t, err, ErrStyle)
}

func TestWriteToReadBack(t *testing.T) {
	wb := sampleWorkbook(t)
	var buf bytes.Buffer
	require.NoError(t, WriteTo(wb, &buf))

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Report"}, f.GetSheetList())

	for ref, want := range map[string]string{
		"A1": "Name",
		"A2": "  padded ",
		"B2": "42.5",
		"A3": "TRUE",
	} {
		got, err := f.GetCellValue("Report", ref)
		require.NoError(t, err)
		assert.Equal(t, want, got, ref)
	}

	raw, err := f.GetCellValue("Report", "B3", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	assert.Equal(t, "36526", raw)

	formula, err := f.GetCellFormula("Report", "B4")
	require.NoError(t, err)
	assert.Equal(t, "SUM(B2:B3)", formula)

	merges, err := f.GetMergeCells("Report")
	require.NoError(t, err)
	require.Len(t, merges, 1)
	assert.Equal(t, "C1", merges[0].GetStartAxis())
	assert.Equal(t, "D2", merges[0].GetEndAxis())

	header, _ := wb.Sheets[0].Lookup(MustAddress("A1"))
	slot, err := wb.Styles().Slot(header.Style())
	require.NoError(t, err)
	idx, err := f.GetCellStyle("Report", "B1")
	require.NoError(t, err)
	assert.Equal(t, slot, idx)

	st, err := f.GetStyle(idx)
	require.NoError(t, err)
	require.NotNil(t, st.Font)
	assert.True(t, st.Font.Bold)

	width, err := f.GetColWidth("Report", "A")
	require.NoError(t, err)
	assert.InDelta(t, 24, width, 0.01)

	panes, err := f.GetPanes("Report")
	require.NoError(t, err)
	assert.True(t, panes.Freeze)
	assert.Equal(t, 1, panes.YSplit)
	assert.Equal(t, "A2", panes.TopLeftCell)
}

func TestSaveFileAndDirStorage(t *testing.T) {
	wb := sampleWorkbook(t)
	dir := t.TempDir()

	fn := filepath.Join(dir, "out.xlsx")
	require.NoError(t, SaveFile(wb, fn))
	info, err := os.Stat(fn)
	require.NoError(t, err)
	assert.Positive(t, info.Size())

	unpacked := filepath.Join(dir, "unpacked")
	require.NoError(t, NewWriter(NewDirStorage(unpacked)).Write(wb))
	_, err = os.Stat(filepath.Join(unpacked, "xl", "worksheets", "sheet1.xml"))
	assert.NoError(t, err)

	// failed writes leave no partial file behind
	bad := filepath.Join(dir, "empty.xlsx")
	assert.Error(t, SaveFile(NewWorkbook(), bad))
	_, err = os.Stat(bad)
	assert.True(t, os.IsNotExist(err))
}

func TestWritePictures(t *testing.T) {
	wb, sh := newTestSheet(t)
	png := []byte{0x89, 'P', 'N', 'G', 1, 2, 3}
	for _, ref := range []string{"A1", "B1"} {
		c, err := sh.Cell(ref)
		require.NoError(t, err)
		c.SetPicture(&PictureInfo{Extension: ".PNG", Blob: png})
	}

	parts := memStorage{}
	require.NoError(t, NewWriter(parts).Write(wb))

	media := "/xl/media/" + BlobHash(png).String() + ".png"
	assert.Equal(t, png, parts[media])
	assert.Contains(t, parts, "/xl/metadata.xml")
	assert.Contains(t, parts, "/xl/richData/rdrichvalue.xml")
	assert.Contains(t, string(parts["[Content_Types].xml"]), "image/png")

	// identical blobs are stored once
	n := 0
	for p := range parts {
		if strings.HasPrefix(p, "/xl/media/") {
			n++
		}
	}
	assert.Equal(t, 1, n)
}

func TestWritePictureErrors(t *testing.T) {
	tests := []struct {
		name string
		pic  *PictureInfo
	}{
		{"empty blob", &PictureInfo{Extension: ".png"}},
		{"extension", &PictureInfo{Extension: ".gif", Blob: []byte{1}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wb, sh := newTestSheet(t)
			c, err := sh.Cell("C3")
			require.NoError(t, err)
			c.SetPicture(tt.pic)
			err = NewWriter(memStorage{}).Write(wb)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "C3")
		})
	}
}

func TestFormatNumber(t *testing.T) {
	for v, want := range map[float64]string{
		0:          "0",
		42.5:       "42.5",
		1234567:    "1234567",
		-0.25:      "-0.25",
		36526.5:    "36526.5",
		1e22:       "1e+22",
		0.00000001: "1e-08",
	} {
		assert.Equal(t, want, formatNumber(v), want)
	}
}
