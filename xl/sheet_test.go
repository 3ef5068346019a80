package xl

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSheet(t *testing.T) (*Workbook, *Sheet) {
	t.Helper()
	wb := NewWorkbook()
	sh, err := wb.AddSheet("Data")
	require.NoError(t, err)
	return wb, sh
}

func TestAddSheet(t *testing.T) {
	wb := NewWorkbook()
	_, err := wb.AddSheet("Report")
	require.NoError(t, err)

	_, err = wb.AddSheet("report")
	assert.ErrorIs(t, err, ErrSheetExists)

	for _, bad := range []string{"", "'quoted", "a/b", "x[1]", "abcdefghijklmnopqrstuvwxyz123456"} {
		_, err := wb.AddSheet(bad)
		assert.ErrorIs(t, err, ErrSheetName, bad)
	}

	sh, ok := wb.Sheet("REPORT")
	require.True(t, ok)
	assert.Equal(t, "Report", sh.Name)
	assert.Same(t, wb.Styles(), sh.Styles())
}

func TestRowCursor(t *testing.T) {
	_, sh := newTestSheet(t)

	r1, err := sh.AddRow()
	require.NoError(t, err)
	for _, s := range []string{"a", "b", "c"} {
		c, err := r1.AddCell()
		require.NoError(t, err)
		c.SetStr(s)
	}
	r2, err := sh.AddRow()
	require.NoError(t, err)
	c, err := r2.AddCell()
	require.NoError(t, err)

	assert.Equal(t, "A2", c.Address().String())
	cells := r1.Cells()
	require.Len(t, cells, 3)
	assert.Equal(t, "C1", cells[2].Address().String())

	// explicit placement moves the cursor past the used cells
	_, err = sh.Set("E5", 1)
	require.NoError(t, err)
	r6, err := sh.AddRow()
	require.NoError(t, err)
	assert.Equal(t, 5, r6.Index())
	r5, err := sh.Row(4)
	require.NoError(t, err)
	next, err := r5.AddCell()
	require.NoError(t, err)
	assert.Equal(t, "F5", next.Address().String())
}

func TestCursorAdvancesByOne(t *testing.T) {
	_, sh := newTestSheet(t)

	var rows []int
	for range 3 {
		r, err := sh.AddRow()
		require.NoError(t, err)
		rows = append(rows, r.Index())
	}
	assert.Equal(t, []int{0, 1, 2}, rows)

	first, err := sh.Row(0)
	require.NoError(t, err)
	var refs []string
	for range 3 {
		c, err := first.AddCell()
		require.NoError(t, err)
		refs = append(refs, c.Address().String())
	}
	assert.Equal(t, []string{"A1", "B1", "C1"}, refs)
}

func TestSheetSet(t *testing.T) {
	_, sh := newTestSheet(t)

	c, err := sh.Set("$B$2", "text")
	require.NoError(t, err)
	assert.Equal(t, "B2", c.Address().String())

	same, err := sh.Cell("b2")
	require.NoError(t, err)
	assert.Same(t, c, same)

	_, err = sh.Set("B", 1)
	assert.ErrorIs(t, err, ErrFormat)
	_, err = sh.Set("A1", map[string]int{})
	assert.ErrorIs(t, err, ErrValue)

	got, ok := sh.Lookup(MustAddress("B2"))
	require.True(t, ok)
	assert.Equal(t, "text", got.Value().Text())

	assert.True(t, sh.Remove(MustAddress("B2")))
	assert.False(t, sh.Remove(MustAddress("B2")))
	_, ok = sh.Lookup(MustAddress("B2"))
	assert.False(t, ok)
}

func TestDatesGetDefaultFormat(t *testing.T) {
	wb, sh := newTestSheet(t)

	d, err := sh.Set("A1", time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.True(t, d.Style().Equal(StyleDate()))

	dt, err := sh.Set("A2", time.Date(2024, 1, 2, 13, 30, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.True(t, dt.Style().Equal(StyleDateTime()))

	tm, err := sh.Set("A3", 2*time.Hour)
	require.NoError(t, err)
	assert.True(t, tm.Style().Equal(StyleTime()))

	// an explicit style is kept
	c, err := sh.Set("A4", 1)
	require.NoError(t, err)
	_, err = c.SetStyle(wb.Styles(), StyleBold())
	require.NoError(t, err)
	c, err = sh.Set("A4", time.Now())
	require.NoError(t, err)
	assert.True(t, c.Style().Equal(StyleBold()))
}

func TestSetRangeStyle(t *testing.T) {
	wb, sh := newTestSheet(t)
	r := MustRange("B2:C4")

	canonical, err := sh.SetRangeStyle(r, StyleFrame(BorderThin))
	require.NoError(t, err)
	for a := range r.All() {
		c, ok := sh.Lookup(a)
		require.True(t, ok, a.String())
		assert.Same(t, canonical, c.Style())
	}
	assert.Equal(t, 2, wb.Styles().Len())

	require.NoError(t, sh.AppendRangeStyle(MustRange("B2:B4"), StyleBold()))
	b3, _ := sh.Lookup(MustAddress("B3"))
	c3, _ := sh.Lookup(MustAddress("C3"))
	assert.True(t, b3.Style().Font.Bold.Value())
	assert.False(t, c3.Style().Font.Bold.Value())
	assert.Equal(t, BorderThin, b3.Style().Border.Left.Style.Value())
	assert.Equal(t, 3, wb.Styles().Len())

	_, err = sh.SetRangeStyle(r, nil)
	assert.ErrorIs(t, err, ErrStyle)
}

func TestSetRangeValue(t *testing.T) {
	_, sh := newTestSheet(t)
	require.NoError(t, sh.SetRangeValue(MustRange("A1:B2"), 0))
	dim, ok := sh.Dimension()
	require.True(t, ok)
	assert.Equal(t, "A1:B2", dim.String())
	assert.ErrorIs(t, sh.SetRangeValue(MustRange("A1:B2"), []byte("x")), ErrValue)
}

func TestMerge(t *testing.T) {
	_, sh := newTestSheet(t)
	require.NoError(t, sh.Merge(MustRange("$A$1:B2")))
	require.NoError(t, sh.Merge(MustRange("C1:D1")))

	assert.ErrorIs(t, sh.Merge(MustRange("B2:C3")), ErrRange)
	assert.ErrorIs(t, sh.Merge(MustRange("F1:F1")), ErrRange)

	merges := sh.Merges()
	require.Len(t, merges, 2)
	assert.Equal(t, "A1:B2", merges[0].String())

	assert.True(t, sh.Unmerge(MustRange("A1:B2")))
	assert.False(t, sh.Unmerge(MustRange("A1:B2")))
	assert.NoError(t, sh.Merge(MustRange("B2:C3")))
}

func TestAutoFilterAndPanes(t *testing.T) {
	_, sh := newTestSheet(t)
	_, ok := sh.AutoFilter()
	assert.False(t, ok)

	sh.SetAutoFilter(MustRange("$A$1:$D$1"))
	r, ok := sh.AutoFilter()
	require.True(t, ok)
	assert.Equal(t, "A1:D1", r.String())
	sh.ClearAutoFilter()
	_, ok = sh.AutoFilter()
	assert.False(t, ok)

	_, ok = sh.Frozen()
	assert.False(t, ok)
	sh.FreezePanes(MustAddress("B2"))
	tl, ok := sh.Frozen()
	require.True(t, ok)
	assert.Equal(t, "B2", tl.String())
	sh.FreezePanes(MustAddress("A1"))
	_, ok = sh.Frozen()
	assert.False(t, ok)
}

func TestColumnWidthAndRowHeight(t *testing.T) {
	_, sh := newTestSheet(t)
	require.NoError(t, sh.SetColumnWidth(2, 20))
	assert.Equal(t, float32(20), sh.Columns[2].Width)
	require.NoError(t, sh.SetColumnWidth(2, 0))
	assert.NotContains(t, sh.Columns, 2)
	assert.ErrorIs(t, sh.SetColumnWidth(MaxColumns, 1), ErrRange)

	require.NoError(t, sh.SetRowHeight(3, 30))
	r, err := sh.Row(3)
	require.NoError(t, err)
	assert.Equal(t, float32(30), r.Height)
	assert.ErrorIs(t, sh.SetRowHeight(-1, 30), ErrRange)
}

func TestDimensionIgnoresBlankCells(t *testing.T) {
	_, sh := newTestSheet(t)
	_, ok := sh.Dimension()
	assert.False(t, ok)

	_, err := sh.Cell("Z99") // created but never written
	require.NoError(t, err)
	_, err = sh.Set("C3", "x")
	require.NoError(t, err)
	_, err = sh.Set("B7", true)
	require.NoError(t, err)

	dim, ok := sh.Dimension()
	require.True(t, ok)
	assert.Equal(t, "B3:C7", dim.String())
}
