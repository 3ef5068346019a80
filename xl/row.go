package xl

import (
	"fmt"
	"slices"

	"golang.org/x/exp/maps"
)

// Row is one worksheet row. Cells are added left to right with AddCell or
// at any column with CellAt.
type Row struct {
	Height float32 // when Height=0, use default
	Hidden bool

	index      int // 0-based
	cells      map[int]*Cell
	nextColumn int // 0-based, incremented as we add cells
}

func newRow(index int) *Row {
	return &Row{index: index, cells: map[int]*Cell{}}
}

// Index is the zero-based row index.
func (r *Row) Index() int { return r.index }

// AddCell appends a cell after the right-most cell added through the
// cursor.
func (r *Row) AddCell() (*Cell, error) {
	if r.nextColumn >= MaxColumns {
		return nil, fmt.Errorf("%w: row %d has no free column", ErrRange, r.index+1)
	}
	return r.cellAt(r.nextColumn), nil
}

// CellAt returns the cell at the zero-based column, creating it if needed.
func (r *Row) CellAt(col int) (*Cell, error) {
	if col < 0 || col >= MaxColumns {
		return nil, fmt.Errorf("%w: column index %d", ErrRange, col)
	}
	return r.cellAt(col), nil
}

func (r *Row) cellAt(col int) *Cell {
	if c, ok := r.cells[col]; ok {
		return c
	}
	c := &Cell{address: Address{col: int32(col), row: int32(r.index)}}
	r.cells[col] = c
	if col >= r.nextColumn {
		r.nextColumn = col + 1
	}
	return c
}

// Cells returns the cells of the row ordered by column.
func (r *Row) Cells() []*Cell {
	cols := maps.Keys(r.cells)
	slices.Sort(cols)
	out := make([]*Cell, len(cols))
	for i, col := range cols {
		out[i] = r.cells[col]
	}
	return out
}

func (r *Row) Len() int { return len(r.cells) }
