package domain

// Board is a width x (width-1) grid of cells stored column by column.
// Row 0 is the bottom; discs fall to the lowest empty row of a column.
type Board struct {
	width   int
	height  int
	cells   [][]Cell // cells[col][row]
	heights []int    // occupied cells per column, kept in step with cells
}

// NewBoard builds an empty board. Only widths 5, 6 and 7 are accepted.
func NewBoard(width int) (*Board, error) {
	if !ValidWidth(width) {
		return nil, &ConfigurationError{Width: width}
	}

	b := &Board{
		width:   width,
		height:  width - 1,
		cells:   make([][]Cell, width),
		heights: make([]int, width),
	}
	for c := range b.cells {
		b.cells[c] = make([]Cell, b.height)
	}
	return b, nil
}

func (b *Board) Width() int  { return b.width }
func (b *Board) Height() int { return b.height }

// Cell returns the content at (col, row). Positions off the grid read as Empty.
func (b *Board) Cell(col, row int) Cell {
	if !b.inBounds(col, row) {
		return Empty
	}
	return b.cells[col][row]
}

// ColumnHeight is the number of discs in col, or 0 for a column off the board.
func (b *Board) ColumnHeight(col int) int {
	if col < 0 || col >= b.width {
		return 0
	}
	return b.heights[col]
}

// IsColumnPlayable reports whether a disc can still be dropped into col.
func (b *Board) IsColumnPlayable(col int) bool {
	if col < 0 || col >= b.width {
		return false
	}
	return b.cells[col][b.height-1] == Empty
}

// Drop places a disc for player at the lowest empty row of col and returns
// that row. Calling it twice places two discs; alternating turns is up to
// the caller.
func (b *Board) Drop(col int, player Player) (int, error) {
	if !b.IsColumnPlayable(col) {
		return -1, &MoveError{Column: col}
	}

	row := b.heights[col]
	if b.cells[col][row] != Empty {
		panic("domain: column height out of step with grid")
	}
	b.cells[col][row] = CellOf(player)
	b.heights[col]++
	return row, nil
}

// IsFull reports whether every cell of the board is occupied.
func (b *Board) IsFull() bool {
	for c := 0; c < b.width; c++ {
		if b.heights[c] < b.height {
			return false
		}
	}
	return true
}

// Snapshot returns a copy of the grid indexed [col][row], safe to hand to
// renderers.
func (b *Board) Snapshot() [][]Cell {
	grid := make([][]Cell, b.width)
	for c := range b.cells {
		grid[c] = make([]Cell, b.height)
		copy(grid[c], b.cells[c])
	}
	return grid
}

func (b *Board) inBounds(col, row int) bool {
	return col >= 0 && col < b.width && row >= 0 && row < b.height
}
