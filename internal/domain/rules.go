package domain

// Direction is a step along one of the four lines a run can follow.
type Direction struct {
	DCol, DRow int
}

// Directions lists horizontal, vertical, diagonal and anti-diagonal steps.
// Every run is counted in the positive column direction, or upwards for
// vertical runs, so no line is scanned from both ends.
var Directions = []Direction{
	{DCol: 1, DRow: 0},
	{DCol: 0, DRow: 1},
	{DCol: 1, DRow: 1},
	{DCol: 1, DRow: -1},
}

// HasWin scans the whole board for ToWin or more consecutive discs of player.
func HasWin(b *Board, player Player) bool {
	target := CellOf(player)
	for col := 0; col < b.width; col++ {
		for row := 0; row < b.height; row++ {
			if b.cells[col][row] != target {
				continue
			}
			for _, d := range Directions {
				if !b.roomForRun(col, row, d) {
					continue
				}
				if 1+CountInDirection(b, col, row, d, player) >= ToWin {
					return true
				}
			}
		}
	}
	return false
}

// WinsAt checks only the four lines passing through (col, row), which is
// where the last disc landed. It is equivalent to HasWin for the occupant
// of that cell as long as nobody had already won before the drop.
func WinsAt(b *Board, col, row int) bool {
	player, ok := b.Cell(col, row).Occupant()
	if !ok {
		return false
	}
	for _, d := range Directions {
		back := Direction{DCol: -d.DCol, DRow: -d.DRow}
		run := 1 + CountInDirection(b, col, row, d, player) + CountInDirection(b, col, row, back, player)
		if run >= ToWin {
			return true
		}
	}
	return false
}

// CountInDirection counts consecutive discs of player starting one step
// away from (col, row) and moving along d. The origin cell is not counted.
func CountInDirection(b *Board, col, row int, d Direction, player Player) int {
	target := CellOf(player)
	count := 0
	c, r := col+d.DCol, row+d.DRow
	for b.inBounds(c, r) && b.cells[c][r] == target {
		count++
		c += d.DCol
		r += d.DRow
	}
	return count
}

// roomForRun reports whether a run of ToWin cells starting at (col, row)
// along d stays on the grid.
func (b *Board) roomForRun(col, row int, d Direction) bool {
	endCol := col + (ToWin-1)*d.DCol
	endRow := row + (ToWin-1)*d.DRow
	return b.inBounds(endCol, endRow)
}
