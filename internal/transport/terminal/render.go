package terminal

import (
	"bufio"
	"io"
	"strconv"

	"github.com/iamasit07/4-in-a-row/engine/internal/domain"
)

// Render draws a [col][row] grid with the top row first:
//
//	+-+-+-+-+-+
//	| | |O| | |
//	+-+-+-+-+-+
//	| |X|X| | |
//	+-+-+-+-+-+
//	 1 2 3 4 5
func Render(w io.Writer, grid [][]domain.Cell) error {
	if len(grid) == 0 {
		return nil
	}
	width, height := len(grid), len(grid[0])

	bw := bufio.NewWriter(w)
	border := func() {
		for c := 0; c < width; c++ {
			bw.WriteString("+-")
		}
		bw.WriteString("+\n")
	}

	border()
	for r := height - 1; r >= 0; r-- {
		for c := 0; c < width; c++ {
			bw.WriteByte('|')
			bw.WriteByte(cellMarker(grid[c][r]))
		}
		bw.WriteString("|\n")
		border()
	}
	for c := 0; c < width; c++ {
		bw.WriteByte(' ')
		bw.WriteString(strconv.Itoa(c + 1))
	}
	bw.WriteByte('\n')
	return bw.Flush()
}

func cellMarker(c domain.Cell) byte {
	if p, ok := c.Occupant(); ok {
		return p.Marker()
	}
	return ' '
}
