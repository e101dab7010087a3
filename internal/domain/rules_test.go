package domain

import (
	"math/rand"
	"testing"
)

// place puts player's discs on the given cells, filling each column from
// the bottom with the opponent where needed.
func place(t *testing.T, b *Board, player Player, cells [][2]int) {
	t.Helper()
	for _, cell := range cells {
		col, row := cell[0], cell[1]
		for b.ColumnHeight(col) < row {
			if _, err := b.Drop(col, player.Other()); err != nil {
				t.Fatalf("filler drop in column %d failed: %v", col, err)
			}
		}
		if _, err := b.Drop(col, player); err != nil {
			t.Fatalf("drop at (%d,%d) failed: %v", col, row, err)
		}
	}
}

func TestWinInEveryDirection(t *testing.T) {
	tests := []struct {
		name  string
		width int
		cells [][2]int
	}{
		{"horizontal", 5, [][2]int{{0, 0}, {1, 0}, {2, 0}, {3, 0}}},
		{"horizontal right edge", 7, [][2]int{{3, 0}, {4, 0}, {5, 0}, {6, 0}}},
		{"vertical", 5, [][2]int{{4, 0}, {4, 1}, {4, 2}, {4, 3}}},
		{"diagonal", 5, [][2]int{{0, 0}, {1, 1}, {2, 2}, {3, 3}}},
		{"anti-diagonal", 5, [][2]int{{1, 3}, {2, 2}, {3, 1}, {4, 0}}},
		{"five in a row", 7, [][2]int{{1, 0}, {2, 0}, {3, 0}, {4, 0}, {5, 0}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, _ := NewBoard(tt.width)
			place(t, b, First, tt.cells)

			if !HasWin(b, First) {
				t.Fatalf("HasWin missed the line")
			}
			if HasWin(b, Second) {
				t.Fatalf("HasWin credited the filler player")
			}
			for _, cell := range tt.cells {
				if !WinsAt(b, cell[0], cell[1]) {
					t.Fatalf("WinsAt(%d,%d) missed the line", cell[0], cell[1])
				}
			}
		})
	}
}

func TestThreeInARowIsNotAWin(t *testing.T) {
	tests := []struct {
		name  string
		cells [][2]int
	}{
		{"horizontal", [][2]int{{0, 0}, {1, 0}, {2, 0}}},
		{"vertical", [][2]int{{2, 0}, {2, 1}, {2, 2}}},
		{"diagonal", [][2]int{{0, 0}, {1, 1}, {2, 2}}},
		{"anti-diagonal", [][2]int{{2, 1}, {3, 0}, {1, 2}}},
		{"broken horizontal", [][2]int{{0, 0}, {1, 0}, {3, 0}, {4, 0}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, _ := NewBoard(5)
			place(t, b, First, tt.cells)
			if HasWin(b, First) {
				t.Fatalf("HasWin reported a win")
			}
			for _, cell := range tt.cells {
				if WinsAt(b, cell[0], cell[1]) {
					t.Fatalf("WinsAt(%d,%d) reported a win", cell[0], cell[1])
				}
			}
		})
	}
}

func TestWinsAtEmptyCell(t *testing.T) {
	b, _ := NewBoard(5)
	if WinsAt(b, 0, 0) || WinsAt(b, -1, 7) {
		t.Fatalf("empty or off-board cell reported a win")
	}
}

func TestCountInDirection(t *testing.T) {
	b, _ := NewBoard(6)
	place(t, b, Second, [][2]int{{0, 0}, {1, 0}, {2, 0}})

	if got := CountInDirection(b, 0, 0, Directions[0], Second); got != 2 {
		t.Fatalf("expected 2 to the right of origin, got %d", got)
	}
	if got := CountInDirection(b, 2, 0, Direction{DCol: -1}, Second); got != 2 {
		t.Fatalf("expected 2 to the left of origin, got %d", got)
	}
	if got := CountInDirection(b, 0, 0, Directions[1], Second); got != 0 {
		t.Fatalf("expected nothing above origin, got %d", got)
	}
}

func TestAnchoredCheckMatchesFullScan(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for game := 0; game < 300; game++ {
		b, _ := NewBoard(MinWidth + rng.Intn(3))
		p := First
		for !b.IsFull() {
			col := rng.Intn(b.Width())
			if !b.IsColumnPlayable(col) {
				continue
			}
			row, _ := b.Drop(col, p)
			anchored, full := WinsAt(b, col, row), HasWin(b, p)
			if anchored != full {
				t.Fatalf("game %d: WinsAt=%v HasWin=%v after %s played column %d", game, anchored, full, p, col)
			}
			if full {
				break
			}
			p = p.Other()
		}
	}
}
