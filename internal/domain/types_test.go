package domain

import "testing"

func TestPlayerOther(t *testing.T) {
	if First.Other() != Second || Second.Other() != First {
		t.Fatalf("Other does not flip players")
	}
	if First.Marker() != 'X' || Second.Marker() != 'O' {
		t.Fatalf("unexpected markers %c %c", First.Marker(), Second.Marker())
	}
}

func TestCellOccupant(t *testing.T) {
	if _, ok := Empty.Occupant(); ok {
		t.Fatalf("empty cell has an occupant")
	}
	for _, p := range []Player{First, Second} {
		if got, ok := CellOf(p).Occupant(); !ok || got != p {
			t.Fatalf("CellOf(%s) occupant = %s, %v", p, got, ok)
		}
	}
}

func TestTotalsAdd(t *testing.T) {
	var totals Totals
	for _, o := range []Outcome{Win(First), Win(First), Win(Second), Draw()} {
		totals.Add(o)
	}
	want := Totals{FirstWins: 2, SecondWins: 1, Draws: 1}
	if totals != want {
		t.Fatalf("expected %+v, got %+v", want, totals)
	}
	if totals.Games() != 4 {
		t.Fatalf("expected 4 games, got %d", totals.Games())
	}
}
