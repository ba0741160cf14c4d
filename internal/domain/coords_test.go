package domain

import (
	"testing"

	"github.com/rpruizc/rustoguelike/internal/core/types/enums"
)

// Ось Y растёт вниз: север уменьшает Y. От этого зависит и рендер,
// и обход соседей в поле расстояний.
func TestCoord_ShiftDirection(t *testing.T) {
	start := Coord{X: 5, Y: 5}

	tests := []struct {
		dir  enums.Direction
		want Coord
	}{
		{enums.DirectionNorth, Coord{X: 5, Y: 4}},
		{enums.DirectionEast, Coord{X: 6, Y: 5}},
		{enums.DirectionSouth, Coord{X: 5, Y: 6}},
		{enums.DirectionWest, Coord{X: 4, Y: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			if got := start.ShiftDirection(tt.dir); got != tt.want {
				t.Errorf("ShiftDirection(%v) = %v, want %v", tt.dir, got, tt.want)
			}
		})
	}
}

func TestSize_Contains(t *testing.T) {
	s := Size{Width: 3, Height: 2}

	tests := []struct {
		c    Coord
		want bool
	}{
		{Coord{X: 0, Y: 0}, true},
		{Coord{X: 2, Y: 1}, true},
		{Coord{X: 3, Y: 0}, false},
		{Coord{X: 0, Y: 2}, false},
		{Coord{X: -1, Y: 0}, false},
		{Coord{X: 0, Y: -1}, false},
	}

	for _, tt := range tests {
		if got := s.Contains(tt.c); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.c, got, tt.want)
		}
	}
}

func TestSize_Index(t *testing.T) {
	s := Size{Width: 4, Height: 3}

	// Построчная укладка: последняя клетка строки и первая следующей
	// соседствуют в массиве.
	if got := s.Index(Coord{X: 3, Y: 0}); got != 3 {
		t.Errorf("Index(3,0) = %d, want 3", got)
	}
	if got := s.Index(Coord{X: 0, Y: 1}); got != 4 {
		t.Errorf("Index(0,1) = %d, want 4", got)
	}
	if got := s.NumCells(); got != 12 {
		t.Errorf("NumCells = %d, want 12", got)
	}
}

func TestCoord_DistanceSquaredTo(t *testing.T) {
	a := Coord{X: 1, Y: 1}
	b := Coord{X: 4, Y: 5}

	if got := a.DistanceSquaredTo(b); got != 25 {
		t.Errorf("DistanceSquaredTo = %d, want 25", got)
	}
	if got := b.DistanceSquaredTo(a); got != 25 {
		t.Error("distance must be symmetric")
	}
	if got := a.DistanceSquaredTo(a); got != 0 {
		t.Errorf("distance to self = %d, want 0", got)
	}
}
