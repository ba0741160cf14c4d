package domain

import "github.com/rpruizc/rustoguelike/internal/core/types/enums"

// Coord — целочисленные координаты клетки. Ось Y растёт вниз.
type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Shift возвращает новую координату со смещением (не меняя текущую, т.к. Go передает структуры по значению)
func (c Coord) Shift(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// ShiftDirection возвращает соседнюю клетку в кардинальном направлении
func (c Coord) ShiftDirection(d enums.Direction) Coord {
	dx, dy := d.Delta()
	return c.Shift(dx, dy)
}

// DistanceSquaredTo возвращает квадрат расстояния (int) для сравнения без корней
func (c Coord) DistanceSquaredTo(other Coord) int {
	dx := c.X - other.X
	dy := c.Y - other.Y
	return dx*dx + dy*dy
}

// Size — размеры прямоугольной сетки уровня.
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Contains проверяет, что координата лежит в пределах сетки
func (s Size) Contains(c Coord) bool {
	return c.X >= 0 && c.Y >= 0 && c.X < s.Width && c.Y < s.Height
}

// Index возвращает линейный индекс клетки.
// Ключ: Y * Width + X
func (s Size) Index(c Coord) int {
	return c.Y*s.Width + c.X
}

// NumCells возвращает количество клеток сетки
func (s Size) NumCells() int {
	return s.Width * s.Height
}
