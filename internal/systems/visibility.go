package systems

import (
	"github.com/sirupsen/logrus"

	"github.com/rpruizc/rustoguelike/internal/core/types/enums"
	"github.com/rpruizc/rustoguelike/internal/domain"
	"github.com/rpruizc/rustoguelike/pkg/logger"
)

// VisibilityAlgorithm выбирает политику пометки клеток.
type VisibilityAlgorithm uint8

const (
	// AlgorithmShadowcast — рекурсивное затенение по восьми октантам.
	AlgorithmShadowcast VisibilityAlgorithm = iota
	// AlgorithmOmniscient — отладочный режим: видна вся карта.
	AlgorithmOmniscient
)

// Мультипликаторы для трансформации координат в 8 октантов
var multipliers = [4][8]int{
	{1, 0, 0, -1, -1, 0, 0, 1},
	{0, 1, -1, 0, 0, -1, 1, 0},
	{0, 1, 1, 0, 0, -1, -1, 0},
	{1, 0, 0, 1, -1, 0, 0, -1},
}

// slope — точный рациональный наклон num/den.
//
// Дробь нормализована на положительный знаменатель, сравнение идёт
// перекрёстным умножением без плавающей точки: дрейф округления у границ
// октантов даёт асимметричные тени.
type slope struct {
	num, den int
}

func newSlope(num, den int) slope {
	if den < 0 {
		num, den = -num, -den
	}
	return slope{num: num, den: den}
}

func (s slope) lessThan(o slope) bool {
	return s.num*o.den < o.num*s.den
}

func (s slope) greaterThan(o slope) bool {
	return s.num*o.den > o.num*s.den
}

// visibilityCell — память одной клетки сетки.
type visibilityCell struct {
	lastSeen uint64      // номер обновления, на котором клетку видели
	tile     domain.Tile // тайл, каким его запомнили
	hasTile  bool
}

// VisibilityGrid — персистентная сетка видимости (туман войны).
//
// Вместо сброса всех клеток на каждом обновлении растёт счётчик:
// lastSeen == count означает Currently, 0 < lastSeen < count означает
// Previously, lastSeen == 0 означает Never. Увиденная однажды клетка
// в Never не возвращается.
type VisibilityGrid struct {
	size   domain.Size
	cells  []visibilityCell
	count  uint64
	marked int // клеток помечено текущим обновлением
}

func NewVisibilityGrid(size domain.Size) *VisibilityGrid {
	return &VisibilityGrid{
		size:  size,
		cells: make([]visibilityCell, size.NumCells()),
	}
}

// Size возвращает размеры сетки.
func (g *VisibilityGrid) Size() domain.Size {
	return g.size
}

// StateAt возвращает состояние видимости клетки.
// Координаты вне сетки читаются как Never.
func (g *VisibilityGrid) StateAt(c domain.Coord) enums.VisibilityState {
	if !g.size.Contains(c) {
		return enums.VisibilityNever
	}

	cell := g.cells[g.size.Index(c)]
	switch {
	case cell.lastSeen == 0:
		return enums.VisibilityNever
	case cell.lastSeen == g.count:
		return enums.VisibilityCurrently
	default:
		return enums.VisibilityPreviously
	}
}

// RememberedTile возвращает тайл, каким клетку запомнили в последний
// раз, когда она была видима.
func (g *VisibilityGrid) RememberedTile(c domain.Coord) (domain.Tile, bool) {
	if !g.size.Contains(c) {
		return domain.Tile{}, false
	}

	cell := g.cells[g.size.Index(c)]
	return cell.tile, cell.hasTile
}

// Update пересчитывает видимость от позиции наблюдателя.
//
// Помечаются только видимые сейчас клетки; всё, что было Currently на
// прошлом обновлении и не попало в новую развёртку, автоматически
// становится Previously за счёт счётчика.
func (g *VisibilityGrid) Update(w *domain.World, viewer domain.Coord, radius int, algorithm VisibilityAlgorithm) {
	g.count++
	g.marked = 0

	fovLogger := logger.Log.WithFields(logrus.Fields{
		"component":    "visibility_system",
		"observer_pos": viewer,
	})

	if algorithm == AlgorithmOmniscient {
		for y := 0; y < g.size.Height; y++ {
			for x := 0; x < g.size.Width; x++ {
				g.mark(w, domain.Coord{X: x, Y: y})
			}
		}
		fovLogger.WithField("is_omniscient", true).Debug("Visibility granted for omniscient observer.")
		return
	}

	if radius <= 0 {
		fovLogger.Warn("Visibility update skipped for blind observer (radius <= 0).")
		return
	}

	// Центр всегда виден
	g.mark(w, viewer)

	// Рекурсивный Shadowcasting для 8 октантов
	for i := 0; i < 8; i++ {
		g.castLight(w, viewer.X, viewer.Y, 1, newSlope(1, 1), newSlope(0, 1), radius,
			multipliers[0][i], multipliers[1][i],
			multipliers[2][i], multipliers[3][i])
	}

	fovLogger.WithFields(logrus.Fields{
		"radius":        radius,
		"visible_tiles": g.marked,
	}).Debug("Visibility update complete.")
}

// mark помечает клетку видимой в текущем обновлении и фиксирует её
// запоминаемый тайл. Память перезаписывается: игрок помнит последнее,
// что видел в клетке. Координата обязана быть в пределах сетки.
func (g *VisibilityGrid) mark(w *domain.World, c domain.Coord) {
	cell := &g.cells[g.size.Index(c)]
	if cell.lastSeen != g.count {
		g.marked++
	}
	cell.lastSeen = g.count

	if tile, ok := w.RememberedTileAt(c); ok {
		cell.tile = tile
		cell.hasTile = true
	}
}

func (g *VisibilityGrid) castLight(w *domain.World, cx, cy, row int, start, end slope, radius, xx, xy, yx, yy int) {
	if start.lessThan(end) {
		return
	}

	radiusSq := radius * radius

	for j := row; j <= radius; j++ {
		dx, dy := -j-1, -j
		blocked := false
		newStart := start

		for {
			dx++
			if dx > 0 {
				break
			}
			dy = -j

			// Наклоны краёв клетки. Числитель и знаменатель удвоены,
			// чтобы не вводить половины: (dx-0.5)/(dy+0.5) == (2dx-1)/(2dy+1)
			lSlope := newSlope(2*dx-1, 2*dy+1)
			rSlope := newSlope(2*dx+1, 2*dy-1)

			if start.lessThan(rSlope) {
				continue
			}
			if end.greaterThan(lSlope) {
				break
			}

			// Трансформация координат в глобальные
			c := domain.Coord{X: cx + dx*xx + dy*xy, Y: cy + dx*yx + dy*yy}

			// Проверка границ и радиуса
			if g.size.Contains(c) && dx*dx+dy*dy < radiusSq {
				g.mark(w, c)
			}

			// Логика теней
			if blocked {
				// Мы идем вдоль стены...
				if isBlocking(w, c) {
					newStart = rSlope
					continue
				}
				// Стена кончилась, началась пустота
				blocked = false
				start = newStart
			} else {
				// Мы шли по пустоте и наткнулись на стену
				if isBlocking(w, c) && j < radius {
					blocked = true
					// Рекурсивно запускаем сканирование следующего ряда
					g.castLight(w, cx, cy, j+1, start, lSlope, radius, xx, xy, yx, yy)
					newStart = rSlope
				}
			}
		}
		if blocked {
			break
		}
	}
}

// isBlocking проверяет, блокирует ли клетка взгляд.
// Выход за границы считается блокирующим.
func isBlocking(w *domain.World, c domain.Coord) bool {
	if !w.Size().Contains(c) {
		return true
	}
	return w.OpacityAt(c) > 0
}
