package engine

import (
	"fmt"
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/rpruizc/rustoguelike/internal/core/types"
	"github.com/rpruizc/rustoguelike/internal/core/types/enums"
	"github.com/rpruizc/rustoguelike/internal/domain"
	"github.com/rpruizc/rustoguelike/internal/systems"
	"github.com/rpruizc/rustoguelike/pkg/logger"
)

// EntityToRender - один элемент снимка для рендера: что рисовать,
// где и насколько ярко.
type EntityToRender struct {
	Tile       domain.Tile
	Location   domain.Location
	Visibility enums.VisibilityState
}

// Game - оркестровка одной игровой сессии: мир, игрок, зрение и
// планировщик NPC. Методы не потокобезопасны, сессия живёт в одной
// горутине.
type Game struct {
	world      *domain.World
	player     types.EntityID
	visibility *systems.VisibilityGrid
	behaviour  *systems.BehaviourContext
	algorithm  systems.VisibilityAlgorithm

	rng  *rand.Rand
	seed int64
	turn uint64

	// Полная лента событий сессии. Фронтенды показывают хвост.
	log []domain.Event
}

// NewGame строит мир по генератору и выполняет первичный расчёт зрения.
func NewGame(cfg Config, gen domain.TerrainGenerator) *Game {
	size := domain.Size{Width: cfg.Width, Height: cfg.Height}
	world := domain.NewWorld(size)
	rng := rand.New(rand.NewSource(cfg.Seed))

	player := populateWorld(world, gen, rng)

	g := &Game{
		world:      world,
		player:     player,
		visibility: systems.NewVisibilityGrid(size),
		behaviour:  systems.NewBehaviourContext(size),
		algorithm:  systems.AlgorithmShadowcast,
		rng:        rng,
		seed:       cfg.Seed,
	}
	if cfg.Omniscient {
		g.algorithm = systems.AlgorithmOmniscient
	}
	g.updateVisibility()

	logger.Log.WithFields(logrus.Fields{
		"component": "game",
		"seed":      cfg.Seed,
		"grid_w":    size.Width,
		"grid_h":    size.Height,
		"entities":  world.Allocator.Len(),
	}).Info("Game session created.")

	return g
}

// ProcessTurn выполняет один полный ход: действие игрока, затем ходы
// всех NPC, затем пересчёт зрения. Возвращает события этого хода.
//
// Команды мёртвого игрока игнорируются: симуляция окончена.
func (g *Game) ProcessTurn(cmd domain.Command) []domain.Event {
	if !g.IsPlayerAlive() {
		return nil
	}
	g.turn++

	var events []domain.Event
	switch cmd.Kind {
	case domain.CommandMove:
		events = append(events, g.movePlayer(cmd.Direction)...)
	case domain.CommandWait:
		// Пропуск хода - легальное действие, время идёт
	}

	events = append(events, g.npcTurns()...)
	g.updateVisibility()

	g.log = append(g.log, events...)
	return events
}

// movePlayer применяет шаг игрока: свободная клетка - переход, враг -
// удар, всё остальное - тихий отказ.
func (g *Game) movePlayer(dir enums.Direction) []domain.Event {
	res := systems.ResolveMove(g.world, g.player, dir)
	switch res.Outcome {
	case systems.MoveFree:
		// ResolveMove только что проверил клетку, отказ невозможен
		if err := g.world.Spatial.UpdateCoord(g.player, res.Target); err != nil {
			panic(fmt.Sprintf("free cell rejected the player: %v", err))
		}
	case systems.MoveBump:
		return systems.ApplyAttack(g.world, g.player, res.Victim)
	}
	return nil
}

func (g *Game) updateVisibility() {
	coord, ok := g.world.EntityCoord(g.player)
	if !ok {
		// Труп игрока вытеснен чужим трупом, смотреть больше некому
		logger.Log.WithField("component", "game").Warn("Player has no location. Visibility update skipped")
		return
	}
	g.visibility.Update(g.world, coord, domain.VisionRadius, g.algorithm)
}

// --- Запросы ---

func (g *Game) World() *domain.World {
	return g.world
}

func (g *Game) Player() types.EntityID {
	return g.player
}

func (g *Game) Size() domain.Size {
	return g.world.Size()
}

// Turn возвращает номер последнего обработанного хода.
func (g *Game) Turn() uint64 {
	return g.turn
}

func (g *Game) Seed() int64 {
	return g.seed
}

// IsPlayerAlive сообщает, жив ли игрок. Мёртвый игрок - конец сессии.
func (g *Game) IsPlayerAlive() bool {
	return g.world.IsLivingCharacter(g.player)
}

// PlayerHitPoints возвращает здоровье игрока для HUD.
func (g *Game) PlayerHitPoints() (domain.HitPoints, bool) {
	return g.world.Components.HitPoints.Get(g.player)
}

func (g *Game) VisibilityAt(c domain.Coord) enums.VisibilityState {
	return g.visibility.StateAt(c)
}

// RememberedTile возвращает то, что игрок помнит о клетке.
func (g *Game) RememberedTile(c domain.Coord) (domain.Tile, bool) {
	return g.visibility.RememberedTile(c)
}

// EventLog возвращает полную ленту событий с начала сессии.
func (g *Game) EventLog() []domain.Event {
	return g.log
}

// Renderables возвращает снимок всех размещённых сущностей с их
// видимостью. Порядок стабилен - это порядок вставки в таблицу тайлов.
func (g *Game) Renderables() []EntityToRender {
	out := make([]EntityToRender, 0, g.world.Components.Tiles.Len())
	g.world.Components.Tiles.ForEach(func(id types.EntityID, tile *domain.Tile) {
		loc, ok := g.world.Spatial.LocationOf(id)
		if !ok {
			return
		}
		out = append(out, EntityToRender{
			Tile:       *tile,
			Location:   loc,
			Visibility: g.visibility.StateAt(loc.Coord),
		})
	})
	return out
}

// --- Читы ---

// Omniscient сообщает, включён ли режим полной видимости.
func (g *Game) Omniscient() bool {
	return g.algorithm == systems.AlgorithmOmniscient
}

// SetOmniscient переключает алгоритм зрения и сразу пересчитывает поле.
// Память клеток при выключении не очищается: однажды увиденное остаётся.
func (g *Game) SetOmniscient(on bool) {
	if on {
		g.algorithm = systems.AlgorithmOmniscient
	} else {
		g.algorithm = systems.AlgorithmShadowcast
	}
	g.updateVisibility()

	logger.Log.WithFields(logrus.Fields{
		"component":  "game",
		"omniscient": on,
	}).Info("Vision algorithm switched.")
}

// TeleportPlayer переносит игрока на клетку, если она проходима.
// Возвращает false для стен, занятых и внешних клеток.
func (g *Game) TeleportPlayer(c domain.Coord) bool {
	if !g.IsPlayerAlive() || !g.world.CanNpcEnter(c) {
		return false
	}
	if err := g.world.Spatial.UpdateCoord(g.player, c); err != nil {
		return false
	}
	g.updateVisibility()
	return true
}

// HealPlayer восстанавливает здоровье игрока до максимума.
// Мёртвого игрока чит не воскрешает: труп уже лежит в своём слое.
func (g *Game) HealPlayer() bool {
	if !g.IsPlayerAlive() {
		return false
	}
	hp, ok := g.world.Components.HitPoints.GetMut(g.player)
	if !ok {
		return false
	}
	hp.Heal(hp.Max)
	return true
}
