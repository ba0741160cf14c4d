package domain

import (
	"github.com/rpruizc/rustoguelike/internal/core/types"
	"github.com/rpruizc/rustoguelike/internal/core/types/enums"
)

// --- КОМПОНЕНТЫ ---

// Components — по одной таблице на каждый вид компонента.
//
// Tiles есть у всего, что рисуется. NpcKinds только у NPC и их трупов:
// наличие записи и есть признак "NPC-принадлежности" при проверке
// столкновений. HitPoints у живых персонажей (у трупа остаётся нулевое).
// Agents только у живых NPC.
type Components struct {
	Tiles     *Table[Tile]
	NpcKinds  *Table[enums.NpcKind]
	HitPoints *Table[HitPoints]
	Agents    *Table[Agent]
}

func NewComponents() *Components {
	return &Components{
		Tiles:     NewTable[Tile](),
		NpcKinds:  NewTable[enums.NpcKind](),
		HitPoints: NewTable[HitPoints](),
		Agents:    NewTable[Agent](),
	}
}

// RemoveEntity вычищает сущность из всех таблиц разом.
func (c *Components) RemoveEntity(id types.EntityID) {
	c.Tiles.Remove(id)
	c.NpcKinds.Remove(id)
	c.HitPoints.Remove(id)
	c.Agents.Remove(id)
}
