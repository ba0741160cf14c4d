package dungeon

import (
	"math/rand"

	"github.com/rpruizc/rustoguelike/internal/core/types/enums"
)

// NpcSpawn - одна строка таблицы спавна: вид NPC и его вес.
type NpcSpawn struct {
	Kind   enums.NpcKind
	Weight int
}

// NpcTable - взвешенная таблица выбора вида NPC при заселении уровня.
type NpcTable []NpcSpawn

// Pick выбирает вид NPC пропорционально весам.
// Пустая или обнулённая таблица выдаёт орков.
func (t NpcTable) Pick(rng *rand.Rand) enums.NpcKind {
	total := 0
	for _, s := range t {
		if s.Weight > 0 {
			total += s.Weight
		}
	}
	if total == 0 {
		return enums.NpcKindOrc
	}

	roll := rng.Intn(total)
	for _, s := range t {
		if s.Weight <= 0 {
			continue
		}
		roll -= s.Weight
		if roll < 0 {
			return s.Kind
		}
	}
	return t[len(t)-1].Kind
}

// DefaultNpcTable - стандартное заселение: орки втрое чаще троллей.
var DefaultNpcTable = NpcTable{
	{Kind: enums.NpcKindOrc, Weight: 3},
	{Kind: enums.NpcKindTroll, Weight: 1},
}
