package systems

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/rpruizc/rustoguelike/internal/core/types"
	"github.com/rpruizc/rustoguelike/internal/core/types/enums"
	"github.com/rpruizc/rustoguelike/internal/domain"
	"github.com/rpruizc/rustoguelike/pkg/logger"
)

// ApplyAttack наносит один удар по цели и возвращает события для
// журнала хода. Если цель погибла, здесь же выполняется переход в труп.
func ApplyAttack(w *domain.World, attacker, target types.EntityID) []domain.Event {
	combatLogger := logger.Log.WithFields(logrus.Fields{
		"component":   "combat_system",
		"attacker_id": attacker,
		"target_id":   target,
	})

	// --- Проверка граничных условий ---

	hp, ok := w.Components.HitPoints.GetMut(target)
	if !ok {
		combatLogger.Warn("Attack skipped: target has no hit points.")
		return nil
	}
	if hp.IsDead() {
		combatLogger.Info("Attack ineffective: target is already dead.")
		return nil
	}

	attackerName := describe(w, attacker)
	targetName := describe(w, target)

	hpBefore := hp.Current
	died := hp.TakeDamage(domain.BumpDamage)
	hpAfter := hp.Current

	combatLogger.WithFields(logrus.Fields{
		"damage":      domain.BumpDamage,
		"hp_before":   hpBefore,
		"hp_after":    hpAfter,
		"target_died": died,
	}).Info("Attack resolved.")

	events := []domain.Event{
		domain.AttackEvent(attacker, target,
			fmt.Sprintf("%s hits %s for %d damage.", upperFirst(attackerName), targetName, domain.BumpDamage)),
	}

	if died {
		CharacterDie(w, target)
		events = append(events, domain.DeathEvent(target, fmt.Sprintf("%s dies.", upperFirst(targetName))))
	}
	return events
}

// CharacterDie превращает персонажа в труп.
//
// Слот переезжает Character -> Corpse, тайл меняется на трупный вариант,
// поведенческая запись снимается. Если клетка уже держит труп, старый
// удаляется целиком и слот занимает новый: не больше одного трупа на
// клетку, новый вытесняет старый.
func CharacterDie(w *domain.World, entity types.EntityID) {
	deathLogger := logger.Log.WithFields(logrus.Fields{
		"component": "combat_system",
		"entity_id": entity,
	})

	if err := w.Spatial.UpdateLayer(entity, enums.LayerCorpse); err != nil {
		var occ *domain.OccupiedError
		if !errors.As(err, &occ) {
			// Некуда умирать: инвариант мира сломан
			panic(fmt.Sprintf("character die failed: %v", err))
		}

		w.RemoveEntity(occ.By)
		if err := w.Spatial.UpdateLayer(entity, enums.LayerCorpse); err != nil {
			panic(fmt.Sprintf("corpse slot still occupied after eviction: %v", err))
		}
		deathLogger.WithField("replaced_corpse", occ.By).Debug("Existing corpse replaced by newer one.")
	}

	tile, ok := w.Components.Tiles.Get(entity)
	if !ok {
		panic(fmt.Sprintf("dying character %s has no tile", entity))
	}
	w.Components.Tiles.Insert(entity, tile.CorpseTile())

	// Мёртвые не ходят
	w.Components.Agents.Remove(entity)

	deathLogger.Info("Character died.")
}

// describe возвращает имя сущности для текста событий: "Player",
// "the orc", "the troll".
func describe(w *domain.World, id types.EntityID) string {
	tile, ok := w.Components.Tiles.Get(id)
	if !ok {
		return "something"
	}

	switch tile.Kind {
	case enums.TileKindPlayer, enums.TileKindPlayerCorpse:
		return "Player"
	case enums.TileKindNpc, enums.TileKindNpcCorpse:
		return "the " + strings.ToLower(tile.Npc.String())
	}
	return strings.ToLower(tile.Kind.String())
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
