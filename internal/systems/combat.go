package systems

import (
	"fmt"

	"github.com/dirkkok101/roguelike-sub004/internal/domain"
	"github.com/dirkkok101/roguelike-sub004/pkg/logger"
	"github.com/sirupsen/logrus"
)

// ApplyAttack разрешает рукопашную атаку. Возвращает текст для лога.
func ApplyAttack(attacker, target *domain.Actor) string {
	combatLogger := logger.Log.WithFields(logrus.Fields{
		"component":     "combat_system",
		"attacker_id":   attacker.ID,
		"attacker_name": attacker.Name,
		"target_id":     target.ID,
		"target_name":   target.Name,
	})

	if target.Stats == nil {
		combatLogger.Warn("Attack failed: target has no StatsComponent.")
		return fmt.Sprintf("Вы атакуете %s, но это бесполезно.", target.Name)
	}
	if target.Stats.IsDead {
		combatLogger.Info("Attack ineffective: target is already dead.")
		return fmt.Sprintf("Вы пинаете труп %s.", target.Name)
	}

	damage := 1
	if attacker.Stats != nil {
		damage = attacker.Stats.Strength
	}

	hpBefore := target.Stats.HP
	died := target.Stats.TakeDamage(damage)

	combatLogger.WithFields(logrus.Fields{
		"damage":      damage,
		"hp_before":   hpBefore,
		"hp_after":    target.Stats.HP,
		"target_died": died,
	}).Info("Attack resolved.")

	logMsg := fmt.Sprintf("%s наносит %d урона по %s.", attacker.Name, damage, target.Name)

	if died {
		markCorpse(target)
		logMsg += fmt.Sprintf(" %s погибает.", target.Name)
	}

	return logMsg
}

// ApplyRangedEffect - ЕДИНСТВЕННОЕ место, где TrajectoryResult превращается
// в изменение мира. Switch по EffectKind исчерпывающий: новый вид снаряда
// не скомпилируется, пока не получит ветку здесь.
//
// Возвращает текст для лога и true, если действие потратило ход
// (NoTarget/OutOfRange хода не тратят).
func ApplyRangedEffect(level *domain.Level, caster *domain.Actor, effect domain.Effect, res TrajectoryResult) (string, bool) {
	effectLogger := logger.Log.WithFields(logrus.Fields{
		"component": "combat_system",
		"caster_id": caster.ID,
		"effect":    effect.Kind.String(),
		"outcome":   res.Outcome.String(),
	})

	var noun string
	switch effect.Kind {
	case domain.EffectFirebolt:
		noun = "Огненная стрела"
	case domain.EffectLightning:
		noun = "Молния"
	case domain.EffectThrownRock:
		noun = "Камень"
	case domain.EffectArrow:
		noun = "Стрела"
	case domain.EffectUnknown:
		effectLogger.Error("Unknown effect kind reached apply point.")
		return "Ничего не происходит.", false
	}

	switch res.Outcome {
	case TraceNoTarget:
		return "Нет цели.", false

	case TraceOutOfRange:
		return fmt.Sprintf("Цель слишком далеко. Дальность: %d", effect.Range), false

	case TraceHitWall:
		effectLogger.WithField("wall_pos", res.Stopped).Info("Ranged effect hit a wall.")
		return fmt.Sprintf("%s ударяет в стену.", noun), true

	case TraceHitActor:
		target := level.GetActor(res.HitActorID)
		if target == nil || target.Stats == nil {
			// Цель исчезла между трассировкой и применением
			return fmt.Sprintf("%s угасает в пустоте.", noun), true
		}

		hpBefore := target.Stats.HP
		died := target.Stats.TakeDamage(effect.Power)

		effectLogger.WithFields(logrus.Fields{
			"target_id":   target.ID,
			"damage":      effect.Power,
			"hp_before":   hpBefore,
			"hp_after":    target.Stats.HP,
			"target_died": died,
		}).Info("Ranged effect resolved.")

		logMsg := fmt.Sprintf("%s наносит %d урона по %s.", noun, effect.Power, target.Name)
		if died {
			markCorpse(target)
			logMsg += fmt.Sprintf(" %s погибает.", target.Name)
		}
		return logMsg, true

	case TraceReachedTarget:
		// Снаряд долетел до пустой клетки и угас
		return fmt.Sprintf("%s угасает в пустоте.", noun), true
	}

	return "", false
}

// markCorpse визуально превращает актора в труп и успокаивает его AI
func markCorpse(target *domain.Actor) {
	if target.Render != nil {
		target.Render.Symbol = "%"
		target.Render.Color = "text-gray-500"
	}
	if target.Brain != nil {
		target.Brain.Hostile = false
	}
}
