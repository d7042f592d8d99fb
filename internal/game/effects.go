package game

import (
	"log/slog"

	"github.com/Abubakr-Alsheikh/promptcraft-dungeon/internal/ai"
)

// EffectEngine applies the deltas of validated narrator events to a player.
type EffectEngine struct {
	logger *slog.Logger
}

// NewEffectEngine creates an effect engine.
func NewEffectEngine(logger *slog.Logger) *EffectEngine {
	return &EffectEngine{logger: logger}
}

// Apply walks the events in reply order and applies each event's effect set.
// Rules, in order per event: health (clamped to [0, max]), gold (clamped to
// >= 0), experience (negative deltas rejected and logged), inventory removals
// (missing items are a no-op), inventory additions, then status effect lists,
// which are accepted structurally but not modeled on the player. No rule can
// fail the turn.
func (e *EffectEngine) Apply(p *Player, events []ai.Event) {
	for _, event := range events {
		if event.Effects == nil {
			continue
		}
		effects := event.Effects

		if effects.Health.Set {
			before := p.Health
			p.AdjustHealth(effects.Health.Value)
			e.logger.Debug("health changed", "event", event.Type, "delta", effects.Health.Value, "from", before, "to", p.Health)
		}

		if effects.Gold.Set {
			before := p.Gold
			p.AdjustGold(effects.Gold.Value)
			e.logger.Debug("gold changed", "event", event.Type, "delta", effects.Gold.Value, "from", before, "to", p.Gold)
		}

		if effects.XP.Set {
			if effects.XP.Value < 0 {
				e.logger.Warn("ignoring negative experience delta", "event", event.Type, "delta", effects.XP.Value)
			} else {
				p.AddExperience(effects.XP.Value)
			}
		}

		for _, name := range effects.InventoryRemove {
			if name == "" {
				continue
			}
			if !p.RemoveItem(name) {
				e.logger.Warn("narrator removed an item the player does not carry", "item", name)
			}
		}

		for _, name := range effects.InventoryAdd {
			p.AddItem(name)
		}

		if len(effects.StatusEffectAdd) > 0 || len(effects.StatusEffectRemove) > 0 {
			e.logger.Debug("status effects not modeled, ignoring",
				"add", effects.StatusEffectAdd, "remove", effects.StatusEffectRemove)
		}
	}
}
