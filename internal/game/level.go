package game

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// DefaultLevelRule is the level-up threshold: the next level costs twice the
// previous one, starting at 100 XP.
const DefaultLevelRule = "xp >= 100 * 2 ** (level - 1)"

// Leveler evaluates a compiled level-up rule against a player's experience.
type Leveler struct {
	rule    string
	program *vm.Program
}

// NewLeveler compiles a level-up rule. The rule sees `xp` and `level` and
// must evaluate to a boolean.
func NewLeveler(rule string) (*Leveler, error) {
	program, err := expr.Compile(rule)
	if err != nil {
		return nil, fmt.Errorf("invalid level rule %q: %w", rule, err)
	}
	return &Leveler{rule: rule, program: program}, nil
}

// MustNewLeveler is NewLeveler for rules known at compile time.
func MustNewLeveler(rule string) *Leveler {
	l, err := NewLeveler(rule)
	if err != nil {
		panic(err)
	}
	return l
}

// Check raises the player's level while the rule holds and returns the number
// of levels gained. The iteration cap guards against rules that never stop
// holding.
func (l *Leveler) Check(p *Player) int {
	gained := 0
	for gained < 100 {
		result, err := vm.Run(l.program, map[string]any{
			"xp":    p.Experience,
			"level": p.Level,
		})
		if err != nil {
			return gained
		}
		ok, isBool := result.(bool)
		if !isBool || !ok {
			return gained
		}
		p.Level++
		gained++
	}
	return gained
}

// MaxXPForLevel returns the experience needed to leave the given level under
// the default rule.
func MaxXPForLevel(level int) int {
	if level < 1 {
		level = 1
	}
	return 100 * (1 << (level - 1))
}
