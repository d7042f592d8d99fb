package game

import "testing"

// TestLevelerCheck tests the doubling threshold ladder
func TestLevelerCheck(t *testing.T) {
	l := MustNewLeveler(DefaultLevelRule)

	p := &Player{Level: 1, Experience: 50}
	if gained := l.Check(p); gained != 0 || p.Level != 1 {
		t.Errorf("50 xp should not level up, gained %d level %d", gained, p.Level)
	}

	p.Experience = 100
	if gained := l.Check(p); gained != 1 || p.Level != 2 {
		t.Errorf("100 xp should reach level 2, gained %d level %d", gained, p.Level)
	}

	// 400 xp meets the 100, 200 and 400 thresholds in one pass.
	p = &Player{Level: 1, Experience: 400}
	if gained := l.Check(p); gained != 3 || p.Level != 4 {
		t.Errorf("400 xp should reach level 4, gained %d level %d", gained, p.Level)
	}

	p = &Player{Level: 1, Experience: 399}
	if gained := l.Check(p); gained != 2 || p.Level != 3 {
		t.Errorf("399 xp should reach level 3, gained %d level %d", gained, p.Level)
	}
}

// TestLevelerRunawayRuleCapped tests the iteration guard
func TestLevelerRunawayRuleCapped(t *testing.T) {
	l := MustNewLeveler("true")

	p := &Player{Level: 1}
	if gained := l.Check(p); gained != 100 {
		t.Errorf("Expected the cap to stop a runaway rule at 100, gained %d", gained)
	}
}

// TestNewLevelerInvalidRule tests compile failures
func TestNewLevelerInvalidRule(t *testing.T) {
	if _, err := NewLeveler("xp >="); err == nil {
		t.Error("Expected a compile error")
	}
}

// TestMaxXPForLevel tests the threshold table
func TestMaxXPForLevel(t *testing.T) {
	cases := map[int]int{0: 100, 1: 100, 2: 200, 3: 400, 5: 1600}
	for level, want := range cases {
		if got := MaxXPForLevel(level); got != want {
			t.Errorf("Level %d: expected %d, got %d", level, want, got)
		}
	}
}
