package game

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Abubakr-Alsheikh/promptcraft-dungeon/internal/ai"
)

// Difficulty controls how punishing the narrator is asked to be.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// IsValid reports whether d is a known difficulty.
func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// Item is one inventory entry. Quantity is always >= 1; an entry whose
// quantity reaches 0 is removed rather than stored.
type Item struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Quantity    int    `json:"quantity"`
	Rarity      string `json:"rarity"`
	Icon        string `json:"icon,omitempty"`
	CanUse      bool   `json:"canUse"`
	CanEquip    bool   `json:"canEquip"`
	CanDrop     bool   `json:"canDrop"`
}

// Player is the adventurer embedded in a session.
type Player struct {
	Name       string `json:"name"`
	Health     int    `json:"health"`
	MaxHealth  int    `json:"max_health"`
	Gold       int    `json:"gold"`
	Experience int    `json:"experience"`
	Level      int    `json:"level"`
	Inventory  []Item `json:"inventory"`
}

// AdjustHealth adds delta to health, clamped to [0, MaxHealth].
func (p *Player) AdjustHealth(delta int) {
	h := p.Health + delta
	if h < 0 {
		h = 0
	}
	if h > p.MaxHealth {
		h = p.MaxHealth
	}
	p.Health = h
}

// AdjustGold adds delta to gold, clamped to a non-negative value.
func (p *Player) AdjustGold(delta int) {
	g := p.Gold + delta
	if g < 0 {
		g = 0
	}
	p.Gold = g
}

// AddExperience adds a positive experience delta. Experience is monotonic;
// callers must reject negative deltas before getting here.
func (p *Player) AddExperience(delta int) {
	if delta > 0 {
		p.Experience += delta
	}
}

// findItem returns the inventory index of the first case-insensitive name
// match, or -1.
func (p *Player) findItem(name string) int {
	needle := strings.ToLower(strings.TrimSpace(name))
	for i := range p.Inventory {
		if strings.ToLower(strings.TrimSpace(p.Inventory[i].Name)) == needle {
			return i
		}
	}
	return -1
}

// HasItem reports whether the player carries an item by that name,
// case-insensitively.
func (p *Player) HasItem(name string) bool {
	return p.findItem(name) >= 0
}

// AddItem increments the quantity of an existing entry (case-insensitive
// match) or appends a new entry with default metadata and quantity 1.
func (p *Player) AddItem(name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}

	if i := p.findItem(name); i >= 0 {
		p.Inventory[i].Quantity++
		return
	}

	p.Inventory = append(p.Inventory, Item{
		ID:          fmt.Sprintf("item_%s_%d", strings.ToLower(strings.ReplaceAll(name, " ", "_")), len(p.Inventory)),
		Name:        name,
		Description: "Acquired recently.",
		Quantity:    1,
		Rarity:      "common",
		CanDrop:     true,
	})
}

// RemoveItem decrements the matching entry's quantity, dropping the entry
// when it reaches 0. Removing an item the player does not carry is a no-op;
// the narrator may request removals that never happened.
func (p *Player) RemoveItem(name string) bool {
	i := p.findItem(name)
	if i < 0 {
		return false
	}
	if p.Inventory[i].Quantity > 1 {
		p.Inventory[i].Quantity--
		return true
	}
	p.Inventory = append(p.Inventory[:i], p.Inventory[i+1:]...)
	return true
}

// InventorySummary renders the inventory for prompt context, e.g.
// "Rusty Sword (x2), Torch (x1)" or "Empty".
func (p *Player) InventorySummary() string {
	if len(p.Inventory) == 0 {
		return "Empty"
	}
	parts := make([]string, 0, len(p.Inventory))
	for _, item := range p.Inventory {
		parts = append(parts, fmt.Sprintf("%s (x%d)", item.Name, item.Quantity))
	}
	return strings.Join(parts, ", ")
}

// Room is the player's current location. Description and Title persist until
// a room transition replaces them; Events holds the narrator events attached
// when the area was described and is cleared on transition.
type Room struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Exits       []string   `json:"exits"`
	Events      []ai.Event `json:"events"`
}

// Session is the aggregate root for one adventure.
type Session struct {
	ID           string     `json:"id"`
	Difficulty   Difficulty `json:"difficulty"`
	Player       Player     `json:"player"`
	Room         Room       `json:"current_room"`
	History      History    `json:"history"`
	RoomsCleared int        `json:"rooms_cleared"`

	// Version backs optimistic concurrency in the store; 0 means never saved.
	Version   int       `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewSession creates a fresh session with the standard starting loadout.
func NewSession(playerName string, difficulty Difficulty) *Session {
	now := time.Now().UTC()
	return &Session{
		ID:         uuid.New().String(),
		Difficulty: difficulty,
		Player: Player{
			Name:      playerName,
			Health:    100,
			MaxHealth: 100,
			Gold:      10,
			Level:     1,
			Inventory: []Item{},
		},
		Room: Room{
			Exits:  []string{},
			Events: []ai.Event{},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Clone returns a deep copy. The orchestrator mutates clones so a failed turn
// leaves the loaded session untouched.
func (s *Session) Clone() *Session {
	c := *s
	c.Player.Inventory = append([]Item(nil), s.Player.Inventory...)
	c.Room.Exits = append([]string(nil), s.Room.Exits...)
	c.Room.Events = append([]ai.Event(nil), s.Room.Events...)
	c.History.Turns = append([]Turn(nil), s.History.Turns...)
	return &c
}
