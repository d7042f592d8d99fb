package api

import (
	"github.com/Abubakr-Alsheikh/promptcraft-dungeon/internal/ai"
	"github.com/Abubakr-Alsheikh/promptcraft-dungeon/internal/game"
)

// PlayerStats is the frontend-facing view of a player.
type PlayerStats struct {
	CurrentHP int `json:"currentHp"`
	MaxHP     int `json:"maxHp"`
	Gold      int `json:"gold"`
	XP        int `json:"xp"`
	MaxXP     int `json:"maxXp"`
	Level     int `json:"level"`
}

// SessionState is the frontend-facing view of a session.
type SessionState struct {
	SessionID    string      `json:"session_id"`
	Difficulty   string      `json:"difficulty"`
	PlayerStats  PlayerStats `json:"playerStats"`
	Inventory    []game.Item `json:"inventory"`
	Description  string      `json:"description"`
	RoomTitle    string      `json:"roomTitle"`
	Exits        []string    `json:"exits"`
	RoomsCleared int         `json:"rooms_cleared"`
}

// TurnResult is the response to a processed command: the updated session
// state plus the transient narrative of this turn.
type TurnResult struct {
	SessionState
	Message          string     `json:"message"`
	Events           []ai.Event `json:"events"`
	SuggestedActions []string   `json:"suggested_actions,omitempty"`
	SoundEffect      string     `json:"soundEffect,omitempty"`
}

func newSessionState(s *game.Session) SessionState {
	inventory := s.Player.Inventory
	if inventory == nil {
		inventory = []game.Item{}
	}
	return SessionState{
		SessionID:  s.ID,
		Difficulty: string(s.Difficulty),
		PlayerStats: PlayerStats{
			CurrentHP: s.Player.Health,
			MaxHP:     s.Player.MaxHealth,
			Gold:      s.Player.Gold,
			XP:        s.Player.Experience,
			MaxXP:     game.MaxXPForLevel(s.Player.Level),
			Level:     s.Player.Level,
		},
		Inventory:    inventory,
		Description:  s.Room.Description,
		RoomTitle:    s.Room.Title,
		Exits:        s.Room.Exits,
		RoomsCleared: s.RoomsCleared,
	}
}

func newTurnResult(s *game.Session, reply *ai.StructuredReply) TurnResult {
	events := reply.TriggeredEvents
	if events == nil {
		events = []ai.Event{}
	}
	return TurnResult{
		SessionState:     newSessionState(s),
		Message:          reply.ActionResultDescription,
		Events:           events,
		SuggestedActions: reply.SuggestedActions,
		SoundEffect:      reply.SoundEffect,
	}
}
