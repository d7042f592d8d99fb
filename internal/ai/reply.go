package ai

import (
	"strconv"
	"strings"
)

// StructuredReply is the validated, typed form of the narrator's JSON output.
// Optional fields default to their zero values; a non-empty RoomDescription is
// the sole signal that the player moved to a new area.
type StructuredReply struct {
	ActionResultDescription string   `json:"action_result_description"`
	TriggeredEvents         []Event  `json:"triggered_events"`
	RoomDescription         string   `json:"room_description"`
	NewRoomTitle            string   `json:"new_room_title"`
	NewRoomExits            []string `json:"new_room_exits"`
	SuggestedActions        []string `json:"suggested_actions"`
	SoundEffect             string   `json:"sound_effect"`
}

// IsRoomTransition reports whether this reply moves the player to a new area.
func (r *StructuredReply) IsRoomTransition() bool {
	return strings.TrimSpace(r.RoomDescription) != ""
}

// Event is one narrative consequence of the player's action.
type Event struct {
	Type        string     `json:"type"`
	Description string     `json:"description"`
	Resolution  string     `json:"resolution"`
	Effects     *EffectSet `json:"effects"`
}

// EffectSet bundles the state deltas attached to one event.
type EffectSet struct {
	Health             Delta    `json:"health"`
	Gold               Delta    `json:"gold"`
	XP                 Delta    `json:"xp"`
	InventoryAdd       []string `json:"inventory_add"`
	InventoryRemove    []string `json:"inventory_remove"`
	StatusEffectAdd    []string `json:"status_effect_add"`
	StatusEffectRemove []string `json:"status_effect_remove"`
}

// Delta is a signed integer delta that tolerates the narrator emitting either
// a JSON number or a numeric string such as "-10" or "+5". Set is false for
// absent, null, or unparseable values; unparseable deltas must not fail the
// whole reply.
type Delta struct {
	Value int
	Set   bool
}

// UnmarshalJSON never returns an error; anything that does not parse as a
// signed integer leaves the delta unset.
func (d *Delta) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "" || s == "null" {
		return nil
	}
	if strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) && len(s) >= 2 {
		s = strings.TrimSpace(s[1 : len(s)-1])
	}
	s = strings.TrimPrefix(s, "+")
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	d.Value = n
	d.Set = true
	return nil
}

// MarshalJSON renders set deltas as numbers and unset deltas as null.
func (d Delta) MarshalJSON() ([]byte, error) {
	if !d.Set {
		return []byte("null"), nil
	}
	return []byte(strconv.Itoa(d.Value)), nil
}
