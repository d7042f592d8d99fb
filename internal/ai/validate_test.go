package ai

import (
	"errors"
	"strings"
	"testing"
)

// TestParseReplyMinimal tests Scenario D: fenced minimal reply with defaults
func TestParseReplyMinimal(t *testing.T) {
	raw := "```json\n{\"action_result_description\": \"You wait.\"}\n```"

	reply, err := ParseReply(raw)
	if err != nil {
		t.Fatalf("ParseReply failed: %v", err)
	}

	if reply.ActionResultDescription != "You wait." {
		t.Errorf("Expected action result 'You wait.', got %q", reply.ActionResultDescription)
	}
	if len(reply.TriggeredEvents) != 0 {
		t.Errorf("Expected no events, got %d", len(reply.TriggeredEvents))
	}
	if reply.IsRoomTransition() {
		t.Error("Minimal reply should not be a room transition")
	}
	if reply.NewRoomTitle != "" || reply.SoundEffect != "" {
		t.Error("Optional fields should default to empty")
	}
}

// TestParseReplyFull tests a reply using every field
func TestParseReplyFull(t *testing.T) {
	raw := `{
		"action_result_description": "You strike the goblin down.",
		"triggered_events": [
			{
				"type": "combat",
				"description": "The goblin claws at you before falling.",
				"resolution": "The goblin is defeated",
				"effects": {
					"health": "-10",
					"gold": "+5",
					"xp": 25,
					"inventory_add": ["Goblin Ear"],
					"inventory_remove": [],
					"status_effect_add": ["bleeding"]
				}
			}
		],
		"room_description": "A flooded crypt stretches before you.",
		"new_room_title": "Flooded Crypt",
		"new_room_exits": ["north", "east"],
		"suggested_actions": ["search the rubble"],
		"sound_effect": "sword_hit"
	}`

	reply, err := ParseReply(raw)
	if err != nil {
		t.Fatalf("ParseReply failed: %v", err)
	}

	if len(reply.TriggeredEvents) != 1 {
		t.Fatalf("Expected 1 event, got %d", len(reply.TriggeredEvents))
	}

	effects := reply.TriggeredEvents[0].Effects
	if effects == nil {
		t.Fatal("Effects are nil")
	}
	if !effects.Health.Set || effects.Health.Value != -10 {
		t.Errorf("Expected health delta -10, got %+v", effects.Health)
	}
	if !effects.Gold.Set || effects.Gold.Value != 5 {
		t.Errorf("Expected gold delta +5, got %+v", effects.Gold)
	}
	if !effects.XP.Set || effects.XP.Value != 25 {
		t.Errorf("Expected xp delta 25, got %+v", effects.XP)
	}

	if !reply.IsRoomTransition() {
		t.Error("Expected a room transition")
	}
	if reply.NewRoomTitle != "Flooded Crypt" {
		t.Errorf("Expected title 'Flooded Crypt', got %q", reply.NewRoomTitle)
	}
	if len(reply.NewRoomExits) != 2 {
		t.Errorf("Expected 2 exits, got %d", len(reply.NewRoomExits))
	}
}

// TestParseReplyUnknownFieldsIgnored tests schema tolerance
func TestParseReplyUnknownFieldsIgnored(t *testing.T) {
	raw := `{"action_result_description": "ok", "narrator_mood": "smug", "tokens_used": 993}`

	reply, err := ParseReply(raw)
	if err != nil {
		t.Fatalf("ParseReply failed on unknown fields: %v", err)
	}
	if reply.ActionResultDescription != "ok" {
		t.Errorf("Unexpected action result %q", reply.ActionResultDescription)
	}
}

// TestParseReplyNullOptionals tests explicit nulls for optional fields
func TestParseReplyNullOptionals(t *testing.T) {
	raw := `{
		"action_result_description": "ok",
		"triggered_events": null,
		"room_description": null,
		"new_room_title": null,
		"new_room_exits": null,
		"sound_effect": null
	}`

	reply, err := ParseReply(raw)
	if err != nil {
		t.Fatalf("ParseReply failed on nulls: %v", err)
	}
	if reply.IsRoomTransition() {
		t.Error("Null room_description should not transition")
	}
}

// TestParseReplyMissingDescription tests the single hard requirement
func TestParseReplyMissingDescription(t *testing.T) {
	cases := []string{
		`{}`,
		`{"action_result_description": ""}`,
		`{"action_result_description": "   "}`,
		`{"triggered_events": []}`,
	}

	for _, raw := range cases {
		_, err := ParseReply(raw)
		if err == nil {
			t.Errorf("Expected validation failure for %q", raw)
			continue
		}
		if Classify(err) != ClassMalformed {
			t.Errorf("Expected malformed_output class for %q, got %s", raw, Classify(err))
		}
	}
}

// TestParseReplyInvalidJSON tests that garbage surfaces as malformed_output
func TestParseReplyInvalidJSON(t *testing.T) {
	raw := "I'm sorry, I can't respond in JSON right now."

	_, err := ParseReply(raw)
	if err == nil {
		t.Fatal("Expected an error for non-JSON reply")
	}

	var pe *ProviderError
	if !errors.As(err, &pe) {
		t.Fatalf("Expected *ProviderError, got %T", err)
	}
	if pe.Class != ClassMalformed {
		t.Errorf("Expected malformed_output, got %s", pe.Class)
	}
	if pe.Raw != raw {
		t.Error("Expected offending raw text to be preserved")
	}
}

// TestParseReplyUnparseableDelta tests that a bad delta skips, not fails
func TestParseReplyUnparseableDelta(t *testing.T) {
	raw := `{
		"action_result_description": "ok",
		"triggered_events": [
			{"type": "trap", "description": "spikes", "effects": {"health": "lots"}}
		]
	}`

	reply, err := ParseReply(raw)
	if err != nil {
		t.Fatalf("ParseReply failed: %v", err)
	}
	if reply.TriggeredEvents[0].Effects.Health.Set {
		t.Error("Unparseable delta should be unset, not applied")
	}
}

// TestParseReplyTruncatedJSON tests truncated output
func TestParseReplyTruncatedJSON(t *testing.T) {
	raw := `{"action_result_description": "You open the`

	_, err := ParseReply(raw)
	if err == nil {
		t.Fatal("Expected an error for truncated JSON")
	}
	if !strings.Contains(err.Error(), string(ClassMalformed)) {
		t.Errorf("Expected malformed_output in error, got %v", err)
	}
}
