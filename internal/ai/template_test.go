package ai

import "testing"

// TestFormatTemplate tests placeholder substitution
func TestFormatTemplate(t *testing.T) {
	tmpl := "Player {player_name} is level {level}."
	got := FormatTemplate(tmpl, map[string]string{
		"player_name": "Brynn",
		"level":       "3",
	})

	want := "Player Brynn is level 3."
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

// TestFormatTemplateMissingKey tests that missing keys yield a visible marker
func TestFormatTemplateMissingKey(t *testing.T) {
	got := FormatTemplate("Gold: {gold}", map[string]string{})

	want := "Gold: <gold_unavailable>"
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

// TestFormatTemplateJSONBracesUntouched tests that JSON-looking braces survive
func TestFormatTemplateJSONBracesUntouched(t *testing.T) {
	tmpl := `{"action_result_description": "string"} with {difficulty}`
	got := FormatTemplate(tmpl, map[string]string{"difficulty": "hard"})

	want := `{"action_result_description": "string"} with hard`
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

// TestFormatTemplateEmptyValue tests that an empty value still substitutes
func TestFormatTemplateEmptyValue(t *testing.T) {
	got := FormatTemplate("exits: {current_room_exits}", map[string]string{"current_room_exits": ""})
	if got != "exits: " {
		t.Errorf("Expected empty substitution, got %q", got)
	}
}
