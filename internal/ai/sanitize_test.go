package ai

import "testing"

// TestExtractJSONFencedBlock tests recovery from a markdown code fence
func TestExtractJSONFencedBlock(t *testing.T) {
	raw := "```json\n{\"action_result_description\": \"You wait.\"}\n```"
	got := ExtractJSON(raw)

	want := `{"action_result_description": "You wait."}`
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

// TestExtractJSONBareFence tests a fence without a language tag
func TestExtractJSONBareFence(t *testing.T) {
	raw := "```\n{\"action_result_description\": \"ok\"}\n```"
	got := ExtractJSON(raw)

	want := `{"action_result_description": "ok"}`
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

// TestExtractJSONPlainObject tests already-clean JSON passthrough
func TestExtractJSONPlainObject(t *testing.T) {
	raw := `{"action_result_description": "ok"}`
	if got := ExtractJSON(raw); got != raw {
		t.Errorf("Expected passthrough, got %q", got)
	}
}

// TestExtractJSONSurroundingProse tests brace extraction from chatty replies
func TestExtractJSONSurroundingProse(t *testing.T) {
	raw := "Sure! Here is your JSON:\n{\"action_result_description\": \"ok\"}\nLet me know if you need anything else."
	got := ExtractJSON(raw)

	want := `{"action_result_description": "ok"}`
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

// TestExtractJSONWhitespace tests leading/trailing whitespace handling
func TestExtractJSONWhitespace(t *testing.T) {
	raw := "  \n {\"a\": 1} \n\t"
	if got := ExtractJSON(raw); got != `{"a": 1}` {
		t.Errorf("Expected trimmed object, got %q", got)
	}
}

// TestExtractJSONNoObject tests that absence of an object yields empty
func TestExtractJSONNoObject(t *testing.T) {
	cases := []string{
		"",
		"The narrator says nothing useful.",
		"}{",
	}
	for _, raw := range cases {
		if got := ExtractJSON(raw); got != "" {
			t.Errorf("Expected empty candidate for %q, got %q", raw, got)
		}
	}
}
