package ai

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// replySchema is the structural contract for narrator output. It checks shape
// only: unknown fields pass through, numeric deltas may be strings or
// integers, and everything except action_result_description is optional.
const replySchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["action_result_description"],
  "properties": {
    "action_result_description": {"type": "string", "minLength": 1},
    "triggered_events": {
      "type": ["array", "null"],
      "items": {
        "type": "object",
        "required": ["type", "description"],
        "properties": {
          "type": {"type": "string"},
          "description": {"type": "string"},
          "resolution": {"type": ["string", "null"]},
          "effects": {
            "type": ["object", "null"],
            "properties": {
              "health": {"type": ["string", "integer", "null"]},
              "gold": {"type": ["string", "integer", "null"]},
              "xp": {"type": ["string", "integer", "null"]},
              "inventory_add": {"type": ["array", "null"], "items": {"type": "string"}},
              "inventory_remove": {"type": ["array", "null"], "items": {"type": "string"}},
              "status_effect_add": {"type": ["array", "null"], "items": {"type": "string"}},
              "status_effect_remove": {"type": ["array", "null"], "items": {"type": "string"}}
            }
          }
        }
      }
    },
    "room_description": {"type": ["string", "null"]},
    "new_room_title": {"type": ["string", "null"]},
    "new_room_exits": {"type": ["array", "null"], "items": {"type": "string"}},
    "suggested_actions": {"type": ["array", "null"], "items": {"type": "string"}},
    "sound_effect": {"type": ["string", "null"]}
  }
}`

var compiledReplySchema = jsonschema.MustCompileString("reply.schema.json", replySchema)

// ParseReply runs the two-stage pipeline on a raw narrator reply: sanitize to
// a JSON candidate, then validate and decode into a StructuredReply. Every
// failure is a malformed_output ProviderError carrying the raw text.
func ParseReply(raw string) (*StructuredReply, error) {
	candidate := ExtractJSON(raw)
	if candidate == "" {
		return nil, &ProviderError{Class: ClassMalformed, Raw: raw, Err: fmt.Errorf("no JSON object found in reply")}
	}

	var doc any
	if err := json.Unmarshal([]byte(candidate), &doc); err != nil {
		return nil, &ProviderError{Class: ClassMalformed, Raw: raw, Err: fmt.Errorf("failed to decode reply JSON: %w", err)}
	}

	if err := compiledReplySchema.Validate(doc); err != nil {
		return nil, &ProviderError{Class: ClassMalformed, Raw: raw, Err: fmt.Errorf("reply failed schema validation: %w", err)}
	}

	var reply StructuredReply
	if err := json.Unmarshal([]byte(candidate), &reply); err != nil {
		return nil, &ProviderError{Class: ClassMalformed, Raw: raw, Err: fmt.Errorf("failed to decode reply: %w", err)}
	}

	if strings.TrimSpace(reply.ActionResultDescription) == "" {
		return nil, &ProviderError{Class: ClassMalformed, Raw: raw, Err: fmt.Errorf("action_result_description is empty")}
	}

	return &reply, nil
}
