package game

import "github.com/Abubakr-Alsheikh/promptcraft-dungeon/internal/ai"

// Turn is one committed entry in a session's conversation log.
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
	Seq     int    `json:"seq"`
}

// History is the append-only conversation log replayed to the narrator on
// every call. Turns are never reordered or deleted once committed, and no
// bound is applied here: the replay payload grows for the lifetime of the
// session.
type History struct {
	Turns []Turn `json:"turns"`
}

// Append commits a turn with the next strictly increasing sequence number.
func (h *History) Append(role, content string) {
	seq := 1
	if n := len(h.Turns); n > 0 {
		seq = h.Turns[n-1].Seq + 1
	}
	h.Turns = append(h.Turns, Turn{Role: role, Content: content, Seq: seq})
}

// Replay returns the turns in sequence order as provider messages.
func (h *History) Replay() []ai.Message {
	msgs := make([]ai.Message, 0, len(h.Turns))
	for _, t := range h.Turns {
		msgs = append(msgs, ai.Message{Role: t.Role, Content: t.Content})
	}
	return msgs
}

// Len returns the number of committed turns.
func (h *History) Len() int {
	return len(h.Turns)
}
