package game

import "github.com/Abubakr-Alsheikh/promptcraft-dungeon/internal/ai"

// DefaultRoomTitle is used when the narrator describes a new area without
// naming it.
const DefaultRoomTitle = "Unknown Area"

// ApplyRoomOutcome runs the per-turn stationary/transitioning decision and
// reports whether a transition happened. A non-empty room_description in the
// reply is the sole transition signal; it is re-evaluated fresh on every
// command with no memory beyond the rooms-cleared counter.
//
// Stationary: the room's persistent description, title, exits and events are
// untouched; action_result_description is transient feedback only.
//
// Transitioning: the persistent description is replaced, title and exits take
// the narrator's suggestions or their defaults, events attached to the old
// room are discarded, and RoomsCleared increments by exactly 1.
func ApplyRoomOutcome(s *Session, reply *ai.StructuredReply) bool {
	if !reply.IsRoomTransition() {
		return false
	}

	s.Room.Description = reply.RoomDescription
	if reply.NewRoomTitle != "" {
		s.Room.Title = reply.NewRoomTitle
	} else {
		s.Room.Title = DefaultRoomTitle
	}
	if reply.NewRoomExits != nil {
		s.Room.Exits = reply.NewRoomExits
	} else {
		s.Room.Exits = []string{}
	}
	s.Room.Events = []ai.Event{}
	s.RoomsCleared++
	return true
}
