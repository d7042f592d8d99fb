package game

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/Abubakr-Alsheikh/promptcraft-dungeon/internal/ai"
	"github.com/Abubakr-Alsheikh/promptcraft-dungeon/internal/prompts"
)

// Service coordinates one player turn: build prompt context, call the
// narrator through the failover orchestrator, commit history, apply effects,
// run the room transition decision, persist.
type Service struct {
	store   Store
	ai      *ai.Orchestrator
	pref    ai.Preference
	engine  *EffectEngine
	leveler *Leveler
	logger  *slog.Logger
}

// NewService wires a session service.
func NewService(store Store, orchestrator *ai.Orchestrator, pref ai.Preference, logger *slog.Logger) *Service {
	return &Service{
		store:   store,
		ai:      orchestrator,
		pref:    pref,
		engine:  NewEffectEngine(logger),
		leveler: MustNewLeveler(DefaultLevelRule),
		logger:  logger,
	}
}

// StartSession creates a session, asks the narrator for the opening scene and
// persists the result. The opening description arrives in
// action_result_description and becomes the first room's persistent
// description; it does not count as a room transition.
func (svc *Service) StartSession(ctx context.Context, playerName string, difficulty Difficulty) (*Session, *ai.StructuredReply, error) {
	s := NewSession(playerName, difficulty)
	svc.logger.Info("starting new session", "session_id", s.ID, "player", playerName, "difficulty", difficulty)

	userPrompt := ai.FormatTemplate(prompts.InitialScene, map[string]string{
		"player_name": playerName,
		"difficulty":  string(difficulty),
	})

	reply, err := svc.ai.Generate(ctx, svc.pref, prompts.NarratorSystem, nil, userPrompt, svc.buildContext(s, "<INITIAL_GENERATION>"))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate the starting area: %w", err)
	}

	s.Room.Description = reply.ActionResultDescription
	if reply.NewRoomTitle != "" {
		s.Room.Title = reply.NewRoomTitle
	} else {
		s.Room.Title = "The Beginning"
	}
	if reply.NewRoomExits != nil {
		s.Room.Exits = reply.NewRoomExits
	}
	s.Room.Events = reply.TriggeredEvents

	// The opening reply is the first assistant turn so later calls replay it.
	s.History.Append(ai.RoleAssistant, marshalReply(reply))

	if err := svc.store.Save(ctx, s); err != nil {
		return nil, nil, err
	}

	return s, reply, nil
}

// HandleCommand runs one player command through the full turn sequence. On
// any failure the returned session is the loaded one, untouched, so the
// caller can safely retry the same command. All mutations land on a clone
// that only becomes visible after a successful save.
func (svc *Service) HandleCommand(ctx context.Context, sessionID, command string) (*Session, *ai.StructuredReply, error) {
	loaded, err := svc.store.Load(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}

	s := loaded.Clone()
	reply, err := svc.ai.Generate(ctx, svc.pref, prompts.NarratorSystem, s.History.Replay(), command, svc.buildContext(s, command))
	if err != nil {
		svc.logger.Error("narrator failed, turn discarded", "session_id", sessionID, "error", err)
		return loaded, nil, err
	}

	s.History.Append(ai.RoleUser, command)
	s.History.Append(ai.RoleAssistant, marshalReply(reply))

	svc.engine.Apply(&s.Player, reply.TriggeredEvents)
	if gained := svc.leveler.Check(&s.Player); gained > 0 {
		svc.logger.Info("player leveled up", "session_id", sessionID, "levels", gained, "level", s.Player.Level)
	}

	if ApplyRoomOutcome(s, reply) {
		svc.logger.Info("player moved to a new area", "session_id", sessionID, "room", s.Room.Title, "rooms_cleared", s.RoomsCleared)
	}

	s.UpdatedAt = time.Now().UTC()
	if err := svc.store.Save(ctx, s); err != nil {
		return loaded, nil, err
	}

	return s, reply, nil
}

// GetSession loads a session by id.
func (svc *Service) GetSession(ctx context.Context, sessionID string) (*Session, error) {
	return svc.store.Load(ctx, sessionID)
}

// buildContext assembles the flat mapping substituted into the narrator
// system template. Values are rendered strings so substitution stays total.
func (svc *Service) buildContext(s *Session, command string) map[string]string {
	description := s.Room.Description
	if description == "" {
		description = "An empty void"
	}
	title := s.Room.Title
	if title == "" {
		title = "Nowhere"
	}

	return map[string]string{
		"difficulty":               string(s.Difficulty),
		"player_name":              s.Player.Name,
		"health":                   strconv.Itoa(s.Player.Health),
		"max_health":               strconv.Itoa(s.Player.MaxHealth),
		"level":                    strconv.Itoa(s.Player.Level),
		"gold":                     strconv.Itoa(s.Player.Gold),
		"inventory":                s.Player.InventorySummary(),
		"current_room_title":       title,
		"current_room_description": description,
		"current_room_exits":       strings.Join(s.Room.Exits, ", "),
		"player_command":           command,
	}
}

func marshalReply(reply *ai.StructuredReply) string {
	data, err := json.Marshal(reply)
	if err != nil {
		return "{}"
	}
	return string(data)
}
