package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

var sessionIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// ValidateSessionID validates session ID format
func ValidateSessionID(id string) error {
	if len(id) == 0 || len(id) > 64 {
		return fmt.Errorf("session ID must be 1-64 characters")
	}

	if !sessionIDPattern.MatchString(id) {
		return fmt.Errorf("session ID can only contain alphanumeric characters, hyphens, and underscores")
	}

	return nil
}

// ValidatePlayerName validates the player name supplied at session creation.
func ValidatePlayerName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("player name must not be empty")
	}
	if utf8.RuneCountInString(name) > 80 {
		return fmt.Errorf("player name must be at most 80 characters")
	}
	return nil
}

// ValidateDifficulty validates the difficulty setting.
func ValidateDifficulty(difficulty string) error {
	switch difficulty {
	case "easy", "medium", "hard":
		return nil
	}
	return fmt.Errorf("difficulty must be 'easy', 'medium' or 'hard'")
}

// ValidateCommand validates a player command before it reaches the narrator.
func ValidateCommand(command string) error {
	if strings.TrimSpace(command) == "" {
		return fmt.Errorf("command must not be empty")
	}
	if utf8.RuneCountInString(command) > 500 {
		return fmt.Errorf("command must be at most 500 characters")
	}
	return nil
}
