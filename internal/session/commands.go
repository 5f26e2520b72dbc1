// Package session drives console play: menu navigation between articles and
// the guess loop of a single round.
package session

import (
	"strconv"

	"github.com/mariaschitik/ru-pedantle/internal/errors"
	"github.com/mariaschitik/ru-pedantle/internal/tokenizer"
)

// CommandKind identifies a menu command.
type CommandKind int

const (
	CommandContinue CommandKind = iota // play the current article
	CommandJump                        // select another article
	CommandExit                        // end the session
)

// Command is a parsed menu command. Number is the 1-based article for CommandJump.
type Command struct {
	Kind   CommandKind
	Number int
}

var menuWords = map[string]CommandKind{
	"продолжить": CommandContinue,
	"continue":   CommandContinue,
	"exit":       CommandExit,
	"выход":      CommandExit,
}

// ParseCommand interprets menu input. Words are matched case-insensitively;
// a string of decimal digits is a jump.
func ParseCommand(input string) (Command, error) {
	folded := tokenizer.Fold(input)
	if kind, ok := menuWords[folded]; ok {
		return Command{Kind: kind}, nil
	}
	if isDigits(folded) {
		n, err := strconv.Atoi(folded)
		if err == nil {
			return Command{Kind: CommandJump, Number: n}, nil
		}
	}
	return Command{}, errors.NewMalformedCommandError(input)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Round-level inputs that are not guesses.
func isExit(folded string) bool   { return folded == "exit" || folded == "выход" }
func isReplay(folded string) bool { return folded == "заново" || folded == "replay" }
