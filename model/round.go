package model

import "time"

// RoundState is the lifecycle stage of a round.
type RoundState string

const (
	StateInProgress RoundState = "in_progress"
	StateWon        RoundState = "won"
)

// RoundView is a presentation-ready snapshot of a round.
// Link, Text and Heading are only filled once the round is won.
type RoundView struct {
	Number  int        `json:"number"` // 1-based article number
	Title   string     `json:"title"`
	Body    string     `json:"body"`
	State   RoundState `json:"state"`
	Guesses int        `json:"guesses"`
	Link    string     `json:"link,omitempty"`
	Text    string     `json:"text,omitempty"`
	Heading string     `json:"heading,omitempty"` // Unmasked title
}

// GameSnapshot is a round hosted by the HTTP API under a game ID.
type GameSnapshot struct {
	ID string `json:"id"`
	RoundView
	CreatedAt  time.Time `json:"created_at"`
	LastActive time.Time `json:"last_active"`
}

// GuessOutcome is the reply to one guess submitted to a hosted game.
type GuessOutcome struct {
	Game   GameSnapshot `json:"game"`
	Result MatchResult  `json:"result"`
}

// GameStats summarizes activity of the hosted games.
type GameStats struct {
	ActiveGames   int                 `json:"active_games"`
	GamesCreated  int64               `json:"games_created"`
	GamesWon      int64               `json:"games_won"`
	GamesReplayed int64               `json:"games_replayed"`
	GamesExpired  int64               `json:"games_expired"`
	Guesses       int64               `json:"guesses"`
	GuessesByKind map[MatchKind]int64 `json:"guesses_by_kind"`
	AverageToWin  float64             `json:"average_guesses_to_win"`
	LastUpdated   time.Time           `json:"last_updated"`
}
