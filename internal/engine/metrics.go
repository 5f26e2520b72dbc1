package engine

import (
	"sync"
	"time"

	"github.com/mariaschitik/ru-pedantle/model"
)

// GameMetrics tracks activity across hosted games.
type GameMetrics struct {
	mu            sync.RWMutex
	gamesCreated  int64
	gamesWon      int64
	gamesReplayed int64
	gamesExpired  int64
	guesses       int64
	guessesToWin  int64
	guessesByKind map[model.MatchKind]int64
	lastUpdated   time.Time
}

// NewGameMetrics creates a new metrics collector
func NewGameMetrics() *GameMetrics {
	return &GameMetrics{
		guessesByKind: make(map[model.MatchKind]int64),
		lastUpdated:   time.Now(),
	}
}

// RecordGameCreated increments the creation counter
func (m *GameMetrics) RecordGameCreated() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gamesCreated++
	m.lastUpdated = time.Now()
}

// RecordGuess counts a guess by its match kind. won marks the guess that completed the title.
func (m *GameMetrics) RecordGuess(kind model.MatchKind, won bool, guessesSoFar int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.guesses++
	m.guessesByKind[kind]++
	if won {
		m.gamesWon++
		m.guessesToWin += int64(guessesSoFar)
	}
	m.lastUpdated = time.Now()
}

// RecordReplay counts a restarted game
func (m *GameMetrics) RecordReplay() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gamesReplayed++
	m.lastUpdated = time.Now()
}

// RecordExpired counts games dropped by the idle reaper
func (m *GameMetrics) RecordExpired(n int) {
	if n == 0 {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gamesExpired += int64(n)
	m.lastUpdated = time.Now()
}

// Snapshot returns a copy safe to serialize. activeGames is supplied by the caller.
func (m *GameMetrics) Snapshot(activeGames int) model.GameStats {
	m.mu.RLock()
	defer m.mu.RUnlock()

	byKind := make(map[model.MatchKind]int64, len(m.guessesByKind))
	for k, v := range m.guessesByKind {
		byKind[k] = v
	}
	stats := model.GameStats{
		ActiveGames:   activeGames,
		GamesCreated:  m.gamesCreated,
		GamesWon:      m.gamesWon,
		GamesReplayed: m.gamesReplayed,
		GamesExpired:  m.gamesExpired,
		Guesses:       m.guesses,
		GuessesByKind: byKind,
		LastUpdated:   m.lastUpdated,
	}
	if m.gamesWon > 0 {
		stats.AverageToWin = float64(m.guessesToWin) / float64(m.gamesWon)
	}
	return stats
}
