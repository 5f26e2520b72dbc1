package engine

import (
	"sync"
	"time"

	"github.com/mariaschitik/ru-pedantle/internal/game"
	"github.com/mariaschitik/ru-pedantle/model"
)

// GameInstance is one hosted round. Its mutex serializes guesses.
type GameInstance struct {
	mu         sync.Mutex
	id         string
	round      *game.Round
	createdAt  time.Time
	lastActive time.Time
}

func newGameInstance(id string, round *game.Round, now time.Time) *GameInstance {
	return &GameInstance{id: id, round: round, createdAt: now, lastActive: now}
}

// snapshot must be called with g.mu held.
func (g *GameInstance) snapshot() model.GameSnapshot {
	return model.GameSnapshot{
		ID:         g.id,
		RoundView:  g.round.View(),
		CreatedAt:  g.createdAt,
		LastActive: g.lastActive,
	}
}

func (g *GameInstance) idleSince() time.Time {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.lastActive
}
