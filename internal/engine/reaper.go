package engine

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

const maxReapInterval = time.Minute

// Start launches the idle-game reaper. It stops when ctx is done or Stop is called.
// Nothing is started when the engine has no ttl.
func (e *Engine) Start(ctx context.Context) {
	if e.ttl <= 0 {
		return
	}
	interval := min(e.ttl, maxReapInterval)
	log.Info().Dur("ttl", e.ttl).Dur("interval", interval).Msg("game reaper started")

	e.wg.Add(1)
	go func() {
		defer e.wg.Done()
		e.reapRoutine(ctx, interval)
	}()
}

// Stop halts the reaper and waits for it to exit. It is safe to call more than once.
func (e *Engine) Stop() {
	e.stopOnce.Do(func() { close(e.stopChan) })
	e.wg.Wait()
}

func (e *Engine) reapRoutine(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			e.CleanupIdleGames(e.ttl)
		case <-ctx.Done():
			return
		case <-e.stopChan:
			return
		}
	}
}

// CleanupIdleGames removes games not touched within maxIdle and returns how many were removed.
func (e *Engine) CleanupIdleGames(maxIdle time.Duration) int {
	cutoff := e.now().Add(-maxIdle)

	e.mu.Lock()
	defer e.mu.Unlock()

	cleaned := 0
	for id, instance := range e.games {
		if instance.idleSince().Before(cutoff) {
			delete(e.games, id)
			cleaned++
		}
	}

	if cleaned > 0 {
		e.metrics.RecordExpired(cleaned)
		log.Info().Int("games", cleaned).Msg("cleaned up idle games")
	}
	return cleaned
}
