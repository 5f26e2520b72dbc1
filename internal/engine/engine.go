package engine

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/mariaschitik/ru-pedantle/internal/errors"
	"github.com/mariaschitik/ru-pedantle/internal/game"
	"github.com/mariaschitik/ru-pedantle/internal/match"
	"github.com/mariaschitik/ru-pedantle/model"
	"github.com/mariaschitik/ru-pedantle/services"
)

// Engine hosts concurrent games over a shared, read-only corpus.
// It implements the services.GameManager interface.
type Engine struct {
	mu       sync.RWMutex
	games    map[string]*GameInstance
	source   services.DataSource
	matcher  *match.Matcher
	maskChar rune
	ttl      time.Duration
	metrics  *GameMetrics
	now      func() time.Time

	stopOnce sync.Once
	stopChan chan struct{}
	wg       sync.WaitGroup
}

// NewEngine creates an engine. Games idle for longer than ttl are removed once
// the reaper is started; a zero ttl keeps games until they are deleted.
func NewEngine(source services.DataSource, matcher *match.Matcher, maskChar rune, ttl time.Duration) *Engine {
	return &Engine{
		games:    make(map[string]*GameInstance),
		source:   source,
		matcher:  matcher,
		maskChar: maskChar,
		ttl:      ttl,
		metrics:  NewGameMetrics(),
		now:      time.Now,
		stopChan: make(chan struct{}),
	}
}

// ArticleCount returns the number of playable articles.
func (e *Engine) ArticleCount() int {
	return e.source.Count()
}

// CreateGame starts a new round on the 1-based article number.
func (e *Engine) CreateGame(number int) (model.GameSnapshot, error) {
	count := e.source.Count()
	if number < 1 || number > count {
		return model.GameSnapshot{}, errors.NewOutOfRangeError(number, count)
	}
	record, err := e.source.Record(number - 1)
	if err != nil {
		return model.GameSnapshot{}, err
	}

	instance := newGameInstance(uuid.New().String(), game.NewRound(number, record, e.matcher, e.maskChar), e.now())

	e.mu.Lock()
	e.games[instance.id] = instance
	e.mu.Unlock()

	e.metrics.RecordGameCreated()
	log.Info().Str("game_id", instance.id).Int("article", number).Msg("game created")

	instance.mu.Lock()
	defer instance.mu.Unlock()
	return instance.snapshot(), nil
}

func (e *Engine) lookup(id string) (*GameInstance, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	instance, exists := e.games[id]
	if !exists {
		return nil, errors.NewGameNotFoundError(id)
	}
	return instance, nil
}

// GetGame returns the current state of a game.
func (e *Engine) GetGame(id string) (model.GameSnapshot, error) {
	instance, err := e.lookup(id)
	if err != nil {
		return model.GameSnapshot{}, err
	}
	instance.mu.Lock()
	defer instance.mu.Unlock()
	return instance.snapshot(), nil
}

// SubmitGuess applies one guess to a game.
func (e *Engine) SubmitGuess(id, guess string) (model.GuessOutcome, error) {
	instance, err := e.lookup(id)
	if err != nil {
		return model.GuessOutcome{}, err
	}

	instance.mu.Lock()
	defer instance.mu.Unlock()

	wasWon := instance.round.Won()
	result, err := instance.round.SubmitGuess(guess)
	if err != nil {
		return model.GuessOutcome{}, err
	}
	instance.lastActive = e.now()

	won := !wasWon && instance.round.Won()
	e.metrics.RecordGuess(result.Kind, won, instance.round.Guesses())
	log.Debug().Str("game_id", id).Str("kind", string(result.Kind)).Bool("won", won).Msg("guess processed")

	return model.GuessOutcome{Game: instance.snapshot(), Result: result}, nil
}

// ReplayGame restarts a game on the same article with nothing revealed.
func (e *Engine) ReplayGame(id string) (model.GameSnapshot, error) {
	instance, err := e.lookup(id)
	if err != nil {
		return model.GameSnapshot{}, err
	}

	instance.mu.Lock()
	defer instance.mu.Unlock()

	instance.round.Reset()
	instance.lastActive = e.now()
	e.metrics.RecordReplay()
	log.Info().Str("game_id", id).Int("article", instance.round.Number()).Msg("game replayed")
	return instance.snapshot(), nil
}

// DeleteGame removes a game.
func (e *Engine) DeleteGame(id string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, exists := e.games[id]; !exists {
		return errors.NewGameNotFoundError(id)
	}
	delete(e.games, id)
	log.Info().Str("game_id", id).Msg("game deleted")
	return nil
}

// Stats returns activity counters.
func (e *Engine) Stats() model.GameStats {
	e.mu.RLock()
	active := len(e.games)
	e.mu.RUnlock()
	return e.metrics.Snapshot(active)
}
