package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common error conditions
var (
	// ErrKeyNotFound is returned when a normalized key is absent from the similarity vocabulary
	ErrKeyNotFound = errors.New("key not found")

	// ErrOutOfRange is returned when a requested article number is outside [1, count]
	ErrOutOfRange = errors.New("article number out of range")

	// ErrMalformedCommand is returned when command text is not recognized
	ErrMalformedCommand = errors.New("malformed command")

	// ErrArticleNotFound is returned when a data source has no record at an index
	ErrArticleNotFound = errors.New("article not found")

	// ErrGameNotFound is returned when a game session is not found
	ErrGameNotFound = errors.New("game not found")

	// ErrRoundFinished is returned when a guess is submitted to a round that is already won
	ErrRoundFinished = errors.New("round finished")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrCorpusMisaligned is returned when an article's lemmas cannot be aligned with its words
	ErrCorpusMisaligned = errors.New("corpus misaligned")
)

// KeyNotFoundError represents a vocabulary miss with context
type KeyNotFoundError struct {
	Key string
}

func (e *KeyNotFoundError) Error() string {
	return fmt.Sprintf("key '%s' not present in vocabulary", e.Key)
}

func (e *KeyNotFoundError) Is(target error) bool {
	return target == ErrKeyNotFound
}

// NewKeyNotFoundError creates a new KeyNotFoundError
func NewKeyNotFoundError(key string) *KeyNotFoundError {
	return &KeyNotFoundError{Key: key}
}

// OutOfRangeError represents a navigation request outside the available articles
type OutOfRangeError struct {
	Requested int
	Count     int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("article number %d is out of range, expected 1 to %d", e.Requested, e.Count)
}

func (e *OutOfRangeError) Is(target error) bool {
	return target == ErrOutOfRange
}

// NewOutOfRangeError creates a new OutOfRangeError
func NewOutOfRangeError(requested, count int) *OutOfRangeError {
	return &OutOfRangeError{Requested: requested, Count: count}
}

// MalformedCommandError represents unrecognized command text
type MalformedCommandError struct {
	Command string
}

func (e *MalformedCommandError) Error() string {
	return fmt.Sprintf("unrecognized command '%s'", e.Command)
}

func (e *MalformedCommandError) Is(target error) bool {
	return target == ErrMalformedCommand
}

// NewMalformedCommandError creates a new MalformedCommandError
func NewMalformedCommandError(command string) *MalformedCommandError {
	return &MalformedCommandError{Command: command}
}

// ArticleNotFoundError represents a data source lookup outside the stored records
type ArticleNotFoundError struct {
	Index int
}

func (e *ArticleNotFoundError) Error() string {
	return fmt.Sprintf("article at index %d not found", e.Index)
}

func (e *ArticleNotFoundError) Is(target error) bool {
	return target == ErrArticleNotFound
}

// NewArticleNotFoundError creates a new ArticleNotFoundError
func NewArticleNotFoundError(index int) *ArticleNotFoundError {
	return &ArticleNotFoundError{Index: index}
}

// GameNotFoundError represents a game not found error with context
type GameNotFoundError struct {
	GameID string
}

func (e *GameNotFoundError) Error() string {
	return fmt.Sprintf("game with ID '%s' not found", e.GameID)
}

func (e *GameNotFoundError) Is(target error) bool {
	return target == ErrGameNotFound
}

// NewGameNotFoundError creates a new GameNotFoundError
func NewGameNotFoundError(gameID string) *GameNotFoundError {
	return &GameNotFoundError{GameID: gameID}
}

// ValidationError represents an input validation error with context
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error for field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// MisalignedArticleError reports an article whose lemma list matches neither
// its token count nor its word-token count.
type MisalignedArticleError struct {
	Index      int
	Words      int
	WordTokens int
	Lemmas     int
}

func (e *MisalignedArticleError) Error() string {
	return fmt.Sprintf("article %d has %d lemmas for %d tokens (%d word tokens)", e.Index, e.Lemmas, e.Words, e.WordTokens)
}

func (e *MisalignedArticleError) Is(target error) bool {
	return target == ErrCorpusMisaligned
}

// NewMisalignedArticleError creates a new MisalignedArticleError
func NewMisalignedArticleError(index, words, wordTokens, lemmas int) *MisalignedArticleError {
	return &MisalignedArticleError{Index: index, Words: words, WordTokens: wordTokens, Lemmas: lemmas}
}
