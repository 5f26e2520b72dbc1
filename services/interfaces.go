package services

import (
	"github.com/mariaschitik/ru-pedantle/model"
)

// DataSource provides read-only access to the playable articles.
// Indexes are 0-based; an index outside [0, Count()) yields errors.ErrArticleNotFound.
type DataSource interface {
	Article(i int) (model.Article, error)
	Title(i int) (model.Title, error)
	Link(i int) (model.Link, error)
	Record(i int) (model.Record, error)
	Count() int
}

// Analyzer is a morphological analyzer.
// Analyze returns the readings of a surface word ranked best-first;
// an empty result is valid and means the word could not be analyzed.
type Analyzer interface {
	Analyze(word string) []model.Analysis
}

// SimilarityOracle scores how close two normalized keys are.
// Similarity returns a value in [-1, 1] and fails with errors.ErrKeyNotFound
// when either key is absent from the vocabulary.
type SimilarityOracle interface {
	Contains(key model.NormalizedKey) bool
	Similarity(a, b model.NormalizedKey) (float64, error)
}

// Presenter is the player-facing side of a console session.
type Presenter interface {
	ReadCommand(prompt string) (string, error)
	Show(text string)
}

// GameManager hosts independent rounds addressed by game ID.
// Article numbers are 1-based.
type GameManager interface {
	ArticleCount() int
	CreateGame(number int) (model.GameSnapshot, error)
	GetGame(id string) (model.GameSnapshot, error)
	SubmitGuess(id, guess string) (model.GuessOutcome, error)
	ReplayGame(id string) (model.GameSnapshot, error)
	DeleteGame(id string) error
	Stats() model.GameStats
}
