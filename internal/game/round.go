// Package game implements the reveal and completion rules of a single round.
package game

import (
	"github.com/rs/zerolog/log"

	"github.com/mariaschitik/ru-pedantle/index"
	"github.com/mariaschitik/ru-pedantle/internal/errors"
	"github.com/mariaschitik/ru-pedantle/internal/mask"
	"github.com/mariaschitik/ru-pedantle/internal/match"
	"github.com/mariaschitik/ru-pedantle/internal/tokenizer"
	"github.com/mariaschitik/ru-pedantle/model"
)

// Round is one article being played. It is not safe for concurrent use.
type Round struct {
	number   int
	record   model.Record
	matcher  *match.Matcher
	maskChar rune

	title     *match.TitleContext
	bodyIndex *index.InvertedIndex
	bodyKeys  []match.BodyKey
	required  []string

	revealedTitle index.PositionSet
	revealedBody  index.PositionSet
	state         model.RoundState
	guesses       int
}

// NewRound prepares a round for record. number is the 1-based article number shown to the player.
func NewRound(number int, record model.Record, matcher *match.Matcher, maskChar rune) *Round {
	r := &Round{
		number:    number,
		record:    record,
		matcher:   matcher,
		maskChar:  maskChar,
		title:     matcher.BuildTitle(record.Title.Text),
		bodyIndex: match.BuildBodyIndex(record.Article),
		bodyKeys:  matcher.PrepareBody(record.Article),
	}
	r.required = r.requiredLemmas()
	r.Reset()
	log.Debug().Int("article", number).Int("tokens", len(record.Article.OriginalWords)).
		Int("comparable", len(r.bodyKeys)).Strs("title_lemmas", r.required).Msg("round prepared")
	return r
}

// requiredLemmas returns the folded title lemmas. A title without stored lemmas
// requires the base form of each of its alphabetic tokens instead.
func (r *Round) requiredLemmas() []string {
	var required []string
	seen := make(map[string]struct{})
	add := func(lemma string) {
		f := tokenizer.Fold(lemma)
		if f == "" {
			return
		}
		if _, dup := seen[f]; dup {
			return
		}
		seen[f] = struct{}{}
		required = append(required, f)
	}

	for _, lemma := range r.record.Title.Lemmas {
		add(lemma)
	}
	if len(required) == 0 {
		for i, tok := range r.title.Tokens {
			if tokenizer.IsAlpha(tok) {
				add(r.title.BaseForms[i])
			}
		}
	}
	return required
}

// Reset discards every reveal and starts the round over.
func (r *Round) Reset() {
	r.revealedTitle = index.NewPositionSet()
	r.revealedBody = index.NewPositionSet()
	r.state = model.StateInProgress
	r.guesses = 0
}

// SubmitGuess resolves guess and applies it.
// Exact matches are revealed; an approximate match is reported without revealing anything.
// A won round rejects further guesses with errors.ErrRoundFinished.
func (r *Round) SubmitGuess(guess string) (model.MatchResult, error) {
	if r.state == model.StateWon {
		return model.MatchResult{}, errors.ErrRoundFinished
	}
	forms := r.matcher.GuessForms(guess)
	if len(forms) == 0 {
		return model.MatchResult{}, errors.NewValidationError("guess", "cannot be empty")
	}
	r.guesses++

	result := model.ExactResult(
		match.Exact(forms, r.bodyIndex),
		match.Exact(forms, r.title.Index),
	)
	if result.IsExact() {
		r.revealedBody.Add(result.Body...)
		r.revealedTitle.Add(result.Title...)
		if r.titleComplete() {
			r.win()
		}
		return result, nil
	}

	if nearest, ok := r.matcher.Nearest(guess, r.bodyKeys); ok {
		return model.MatchResult{Kind: model.MatchApproximate, Nearest: &nearest}, nil
	}
	return model.MatchResult{Kind: model.MatchNone}, nil
}

// titleComplete reports whether every required lemma is the base form of some
// alphabetic title token revealed inside the title itself.
func (r *Round) titleComplete() bool {
	revealed := make(map[string]struct{}, r.revealedTitle.Len())
	for pos := range r.revealedTitle {
		if tokenizer.IsAlpha(r.title.Tokens[pos]) {
			revealed[r.title.BaseForms[pos]] = struct{}{}
		}
	}
	for _, lemma := range r.required {
		if _, ok := revealed[lemma]; !ok {
			return false
		}
	}
	return true
}

func (r *Round) win() {
	r.state = model.StateWon
	for i := range r.title.Tokens {
		r.revealedTitle.Add(i)
	}
	log.Info().Int("article", r.number).Int("guesses", r.guesses).Msg("title guessed")
}

// State returns the current lifecycle stage.
func (r *Round) State() model.RoundState { return r.state }

// Won reports whether the title has been completed.
func (r *Round) Won() bool { return r.state == model.StateWon }

// Number returns the 1-based article number.
func (r *Round) Number() int { return r.number }

// Guesses returns the number of accepted guesses since the last reset.
func (r *Round) Guesses() int { return r.guesses }

// Record returns the article being played.
func (r *Round) Record() model.Record { return r.record }

// TitleDisplay renders the title with unrevealed words masked.
func (r *Round) TitleDisplay() string {
	return mask.Render(r.title.Tokens, r.revealedTitle, r.maskChar)
}

// BodyDisplay renders the article body with unrevealed words masked.
func (r *Round) BodyDisplay() string {
	return mask.Render(r.record.Article.OriginalWords, r.revealedBody, r.maskChar)
}

// RevealedTitle returns a copy of the revealed title positions.
func (r *Round) RevealedTitle() index.PositionSet { return r.revealedTitle.Clone() }

// RevealedBody returns a copy of the revealed body positions.
func (r *Round) RevealedBody() index.PositionSet { return r.revealedBody.Clone() }

// View snapshots the round for presentation.
func (r *Round) View() model.RoundView {
	v := model.RoundView{
		Number:  r.number,
		Title:   r.TitleDisplay(),
		Body:    r.BodyDisplay(),
		State:   r.state,
		Guesses: r.guesses,
	}
	if r.Won() {
		v.Link = string(r.record.Link)
		v.Text = r.record.Article.Text()
		v.Heading = r.record.Title.Text
	}
	return v
}
