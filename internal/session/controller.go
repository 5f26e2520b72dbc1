package session

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/mariaschitik/ru-pedantle/internal/errors"
	"github.com/mariaschitik/ru-pedantle/internal/game"
	"github.com/mariaschitik/ru-pedantle/internal/match"
	"github.com/mariaschitik/ru-pedantle/internal/tokenizer"
	"github.com/mariaschitik/ru-pedantle/model"
	"github.com/mariaschitik/ru-pedantle/services"
)

// Outcome is how a round ended.
type Outcome int

const (
	OutcomeAdvance Outcome = iota // won, player wants the next article
	OutcomeStop                   // player left
	OutcomeReplay                 // restart the same article
)

func (o Outcome) String() string {
	switch o {
	case OutcomeAdvance:
		return "advance"
	case OutcomeStop:
		return "stop"
	case OutcomeReplay:
		return "replay"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

const (
	promptMenu     = "\nВаш ввод: "
	promptGuess    = "\nВведите лемму или слово для открытия (или 'exit' для выхода, 'заново' чтобы начать сначала): "
	promptContinue = "\nХотите сыграть ещё один раунд? (да/нет): "

	msgThanks    = "Спасибо за игру!"
	msgFinished  = "\nИгра завершена. Спасибо за участие!"
	msgMalformed = "Некорректная команда. Попробуйте снова."
	msgNoMatch   = "Такой леммы или слова в тексте нет. Попробуйте еще."
	msgEmpty     = "Введите слово."
)

// Controller owns the article index and plays rounds through a Presenter.
// It only reads from the data source.
type Controller struct {
	source    services.DataSource
	matcher   *match.Matcher
	presenter services.Presenter
	maskChar  rune
	index     int
}

// NewController creates a controller positioned at the first article.
func NewController(source services.DataSource, matcher *match.Matcher, presenter services.Presenter, maskChar rune) *Controller {
	return &Controller{
		source:    source,
		matcher:   matcher,
		presenter: presenter,
		maskChar:  maskChar,
	}
}

// Index returns the 0-based index of the current article.
func (c *Controller) Index() int { return c.index }

// Jump selects the 1-based article number. Out of range numbers leave the index unchanged.
func (c *Controller) Jump(number int) error {
	count := c.source.Count()
	if number < 1 || number > count {
		return errors.NewOutOfRangeError(number, count)
	}
	c.index = number - 1
	log.Debug().Int("article", number).Msg("jumped to article")
	return nil
}

// Run shows the menu until the player exits, input ends or every article has been played.
// Errors from the data source are returned.
func (c *Controller) Run(ctx context.Context) error {
	defer c.presenter.Show(msgFinished)

	for c.index < c.source.Count() {
		if err := ctx.Err(); err != nil {
			return err
		}
		c.showMenu()

		line, err := c.presenter.ReadCommand(promptMenu)
		if err != nil {
			return ignoreEOF(err)
		}

		cmd, err := ParseCommand(line)
		if err != nil {
			log.Debug().Err(err).Msg("menu input rejected")
			c.presenter.Show(msgMalformed)
			continue
		}

		switch cmd.Kind {
		case CommandExit:
			c.presenter.Show(msgThanks)
			return nil
		case CommandJump:
			if err := c.Jump(cmd.Number); err != nil {
				c.presenter.Show(fmt.Sprintf("Ошибка: введите число от 1 до %d.", c.source.Count()))
			}
		case CommandContinue:
			outcome, err := c.playCurrent(ctx)
			if err != nil {
				return err
			}
			if outcome == OutcomeStop {
				return nil
			}
			c.index++
		}
	}
	return nil
}

// playCurrent plays the current article, restarting it for as long as the player asks to.
func (c *Controller) playCurrent(ctx context.Context) (Outcome, error) {
	for {
		outcome, err := c.RunRound(ctx)
		if err != nil || outcome != OutcomeReplay {
			return outcome, err
		}
		log.Debug().Int("article", c.index+1).Msg("replaying article")
	}
}

// RunRound plays the current article once and reports how it ended.
func (c *Controller) RunRound(ctx context.Context) (Outcome, error) {
	record, err := c.source.Record(c.index)
	if err != nil {
		return OutcomeStop, fmt.Errorf("failed to load article %d: %w", c.index+1, err)
	}
	round := game.NewRound(c.index+1, record, c.matcher, c.maskChar)

	c.presenter.Show("\n" + strings.Repeat("=", 50))
	c.presenter.Show(fmt.Sprintf("\nИГРА №%d", round.Number()))
	c.showBoard(round)

	for {
		if err := ctx.Err(); err != nil {
			return OutcomeStop, err
		}
		input, err := c.presenter.ReadCommand(promptGuess)
		if err != nil {
			return OutcomeStop, ignoreEOF(err)
		}

		folded := tokenizer.Fold(input)
		switch {
		case isExit(folded):
			c.presenter.Show(msgThanks)
			return OutcomeStop, nil
		case isReplay(folded):
			return OutcomeReplay, nil
		}

		result, err := round.SubmitGuess(input)
		if err != nil {
			if stderrors.Is(err, errors.ErrInvalidInput) {
				c.presenter.Show(msgEmpty)
				continue
			}
			return OutcomeStop, err
		}

		switch result.Kind {
		case model.MatchApproximate:
			c.showNearest(input, record.Article, result.Nearest)
		case model.MatchNone:
			c.presenter.Show(msgNoMatch)
		default:
			c.showBoard(round)
			if round.Won() {
				return c.finish(round)
			}
		}
	}
}

func (c *Controller) finish(round *game.Round) (Outcome, error) {
	record := round.Record()
	c.presenter.Show("\n🔥 Победа! Вы угадали название: " + record.Title.Text)
	c.presenter.Show("📌 Ссылка: " + string(record.Link))
	c.presenter.Show("\nПолный текст статьи:")
	c.presenter.Show(record.Article.Text())
	c.presenter.Show("\nНазвание статьи:")
	c.presenter.Show(record.Title.Text)

	answer, err := c.presenter.ReadCommand(promptContinue)
	if err != nil {
		return OutcomeStop, ignoreEOF(err)
	}
	if tokenizer.Fold(answer) == "да" {
		return OutcomeAdvance, nil
	}
	return OutcomeStop, nil
}

func (c *Controller) showMenu() {
	c.presenter.Show(fmt.Sprintf("\nТекущий номер статьи: %d из %d", c.index+1, c.source.Count()))
	c.presenter.Show("Вы можете ввести:\n" +
		"  - 'продолжить' для игры с текущей статьи\n" +
		"  - номер статьи (например, 5), чтобы перейти к ней\n" +
		"  - 'exit' для выхода")
}

func (c *Controller) showBoard(round *game.Round) {
	c.presenter.Show("\nНазвание статьи:")
	c.presenter.Show(round.TitleDisplay())
	c.presenter.Show("\nТекст с закрытыми словами:")
	c.presenter.Show(round.BodyDisplay())
}

// showNearest names the close word by its ordinal among the article's words.
func (c *Controller) showNearest(guess string, article model.Article, nearest *model.Nearest) {
	ordinal := tokenizer.CountWords(article.OriginalWords[:nearest.Index+1])
	c.presenter.Show(fmt.Sprintf("Слова '%s' нет в тексте, но оно близко к слову №%d ('%s') с похожестью %.2f.",
		strings.TrimSpace(guess), ordinal, nearest.Word, nearest.Score))
}

func ignoreEOF(err error) error {
	if stderrors.Is(err, io.EOF) {
		return nil
	}
	return err
}
