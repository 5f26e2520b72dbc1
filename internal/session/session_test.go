package session

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mariaschitik/ru-pedantle/internal/errors"
	"github.com/mariaschitik/ru-pedantle/internal/mask"
	"github.com/mariaschitik/ru-pedantle/internal/match"
	"github.com/mariaschitik/ru-pedantle/internal/morph"
	testutil "github.com/mariaschitik/ru-pedantle/internal/testing"
	"github.com/mariaschitik/ru-pedantle/model"
	"github.com/mariaschitik/ru-pedantle/store"
)

func newTestController(records []model.Record, oracle *testutil.FixedOracle, inputs ...string) (*Controller, *testutil.ScriptedPresenter) {
	if oracle == nil {
		oracle = testutil.NewFixedOracle()
	}
	matcher := match.NewMatcher(morph.NewNormalizer(testutil.SampleLexicon()), oracle, match.DefaultThreshold)
	presenter := testutil.NewScriptedPresenter(inputs...)
	return NewController(store.NewCorpusStore(records), matcher, presenter, mask.DefaultChar), presenter
}

func twoRecords() []model.Record {
	return []model.Record{testutil.CatAndDogRecord(), testutil.HouseRecord()}
}

func TestParseCommand(t *testing.T) {
	tests := []struct {
		input string
		want  Command
		err   bool
	}{
		{"продолжить", Command{Kind: CommandContinue}, false},
		{"  Продолжить ", Command{Kind: CommandContinue}, false},
		{"continue", Command{Kind: CommandContinue}, false},
		{"EXIT", Command{Kind: CommandExit}, false},
		{"выход", Command{Kind: CommandExit}, false},
		{"5", Command{Kind: CommandJump, Number: 5}, false},
		{"0", Command{Kind: CommandJump, Number: 0}, false},
		{"-3", Command{}, true},
		{"+3", Command{}, true},
		{"5a", Command{}, true},
		{"", Command{}, true},
		{"прыгнуть", Command{}, true},
		{"99999999999999999999999", Command{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseCommand(tt.input)
			if tt.err {
				assert.ErrorIs(t, err, errors.ErrMalformedCommand)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestJump(t *testing.T) {
	c, _ := newTestController(testutil.SampleRecords(10), nil)

	err := c.Jump(11)
	assert.ErrorIs(t, err, errors.ErrOutOfRange)
	assert.Equal(t, 0, c.Index())

	assert.ErrorIs(t, c.Jump(0), errors.ErrOutOfRange)

	require.NoError(t, c.Jump(10))
	assert.Equal(t, 9, c.Index())

	require.NoError(t, c.Jump(1))
	assert.Equal(t, 0, c.Index())
}

func TestRun_WinAndAdvance(t *testing.T) {
	c, p := newTestController(twoRecords(), nil, "продолжить", "кот", "пёс", "да")

	require.NoError(t, c.Run(context.Background()))
	assert.Equal(t, 1, c.Index())

	out := p.Transcript()
	assert.Contains(t, out, "ИГРА №1")
	assert.Contains(t, out, "Победа! Вы угадали название: Кот и пёс")
	assert.Contains(t, out, "Кот гонял пса по двору. Река течёт.")
	assert.Contains(t, out, "Текущий номер статьи: 2 из 2")
	assert.True(t, strings.HasSuffix(out, "Игра завершена. Спасибо за участие!"))
}

func TestRun_WinAndDecline(t *testing.T) {
	c, p := newTestController(twoRecords(), nil, "продолжить", "кот", "пёс", "нет", "продолжить")

	require.NoError(t, c.Run(context.Background()))
	assert.Equal(t, 0, c.Index())
	assert.Equal(t, 1, p.Remaining(), "session stops after declining")
}

func TestRun_ExitMidRound(t *testing.T) {
	c, p := newTestController(twoRecords(), nil, "продолжить", "кот", "exit", "продолжить")

	require.NoError(t, c.Run(context.Background()))
	assert.Equal(t, 0, c.Index())
	assert.Equal(t, 1, p.Remaining())
	assert.Contains(t, p.Transcript(), "Спасибо за игру!")
	assert.NotContains(t, p.Transcript(), "Победа")
}

func TestRun_ExitFromMenu(t *testing.T) {
	c, p := newTestController(twoRecords(), nil, "выход")

	require.NoError(t, c.Run(context.Background()))
	assert.Contains(t, p.Transcript(), "Спасибо за игру!")
	assert.NotContains(t, p.Transcript(), "ИГРА")
}

func TestRun_Replay(t *testing.T) {
	c, p := newTestController(twoRecords(), nil, "продолжить", "кот", "заново", "пёс", "exit")

	require.NoError(t, c.Run(context.Background()))
	out := p.Transcript()
	assert.Equal(t, 2, strings.Count(out, "ИГРА №1"))
	assert.NotContains(t, out, "Победа", "replay forgets the revealed cat")
	assert.Contains(t, out, "___ _ пёс")
}

func TestRun_JumpOutOfRangeIsRetryable(t *testing.T) {
	c, p := newTestController(twoRecords(), nil, "7", "2", "продолжить", "exit")

	require.NoError(t, c.Run(context.Background()))
	out := p.Transcript()
	assert.Contains(t, out, "Ошибка: введите число от 1 до 2.")
	assert.Contains(t, out, "ИГРА №2")
	assert.Equal(t, 1, c.Index())
}

func TestRun_MalformedCommand(t *testing.T) {
	c, p := newTestController(twoRecords(), nil, "прыгнуть")

	require.NoError(t, c.Run(context.Background()))
	assert.Contains(t, p.Transcript(), "Некорректная команда. Попробуйте снова.")
	assert.Equal(t, 0, c.Index())
}

func TestRun_GuessFeedback(t *testing.T) {
	oracle := testutil.NewFixedOracle().
		Set(testutil.Key("собака", "NOUN"), testutil.Key("пёс", "NOUN"), 0.8)
	c, p := newTestController(twoRecords(), oracle, "продолжить", "собака", "абырвалг", "   ", "exit")

	require.NoError(t, c.Run(context.Background()))
	out := p.Transcript()
	assert.Contains(t, out, "Слова 'собака' нет в тексте, но оно близко к слову №3 ('пса') с похожестью 0.80.")
	assert.Contains(t, out, "Такой леммы или слова в тексте нет. Попробуйте еще.")
	assert.Contains(t, out, "Введите слово.")
}

func TestRun_EndsAfterLastArticle(t *testing.T) {
	c, p := newTestController([]model.Record{testutil.HouseRecord()}, nil, "продолжить", "дом", "большой", "да", "продолжить")

	require.NoError(t, c.Run(context.Background()))
	assert.Equal(t, 1, c.Index())
	assert.Equal(t, 1, p.Remaining())
	assert.True(t, strings.HasSuffix(p.Transcript(), "Игра завершена. Спасибо за участие!"))
}

func TestRun_EmptyCorpus(t *testing.T) {
	c, p := newTestController(nil, nil, "продолжить")

	require.NoError(t, c.Run(context.Background()))
	assert.Equal(t, 1, p.Remaining())
}

func TestRun_Cancelled(t *testing.T) {
	c, _ := newTestController(twoRecords(), nil, "продолжить")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, c.Run(ctx), context.Canceled)
}

func TestRunRound_Outcomes(t *testing.T) {
	tests := []struct {
		name   string
		inputs []string
		want   Outcome
	}{
		{"advance", []string{"большой", "дом", "да"}, OutcomeAdvance},
		{"decline", []string{"большой", "дом", "нет"}, OutcomeStop},
		{"exit", []string{"exit"}, OutcomeStop},
		{"replay", []string{"дом", "replay"}, OutcomeReplay},
		{"input ends", []string{"дом"}, OutcomeStop},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestController([]model.Record{testutil.HouseRecord()}, nil, tt.inputs...)
			got, err := c.RunRound(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.want, got, "got %s", got)
		})
	}
}
