package console

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mariaschitik/ru-pedantle/services"
)

var _ services.Presenter = (*Presenter)(nil)

func TestReadCommand(t *testing.T) {
	var out bytes.Buffer
	p := NewPresenter(strings.NewReader("продолжить\r\nкот\nпоследняя"), &out)

	line, err := p.ReadCommand("> ")
	require.NoError(t, err)
	assert.Equal(t, "продолжить", line)

	line, err = p.ReadCommand("> ")
	require.NoError(t, err)
	assert.Equal(t, "кот", line)

	line, err = p.ReadCommand("> ")
	require.NoError(t, err)
	assert.Equal(t, "последняя", line)

	_, err = p.ReadCommand("> ")
	assert.ErrorIs(t, err, io.EOF)

	assert.Equal(t, "> > > > ", out.String())
}

func TestShow(t *testing.T) {
	var out bytes.Buffer
	p := NewPresenter(strings.NewReader(""), &out)

	p.Show("Название статьи:")
	p.Show("___ _ ___")
	assert.Equal(t, "Название статьи:\n___ _ ___\n", out.String())
}
