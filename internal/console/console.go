// Package console implements the terminal presenter for the game.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"sync"
)

// Presenter reads player commands line by line and writes game output.
type Presenter struct {
	mu     sync.Mutex
	reader *bufio.Reader
	writer io.Writer
}

// NewPresenter creates a presenter over r and w, typically os.Stdin and os.Stdout.
func NewPresenter(r io.Reader, w io.Writer) *Presenter {
	return &Presenter{reader: bufio.NewReader(r), writer: w}
}

// ReadCommand shows prompt and returns the next input line without its line ending.
// A final line without a newline is returned as is; after that io.EOF is returned.
func (p *Presenter) ReadCommand(prompt string) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, err := io.WriteString(p.writer, prompt); err != nil {
		return "", fmt.Errorf("failed to write prompt: %w", err)
	}
	line, err := p.reader.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Show writes text followed by a newline. Write errors are ignored.
func (p *Presenter) Show(text string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, _ = io.WriteString(p.writer, text+"\n")
}
