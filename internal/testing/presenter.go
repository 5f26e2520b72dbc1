package testing

import (
	"io"
	"strings"
)

// ScriptedPresenter replays fixed input lines and records everything shown.
// Once the script is exhausted ReadCommand returns io.EOF.
type ScriptedPresenter struct {
	inputs  []string
	Prompts []string
	Output  []string
}

// NewScriptedPresenter creates a presenter answering prompts with inputs in order.
func NewScriptedPresenter(inputs ...string) *ScriptedPresenter {
	return &ScriptedPresenter{inputs: inputs}
}

// ReadCommand implements services.Presenter.
func (p *ScriptedPresenter) ReadCommand(prompt string) (string, error) {
	p.Prompts = append(p.Prompts, prompt)
	if len(p.inputs) == 0 {
		return "", io.EOF
	}
	next := p.inputs[0]
	p.inputs = p.inputs[1:]
	return next, nil
}

// Show implements services.Presenter.
func (p *ScriptedPresenter) Show(text string) {
	p.Output = append(p.Output, text)
}

// Remaining returns the number of unread input lines.
func (p *ScriptedPresenter) Remaining() int { return len(p.inputs) }

// Transcript joins everything shown so far.
func (p *ScriptedPresenter) Transcript() string {
	return strings.Join(p.Output, "\n")
}
