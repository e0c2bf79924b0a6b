// Package prompt asks the user for values and confirmations.
package prompt

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	oerrors "github.com/wpscaffold/cli/internal/errors"
)

// DefaultConfirmTemplate formats the confirmation of an entered value.
const DefaultConfirmTemplate = "You entered %s. OK?"

// Prompter is an interactive question source.
type Prompter interface {
	Input(message string) (string, error)
	Confirm(message string, def bool) (bool, error)
}

// SurveyPrompter prompts on a terminal.
type SurveyPrompter struct {
	opts []survey.AskOpt
}

// NewSurveyPrompter prompts on the process's standard streams.
func NewSurveyPrompter() *SurveyPrompter {
	return &SurveyPrompter{}
}

// NewSurveyPrompterWithStdio prompts on the given streams.
func NewSurveyPrompterWithStdio(in terminal.FileReader, out terminal.FileWriter, errOut io.Writer) *SurveyPrompter {
	return &SurveyPrompter{opts: []survey.AskOpt{survey.WithStdio(in, out, errOut)}}
}

// Input asks a free-text question.
func (p *SurveyPrompter) Input(message string) (string, error) {
	var answer string
	if err := survey.AskOne(&survey.Input{Message: message}, &answer, p.opts...); err != nil {
		return "", translate(err)
	}
	return answer, nil
}

// Confirm asks a yes/no question.
func (p *SurveyPrompter) Confirm(message string, def bool) (bool, error) {
	answer := def
	if err := survey.AskOne(&survey.Confirm{Message: message, Default: def}, &answer, p.opts...); err != nil {
		return false, translate(err)
	}
	return answer, nil
}

func translate(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return fmt.Errorf("interrupted: %w", oerrors.ErrDeclined)
	}
	return fmt.Errorf("prompt failed: %w", err)
}

// Loop asks a question until a non-empty answer is confirmed.
type Loop struct {
	Prompter Prompter

	// MaxAttempts bounds the number of questions asked; 0 means unbounded.
	MaxAttempts int
}

// AskAndConfirm returns the trimmed, confirmed answer to question.
// confirmTemplate receives the answer through a %s verb; empty selects
// DefaultConfirmTemplate.
func (l *Loop) AskAndConfirm(question, confirmTemplate string) (string, error) {
	if confirmTemplate == "" {
		confirmTemplate = DefaultConfirmTemplate
	}

	for attempt := 1; l.MaxAttempts == 0 || attempt <= l.MaxAttempts; attempt++ {
		answer, err := l.Prompter.Input(question)
		if err != nil {
			return "", err
		}
		value := strings.TrimSpace(answer)
		if value == "" {
			continue
		}

		ok, err := l.Prompter.Confirm(confirmation(confirmTemplate, value), true)
		if err != nil {
			return "", err
		}
		if ok {
			return value, nil
		}
	}

	return "", fmt.Errorf("no confirmed answer to %q after %d attempts: %w",
		strings.TrimSpace(question), l.MaxAttempts, oerrors.ErrTooManyAttempts)
}

func confirmation(template, value string) string {
	if !strings.Contains(template, "%s") {
		return template
	}
	return fmt.Sprintf(template, value)
}

// NormalizeConstantsPrefix makes sure a PHP constants prefix ends with "_".
func NormalizeConstantsPrefix(prefix string) string {
	if strings.HasSuffix(prefix, "_") {
		return prefix
	}
	return prefix + "_"
}
