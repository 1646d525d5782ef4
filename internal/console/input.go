package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

var errEmptyInput = errors.New("empty input")

type prompter struct {
	reader *bufio.Reader
	out    io.Writer
	term   Terminal
}

func newPrompter(term Terminal) *prompter {
	return &prompter{
		reader: bufio.NewReader(term.In),
		out:    term.Err,
		term:   term,
	}
}

// text prints label and reads one trimmed line. A partial line before EOF counts.
func (p *prompter) text(label string) (string, error) {
	if _, err := fmt.Fprintf(p.out, "%s: ", label); err != nil {
		return "", err
	}

	line, err := p.reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && len(line) > 0) {
		return "", fmt.Errorf("read %s: %w", strings.ToLower(label), err)
	}

	line = strings.TrimSpace(line)
	if line == "" {
		return "", fmt.Errorf("%s: %w", strings.ToLower(label), errEmptyInput)
	}
	return line, nil
}

func (p *prompter) textOrFlag(flagValue, label string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	return p.text(label)
}

func (p *prompter) password(label string) (string, error) {
	if _, err := fmt.Fprintf(p.out, "%s: ", label); err != nil {
		return "", err
	}

	pw, err := p.term.ReadPassword()
	_, _ = fmt.Fprintln(p.out)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", strings.ToLower(label), err)
	}
	if len(pw) == 0 {
		return "", fmt.Errorf("%s: %w", strings.ToLower(label), errEmptyInput)
	}

	return string(pw), nil
}
