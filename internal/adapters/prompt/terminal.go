package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/bnema/badb/internal/domain"
	"github.com/bnema/badb/internal/ports"
)

// Terminal is a line-oriented prompter. Prompts go to out, answers are read
// from in one line at a time.
type Terminal struct {
	in  *bufio.Reader
	out io.Writer
}

var _ ports.Prompter = (*Terminal)(nil)

func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{in: bufio.NewReader(in), out: out}
}

func (t *Terminal) Notify(text string) error {
	_, err := io.WriteString(t.out, text)
	return err
}

func (t *Terminal) Ask(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if _, err := io.WriteString(t.out, prompt); err != nil {
		return "", fmt.Errorf("write prompt: %w", err)
	}

	line, err := t.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read answer: %w", err)
		}
		if line == "" {
			return "", domain.ErrInputClosed
		}
	}

	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")

	return line, nil
}

// Confirm reads a yes/no answer. An empty answer, including a closed input,
// selects defaultYes.
func (t *Terminal) Confirm(ctx context.Context, question string, defaultYes bool) (bool, error) {
	suffix := " [y/N]? "
	if defaultYes {
		suffix = " [Y/n]? "
	}

	answer, err := t.Ask(ctx, question+suffix)
	if err != nil {
		if errors.Is(err, domain.ErrInputClosed) {
			_, _ = io.WriteString(t.out, "\n")
			return defaultYes, nil
		}
		return false, err
	}

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "":
		return defaultYes, nil
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
