package ports

import "context"

type Prompter interface {
	// Notify writes text to the user without waiting for input.
	Notify(text string) error
	// Ask writes prompt and reads one line of input without its line terminator.
	// It returns domain.ErrInputClosed once the input stream is exhausted.
	Ask(ctx context.Context, prompt string) (string, error)
	// Confirm asks a yes/no question; an empty answer selects defaultYes.
	Confirm(ctx context.Context, question string, defaultYes bool) (bool, error)
}
