package tui

import "errors"

var (
	// ErrAborted signals the user aborted input (Ctrl+C or a declined
	// confirmation).
	ErrAborted = errors.New("tui: aborted")
	// ErrSubmitRejected is returned when the final submit fails even though
	// every field was accepted while prompting.
	ErrSubmitRejected = errors.New("tui: submit rejected")
)
