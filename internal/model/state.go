package model

// ShellState is the state of the main window
type ShellState string

const (
	// ShellStateIdle means the window waits for input
	ShellStateIdle ShellState = "Idle"

	// ShellStateShortening means a gateway call is in flight
	ShellStateShortening ShellState = "Shortening"
)

// String returns the string representation of ShellState
func (s ShellState) String() string {
	return string(s)
}

// IsBusy returns true while a shorten call runs
func (s ShellState) IsBusy() bool {
	return s == ShellStateShortening
}
