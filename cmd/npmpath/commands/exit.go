package commands

import "fmt"

// ExitError carries the exit status of a command run by exec. main exits
// with Code without printing anything.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}
