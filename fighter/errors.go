package fighter

import (
	"fmt"

	"github.com/automoto/mauricefight/config"
)

// InvariantViolation is the panic value raised when the machine finds itself
// in a state it has no behavior for. It is a programming error.
type InvariantViolation struct {
	Fighter string
	State   config.StateID
}

func (e *InvariantViolation) Error() string {
	return fmt.Sprintf("fighter %q: no behavior for state %s (%d)", e.Fighter, e.State, int(e.State))
}
