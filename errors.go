// errors.go
package kushtc

import (
	"fmt"

	"github.com/kush-os/kushtc/pkg/linker"
)

// ErrNoInputs indicates link-time optimization was requested with an empty
// input list
var ErrNoInputs = linker.ErrNoInputs

// Error wraps an error with the operation that produced it
type Error struct {
	Op     string // Operation that failed
	Target string // Output target if applicable
	Err    error  // Underlying error
}

func (e *Error) Error() string {
	if e.Target != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Target, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
