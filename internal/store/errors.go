package store

import (
	"errors"
	"fmt"
)

// Sentinel errors for missing rows.
var (
	// ErrProfileNotFound is returned when the player profile row is missing.
	ErrProfileNotFound = errors.New("player profile not found")
	// ErrSkillNotFound is returned when no skill row matches the given name.
	ErrSkillNotFound = errors.New("skill not found")
)

// PreconditionError reports a business-rule violation. The triggering
// operation performs no mutation.
type PreconditionError struct {
	Reason string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("precondition failed: %s", e.Reason)
}

// IsPrecondition reports whether err is a precondition failure.
func IsPrecondition(err error) bool {
	var pe *PreconditionError
	return errors.As(err, &pe)
}
