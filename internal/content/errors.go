package content

import "fmt"

// InvariantViolation is returned when a content record is missing an expected
// field or has a malformed one. Malformed output is never emitted.
type InvariantViolation struct {
	Collection Collection
	ID         string
	Field      string
	Reason     string
}

func (e InvariantViolation) Error() string {
	msg := "invalid content"
	if e.Collection != "" {
		msg += fmt.Sprintf(" in %q", e.Collection)
	}
	if e.ID != "" {
		msg += fmt.Sprintf(" for %q", e.ID)
	}
	if e.Field != "" {
		msg += fmt.Sprintf(" (%s)", e.Field)
	}
	return msg + ": " + e.Reason
}
