package strintern

import "fmt"

// ErrStringTooLong is never returned from Intern (truncation is silent, as
// the spec requires), but is kept as a sentinel so callers and tests can
// recognize the condition in logs via errors.Is-style matching if they
// wrap it themselves.
var ErrStringTooLong = fmt.Errorf("strintern: string exceeds max length %d", MaxStringLength)

// SubsystemError reports a fatal, programmer-error class condition:
// capacity overflow or a handle that was never issued by this Subsystem.
// These are not recoverable: this package panics with them itself,
// per the spec's "implementations should abort the process or panic with
// a diagnostic" contract for CapacityExceeded / InvalidHandle.
type SubsystemError struct {
	Op  string
	Msg string
}

func (e *SubsystemError) Error() string {
	return fmt.Sprintf("strintern: %s: %s", e.Op, e.Msg)
}

func newCapacityExceeded(maxStrings uint32) *SubsystemError {
	return &SubsystemError{
		Op:  "intern",
		Msg: fmt.Sprintf("capacity exceeded: more than %d distinct strings requested", maxStrings),
	}
}

func newInvalidHandle(h Handle) *SubsystemError {
	return &SubsystemError{
		Op:  "resolve",
		Msg: fmt.Sprintf("handle %d was not issued by this subsystem", uint32(h)),
	}
}
