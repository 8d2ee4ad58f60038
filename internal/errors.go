package logtally

import "errors"

var (
	// ErrInputUnreadable marks a failed analysis run. No partial result
	// accompanies it.
	ErrInputUnreadable = errors.New("failed to analyze logs")

	// ErrOutputUnwritable marks a failed report save. The analyzed result
	// is left untouched.
	ErrOutputUnwritable = errors.New("failed to save results")
)
