package engine

import "fmt"

// InputError is a fatal run failure caused by the input itself: unreadable
// content, an empty file, or a missing header row. It carries the file name
// so callers can report which upload failed.
type InputError struct {
	File   string
	Reason string
	Err    error
}

func (e *InputError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("input %s: %s: %v", e.File, e.Reason, e.Err)
	}
	return fmt.Sprintf("input %s: %s", e.File, e.Reason)
}

func (e *InputError) Unwrap() error { return e.Err }

// OutputError is a fatal failure while writing the canonical output or the
// error report. There are no retries; the run aborts and the caller must
// discard partial output.
type OutputError struct {
	File string
	Err  error
}

func (e *OutputError) Error() string {
	return fmt.Sprintf("output %s: %v", e.File, e.Err)
}

func (e *OutputError) Unwrap() error { return e.Err }
