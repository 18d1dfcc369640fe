package gperf

import (
	"errors"
	"fmt"
)

// The closed set of failure kinds this package produces. Callers match
// with errors.Is against the sentinels below, and errors.As against
// IOError and InvalidStateError for the failure details.
var (
	// ErrNulByte reports a path or reason containing an embedded NUL
	// byte, which cannot be passed to the native API as a C string.
	ErrNulByte = errors.New("gperf: embedded NUL byte")

	// ErrInvalidEncoding reports a path or reason that is not valid
	// UTF-8. The native library and this package both embed the value in
	// diagnostics, so arbitrary byte salad is rejected up front.
	ErrInvalidEncoding = errors.New("gperf: not valid UTF-8")

	// ErrIO reports that the output path failed the writability
	// pre-check. Match the concrete *IOError for the path and cause.
	ErrIO = errors.New("gperf: profile path not writable")

	// ErrInvalidState reports an operation that is illegal in the
	// handle's current state, e.g. Start while already Active. Match the
	// concrete *InvalidStateError for the state observed.
	ErrInvalidState = errors.New("gperf: invalid profiler state")

	// ErrInternal reports that the native library signalled failure via
	// its return code. gperftools does not say why; its stderr output is
	// usually the only clue.
	ErrInternal = errors.New("gperf: native profiler reported failure")
)

// IOError is returned when the output path cannot be created or truncated.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("gperf: cannot write %q: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

func (e *IOError) Is(target error) bool { return target == ErrIO }

// InvalidStateError is returned when an operation is not allowed in the
// handle's current state. State is the state the handle was in when the
// call was rejected.
type InvalidStateError struct {
	State ProfilerState
}

func (e *InvalidStateError) Error() string {
	return "gperf: operation not allowed while profiler is " + e.State.String()
}

func (e *InvalidStateError) Is(target error) bool { return target == ErrInvalidState }
