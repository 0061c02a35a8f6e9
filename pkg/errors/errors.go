// Package errors provides structured error handling for the domfocus engine.
package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error. The names follow the
// DOMException names used by the web platform where one exists.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindHierarchyRequest indicates an insertion that would break the tree shape.
	KindHierarchyRequest
	// KindNotFound indicates a node that is not where the caller expected it.
	KindNotFound
	// KindInvalidCharacter indicates an invalid attribute or tag name.
	KindInvalidCharacter
	// KindInvalidState indicates an object used in the wrong state,
	// such as dispatching an event that is already being dispatched.
	KindInvalidState
	// KindScenario indicates a malformed or failing scenario file.
	KindScenario
	// KindPanic labels recovered panics in handler records.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindHierarchyRequest:
		return "hierarchy-request"
	case KindNotFound:
		return "not-found"
	case KindInvalidCharacter:
		return "invalid-character"
	case KindInvalidState:
		return "invalid-state"
	case KindScenario:
		return "scenario"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// DOMError represents a structured error raised by the document engine.
type DOMError struct {
	// Op is the operation that failed (e.g., "dom.Element.AppendChild").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

// New returns a DOMError for op with a formatted message.
func New(op string, kind ErrorKind, format string, args ...any) *DOMError {
	return &DOMError{
		Op:        op,
		Kind:      kind,
		Err:       fmt.Errorf(format, args...),
		Timestamp: time.Now(),
	}
}

func (e *DOMError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *DOMError) Unwrap() error {
	return e.Err
}

// Is reports whether any error in err's chain is a DOMError of the given kind.
func Is(err error, kind ErrorKind) bool {
	var domErr *DOMError
	if !stderrors.As(err, &domErr) {
		return false
	}
	return domErr.Kind == kind
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "event.Dispatch").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ErrorHandler receives errors reported by the engine.
type ErrorHandler interface {
	// HandleError is called when an error is reported.
	HandleError(err *DOMError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
