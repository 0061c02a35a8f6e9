package errors

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestDOMErrorString(t *testing.T) {
	err := &DOMError{
		Op:   "dom.Element.AppendChild",
		Kind: KindHierarchyRequest,
		Err:  fmt.Errorf("node is an ancestor of the parent"),
	}
	got := err.Error()
	want := "dom.Element.AppendChild [hierarchy-request]: node is an ancestor of the parent"
	if got != want {
		t.Errorf("DOMError.Error() = %q, want %q", got, want)
	}
}

func TestNewSetsTimestamp(t *testing.T) {
	err := New("dom.Document.RemoveChild", KindNotFound, "%s is not a child", "<div>")
	if err.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
	if got := err.Err.Error(); got != "<div> is not a child" {
		t.Errorf("Err = %q, want %q", got, "<div> is not a child")
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindHierarchyRequest, "hierarchy-request"},
		{KindNotFound, "not-found"},
		{KindInvalidCharacter, "invalid-character"},
		{KindInvalidState, "invalid-state"},
		{KindScenario, "scenario"},
		{KindPanic, "panic"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestIs(t *testing.T) {
	err := New("dom.Element.SetAttribute", KindInvalidCharacter, "bad name")
	wrapped := fmt.Errorf("loading fixture: %w", err)

	if !Is(wrapped, KindInvalidCharacter) {
		t.Error("expected wrapped error to match KindInvalidCharacter")
	}
	if Is(wrapped, KindNotFound) {
		t.Error("wrapped error should not match KindNotFound")
	}
	if Is(fmt.Errorf("plain"), KindUnknown) {
		t.Error("plain error should not match any kind")
	}
}

func TestPanicErrorString(t *testing.T) {
	err := &PanicError{
		Value:     "test panic",
		Timestamp: time.Now(),
	}
	got := err.Error()
	want := "panic: test panic"
	if got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
}

func TestPanicErrorStringWithOp(t *testing.T) {
	err := &PanicError{
		Op:        "event.Dispatch",
		Value:     "test panic",
		Timestamp: time.Now(),
	}
	got := err.Error()
	want := "panic in event.Dispatch: test panic"
	if got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
}

func TestReport(t *testing.T) {
	var capturedErr *DOMError
	handler := &testHandler{
		onError: func(err *DOMError) {
			capturedErr = err
		},
	}

	oldHandler := DefaultHandler
	SetHandler(handler)
	defer SetHandler(oldHandler)

	Report(&DOMError{
		Op:   "test.op",
		Kind: KindScenario,
		Err:  fmt.Errorf("boom"),
	})

	if capturedErr == nil {
		t.Fatal("expected error to be captured")
	}
	if capturedErr.Op != "test.op" {
		t.Errorf("Op = %q, want %q", capturedErr.Op, "test.op")
	}
	if capturedErr.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
}

func TestReportNil(t *testing.T) {
	called := false
	handler := &testHandler{
		onError: func(*DOMError) { called = true },
		onPanic: func(*PanicError) { called = true },
	}

	oldHandler := DefaultHandler
	SetHandler(handler)
	defer SetHandler(oldHandler)

	Report(nil)
	ReportPanic(nil)

	if called {
		t.Error("nil errors should not reach the handler")
	}
}

func TestRecover(t *testing.T) {
	var capturedPanic *PanicError
	handler := &testHandler{
		onPanic: func(err *PanicError) {
			capturedPanic = err
		},
	}

	oldHandler := DefaultHandler
	SetHandler(handler)
	defer SetHandler(oldHandler)

	func() {
		defer Recover("test.recover")
		panic("intentional test panic")
	}()

	if capturedPanic == nil {
		t.Fatal("expected panic to be recovered and captured")
	}
	if capturedPanic.Value != "intentional test panic" {
		t.Errorf("Value = %v, want %q", capturedPanic.Value, "intentional test panic")
	}
	if capturedPanic.Op != "test.recover" {
		t.Errorf("Op = %q, want %q", capturedPanic.Op, "test.recover")
	}
}

func TestCaptureStack(t *testing.T) {
	stack := CaptureStack()
	if stack == "" {
		t.Error("expected non-empty stack trace")
	}
	if !strings.Contains(stack, "testing") && !strings.Contains(stack, "runtime") {
		t.Errorf("stack trace should contain testing or runtime frames, got: %s", stack)
	}
}

func TestSetHandlerNil(t *testing.T) {
	SetHandler(nil)
	if DefaultHandler == nil {
		t.Fatal("SetHandler(nil) should set default LogHandler, not nil")
	}
	if _, ok := DefaultHandler.(*LogHandler); !ok {
		t.Errorf("SetHandler(nil) should set LogHandler, got %T", DefaultHandler)
	}
}

func TestLogHandler(t *testing.T) {
	var buf bytes.Buffer
	h := NewLogHandler(zerolog.New(&buf), true)

	h.HandleError(New("dom.Element.RemoveChild", KindNotFound, "missing child"))
	h.HandlePanic(&PanicError{Op: "event.Dispatch", Value: "listener blew up", StackTrace: "frame"})

	out := buf.String()
	for _, want := range []string{
		`"op":"dom.Element.RemoveChild"`,
		`"kind":"not-found"`,
		`"error":"missing child"`,
		`"value":"listener blew up"`,
		`"stack":"frame"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("log output %q should contain %q", out, want)
		}
	}
}

func TestLogHandlerPanicKind(t *testing.T) {
	var buf bytes.Buffer
	h := NewLogHandler(zerolog.New(&buf), false)

	h.HandlePanic(&PanicError{Value: "boom", StackTrace: "frame"})

	out := buf.String()
	if !strings.Contains(out, `"kind":"panic"`) {
		t.Errorf("log output %q should contain the panic kind", out)
	}
	if strings.Contains(out, `"stack"`) {
		t.Errorf("log output %q should omit the stack when not verbose", out)
	}
}

type testHandler struct {
	onError func(*DOMError)
	onPanic func(*PanicError)
}

func (h *testHandler) HandleError(err *DOMError) {
	if h.onError != nil {
		h.onError(err)
	}
}

func (h *testHandler) HandlePanic(err *PanicError) {
	if h.onPanic != nil {
		h.onPanic(err)
	}
}
