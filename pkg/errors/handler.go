package errors

import (
	"fmt"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"
)

var (
	// DefaultHandler is the global error handler.
	// It defaults to LogHandler with verbose=false.
	DefaultHandler Handler = &LogHandler{}

	handlerMu sync.RWMutex
)

// SetHandler configures the global error handler.
// Pass nil to restore the default LogHandler.
func SetHandler(h Handler) {
	handlerMu.Lock()
	defer handlerMu.Unlock()
	if h == nil {
		DefaultHandler = &LogHandler{}
	} else {
		DefaultHandler = h
	}
}

// SwapHandler installs h as the global handler and returns a function that
// restores the previous one. Tests pass the result to t.Cleanup.
func SwapHandler(h Handler) (restore func()) {
	handlerMu.Lock()
	old := DefaultHandler
	handlerMu.Unlock()
	SetHandler(h)
	return func() { SetHandler(old) }
}

// DiscardHandler drops everything reported to it.
var DiscardHandler Handler = discardHandler{}

type discardHandler struct{}

func (discardHandler) HandleError(*LeeGoError)        {}
func (discardHandler) HandleViolation(*ContractError) {}
func (discardHandler) HandlePanic(*PanicError)        {}

func getHandler() Handler {
	handlerMu.RLock()
	defer handlerMu.RUnlock()
	return DefaultHandler
}

// Report sends an error to the global handler.
// If err.Timestamp is zero, it is set to the current time.
func Report(err *LeeGoError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	if h := getHandler(); h != nil {
		h.HandleError(err)
	}
}

// Violate reports a contract violation and panics with the *ContractError.
// It never returns.
func Violate(op, format string, args ...any) {
	err := &ContractError{
		Op:         op,
		Message:    fmt.Sprintf(format, args...),
		StackTrace: CaptureStack(),
		Timestamp:  time.Now(),
	}
	if h := getHandler(); h != nil {
		h.HandleViolation(err)
	}
	panic(err)
}

// Catch runs fn and returns the contract violation it raised, or nil.
// Panics that are not contract violations propagate.
func Catch(fn func()) (violation *ContractError) {
	defer func() {
		if r := recover(); r != nil {
			if ce, ok := r.(*ContractError); ok {
				violation = ce
				return
			}
			panic(r)
		}
	}()
	fn()
	return nil
}

// Recover is a helper for deferred panic recovery.
// Usage: defer errors.Recover("operation.name")
func Recover(op string) {
	if r := recover(); r != nil {
		ReportPanic(&PanicError{
			Op:         op,
			Value:      r,
			StackTrace: CaptureStack(),
			Timestamp:  time.Now(),
		})
	}
}

// ReportPanic sends a panic error to the global handler.
func ReportPanic(err *PanicError) {
	if err == nil {
		return
	}
	if h := getHandler(); h != nil {
		h.HandlePanic(err)
	}
}

// CaptureStack returns the current call stack as a string.
// It skips the first few frames to exclude the CaptureStack call itself.
func CaptureStack() string {
	const maxDepth = 32
	var pcs [maxDepth]uintptr
	n := runtime.Callers(3, pcs[:])
	if n == 0 {
		return ""
	}

	frames := runtime.CallersFrames(pcs[:n])
	var sb strings.Builder
	for {
		frame, more := frames.Next()
		sb.WriteString(frame.Function)
		sb.WriteString("\n\t")
		sb.WriteString(frame.File)
		sb.WriteString(":")
		sb.WriteString(strconv.Itoa(frame.Line))
		sb.WriteString("\n")
		if !more {
			break
		}
	}
	return sb.String()
}
