// Package errors provides structured error handling for LeeGo.
//
// Three categories exist. Decode problems are ordinary errors returned to the
// caller (LeeGoError with KindDecode, DecodeError for a single field).
// Contract violations in developer-authored brick trees are fatal: Violate
// reports them to the global Handler and then panics with a *ContractError.
// Not-found conditions are never errors; lookups return (value, false).
package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindDecode indicates a malformed persisted brick document.
	KindDecode
	// KindContract indicates a violated construction-time contract.
	KindContract
	// KindStyle indicates a style operation that could not be applied.
	KindStyle
	// KindLayout indicates a layout format that could not be resolved.
	KindLayout
	// KindConfig indicates an invalid configuration file.
	KindConfig
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindDecode:
		return "decode"
	case KindContract:
		return "contract"
	case KindStyle:
		return "style"
	case KindLayout:
		return "layout"
	case KindConfig:
		return "config"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// ErrMissingName is returned when a brick document has no usable "name".
var ErrMissingName = stderrors.New("brick name is missing or not a string")

// LeeGoError represents a structured error in LeeGo.
type LeeGoError struct {
	// Op is the operation that failed (e.g., "codec.Decode").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Brick is the name of the brick involved, if any.
	Brick string
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *LeeGoError) Error() string {
	if e.Brick != "" {
		return fmt.Sprintf("%s [%s] brick=%s: %v", e.Op, e.Kind, e.Brick, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *LeeGoError) Unwrap() error {
	return e.Err
}

// DecodeError describes a single field that could not be decoded.
type DecodeError struct {
	// Field is the JSON path of the field (e.g., "bricks[1].style.alpha").
	Field string
	// Want is the expected type name.
	Want string
	// Got is the value actually found.
	Got any
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("cannot decode %s: want %s, got %T", e.Field, e.Want, e.Got)
}

// ContractError is the panic value raised for a construction-time contract
// violation: duplicate sibling names, empty VFL view lists, style kinds a
// view cannot take, unresolvable layout formats.
type ContractError struct {
	// Op is the operation that detected the violation (e.g., "brick.New").
	Op string
	// Message describes the violation.
	Message string
	// StackTrace contains the call stack at the time of the violation.
	StackTrace string
	// Timestamp is when the violation occurred.
	Timestamp time.Time
}

func (e *ContractError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("contract violation in %s: %s", e.Op, e.Message)
	}
	return "contract violation: " + e.Message
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "compose.Configure").
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

// Handler receives errors reported by LeeGo.
type Handler interface {
	// HandleError is called when a recoverable error is reported.
	HandleError(err *LeeGoError)
	// HandleViolation is called right before a contract violation panics.
	HandleViolation(err *ContractError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// New returns an error that formats as the given text.
func New(text string) error {
	return stderrors.New(text)
}
