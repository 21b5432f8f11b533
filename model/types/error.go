package types

import (
	"errors"
	"fmt"
)

// Kind classifies a failed deployment step
type Kind int

const (
	KindUnknown Kind = iota
	// KindConnection remote command could not be run or exited with non-zero status outside any build step
	KindConnection
	// KindProbe remote probe returned output that is neither present nor absent marker
	KindProbe
	// KindBuild interpreter or virtual environment build failed
	KindBuild
	// KindPackaging source shipping or setup.py command failed
	KindPackaging
)

func (k Kind) String() string {
	switch k {
	case KindConnection:
		return "connection failure"
	case KindProbe:
		return "probe inconclusive"
	case KindBuild:
		return "build failure"
	case KindPackaging:
		return "packaging failure"
	default:
		return "unknown failure"
	}
}

// Error represents classified deployment error
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%v: %v", e.Kind, e.Op)
	}
	return fmt.Sprintf("%v: %v: %v", e.Kind, e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewError wraps err with the supplied kind; an already classified error keeps its original kind.
// It returns nil for nil err.
func NewError(kind Kind, op string, err error) error {
	if err == nil {
		return nil
	}
	var classified *Error
	if errors.As(err, &classified) {
		return err
	}
	return &Error{Kind: kind, Op: op, Err: err}
}

// Errorf creates classified error with formatted cause
func Errorf(kind Kind, op string, format string, args ...interface{}) error {
	return &Error{Kind: kind, Op: op, Err: fmt.Errorf(format, args...)}
}

// KindOf returns error kind or KindUnknown for unclassified errors
func KindOf(err error) Kind {
	var classified *Error
	if errors.As(err, &classified) {
		return classified.Kind
	}
	return KindUnknown
}

func NewMethodNotFoundError(name string) error {
	return fmt.Errorf("method %v not found", name)
}

func NewServiceNotFoundError(name string) error {
	return fmt.Errorf("service %v not found", name)
}

func NewInvalidInputError(in interface{}) error {
	return fmt.Errorf("invalid input %T", in)
}

func NewInvalidOutputError(in interface{}) error {
	return fmt.Errorf("invalid output %T", in)
}
