package fs

import (
	"errors"
	"fmt"
	"io/fs"
)

// ErrorKind classifies filesystem failures surfaced to the browser.
type ErrorKind int

const (
	KindIO ErrorKind = iota
	KindNotFound
	KindInvalidInput
)

func (k ErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindInvalidInput:
		return "invalid input"
	default:
		return "io"
	}
}

var (
	ErrNoSelection       = &OpError{Kind: KindNotFound, Op: "select", Err: errors.New("no file selected")}
	ErrTrashUnavailable  = errors.New("trash command not available")
	ErrEmptyName         = &OpError{Kind: KindInvalidInput, Op: "name", Err: errors.New("name cannot be empty")}
	errCopyIntoSelf      = errors.New("cannot copy a directory into itself")
	errUnsupportedSource = errors.New("source is neither a file nor a directory")
)

// OpError records a failed filesystem operation on a path.
type OpError struct {
	Kind ErrorKind
	Op   string
	Path string
	Err  error
}

func (e *OpError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *OpError) Unwrap() error {
	return e.Err
}

// wrapErr tags err with op and path. A missing path becomes KindNotFound.
func wrapErr(op, path string, err error) error {
	if err == nil {
		return nil
	}
	var existing *OpError
	if errors.As(err, &existing) {
		return err
	}
	kind := KindIO
	if errors.Is(err, fs.ErrNotExist) {
		kind = KindNotFound
	}
	return &OpError{Kind: kind, Op: op, Path: path, Err: err}
}

func invalidInput(op, path string, err error) error {
	return &OpError{Kind: KindInvalidInput, Op: op, Path: path, Err: err}
}

// KindOf reports the kind of err, defaulting to KindIO for foreign errors.
func KindOf(err error) ErrorKind {
	var opErr *OpError
	if errors.As(err, &opErr) {
		return opErr.Kind
	}
	if errors.Is(err, fs.ErrNotExist) {
		return KindNotFound
	}
	return KindIO
}

// IsNotFound reports whether err describes a missing target.
func IsNotFound(err error) bool {
	return err != nil && KindOf(err) == KindNotFound
}
