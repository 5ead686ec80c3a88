// Package apperr holds the error codes shared by services and controllers.
package apperr

import (
	"errors"
	"fmt"
)

type ErrCode string

const (
	ErrNotFound           ErrCode = "NOT_FOUND"
	ErrDuplicateKey       ErrCode = "DUPLICATE_KEY"
	ErrValidation         ErrCode = "VALIDATION_ERROR"
	ErrInvalidAdjustment  ErrCode = "INVALID_ADJUSTMENT"
	ErrConflict           ErrCode = "CONFLICT"
	ErrInvalidCredentials ErrCode = "INVALID_CREDENTIALS"
)

type codedError struct {
	code ErrCode
	msg  string
	err  error
}

func (e *codedError) Error() string {
	switch {
	case e.msg != "" && e.err != nil:
		return fmt.Sprintf("%s: %s: %v", e.code, e.msg, e.err)
	case e.msg != "":
		return fmt.Sprintf("%s: %s", e.code, e.msg)
	case e.err != nil:
		return fmt.Sprintf("%s: %v", e.code, e.err)
	}
	return string(e.code)
}

func (e *codedError) Code() ErrCode   { return e.code }
func (e *codedError) Message() string { return e.msg }
func (e *codedError) Unwrap() error   { return e.err }

// New returns an error carrying code and a human-readable reason.
func New(code ErrCode, msg string) error { return &codedError{code: code, msg: msg} }

// Newf is New with formatting.
func Newf(code ErrCode, format string, args ...any) error {
	return &codedError{code: code, msg: fmt.Sprintf(format, args...)}
}

// Wrap tags err with code, keeping it reachable through errors.Is/As.
func Wrap(code ErrCode, msg string, err error) error {
	return &codedError{code: code, msg: msg, err: err}
}

// Code extracts error code
func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

// Message returns the reason attached to a coded error, or "" if there is none.
func Message(err error) string {
	var ce interface{ Message() string }
	if errors.As(err, &ce) {
		return ce.Message()
	}
	return ""
}

func Is(err error, code ErrCode) bool { return Code(err) == code }
