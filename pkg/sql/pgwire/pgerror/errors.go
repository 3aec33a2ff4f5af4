// Copyright 2024 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package pgerror

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/oradate/pkg/sql/pgwire/pgcode"
)

// New creates an error with a code.
func New(code pgcode.Code, msg string) error {
	err := errors.NewWithDepth(1, msg)
	err = WithCandidateCode(err, code)
	return err
}

// Newf creates an Error with a format string.
func Newf(code pgcode.Code, format string, args ...interface{}) error {
	err := errors.NewWithDepthf(1, format, args...)
	err = WithCandidateCode(err, code)
	return err
}

// NewWithDepthf creates an error with a pg code and extracts the context
// information at the specified depth level.
func NewWithDepthf(depth int, code pgcode.Code, format string, args ...interface{}) error {
	err := errors.NewWithDepthf(1+depth, format, args...)
	err = WithCandidateCode(err, code)
	return err
}

// WithCandidateCode decorates the error with a candidate postgres
// error code. It is called "candidate" because the code is only used
// by GetPGCode() below conditionally.
// The code is considered PII-free and is thus reportable.
func WithCandidateCode(err error, code pgcode.Code) error {
	if err == nil {
		return nil
	}
	return &withCandidateCode{cause: err, code: code.String()}
}

// HasCandidateCode returns true iff the error or one of its causes
// has a candidate pg error code.
func HasCandidateCode(err error) bool {
	return errors.HasType(err, (*withCandidateCode)(nil))
}

// GetPGCode retrieves a code for the error. It operates by combining
// the inner (cause) code and the code at the current level, at each
// level of cause. The innermost code wins.
func GetPGCode(err error) pgcode.Code {
	if err == nil {
		return pgcode.SuccessfulCompletion
	}
	return getPGCodeInternal(err)
}

func getPGCodeInternal(err error) (code pgcode.Code) {
	code = pgcode.Uncategorized
	if c, ok := err.(*withCandidateCode); ok {
		code = pgcode.MakeCode(c.code)
	} else if newCode := computeDefaultCode(err); newCode.String() != "" {
		code = newCode
	}
	if c := errors.UnwrapOnce(err); c != nil {
		innerCode := getPGCodeInternal(c)
		if innerCode != pgcode.Uncategorized {
			code = innerCode
		}
	}
	return code
}

// computeDefaultCode looks at the current error object (not its
// causes) and returns a pg error code for it.
func computeDefaultCode(err error) pgcode.Code {
	switch {
	case errors.IsAssertionFailure(err):
		return pgcode.Internal
	case errors.IsUnimplementedError(err):
		return pgcode.FeatureNotSupported
	}
	return pgcode.Code{}
}

type withCandidateCode struct {
	cause error
	code  string
}

var _ error = (*withCandidateCode)(nil)
var _ errors.SafeDetailer = (*withCandidateCode)(nil)
var _ fmt.Formatter = (*withCandidateCode)(nil)
var _ errors.Formatter = (*withCandidateCode)(nil)

func (w *withCandidateCode) Error() string         { return w.cause.Error() }
func (w *withCandidateCode) Cause() error          { return w.cause }
func (w *withCandidateCode) Unwrap() error         { return w.cause }
func (w *withCandidateCode) SafeDetails() []string { return []string{w.code} }
func (w *withCandidateCode) Format(s fmt.State, verb rune) {
	errors.FormatError(w, s, verb)
}

func (w *withCandidateCode) FormatError(p errors.Printer) (next error) {
	if p.Detail() {
		p.Printf("candidate pg code: %s", w.code)
	}
	return w.cause
}

// WithPosition decorates the error with the 0-based byte offset in the
// user input where the problem was detected. Flatten reports it 1-based,
// as postgres does.
func WithPosition(err error, pos int) error {
	if err == nil {
		return nil
	}
	return &withPosition{cause: err, pos: pos}
}

// GetPosition returns the outermost position attached with WithPosition.
func GetPosition(err error) (pos int, ok bool) {
	var w *withPosition
	if errors.As(err, &w) {
		return w.pos, true
	}
	return 0, false
}

type withPosition struct {
	cause error
	pos   int
}

var _ error = (*withPosition)(nil)
var _ fmt.Formatter = (*withPosition)(nil)
var _ errors.Formatter = (*withPosition)(nil)

func (w *withPosition) Error() string { return w.cause.Error() }
func (w *withPosition) Cause() error  { return w.cause }
func (w *withPosition) Unwrap() error { return w.cause }
func (w *withPosition) SafeDetails() []string {
	return []string{fmt.Sprintf("position %d", w.pos)}
}
func (w *withPosition) Format(s fmt.State, verb rune) { errors.FormatError(w, s, verb) }

func (w *withPosition) FormatError(p errors.Printer) (next error) {
	if p.Detail() {
		p.Printf("at position %d", w.pos)
	}
	return w.cause
}
