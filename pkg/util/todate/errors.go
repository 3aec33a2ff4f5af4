// Copyright 2024 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package todate

import (
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/oradate/pkg/sql/pgwire/pgcode"
	"github.com/cockroachdb/oradate/pkg/sql/pgwire/pgerror"
	"github.com/cockroachdb/redact"
)

// The error kinds returned by this package. Use errors.Is to test for them.
var (
	// ErrBadFormat marks malformed, unknown, duplicated or conflicting
	// template directives, and templates exceeding the buffer capacities.
	ErrBadFormat = errors.New("bad date format")
	// ErrUnimplemented marks directives that are recognized but not
	// supported.
	ErrUnimplemented = errors.New("unimplemented date format directive")
	// ErrInvalidDate marks input text that does not match the pattern.
	ErrInvalidDate = errors.New("invalid date")
)

// catalogCode is a legacy error number. It is only used to look up the
// message text of the error catalog.
type catalogCode int

const (
	codeUnknown catalogCode = iota
	codeUnimplemented
	codeUnderflow
	codeOverflow
	codeInvalidNumber
	codeBadNumberFormat
	codeInvalidDate
	codeBadDateFormat
	codeYearRange
	codeDayOfYearRange
	codeJulianRange
	codeInvalidInputNumber
	codeNLSNotSupported
	codeInvalidInput
	codeConversion
)

var errorCatalog = [...]string{
	codeUnknown:            "Unknown Exception",
	codeUnimplemented:      "Unimplemented method called",
	codeUnderflow:          "Underflow Exception",
	codeOverflow:           "Overflow Exception",
	codeInvalidNumber:      "Invalid Oracle Number",
	codeBadNumberFormat:    "Bad Oracle Number format",
	codeInvalidDate:        "Invalid Oracle Date",
	codeBadDateFormat:      "Bad Oracle Date format",
	codeYearRange:          "Year Not in Range",
	codeDayOfYearRange:     "Day of Year Not in Range",
	codeJulianRange:        "Julian Date Not in Range",
	codeInvalidInputNumber: "Invalid Input Number",
	codeNLSNotSupported:    "NLS Not Supported",
	codeInvalidInput:       "Invalid Input",
	codeConversion:         "Conversion Error",
}

// Message returns the catalog text for the code.
func (c catalogCode) Message() redact.SafeString {
	if c < codeUnimplemented || int(c) >= len(errorCatalog) {
		return "Unknown exception"
	}
	return redact.SafeString(errorCatalog[c])
}

func newError(
	depth int,
	kind error,
	code catalogCode,
	pgCode pgcode.Code,
	pos int,
	format string,
	args ...interface{},
) error {
	err := errors.NewWithDepthf(depth+1, format, args...)
	err = errors.WrapWithDepth(depth+1, err, string(code.Message()))
	err = pgerror.WithCandidateCode(err, pgCode)
	err = pgerror.WithPosition(err, pos)
	return errors.Mark(err, kind)
}

// newBadFormatError reports a template problem at byte offset pos of the
// template.
func newBadFormatError(pos int, format string, args ...interface{}) error {
	err := newError(1, ErrBadFormat, codeBadDateFormat, pgcode.InvalidDatetimeFormat, pos, format, args...)
	return errors.WithDetailf(err, "template position %d", pos)
}

// newOverflowError reports a template that exceeds a buffer capacity.
func newOverflowError(pos int, format string, args ...interface{}) error {
	err := newError(1, ErrBadFormat, codeOverflow, pgcode.ProgramLimitExceeded, pos, format, args...)
	return errors.WithHint(err, "Use a shorter template.")
}

// newUnimplementedError reports a recognized directive that cannot be
// used.
func newUnimplementedError(tok Token, format string, args ...interface{}) error {
	err := errors.UnimplementedErrorf(errors.IssueLink{Detail: "to_date " + tok.ID.String()}, format, args...)
	err = errors.WrapWithDepth(1, err, string(codeUnimplemented.Message()))
	err = pgerror.WithCandidateCode(err, pgcode.FeatureNotSupported)
	err = pgerror.WithPosition(err, tok.Pos)
	return errors.Mark(err, ErrUnimplemented)
}

// newInvalidDateError reports input text that does not match the pattern
// at byte offset pos of the input.
func newInvalidDateError(pos int, format string, args ...interface{}) error {
	return newError(1, ErrInvalidDate, codeInvalidDate, pgcode.InvalidDatetimeFormat, pos, format, args...)
}

// newRangeError reports a field value outside its valid range.
func newRangeError(code catalogCode, pos int, format string, args ...interface{}) error {
	return newError(1, ErrInvalidDate, code, pgcode.DatetimeFieldOverflow, pos, format, args...)
}

// errorKind classifies err for metrics.
func errorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrBadFormat):
		return "bad_format"
	case errors.Is(err, ErrUnimplemented):
		return "unimplemented"
	case errors.Is(err, ErrInvalidDate):
		return "invalid_date"
	default:
		return "other"
	}
}
