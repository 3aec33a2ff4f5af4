// Copyright 2024 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package todate

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/oradate/pkg/sql/pgwire/pgerror"
	"github.com/stretchr/testify/require"
)

func TestCatalogMessages(t *testing.T) {
	require.Equal(t, "Unimplemented method called", string(codeUnimplemented.Message()))
	require.Equal(t, "Bad Oracle Date format", string(codeBadDateFormat.Message()))
	require.Equal(t, "Conversion Error", string(codeConversion.Message()))
	require.Equal(t, "Unknown exception", string(codeUnknown.Message()))
	require.Equal(t, "Unknown exception", string(catalogCode(15).Message()))
}

func TestErrorKinds(t *testing.T) {
	_, err := Translate("YYYY-ZZ")
	require.True(t, errors.Is(err, ErrBadFormat))
	require.False(t, errors.Is(err, ErrInvalidDate))
	require.Equal(t, "bad_format", errorKind(err))

	_, err = Translate("IW")
	require.True(t, errors.Is(err, ErrUnimplemented))
	require.True(t, errors.IsUnimplementedError(err))
	require.Equal(t, "unimplemented", errorKind(err))

	require.Equal(t, "", errorKind(nil))
	require.Equal(t, "other", errorKind(errors.New("boom")))
}

func TestFlattenParseError(t *testing.T) {
	p, err := Translate("YYYY-MM-DD")
	require.NoError(t, err)
	_, err = p.Parse(testNow, "2023-13-01", nil)
	require.Error(t, err)

	flat := pgerror.Flatten(err)
	require.Equal(t, "22008", string(flat.Code))
	require.Equal(t, "Invalid Oracle Date: month 13 is not in range 1-12", flat.Message)
	require.Equal(t, "6", flat.Position)
	require.Equal(t, "ERROR", flat.Severity)
}

func TestBadFormatDetail(t *testing.T) {
	_, err := Tokenize("DD-XX")
	require.Equal(t, []string{"template position 3"}, errors.GetAllDetails(err))

	_, err = Tokenize(`"`)
	require.True(t, errors.Is(err, ErrBadFormat))
}
