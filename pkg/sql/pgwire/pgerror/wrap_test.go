// Copyright 2019 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package pgerror_test

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/oradate/pkg/sql/pgwire/pgcode"
	"github.com/cockroachdb/oradate/pkg/sql/pgwire/pgerror"
	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	testData := []struct {
		err          error
		expectedCode pgcode.Code
	}{
		{errors.New("woo"), pgcode.InvalidDatetimeFormat},
		{pgerror.New(pgcode.DatetimeFieldOverflow, "inner"), pgcode.DatetimeFieldOverflow},
		{errors.AssertionFailedf("boom"), pgcode.Internal},
		{errors.UnimplementedError(errors.IssueLink{Detail: "x"}, "nope"), pgcode.FeatureNotSupported},
	}

	for i, test := range testData {
		werr := pgerror.Wrap(test.err, pgcode.InvalidDatetimeFormat, "woo")
		require.Truef(t, errors.Is(werr, test.err), "%d: original error not preserved", i)
		require.Equalf(t, test.expectedCode, pgerror.GetPGCode(werr), "%d", i)
		require.True(t, pgerror.HasCandidateCode(werr))
	}
}

func TestWrapEmptyMessage(t *testing.T) {
	orig := errors.New("woo")
	werr := pgerror.Wrap(orig, pgcode.InvalidDatetimeFormat, "")
	require.Equal(t, "woo", werr.Error())
	require.Equal(t, pgcode.InvalidDatetimeFormat, pgerror.GetPGCode(werr))
}

func TestGetPGCodeDefaults(t *testing.T) {
	require.Equal(t, pgcode.SuccessfulCompletion, pgerror.GetPGCode(nil))
	require.Equal(t, pgcode.Uncategorized, pgerror.GetPGCode(errors.New("plain")))
	require.Nil(t, pgerror.WithCandidateCode(nil, pgcode.Internal))
}
