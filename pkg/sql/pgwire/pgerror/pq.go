// Copyright 2023 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package pgerror

import (
	"github.com/cockroachdb/errors"
	"github.com/lib/pq"
)

// fullErrorFromPQ detects if the error is a pq.Error and, if so, formats it
// according to the scheme used for FullError.
func fullErrorFromPQ(err error) (string, bool) {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return "", false
	}
	return formatMsgHintDetail("pq", pqErr.Message, pqErr.Hint, pqErr.Detail), true
}
