// SPDX-License-Identifier: Apache-2.0

package cql

import (
	"testing"

	"github.com/gocql/gocql"
	"github.com/stretchr/testify/require"
)

func TestParseConsistency(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		input   string
		want    gocql.Consistency
		wantErr error
	}{
		"local one": {
			input: "LOCAL_ONE",
			want:  gocql.LocalOne,
		},
		"lower case accepted": {
			input: "quorum",
			want:  gocql.Quorum,
		},
		"padded": {
			input: " ONE ",
			want:  gocql.One,
		},
		"bogus": {
			input:   "BOGUS",
			wantErr: ErrInvalidConsistency{Input: "BOGUS"},
		},
		"empty": {
			input:   "",
			wantErr: ErrInvalidConsistency{Input: ""},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseConsistency(tc.input)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestConsistencyNames(t *testing.T) {
	t.Parallel()

	require.Equal(t,
		"ANY, ONE, TWO, THREE, QUORUM, ALL, LOCAL_QUORUM, EACH_QUORUM, LOCAL_ONE",
		ConsistencyNames())
}
