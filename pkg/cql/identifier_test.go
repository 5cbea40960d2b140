// SPDX-License-Identifier: Apache-2.0

package cql

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseIdentifier(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		raw          string
		wantInternal string
		wantCql      string
	}{
		"unquoted lower": {
			raw:          "foo",
			wantInternal: "foo",
			wantCql:      "foo",
		},
		"unquoted upper folds": {
			raw:          "FOO",
			wantInternal: "foo",
			wantCql:      "foo",
		},
		"quoted keeps case": {
			raw:          `"Foo"`,
			wantInternal: "Foo",
			wantCql:      `"Foo"`,
		},
		"quoted with space": {
			raw:          `"my col"`,
			wantInternal: "my col",
			wantCql:      `"my col"`,
		},
		"quoted with escaped quote": {
			raw:          `"a""b"`,
			wantInternal: `a"b`,
			wantCql:      `"a""b"`,
		},
		"quoted lower equals unquoted": {
			raw:          `"foo"`,
			wantInternal: "foo",
			wantCql:      "foo",
		},
		"unterminated quote kept literally": {
			raw:          `"foo`,
			wantInternal: `"foo`,
			wantCql:      `"""foo"`,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			id := ParseIdentifier(tc.raw)
			require.Equal(t, tc.wantInternal, id.AsInternal())
			require.Equal(t, tc.wantCql, id.AsCql())
		})
	}
}

func TestIdentifierEquality(t *testing.T) {
	t.Parallel()

	require.Equal(t, ParseIdentifier("foo"), ParseIdentifier("FOO"))
	require.Equal(t, ParseIdentifier(`"foo"`), ParseIdentifier("foo"))
	require.NotEqual(t, ParseIdentifier(`"Foo"`), ParseIdentifier("foo"))
	require.NotEqual(t, ParseIdentifier(`"Foo"`), ParseIdentifier("Foo"))

	// comparable, usable as a map key
	m := map[Identifier]int{
		ParseIdentifier("col1"): 1,
	}
	_, ok := m[ParseIdentifier("COL1")]
	require.True(t, ok)
}

func TestSplitUnquoted(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		input string
		sep   byte
		want  []string
	}{
		"plain dotted": {
			input: "a.b.c",
			sep:   '.',
			want:  []string{"a", "b", "c"},
		},
		"quoted segment with sep": {
			input: `t."my.ks".tbl`,
			sep:   '.',
			want:  []string{"t", `"my.ks"`, "tbl"},
		},
		"no separator": {
			input: "abc",
			sep:   ',',
			want:  []string{"abc"},
		},
		"trailing separator yields empty segment": {
			input: "a,",
			sep:   ',',
			want:  []string{"a", ""},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, SplitUnquoted(tc.input, tc.sep))
		})
	}
}
