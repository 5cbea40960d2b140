// SPDX-License-Identifier: Apache-2.0

package mapping

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"github.com/cassink/cassink/pkg/cql"
)

const testSettingPath = "topic.t.ks.tbl.mapping"

func TestInspect(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		text      string
		wantPairs []Pair
		wantErrs  []string
	}{
		"single pair": {
			text: "col1=value.f1",
			wantPairs: []Pair{
				{Column: cql.ParseIdentifier("col1"), Field: cql.FromInternal("value.f1")},
			},
		},
		"multiple pairs with whitespace": {
			text: " col1 = value.f1 ,col2=key.f1,  col3 =header.h1",
			wantPairs: []Pair{
				{Column: cql.ParseIdentifier("col1"), Field: cql.FromInternal("value.f1")},
				{Column: cql.ParseIdentifier("col2"), Field: cql.FromInternal("key.f1")},
				{Column: cql.ParseIdentifier("col3"), Field: cql.FromInternal("header.h1")},
			},
		},
		"bare field name": {
			text: "col1=f1",
			wantPairs: []Pair{
				{Column: cql.ParseIdentifier("col1"), Field: cql.FromInternal("f1")},
			},
		},
		"whole record sentinel": {
			text: "col1=__self",
			wantPairs: []Pair{
				{Column: cql.ParseIdentifier("col1"), Field: cql.FromInternal("__self")},
			},
		},
		"quoted column keeps case": {
			text: `"MyCol"=value.f1`,
			wantPairs: []Pair{
				{Column: cql.ParseIdentifier(`"MyCol"`), Field: cql.FromInternal("value.f1")},
			},
		},
		"unquoted field keeps case": {
			text: "col1=value.MyField",
			wantPairs: []Pair{
				{Column: cql.ParseIdentifier("col1"), Field: cql.FromInternal("value.MyField")},
			},
		},
		"quoted comma and equals are literal": {
			text: `"a,b"=value.f1, col2="k=v"`,
			wantPairs: []Pair{
				{Column: cql.ParseIdentifier(`"a,b"`), Field: cql.FromInternal("value.f1")},
				{Column: cql.ParseIdentifier("col2"), Field: cql.ParseIdentifier(`"k=v"`)},
			},
		},
		"missing column": {
			text: "col1=value.f1, =key.f1",
			wantPairs: []Pair{
				{Column: cql.ParseIdentifier("col1"), Field: cql.FromInternal("value.f1")},
			},
			wantErrs: []string{"invalid entry '=key.f1': missing destination column"},
		},
		"missing field": {
			text: "col1=",
			wantErrs: []string{
				"invalid entry 'col1=': missing source field",
			},
		},
		"no equals sign": {
			text: "col1:value.f1",
			wantErrs: []string{
				"invalid entry 'col1:value.f1': expected 'column=field'",
			},
		},
		"duplicate column": {
			text: "col1=value.f1, col1=key.f1",
			wantPairs: []Pair{
				{Column: cql.ParseIdentifier("col1"), Field: cql.FromInternal("value.f1")},
			},
			wantErrs: []string{"mapping already defined for column col1"},
		},
		"duplicate after case folding": {
			text: "col1=value.f1, COL1=key.f1",
			wantPairs: []Pair{
				{Column: cql.ParseIdentifier("col1"), Field: cql.FromInternal("value.f1")},
			},
			wantErrs: []string{"mapping already defined for column col1"},
		},
		"empty path segment": {
			text: "col1=value..f1",
			wantErrs: []string{
				"invalid field reference 'value..f1': empty path segment",
			},
		},
		"empty mapping": {
			text: "",
			wantErrs: []string{
				"mapping setting topic.t.ks.tbl.mapping must not be empty",
			},
		},
		"every defect reported": {
			text: "col1=value.f1, =key.f1, col2, col1=key.f2",
			wantPairs: []Pair{
				{Column: cql.ParseIdentifier("col1"), Field: cql.FromInternal("value.f1")},
			},
			wantErrs: []string{
				"invalid entry '=key.f1': missing destination column",
				"invalid entry 'col2': expected 'column=field'",
				"mapping already defined for column col1",
			},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			m, errs := Inspect(tc.text, testSettingPath)
			require.Equal(t, tc.wantErrs, errs)
			diff := cmp.Diff(tc.wantPairs, m.Pairs(),
				cmp.AllowUnexported(cql.Identifier{}), cmpopts.EquateEmpty())
			if diff != "" {
				t.Errorf("pairs mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMappingLookup(t *testing.T) {
	t.Parallel()

	m, errs := Inspect("col1=value.f1, col2=key.f1", testSettingPath)
	require.Empty(t, errs)
	require.Equal(t, 2, m.Len())

	field, ok := m.FieldFor(cql.ParseIdentifier("COL1"))
	require.True(t, ok)
	require.Equal(t, "value.f1", field.AsInternal())

	_, ok = m.FieldFor(cql.ParseIdentifier("col3"))
	require.False(t, ok)

	require.Equal(t, []cql.Identifier{
		cql.ParseIdentifier("col1"),
		cql.ParseIdentifier("col2"),
	}, m.Columns())
}

func TestMappingString(t *testing.T) {
	t.Parallel()

	m, errs := Inspect(` col1 = value.f1,  "MyCol"=key.f1 `, testSettingPath)
	require.Empty(t, errs)
	require.Equal(t, `col1=value.f1, "MyCol"=key.f1`, m.String())
}
