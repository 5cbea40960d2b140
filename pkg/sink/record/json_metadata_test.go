// SPDX-License-Identifier: Apache-2.0

package record

import (
	"reflect"
	"testing"

	"github.com/gocql/gocql"
	"github.com/stretchr/testify/require"
)

func TestJSONMetadataFieldType(t *testing.T) {
	t.Parallel()

	doc := []byte(`{
		"name": "widget",
		"count": 3,
		"price": 9.5,
		"active": true,
		"tags": ["a", "b"],
		"details": {"color": "red"},
		"nothing": null
	}`)
	metadata := NewJSONMetadata(doc)
	textCol := gocql.NewNativeType(4, gocql.TypeText, "")
	bigintCol := gocql.NewNativeType(4, gocql.TypeBigInt, "")
	doubleCol := gocql.NewNativeType(4, gocql.TypeDouble, "")

	tests := map[string]struct {
		field   string
		colType gocql.TypeInfo
		want    reflect.Type
	}{
		"whole record sentinel": {field: RawFieldName, colType: textCol, want: reflect.TypeOf(map[string]any{})},
		"string":                {field: "name", colType: textCol, want: reflect.TypeOf("")},
		"number for bigint col": {field: "count", colType: bigintCol, want: reflect.TypeOf(int64(0))},
		"number for double col": {field: "price", colType: doubleCol, want: reflect.TypeOf(float64(0))},
		"number without col":    {field: "count", colType: nil, want: reflect.TypeOf(float64(0))},
		"bool":                  {field: "active", colType: textCol, want: reflect.TypeOf(false)},
		"array":                 {field: "tags", colType: textCol, want: reflect.TypeOf([]any{})},
		"object":                {field: "details", colType: textCol, want: reflect.TypeOf(map[string]any{})},
		"nested path":           {field: "details.color", colType: textCol, want: reflect.TypeOf("")},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := metadata.FieldType(tc.field, tc.colType)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestJSONMetadataFieldNotFound(t *testing.T) {
	t.Parallel()

	metadata := NewJSONMetadata([]byte(`{"a": 1}`))
	_, err := metadata.FieldType("b", nil)
	require.ErrorIs(t, err, ErrFieldNotFound{Field: "b"})
}
