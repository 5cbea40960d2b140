// SPDX-License-Identifier: Apache-2.0

package record

import (
	"reflect"

	"github.com/gocql/gocql"
	"github.com/tidwall/gjson"
)

// JSONMetadata resolves field representation types for schemaless JSON
// records by inspecting the document itself. JSON numbers are ambiguous, so
// the destination column's native type decides between integer and float
// representations.
type JSONMetadata struct {
	doc []byte
}

func NewJSONMetadata(doc []byte) *JSONMetadata {
	return &JSONMetadata{doc: doc}
}

func (m *JSONMetadata) FieldType(field string, colType gocql.TypeInfo) (reflect.Type, error) {
	if field == RawFieldName {
		return wholeRecordType, nil
	}
	result := gjson.GetBytes(m.doc, field)
	if !result.Exists() {
		return nil, ErrFieldNotFound{Field: field}
	}
	switch result.Type {
	case gjson.String:
		return stringType, nil
	case gjson.True, gjson.False:
		return reflect.TypeOf(false), nil
	case gjson.Number:
		return numberType(colType), nil
	case gjson.JSON:
		if result.IsArray() {
			return reflect.TypeOf([]any{}), nil
		}
		return wholeRecordType, nil
	default:
		return anyType, nil
	}
}

func numberType(colType gocql.TypeInfo) reflect.Type {
	if colType != nil {
		switch colType.Type() {
		case gocql.TypeBigInt, gocql.TypeInt, gocql.TypeSmallInt, gocql.TypeTinyInt,
			gocql.TypeCounter, gocql.TypeVarint:
			return reflect.TypeOf(int64(0))
		}
	}
	return reflect.TypeOf(float64(0))
}
