// SPDX-License-Identifier: Apache-2.0

package record

import (
	"fmt"
	"math/big"
	"reflect"
	"time"

	"github.com/gocql/gocql"
	"github.com/hamba/avro/v2"
)

var (
	wholeRecordType = reflect.TypeOf(map[string]any{})
	anyType         = reflect.TypeOf((*any)(nil)).Elem()
	stringType      = reflect.TypeOf("")
	bytesType       = reflect.TypeOf([]byte(nil))
	timeType        = reflect.TypeOf(time.Time{})
	durationType    = reflect.TypeOf(time.Duration(0))
	ratType         = reflect.TypeOf((*big.Rat)(nil))
)

// StructMetadata resolves field representation types for structured records
// described by an avro record schema.
type StructMetadata struct {
	schema *avro.RecordSchema
}

func NewStructMetadata(schema avro.Schema) (*StructMetadata, error) {
	recordSchema, ok := schema.(*avro.RecordSchema)
	if !ok {
		return nil, fmt.Errorf("expected a record schema, got %s", schema.Type())
	}
	return &StructMetadata{schema: recordSchema}, nil
}

// FieldType resolves the representation type for the named field. The
// whole-record sentinel bypasses schema lookup entirely; any other name must
// exist in the record schema, and its declared type must be covered by the
// correspondence table. Unmapped schema types are a configuration error, not
// a silent default.
func (m *StructMetadata) FieldType(field string, _ gocql.TypeInfo) (reflect.Type, error) {
	if field == RawFieldName {
		return wholeRecordType, nil
	}
	for _, f := range m.schema.Fields() {
		if f.Name() == field {
			return goType(f.Type())
		}
	}
	return nil, ErrFieldNotFound{Field: field}
}

func goType(schema avro.Schema) (reflect.Type, error) {
	if primitive, ok := schema.(*avro.PrimitiveSchema); ok && primitive.Logical() != nil {
		switch primitive.Logical().Type() {
		case avro.Date, avro.TimestampMillis, avro.TimestampMicros:
			return timeType, nil
		case avro.TimeMillis, avro.TimeMicros:
			return durationType, nil
		case avro.Decimal:
			return ratType, nil
		}
	}

	switch schema.Type() {
	case avro.Boolean:
		return reflect.TypeOf(false), nil
	case avro.Int:
		return reflect.TypeOf(int(0)), nil
	case avro.Long:
		return reflect.TypeOf(int64(0)), nil
	case avro.Float:
		return reflect.TypeOf(float32(0)), nil
	case avro.Double:
		return reflect.TypeOf(float64(0)), nil
	case avro.Bytes, avro.Fixed:
		return bytesType, nil
	case avro.String, avro.Enum:
		return stringType, nil
	case avro.Null:
		return anyType, nil
	case avro.Record:
		return wholeRecordType, nil
	case avro.Array:
		elem, err := goType(schema.(*avro.ArraySchema).Items())
		if err != nil {
			return nil, err
		}
		return reflect.SliceOf(elem), nil
	case avro.Map:
		value, err := goType(schema.(*avro.MapSchema).Values())
		if err != nil {
			return nil, err
		}
		return reflect.MapOf(stringType, value), nil
	case avro.Union:
		return unionType(schema.(*avro.UnionSchema))
	case avro.Ref:
		return goType(schema.(*avro.RefSchema).Schema())
	default:
		return nil, ErrTypeUnsupported{Type: string(schema.Type())}
	}
}

func unionType(union *avro.UnionSchema) (reflect.Type, error) {
	if !union.Nullable() {
		// non-nullable unions decode into a type-keyed map
		return wholeRecordType, nil
	}
	for _, s := range union.Types() {
		if s.Type() == avro.Null {
			continue
		}
		inner, err := goType(s)
		if err != nil {
			return nil, err
		}
		if inner.Kind() == reflect.Slice || inner.Kind() == reflect.Map || inner.Kind() == reflect.Ptr {
			return inner, nil
		}
		return reflect.PointerTo(inner), nil
	}
	return nil, ErrTypeUnsupported{Type: string(avro.Union)}
}
