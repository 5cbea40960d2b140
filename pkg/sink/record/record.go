// SPDX-License-Identifier: Apache-2.0

// Package record exposes the record-side collaborators of the sink: field
// type resolution against a record schema, and adapters turning inbound
// messages into field lookups for the resolved mapping.
package record

import (
	"fmt"
	"reflect"

	"github.com/gocql/gocql"
)

// RawFieldName is the reserved field name denoting the entire record. It is
// resolved without any schema lookup.
const RawFieldName = "__self"

// Metadata resolves the in-memory representation type of a named record
// field, given the native type of the destination column it is mapped to.
type Metadata interface {
	FieldType(field string, colType gocql.TypeInfo) (reflect.Type, error)
}

// Record is one inbound sink record, dereferenced through the field
// references of a resolved mapping.
type Record interface {
	Field(ref string) (any, error)
}

type ErrFieldNotFound struct {
	Field string
}

func (e ErrFieldNotFound) Error() string {
	return fmt.Sprintf("record field [%s] not found", e.Field)
}

type ErrTypeUnsupported struct {
	Type string
}

func (e ErrTypeUnsupported) Error() string {
	return fmt.Sprintf("unsupported schema type: %s", e.Type)
}
