// SPDX-License-Identifier: Apache-2.0

// Package config resolves per-table sink configuration from a flat,
// hierarchically namespaced settings bag. Every (topic, keyspace, table)
// triple gets its own dynamically synthesized settings schema, scoped under
// the path 'topic.<topic>.<keyspace>.<table>.<setting>'.
package config

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/mitchellh/mapstructure"
)

// Recognized per-table setting names.
const (
	MappingSetting          = "mapping"
	DeletesEnabledSetting   = "deletesEnabled"
	ConsistencyLevelSetting = "consistencyLevel"
	TTLSetting              = "ttl"
	NullToUnsetSetting      = "nullToUnset"
)

// DefaultConsistencyLevel is the consistency level applied when the setting
// is absent from the bag.
const DefaultConsistencyLevel = "LOCAL_ONE"

// TableSettingNames returns the recognized setting names in declaration
// order.
func TableSettingNames() []string {
	return []string{
		MappingSetting,
		DeletesEnabledSetting,
		ConsistencyLevelSetting,
		TTLSetting,
		NullToUnsetSetting,
	}
}

// TableSettingPath computes the fully qualified path of a per-table setting,
// in the form "topic.<topicname>.<keyspace>.<table>.<setting>". This path
// grammar is what lets a single flat bag carry configuration for arbitrarily
// many tables without collision.
func TableSettingPath(topic, keyspace, table, setting string) string {
	return fmt.Sprintf("topic.%s.%s.%s.%s", topic, keyspace, table, setting)
}

// Type is the declared type of a setting value.
type Type int

const (
	TypeString Type = iota
	TypeInt
	TypeBoolean
)

// Validator checks an already-coerced setting value.
type Validator func(path string, value any) error

// Def declares one recognized setting: its path, type, default and optional
// validator. A nil Default with Required set means the setting must be
// present in the bag.
type Def struct {
	Path      string
	Type      Type
	Default   any
	Required  bool
	Validator Validator
	Doc       string
}

// Schema is the set of recognized settings for one (topic, keyspace, table)
// triple. It is built fresh per triple and never mutated after construction.
type Schema struct {
	order []string
	defs  map[string]Def
}

func newSchema() *Schema {
	return &Schema{defs: make(map[string]Def)}
}

func (s *Schema) define(d Def) *Schema {
	s.order = append(s.order, d.Path)
	s.defs[d.Path] = d
	return s
}

// Defs returns the setting definitions in declaration order.
func (s *Schema) Defs() []Def {
	defs := make([]Def, 0, len(s.order))
	for _, path := range s.order {
		defs = append(defs, s.defs[path])
	}
	return defs
}

// Parse reads the raw values for every declared setting from the bag,
// coercing them to their declared types and running validators. All
// violations are aggregated, one per offending setting; on any violation no
// values are returned.
func (s *Schema) Parse(bag map[string]string) (map[string]any, error) {
	values := make(map[string]any, len(s.order))
	var errs []error
	for _, path := range s.order {
		def := s.defs[path]
		raw, ok := bag[path]
		if !ok {
			if def.Required {
				errs = append(errs, Error{Path: path, Reason: "missing required setting"})
				continue
			}
			values[path] = def.Default
			continue
		}
		value, err := def.coerce(raw)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if def.Validator != nil {
			if err := def.Validator(path, value); err != nil {
				errs = append(errs, err)
				continue
			}
		}
		values[path] = value
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return values, nil
}

func (d Def) coerce(raw string) (any, error) {
	switch d.Type {
	case TypeInt:
		var v int
		if err := weakDecode(raw, &v); err != nil {
			return nil, Error{Path: d.Path, Value: raw, Reason: "expected an integer"}
		}
		return v, nil
	case TypeBoolean:
		var v bool
		if err := weakDecode(raw, &v); err != nil {
			return nil, Error{Path: d.Path, Value: raw, Reason: "expected a boolean"}
		}
		return v, nil
	default:
		return raw, nil
	}
}

func weakDecode(raw string, target any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           target,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(raw)
}

// AtLeast returns a validator rejecting integer values below min.
func AtLeast(min int) Validator {
	return func(path string, value any) error {
		v, ok := value.(int)
		if !ok || v < min {
			return Error{
				Path:   path,
				Value:  fmt.Sprintf("%v", value),
				Reason: "value must be at least " + strconv.Itoa(min),
			}
		}
		return nil
	}
}

// BuildTableSchema synthesizes the settings schema for one (topic, keyspace,
// table) triple. It is a pure function: concurrent synthesis for different
// triples needs no coordination.
func BuildTableSchema(topic, keyspace, table string) *Schema {
	path := func(setting string) string {
		return TableSettingPath(topic, keyspace, table, setting)
	}
	return newSchema().
		define(Def{
			Path:     path(MappingSetting),
			Type:     TypeString,
			Required: true,
			Doc:      "Mapping of record fields to table columns, in the form of 'col1=value.f1, col2=key.f1'",
		}).
		define(Def{
			Path:    path(DeletesEnabledSetting),
			Type:    TypeBoolean,
			Default: true,
			Doc:     "Whether to delete rows where only the primary key is non-null",
		}).
		define(Def{
			Path:    path(ConsistencyLevelSetting),
			Type:    TypeString,
			Default: DefaultConsistencyLevel,
			Doc:     "Query consistency level",
		}).
		define(Def{
			Path:      path(TTLSetting),
			Type:      TypeInt,
			Default:   -1,
			Validator: AtLeast(-1),
			Doc:       "TTL of inserted rows, in seconds. -1 means no TTL",
		}).
		define(Def{
			Path:    path(NullToUnsetSetting),
			Type:    TypeBoolean,
			Default: true,
			Doc:     "Whether nulls in records should be treated as UNSET in the store",
		})
}
