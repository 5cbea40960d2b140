// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gocql/gocql"

	"github.com/cassink/cassink/pkg/cql"
	"github.com/cassink/cassink/pkg/sink/mapping"
)

// Key identifies one (topic, keyspace, table) triple. A triple may only be
// configured once, so Key is the sole identity of a TableConfig: it is
// comparable and meant to be used for map keys and deduplication.
type Key struct {
	Topic    string
	Keyspace cql.Identifier
	Table    cql.Identifier
}

func (k Key) String() string {
	return fmt.Sprintf("%s.%s.%s", k.Topic, k.Keyspace.AsCql(), k.Table.AsCql())
}

// TableConfig is the resolved, immutable configuration for one (topic,
// keyspace, table) triple. Once built it is read-only and safe for
// unsynchronized concurrent reads.
type TableConfig struct {
	key            Key
	mappingString  string
	mapping        *mapping.Mapping
	consistency    gocql.Consistency
	ttl            int
	nullToUnset    bool
	deletesEnabled bool
}

func (c *TableConfig) Key() Key                       { return c.key }
func (c *TableConfig) Topic() string                  { return c.key.Topic }
func (c *TableConfig) Keyspace() cql.Identifier       { return c.key.Keyspace }
func (c *TableConfig) Table() cql.Identifier          { return c.key.Table }
func (c *TableConfig) Mapping() *mapping.Mapping      { return c.mapping }
func (c *TableConfig) MappingString() string          { return c.mappingString }
func (c *TableConfig) Consistency() gocql.Consistency { return c.consistency }
func (c *TableConfig) TTL() int                       { return c.ttl }
func (c *TableConfig) NullToUnset() bool              { return c.nullToUnset }
func (c *TableConfig) DeletesEnabled() bool           { return c.deletesEnabled }

// KeyspaceAndTable renders the destination in CQL syntax, e.g. ks."MyTable".
func (c *TableConfig) KeyspaceAndTable() string {
	return fmt.Sprintf("%s.%s", c.key.Keyspace.AsCql(), c.key.Table.AsCql())
}

// SettingPath computes the fully qualified path of one of this table's
// settings.
func (c *TableConfig) SettingPath(setting string) string {
	return TableSettingPath(c.key.Topic, c.key.Keyspace.AsInternal(), c.key.Table.AsInternal(), setting)
}

// Equal reports whether both configurations target the same triple. Two
// configurations for the same triple are equal regardless of their other
// fields.
func (c *TableConfig) Equal(other *TableConfig) bool {
	if other == nil {
		return c == nil
	}
	return c.key == other.key
}

func (c *TableConfig) String() string {
	return fmt.Sprintf("{keyspace: %s, table: %s, cl: %s, ttl: %d, nullToUnset: %t, deletesEnabled: %t, mapping: %s}",
		c.key.Keyspace, c.key.Table, c.consistency, c.ttl, c.nullToUnset, c.deletesEnabled, c.mapping)
}

// Builder accumulates the raw settings of one (topic, keyspace, table)
// triple and resolves them into a TableConfig.
type Builder struct {
	topic    string
	keyspace string
	table    string
	settings map[string]string
}

func NewBuilder(topic, keyspace, table string) *Builder {
	return &Builder{
		topic:    topic,
		keyspace: keyspace,
		table:    table,
		settings: make(map[string]string),
	}
}

func (b *Builder) AddSetting(key, value string) *Builder {
	b.settings[key] = value
	return b
}

// Build resolves the accumulated settings into an immutable TableConfig. It
// synthesizes the table's settings schema, parses and validates every value,
// parses keyspace and table names loosely, and inspects the mapping string.
// On any violation it fails with all errors aggregated; no partial
// configuration is ever returned. Build is idempotent and side-effect free.
func (b *Builder) Build() (*TableConfig, error) {
	schema := BuildTableSchema(b.topic, b.keyspace, b.table)
	values, err := schema.Parse(b.settings)
	if err != nil {
		return nil, err
	}

	path := func(setting string) string {
		return TableSettingPath(b.topic, b.keyspace, b.table, setting)
	}

	var errs []error

	mappingString := values[path(MappingSetting)].(string)
	parsed, mappingErrs := mapping.Inspect(mappingString, path(MappingSetting))
	if len(mappingErrs) > 0 {
		errs = append(errs, Error{
			Path:   path(MappingSetting),
			Value:  mappingString,
			Reason: "encountered the following errors:\n  " + strings.Join(mappingErrs, "\n  "),
		})
	}

	clName := values[path(ConsistencyLevelSetting)].(string)
	consistency, clErr := cql.ParseConsistency(clName)
	if clErr != nil {
		errs = append(errs, Error{
			Path:   path(ConsistencyLevelSetting),
			Value:  clName,
			Reason: "valid values include: " + cql.ConsistencyNames(),
		})
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return &TableConfig{
		key: Key{
			Topic:    b.topic,
			Keyspace: cql.ParseIdentifier(b.keyspace),
			Table:    cql.ParseIdentifier(b.table),
		},
		mappingString:  mappingString,
		mapping:        parsed,
		consistency:    consistency,
		ttl:            values[path(TTLSetting)].(int),
		nullToUnset:    values[path(NullToUnsetSetting)].(bool),
		deletesEnabled: values[path(DeletesEnabledSetting)].(bool),
	}, nil
}
