// SPDX-License-Identifier: Apache-2.0

// Package mapping parses the user-authored mapping grammar that associates
// destination table columns with source record fields, in the form
// 'col1=value.f1, col2=key.f1'.
package mapping

import (
	"fmt"
	"strings"

	"github.com/cassink/cassink/pkg/cql"
)

// Pair is one destination column to source field association.
type Pair struct {
	Column cql.Identifier
	Field  cql.Identifier
}

// Mapping is the parsed association between destination columns and source
// record fields. Insertion order is preserved for diagnostics; lookups are
// by column.
type Mapping struct {
	cols   []cql.Identifier
	fields map[cql.Identifier]cql.Identifier
}

func newMapping() *Mapping {
	return &Mapping{
		fields: make(map[cql.Identifier]cql.Identifier),
	}
}

func (m *Mapping) add(col, field cql.Identifier) {
	m.cols = append(m.cols, col)
	m.fields[col] = field
}

// FieldFor returns the source field mapped to the given destination column.
func (m *Mapping) FieldFor(col cql.Identifier) (cql.Identifier, bool) {
	field, ok := m.fields[col]
	return field, ok
}

// Columns returns the destination columns in insertion order.
func (m *Mapping) Columns() []cql.Identifier {
	cols := make([]cql.Identifier, len(m.cols))
	copy(cols, m.cols)
	return cols
}

// Pairs returns the mapped associations in insertion order.
func (m *Mapping) Pairs() []Pair {
	pairs := make([]Pair, 0, len(m.cols))
	for _, col := range m.cols {
		pairs = append(pairs, Pair{Column: col, Field: m.fields[col]})
	}
	return pairs
}

func (m *Mapping) Len() int {
	return len(m.cols)
}

func (m *Mapping) String() string {
	var b strings.Builder
	for j, col := range m.cols {
		if j > 0 {
			b.WriteString(", ")
		}
		b.WriteString(col.AsCql())
		b.WriteByte('=')
		b.WriteString(m.fields[col].AsInternal())
	}
	return b.String()
}

// Inspect parses a mapping string into a Mapping plus a list of
// human-readable errors. It never stops at the first defect: every malformed
// entry, empty side and duplicate column is reported, and whatever entries
// are well formed are retained. Callers decide whether a non-empty error
// list is fatal. settingPath names the setting being parsed, for diagnostics
// on the string as a whole.
func Inspect(text, settingPath string) (*Mapping, []string) {
	m := newMapping()
	var errs []string

	if strings.TrimSpace(text) == "" {
		return m, []string{fmt.Sprintf("mapping setting %s must not be empty", settingPath)}
	}

	for _, entry := range cql.SplitUnquoted(text, ',') {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			errs = append(errs, "invalid entry '': expected 'column=field'")
			continue
		}
		sides := cql.SplitUnquoted(entry, '=')
		if len(sides) != 2 {
			errs = append(errs, fmt.Sprintf("invalid entry '%s': expected 'column=field'", entry))
			continue
		}
		rawCol := strings.TrimSpace(sides[0])
		rawField := strings.TrimSpace(sides[1])
		entryErrs := false
		if rawCol == "" {
			errs = append(errs, fmt.Sprintf("invalid entry '%s': missing destination column", entry))
			entryErrs = true
		}
		if rawField == "" {
			errs = append(errs, fmt.Sprintf("invalid entry '%s': missing source field", entry))
			entryErrs = true
		}
		if entryErrs {
			continue
		}

		field, err := parseFieldRef(rawField)
		if err != nil {
			errs = append(errs, err.Error())
			continue
		}
		col := cql.ParseIdentifier(rawCol)
		if _, exists := m.FieldFor(col); exists {
			errs = append(errs, fmt.Sprintf("mapping already defined for column %s", col.AsCql()))
			continue
		}
		m.add(col, field)
	}

	return m, errs
}

// parseFieldRef parses the source side of a mapping entry. A reference is
// either a quoted identifier (exact case), or a dotted path whose segments
// must all be non-empty, e.g. 'value.f1', 'key', 'header.h1' or a bare field
// name. Unquoted references keep their case: record field names are case
// sensitive.
func parseFieldRef(raw string) (cql.Identifier, error) {
	if strings.HasPrefix(raw, `"`) {
		return cql.ParseIdentifier(raw), nil
	}
	for _, seg := range cql.SplitUnquoted(raw, '.') {
		if seg == "" {
			return cql.Identifier{}, fmt.Errorf("invalid field reference '%s': empty path segment", raw)
		}
	}
	return cql.FromInternal(raw), nil
}
