// SPDX-License-Identifier: Apache-2.0

package cql

import "strings"

// Identifier is a canonical CQL identifier for a keyspace, table or column.
// The internal form is the exact name as known to the store; whether the
// identifier needs quoting is derived from the name itself, so two
// identifiers are equal iff their internal forms match and the type is safe
// to use as a map key.
type Identifier struct {
	internal string
	quoted   bool
}

// ParseIdentifier parses a raw string loosely. If it starts with a double
// quote it is parsed under the quoted-identifier grammar and keeps its exact
// case; otherwise the whole string is case-folded to the store convention for
// unquoted names. Parsing is total: any input yields an identifier.
//
// The asymmetry is deliberate: operators can write case-sensitive names by
// quoting them, without having to know the full CQL escaping rules.
func ParseIdentifier(raw string) Identifier {
	if strings.HasPrefix(raw, `"`) {
		if inner, ok := unquote(raw); ok {
			return FromInternal(inner)
		}
		// unterminated quote, fall back to treating the input literally
		return FromInternal(raw)
	}
	return FromInternal(strings.ToLower(raw))
}

// FromInternal builds an identifier from its exact internal form, with no
// case folding.
func FromInternal(name string) Identifier {
	return Identifier{
		internal: name,
		quoted:   needsQuoting(name),
	}
}

// AsInternal returns the exact name as known to the store.
func (i Identifier) AsInternal() string {
	return i.internal
}

// AsCql renders the identifier in CQL syntax, quoting and escaping when the
// name requires it.
func (i Identifier) AsCql() string {
	if i.quoted {
		return `"` + strings.ReplaceAll(i.internal, `"`, `""`) + `"`
	}
	return i.internal
}

func (i Identifier) String() string {
	return i.AsCql()
}

// unquote strips the surrounding double quotes and unfolds doubled quotes.
// Returns false if the input is not a single well-formed quoted segment.
func unquote(raw string) (string, bool) {
	if len(raw) < 2 || !strings.HasSuffix(raw, `"`) {
		return "", false
	}
	inner := raw[1 : len(raw)-1]
	var b strings.Builder
	for j := 0; j < len(inner); j++ {
		if inner[j] == '"' {
			if j+1 >= len(inner) || inner[j+1] != '"' {
				return "", false
			}
			j++
		}
		b.WriteByte(inner[j])
	}
	return b.String(), true
}

func needsQuoting(name string) bool {
	if name == "" {
		return true
	}
	for j := 0; j < len(name); j++ {
		c := name[j]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= '0' && c <= '9':
			if j == 0 {
				return true
			}
		case c == '_':
		default:
			return true
		}
	}
	return false
}
