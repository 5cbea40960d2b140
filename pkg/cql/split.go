// SPDX-License-Identifier: Apache-2.0

package cql

// SplitUnquoted splits s on sep, treating anything inside double quotes as
// literal. Doubled quotes inside a quoted segment toggle the state twice and
// are therefore preserved verbatim. The separator bytes themselves are
// dropped; quotes are kept so segments can still be parsed as identifiers.
func SplitUnquoted(s string, sep byte) []string {
	segments := make([]string, 0, 4)
	start := 0
	inQuotes := false
	for j := 0; j < len(s); j++ {
		switch s[j] {
		case '"':
			inQuotes = !inQuotes
		case sep:
			if !inQuotes {
				segments = append(segments, s[start:j])
				start = j + 1
			}
		}
	}
	return append(segments, s[start:])
}
