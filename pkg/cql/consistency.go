// SPDX-License-Identifier: Apache-2.0

package cql

import (
	"fmt"
	"strings"

	"github.com/gocql/gocql"
)

// consistencyLevels holds the supported write consistency levels in driver
// declaration order. Error messages enumerate them in this order.
var consistencyLevels = []gocql.Consistency{
	gocql.Any,
	gocql.One,
	gocql.Two,
	gocql.Three,
	gocql.Quorum,
	gocql.All,
	gocql.LocalQuorum,
	gocql.EachQuorum,
	gocql.LocalOne,
}

type ErrInvalidConsistency struct {
	Input string
}

func (e ErrInvalidConsistency) Error() string {
	return fmt.Sprintf("unknown consistency level: %s", e.Input)
}

// ParseConsistency resolves a consistency level name case-insensitively
// against the driver enumeration.
func ParseConsistency(s string) (gocql.Consistency, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for _, cl := range consistencyLevels {
		if cl.String() == name {
			return cl, nil
		}
	}
	return 0, ErrInvalidConsistency{Input: s}
}

// ConsistencyNames returns the names of all supported consistency levels,
// comma-joined, in declaration order.
func ConsistencyNames() string {
	names := make([]string, 0, len(consistencyLevels))
	for _, cl := range consistencyLevels {
		names = append(names, cl.String())
	}
	return strings.Join(names, ", ")
}
