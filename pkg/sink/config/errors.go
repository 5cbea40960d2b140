// SPDX-License-Identifier: Apache-2.0

package config

import "fmt"

// Error is a configuration violation for a single setting. It carries the
// fully qualified setting path, the offending value and an explanation, so
// operators can fix the bag entry it names without guessing.
type Error struct {
	Path   string
	Value  string
	Reason string
}

func (e Error) Error() string {
	return fmt.Sprintf("invalid value '%s' for configuration %s: %s", e.Value, e.Path, e.Reason)
}
