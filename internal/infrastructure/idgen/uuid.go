// Package idgen provides identifier generators for panes, splits and tabs.
package idgen

import (
	"strings"

	"github.com/google/uuid"
)

// New returns a generator of prefixed random ids, e.g. "pane_3f2c9a1e4b7d".
// Ids only need to be unique within one workspace layout, so 12 hex chars
// of a v4 UUID are enough.
func New(prefix string) func() string {
	return func() string {
		id := strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
		if prefix == "" {
			return id
		}
		return prefix + "_" + id
	}
}
