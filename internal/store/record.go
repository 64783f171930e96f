package store

import (
	"fmt"
	"strconv"
)

// Record is a single stored (id, key, value) triple.
type Record struct {
	ID    uint64 `json:"id"`
	Key   string `json:"key"`
	Value string `json:"value"`
}

// String formats the record as a list line: "<id> => (<key> => <value>)".
func (r Record) String() string {
	return fmt.Sprintf("%d => (%s => %s)", r.ID, r.Key, r.Value)
}

// ParseID parses a user-supplied identifier as a decimal uint64.
// Returns false for anything that is not a valid id.
func ParseID(s string) (uint64, bool) {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// FormatID returns the decimal string used as the on-disk map key for id.
func FormatID(id uint64) string {
	return strconv.FormatUint(id, 10)
}
