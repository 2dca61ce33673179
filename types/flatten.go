package types

import (
	"encoding/json"
	"fmt"
)

// mergeObjects merges the keys of extra into the JSON object base. Flattened
// field groups encode through this: the group's keys end up as siblings of
// the enclosing record's own fields instead of under a sub-object key.
func mergeObjects(base, extra []byte) ([]byte, error) {
	var dst map[string]json.RawMessage
	if err := json.Unmarshal(base, &dst); err != nil {
		return nil, fmt.Errorf("merge objects: %w", err)
	}
	var src map[string]json.RawMessage
	if err := json.Unmarshal(extra, &src); err != nil {
		return nil, fmt.Errorf("merge objects: %w", err)
	}
	for k, v := range src {
		dst[k] = v
	}
	return json.Marshal(dst)
}
