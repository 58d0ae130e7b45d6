// internal/defs/types.go
package defs

import (
	"encoding/json"
	"fmt"
)

// RespawnPolicy defines what happens to the ship after it is destroyed.
type RespawnPolicy string

const (
	// RespawnNever — корабль не возвращается, жизни просто уменьшаются.
	RespawnNever RespawnPolicy = "NEVER"
	// RespawnAfterDelay — новый корабль появляется через RespawnDelay, пока есть жизни.
	RespawnAfterDelay RespawnPolicy = "AFTER_DELAY"
)

func (p *RespawnPolicy) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("respawn policy: %w", err)
	}
	switch RespawnPolicy(s) {
	case RespawnNever, RespawnAfterDelay:
		*p = RespawnPolicy(s)
		return nil
	}
	return fmt.Errorf("%w: unknown respawn policy %q", ErrInvalidDefinition, s)
}
