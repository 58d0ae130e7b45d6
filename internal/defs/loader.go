// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
)

// LoadWaveDefinition reads a JSON file over DefaultWave. Fields absent from the
// file keep their default values.
func LoadWaveDefinition(path string) (WaveDefinition, error) {
	def := DefaultWave()

	file, err := os.ReadFile(path)
	if err != nil {
		return def, fmt.Errorf("failed to read wave definition file: %w", err)
	}

	if err := json.Unmarshal(file, &def); err != nil {
		return DefaultWave(), fmt.Errorf("failed to unmarshal wave definition: %w", err)
	}

	if err := def.Validate(); err != nil {
		return DefaultWave(), err
	}

	log.Info().
		Str("path", path).
		Int("rows", def.Rows).
		Int("columns", def.Columns).
		Str("respawn", string(def.Respawn)).
		Msg("loaded wave definition")
	return def, nil
}
