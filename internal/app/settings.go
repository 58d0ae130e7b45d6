package app

import (
	"github.com/rs/zerolog/log"

	"go-alien-invaders/internal/config"
	"go-alien-invaders/internal/defs"
)

// BaseWave собирает определение первой волны из настроек запуска. Ошибка файла волны
// не фатальна: пишем в лог и берём значения по умолчанию.
func BaseWave(s config.Settings) defs.WaveDefinition {
	def := defs.DefaultWave()
	if s.WaveFile != "" {
		loaded, err := defs.LoadWaveDefinition(s.WaveFile)
		if err != nil {
			log.Error().Err(err).Str("path", s.WaveFile).Msg("wave file rejected, using defaults")
		}
		def = loaded
	}
	if s.Respawn {
		def.Respawn = defs.RespawnAfterDelay
	}
	return def
}
