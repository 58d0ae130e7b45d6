// internal/config/settings.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Settings — параметры запуска, читаемые из окружения (и .env через godotenv в main).
type Settings struct {
	Seed     int64  // 0: сид от текущего времени
	WaveFile string // JSON с переопределением параметров волны, если пусто, значения по умолчанию
	Respawn  bool   // возрождать корабль после попадания
	LogLevel string
	LogFile  string // только для терминального фронтенда
}

// LoadSettings reads the INVADERS_* variables. Missing values fall back to defaults.
func LoadSettings() (Settings, error) {
	s := Settings{
		WaveFile: os.Getenv("INVADERS_WAVE_FILE"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		LogFile:  getEnv("INVADERS_LOG_FILE", "invaders.log"),
	}

	if v := os.Getenv("INVADERS_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return s, fmt.Errorf("parse INVADERS_SEED %q: %w", v, err)
		}
		s.Seed = seed
	}

	if v := os.Getenv("INVADERS_RESPAWN"); v != "" {
		respawn, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return s, fmt.Errorf("parse INVADERS_RESPAWN %q: %w", v, err)
		}
		s.Respawn = respawn
	}

	return s, nil
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
