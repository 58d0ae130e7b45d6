package app

import (
	"os"
	"path/filepath"
	"testing"

	"go-alien-invaders/internal/config"
	"go-alien-invaders/internal/defs"
)

func TestBaseWaveDefaults(t *testing.T) {
	if got := BaseWave(config.Settings{}); got != defs.DefaultWave() {
		t.Errorf("BaseWave = %+v", got)
	}
}

func TestBaseWaveRespawnOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wave.json")
	if err := os.WriteFile(path, []byte(`{"rows": 2, "respawn": "NEVER"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	got := BaseWave(config.Settings{WaveFile: path, Respawn: true})
	if got.Rows != 2 || got.Respawn != defs.RespawnAfterDelay {
		t.Errorf("BaseWave = %+v", got)
	}
}

func TestBaseWaveBadFileFallsBack(t *testing.T) {
	got := BaseWave(config.Settings{WaveFile: filepath.Join(t.TempDir(), "missing.json")})
	if got != defs.DefaultWave() {
		t.Errorf("BaseWave = %+v", got)
	}
}
