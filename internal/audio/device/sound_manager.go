// Package device plays audio effects through the system speaker.
package device

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog/log"

	"go-alien-invaders/internal/audio"
)

// SoundManager смешивает эффекты в один поток динамика.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

func NewSoundManager() *SoundManager {
	return &SoundManager{mixer: &beep.Mixer{}}
}

// Initialize открывает динамик. Без него игра работает молча.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(audio.SampleRate, audio.SampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Play implements audio.Player.
func (sm *SoundManager) Play(e audio.Effect) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Add(audio.Streamer(e, audio.SampleRate))
	speaker.Unlock()
	log.Debug().Str("effect", e.String()).Msg("play")
}

// Close останавливает все звуки и закрывает динамик.
func (sm *SoundManager) Close() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

var _ audio.Player = (*SoundManager)(nil)
