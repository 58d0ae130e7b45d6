package system

import (
	"go-alien-invaders/internal/audio"
	"go-alien-invaders/internal/event"
)

// SoundSystem переводит события волны в звуковые эффекты.
type SoundSystem struct {
	player audio.Player
}

func NewSoundSystem(eventDispatcher *event.Dispatcher, player audio.Player) *SoundSystem {
	if player == nil {
		player = audio.NopPlayer{}
	}
	s := &SoundSystem{player: player}
	eventDispatcher.SubscribeAll(s, event.ShipFired, event.AlienFired, event.ShipDestroyed)
	return s
}

// OnEvent обрабатывает события, на которые подписана система.
func (s *SoundSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.ShipFired:
		s.player.Play(audio.EffectShipFire)
	case event.AlienFired:
		s.player.Play(audio.EffectAlienFire)
	case event.ShipDestroyed:
		s.player.Play(audio.EffectExplosion)
	}
}
