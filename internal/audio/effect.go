package audio

// Effect — идентификатор звукового эффекта.
type Effect int

const (
	EffectShipFire Effect = iota
	EffectAlienFire
	EffectExplosion
)

func (e Effect) String() string {
	switch e {
	case EffectShipFire:
		return "ship_fire"
	case EffectAlienFire:
		return "alien_fire"
	case EffectExplosion:
		return "explosion"
	}
	return "unknown"
}

// Player воспроизводит эффект без ожидания; ошибки воспроизведения не возвращаются.
type Player interface {
	Play(e Effect)
}

// NopPlayer — тишина, когда звук недоступен или не нужен.
type NopPlayer struct{}

func (NopPlayer) Play(Effect) {}
