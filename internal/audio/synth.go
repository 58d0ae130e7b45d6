package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
)

const SampleRate = beep.SampleRate(44100)

// Длительности эффектов
const (
	ShipFireDuration  = 90 * time.Millisecond
	AlienFireDuration = 140 * time.Millisecond
	ExplosionDuration = 400 * time.Millisecond
)

// Duration возвращает длительность эффекта.
func Duration(e Effect) time.Duration {
	switch e {
	case EffectShipFire:
		return ShipFireDuration
	case EffectAlienFire:
		return AlienFireDuration
	case EffectExplosion:
		return ExplosionDuration
	}
	return 0
}

// Streamer синтезирует эффект; готовых ассетов у игры нет.
func Streamer(e Effect, sr beep.SampleRate) beep.Streamer {
	n := sr.N(Duration(e))
	switch e {
	case EffectShipFire:
		tone, err := generators.SineTone(sr, 880)
		if err != nil {
			return beep.Silence(n)
		}
		return beep.Take(n, &envelope{Streamer: tone, total: n, amp: 0.3})
	case EffectAlienFire:
		return beep.Take(n, newSweep(sr, 600, 180, n, 0.25))
	case EffectExplosion:
		return beep.Take(n, &envelope{Streamer: &noise{rng: rand.New(rand.NewSource(1))}, total: n, amp: 0.35})
	}
	return beep.Silence(0)
}

// envelope линейно гасит громкость от amp до нуля за total сэмплов.
type envelope struct {
	beep.Streamer
	pos   int
	total int
	amp   float64
}

func (e *envelope) Stream(samples [][2]float64) (int, bool) {
	n, ok := e.Streamer.Stream(samples)
	for i := 0; i < n; i++ {
		gain := e.amp
		if e.total > 0 {
			gain *= 1 - math.Min(1, float64(e.pos)/float64(e.total))
		}
		samples[i][0] *= gain
		samples[i][1] *= gain
		e.pos++
	}
	return n, ok
}

// sweep — синус с частотой, линейно меняющейся от from до to.
type sweep struct {
	sr       beep.SampleRate
	pos      int
	samples  int
	from, to float64
	amp      float64
	phase    float64
}

func newSweep(sr beep.SampleRate, from, to float64, samples int, amp float64) *sweep {
	return &sweep{sr: sr, from: from, to: to, samples: samples, amp: amp}
}

func (s *sweep) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		progress := 0.0
		if s.samples > 0 {
			progress = math.Min(1, float64(s.pos)/float64(s.samples))
		}
		freq := s.from + (s.to-s.from)*progress
		s.phase += 2 * math.Pi * freq / float64(s.sr)
		v := s.amp * (1 - progress) * math.Sin(s.phase)
		samples[i][0] = v
		samples[i][1] = v
		s.pos++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

type noise struct {
	rng *rand.Rand
}

func (n *noise) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		v := n.rng.Float64()*2 - 1
		samples[i][0] = v
		samples[i][1] = v
	}
	return len(samples), true
}

func (n *noise) Err() error { return nil }
