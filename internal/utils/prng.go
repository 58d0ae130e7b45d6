// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"
)

// Random — источник случайности для симуляции. Тесты подставляют свою последовательность.
type Random interface {
	// Intn возвращает число в диапазоне [0, n).
	Intn(n int) int
}

// PRNGService — это обертка над стандартным генератором случайных чисел Go,
// которая позволяет использовать предсказуемый (seeded) рандом во всей игре.
type PRNGService struct {
	rng  *rand.Rand
	seed int64
}

// NewPRNGService создает новый экземпляр сервиса с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{
		rng:  rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Seed возвращает фактически использованный сид (для логов и воспроизведения).
func (s *PRNGService) Seed() int64 {
	return s.seed
}

func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// RandInt возвращает равномерное число в [lo, hi] включительно.
func RandInt(r Random, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.Intn(hi-lo+1)
}
