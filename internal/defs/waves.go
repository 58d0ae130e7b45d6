package defs

import (
	"errors"
	"fmt"
	"math"

	"go-alien-invaders/internal/config"
)

// ErrInvalidDefinition is wrapped by every validation failure.
var ErrInvalidDefinition = errors.New("invalid wave definition")

// WaveDefinition описывает параметры одной волны пришельцев.
type WaveDefinition struct {
	Rows         int           `json:"rows"`          // Количество рядов строя
	Columns      int           `json:"columns"`       // Пришельцев в ряду
	AlienSpeed   float64       `json:"alien_speed"`   // Секунд между шагами строя
	BoltRate     int           `json:"bolt_rate"`     // Верхняя граница порога шагов между выстрелами
	Lives        int           `json:"lives"`         // Начальное число жизней
	Respawn      RespawnPolicy `json:"respawn"`       // Что делать с кораблём после попадания
	RespawnDelay float64       `json:"respawn_delay"` // Секунд до нового корабля
}

// DefaultWave возвращает волну из констант config.
func DefaultWave() WaveDefinition {
	return WaveDefinition{
		Rows:         config.AlienRows,
		Columns:      config.AliensInRow,
		AlienSpeed:   config.AlienSpeed,
		BoltRate:     config.BoltRate,
		Lives:        config.ShipLives,
		Respawn:      RespawnNever,
		RespawnDelay: config.RespawnDelay,
	}
}

// Validate проверяет, что волну можно построить и симулировать.
func (d WaveDefinition) Validate() error {
	switch {
	case d.Rows <= 0:
		return fmt.Errorf("%w: rows must be positive, got %d", ErrInvalidDefinition, d.Rows)
	case d.Columns <= 0:
		return fmt.Errorf("%w: columns must be positive, got %d", ErrInvalidDefinition, d.Columns)
	case d.AlienSpeed <= 0:
		return fmt.Errorf("%w: alien_speed must be positive, got %v", ErrInvalidDefinition, d.AlienSpeed)
	case d.BoltRate < 1:
		return fmt.Errorf("%w: bolt_rate must be at least 1, got %d", ErrInvalidDefinition, d.BoltRate)
	case d.Lives < 1:
		return fmt.Errorf("%w: lives must be at least 1, got %d", ErrInvalidDefinition, d.Lives)
	case d.RespawnDelay < 0:
		return fmt.Errorf("%w: respawn_delay must not be negative, got %v", ErrInvalidDefinition, d.RespawnDelay)
	}
	if d.Respawn != RespawnNever && d.Respawn != RespawnAfterDelay {
		return fmt.Errorf("%w: unknown respawn policy %q", ErrInvalidDefinition, d.Respawn)
	}

	// Строй должен помещаться над линией обороны.
	height := d.Rows*(config.AlienHeight+config.AlienVSep) - config.AlienVSep
	if config.GameHeight-config.AlienCeiling-height <= config.DefenseLine {
		return fmt.Errorf("%w: %d rows do not fit above the defense line", ErrInvalidDefinition, d.Rows)
	}

	// И по ширине: правый край последней колонки не дальше правой границы марша.
	width := config.AlienHSep + d.Columns*(config.AlienWidth+config.AlienHSep) - config.AlienHSep
	if width > config.MarchRightEdge+config.AlienWidth/2 {
		return fmt.Errorf("%w: %d columns do not fit across the screen", ErrInvalidDefinition, d.Columns)
	}
	return nil
}

// Ускорение строя с каждой следующей волной и нижние пределы.
const (
	waveSpeedFactor = 0.85
	minAlienSpeed   = 0.2
)

// ForWave возвращает определение волны с номером n (с 1): строй шагает чаще,
// пришельцы стреляют чаще. Первая волна совпадает с base.
func ForWave(base WaveDefinition, n int) WaveDefinition {
	def := base
	for i := 1; i < n; i++ {
		def.AlienSpeed = math.Max(minAlienSpeed, def.AlienSpeed*waveSpeedFactor)
		if i%2 == 0 && def.BoltRate > 1 {
			def.BoltRate--
		}
	}
	return def
}
