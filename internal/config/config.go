// internal/config/config.go
package config

import "image/color"

// Мировые координаты: y направлен вверх, 0 это низ экрана.
const (
	GameWidth    = 800
	GameHeight   = 700
	MaxDeltaTime = 0.06
	TickRate     = 60 // для терминального фронтенда

	ShipWidth    = 44
	ShipHeight   = 44
	ShipBottom   = 32
	ShipMovement = 5
	ShipLives    = 3

	DefenseLine      = 100
	DefenseLineWidth = 2

	AlienWidth   = 33
	AlienHeight  = 33
	AlienHSep    = 16
	AlienVSep    = 16
	AlienCeiling = 100
	AlienRows    = 5
	AliensInRow  = 12
	AlienHWalk   = AlienWidth / 4
	AlienVWalk   = AlienHeight / 2
	AlienSpeed   = 1.0 // секунд между шагами строя

	BoltWidth  = 4
	BoltHeight = 16
	BoltSpeed  = 10
	BoltRate   = 5 // верхняя граница порога шагов между выстрелами пришельцев

	RespawnDelay  = 1.5 // секунд до появления нового корабля
	NextWaveDelay = 2.0 // пауза между зачищенной волной и следующей
)

// Границы марша строя (по центру крайнего пришельца). Отступ AlienHSep оставлен с обеих сторон,
// чтобы строй разворачивался симметрично.
const (
	MarchLeftEdge  = AlienHSep + AlienWidth/2
	MarchRightEdge = GameWidth - AlienHSep - AlienWidth/2
)

// HUD
const (
	IndicatorOffsetX = 30
	IndicatorRadius  = 8.0
	HUDTextX         = 12
	HUDTextY         = 20
	WaveTextX        = GameWidth / 2
	WaveTextY        = 10
)

var (
	BackgroundColor  = color.RGBA{20, 20, 30, 255}
	ShipColor        = color.RGBA{50, 205, 50, 255}
	DefenseLineColor = color.RGBA{240, 240, 240, 255}
	PlayerBoltColor  = color.RGBA{255, 215, 0, 255}
	AlienBoltColor   = color.RGBA{220, 60, 60, 255}
	TextLightColor   = color.RGBA{240, 240, 240, 255}
	OverlayColor     = color.RGBA{0, 0, 0, 128}
	LifeFullColor    = color.RGBA{50, 100, 255, 255}
	LifeEmptyColor   = color.RGBA{0, 0, 0, 255}
	WaveTextColor    = color.RGBA{70, 130, 180, 255}
	AlienTierColors  = []color.RGBA{
		{255, 50, 50, 255},  // TierA
		{180, 50, 230, 255}, // TierB
		{50, 255, 50, 255},  // TierC
	}
)
