package entity

import (
	"go-alien-invaders/internal/component"
	"go-alien-invaders/internal/defs"
)

// World — всё состояние одной волны. Системы читают и меняют его в фиксированном порядке.
type World struct {
	Definition defs.WaveDefinition

	Ship      Slot[component.Ship]
	Formation *Formation
	Bolts     []component.Bolt
	Line      component.DefenseLine

	Lives         int     // не растёт; 0 — поражение
	Elapsed       float64 // время с последнего шага строя
	Steps         int     // шагов строя с последнего выстрела пришельцев
	FireThreshold int     // Steps должен превысить его для выстрела, [1, BoltRate]
	Breached      bool
	RespawnTimer  float64 // отсчёт до нового корабля, если включено возрождение
	Status        component.RoundStatus

	// Флаг кадра: открылся ли временной шлюз строя в текущем Update.
	StepTriggered bool
}

// NewWorld строит строй, корабль и линию обороны по определению волны.
func NewWorld(def defs.WaveDefinition, fireThreshold int) *World {
	return &World{
		Definition:    def,
		Ship:          Some(component.StartShip()),
		Formation:     NewFormation(def.Rows, def.Columns),
		Bolts:         make([]component.Bolt, 0, 8),
		Line:          component.NewDefenseLine(),
		Lives:         def.Lives,
		FireThreshold: fireThreshold,
		Status:        component.RoundActive,
	}
}

// HasPlayerBolt — в полёте уже есть снаряд игрока.
func (w *World) HasPlayerBolt() bool {
	for i := range w.Bolts {
		if w.Bolts[i].IsPlayerBolt() {
			return true
		}
	}
	return false
}

// AddBolt добавляет снаряд в общий список.
func (w *World) AddBolt(b component.Bolt) {
	w.Bolts = append(w.Bolts, b)
}

// RemoveBolts удаляет снаряды по набору индексов. Повторные индексы безопасны.
func (w *World) RemoveBolts(dead map[int]struct{}) {
	if len(dead) == 0 {
		return
	}
	kept := w.Bolts[:0]
	for i, b := range w.Bolts {
		if _, ok := dead[i]; !ok {
			kept = append(kept, b)
		}
	}
	w.Bolts = kept
}
