// internal/system/projectile.go
package system

import (
	"go-alien-invaders/internal/component"
	"go-alien-invaders/internal/entity"
	"go-alien-invaders/internal/event"
	"go-alien-invaders/internal/input"
	"go-alien-invaders/internal/utils"
)

// Сколько раз (на колонку) пробуем случайную колонку, прежде чем выбрать из занятых.
const columnDrawsPerColumn = 4

// ProjectileSystem управляет появлением, движением и удалением снарядов
type ProjectileSystem struct {
	world           *entity.World
	rng             utils.Random
	eventDispatcher *event.Dispatcher
}

func NewProjectileSystem(world *entity.World, rng utils.Random, eventDispatcher *event.Dispatcher) *ProjectileSystem {
	return &ProjectileSystem{
		world:           world,
		rng:             rng,
		eventDispatcher: eventDispatcher,
	}
}

// FireShip: огонь зажат, корабль жив и снаряда игрока в полёте нет.
func (s *ProjectileSystem) FireShip(in input.Input) bool {
	w := s.world
	ship, ok := w.Ship.Get()
	if !ok || !in.IsKeyDown(input.Fire) || w.HasPlayerBolt() {
		return false
	}

	w.AddBolt(component.NewBolt(ship.X, ship.Y, component.PlayerFaction))
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.ShipFired,
		Data: event.FireData{X: ship.X, Y: ship.Y},
	})
	return true
}

// FireAlien стреляет нижним пришельцем случайной колонки. Только в кадре, где открылся
// шлюз строя, и только если шагов больше порога. После выстрела порог перевыбирается.
func (s *ProjectileSystem) FireAlien() bool {
	w := s.world
	if !w.StepTriggered || w.Steps <= w.FireThreshold {
		return false
	}

	col, ok := s.pickColumn()
	if !ok {
		return false
	}
	row, _ := w.Formation.BottomRow(col)
	alien, _ := w.Formation.At(row, col)

	w.AddBolt(component.NewBolt(alien.X, alien.Y, component.AlienFaction))
	w.Steps = 0
	w.FireThreshold = utils.RandInt(s.rng, 1, w.Definition.BoltRate)

	s.eventDispatcher.Dispatch(event.Event{
		Type: event.AlienFired,
		Data: event.FireData{X: alien.X, Y: alien.Y, Row: row, Column: col},
	})
	return true
}

// pickColumn — выборка с отклонением, ограниченная по числу попыток.
// false только для пустого строя.
func (s *ProjectileSystem) pickColumn() (int, bool) {
	f := s.world.Formation
	occupied := f.OccupiedColumns()
	if len(occupied) == 0 {
		return -1, false
	}

	for attempt := 0; attempt < columnDrawsPerColumn*f.Cols(); attempt++ {
		col := s.rng.Intn(f.Cols())
		if _, ok := f.BottomRow(col); ok {
			return col, true
		}
	}
	return occupied[s.rng.Intn(len(occupied))], true
}

// Advance двигает каждый снаряд на его скорость.
func (s *ProjectileSystem) Advance() {
	for i := range s.world.Bolts {
		s.world.Bolts[i].Advance()
	}
}

// RemoveOffscreen удаляет улетевшие за экран снаряды и возвращает их число.
func (s *ProjectileSystem) RemoveOffscreen() int {
	dead := make(map[int]struct{})
	for i := range s.world.Bolts {
		if s.world.Bolts[i].Offscreen() {
			dead[i] = struct{}{}
		}
	}
	s.world.RemoveBolts(dead)
	return len(dead)
}
