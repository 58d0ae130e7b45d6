package system

import (
	"go-alien-invaders/internal/component"
	"go-alien-invaders/internal/defs"
	"go-alien-invaders/internal/entity"
	"go-alien-invaders/internal/event"
)

// StateSystem проверяет линию обороны, возрождает корабль и пересчитывает статус раунда
type StateSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
}

func NewStateSystem(world *entity.World, eventDispatcher *event.Dispatcher) *StateSystem {
	return &StateSystem{
		world:           world,
		eventDispatcher: eventDispatcher,
	}
}

func (s *StateSystem) Update(deltaTime float64) {
	w := s.world
	if w.Status == component.RoundLost {
		return
	}

	s.checkBreach()
	s.respawn(deltaTime)

	prev := w.Status
	w.Status = s.Evaluate()
	if w.Status != prev && w.Status.IsOver() {
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.RoundEnded,
			Data: event.RoundData{Won: w.Status == component.RoundWon, Lives: w.Lives},
		})
	}
}

// Evaluate вычисляет статус из текущего состояния мира, ничего не меняя.
func (s *StateSystem) Evaluate() component.RoundStatus {
	w := s.world
	switch {
	case w.Lives <= 0 || w.Breached:
		return component.RoundLost
	case w.Formation.Empty():
		return component.RoundWon
	case !w.Ship.Present():
		return component.RoundShipDestroyed
	}
	return component.RoundActive
}

// checkBreach: пришелец на линии обороны означает поражение при любом числе жизней.
func (s *StateSystem) checkBreach() {
	w := s.world
	if w.Breached {
		return
	}
	w.Formation.Each(func(_, _ int, a *component.Alien) {
		if w.Line.Breached(a) {
			w.Breached = true
		}
	})
	if !w.Breached {
		return
	}

	w.Lives = 0
	w.Ship.Clear()
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.DefenseBreached,
		Data: event.DropData{
			MovingLeft: w.Formation.Direction() == entity.MarchLeft,
			LowestY:    w.Formation.LowestY(),
		},
	})
}

func (s *StateSystem) respawn(deltaTime float64) {
	w := s.world
	if w.Ship.Present() || w.Lives <= 0 || w.Definition.Respawn != defs.RespawnAfterDelay {
		w.RespawnTimer = 0
		return
	}

	w.RespawnTimer += deltaTime
	if w.RespawnTimer < w.Definition.RespawnDelay {
		return
	}
	w.RespawnTimer = 0
	w.Ship.Set(component.StartShip())
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.ShipRespawned,
		Data: event.ShipData{Lives: w.Lives},
	})
}
