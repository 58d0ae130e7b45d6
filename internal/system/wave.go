package system

import (
	"go-alien-invaders/internal/config"
	"go-alien-invaders/internal/entity"
	"go-alien-invaders/internal/event"
)

// FormationSystem шагает строем по накопленному времени
type FormationSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
}

func NewFormationSystem(world *entity.World, eventDispatcher *event.Dispatcher) *FormationSystem {
	return &FormationSystem{
		world:           world,
		eventDispatcher: eventDispatcher,
	}
}

// Update накапливает dt. Когда накопленное превышает AlienSpeed, шлюз открывается:
// строй делает шаг, счётчик шагов растёт, накопитель обнуляется.
// Возвращает true, если шлюз открылся в этом кадре.
func (s *FormationSystem) Update(deltaTime float64) bool {
	w := s.world
	w.StepTriggered = false
	w.Elapsed += deltaTime
	if w.Elapsed <= w.Definition.AlienSpeed {
		return false
	}
	w.Elapsed = 0
	w.StepTriggered = true

	if w.Formation.Empty() {
		return true
	}

	descended := w.Formation.March(config.AlienHWalk, config.AlienVWalk, config.MarchLeftEdge, config.MarchRightEdge)
	w.Steps++
	if descended {
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.FormationDrop,
			Data: event.DropData{
				MovingLeft: w.Formation.Direction() == entity.MarchLeft,
				LowestY:    w.Formation.LowestY(),
			},
		})
	}
	return true
}
