package system

import (
	"go-alien-invaders/internal/component"
	"go-alien-invaders/internal/entity"
	"go-alien-invaders/internal/event"
)

// CollisionSystem сталкивает снаряды с противоположной стороной
type CollisionSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
}

func NewCollisionSystem(world *entity.World, eventDispatcher *event.Dispatcher) *CollisionSystem {
	return &CollisionSystem{
		world:           world,
		eventDispatcher: eventDispatcher,
	}
}

// Update проверяет все снаряды за один проход и удаляет попавшие набором.
func (s *CollisionSystem) Update() {
	dead := make(map[int]struct{})
	for i := range s.world.Bolts {
		bolt := &s.world.Bolts[i]
		var hit bool
		if bolt.IsPlayerBolt() {
			hit = s.hitAlien(bolt)
		} else {
			hit = s.hitShip(bolt)
		}
		if hit {
			dead[i] = struct{}{}
		}
	}
	s.world.RemoveBolts(dead)
}

// hitAlien: первый задетый пришелец (построчно) уничтожается, снаряд дальше не проверяется.
func (s *CollisionSystem) hitAlien(bolt *component.Bolt) bool {
	f := s.world.Formation
	for row := 0; row < f.Rows(); row++ {
		for col := 0; col < f.Cols(); col++ {
			alien, ok := f.At(row, col)
			if !ok || !alien.HitBy(bolt) {
				continue
			}
			f.Destroy(row, col)
			s.eventDispatcher.Dispatch(event.Event{
				Type: event.AlienDestroyed,
				Data: event.AlienData{Row: row, Column: col, Remaining: f.Count()},
			})
			return true
		}
	}
	return false
}

func (s *CollisionSystem) hitShip(bolt *component.Bolt) bool {
	w := s.world
	ship, ok := w.Ship.Get()
	if !ok || !ship.HitBy(bolt) {
		return false
	}

	w.Ship.Clear()
	if w.Lives > 0 {
		w.Lives--
	}
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.ShipDestroyed,
		Data: event.ShipData{Lives: w.Lives},
	})
	return true
}
