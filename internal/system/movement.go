// internal/system/movement.go
package system

import (
	"go-alien-invaders/internal/config"
	"go-alien-invaders/internal/entity"
	"go-alien-invaders/internal/input"
)

// ShipMovementSystem двигает корабль по нажатым клавишам
type ShipMovementSystem struct {
	world *entity.World
}

func NewShipMovementSystem(world *entity.World) *ShipMovementSystem {
	return &ShipMovementSystem{world: world}
}

// Update ничего не делает, если корабль уничтожен.
func (s *ShipMovementSystem) Update(in input.Input) {
	ship, ok := s.world.Ship.Get()
	if !ok {
		return
	}
	if in.IsKeyDown(input.Left) {
		ship.Move(-config.ShipMovement)
	}
	if in.IsKeyDown(input.Right) {
		ship.Move(config.ShipMovement)
	}
}
