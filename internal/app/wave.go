// internal/app/wave.go
package app

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"go-alien-invaders/internal/audio"
	"go-alien-invaders/internal/component"
	"go-alien-invaders/internal/defs"
	"go-alien-invaders/internal/entity"
	"go-alien-invaders/internal/event"
	"go-alien-invaders/internal/input"
	"go-alien-invaders/internal/system"
	"go-alien-invaders/internal/utils"
)

// View получает спрайты кадра. Реализации: ebiten-рендерер и терминал.
type View interface {
	DrawSprite(s component.Sprite)
}

// Wave holds one wave of the game and runs its systems in a fixed order.
type Wave struct {
	world           *entity.World
	EventDispatcher *event.Dispatcher

	ShipMovementSystem *system.ShipMovementSystem
	FormationSystem    *system.FormationSystem
	ProjectileSystem   *system.ProjectileSystem
	CollisionSystem    *system.CollisionSystem
	StateSystem        *system.StateSystem
	SoundSystem        *system.SoundSystem
	EventLogger        *system.EventLogger
}

// NewWave проверяет определение и собирает мир волны со всеми системами.
// player может быть nil, тогда волна беззвучна.
func NewWave(def defs.WaveDefinition, rng utils.Random, player audio.Player, logger zerolog.Logger) (*Wave, error) {
	if err := def.Validate(); err != nil {
		return nil, fmt.Errorf("new wave: %w", err)
	}
	if rng == nil {
		return nil, errors.New("new wave: random source is required")
	}

	world := entity.NewWorld(def, utils.RandInt(rng, 1, def.BoltRate))
	eventDispatcher := event.NewDispatcher()
	w := &Wave{
		world:              world,
		EventDispatcher:    eventDispatcher,
		ShipMovementSystem: system.NewShipMovementSystem(world),
		FormationSystem:    system.NewFormationSystem(world, eventDispatcher),
		ProjectileSystem:   system.NewProjectileSystem(world, rng, eventDispatcher),
		CollisionSystem:    system.NewCollisionSystem(world, eventDispatcher),
		StateSystem:        system.NewStateSystem(world, eventDispatcher),
	}
	w.SoundSystem = system.NewSoundSystem(eventDispatcher, player)
	w.EventLogger = system.NewEventLogger(eventDispatcher, logger)

	logger.Debug().
		Int("rows", def.Rows).
		Int("cols", def.Columns).
		Int("fire_threshold", world.FireThreshold).
		Msg("wave created")
	return w, nil
}

// Update продвигает волну на один кадр. После поражения ничего не делает.
func (w *Wave) Update(in input.Input, deltaTime float64) {
	if w.world.Status == component.RoundLost {
		return
	}
	deltaTime = utils.ClampDelta(deltaTime, 0)
	snapshot := input.Capture(in)

	w.ShipMovementSystem.Update(snapshot)
	w.FormationSystem.Update(deltaTime)
	w.ProjectileSystem.FireShip(snapshot)
	w.ProjectileSystem.FireAlien()
	w.ProjectileSystem.Advance()
	w.CollisionSystem.Update()
	w.StateSystem.Update(deltaTime)
	w.ProjectileSystem.RemoveOffscreen()
}

// DrawList возвращает спрайты в порядке: пришельцы по строкам, корабль, линия, снаряды.
func (w *Wave) DrawList() []component.Sprite {
	world := w.world
	sprites := make([]component.Sprite, 0, world.Formation.Count()+len(world.Bolts)+2)
	world.Formation.Each(func(_, _ int, a *component.Alien) {
		sprites = append(sprites, component.AlienSprite(a))
	})
	if ship, ok := world.Ship.Get(); ok {
		sprites = append(sprites, component.ShipSprite(ship))
	}
	sprites = append(sprites, component.LineSprite(world.Line))
	for i := range world.Bolts {
		sprites = append(sprites, component.BoltSprite(&world.Bolts[i]))
	}
	return sprites
}

// Draw не меняет состояние волны.
func (w *Wave) Draw(view View) {
	for _, s := range w.DrawList() {
		view.DrawSprite(s)
	}
}

func (w *Wave) Lives() int { return w.world.Lives }

func (w *Wave) Status() component.RoundStatus { return w.world.Status }

func (w *Wave) IsOver() bool { return w.world.Status.IsOver() }

func (w *Wave) Definition() defs.WaveDefinition { return w.world.Definition }

// Formation — только для чтения; ячейки меняют системы.
func (w *Wave) Formation() *entity.Formation { return w.world.Formation }

// Bolts возвращает копию списка снарядов.
func (w *Wave) Bolts() []component.Bolt {
	out := make([]component.Bolt, len(w.world.Bolts))
	copy(out, w.world.Bolts)
	return out
}

// Ship возвращает копию корабля; false, если он уничтожен.
func (w *Wave) Ship() (component.Ship, bool) {
	ship, ok := w.world.Ship.Get()
	if !ok {
		return component.Ship{}, false
	}
	return *ship, true
}
