// internal/event/types.go
package event

const (
	ShipFired       EventType = "ShipFired"       // Корабль выстрелил
	AlienFired      EventType = "AlienFired"      // Пришелец выстрелил
	AlienDestroyed  EventType = "AlienDestroyed"  // Пришелец уничтожен
	ShipDestroyed   EventType = "ShipDestroyed"   // В корабль попали
	ShipRespawned   EventType = "ShipRespawned"   // Новый корабль после попадания
	FormationDrop   EventType = "FormationDrop"   // Строй развернулся и опустился
	DefenseBreached EventType = "DefenseBreached" // Пришелец пересёк линию обороны
	RoundEnded      EventType = "RoundEnded"      // Раунд выигран или проигран
)

// AllTypes — все события волны, для подписчиков вроде логгера.
var AllTypes = []EventType{
	ShipFired, AlienFired, AlienDestroyed, ShipDestroyed,
	ShipRespawned, FormationDrop, DefenseBreached, RoundEnded,
}

// FireData — позиция, откуда вылетел снаряд.
type FireData struct {
	X, Y   float64
	Row    int // для AlienFired
	Column int // для AlienFired
}

// AlienData — уничтоженная ячейка строя.
type AlienData struct {
	Row, Column int
	Remaining   int
}

// ShipData — состояние жизней после попадания или возрождения.
type ShipData struct {
	Lives int
}

// DropData — новое направление марша и высота нижнего ряда.
type DropData struct {
	MovingLeft bool
	LowestY    float64
}

// RoundData — итог раунда.
type RoundData struct {
	Won   bool
	Lives int
}
