package component

// RoundStatus — состояние раунда
type RoundStatus int

const (
	RoundActive RoundStatus = iota
	RoundShipDestroyed
	RoundWon
	RoundLost
)

func (s RoundStatus) String() string {
	switch s {
	case RoundActive:
		return "active"
	case RoundShipDestroyed:
		return "ship_destroyed"
	case RoundWon:
		return "won"
	case RoundLost:
		return "lost"
	}
	return "unknown"
}

// IsOver — раунд завершён победой или поражением.
func (s RoundStatus) IsOver() bool {
	return s == RoundWon || s == RoundLost
}
