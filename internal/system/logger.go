package system

import (
	"github.com/rs/zerolog"

	"go-alien-invaders/internal/event"
)

// EventLogger пишет события волны в структурированный лог.
type EventLogger struct {
	logger zerolog.Logger
}

func NewEventLogger(eventDispatcher *event.Dispatcher, logger zerolog.Logger) *EventLogger {
	l := &EventLogger{logger: logger}
	eventDispatcher.SubscribeAll(l, event.AllTypes...)
	return l
}

func (l *EventLogger) OnEvent(e event.Event) {
	switch data := e.Data.(type) {
	case event.FireData:
		ev := l.logger.Debug().Float64("x", data.X).Float64("y", data.Y)
		if e.Type == event.AlienFired {
			ev = ev.Int("row", data.Row).Int("col", data.Column)
		}
		ev.Msg(string(e.Type))
	case event.AlienData:
		l.logger.Debug().
			Int("row", data.Row).
			Int("col", data.Column).
			Int("remaining", data.Remaining).
			Msg(string(e.Type))
	case event.ShipData:
		l.logger.Info().Int("lives", data.Lives).Msg(string(e.Type))
	case event.DropData:
		ev := l.logger.Debug()
		if e.Type == event.DefenseBreached {
			ev = l.logger.Info()
		}
		ev.Bool("moving_left", data.MovingLeft).Float64("lowest_y", data.LowestY).Msg(string(e.Type))
	case event.RoundData:
		l.logger.Info().Bool("won", data.Won).Int("lives", data.Lives).Msg(string(e.Type))
	default:
		l.logger.Debug().Msg(string(e.Type))
	}
}
