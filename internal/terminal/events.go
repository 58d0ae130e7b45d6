package terminal

import "github.com/gdamore/tcell/v2"

// PollEvents читает события экрана в отдельной горутине. Канал закрывается, когда экран
// завершён (PollEvent вернул nil) или закрыт done; отправка не блокирует выход.
func PollEvents(screen tcell.Screen, buffer int, done <-chan struct{}) <-chan tcell.Event {
	events := make(chan tcell.Event, buffer)
	go func() {
		defer close(events)
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()
	return events
}
