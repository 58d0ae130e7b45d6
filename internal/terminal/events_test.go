package terminal

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

func newSimScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("")
	if err := s.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	t.Cleanup(s.Fini)
	return s
}

// waitClosed дочитывает канал до закрытия.
func waitClosed(t *testing.T, events <-chan tcell.Event) {
	t.Helper()
	timeout := time.After(time.Second)
	for {
		select {
		case _, ok := <-events:
			if !ok {
				return
			}
		case <-timeout:
			t.Fatal("event channel not closed")
		}
	}
}

func TestPollEventsDelivers(t *testing.T) {
	s := newSimScreen(t)
	done := make(chan struct{})
	defer close(done)
	events := PollEvents(s, 4, done)

	s.InjectKey(tcell.KeyRune, 'a', tcell.ModNone)
	timeout := time.After(time.Second)
	for {
		select {
		case ev := <-events:
			if k, ok := ev.(*tcell.EventKey); ok && k.Rune() == 'a' {
				return
			}
		case <-timeout:
			t.Fatal("key event not delivered")
		}
	}
}

func TestPollEventsStopsWhenNobodyReads(t *testing.T) {
	s := newSimScreen(t)
	done := make(chan struct{})
	events := PollEvents(s, 0, done)

	// Никто не читает: горутина висит на отправке, пока не закрыт done.
	s.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
	time.Sleep(20 * time.Millisecond)
	close(done)
	waitClosed(t, events)
}

func TestPollEventsClosesOnFini(t *testing.T) {
	s := tcell.NewSimulationScreen("")
	if err := s.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	done := make(chan struct{})
	defer close(done)
	events := PollEvents(s, 4, done)

	s.Fini()
	waitClosed(t, events)
}
