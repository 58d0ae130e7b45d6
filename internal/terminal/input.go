// internal/terminal/input.go
package terminal

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"go-alien-invaders/internal/input"
)

// DefaultHold — сколько клавиша считается зажатой после нажатия. Терминал не сообщает
// об отпускании, а автоповтор приходит примерно каждые 30-50 мс.
const DefaultHold = 120 * time.Millisecond

// Keys эмулирует зажатые клавиши по событиям нажатия tcell.
type Keys struct {
	hold  time.Duration
	now   func() time.Time
	until map[input.Control]time.Time
}

var _ input.Input = (*Keys)(nil)

func NewKeys(hold time.Duration) *Keys {
	return newKeysWithClock(hold, time.Now)
}

func newKeysWithClock(hold time.Duration, now func() time.Time) *Keys {
	if hold <= 0 {
		hold = DefaultHold
	}
	return &Keys{
		hold:  hold,
		now:   now,
		until: make(map[input.Control]time.Time),
	}
}

// Press продлевает удержание управления на окно hold от текущего момента.
func (k *Keys) Press(c input.Control) {
	k.until[c] = k.now().Add(k.hold)
}

// HandleKey применяет событие клавиатуры. false, если клавиша не относится к управлению.
func (k *Keys) HandleKey(ev *tcell.EventKey) bool {
	c, ok := ControlFor(ev.Key(), ev.Rune())
	if !ok {
		return false
	}
	k.Press(c)
	return true
}

func (k *Keys) IsKeyDown(c input.Control) bool {
	until, ok := k.until[c]
	return ok && k.now().Before(until)
}

// Reset отпускает все клавиши.
func (k *Keys) Reset() {
	clear(k.until)
}

// ControlFor: стрелки, a/d (h/l), огонь: пробел, стрелка вверх, w (k).
func ControlFor(key tcell.Key, r rune) (input.Control, bool) {
	switch key {
	case tcell.KeyLeft:
		return input.Left, true
	case tcell.KeyRight:
		return input.Right, true
	case tcell.KeyUp:
		return input.Fire, true
	case tcell.KeyRune:
		switch r {
		case 'a', 'A', 'h':
			return input.Left, true
		case 'd', 'D', 'l':
			return input.Right, true
		case ' ', 'w', 'W', 'k':
			return input.Fire, true
		}
	}
	return 0, false
}
