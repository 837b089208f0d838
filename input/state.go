package input

import (
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/blockworld/parameter"
)

// ButtonEvent is one mouse button transition
type ButtonEvent struct {
	Button int
	Down   bool
}

// State accumulates terminal events between frames
// Terminals report presses and repeats but never releases, so a key stays down
// for parameter.KeyHoldWindow after its last press
// Not safe for concurrent use; feed it from the loop goroutine
type State struct {
	now func() time.Time

	lastPress [keyCount]time.Time
	edges     [keyCount]bool

	dx, dy     int
	mouseX     int
	mouseY     int
	mouseKnown bool
	buttons    tcell.ButtonMask

	queue []ButtonEvent

	width, height int
}

// New creates an input state; nil now uses the wall clock
func New(now func() time.Time) *State {
	if now == nil {
		now = time.Now
	}
	return &State{now: now}
}

// Apply folds one tcell event into the state
func (s *State) Apply(ev tcell.Event) {
	switch e := ev.(type) {
	case *tcell.EventKey:
		s.applyKey(e)
	case *tcell.EventMouse:
		s.applyMouse(e)
	case *tcell.EventResize:
		s.width, s.height = e.Size()
	}
}

func (s *State) applyKey(e *tcell.EventKey) {
	if e.Key() != tcell.KeyRune {
		if k, ok := specialKeys[e.Key()]; ok {
			s.press(k)
		}
		return
	}

	r := unicode.ToLower(e.Rune())
	if k, ok := runeKeys[r]; ok {
		s.press(k)
		return
	}
	if d, ok := lookKeys[r]; ok {
		s.dx += d[0] * parameter.LookStep
		s.dy += d[1] * parameter.LookStep
		return
	}
	if b, ok := clickKeys[r]; ok {
		s.queue = append(s.queue, ButtonEvent{Button: b, Down: true}, ButtonEvent{Button: b, Down: false})
	}
}

func (s *State) press(k Key) {
	s.lastPress[k] = s.now()
	s.edges[k] = true
}

func (s *State) applyMouse(e *tcell.EventMouse) {
	x, y := e.Position()
	if s.mouseKnown {
		s.dx += (x - s.mouseX) * parameter.MouseCellScale
		s.dy += (y - s.mouseY) * parameter.MouseCellScale
	}
	s.mouseX, s.mouseY, s.mouseKnown = x, y, true

	now := e.Buttons()
	for i, m := range buttonMasks {
		was, is := s.buttons&m != 0, now&m != 0
		if was != is {
			s.queue = append(s.queue, ButtonEvent{Button: i, Down: is})
		}
	}
	s.buttons = now
}

// IsKeyDown reports whether k was pressed within the hold window
func (s *State) IsKeyDown(k Key) bool {
	if k >= keyCount {
		return false
	}
	t := s.lastPress[k]
	return !t.IsZero() && s.now().Sub(t) < parameter.KeyHoldWindow
}

// Pressed reports and clears whether k was pressed since the last call
func (s *State) Pressed(k Key) bool {
	if k >= keyCount {
		return false
	}
	p := s.edges[k]
	s.edges[k] = false
	return p
}

// MouseDelta returns the accumulated look motion since the last call and resets it
// Positive dy is downward, as screen rows grow
func (s *State) MouseDelta() (dx, dy int) {
	dx, dy = s.dx, s.dy
	s.dx, s.dy = 0, 0
	return dx, dy
}

// NextButtonEvent pops the oldest queued button transition
func (s *State) NextButtonEvent() (ButtonEvent, bool) {
	if len(s.queue) == 0 {
		return ButtonEvent{}, false
	}
	ev := s.queue[0]
	s.queue = s.queue[1:]
	if len(s.queue) == 0 {
		s.queue = nil
	}
	return ev, true
}

// Size returns the last reported terminal size in cells
func (s *State) Size() (int, int) {
	return s.width, s.height
}

// SetSize seeds the size before the first resize event arrives
func (s *State) SetSize(w, h int) {
	s.width, s.height = w, h
}
