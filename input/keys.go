package input

import "github.com/gdamore/tcell/v2"

// Key is a logical control, decoupled from the terminal key that produced it
type Key uint8

const (
	KeyNone Key = iota
	KeyForward
	KeyBack
	KeyLeft
	KeyRight
	KeyJump
	KeyReset
	KeySave
	KeyQuit
	keyCount
)

var keyNames = [keyCount]string{"none", "forward", "back", "left", "right", "jump", "reset", "save", "quit"}

func (k Key) String() string {
	if k >= keyCount {
		return "unknown"
	}
	return keyNames[k]
}

// Mouse buttons as reported by NextButtonEvent
const (
	ButtonLeft  = 0
	ButtonRight = 1
	ButtonMid   = 2
)

// buttonMasks maps tcell masks to button indices
var buttonMasks = [...]tcell.ButtonMask{tcell.Button1, tcell.Button2, tcell.Button3}

// specialKeys maps non-rune tcell keys to controls
var specialKeys = map[tcell.Key]Key{
	tcell.KeyUp:    KeyForward,
	tcell.KeyDown:  KeyBack,
	tcell.KeyLeft:  KeyLeft,
	tcell.KeyRight: KeyRight,
	tcell.KeyEnter: KeySave,
	tcell.KeyCtrlC: KeyQuit,
	tcell.KeyEsc:   KeyQuit,
}

// runeKeys maps printable keys, lower case only; upper case is folded before lookup
var runeKeys = map[rune]Key{
	'w': KeyForward,
	's': KeyBack,
	'a': KeyLeft,
	'd': KeyRight,
	' ': KeyJump,
	'r': KeyReset,
}

// Look keys emulate mouse motion; dx right, dy down
var lookKeys = map[rune][2]int{
	'j': {-1, 0},
	'l': {1, 0},
	'i': {0, -1},
	'k': {0, 1},
}

// Click keys emulate a mouse button press for terminals without mouse reporting
var clickKeys = map[rune]int{
	'e': ButtonLeft,
	'x': ButtonRight,
}
