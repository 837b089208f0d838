package level

// EventKind identifies a grid mutation
type EventKind uint8

const (
	// TileChanged carries the single voxel written by SetTile
	TileChanged EventKind = iota + 1
	// LightColumnChanged carries a column (X, Z) and the inclusive vertical span [Y0, Y1] whose light changed
	LightColumnChanged
	// AllChanged invalidates the whole grid, e.g. after Load
	AllChanged
)

func (k EventKind) String() string {
	switch k {
	case TileChanged:
		return "tile_changed"
	case LightColumnChanged:
		return "light_column_changed"
	case AllChanged:
		return "all_changed"
	default:
		return "unknown"
	}
}

// Event is a grid mutation notification
type Event struct {
	Kind    EventKind
	X, Y, Z int
	Y0, Y1  int
}

// Listener receives grid mutations synchronously, in registration order
type Listener interface {
	HandleGridEvent(ev Event)
}

// ListenerFunc adapts a function to Listener
type ListenerFunc func(ev Event)

func (f ListenerFunc) HandleGridEvent(ev Event) {
	f(ev)
}
