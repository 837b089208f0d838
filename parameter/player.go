package parameter

// Player
const (
	// PlayerEyeHeight is the camera offset above the collision volume floor
	PlayerEyeHeight = 1.62

	// TurnSensitivity scales mouse delta to degrees
	TurnSensitivity = 0.15

	// PitchLimit clamps look pitch to [-PitchLimit, PitchLimit] degrees
	PitchLimit = 90.0

	// PickRadius is the search margin around the player's volume when picking
	PickRadius = 3.0
)
