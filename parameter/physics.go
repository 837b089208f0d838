package parameter

// Moving body physics, applied once per simulation tick
// Values are exact simulation parameters; changing them changes movement feel and jump height
const (
	// Gravity is subtracted from vertical velocity every tick (computed in float64, stored float32)
	Gravity = 0.005

	// JumpVelocity is the vertical velocity set when jumping from the ground
	JumpVelocity = 0.12

	// GroundSpeed and AirSpeed are the move-relative acceleration on ground and airborne
	GroundSpeed = 0.02
	AirSpeed    = 0.005

	// HorizontalDrag and VerticalDrag are per-tick velocity multipliers
	HorizontalDrag = 0.91
	VerticalDrag   = 0.98

	// GroundFriction is an extra horizontal multiplier while grounded
	GroundFriction = 0.8

	// MoveDeadZone is the squared input magnitude below which move-relative is ignored
	MoveDeadZone = 0.01
)

// Body collision volume
const (
	// BodyHalfWidth is the half extent on X and Z
	BodyHalfWidth = 0.3

	// BodyHalfHeight is the half extent on Y
	BodyHalfHeight = 0.9

	// RespawnHeightAboveWorld is added to grid depth when resetting position
	RespawnHeightAboveWorld = 10
)
