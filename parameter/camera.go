package parameter

// Camera projection
const (
	// CameraFOV is the vertical field of view in degrees
	CameraFOV = 70.0

	// CameraNear and CameraFar are clip plane distances
	CameraNear = 0.05
	CameraFar  = 1000.0

	// CameraBackOffset pulls the eye slightly behind the head
	CameraBackOffset = -0.3

	// PickWindow is the pick region edge in pixels around screen centre
	PickWindow = 5
)

// Fog and sky
const (
	// FogDensity for exponential fog on the second render layer
	FogDensity = 0.2

	// FogColor as 0xRRGGBB
	FogColor = 0x0E0B0A

	// Sky clear color components
	SkyR = 0.5
	SkyG = 0.8
	SkyB = 1.0
)
