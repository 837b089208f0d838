package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 48000

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond
)

// Block edit cues
const (
	PlaceSoundDuration = 80 * time.Millisecond
	PlaceSoundFreq     = 660.0

	BreakSoundDuration = 200 * time.Millisecond
)
