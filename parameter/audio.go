package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100
)

// Audio Engine Timing
const (
	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond

	// CueGap is the silence between tones of a multi-tone cue
	CueGap = 30 * time.Millisecond

	// CueVolume scales oscillator output
	CueVolume = 0.3
)

// Cue Tones
const (
	CueToneDuration     = 90 * time.Millisecond
	CueLongToneDuration = 220 * time.Millisecond

	CueFreqLow  = 330.0
	CueFreqMid  = 523.25
	CueFreqHigh = 783.99
)
