// Package audio plays short synthesized tones for pattern outcomes.
package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/patternlock/parameter"
)

// Cue identifies an outcome sound
type Cue int

const (
	CueFirstCapture Cue = iota
	CueSuccess
	CueFailure
	CueLockout
	cueCount
)

func (c Cue) String() string {
	switch c {
	case CueFirstCapture:
		return "first_capture"
	case CueSuccess:
		return "success"
	case CueFailure:
		return "failure"
	case CueLockout:
		return "lockout"
	default:
		return "unknown"
	}
}

// note is one tone of a cue
type note struct {
	freq     float64
	duration time.Duration
	wave     Wave
}

var cueNotes = [cueCount][]note{
	CueFirstCapture: {
		{parameter.CueFreqMid, parameter.CueToneDuration, WaveSine},
		{parameter.CueFreqMid, parameter.CueToneDuration, WaveSine},
	},
	CueSuccess: {
		{parameter.CueFreqLow, parameter.CueToneDuration, WaveSine},
		{parameter.CueFreqMid, parameter.CueToneDuration, WaveSine},
		{parameter.CueFreqHigh, parameter.CueLongToneDuration, WaveSine},
	},
	CueFailure: {
		{parameter.CueFreqHigh, parameter.CueToneDuration, WaveSquare},
		{parameter.CueFreqLow, parameter.CueToneDuration, WaveSquare},
	},
	CueLockout: {
		{parameter.CueFreqLow, parameter.CueLongToneDuration, WaveTriangle},
		{parameter.CueFreqLow / 2, parameter.CueLongToneDuration, WaveSquare},
	},
}

// Length returns the cue duration including gaps
func (c Cue) Length() time.Duration {
	if c < 0 || c >= cueCount {
		return 0
	}
	var total time.Duration
	for i, n := range cueNotes[c] {
		if i > 0 {
			total += parameter.CueGap
		}
		total += n.duration
	}
	return total
}

// Build synthesizes c at rate; nil for an unknown cue
func Build(c Cue, rate beep.SampleRate) beep.Streamer {
	if c < 0 || c >= cueCount {
		return nil
	}

	parts := make([]beep.Streamer, 0, 2*len(cueNotes[c]))
	for i, n := range cueNotes[c] {
		if i > 0 {
			parts = append(parts, generators.Silence(rate.N(parameter.CueGap)))
		}
		tone := NewTone(n.freq, n.duration, n.wave, rate)
		release := n.duration / 3
		parts = append(parts, NewFade(tone, n.duration, 5*time.Millisecond, release, rate))
	}

	seq := beep.Seq(parts...)
	if c == CueSuccess {
		// Octave shimmer over the final note
		if shimmer, err := generators.SineTone(rate, 2*parameter.CueFreqHigh); err == nil {
			tail := cueNotes[c][len(cueNotes[c])-1].duration
			lead := rate.N(c.Length() - tail)
			overtone := NewFade(beep.Take(rate.N(tail), shimmer), tail, 5*time.Millisecond, tail/2, rate)
			seq = beep.Mix(seq, beep.Seq(generators.Silence(lead), withVolume(overtone, 0.25)))
		}
	}
	return withVolume(seq, parameter.CueVolume)
}
