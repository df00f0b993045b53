package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/patternlock/parameter"
)

var testRate = beep.SampleRate(parameter.AudioSampleRate)

// drain streams s to completion and returns all samples
func drain(t *testing.T, s beep.Streamer) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 512)
	for range 10000 {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
	t.Fatal("streamer did not terminate")
	return nil
}

func TestTone_LengthAndRange(t *testing.T) {
	for _, wave := range []Wave{WaveSine, WaveSquare, WaveTriangle} {
		samples := drain(t, NewTone(440, 50*time.Millisecond, wave, testRate))
		assert.Len(t, samples, testRate.N(50*time.Millisecond))
		for _, s := range samples {
			assert.LessOrEqual(t, math.Abs(s[0]), 1.0)
			assert.Equal(t, s[0], s[1], "mono duplicated to both channels")
		}
	}
}

func TestTone_SineStartsAtZero(t *testing.T) {
	buf := make([][2]float64, 4)
	n, ok := NewTone(440, time.Second, WaveSine, testRate).Stream(buf)
	require.True(t, ok)
	require.Equal(t, 4, n)
	assert.Zero(t, buf[0][0])
	assert.Greater(t, buf[1][0], 0.0)
}

func TestFade_RampsEnds(t *testing.T) {
	d := 100 * time.Millisecond
	samples := drain(t, NewFade(NewTone(100, d, WaveSquare, testRate), d, 10*time.Millisecond, 10*time.Millisecond, testRate))
	require.NotEmpty(t, samples)
	assert.Zero(t, samples[0][0], "attack starts silent")
	assert.InDelta(t, 1.0, math.Abs(samples[len(samples)/2][0]), 1e-9, "sustain at full gain")
	assert.Less(t, math.Abs(samples[len(samples)-1][0]), 0.01, "release ends near silence")
}

func TestBuild_AllCues(t *testing.T) {
	for c := CueFirstCapture; c < cueCount; c++ {
		t.Run(c.String(), func(t *testing.T) {
			s := Build(c, testRate)
			require.NotNil(t, s)
			samples := drain(t, s)
			assert.InDelta(t, testRate.N(c.Length()), len(samples), float64(len(cueNotes[c])))
			for _, v := range samples {
				assert.LessOrEqual(t, math.Abs(v[0]), 1.0)
			}
		})
	}
	assert.Nil(t, Build(Cue(99), testRate))
	assert.Zero(t, Cue(-1).Length())
}

func TestWithVolume_Silent(t *testing.T) {
	samples := drain(t, withVolume(NewTone(440, 10*time.Millisecond, WaveSquare, testRate), 0))
	for _, v := range samples {
		assert.Zero(t, v[0])
	}
}

func TestPlayer_DisabledStaysSilent(t *testing.T) {
	p := NewPlayer(false)
	require.NoError(t, p.Start())
	assert.False(t, p.Active())

	p.Play(CueSuccess)
	p.Play(CueFailure)
	requested, played := p.Stats()
	assert.Equal(t, int64(2), requested)
	assert.Zero(t, played)
	p.Close()
}
