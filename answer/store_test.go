package answer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetStored_IgnoresEmpty(t *testing.T) {
	s := New()
	s.SetStored(nil)
	assert.False(t, s.HasStored())

	s.SetStored([]int{1, 4, 7})
	s.SetStored([]int{})
	s.SetStored(nil)
	assert.Equal(t, []int{1, 4, 7}, s.Stored(), "empty input keeps the previous answer")
}

func TestSetStored_Copies(t *testing.T) {
	s := New()
	in := []int{1, 4, 7}
	s.SetStored(in)
	in[0] = 9
	assert.True(t, s.MatchesStored([]int{1, 4, 7}))

	out := s.Stored()
	out[1] = 9
	assert.True(t, s.MatchesStored([]int{1, 4, 7}))
}

func TestMatchesStored(t *testing.T) {
	s := New()
	s.SetStored([]int{1, 4, 7})

	tests := []struct {
		path []int
		want bool
	}{
		{[]int{1, 4, 7}, true},
		{[]int{1, 4, 8}, false},
		{[]int{7, 4, 1}, false},
		{[]int{1, 4}, false},
		{[]int{1, 4, 7, 8}, false},
		{nil, false},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, s.MatchesStored(tc.path), "path %v", tc.path)
	}
}

func TestFirstCapture(t *testing.T) {
	s := New()
	assert.False(t, s.HasFirstCapture())
	assert.Panics(t, func() { s.MatchesFirstCapture([]int{1}) })

	live := []int{2, 5, 8}
	s.BeginFirstCapture(live)
	live[2] = 9 // Snapshot is independent of the live path

	require.True(t, s.HasFirstCapture())
	assert.Equal(t, []int{2, 5, 8}, s.FirstCapture())
	assert.True(t, s.MatchesFirstCapture([]int{2, 5, 8}))
	assert.False(t, s.MatchesFirstCapture([]int{2, 5, 9}))

	s.ClearFirstCapture()
	assert.False(t, s.HasFirstCapture())
}
