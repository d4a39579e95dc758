// SPDX-License-Identifier: MIT

package binary

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRNG() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func TestParseBits(t *testing.T) {
	for _, s := range []string{"4", "8", "12", "16"} {
		bits, err := ParseBits(s)
		require.NoError(t, err)
		assert.True(t, bits.Valid())
	}
	for _, s := range []string{"", "5", "32", "four"} {
		_, err := ParseBits(s)
		assert.Error(t, err, "input %q", s)
	}
}

func TestBitsProperties(t *testing.T) {
	tests := []struct {
		bits        Bits
		upper       uint32
		suggestions int
	}{
		{Four, 15, 3},
		{Eight, 255, 4},
		{Twelve, 4095, 5},
		{Sixteen, 65535, 6},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.upper, tt.bits.UpperBound())
		assert.Equal(t, tt.suggestions, tt.bits.SuggestionCount())
		assert.NotEmpty(t, tt.bits.Label())
	}
	assert.False(t, Bits(5).Valid())
}

func TestNewPuzzleSuggestions(t *testing.T) {
	rng := testRNG()
	for i := 0; i < 50; i++ {
		for _, bits := range []Bits{Four, Eight, Twelve, Sixteen} {
			p := NewPuzzle(bits, DefaultCountdown, rng)

			require.Len(t, p.Suggestions(), bits.SuggestionCount())

			seen := make(map[uint32]bool)
			containsTarget := false
			for _, s := range p.Suggestions() {
				assert.False(t, seen[s], "duplicate suggestion %d", s)
				seen[s] = true
				assert.LessOrEqual(t, s, bits.UpperBound())
				if s == p.Target() {
					containsTarget = true
				}
			}
			assert.True(t, containsTarget, "target %d missing from suggestions", p.Target())
		}
	}
}

func TestNewPuzzleDefaults(t *testing.T) {
	p := NewPuzzle(Bits(7), 0, testRNG())
	assert.Equal(t, Eight, p.Bits())
	assert.Equal(t, DefaultCountdown.Seconds(), p.TimeTotal())
	assert.Equal(t, 0, p.SelectedIndex())
	assert.Equal(t, Pending, p.Outcome())
}

func TestSelectionWraps(t *testing.T) {
	p := NewPuzzle(Four, DefaultCountdown, testRNG())
	n := len(p.Suggestions())

	p.Prev()
	assert.Equal(t, n-1, p.SelectedIndex())

	for i := 0; i < n; i++ {
		p.Next()
	}
	assert.Equal(t, n-1, p.SelectedIndex())
}

func TestGuess(t *testing.T) {
	t.Run("correct", func(t *testing.T) {
		p := NewPuzzle(Eight, DefaultCountdown, testRNG())
		for p.Selected() != p.Target() {
			p.Next()
		}
		assert.Equal(t, Correct, p.Guess())
		assert.Equal(t, Correct, p.Outcome())
	})

	t.Run("incorrect", func(t *testing.T) {
		p := NewPuzzle(Eight, DefaultCountdown, testRNG())
		for p.Selected() == p.Target() {
			p.Next()
		}
		assert.Equal(t, Incorrect, p.Guess())
	})

	t.Run("locked after outcome", func(t *testing.T) {
		p := NewPuzzle(Eight, DefaultCountdown, testRNG())
		for p.Selected() != p.Target() {
			p.Next()
		}
		require.Equal(t, Correct, p.Guess())
		p.Next()
		assert.Equal(t, Correct, p.Guess(), "a second guess must not change the outcome")
	})
}

func TestTick(t *testing.T) {
	p := NewPuzzle(Eight, 2*time.Second, testRNG())

	p.Tick(500 * time.Millisecond)
	assert.Equal(t, Pending, p.Outcome())
	assert.InDelta(t, 1.5, p.TimeLeft(), 1e-9)
	assert.InDelta(t, 0.75, p.TimeRatio(), 1e-9)

	p.Tick(10 * time.Second)
	assert.Equal(t, TimedOut, p.Outcome())
	assert.Zero(t, p.TimeLeft())

	// finished puzzles ignore further ticks
	p.Tick(time.Second)
	assert.Equal(t, TimedOut, p.Outcome())
	assert.Zero(t, p.TimeLeft())
}

func TestTickAfterGuessIsNoop(t *testing.T) {
	p := NewPuzzle(Eight, time.Second, testRNG())
	p.Guess()
	before := p.TimeLeft()
	p.Tick(10 * time.Second)
	assert.Equal(t, before, p.TimeLeft())
}

func TestTargetBinary(t *testing.T) {
	p := &Puzzle{bits: Eight, target: 0b01101001}
	assert.Equal(t, "0110 1001", p.TargetBinary())

	p = &Puzzle{bits: Four, target: 1}
	assert.Equal(t, "0001", p.TargetBinary())

	p = &Puzzle{bits: Sixteen, target: 0xFFFF}
	assert.Equal(t, "1111 1111 1111 1111", p.TargetBinary())

	p = &Puzzle{bits: Twelve, target: 0}
	assert.Equal(t, "0000 0000 0000", p.TargetBinary())
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "pending", Pending.String())
	assert.Equal(t, "correct", Correct.String())
	assert.Equal(t, "incorrect", Incorrect.String())
	assert.Equal(t, "timeout", TimedOut.String())
}
