// SPDX-License-Identifier: MIT

// Package binary implements the binary-numbers guessing game: a random
// target is shown in binary and the player has to pick the matching
// decimal value from a set of suggestions before the countdown expires.
// The package is UI-free; rendering lives in internal/tui.
package binary

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"
)

// Bits selects the puzzle difficulty via the width of the target number.
type Bits int

const (
	Four    Bits = 4
	Eight   Bits = 8
	Twelve  Bits = 12
	Sixteen Bits = 16
)

// ParseBits converts a decimal string ("4", "8", "12", "16") into a Bits value.
func ParseBits(s string) (Bits, error) {
	switch s {
	case "4":
		return Four, nil
	case "8":
		return Eight, nil
	case "12":
		return Twelve, nil
	case "16":
		return Sixteen, nil
	}
	return 0, fmt.Errorf("invalid bit width %q (want 4, 8, 12 or 16)", s)
}

// Valid reports whether b is one of the supported widths.
func (b Bits) Valid() bool {
	switch b {
	case Four, Eight, Twelve, Sixteen:
		return true
	}
	return false
}

// UpperBound returns the largest representable target, 2^bits - 1.
func (b Bits) UpperBound() uint32 {
	return 1<<uint(b) - 1
}

// SuggestionCount returns how many choices a puzzle of this width offers.
func (b Bits) SuggestionCount() int {
	switch b {
	case Four:
		return 3
	case Twelve:
		return 5
	case Sixteen:
		return 6
	default:
		return 4
	}
}

// Label returns the difficulty name used in start menus.
func (b Bits) Label() string {
	switch b {
	case Four:
		return "easy (4 bits)"
	case Twelve:
		return "master (12 bits)"
	case Sixteen:
		return "insane (16 bits)"
	default:
		return "normal (8 bits)"
	}
}

// Outcome is the result of a finished puzzle.
type Outcome int

const (
	Pending Outcome = iota
	Correct
	Incorrect
	TimedOut
)

func (o Outcome) String() string {
	switch o {
	case Correct:
		return "correct"
	case Incorrect:
		return "incorrect"
	case TimedOut:
		return "timeout"
	default:
		return "pending"
	}
}

// DefaultCountdown is the time the player gets per puzzle.
const DefaultCountdown = 5 * time.Second

// Puzzle holds one round of the game.
type Puzzle struct {
	bits        Bits
	target      uint32
	suggestions []uint32
	selected    int
	timeTotal   float64 // seconds
	timeLeft    float64 // seconds
	outcome     Outcome
}

// NewPuzzle creates a fresh round. The target is drawn uniformly from
// [0, UpperBound]; the suggestions are distinct, contain the target and
// are shuffled. A nil rng falls back to a randomly seeded source.
func NewPuzzle(bits Bits, countdown time.Duration, rng *rand.Rand) *Puzzle {
	if !bits.Valid() {
		bits = Eight
	}
	if countdown <= 0 {
		countdown = DefaultCountdown
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	want := bits.SuggestionCount()
	suggestions := make([]uint32, 0, want)
	seen := make(map[uint32]bool, want)
	for len(suggestions) < want {
		n := rng.Uint32N(bits.UpperBound() + 1)
		if !seen[n] {
			seen[n] = true
			suggestions = append(suggestions, n)
		}
	}

	target := suggestions[0]
	rng.Shuffle(len(suggestions), func(i, j int) {
		suggestions[i], suggestions[j] = suggestions[j], suggestions[i]
	})

	total := countdown.Seconds()
	return &Puzzle{
		bits:        bits,
		target:      target,
		suggestions: suggestions,
		selected:    0,
		timeTotal:   total,
		timeLeft:    total,
	}
}

// Bits returns the puzzle's difficulty.
func (p *Puzzle) Bits() Bits { return p.bits }

// Target returns the number the player has to identify.
func (p *Puzzle) Target() uint32 { return p.target }

// Suggestions returns the shuffled answer choices.
func (p *Puzzle) Suggestions() []uint32 { return p.suggestions }

// SelectedIndex returns the index of the highlighted suggestion.
func (p *Puzzle) SelectedIndex() int { return p.selected }

// Selected returns the highlighted suggestion value.
func (p *Puzzle) Selected() uint32 { return p.suggestions[p.selected] }

// Next moves the selection right, wrapping around.
func (p *Puzzle) Next() {
	p.selected = (p.selected + 1) % len(p.suggestions)
}

// Prev moves the selection left, wrapping around.
func (p *Puzzle) Prev() {
	p.selected = (p.selected - 1 + len(p.suggestions)) % len(p.suggestions)
}

// Guess locks in the current selection and returns the outcome.
// Guessing after the puzzle is finished has no effect.
func (p *Puzzle) Guess() Outcome {
	if p.outcome != Pending {
		return p.outcome
	}
	if p.Selected() == p.target {
		p.outcome = Correct
	} else {
		p.outcome = Incorrect
	}
	return p.outcome
}

// Tick advances the countdown. Once an outcome is set it is a no-op.
func (p *Puzzle) Tick(dt time.Duration) {
	if p.outcome != Pending {
		return
	}
	p.timeLeft -= dt.Seconds()
	if p.timeLeft <= 0 {
		p.timeLeft = 0
		p.outcome = TimedOut
	}
}

// Outcome returns the round result, Pending while still playing.
func (p *Puzzle) Outcome() Outcome { return p.outcome }

// TimeLeft returns the remaining seconds.
func (p *Puzzle) TimeLeft() float64 { return p.timeLeft }

// TimeTotal returns the countdown length in seconds.
func (p *Puzzle) TimeTotal() float64 { return p.timeTotal }

// TimeRatio returns the remaining fraction of the countdown in [0, 1].
func (p *Puzzle) TimeRatio() float64 {
	if p.timeTotal <= 0 {
		return 0
	}
	return p.timeLeft / p.timeTotal
}

// TargetBinary renders the target zero-padded to the puzzle width and
// grouped in nibbles, e.g. "0110 1001" for 8 bits.
func (p *Puzzle) TargetBinary() string {
	s := fmt.Sprintf("%0*b", int(p.bits), p.target)
	groups := make([]string, 0, len(s)/4)
	for i := 0; i < len(s); i += 4 {
		groups = append(groups, s[i:i+4])
	}
	return strings.Join(groups, " ")
}

// IsCorrect reports whether guess matches the target.
func (p *Puzzle) IsCorrect(guess uint32) bool {
	return guess == p.target
}
