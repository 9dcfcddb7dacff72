package game

import (
	"math/rand"
	"time"
)

// RandomSource yields uniform floats in [0, 1). *rand.Rand satisfies it.
type RandomSource interface {
	Float64() float64
}

// DiceRoller handles every random draw the simulation makes
type DiceRoller struct {
	src RandomSource
}

// NewDiceRoller creates a dice roller seeded with seed, or with the clock when seed is 0
func NewDiceRoller(seed int64) *DiceRoller {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &DiceRoller{src: rand.New(rand.NewSource(seed))}
}

// NewDiceRollerFrom wraps an existing random source
func NewDiceRollerFrom(src RandomSource) *DiceRoller {
	return &DiceRoller{src: src}
}

// Float returns a uniform float in [0, 1)
func (dr *DiceRoller) Float() float64 {
	return dr.src.Float64()
}

// Chance reports whether an event with probability p happens
func (dr *DiceRoller) Chance(p float64) bool {
	return dr.src.Float64() < p
}

// Intn returns a uniform int in [0, n)
func (dr *DiceRoller) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	i := int(dr.src.Float64() * float64(n))
	if i >= n {
		i = n - 1
	}
	return i
}

// Roll rolls a dice with the specified number of sides
func (dr *DiceRoller) Roll(sides int) int {
	return dr.Intn(sides) + 1
}

// Jitter returns a uniform offset in [-spread/2, spread/2)
func (dr *DiceRoller) Jitter(spread float64) float64 {
	return (dr.src.Float64() - 0.5) * spread
}

// SequenceSource replays a fixed list of values, wrapping around at the end.
// It makes stochastic paths reproducible in tests and headless runs.
type SequenceSource struct {
	values []float64
	pos    int
}

// NewSequenceSource creates a source over values. An empty list always yields 0.
func NewSequenceSource(values ...float64) *SequenceSource {
	return &SequenceSource{values: values}
}

// Float64 returns the next value in the sequence
func (s *SequenceSource) Float64() float64 {
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.pos%len(s.values)]
	s.pos++
	return v
}
