package orbital

import (
	"math"
	"math/big"
	"math/rand"
	"time"
)

const (
	// DefaultLevel yields 1240 states per unit.
	DefaultLevel = 15
	// DefaultDt is the default propagation time step.
	DefaultDt = 0.01

	twoPi = 2 * math.Pi
)

// Unit encodes a non-negative integer across an ordered bank of states:
// state i holds bit i of the value, least-significant first. Phase and
// energy are carried along but never read back into the value.
type Unit struct {
	states       []State
	nucleusField float64
	ops          int
	rng          *rand.Rand
}

// NewUnit creates a unit at the given level. The rng seeds phase
// assignment on encode; pass nil for a time-seeded source.
func NewUnit(level int, rng *rand.Rand) (*Unit, error) {
	states, err := generate(level)
	if err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Unit{states: states, nucleusField: 1.0, rng: rng}, nil
}

// States returns the number of states in the unit.
func (u *Unit) States() int { return len(u.states) }

// Operations returns how many encode/decode/propagate calls the unit has seen.
func (u *Unit) Operations() int { return u.ops }

// Encode stores the low States() bits of value, one per state. Values
// wider than the bank are truncated, not rejected. Occupied states get a
// fresh random phase in [0, 2π); empty states reset to phase 0.
func (u *Unit) Encode(value *big.Int) {
	for i := range u.states {
		st := &u.states[i]
		st.Occupied = value.Bit(i) == 1
		if st.Occupied {
			st.Phase = u.rng.Float64() * twoPi
		} else {
			st.Phase = 0
		}
	}
	u.ops++
}

// Decode reconstructs the stored integer from the occupied flags alone.
func (u *Unit) Decode() *big.Int {
	value := new(big.Int)
	for i := range u.states {
		if u.states[i].Occupied {
			value.SetBit(value, i, 1)
		}
	}
	u.ops++
	return value
}

// Propagate advances the phase of every occupied state by
// energy·dt·field, wrapped into [0, 2π). Occupancy is untouched, so
// Decode is invariant under any number of Propagate calls.
func (u *Unit) Propagate(dt float64) {
	for i := range u.states {
		st := &u.states[i]
		if !st.Occupied {
			continue
		}
		p := math.Mod(st.Phase+st.Energy*dt*u.nucleusField, twoPi)
		if p < 0 {
			p += twoPi
		}
		st.Phase = p
	}
	u.ops++
}

// Verify reports whether the unit still decodes to the original value.
// After an Encode of a value that fits the bank this holds through any
// propagation sequence.
func (u *Unit) Verify(original *big.Int) bool {
	return u.Decode().Cmp(original) == 0
}
