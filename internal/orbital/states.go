package orbital

import "errors"

// ErrInvalidLevel is returned when a unit is requested with a non-positive level.
var ErrInvalidLevel = errors.New("orbital: level must be positive")

// groundEnergy is the n=1 state energy; level n sits at groundEnergy/n².
const groundEnergy = -13.6

// State is one addressable unit of encoded state. The (n,l,m) triple
// identifies it; energy and phase decorate it and never affect the
// encoded value.
type State struct {
	N        int
	L        int
	M        int
	Occupied bool
	Energy   float64
	Phase    float64
}

// StateCount returns the number of states for a level: the sum of squares
// 1²+2²+…+level², i.e. level(level+1)(2·level+1)/6.
func StateCount(level int) int {
	return level * (level + 1) * (2*level + 1) / 6
}

// generate produces the full ordered state list for a level: n ascending
// from 1, then l ascending from 0, then m ascending from -l. Downstream
// bit addressing relies on this order, so it must never change.
func generate(level int) ([]State, error) {
	if level <= 0 {
		return nil, ErrInvalidLevel
	}
	states := make([]State, 0, StateCount(level))
	for n := 1; n <= level; n++ {
		for l := 0; l < n; l++ {
			for m := -l; m <= l; m++ {
				states = append(states, State{
					N:      n,
					L:      l,
					M:      m,
					Energy: groundEnergy / float64(n*n),
				})
			}
		}
	}
	return states, nil
}
