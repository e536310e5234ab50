package orbital

import (
	"math"
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRand() *rand.Rand { return rand.New(rand.NewSource(42)) }

func TestNewUnitInvalidLevel(t *testing.T) {
	_, err := NewUnit(0, testRand())
	assert.ErrorIs(t, err, ErrInvalidLevel)
	_, err = NewUnit(-3, nil)
	assert.ErrorIs(t, err, ErrInvalidLevel)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	u, err := NewUnit(3, testRand())
	require.NoError(t, err)
	require.Equal(t, 14, u.States())

	for _, v := range []int64{0, 1, 7, 255, 16383} {
		value := big.NewInt(v)
		u.Encode(value)
		assert.Zero(t, u.Decode().Cmp(value), "value %d", v)
	}
}

func TestEncodeTruncatesWideValues(t *testing.T) {
	u, err := NewUnit(1, testRand())
	require.NoError(t, err)
	require.Equal(t, 1, u.States())

	// 0b101 into a single state keeps only the low bit
	u.Encode(big.NewInt(5))
	assert.Zero(t, u.Decode().Cmp(big.NewInt(1)))

	u.Encode(big.NewInt(4))
	assert.Zero(t, u.Decode().Sign())
}

func TestEncodeDecodeBigValue(t *testing.T) {
	u, err := NewUnit(DefaultLevel, testRand())
	require.NoError(t, err)
	require.Equal(t, 1240, u.States())

	value := new(big.Int).Lsh(big.NewInt(1), 200)
	value.Add(value, big.NewInt(12345))
	u.Encode(value)
	assert.Zero(t, u.Decode().Cmp(value))
}

func TestPropagateKeepsDecodeInvariant(t *testing.T) {
	u, err := NewUnit(4, testRand())
	require.NoError(t, err)

	value := big.NewInt(0b101101101)
	u.Encode(value)
	original := u.Decode()

	for _, dt := range []float64{DefaultDt, 0.5, 3.7, 1000} {
		u.Propagate(dt)
		assert.True(t, u.Verify(original), "dt %v", dt)
	}
	assert.Zero(t, u.Decode().Cmp(value))
}

func TestPropagatePhaseRangeAndOccupancy(t *testing.T) {
	u, err := NewUnit(3, testRand())
	require.NoError(t, err)

	u.Encode(big.NewInt(0b1010101))
	for i := 0; i < 50; i++ {
		u.Propagate(0.9)
	}
	for i := range u.states {
		st := u.states[i]
		if st.Occupied {
			assert.GreaterOrEqual(t, st.Phase, 0.0, "state %d", i)
			assert.Less(t, st.Phase, 2*math.Pi, "state %d", i)
		} else {
			assert.Zero(t, st.Phase, "state %d", i)
		}
	}
}

func TestEncodePhaseSeededDeterminism(t *testing.T) {
	a, err := NewUnit(3, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	b, err := NewUnit(3, rand.New(rand.NewSource(7)))
	require.NoError(t, err)

	value := big.NewInt(0b110110)
	a.Encode(value)
	b.Encode(value)
	for i := range a.states {
		assert.Equal(t, a.states[i].Phase, b.states[i].Phase, "state %d", i)
	}
}

func TestOperationCounter(t *testing.T) {
	u, err := NewUnit(2, testRand())
	require.NoError(t, err)
	assert.Zero(t, u.Operations())

	u.Encode(big.NewInt(3))
	u.Decode()
	u.Propagate(DefaultDt)
	assert.Equal(t, 3, u.Operations())
}
