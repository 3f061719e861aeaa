package prime

import (
	"math/big"
	mathrand "math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var smallPrimeList = []int64{
	2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 53, 59, 61,
	67, 71, 73, 79, 83, 89, 97, 101, 103, 107, 109, 113,
}

var smallCompositeList = []int64{
	4, 6, 8, 9, 10, 12, 14, 15, 16, 18, 20, 21, 22, 24, 25, 26, 27, 28,
	30, 32, 33, 34, 35, 36, 38, 39, 40,
}

var carmichaelList = []int64{561, 1105, 1729, 2465, 2821, 6601, 8911}

func TestMillerRabinSmallPrimes(t *testing.T) {
	t.Parallel()

	mr := &MillerRabin{Rounds: 10}
	for _, p := range smallPrimeList {
		assert.True(t, mr.Test(big.NewInt(p)), "prime %d reported composite", p)
	}
}

func TestMillerRabinSmallComposites(t *testing.T) {
	t.Parallel()

	mr := &MillerRabin{Rounds: 10}
	for _, c := range smallCompositeList {
		assert.False(t, mr.Test(big.NewInt(c)), "composite %d reported prime", c)
	}
}

func TestMillerRabinCarmichaelNumbers(t *testing.T) {
	t.Parallel()

	mr := &MillerRabin{Rounds: 20}
	for _, c := range carmichaelList {
		assert.False(t, mr.Test(big.NewInt(c)), "Carmichael number %d reported prime", c)
	}
}

func TestMillerRabinEdgeValues(t *testing.T) {
	t.Parallel()

	mr := &MillerRabin{Rounds: 5}
	assert.False(t, mr.Test(big.NewInt(-7)))
	assert.False(t, mr.Test(big.NewInt(0)))
	assert.False(t, mr.Test(big.NewInt(1)))
	assert.True(t, mr.Test(big.NewInt(2)))
	assert.True(t, mr.Test(big.NewInt(3)))
}

func TestMillerRabinMersennePrimes(t *testing.T) {
	t.Parallel()

	mr := &MillerRabin{Rounds: 5, Rand: mathrand.New(mathrand.NewSource(1))}
	for _, p := range []int{2, 3, 5, 7, 13, 17, 19, 31, 61, 89} {
		assert.True(t, mr.Test(MersenneCandidate(p)), "M%d reported composite", p)
	}
}

func TestMillerRabinMersenneComposites(t *testing.T) {
	t.Parallel()

	mr := &MillerRabin{Rounds: 5, Rand: mathrand.New(mathrand.NewSource(1))}
	for _, p := range []int{11, 23, 29, 37, 67, 101} {
		assert.False(t, mr.Test(MersenneCandidate(p)), "composite M%d reported prime", p)
	}
}

func TestMillerRabinDeterministicAboveSmallRange(t *testing.T) {
	t.Parallel()

	// first prime above 2^64 and a known composite just above it
	prime, ok := new(big.Int).SetString("18446744073709551629", 10)
	require.True(t, ok)
	composite, ok := new(big.Int).SetString("18446744073709551617", 10)
	require.True(t, ok)

	mr := &MillerRabin{Deterministic: true}
	assert.True(t, mr.Test(prime))
	assert.False(t, mr.Test(composite))
}

func TestMillerRabinSeededRandIsDeterministic(t *testing.T) {
	t.Parallel()

	n := MersenneCandidate(89)

	mr1 := &MillerRabin{Rounds: 3, Rand: mathrand.New(mathrand.NewSource(42))}
	w1, err := mr1.witnesses(n)
	require.NoError(t, err)

	mr2 := &MillerRabin{Rounds: 3, Rand: mathrand.New(mathrand.NewSource(42))}
	w2, err := mr2.witnesses(n)
	require.NoError(t, err)

	require.Equal(t, len(w1), len(w2))
	for i := range w1 {
		assert.Zero(t, w1[i].Cmp(w2[i]))
	}
}

func TestMillerRabinWitnessRange(t *testing.T) {
	t.Parallel()

	n := MersenneCandidate(89)
	upper := new(big.Int).Sub(n, big.NewInt(2))

	mr := &MillerRabin{Rounds: 50, Rand: mathrand.New(mathrand.NewSource(7))}
	witnesses, err := mr.witnesses(n)
	require.NoError(t, err)
	require.Len(t, witnesses, 50)

	for _, a := range witnesses {
		assert.True(t, a.Cmp(big.NewInt(2)) >= 0, "witness below 2")
		assert.True(t, a.Cmp(upper) <= 0, "witness above n-2")
	}
}

func TestIsPrimeSmall(t *testing.T) {
	t.Parallel()

	for _, p := range smallPrimeList {
		assert.True(t, isPrimeSmall(uint64(p)), "prime %d", p)
	}
	for _, c := range smallCompositeList {
		assert.False(t, isPrimeSmall(uint64(c)), "composite %d", c)
	}
	assert.False(t, isPrimeSmall(0))
	assert.False(t, isPrimeSmall(1))
	// above the trial division cutoff
	assert.True(t, isPrimeSmall(1009))
	assert.False(t, isPrimeSmall(1007))
	assert.True(t, isPrimeSmall(2147483647))
	assert.False(t, isPrimeSmall(2147483647*2+1))
}
