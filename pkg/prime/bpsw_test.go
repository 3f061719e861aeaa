package prime

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBPSWSmallPrimes(t *testing.T) {
	t.Parallel()

	for _, p := range smallPrimeList {
		assert.True(t, BPSW{}.Test(big.NewInt(p)), "prime %d reported composite", p)
	}
}

func TestBPSWSmallComposites(t *testing.T) {
	t.Parallel()

	for _, c := range smallCompositeList {
		assert.False(t, BPSW{}.Test(big.NewInt(c)), "composite %d reported prime", c)
	}
	for _, c := range carmichaelList {
		assert.False(t, BPSW{}.Test(big.NewInt(c)), "Carmichael number %d reported prime", c)
	}
}

func TestBPSWStrongPseudoprimes(t *testing.T) {
	t.Parallel()

	pseudoprimes := []int64{341, 561, 645, 1105, 1387, 1729, 1905}
	for _, pp := range pseudoprimes {
		assert.False(t, BPSW{}.Test(big.NewInt(pp)), "pseudoprime %d reported prime", pp)
	}
}

// 323 = 17*19 is the first Lucas pseudoprime: the Lucas step alone passes
// it, the base-2 Miller-Rabin step must reject it.
func TestBPSWRejectsLucasPseudoprime(t *testing.T) {
	t.Parallel()

	n := big.NewInt(323)
	assert.True(t, Lucas{}.Test(n))
	assert.False(t, BPSW{}.Test(n))
}

func TestBPSWLargeNumbers(t *testing.T) {
	t.Parallel()

	// M89 and M107 are Mersenne primes, M67 and M83 are not
	assert.True(t, BPSW{}.Test(MersenneCandidate(89)))
	assert.True(t, BPSW{}.Test(MersenneCandidate(107)))
	assert.False(t, BPSW{}.Test(MersenneCandidate(67)))
	assert.False(t, BPSW{}.Test(MersenneCandidate(83)))
}

func TestBPSWEvenAndEdgeValues(t *testing.T) {
	t.Parallel()

	assert.False(t, BPSW{}.Test(big.NewInt(0)))
	assert.False(t, BPSW{}.Test(big.NewInt(1)))
	assert.True(t, BPSW{}.Test(big.NewInt(2)))
	assert.True(t, BPSW{}.Test(big.NewInt(3)))
	assert.False(t, BPSW{}.Test(big.NewInt(1000000)))

	n, ok := new(big.Int).SetString("1000000007", 10)
	require.True(t, ok)
	assert.True(t, BPSW{}.Test(n))
}
