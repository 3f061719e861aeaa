package prime

import (
	"crypto/rand"
	"io"
	"math/big"
)

// deterministicBases proves primality for all n below deterministicLimit,
// 3,317,044,064,679,887,385,961,981 (Sorenson and Webster).
var deterministicBases = []int64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37}

var deterministicLimit, _ = new(big.Int).SetString("3317044064679887385961981", 10)

// MillerRabin is a witness-based compositeness test.
//
// In deterministic mode the fixed base list is used; the result is exact
// for candidates below deterministicLimit. Above that bound the fixed
// bases carry no guarantee, so random witnesses are drawn instead.
type MillerRabin struct {
	Rounds        int
	Deterministic bool
	Rand          io.Reader
	Progress      Progress
}

// Test reports whether n is probably prime. A false result is certain.
func (mr *MillerRabin) Test(n *big.Int) bool {
	if n.Cmp(big1) <= 0 {
		return false
	}
	if n.Cmp(big3) <= 0 {
		return true
	}
	if n.Bit(0) == 0 {
		return false
	}
	if n.IsUint64() {
		return isPrimeSmall(n.Uint64())
	}

	s, d := Decompose(n)
	witnesses, err := mr.witnesses(n)
	if err != nil {
		return false
	}

	for i, a := range witnesses {
		if !strongWitness(a, n, s, d) {
			return false
		}
		mr.Progress.step(i+1, len(witnesses))
	}
	return true
}

func (mr *MillerRabin) witnesses(n *big.Int) ([]*big.Int, error) {
	if mr.Deterministic && n.Cmp(deterministicLimit) < 0 {
		witnesses := make([]*big.Int, 0, len(deterministicBases))
		for _, a := range deterministicBases {
			base := big.NewInt(a)
			if base.Cmp(n) < 0 {
				witnesses = append(witnesses, base)
			}
		}
		return witnesses, nil
	}

	rnd := mr.Rand
	if rnd == nil {
		rnd = rand.Reader
	}
	rounds := mr.Rounds
	if rounds <= 0 {
		rounds = DefaultRounds
	}
	// uniform witnesses in [2, n-2]
	max := new(big.Int).Sub(n, big3)
	witnesses := make([]*big.Int, rounds)
	for i := range witnesses {
		a, err := rand.Int(rnd, max)
		if err != nil {
			return nil, err
		}
		witnesses[i] = a.Add(a, big2)
	}
	return witnesses, nil
}

// strongWitness reports whether base a leaves n possibly prime given the
// decomposition n-1 = 2^s * d.
func strongWitness(a, n *big.Int, s uint, d *big.Int) bool {
	nMinus1 := new(big.Int).Sub(n, big1)
	x := new(big.Int).Exp(a, d, n)
	if x.Cmp(big1) == 0 || x.Cmp(nMinus1) == 0 {
		return true
	}
	for i := uint(1); i < s; i++ {
		x.Mul(x, x).Mod(x, n)
		if x.Cmp(nMinus1) == 0 {
			return true
		}
		if x.Cmp(big1) == 0 {
			return false
		}
	}
	return false
}

// isPrimeSmall checks primality for values below 2^64: trial division for
// very small values, an exact library test otherwise.
func isPrimeSmall(v uint64) bool {
	if v < 2 {
		return false
	}
	if v == 2 {
		return true
	}
	if v%2 == 0 {
		return false
	}
	if v < 1000 {
		for i := uint64(3); i*i <= v; i += 2 {
			if v%i == 0 {
				return false
			}
		}
		return true
	}
	// ProbablyPrime is exact below 2^64
	return new(big.Int).SetUint64(v).ProbablyPrime(0)
}
