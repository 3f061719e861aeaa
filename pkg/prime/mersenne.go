package prime

import "math/big"

// MersenneCandidate returns 2^p - 1.
func MersenneCandidate(p int) *big.Int {
	m := new(big.Int).Lsh(big1, uint(p))
	return m.Sub(m, big1)
}

// MersenneExponent reports whether n > 3 has the Mersenne form 2^p - 1,
// recognized by n+1 having exactly one set bit, and returns p.
func MersenneExponent(n *big.Int) (int, bool) {
	if n.Cmp(big3) <= 0 {
		return 0, false
	}
	m := new(big.Int).Add(n, big1)
	t := new(big.Int).Sub(m, big1)
	if t.And(t, m).Sign() != 0 {
		return 0, false
	}
	return m.BitLen() - 1, true
}
