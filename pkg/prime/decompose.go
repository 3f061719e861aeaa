package prime

import "math/big"

// Decompose splits n-1 into 2^s * d with d odd.
// s is zero only for n = 2.
func Decompose(n *big.Int) (s uint, d *big.Int) {
	d = new(big.Int).Sub(n, big1)
	for d.Bit(0) == 0 {
		d.Rsh(d, 1)
		s++
	}
	return s, d
}
