package prime

import "math/big"

// LucasLehmer is the deterministic test for Mersenne numbers 2^p - 1.
type LucasLehmer struct {
	Progress Progress
}

// Test reports whether M_p = 2^p - 1 is prime. The exponent must itself
// be prime; a composite exponent is rejected without running the
// iteration. The result is exact.
func (ll *LucasLehmer) Test(p int) bool {
	if p == 2 {
		return true
	}
	if p < 2 || !isPrimeSmall(uint64(p)) {
		return false
	}

	m := MersenneCandidate(p)
	s := big.NewInt(4)
	for i := 0; i < p-2; i++ {
		s.Mul(s, s).Sub(s, big2).Mod(s, m)
		ll.Progress.step(i+1, p-2)
	}
	return s.Sign() == 0
}
