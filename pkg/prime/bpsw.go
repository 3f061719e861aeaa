package prime

import "math/big"

// BPSW is the Baillie-PSW test: a single Miller-Rabin round with base 2
// followed by the Lucas test. No composite number is known to pass it.
type BPSW struct{}

// Test reports whether n is probably prime. A false result is certain.
func (BPSW) Test(n *big.Int) bool {
	if n.Cmp(big1) <= 0 {
		return false
	}
	if n.Cmp(big3) <= 0 {
		return true
	}
	if n.Bit(0) == 0 {
		return false
	}

	// base 2 eliminates most composites before the costlier Lucas step
	s, d := Decompose(n)
	if !strongWitness(big2, n, s, d) {
		return false
	}
	return Lucas{}.Test(n)
}
