package prime

import "math/big"

// Lucas is a Lucas-sequence probable prime test with Selfridge parameter
// selection: P = 1, Q = (1-D)/4 for the first discriminant D in the
// sequence 5, -7, 9, -11, ... with Jacobi(D/n) = -1.
type Lucas struct{}

// Test reports whether odd n is probably prime. The discriminant search
// is abandoned once |D| exceeds n, which certifies n is a perfect square
// and therefore composite.
func (Lucas) Test(n *big.Int) bool {
	if n.Cmp(big1) <= 0 {
		return false
	}
	if n.Cmp(big2) == 0 {
		return true
	}
	if n.Bit(0) == 0 {
		return false
	}

	d, ok := findDiscriminant(n)
	if !ok {
		return false
	}
	return lucasUIsZero(n, d)
}

// findDiscriminant probes D = 5, -7, 9, -11, ... until Jacobi(D/n) = -1.
// The search fails only when n is a perfect square: a square is detected
// directly after a few probes, and |D| > n bounds the search otherwise.
func findDiscriminant(n *big.Int) (*big.Int, bool) {
	d := big.NewInt(5)
	abs := new(big.Int)
	for probes := 1; ; probes++ {
		if big.Jacobi(d, n) == -1 {
			return d, true
		}
		if probes == 10 && isPerfectSquare(n) {
			return nil, false
		}
		if abs.Abs(d).Cmp(n) > 0 {
			return nil, false
		}
		if d.Sign() > 0 {
			d.Neg(d)
			d.Sub(d, big2)
		} else {
			d.Neg(d)
			d.Add(d, big2)
		}
	}
}

func isPerfectSquare(n *big.Int) bool {
	s := new(big.Int).Sqrt(n)
	return s.Mul(s, s).Cmp(n) == 0
}

// lucasUIsZero computes U_{n+1} mod n of the Lucas sequence with P = 1,
// Q = (1-D)/4 by a double-and-add ladder over the bits of n+1 and reports
// whether it is zero.
func lucasUIsZero(n, d *big.Int) bool {
	q := new(big.Int).Sub(big1, d)
	q.Quo(q, big4) // exact: D = 1 (mod 4) by construction

	k := new(big.Int).Add(n, big1)
	u := new(big.Int)          // U_0
	v := new(big.Int).Set(big2) // V_0
	qk := new(big.Int).Set(big1)

	// The addition step divides by 2 under the modulus; n is odd, so this
	// is an exact modular inverse, not a truncating division.
	half := new(big.Int).ModInverse(big2, n)

	t := new(big.Int)
	u1 := new(big.Int)
	v1 := new(big.Int)
	for i := k.BitLen() - 1; i >= 0; i-- {
		// U_{2m} = U*V, V_{2m} = V^2 - 2*Q^m
		u.Mul(u, v).Mod(u, n)
		v.Mul(v, v).Sub(v, t.Lsh(qk, 1)).Mod(v, n)
		qk.Mul(qk, qk).Mod(qk, n)

		if k.Bit(i) == 1 {
			// U_{2m+1} = (P*U + V)/2, V_{2m+1} = (D*U + P*V)/2, with P = 1
			u1.Add(u, v).Mul(u1, half).Mod(u1, n)
			v1.Mul(d, u).Add(v1, v).Mul(v1, half).Mod(v1, n)
			u.Set(u1)
			v.Set(v1)
			qk.Mul(qk, q).Mod(qk, n)
		}
	}
	return u.Sign() == 0
}
