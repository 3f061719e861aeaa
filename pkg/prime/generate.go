package prime

import (
	"crypto/rand"
	"errors"
	"io"
	"math/big"
)

// generateRounds is the witness count used while sampling candidates.
// The loop filters, it does not certify: callers re-verify at use time.
const generateRounds = 5

var ErrPrimeSize = errors.New("prime size must be at least 2-bit")

// smallPrimes allows rapid rejection of a large fraction of composite
// candidates before the probabilistic test. The list stops where the
// product would exceed a uint64. Two is excluded because candidates are
// odd by construction.
var smallPrimes = []uint8{
	3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 53,
}

// smallPrimesProduct is the product of smallPrimes: reducing a candidate
// by it lets every divisibility check run on a single uint64.
var smallPrimesProduct = new(big.Int).SetUint64(16294579238595022365)

// GenerateProbablePrime returns a probable prime with exactly the given
// bit length. The top bit is forced to guarantee the length, the low bit
// to guarantee oddness. rnd defaults to crypto/rand.
func GenerateProbablePrime(rnd io.Reader, bits int) (*big.Int, error) {
	if bits < 2 {
		return nil, ErrPrimeSize
	}
	if rnd == nil {
		rnd = rand.Reader
	}

	b := uint(bits % 8)
	if b == 0 {
		b = 8
	}

	bytes := make([]byte, (bits+7)/8)
	p := new(big.Int)
	bigMod := new(big.Int)

NextCandidate:
	for {
		if _, err := io.ReadFull(rnd, bytes); err != nil {
			return nil, err
		}

		bytes[0] &= uint8(int(1<<b) - 1)
		bytes[0] |= 1 << (b - 1)
		bytes[len(bytes)-1] |= 1

		p.SetBytes(bytes)

		bigMod.Mod(p, smallPrimesProduct)
		mod := bigMod.Uint64()
		for _, sp := range smallPrimes {
			if mod%uint64(sp) == 0 && (bits > 6 || mod != uint64(sp)) {
				continue NextCandidate
			}
		}

		mr := &MillerRabin{Rounds: generateRounds, Rand: rnd}
		if mr.Test(p) {
			return p, nil
		}
	}
}
