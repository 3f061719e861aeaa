package prime

import (
	"errors"
	"io"
	"math/big"
)

// DefaultRounds is the default witness count for probabilistic Miller-Rabin.
const DefaultRounds = 20

var (
	ErrUnknownAlgorithm = errors.New("unknown algorithm")
	ErrExponentRequired = errors.New("lucas-lehmer requires exponent p for testing 2^p - 1")
)

var (
	big1 = big.NewInt(1)
	big2 = big.NewInt(2)
	big3 = big.NewInt(3)
	big4 = big.NewInt(4)
)

// Algorithm selects the primality test to run.
type Algorithm int

const (
	// Auto inspects the candidate's form and picks Lucas-Lehmer for
	// Mersenne numbers with a prime exponent, BPSW otherwise.
	Auto Algorithm = iota
	AlgMillerRabin
	AlgLucasLehmer
	AlgBPSW
)

func (a Algorithm) String() string {
	switch a {
	case Auto:
		return "auto"
	case AlgMillerRabin:
		return "miller-rabin"
	case AlgLucasLehmer:
		return "lucas-lehmer"
	case AlgBPSW:
		return "bpsw"
	}
	return "unknown"
}

// ParseAlgorithm resolves an algorithm name at the call boundary.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch s {
	case "auto", "":
		return Auto, nil
	case "miller-rabin":
		return AlgMillerRabin, nil
	case "lucas-lehmer":
		return AlgLucasLehmer, nil
	case "bpsw":
		return AlgBPSW, nil
	}
	return Auto, ErrUnknownAlgorithm
}

type config struct {
	rounds        int
	deterministic bool
	exponent      int
	rand          io.Reader
	progress      Progress
}

type Option func(*config)

// WithRounds sets the witness count for probabilistic Miller-Rabin.
func WithRounds(rounds int) Option {
	return func(c *config) {
		c.rounds = rounds
	}
}

// WithDeterministic makes Miller-Rabin use the fixed witness list instead
// of random witnesses. Valid below a published magnitude bound, see
// MillerRabin.
func WithDeterministic() Option {
	return func(c *config) {
		c.deterministic = true
	}
}

// WithExponent supplies the Mersenne exponent p for an explicit
// Lucas-Lehmer test.
func WithExponent(p int) Option {
	return func(c *config) {
		c.exponent = p
	}
}

// WithRand sets the entropy source for random witness selection.
// crypto/rand is used by default.
func WithRand(r io.Reader) Option {
	return func(c *config) {
		c.rand = r
	}
}

// WithProgress registers a sink invoked on every test iteration.
func WithProgress(p Progress) Option {
	return func(c *config) {
		c.progress = p
	}
}

// Test reports whether n is prime using the selected algorithm.
// Composite answers are certain; prime answers are probabilistic except
// for Lucas-Lehmer and deterministic-mode Miller-Rabin within its bound.
func Test(n *big.Int, alg Algorithm, opts ...Option) (bool, error) {
	conf := &config{rounds: DefaultRounds}
	for _, o := range opts {
		o(conf)
	}

	if alg == Auto {
		if p, ok := MersenneExponent(n); ok && isPrimeSmall(uint64(p)) {
			alg = AlgLucasLehmer
			conf.exponent = p
		} else {
			alg = AlgBPSW
		}
	}

	switch alg {
	case AlgMillerRabin:
		mr := &MillerRabin{
			Rounds:        conf.rounds,
			Deterministic: conf.deterministic,
			Rand:          conf.rand,
			Progress:      conf.progress,
		}
		return mr.Test(n), nil
	case AlgLucasLehmer:
		p := conf.exponent
		if p == 0 {
			var ok bool
			if p, ok = MersenneExponent(n); !ok {
				return false, ErrExponentRequired
			}
		}
		ll := &LucasLehmer{Progress: conf.progress}
		return ll.Test(p), nil
	case AlgBPSW:
		return BPSW{}.Test(n), nil
	}
	return false, ErrUnknownAlgorithm
}
