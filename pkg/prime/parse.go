package prime

import (
	"errors"
	"math/big"
	"strconv"
	"strings"
)

var ErrInvalidNumber = errors.New("invalid number")

// ParseNumber parses a candidate in decimal form, the Mersenne shorthand
// "2^p-1", or the exponential form "base^exp".
func ParseNumber(s string) (*big.Int, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "2^") && strings.HasSuffix(s, "-1") {
		p, err := strconv.Atoi(s[2 : len(s)-2])
		if err != nil || p < 1 {
			return nil, ErrInvalidNumber
		}
		return MersenneCandidate(p), nil
	}
	if i := strings.IndexByte(s, '^'); i >= 0 {
		base, ok := new(big.Int).SetString(s[:i], 10)
		if !ok {
			return nil, ErrInvalidNumber
		}
		exp, err := strconv.Atoi(s[i+1:])
		if err != nil || exp < 0 {
			return nil, ErrInvalidNumber
		}
		return new(big.Int).Exp(base, big.NewInt(int64(exp)), nil), nil
	}
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, ErrInvalidNumber
	}
	return n, nil
}
