//go:generate mockgen -package scan -destination=mock_scan_test.go -source scan.go

package scan

import (
	"context"
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/SiestaCat/prime-number/pkg/prime"
)

// Result is a single primality verdict ready for output.
type Result interface {
	fmt.Stringer
	json.Marshaler
	ID() string
}

// Scanner tests one candidate. Implementations must be safe for
// concurrent use: the engine calls Scan from multiple workers.
type Scanner interface {
	Scan(ctx context.Context, r *Request) (Result, error)
}

// PrimeScanner runs the primality test suite against each request.
// Per-candidate failures, parse errors included, are reported in the
// result rather than aborting the whole batch.
type PrimeScanner struct {
	alg  prime.Algorithm
	opts []prime.Option
}

func NewPrimeScanner(alg prime.Algorithm, opts ...prime.Option) *PrimeScanner {
	return &PrimeScanner{alg: alg, opts: opts}
}

func (s *PrimeScanner) Scan(_ context.Context, r *Request) (Result, error) {
	result := &ScanResult{
		Input:     r.Input,
		Algorithm: s.alg.String(),
	}
	if r.Err != nil {
		result.Err = r.Err.Error()
		return result, nil
	}

	result.Bits = r.N.BitLen()
	isPrime, err := prime.Test(r.N, s.alg, s.opts...)
	if err != nil {
		result.Err = err.Error()
		return result, nil
	}
	result.Prime = isPrime
	return result, nil
}

// ScanRequest builds the request for a single already-parsed candidate.
func ScanRequest(input string, n *big.Int) *Request {
	return &Request{Input: input, N: n}
}
