//go:generate mockgen -package scan -destination=mock_request_test.go -source request.go

package scan

import (
	"bufio"
	"context"
	"io"
	"math/big"
	"strings"

	"github.com/SiestaCat/prime-number/pkg/prime"
)

// Request is one candidate pulled from the input stream. A line that
// fails to parse carries its error so the scanner can report it.
type Request struct {
	Input string
	N     *big.Int
	Err   error
}

type RequestGenerator interface {
	GenerateRequests(ctx context.Context) (<-chan *Request, error)
}

// NewFileRequestGenerator streams candidates from a line-oriented source,
// one number per line in any form accepted by prime.ParseNumber. Blank
// lines are skipped.
func NewFileRequestGenerator(openFile func() (io.ReadCloser, error)) RequestGenerator {
	return &fileRequestGenerator{openFile}
}

type fileRequestGenerator struct {
	openFile func() (io.ReadCloser, error)
}

func (g *fileRequestGenerator) GenerateRequests(ctx context.Context) (<-chan *Request, error) {
	input, err := g.openFile()
	if err != nil {
		return nil, err
	}
	out := make(chan *Request)
	go func() {
		defer close(out)
		defer input.Close()
		scanner := bufio.NewScanner(input)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if len(line) == 0 {
				continue
			}
			request := &Request{Input: line}
			request.N, request.Err = prime.ParseNumber(line)
			select {
			case <-ctx.Done():
				return
			case out <- request:
			}
		}
		if err := scanner.Err(); err != nil {
			writeRequestToChan(ctx, out, &Request{Err: err})
		}
	}()
	return out, nil
}

func writeRequestToChan(ctx context.Context, out chan *Request, r *Request) {
	select {
	case <-ctx.Done():
	case out <- r:
	}
}
