package scan

import (
	"context"
	"sync"
)

const defaultWorkerCount = 1

// Engine drains a request generator through a pool of scan workers and
// merges their results. Workers share nothing: every test owns its own
// state, so scaling out is free.
type Engine struct {
	reqgen      RequestGenerator
	scanner     Scanner
	workerCount int
}

type EngineOption func(*Engine)

func WithScanWorkerCount(workers int) EngineOption {
	return func(e *Engine) {
		if workers > 0 {
			e.workerCount = workers
		}
	}
}

func NewEngine(reqgen RequestGenerator, scanner Scanner, opts ...EngineOption) *Engine {
	e := &Engine{reqgen: reqgen, scanner: scanner, workerCount: defaultWorkerCount}
	for _, o := range opts {
		o(e)
	}
	return e
}

// Start launches the workers. The results channel is closed after all
// requests have been scanned; errc carries scanner failures.
func (e *Engine) Start(ctx context.Context) (<-chan Result, <-chan error) {
	requests, err := e.reqgen.GenerateRequests(ctx)
	if err != nil {
		results := make(chan Result)
		close(results)
		errc := make(chan error, 1)
		errc <- err
		close(errc)
		return results, errc
	}

	workers := make([]<-chan Result, e.workerCount)
	errcs := make([]<-chan error, e.workerCount)
	for i := 0; i < e.workerCount; i++ {
		workers[i], errcs[i] = e.scanWorker(ctx, requests)
	}
	return mergeResultChan(ctx, workers...), mergeErrChan(ctx, errcs...)
}

func (e *Engine) scanWorker(ctx context.Context, in <-chan *Request) (<-chan Result, <-chan error) {
	results := make(chan Result)
	errc := make(chan error)
	go func() {
		defer close(results)
		defer close(errc)
		for {
			select {
			case <-ctx.Done():
				return
			case r, ok := <-in:
				if !ok {
					return
				}
				result, err := e.scanner.Scan(ctx, r)
				if err != nil {
					writeErrToChan(ctx, errc, err)
					continue
				}
				writeResultToChan(ctx, results, result)
			}
		}
	}()
	return results, errc
}

func writeResultToChan(ctx context.Context, out chan Result, result Result) {
	select {
	case <-ctx.Done():
	case out <- result:
	}
}

func writeErrToChan(ctx context.Context, out chan error, err error) {
	select {
	case <-ctx.Done():
	case out <- err:
	}
}

// generics would be helpful :)
func mergeResultChan(ctx context.Context, channels ...<-chan Result) <-chan Result {
	var wg sync.WaitGroup
	wg.Add(len(channels))

	out := make(chan Result)
	multiplex := func(c <-chan Result) {
		defer wg.Done()
		for {
			select {
			case <-ctx.Done():
				return
			case r, ok := <-c:
				if !ok {
					return
				}
				select {
				case <-ctx.Done():
					return
				case out <- r:
				}
			}
		}
	}
	for _, c := range channels {
		go multiplex(c)
	}
	go func() {
		wg.Wait()
		close(out)
	}()
	return out
}

func mergeErrChan(ctx context.Context, channels ...<-chan error) <-chan error {
	var wg sync.WaitGroup
	wg.Add(len(channels))

	out := make(chan error)
	multiplex := func(c <-chan error) {
		defer wg.Done()
		for {
			select {
			case <-ctx.Done():
				return
			case e, ok := <-c:
				if !ok {
					return
				}
				select {
				case <-ctx.Done():
					return
				case out <- e:
				}
			}
		}
	}
	for _, c := range channels {
		go multiplex(c)
	}
	go func() {
		wg.Wait()
		close(out)
	}()
	return out
}
