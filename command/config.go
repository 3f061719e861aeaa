package command

import (
	"errors"
	"io"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/SiestaCat/prime-number/command/log"
	"github.com/SiestaCat/prime-number/pkg/prime"
	"github.com/SiestaCat/prime-number/pkg/scan"
	"github.com/spf13/cobra"
	"go.uber.org/ratelimit"
)

var defaultWorkerCount = runtime.NumCPU()

var (
	errRateLimit = errors.New("invalid ratelimit")
	errRounds    = errors.New("invalid rounds count")
	errNoInput   = errors.New("requires file with numbers to test, use - for stdin")
)

type primeTestCmdOpts struct {
	json          bool
	deterministic bool
	algorithm     prime.Algorithm
	rounds        int
	exponent      int

	rawAlgorithm string
}

func (o *primeTestCmdOpts) initCliFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&o.json, "json", false, "enable JSON output")
	cmd.Flags().StringVarP(&o.rawAlgorithm, "algorithm", "a", "auto",
		strings.Join([]string{
			"set primality test algorithm",
			"one of: auto, miller-rabin, lucas-lehmer, bpsw"}, "\n"))
	cmd.Flags().IntVarP(&o.rounds, "rounds", "r", prime.DefaultRounds, "set number of Miller-Rabin rounds")
	cmd.Flags().BoolVar(&o.deterministic, "deterministic", false,
		"use the fixed witness set instead of random witnesses")
	cmd.Flags().IntVarP(&o.exponent, "exponent", "e", 0,
		"set Mersenne exponent p to test 2^p-1 with lucas-lehmer")
}

func (o *primeTestCmdOpts) parseRawOptions() (err error) {
	if o.algorithm, err = prime.ParseAlgorithm(o.rawAlgorithm); err != nil {
		return
	}
	if o.rounds <= 0 {
		return errRounds
	}
	return
}

func (o *primeTestCmdOpts) testOptions() []prime.Option {
	opts := []prime.Option{prime.WithRounds(o.rounds)}
	if o.deterministic {
		opts = append(opts, prime.WithDeterministic())
	}
	if o.exponent > 0 {
		opts = append(opts, prime.WithExponent(o.exponent))
	}
	return opts
}

func (o *primeTestCmdOpts) getLogger(name string, w io.Writer) (logger log.Logger, err error) {
	opts := []log.LoggerOption{log.FlushInterval(1 * time.Second)}
	if o.json {
		opts = append(opts, log.JSON())
	}
	logger, err = log.NewLogger(w, name, opts...)
	return
}

type batchCmdOpts struct {
	primeTestCmdOpts
	inputFile  string
	workers    int
	rateCount  int
	rateWindow time.Duration

	rawRateLimit string
}

func (o *batchCmdOpts) initCliFlags(cmd *cobra.Command) {
	o.primeTestCmdOpts.initCliFlags(cmd)
	cmd.Flags().StringVarP(&o.inputFile, "file", "f", "",
		"set file with numbers to test, one per line; use - for stdin")
	cmd.Flags().IntVarP(&o.workers, "workers", "w", defaultWorkerCount, "set workers count")
	cmd.Flags().StringVar(&o.rawRateLimit, "rate", "",
		strings.Join([]string{
			"set rate limit for primality tests",
			`format: "rateCount/rateWindow"`,
			"where rateCount is a number of tests, rateWindow is the time interval",
			"e.g. 10/s -- 10 tests per second", "500/7s -- 500 tests per 7 seconds\n"}, "\n"))
}

func (o *batchCmdOpts) parseRawOptions() (err error) {
	if err = o.primeTestCmdOpts.parseRawOptions(); err != nil {
		return
	}
	if len(o.inputFile) == 0 {
		return errNoInput
	}
	if len(o.rawRateLimit) > 0 {
		if o.rateCount, o.rateWindow, err = parseRateLimit(o.rawRateLimit); err != nil {
			return
		}
	}
	if o.workers <= 0 {
		return errors.New("invalid workers count")
	}
	return
}

func (o *batchCmdOpts) openInput() (io.ReadCloser, error) {
	if o.inputFile == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(o.inputFile)
}

func (o *batchCmdOpts) newScanEngine() *scan.Engine {
	var scanner scan.Scanner = scan.NewPrimeScanner(o.algorithm, o.testOptions()...)
	if o.rateCount > 0 {
		scanner = scan.NewRateLimitScanner(scanner,
			ratelimit.New(o.rateCount, ratelimit.Per(o.rateWindow)))
	}
	reqgen := scan.NewFileRequestGenerator(o.openInput)
	return scan.NewEngine(reqgen, scanner, scan.WithScanWorkerCount(o.workers))
}

func parseRateLimit(rateLimit string) (rateCount int, rateWindow time.Duration, err error) {
	parts := strings.Split(rateLimit, "/")
	if len(parts) > 2 {
		return 0, 0, errRateLimit
	}
	var rate int64
	if rate, err = strconv.ParseInt(parts[0], 10, 32); err != nil || rate < 0 {
		return 0, 0, errRateLimit
	}
	rateCount = int(rate)
	rateWindow = 1 * time.Second
	if len(parts) < 2 {
		return
	}
	win := parts[1]
	if len(win) > 0 && (win[0] < '0' || win[0] > '9') {
		win = "1" + win
	}
	if rateWindow, err = time.ParseDuration(win); err != nil || rateWindow < 0 {
		return 0, 0, errRateLimit
	}
	return
}
