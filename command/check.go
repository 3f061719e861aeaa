package command

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/SiestaCat/prime-number/pkg/prime"
	"github.com/SiestaCat/prime-number/pkg/scan"
	"github.com/spf13/cobra"
)

func newCheckCmd() *checkCmd {
	c := &checkCmd{}

	cmd := &cobra.Command{
		Use: "check [flags] number",
		Example: strings.Join([]string{
			"check 170141183460469231731687303715884105727",
			"check 2^127-1", "check -a miller-rabin -r 40 10^100",
			"check --json -v 2^31-1"}, "\n"),
		Short: "Test a single number for primality",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			if err = c.opts.parseRawOptions(); err != nil {
				return
			}
			report, err := c.opts.checkNumber(args[0])
			if err != nil {
				return
			}
			if err = c.opts.writeReport(os.Stdout, report); err != nil {
				return
			}
			if !report.result.Prime {
				os.Exit(1)
			}
			return
		},
	}

	c.opts.initCliFlags(cmd)

	c.cmd = cmd
	return c
}

type checkCmd struct {
	cmd  *cobra.Command
	opts checkCmdOpts
}

type checkCmdOpts struct {
	primeTestCmdOpts
	verbose bool
}

func (o *checkCmdOpts) initCliFlags(cmd *cobra.Command) {
	o.primeTestCmdOpts.initCliFlags(cmd)
	cmd.Flags().BoolVarP(&o.verbose, "verbose", "v", false,
		"print bit length, digit count and elapsed time")
}

type checkReport struct {
	result  *scan.ScanResult
	digits  int
	elapsed time.Duration
}

func (o *checkCmdOpts) checkNumber(input string) (*checkReport, error) {
	n, err := prime.ParseNumber(input)
	if err != nil {
		return nil, err
	}
	opts := o.testOptions()
	if o.verbose {
		opts = append(opts, prime.WithProgress(stderrProgress(os.Stderr)))
	}
	start := time.Now()
	isPrime, err := prime.Test(n, o.algorithm, opts...)
	if err != nil {
		return nil, err
	}
	return &checkReport{
		result: &scan.ScanResult{
			Input:     input,
			Algorithm: o.algorithm.String(),
			Prime:     isPrime,
			Bits:      n.BitLen(),
		},
		digits:  len(n.String()),
		elapsed: time.Since(start),
	}, nil
}

func (o *checkCmdOpts) writeReport(w io.Writer, report *checkReport) (err error) {
	if o.json {
		var data []byte
		if data, err = report.result.MarshalJSON(); err != nil {
			return
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
		return
	}
	status := "COMPOSITE"
	if report.result.Prime {
		status = "PRIME"
	}
	if _, err = fmt.Fprintln(w, status); err != nil {
		return
	}
	if o.verbose {
		_, err = fmt.Fprintf(w, "bits: %d\ndigits: %d\ntime: %s\n",
			report.result.Bits, report.digits, report.elapsed)
	}
	return
}

func stderrProgress(w io.Writer) prime.Progress {
	return func(done, total int) {
		if done%1000 == 0 || done == total {
			fmt.Fprintf(w, "\r%d/%d", done, total)
			if done == total {
				fmt.Fprintln(w)
			}
		}
	}
}
