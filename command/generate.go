package command

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
	mathrand "math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/SiestaCat/prime-number/pkg/prime"
	"github.com/SiestaCat/prime-number/pkg/scan"
	"github.com/spf13/cobra"
)

func newGenerateCmd() *generateCmd {
	c := &generateCmd{}

	cmd := &cobra.Command{
		Use: "generate [flags]",
		Example: strings.Join([]string{
			"generate -b 1024", "generate -b 256 -c 10",
			"generate --json -b 2048", "generate -b 64 --seed 1"}, "\n"),
		Short: "Generate random probable primes",
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			if err = c.opts.parseRawOptions(); err != nil {
				return
			}
			return c.opts.generate(os.Stdout)
		},
	}

	c.opts.initCliFlags(cmd)

	c.cmd = cmd
	return c
}

type generateCmd struct {
	cmd  *cobra.Command
	opts generateCmdOpts
}

type generateCmdOpts struct {
	json  bool
	bits  int
	count int
	rand  io.Reader

	rawSeed string
}

func (o *generateCmdOpts) initCliFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&o.json, "json", false, "enable JSON output")
	cmd.Flags().IntVarP(&o.bits, "bits", "b", 256, "set bit length of generated primes")
	cmd.Flags().IntVarP(&o.count, "count", "c", 1, "set number of primes to generate")
	cmd.Flags().StringVar(&o.rawSeed, "seed", "",
		"set deterministic seed for reproducible output, cryptographic randomness is used by default")
}

func (o *generateCmdOpts) parseRawOptions() (err error) {
	if o.bits < 2 {
		return errors.New("invalid bit length")
	}
	if o.count <= 0 {
		return errors.New("invalid count")
	}
	o.rand = rand.Reader
	if len(o.rawSeed) > 0 {
		var seed int64
		if seed, err = strconv.ParseInt(o.rawSeed, 10, 64); err != nil {
			return errors.New("invalid seed")
		}
		o.rand = mathrand.New(mathrand.NewSource(seed))
	}
	return
}

func (o *generateCmdOpts) generate(w io.Writer) (err error) {
	for i := 0; i < o.count; i++ {
		var p *big.Int
		if p, err = prime.GenerateProbablePrime(o.rand, o.bits); err != nil {
			return
		}
		if o.json {
			result := &scan.ScanResult{
				Input:     p.String(),
				Algorithm: prime.AlgMillerRabin.String(),
				Prime:     true,
				Bits:      p.BitLen(),
			}
			var data []byte
			if data, err = result.MarshalJSON(); err != nil {
				return
			}
			if _, err = fmt.Fprintf(w, "%s\n", data); err != nil {
				return
			}
			continue
		}
		if _, err = fmt.Fprintln(w, p.String()); err != nil {
			return
		}
	}
	return
}
