package command

import (
	"fmt"
	"io"
	"math/big"
	"os"
	"strings"

	"github.com/SiestaCat/prime-number/pkg/prime"
	"github.com/spf13/cobra"
)

func newInfoCmd() *infoCmd {
	c := &infoCmd{}

	cmd := &cobra.Command{
		Use: "info [flags] number",
		Example: strings.Join([]string{
			"info 2^127-1", "info 170141183460469231731687303715884105727"}, "\n"),
		Short: "Print structural information about a number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			return c.opts.printInfo(os.Stdout, args[0])
		},
	}

	c.cmd = cmd
	return c
}

type infoCmd struct {
	cmd  *cobra.Command
	opts infoCmdOpts
}

type infoCmdOpts struct{}

func (o *infoCmdOpts) printInfo(w io.Writer, input string) (err error) {
	n, err := prime.ParseNumber(input)
	if err != nil {
		return
	}
	parity := "even"
	if n.Bit(0) == 1 {
		parity = "odd"
	}
	digits := len(new(big.Int).Abs(n).String())
	if _, err = fmt.Fprintf(w, "bits: %d\ndigits: %d\nparity: %s\n",
		n.BitLen(), digits, parity); err != nil {
		return
	}
	if p, ok := prime.MersenneExponent(n); ok {
		if _, err = fmt.Fprintf(w, "mersenne: 2^%d-1\n", p); err != nil {
			return
		}
	}
	return
}
