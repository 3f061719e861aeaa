package command

import (
	"context"
	"os"
	"os/signal"
	"strings"

	"github.com/SiestaCat/prime-number/command/log"
	"github.com/spf13/cobra"
)

func newBatchCmd() *batchCmd {
	c := &batchCmd{}

	cmd := &cobra.Command{
		Use: "batch [flags]",
		Example: strings.Join([]string{
			"batch -f numbers.txt", "batch -f - < numbers.txt",
			"batch -f numbers.txt -w 8 --json",
			"batch -f numbers.txt -a miller-rabin --rate 10/s"}, "\n"),
		Short: "Test numbers from a file, one per line",
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
			defer cancel()

			if err = c.opts.parseRawOptions(); err != nil {
				return
			}

			var logger log.Logger
			if logger, err = c.opts.getLogger("batch", os.Stdout); err != nil {
				return
			}

			return startScanEngine(ctx, c.opts.newScanEngine(), logger)
		},
	}

	c.opts.initCliFlags(cmd)

	c.cmd = cmd
	return c
}

type batchCmd struct {
	cmd  *cobra.Command
	opts batchCmdOpts
}
