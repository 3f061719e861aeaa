package command

import (
	"context"
	"os"
	"sync"

	"github.com/SiestaCat/prime-number/command/log"
	"github.com/SiestaCat/prime-number/pkg/scan"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "prime-number",
	Short: "Fast, easy-to-use primality tester for arbitrarily large numbers",
}

func init() {
	rootCmd.AddCommand(newCheckCmd().cmd)
	rootCmd.AddCommand(newGenerateCmd().cmd)
	rootCmd.AddCommand(newBatchCmd().cmd)
	rootCmd.AddCommand(newInfoCmd().cmd)
}

func Main(version string) {
	rootCmd.Version = version
	if err := rootCmd.Execute(); err != nil {
		os.Exit(2)
	}
}

func startScanEngine(ctx context.Context, engine *scan.Engine, logger log.Logger) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	results, errc := engine.Start(ctx)

	// setup result logging
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		logger.LogResults(ctx, results)
	}()

	// error logging
	wg.Add(1)
	go func() {
		defer wg.Done()
		for err := range errc {
			logger.Error(err)
		}
	}()
	wg.Wait()
	return nil
}
