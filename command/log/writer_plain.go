package log

import (
	"fmt"
	"io"

	"github.com/SiestaCat/prime-number/pkg/scan"
)

type PlainResultWriter struct{}

func (*PlainResultWriter) Write(w io.Writer, result scan.Result) error {
	_, err := fmt.Fprintf(w, "%s\n", result)
	return err
}
