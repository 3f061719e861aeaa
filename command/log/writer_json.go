package log

import (
	"fmt"
	"io"

	"github.com/SiestaCat/prime-number/pkg/scan"
)

type JSONResultWriter struct{}

func (*JSONResultWriter) Write(w io.Writer, result scan.Result) error {
	data, err := result.MarshalJSON()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", data)
	return err
}
