//go:generate easyjson -output_filename result_easyjson.go result.go

package scan

import "fmt"

//easyjson:json
type ScanResult struct {
	Input     string `json:"input"`
	Algorithm string `json:"algorithm"`
	Prime     bool   `json:"prime"`
	Bits      int    `json:"bits,omitempty"`
	Err       string `json:"error,omitempty"`
}

func (r *ScanResult) String() string {
	status := "COMPOSITE"
	if r.Prime {
		status = "PRIME"
	}
	if len(r.Err) > 0 {
		status = "ERROR: " + r.Err
	}
	return fmt.Sprintf("%-40s %s", r.Input, status)
}

func (r *ScanResult) ID() string {
	return r.Input
}
