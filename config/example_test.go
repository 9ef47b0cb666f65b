// Package config_test demonstrates loading a linker options file.
package config_test

import (
	"fmt"
	"strings"

	"github.com/cellgraph/tracklink/config"
)

// ExampleLoadLinkerOptions loads S1's options: centroid linking with
// euclidean scoring and a max track age of 2.
func ExampleLoadLinkerOptions() {
	file := `
linked_by = 'centroid'
link_calc = 'euclidean'
max_track_age = 2
`
	opts, err := config.LoadLinkerOptions(strings.NewReader(file))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(opts.LinkedBy, opts.LinkCalc, opts.MaxTrackAge)
	// Output: centroid euclidean 2
}
