// Command waypath plans multi-stop walking routes through a CSV floor
// plan: it repairs connectivity, reduces the building graph to the
// requested stops, orders them, and prints the expanded walk with a
// time estimate.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
