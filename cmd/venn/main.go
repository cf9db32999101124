// Command venn decomposes rotationally symmetric Venn diagrams into their
// regions and prints, checks or serves the resulting region catalogs.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
