// extrude — planar-curve extrusion from the command line.
// Reads a profile document (YAML), sweeps it into a solid or shell,
// and writes the result as an STL mesh.
package main

import "os"

// version is set by ldflags at build time.
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
