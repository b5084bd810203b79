// Command burrow prints the least energy required to organize the amphipods of
// a burrow diagram.
//
// Usage:
//
//	burrow input.txt
//	burrow -e --unfold -f input.txt
//	burrow --layout wide.yaml --metrics /var/lib/node_exporter/burrow.prom input.txt
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
