// Command waitfor runs a command until it exits successfully or a timeout
// passes.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "waitfor: %v\n", err)
		os.Exit(1)
	}
}
