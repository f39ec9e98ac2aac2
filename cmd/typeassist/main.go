// Command typeassist runs code assists on a source file from the command
// line.
//
//	typeassist list main.rs --offset 3:9
//	typeassist apply main.rs --offset 3:9 --write
package main

import (
	"fmt"
	"os"
)

func main() {
	root := newRootCmd(os.Stdin, os.Stdout, os.Stderr)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
