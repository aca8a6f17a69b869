// Command fchoosability reads graphs in fgraph6 format from stdin, one per
// line, and reports whether each is f-choosable.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
