// Command flexctl imports Riot match-v5 files into the match store and runs
// scoring, history and squad comparisons against it from the shell.
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
