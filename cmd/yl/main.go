// Command yl is the interactive interpreter and CLI front end.
package main

import (
	"fmt"
	"os"

	"github.com/cwbudde/yl/cmd/yl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
