// cmd/foldermerge/main.go
package main

import (
	"errors"
	"fmt"
	"os"
)

const Version = "0.1.0" // major.minor.patch

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errFilesFailed) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
