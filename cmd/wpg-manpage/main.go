package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/wpg/cmd/wpg"
)

func main() {
	rootCmd := wpg.NewRootCmd()

	err := doc.GenMan(rootCmd, wpg.ManHeader(), os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
