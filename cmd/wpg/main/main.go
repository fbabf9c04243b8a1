package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/wpg/cmd/wpg"
	"github.com/arthur-debert/wpg/pkg/style"
)

func main() {
	rootCmd := wpg.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, style.Default().Render(style.Error, fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
