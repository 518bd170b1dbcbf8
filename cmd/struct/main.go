package main

import (
	"fmt"
	"os"

	"github.com/bethropolis/struct/internal/cli"
	"github.com/fatih/color"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error: %v", err))
		os.Exit(1)
	}
}
