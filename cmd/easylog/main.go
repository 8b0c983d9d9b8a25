// Package main provides the easylog CLI tool.
package main

import (
	"fmt"
	"os"

	"github.com/christopherLang/easylog/cmd/easylog/commands"
)

var version = "dev"

func main() {
	if err := commands.Execute(version); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
