// Package main is the entry point for target-inventory.
package main

import (
	"os"

	"github.com/donaldgifford/target-inventory/cmd/target-inventory/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
