// Package main is the entry point for the tgt CLI client.
package main

import (
	"github.com/donaldgifford/target-inventory/cmd/tgt/cmd"
)

func main() {
	cmd.Execute()
}
