// Package main generates CLI reference documentation for the tgt client and
// the target-inventory binary.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	server "github.com/donaldgifford/target-inventory/cmd/target-inventory/cmd"
	tgt "github.com/donaldgifford/target-inventory/cmd/tgt/cmd"
)

func main() {
	output := flag.String("output", "docs/cli", "output directory for generated markdown")
	flag.Parse()

	trees := map[string]*cobra.Command{
		"tgt":              tgt.Root(),
		"target-inventory": server.Root(),
	}

	for name, root := range trees {
		dir := filepath.Join(*output, name)
		if err := os.MkdirAll(dir, 0o750); err != nil {
			log.Fatalf("creating output directory: %v", err)
		}

		root.DisableAutoGenTag = true
		if err := doc.GenMarkdownTree(root, dir); err != nil {
			log.Fatalf("generating %s docs: %v", name, err)
		}
		fmt.Printf("%s CLI docs generated in %s/\n", name, dir)
	}
}
