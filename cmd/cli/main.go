package main

import (
	"fmt"
	"os"

	"github.com/de-tools/deal-atlas/pkg/runtime/terminal"
	"github.com/de-tools/deal-atlas/pkg/services/deals"
	"github.com/de-tools/deal-atlas/pkg/store/document"
)

func main() {
	cli := terminal.NewCLI(terminal.Options{
		Registry: deals.DefaultRegistry(),
		Store:    document.NewStore(),
		Output:   os.Stdout,
	})

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
