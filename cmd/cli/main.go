package main

import (
	"fmt"
	"os"

	"github.com/de-tools/sales-atlas/pkg/runtime/terminal"
	"github.com/de-tools/sales-atlas/pkg/services/report"
	"github.com/de-tools/sales-atlas/pkg/services/sales"
)

func main() {
	cli := terminal.NewCLI(terminal.Options{
		Service: report.NewService(sales.DefaultRegistry()),
		Output:  os.Stdout,
	})

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
