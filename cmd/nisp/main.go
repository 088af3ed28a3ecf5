// Command nisp is the nextpnr-fpga_interchange site preprocessor: it loads
// a device file, routes every BEL pin within each requested site type, and
// writes the resulting routing caches out as JSON and/or Graphviz .dot
// graphs.
package main

import (
	"fmt"
	"os"

	"github.com/antmicro/nisp/sitelog"
)

func main() {
	logger := sitelog.New()
	defer logger.Sync()

	if err := newRootCommand(logger).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
