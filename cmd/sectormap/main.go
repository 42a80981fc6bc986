// SPDX-License-Identifier: MIT

package main

import (
	"os"

	"github.com/katalvlaran/sectormap/internal/cli"
)

func main() {
	os.Exit(cli.Execute(os.Args[1:], os.Stdout, os.Stderr))
}
