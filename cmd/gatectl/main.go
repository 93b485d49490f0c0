// Command gatectl validates access policies and group directories and checks
// access decisions offline.
package main

import (
	"os"

	"mrp-access/pkg/cli"
)

func main() {
	os.Exit(cli.Execute())
}
