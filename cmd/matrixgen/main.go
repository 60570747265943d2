// SPDX-License-Identifier: MIT

// Command matrixgen is the command-line front end: one subcommand per
// operation on grid files, an interactive shell over named matrices, and an
// HTTP server.
//
//	matrixgen mul a.txt b.txt -o c.txt
//	matrixgen random 3 3 --kind float --seed 7
//	matrixgen shell
//	matrixgen serve --addr :8080
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
