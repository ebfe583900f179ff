// SPDX-License-Identifier: MIT

// Command clifford prints diagnostic views of a Clifford algebra.
//
// Usage:
//
//	clifford signs --dims 3 --style numeric
//	clifford table --dims 2 --signature 0b10
//	clifford involutes --dims 4 --seed 7
//	clifford invert --dims 6 --count 100 --workers 8
//	clifford invert --dims 5 --save inv.clmv --compression zstd
//	clifford inspect inv.clmv
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
