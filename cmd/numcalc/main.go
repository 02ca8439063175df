// SPDX-License-Identifier: MIT

// Command numcalc is a command-line front end for the numcalc library:
// iterative and direct linear solves, polynomial interpolation, least-squares
// regression, evaluation and YAML batch files.
//
//	numcalc solve --row 1,4,6 --row 4,1,7
//	numcalc interpolate --point 1,1 --point 2,4 --point 3,9 --at 4
//	numcalc regress --degree 2 --point 0,1 --point 1,2 --point 2,5 --point 3,10
//	numcalc eval --coeffs 1,0,1 3
//	numcalc batch jobs.yaml --output yaml
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
