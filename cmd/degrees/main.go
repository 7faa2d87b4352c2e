// Command degrees finds the degrees of separation between two people in a
// cast dataset:
//
//	degrees [directory] [--source NAME] [--target NAME]
//	degrees stats [directory]
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := newRootCmd().ExecuteContext(ctx)
	if err == nil {
		return
	}
	// errPersonNotFound has already been reported in the original wording.
	if !errors.Is(err, errPersonNotFound) {
		fmt.Fprintf(os.Stderr, "degrees: %v\n", err)
	}
	stop()
	os.Exit(1)
}
