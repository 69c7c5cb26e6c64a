// Package main provides the tabulate command.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/Station-Manager/tabular/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cli.Execute(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
