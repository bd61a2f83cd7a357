// Package main is the entry point of pdef-example, a generator of example
// artifacts for pdef packages.
package main

import (
	"context"
	"os"
	"os/signal"

	"pdef-example-generator/internal/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := cmd.Execute(ctx, os.Args[1:], os.Stdout, os.Stderr)

	stop()
	os.Exit(code)
}
