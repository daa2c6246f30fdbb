// Command wos solves the Laplace equation on a built-in domain with walk on
// spheres and renders the result.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/mcpde/wos/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := app.RunContext(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
