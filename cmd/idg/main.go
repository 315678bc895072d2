package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fivetwenty-io/governance-client/cmd/idg/commands"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := commands.Execute(ctx, commands.BuildInfo{
		Version: version,
		Commit:  commit,
		Built:   date,
	})

	stop()

	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, commands.FormatError(err))
		os.Exit(1)
	}
}
