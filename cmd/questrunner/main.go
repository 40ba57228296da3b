// Package main is the entry point for the game runner that the host copies
// into each game folder.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/NRJ900/Quest-Passer/internal/runner"
)

func main() {
	log.SetPrefix("[questrunner] ")
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	dir, err := os.Getwd()
	if err != nil {
		dir = "."
	}
	trace, closeTrace := runner.OpenTrace(dir)
	defer closeTrace()
	trace.Println("Runner starting")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := runner.Run(ctx, os.Args[1:], trace); err != nil {
		trace.Printf("Fatal: %v", err)
		log.Printf("Failed to run: %v", err)
		closeTrace()
		os.Exit(1)
	}
	trace.Println("Runner exiting")
}
