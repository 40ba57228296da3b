// Package main is the entry point for the questpasser host CLI.
package main

import (
	"log"
	"os"

	"github.com/NRJ900/Quest-Passer/internal/cli"
)

func main() {
	log.SetPrefix("[questpasser] ")
	log.SetFlags(log.Ltime)

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
