// Package main is the entry point for the mtg-price-tracker server.
package main

import (
	"os"

	"github.com/donaldgifford/mtg-price-tracker/cmd/mtg-price-tracker/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
