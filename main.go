// Package main is the entry point for the jokester binary.
package main

import (
	"context"
	"log"
	"os"

	"jokester/src/app/cli"
)

func main() {
	if err := cli.Execute(context.Background()); err != nil {
		log.Printf("fatal error: %v\n", err)
		os.Exit(1)
	}
}
