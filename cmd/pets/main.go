// Command pets prints PeTS equation-of-state properties of a fluid state.
//
//	pets -pure records.json -substances argon,krypton -x 0.3,0.7 -temperature 150 -density 0.015
//
// Every flag has a PETS_* environment counterpart; flags take precedence.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/katalvlaran/pets/internal/cli"
)

func main() {
	cfg, err := cli.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		exitf("error: %v", err)
	}

	if err := cli.Run(context.Background(), cfg, os.Stdout); err != nil {
		exitf("error: %v", err)
	}
}

func exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
