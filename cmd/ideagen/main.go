// Package main provides the ideagen CLI for extracting IDE library models
// from build-tool report dumps.
package main

import (
	"context"
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx := context.Background()
	command := os.Args[1]

	// Dispatch to subcommand
	switch command {
	case "extract":
		runExtract(ctx, os.Args[2:])
	case "classifiers":
		runClassifiers(ctx, os.Args[2:])
	case "verify":
		runVerify(ctx, os.Args[2:])
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`ideagen - IDE library model extractor for build-tool report dumps

Usage:
  ideagen <command> [options]

Commands:
  extract      Extract deduplicated, scope-tagged library references for a project
  classifiers  Extract sources/javadoc libraries from the classifier report
  verify       Verify a resolved artifact's detached PGP signature

Use "ideagen <command> --help" for more information about a command.`)
}
