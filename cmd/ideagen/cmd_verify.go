package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/ochairo/ideagen/internal/domain-adapters/gateways"
	"github.com/ochairo/ideagen/internal/external-adapters/gpg"
)

func runVerify(_ context.Context, args []string) {
	fs := flag.NewFlagSet("verify", flag.ExitOnError)
	var (
		configFile = fs.String("config", "", "Path to settings file (default: ./ideagen.yml if present)")
		keyring    = fs.String("keyring", "", "Path to an armored or binary PGP keyring file")
		signature  = fs.String("signature", "", "Signature file (default: <artifact>.asc)")
		checksum   = fs.Bool("checksum", false, "Verify the artifact's SHA256 digest from its .sha256 sibling instead of a PGP signature")
	)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: ideagen verify <artifact> [options]

Verify a resolved artifact's detached PGP signature against a local keyring,
or its SHA256 digest against a .sha256 sibling file.

Examples:
  ideagen verify ~/.ivy2/cache/org.example/lib/jars/lib-1.0.jar --keyring keys.asc
  ideagen verify lib-1.0.jar --keyring keys.asc --signature lib-1.0.jar.asc
  ideagen verify lib-1.0.jar --checksum

Options:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing flags: %v\n", err)
		os.Exit(1)
	}

	if fs.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Error: artifact path is required\n\n")
		fs.Usage()
		os.Exit(1)
	}
	artifact := fs.Arg(0)

	if *checksum {
		if err := gateways.NewChecksumVerifier().VerifyArtifact(artifact); err != nil {
			fmt.Fprintf(os.Stderr, "Verification failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Checksum OK: %s\n", artifact)
		return
	}

	settings, err := loadSettings(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *keyring != "" {
		settings.Keyring = *keyring
	}
	if settings.Keyring == "" {
		fmt.Fprintf(os.Stderr, "Error: a keyring is required (--keyring or settings)\n")
		os.Exit(1)
	}

	verifier := gpg.NewArtifactVerifier()
	if err := verifier.ImportKeyringFromFile(settings.Keyring); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *signature != "" {
		err = verifier.VerifyDetached(artifact, *signature)
	} else {
		err = verifier.VerifyArtifact(artifact)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Verification failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Signature OK: %s\n", artifact)
}
