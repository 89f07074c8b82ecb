// Package gpg provides PGP signature verification for resolved artifacts.
package gpg

import (
	"fmt"
	"io"
	"os"

	"github.com/ProtonMail/go-crypto/openpgp"
)

const armoredSignaturePrefix = "-----BEGIN PGP SIGNATURE---"

// Detached signature file suffix published alongside repository artifacts
const SignatureSuffix = ".asc"

// ArtifactVerifier verifies detached PGP signatures of resolved artifacts
// using ProtonMail's go-crypto, a maintained fork of golang.org/x/crypto/openpgp.
// It works against local files only: keys come from a keyring file and
// signatures from the `.asc` sibling of the artifact.
type ArtifactVerifier struct {
	keyring openpgp.EntityList
}

// NewArtifactVerifier creates a verifier with an empty keyring
func NewArtifactVerifier() *ArtifactVerifier {
	return &ArtifactVerifier{keyring: make(openpgp.EntityList, 0)}
}

// ImportKeyringFromFile imports public keys from an armored or binary keyring file
func (v *ArtifactVerifier) ImportKeyringFromFile(keyringPath string) error {
	//nolint:gosec // G304: keyringPath is user-provided for key import
	f, err := os.Open(keyringPath)
	if err != nil {
		return fmt.Errorf("failed to open keyring file: %w", err)
	}
	//nolint:errcheck // Defer close
	defer f.Close()

	entities, err := openpgp.ReadArmoredKeyRing(f)
	if err != nil {
		// Try reading as binary
		if _, seekErr := f.Seek(0, 0); seekErr != nil {
			return fmt.Errorf("failed to reset keyring file: %w", seekErr)
		}
		entities, err = openpgp.ReadKeyRing(f)
		if err != nil {
			return fmt.Errorf("failed to read keyring: %w", err)
		}
	}

	if len(entities) == 0 {
		return fmt.Errorf("no keys found in keyring file")
	}

	v.keyring = append(v.keyring, entities...)
	return nil
}

// VerifyArtifact verifies an artifact against its detached `.asc` sibling.
// A missing signature file is an error: callers decide up front which
// artifacts they expect to be signed.
func (v *ArtifactVerifier) VerifyArtifact(artifactPath string) error {
	return v.VerifyDetached(artifactPath, artifactPath+SignatureSuffix)
}

// VerifyDetached verifies a detached signature file (armored or binary)
// against an artifact
func (v *ArtifactVerifier) VerifyDetached(artifactPath, sigPath string) error {
	if len(v.keyring) == 0 {
		return fmt.Errorf("no PGP keys imported, call ImportKeyringFromFile first")
	}

	//nolint:gosec // G304: sigPath is derived from the artifact under verification
	sigFile, err := os.Open(sigPath)
	if err != nil {
		return fmt.Errorf("failed to open signature file: %w", err)
	}
	//nolint:errcheck // Defer close
	defer sigFile.Close()

	//nolint:gosec // G304: artifactPath is the resolved artifact under verification
	dataFile, err := os.Open(artifactPath)
	if err != nil {
		return fmt.Errorf("failed to open artifact: %w", err)
	}
	//nolint:errcheck // Defer close
	defer dataFile.Close()

	// Peek at the signature to detect armor
	peekBuf := make([]byte, len(armoredSignaturePrefix))
	n, _ := io.ReadFull(sigFile, peekBuf)
	isArmored := n == len(armoredSignaturePrefix) && string(peekBuf) == armoredSignaturePrefix

	if _, seekErr := sigFile.Seek(0, 0); seekErr != nil {
		return fmt.Errorf("failed to reset signature file: %w", seekErr)
	}

	var verifyErr error
	if isArmored {
		_, verifyErr = openpgp.CheckArmoredDetachedSignature(v.keyring, dataFile, sigFile, nil)
	} else {
		_, verifyErr = openpgp.CheckDetachedSignature(v.keyring, dataFile, sigFile, nil)
	}

	if verifyErr != nil {
		return fmt.Errorf("signature verification failed: %w", verifyErr)
	}
	return nil
}

// KeyringSize returns the number of keys in the keyring
func (v *ArtifactVerifier) KeyringSize() int {
	return len(v.keyring)
}
