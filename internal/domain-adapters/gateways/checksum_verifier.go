package gateways

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"
)

// ChecksumSuffix is the conventional sibling file carrying an artifact's
// SHA256 digest, as published by artifact repositories.
const ChecksumSuffix = ".sha256"

// ChecksumVerifier verifies artifact files against their SHA256 digests
type ChecksumVerifier struct{}

// NewChecksumVerifier creates a new checksum verifier
func NewChecksumVerifier() *ChecksumVerifier {
	return &ChecksumVerifier{}
}

// VerifyArtifact checks an artifact against the digest in its .sha256
// sibling file. The sibling may contain either a bare hex digest or
// sha256sum output ("<digest>  <filename>").
func (v *ChecksumVerifier) VerifyArtifact(artifactPath string) error {
	//nolint:gosec // G304: Path is user-provided for verification
	data, err := os.ReadFile(artifactPath + ChecksumSuffix)
	if err != nil {
		return fmt.Errorf("failed to read checksum file: %w", err)
	}

	expected := strings.Fields(strings.TrimSpace(string(data)))
	if len(expected) == 0 {
		return fmt.Errorf("checksum file %s is empty", artifactPath+ChecksumSuffix)
	}

	return v.VerifyDigest(artifactPath, expected[0])
}

// VerifyDigest verifies a file against an expected SHA256 hex digest
func (v *ChecksumVerifier) VerifyDigest(filePath, expectedSum string) error {
	actualSum, err := v.CalculateDigest(filePath)
	if err != nil {
		return err
	}

	if !strings.EqualFold(actualSum, expectedSum) {
		return fmt.Errorf("checksum mismatch: expected %s, got %s", expectedSum, actualSum)
	}

	return nil
}

// CalculateDigest calculates the SHA256 digest of a file
// Pure Go implementation - no external sha256sum binary needed
func (v *ChecksumVerifier) CalculateDigest(filePath string) (string, error) {
	//nolint:gosec // G304: Path is user-provided for verification
	f, err := os.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	//nolint:errcheck // Defer close on read-only file
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("failed to hash file: %w", err)
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}
