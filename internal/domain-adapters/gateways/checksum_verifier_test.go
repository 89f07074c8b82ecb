package gateways

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeArtifact(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

func TestChecksumVerifier_VerifyDigest(t *testing.T) {
	tmpDir := t.TempDir()
	artifact := writeArtifact(t, tmpDir, "lib.jar", "jar content")

	sum := sha256.Sum256([]byte("jar content"))
	digest := hex.EncodeToString(sum[:])

	v := NewChecksumVerifier()

	if err := v.VerifyDigest(artifact, digest); err != nil {
		t.Errorf("VerifyDigest() with correct digest failed: %v", err)
	}

	// Digest comparison is case-insensitive
	if err := v.VerifyDigest(artifact, strings.ToUpper(digest)); err != nil {
		t.Errorf("VerifyDigest() with uppercase digest failed: %v", err)
	}

	err := v.VerifyDigest(artifact, strings.Repeat("0", 64))
	if err == nil {
		t.Error("Expected error for wrong digest, got nil")
	}
	if !strings.Contains(err.Error(), "checksum mismatch") {
		t.Errorf("Expected mismatch error, got: %v", err)
	}
}

func TestChecksumVerifier_VerifyArtifact(t *testing.T) {
	tmpDir := t.TempDir()
	artifact := writeArtifact(t, tmpDir, "lib.jar", "jar content")

	sum := sha256.Sum256([]byte("jar content"))
	digest := hex.EncodeToString(sum[:])

	v := NewChecksumVerifier()

	// Bare digest sibling
	writeArtifact(t, tmpDir, "lib.jar"+ChecksumSuffix, digest+"\n")
	if err := v.VerifyArtifact(artifact); err != nil {
		t.Errorf("VerifyArtifact() with bare digest failed: %v", err)
	}

	// sha256sum-style sibling
	writeArtifact(t, tmpDir, "lib.jar"+ChecksumSuffix, digest+"  lib.jar\n")
	if err := v.VerifyArtifact(artifact); err != nil {
		t.Errorf("VerifyArtifact() with sha256sum format failed: %v", err)
	}

	// Empty sibling
	writeArtifact(t, tmpDir, "lib.jar"+ChecksumSuffix, "  \n")
	if err := v.VerifyArtifact(artifact); err == nil {
		t.Error("Expected error for empty checksum file, got nil")
	}
}

func TestChecksumVerifier_MissingFiles(t *testing.T) {
	tmpDir := t.TempDir()
	v := NewChecksumVerifier()

	if err := v.VerifyArtifact(filepath.Join(tmpDir, "absent.jar")); err == nil {
		t.Error("Expected error for missing checksum sibling, got nil")
	}

	artifact := writeArtifact(t, tmpDir, "lib.jar", "jar content")
	writeArtifact(t, tmpDir, "lib.jar"+ChecksumSuffix, strings.Repeat("0", 64))
	if err := v.VerifyArtifact(artifact); err == nil {
		t.Error("Expected mismatch for zero digest, got nil")
	}

	if _, err := v.CalculateDigest(filepath.Join(tmpDir, "absent.jar")); err == nil {
		t.Error("Expected error for missing file, got nil")
	}
}
