package gpg

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestArtifactVerifier_ImportKeyringFromFile_NonexistentFile(t *testing.T) {
	v := NewArtifactVerifier()

	err := v.ImportKeyringFromFile("/nonexistent/keys.asc")

	if err == nil {
		t.Fatal("Expected error for nonexistent file, got nil")
	}
	if !strings.Contains(err.Error(), "failed to open keyring file") {
		t.Errorf("Expected 'failed to open keyring file' error, got: %v", err)
	}
}

func TestArtifactVerifier_ImportKeyringFromFile_InvalidContent(t *testing.T) {
	v := NewArtifactVerifier()
	tmpDir := t.TempDir()

	keyPath := filepath.Join(tmpDir, "keys.asc")
	if err := os.WriteFile(keyPath, []byte("not a pgp keyring"), 0600); err != nil {
		t.Fatal(err)
	}

	err := v.ImportKeyringFromFile(keyPath)

	if err == nil {
		t.Fatal("Expected error for invalid keyring file, got nil")
	}
}

func TestArtifactVerifier_KeyringInitiallyEmpty(t *testing.T) {
	v := NewArtifactVerifier()

	if size := v.KeyringSize(); size != 0 {
		t.Errorf("Initial keyring size = %d, want 0", size)
	}
}

func TestArtifactVerifier_VerifyArtifact_NoKeysImported(t *testing.T) {
	v := NewArtifactVerifier()
	tmpDir := t.TempDir()

	artifact := filepath.Join(tmpDir, "lib-1.0.jar")
	if err := os.WriteFile(artifact, []byte("jar content"), 0600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(artifact+SignatureSuffix, []byte("fake sig"), 0600); err != nil {
		t.Fatal(err)
	}

	err := v.VerifyArtifact(artifact)

	if err == nil {
		t.Fatal("Expected error when no keys are imported, got nil")
	}
	if !strings.Contains(err.Error(), "no PGP keys imported") {
		t.Errorf("Expected 'no PGP keys imported' error, got: %v", err)
	}
}

func TestArtifactVerifier_VerifyDetached_NonexistentFiles(t *testing.T) {
	v := NewArtifactVerifier()
	v.keyring = append(v.keyring, nil) // bypass the empty-keyring guard

	// Nonexistent signature file
	err := v.VerifyDetached("/tmp/lib-1.0.jar", "/nonexistent/lib-1.0.jar.asc")
	if err == nil {
		t.Fatal("Expected error for nonexistent signature file, got nil")
	}

	// Nonexistent artifact
	tmpDir := t.TempDir()
	sigPath := filepath.Join(tmpDir, "lib-1.0.jar.asc")
	//nolint:errcheck,gosec // G104: Test setup - failure will be caught by subsequent operations
	os.WriteFile(sigPath, []byte("fake"), 0600)

	err = v.VerifyDetached("/nonexistent/lib-1.0.jar", sigPath)
	if err == nil {
		t.Fatal("Expected error for nonexistent artifact, got nil")
	}
}

func TestArtifactVerifier_VerifyArtifact_MissingSignatureSibling(t *testing.T) {
	v := NewArtifactVerifier()
	v.keyring = append(v.keyring, nil)
	tmpDir := t.TempDir()

	artifact := filepath.Join(tmpDir, "lib-1.0.jar")
	if err := os.WriteFile(artifact, []byte("jar content"), 0600); err != nil {
		t.Fatal(err)
	}

	err := v.VerifyArtifact(artifact)

	if err == nil {
		t.Fatal("Expected error for missing .asc sibling, got nil")
	}
	if !strings.Contains(err.Error(), "failed to open signature file") {
		t.Errorf("Expected 'failed to open signature file' error, got: %v", err)
	}
}
