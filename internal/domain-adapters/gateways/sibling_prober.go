package gateways

import "os"

// FilesystemProber answers sibling-artifact probes against the real
// filesystem. Directories never count as companion archives.
type FilesystemProber struct{}

// NewFilesystemProber creates a new filesystem prober
func NewFilesystemProber() *FilesystemProber {
	return &FilesystemProber{}
}

// Exists reports whether a regular file exists at the given path
func (p *FilesystemProber) Exists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
