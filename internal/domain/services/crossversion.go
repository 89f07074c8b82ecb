package services

import (
	"strings"

	"github.com/ochairo/ideagen/internal/domain/entities"
)

// CrossVersionRewriter normalizes artifact names that carry a trailing
// binary-compatibility suffix, so "lib_2.10" and "lib" compare equal under a
// 2.10 toolchain while "lib_2.11" stays distinct.
type CrossVersionRewriter struct {
	suffix string
}

// NewCrossVersionRewriter creates a rewriter for the given toolchain version
func NewCrossVersionRewriter(scalaVersion string) *CrossVersionRewriter {
	binary := BinaryVersion(scalaVersion)
	if binary == "" {
		return &CrossVersionRewriter{}
	}
	return &CrossVersionRewriter{suffix: "_" + binary}
}

// BinaryVersion derives the binary-compatibility version from a full
// toolchain version: "2.10.4" becomes "2.10", any 3.x release becomes "3".
func BinaryVersion(scalaVersion string) string {
	if scalaVersion == "" {
		return ""
	}
	parts := strings.Split(scalaVersion, ".")
	if parts[0] == "3" {
		return "3"
	}
	if len(parts) >= 2 {
		return parts[0] + "." + parts[1]
	}
	return scalaVersion
}

// Rewrite strips the toolchain's binary-compatibility suffix from a name.
// Names suffixed for a different toolchain version are left untouched.
func (r *CrossVersionRewriter) Rewrite(name string) string {
	if r.suffix == "" {
		return name
	}
	return strings.TrimSuffix(name, r.suffix)
}

// Equivalent reports whether two module identities denote the same dependency
// once cross-version suffixes are normalized. Revisions are deliberately
// ignored: the same dependency resolved at different revisions across
// configurations still counts as one.
func (r *CrossVersionRewriter) Equivalent(a, b entities.ModuleID) bool {
	return a.Organization == b.Organization && r.Rewrite(a.Name) == r.Rewrite(b.Name)
}
