package services

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/ochairo/ideagen/internal/domain/entities"
	"github.com/ochairo/ideagen/internal/domain/interfaces"
)

// Suffixes identifying auxiliary archives by file name
const (
	jarSuffix     = ".jar"
	sourcesSuffix = "-sources.jar"
	javadocSuffix = "-javadoc.jar"
)

// FileProber checks for companion artifacts next to a classpath entry
type FileProber interface {
	Exists(path string) bool
}

// Normalizer converts raw dependency and classpath reports into deduplicated,
// scope-tagged library references. It holds no state across calls; every
// method is a pure transformation over its inputs plus the configured
// toolchain version and classifier names.
type Normalizer struct {
	rewriter    *CrossVersionRewriter
	classifiers entities.ClassifierSpec
	logger      interfaces.Logger
}

// NewNormalizer creates a normalizer for the given toolchain version
func NewNormalizer(scalaVersion string, classifiers entities.ClassifierSpec, logger interfaces.Logger) *Normalizer {
	if logger == nil {
		logger = &interfaces.NoOpLogger{}
	}
	return &Normalizer{
		rewriter:    NewCrossVersionRewriter(scalaVersion),
		classifiers: classifiers,
		logger:      logger,
	}
}

// ManagedLibraries produces the deduplicated managed library references.
// Configurations are visited in priority order; a module already accepted
// under a higher-priority configuration is skipped (cross-version-aware), and
// modules the update report resolved but the classpath listing never mentions
// are dropped. Either report missing yields an empty result.
func (n *Normalizer) ManagedLibraries(update *entities.UpdateReport, classpath *entities.ClasspathReport) []entities.ScopedLibrary {
	if update == nil || classpath == nil {
		return nil
	}

	var accepted []entities.ScopedLibrary
	var acceptedIDs []entities.ModuleID

	for _, config := range ConfigurationPriority {
		report := update.Configuration(config)
		if report == nil {
			continue
		}
		scope := MapConfiguration(config)

		for _, mod := range report.Modules {
			if n.containsEquivalent(acceptedIDs, mod.Module) {
				continue
			}
			if !n.onClasspath(classpath, mod.Module) {
				n.logger.Debug("dropping module absent from classpath",
					interfaces.F("module", mod.Module.Key()),
					interfaces.F("configuration", config))
				continue
			}

			id := mod.Module
			accepted = append(accepted, entities.ScopedLibrary{
				Scope:         scope,
				Configuration: config,
				Module:        &id,
				Library:       n.buildLibrary(mod),
			})
			acceptedIDs = append(acceptedIDs, mod.Module)
		}
	}

	return accepted
}

// MergeClassifierReport attaches source and documentation archives from a
// classifier-augmented update report to already-accepted managed references.
// Matching is by exact module coordinates within the same configuration, not
// cross-version-fuzzy; archives are merged as a set union.
func (n *Normalizer) MergeClassifierReport(refs []entities.ScopedLibrary, classified *entities.UpdateReport) []entities.ScopedLibrary {
	if classified == nil || len(refs) == 0 {
		return refs
	}

	merged := make([]entities.ScopedLibrary, len(refs))
	copy(merged, refs)

	for i := range merged {
		if merged[i].Module == nil {
			continue
		}
		config := classified.Configuration(merged[i].Configuration)
		if config == nil {
			continue
		}
		mod := config.FindModule(*merged[i].Module)
		if mod == nil {
			continue
		}

		lib := merged[i].Library
		for _, artifact := range mod.Artifacts {
			switch n.classifiers.RoleOf(artifact.Classifier) {
			case entities.RoleSources:
				lib.Sources = appendUnique(lib.Sources, artifact.Path)
			case entities.RoleJavadoc:
				lib.Javadocs = appendUnique(lib.Javadocs, artifact.Path)
			}
		}
		sort.Strings(lib.Sources)
		sort.Strings(lib.Javadocs)
		merged[i].Library = lib
	}

	return merged
}

// UnmanagedLibraries scans the compile and test classpaths for entries that
// did not come from dependency resolution. Entries that are themselves source
// or javadoc archives never become libraries; for every other entry the
// sibling directory is probed for companion archives. An entry present on
// both classpaths is kept only under compile, comparing full library values.
func (n *Normalizer) UnmanagedLibraries(classpath *entities.ClasspathReport, prober FileProber) []entities.ScopedLibrary {
	if classpath == nil {
		return nil
	}

	var accepted []entities.ScopedLibrary
	for _, config := range []string{ConfigCompile, ConfigTest} {
		listing := classpath.Configuration(config)
		if listing == nil {
			continue
		}
		scope := MapConfiguration(config)

		for _, entry := range listing.Unmanaged() {
			base := filepath.Base(entry.Path)
			if strings.HasSuffix(base, sourcesSuffix) || strings.HasSuffix(base, javadocSuffix) {
				continue
			}

			lib := entities.Library{
				Name:    base,
				Classes: []string{entry.Path},
			}
			if sibling := siblingPath(entry.Path, sourcesSuffix); sibling != "" && prober != nil && prober.Exists(sibling) {
				lib.Sources = []string{sibling}
			}
			if sibling := siblingPath(entry.Path, javadocSuffix); sibling != "" && prober != nil && prober.Exists(sibling) {
				lib.Javadocs = []string{sibling}
			}

			if containsLibrary(accepted, lib) {
				continue
			}
			accepted = append(accepted, entities.ScopedLibrary{
				Scope:         scope,
				Configuration: config,
				Library:       lib,
			})
		}
	}

	return accepted
}

// buildLibrary constructs a managed library from a module report. Binary
// archives come from artifacts without a classifier; recognized source and
// documentation classifiers attach alongside, anything else is dropped.
func (n *Normalizer) buildLibrary(mod entities.ModuleReport) entities.Library {
	lib := entities.Library{Name: mod.Module.Key()}
	for _, artifact := range mod.Artifacts {
		switch n.classifiers.RoleOf(artifact.Classifier) {
		case entities.RoleClasses:
			lib.Classes = appendUnique(lib.Classes, artifact.Path)
		case entities.RoleSources:
			lib.Sources = appendUnique(lib.Sources, artifact.Path)
		case entities.RoleJavadoc:
			lib.Javadocs = appendUnique(lib.Javadocs, artifact.Path)
		}
	}
	sort.Strings(lib.Classes)
	sort.Strings(lib.Sources)
	sort.Strings(lib.Javadocs)
	return lib
}

func (n *Normalizer) containsEquivalent(ids []entities.ModuleID, id entities.ModuleID) bool {
	for _, candidate := range ids {
		if n.rewriter.Equivalent(candidate, id) {
			return true
		}
	}
	return false
}

// onClasspath reports whether any configuration's classpath listing carries a
// managed entry cross-version-equivalent to the module.
func (n *Normalizer) onClasspath(classpath *entities.ClasspathReport, id entities.ModuleID) bool {
	for _, config := range classpath.Configurations {
		for _, entry := range config.Entries {
			if entry.Module != nil && n.rewriter.Equivalent(*entry.Module, id) {
				return true
			}
		}
	}
	return false
}

// siblingPath substitutes a jar entry's suffix with a companion-archive
// suffix, or returns empty for non-jar entries.
func siblingPath(path, suffix string) string {
	if !strings.HasSuffix(path, jarSuffix) {
		return ""
	}
	return strings.TrimSuffix(path, jarSuffix) + suffix
}

func containsLibrary(refs []entities.ScopedLibrary, lib entities.Library) bool {
	for _, ref := range refs {
		if ref.Library.Equal(lib) {
			return true
		}
	}
	return false
}

func appendUnique(paths []string, path string) []string {
	for _, p := range paths {
		if p == path {
			return paths
		}
	}
	return append(paths, path)
}
