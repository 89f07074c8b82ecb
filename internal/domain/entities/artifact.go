package entities

// ArtifactRole distinguishes the archive kinds a module can resolve to
type ArtifactRole int

// Artifact roles
const (
	RoleClasses ArtifactRole = iota
	RoleSources
	RoleJavadoc
	RoleUnknown
)

// ResolvedArtifact is a single archive location reported by dependency resolution
type ResolvedArtifact struct {
	Classifier string
	Path       string
}

// ClassifierSpec names the classifiers that mark source and documentation archives.
// An empty spec disables classifier-augmented extraction.
type ClassifierSpec struct {
	Sources  []string
	Javadocs []string
}

// DefaultClassifiers returns the conventional sources/javadoc classifier names
func DefaultClassifiers() ClassifierSpec {
	return ClassifierSpec{
		Sources:  []string{"sources"},
		Javadocs: []string{"javadoc"},
	}
}

// Enabled reports whether classifier-augmented extraction was requested
func (c ClassifierSpec) Enabled() bool {
	return len(c.Sources) > 0 || len(c.Javadocs) > 0
}

// RoleOf maps an artifact classifier onto its role. An empty classifier is
// always the binary archive; classifiers not listed here are unknown and
// never attached to a library.
func (c ClassifierSpec) RoleOf(classifier string) ArtifactRole {
	if classifier == "" {
		return RoleClasses
	}
	for _, name := range c.Sources {
		if classifier == name {
			return RoleSources
		}
	}
	for _, name := range c.Javadocs {
		if classifier == name {
			return RoleJavadoc
		}
	}
	return RoleUnknown
}
