package entities

// Library is a named artifact bundle: one or more binary archives plus any
// associated source and documentation archives. Immutable once constructed;
// builders keep the path slices sorted so value equality is deterministic.
type Library struct {
	Name     string
	Classes  []string
	Sources  []string
	Javadocs []string
}

// Equal reports full value equality over name and all archive locations
func (l Library) Equal(other Library) bool {
	return l.Name == other.Name &&
		pathsEqual(l.Classes, other.Classes) &&
		pathsEqual(l.Sources, other.Sources) &&
		pathsEqual(l.Javadocs, other.Javadocs)
}

func pathsEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// ScopedLibrary pairs a Library with the IDE scope it was accepted under.
// Module is nil for unmanaged classpath entries; Configuration records the
// build configuration the library was taken from.
type ScopedLibrary struct {
	Scope         Scope
	Configuration string
	Module        *ModuleID
	Library       Library
}
