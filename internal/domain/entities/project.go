package entities

// ProjectRef is an opaque handle to a project inside the host build graph.
// The extractor never interprets BaseDir beyond passing it to collaborators.
type ProjectRef struct {
	Name    string
	BaseDir string
}

// Directories describes a module's source layout. Paths are descriptive only
// and may not exist yet.
type Directories struct {
	Sources       []string
	Resources     []string
	Output        string
	TestSources   []string
	TestResources []string
	TestOutput    string
}

// ModuleInfo is the per-subproject slice of an IDE project model
type ModuleInfo struct {
	Name        string
	BaseDir     string
	Directories Directories
	Libraries   []ScopedLibrary
}

// ProjectInfo is the root IDE project model assembled from extraction results
type ProjectInfo struct {
	Name    string
	BaseDir string
	Modules []ModuleInfo
}
