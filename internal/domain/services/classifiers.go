package services

import (
	"sort"

	"github.com/ochairo/ideagen/internal/domain/entities"
)

// ExtractClassifiedLibraries converts an update report directly into a flat
// sequence of libraries carrying only source and documentation archives,
// regardless of which configuration resolved them. Modules are deduplicated
// by exact coordinates; order follows first appearance in the report.
func ExtractClassifiedLibraries(report *entities.UpdateReport, classifiers entities.ClassifierSpec) []entities.Library {
	if report == nil {
		return nil
	}

	var order []string
	byKey := make(map[string]*entities.Library)

	for _, config := range report.Configurations {
		for _, mod := range config.Modules {
			key := mod.Module.Key()
			lib, ok := byKey[key]
			if !ok {
				lib = &entities.Library{Name: key}
				byKey[key] = lib
				order = append(order, key)
			}

			for _, artifact := range mod.Artifacts {
				switch classifiers.RoleOf(artifact.Classifier) {
				case entities.RoleSources:
					lib.Sources = appendUnique(lib.Sources, artifact.Path)
				case entities.RoleJavadoc:
					lib.Javadocs = appendUnique(lib.Javadocs, artifact.Path)
				}
			}
		}
	}

	libs := make([]entities.Library, 0, len(order))
	for _, key := range order {
		lib := byKey[key]
		sort.Strings(lib.Sources)
		sort.Strings(lib.Javadocs)
		libs = append(libs, *lib)
	}
	return libs
}
