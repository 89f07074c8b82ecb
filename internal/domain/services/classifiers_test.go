package services

import (
	"testing"

	"github.com/ochairo/ideagen/internal/domain/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractClassifiedLibraries(t *testing.T) {
	report := &entities.UpdateReport{Configurations: []entities.ConfigurationReport{
		{Name: "compile", Modules: []entities.ModuleReport{
			moduleReport("org", "lib", "1.0",
				entities.ResolvedArtifact{Path: "/cache/lib-1.0-sources.jar", Classifier: "sources"},
				entities.ResolvedArtifact{Path: "/cache/lib-1.0.jar"},
			),
		}},
		{Name: "test", Modules: []entities.ModuleReport{
			// Same module again under test: deduplicated, archives merged
			moduleReport("org", "lib", "1.0",
				entities.ResolvedArtifact{Path: "/cache/lib-1.0-javadoc.jar", Classifier: "javadoc"},
			),
			moduleReport("org", "testkit", "2.0",
				entities.ResolvedArtifact{Path: "/cache/testkit-2.0-sources.jar", Classifier: "sources"},
			),
		}},
	}}

	libs := ExtractClassifiedLibraries(report, entities.DefaultClassifiers())

	require.Len(t, libs, 2)

	assert.Equal(t, "org_lib_1.0", libs[0].Name)
	assert.Equal(t, []string{"/cache/lib-1.0-sources.jar"}, libs[0].Sources)
	assert.Equal(t, []string{"/cache/lib-1.0-javadoc.jar"}, libs[0].Javadocs)
	assert.Empty(t, libs[0].Classes, "flat extraction carries only sources and javadocs")

	assert.Equal(t, "org_testkit_2.0", libs[1].Name)
	assert.Equal(t, []string{"/cache/testkit-2.0-sources.jar"}, libs[1].Sources)
}

func TestExtractClassifiedLibraries_NilReport(t *testing.T) {
	assert.Nil(t, ExtractClassifiedLibraries(nil, entities.DefaultClassifiers()))
}

func TestExtractClassifiedLibraries_DistinctRevisionsStaySeparate(t *testing.T) {
	report := &entities.UpdateReport{Configurations: []entities.ConfigurationReport{
		{Name: "compile", Modules: []entities.ModuleReport{
			moduleReport("org", "lib", "1.0",
				entities.ResolvedArtifact{Path: "/cache/lib-1.0-sources.jar", Classifier: "sources"},
			),
			moduleReport("org", "lib", "2.0",
				entities.ResolvedArtifact{Path: "/cache/lib-2.0-sources.jar", Classifier: "sources"},
			),
		}},
	}}

	libs := ExtractClassifiedLibraries(report, entities.DefaultClassifiers())

	require.Len(t, libs, 2)
	assert.Equal(t, "org_lib_1.0", libs[0].Name)
	assert.Equal(t, "org_lib_2.0", libs[1].Name)
}
