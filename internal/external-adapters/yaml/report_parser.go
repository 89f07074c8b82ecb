// Package yaml provides YAML-based build-report parsing and repository implementations.
package yaml

import (
	"fmt"
	"os"

	"github.com/ochairo/ideagen/internal/domain/entities"
	"gopkg.in/yaml.v3"
)

// yamlUpdateReport represents the raw YAML structure of an update report dump
type yamlUpdateReport struct {
	Configurations []yamlConfiguration `yaml:"configurations"`
}

type yamlConfiguration struct {
	Name    string       `yaml:"name"`
	Modules []yamlModule `yaml:"modules"`
}

type yamlModule struct {
	Organization string         `yaml:"organization"`
	Name         string         `yaml:"name"`
	Revision     string         `yaml:"revision"`
	Artifacts    []yamlArtifact `yaml:"artifacts"`
}

type yamlArtifact struct {
	Path       string `yaml:"path"`
	Classifier string `yaml:"classifier"`
}

// yamlClasspathReport represents the raw YAML structure of a classpath dump
type yamlClasspathReport struct {
	Configurations []yamlClasspathConfiguration `yaml:"configurations"`
}

type yamlClasspathConfiguration struct {
	Name    string               `yaml:"name"`
	Entries []yamlClasspathEntry `yaml:"entries"`
}

type yamlClasspathEntry struct {
	Path   string        `yaml:"path"`
	Module *yamlModuleID `yaml:"module"`
}

type yamlModuleID struct {
	Organization string `yaml:"organization"`
	Name         string `yaml:"name"`
	Revision     string `yaml:"revision"`
}

// ReportParser parses YAML report dump files
type ReportParser struct{}

// NewReportParser creates a new YAML report parser
func NewReportParser() *ReportParser {
	return &ReportParser{}
}

// ParseUpdateReportFile parses an update report dump file
func (p *ReportParser) ParseUpdateReportFile(filePath string) (*entities.UpdateReport, error) {
	//nolint:gosec // G304: filePath is a report dump path from the repository
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filePath, err)
	}
	return p.ParseUpdateReport(data)
}

// ParseUpdateReport parses YAML bytes into an UpdateReport entity
func (p *ReportParser) ParseUpdateReport(data []byte) (*entities.UpdateReport, error) {
	var raw yamlUpdateReport
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	report := &entities.UpdateReport{}
	for _, config := range raw.Configurations {
		if config.Name == "" {
			return nil, fmt.Errorf("update report configuration must have a name")
		}

		converted := entities.ConfigurationReport{Name: config.Name}
		for _, mod := range config.Modules {
			if mod.Organization == "" || mod.Name == "" {
				return nil, fmt.Errorf("module in configuration %q must have organization and name", config.Name)
			}

			modReport := entities.ModuleReport{
				Module: entities.ModuleID{
					Organization: mod.Organization,
					Name:         mod.Name,
					Revision:     mod.Revision,
				},
			}
			for _, artifact := range mod.Artifacts {
				if artifact.Path == "" {
					continue
				}
				modReport.Artifacts = append(modReport.Artifacts, entities.ResolvedArtifact{
					Classifier: artifact.Classifier,
					Path:       artifact.Path,
				})
			}
			converted.Modules = append(converted.Modules, modReport)
		}
		report.Configurations = append(report.Configurations, converted)
	}

	return report, nil
}

// ParseClasspathReportFile parses a classpath listing dump file
func (p *ReportParser) ParseClasspathReportFile(filePath string) (*entities.ClasspathReport, error) {
	//nolint:gosec // G304: filePath is a report dump path from the repository
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filePath, err)
	}
	return p.ParseClasspathReport(data)
}

// ParseClasspathReport parses YAML bytes into a ClasspathReport entity
func (p *ReportParser) ParseClasspathReport(data []byte) (*entities.ClasspathReport, error) {
	var raw yamlClasspathReport
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	report := &entities.ClasspathReport{}
	for _, config := range raw.Configurations {
		if config.Name == "" {
			return nil, fmt.Errorf("classpath configuration must have a name")
		}

		converted := entities.ClasspathConfiguration{Name: config.Name}
		for _, entry := range config.Entries {
			if entry.Path == "" {
				return nil, fmt.Errorf("classpath entry in configuration %q must have a path", config.Name)
			}

			converted.Entries = append(converted.Entries, entities.ClasspathEntry{
				Path:   entry.Path,
				Module: convertModuleID(entry.Module),
			})
		}
		report.Configurations = append(report.Configurations, converted)
	}

	return report, nil
}

func convertModuleID(raw *yamlModuleID) *entities.ModuleID {
	if raw == nil {
		return nil
	}
	return &entities.ModuleID{
		Organization: raw.Organization,
		Name:         raw.Name,
		Revision:     raw.Revision,
	}
}
