package yaml

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/ochairo/ideagen/internal/domain/entities"
)

// Dump file names the host build tool writes per project
const (
	updateReportFile     = "update.yml"
	classifierReportFile = "update-classifiers.yml"
	classpathReportFile  = "dependency-classpath.yml"
)

// ReportRepository implements repositories.ReportRepository over a directory
// of per-project report dumps: <reportsDir>/<project>/<report>.yml
type ReportRepository struct {
	reportsDir string
	parser     *ReportParser
}

// NewReportRepository creates a new YAML-based report repository
func NewReportRepository(reportsDir string) *ReportRepository {
	return &ReportRepository{
		reportsDir: reportsDir,
		parser:     NewReportParser(),
	}
}

// GetUpdateReport loads a project's update report dump
func (r *ReportRepository) GetUpdateReport(_ context.Context, project string) (*entities.UpdateReport, error) {
	report, err := r.parser.ParseUpdateReportFile(r.reportPath(project, updateReportFile))
	if err != nil {
		return nil, fmt.Errorf("update report for %s: %w", project, err)
	}
	return report, nil
}

// GetClassifierReport loads a project's classifier-augmented update report dump
func (r *ReportRepository) GetClassifierReport(_ context.Context, project string) (*entities.UpdateReport, error) {
	report, err := r.parser.ParseUpdateReportFile(r.reportPath(project, classifierReportFile))
	if err != nil {
		return nil, fmt.Errorf("classifier report for %s: %w", project, err)
	}
	return report, nil
}

// GetClasspathReport loads a project's classpath listing dump
func (r *ReportRepository) GetClasspathReport(_ context.Context, project string) (*entities.ClasspathReport, error) {
	report, err := r.parser.ParseClasspathReportFile(r.reportPath(project, classpathReportFile))
	if err != nil {
		return nil, fmt.Errorf("classpath report for %s: %w", project, err)
	}
	return report, nil
}

func (r *ReportRepository) reportPath(project, file string) string {
	return filepath.Join(r.reportsDir, project, file)
}
