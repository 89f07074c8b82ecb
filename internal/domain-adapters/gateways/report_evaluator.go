// Package gateways provides implementations of domain gateway interfaces.
package gateways

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/ochairo/ideagen/internal/domain/entities"
	"github.com/ochairo/ideagen/internal/domain/interfaces"
	"github.com/ochairo/ideagen/internal/domain/interfaces/gateways"
	"github.com/ochairo/ideagen/internal/domain/interfaces/repositories"
)

// ReportTaskEvaluator implements gateways.TaskEvaluator over report dumps the
// host build tool wrote to disk. Each task key resolves to one dumped report
// for the project; a missing dump means the build graph does not define the
// task for that project.
type ReportTaskEvaluator struct {
	reports repositories.ReportRepository
	logger  interfaces.Logger
}

// NewReportTaskEvaluator creates an evaluator backed by a report repository
func NewReportTaskEvaluator(reports repositories.ReportRepository, logger interfaces.Logger) *ReportTaskEvaluator {
	if logger == nil {
		logger = &interfaces.NoOpLogger{}
	}
	return &ReportTaskEvaluator{reports: reports, logger: logger}
}

// Evaluate resolves a task to its dumped report. Unknown task keys and
// missing dumps surface as ErrTaskNotFound; parse failures propagate as-is.
func (e *ReportTaskEvaluator) Evaluate(ctx context.Context, task gateways.TaskKey, project entities.ProjectRef) (interface{}, error) {
	e.logger.Debug("evaluating task",
		interfaces.F("task", string(task)),
		interfaces.F("project", project.Name))

	var value interface{}
	var err error

	switch task {
	case gateways.TaskUpdate:
		value, err = e.reports.GetUpdateReport(ctx, project.Name)
	case gateways.TaskUpdateClassifiers:
		value, err = e.reports.GetClassifierReport(ctx, project.Name)
	case gateways.TaskDependencyClasspath:
		value, err = e.reports.GetClasspathReport(ctx, project.Name)
	default:
		return nil, fmt.Errorf("%w: %s", gateways.ErrTaskNotFound, task)
	}

	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s: %v", gateways.ErrTaskNotFound, task, err)
		}
		return nil, fmt.Errorf("task %q failed: %w", task, err)
	}
	return value, nil
}
