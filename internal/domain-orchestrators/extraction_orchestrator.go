// Package orchestrators coordinates complex workflows across multiple domain services.
package orchestrators

import (
	"context"
	"fmt"
	"time"

	"github.com/ochairo/ideagen/internal/domain/entities"
	"github.com/ochairo/ideagen/internal/domain/interfaces"
	"github.com/ochairo/ideagen/internal/domain/interfaces/gateways"
	"github.com/ochairo/ideagen/internal/domain/services"
)

// ExtractionConfig holds configuration for the orchestrator
type ExtractionConfig struct {
	// ScalaVersion is the toolchain version driving cross-version name rewriting
	ScalaVersion string
	// Classifiers controls the optional classifier-augmented merge step;
	// an empty spec skips it entirely
	Classifiers entities.ClassifierSpec
}

// ExtractionOrchestrator runs the full extraction pipeline: task evaluation,
// managed-library normalization, classifier merging, and the unmanaged scan.
// It owns no caches; every call is independent given fresh task results.
type ExtractionOrchestrator struct {
	evaluator   gateways.TaskEvaluator
	normalizer  *services.Normalizer
	prober      services.FileProber
	classifiers entities.ClassifierSpec
	logger      interfaces.Logger
}

// NewExtractionOrchestrator creates a new extraction orchestrator
func NewExtractionOrchestrator(
	evaluator gateways.TaskEvaluator,
	prober services.FileProber,
	config ExtractionConfig,
	logger interfaces.Logger,
) *ExtractionOrchestrator {
	if logger == nil {
		logger = &interfaces.NoOpLogger{}
	}
	return &ExtractionOrchestrator{
		evaluator:   evaluator,
		normalizer:  services.NewNormalizer(config.ScalaVersion, config.Classifiers, logger),
		prober:      prober,
		classifiers: config.Classifiers,
		logger:      logger,
	}
}

// ExtractionResult contains the result of one extraction call
type ExtractionResult struct {
	Project        entities.ProjectRef
	Libraries      []entities.ScopedLibrary
	ManagedCount   int
	UnmanagedCount int
	Duration       time.Duration
}

// Extract produces the ordered library references for a project. The
// classpath listing task is mandatory: if it cannot be evaluated the whole
// extraction aborts. The update and classifier tasks are soft: on failure
// their step yields nothing and extraction continues with what succeeded.
func (o *ExtractionOrchestrator) Extract(ctx context.Context, project entities.ProjectRef) (*ExtractionResult, error) {
	start := time.Now()

	classpath, err := o.classpathReport(ctx, project)
	if err != nil {
		return nil, err
	}

	managed := o.managedLibraries(ctx, project, classpath)
	unmanaged := o.normalizer.UnmanagedLibraries(classpath, o.prober)

	libraries := make([]entities.ScopedLibrary, 0, len(managed)+len(unmanaged))
	libraries = append(libraries, managed...)
	libraries = append(libraries, unmanaged...)

	o.logger.Info("extraction complete",
		interfaces.F("project", project.Name),
		interfaces.F("managed", len(managed)),
		interfaces.F("unmanaged", len(unmanaged)))

	return &ExtractionResult{
		Project:        project,
		Libraries:      libraries,
		ManagedCount:   len(managed),
		UnmanagedCount: len(unmanaged),
		Duration:       time.Since(start),
	}, nil
}

// ExtractClassified runs the flat classifier extraction: the update report is
// converted directly into libraries carrying sources/javadoc archives,
// regardless of scope.
func (o *ExtractionOrchestrator) ExtractClassified(ctx context.Context, project entities.ProjectRef) ([]entities.Library, error) {
	value, err := o.evaluator.Evaluate(ctx, gateways.TaskUpdateClassifiers, project)
	if err != nil {
		return nil, fmt.Errorf("evaluating task %q: %w", gateways.TaskUpdateClassifiers, err)
	}
	report, ok := value.(*entities.UpdateReport)
	if !ok {
		return nil, fmt.Errorf("task %q returned %T, want *entities.UpdateReport", gateways.TaskUpdateClassifiers, value)
	}

	classifiers := o.classifiers
	if !classifiers.Enabled() {
		classifiers = entities.DefaultClassifiers()
	}
	return services.ExtractClassifiedLibraries(report, classifiers), nil
}

// classpathReport evaluates the mandatory classpath listing task
func (o *ExtractionOrchestrator) classpathReport(ctx context.Context, project entities.ProjectRef) (*entities.ClasspathReport, error) {
	value, err := o.evaluator.Evaluate(ctx, gateways.TaskDependencyClasspath, project)
	if err != nil {
		return nil, fmt.Errorf("evaluating task %q: %w", gateways.TaskDependencyClasspath, err)
	}
	report, ok := value.(*entities.ClasspathReport)
	if !ok {
		return nil, fmt.Errorf("task %q returned %T, want *entities.ClasspathReport", gateways.TaskDependencyClasspath, value)
	}
	return report, nil
}

// managedLibraries runs the soft managed step: an unevaluable update report
// yields no managed libraries instead of failing the extraction.
func (o *ExtractionOrchestrator) managedLibraries(ctx context.Context, project entities.ProjectRef, classpath *entities.ClasspathReport) []entities.ScopedLibrary {
	value, err := o.evaluator.Evaluate(ctx, gateways.TaskUpdate, project)
	if err != nil {
		o.logger.Warn("update report unavailable, skipping managed libraries",
			interfaces.F("task", string(gateways.TaskUpdate)),
			interfaces.F("project", project.Name),
			interfaces.F("error", err.Error()))
		return nil
	}
	update, ok := value.(*entities.UpdateReport)
	if !ok {
		o.logger.Warn("update task returned unexpected value, skipping managed libraries",
			interfaces.F("task", string(gateways.TaskUpdate)),
			interfaces.F("type", fmt.Sprintf("%T", value)))
		return nil
	}

	refs := o.normalizer.ManagedLibraries(update, classpath)

	if len(refs) > 0 && o.classifiers.Enabled() {
		if classified := o.classifierReport(ctx, project); classified != nil {
			refs = o.normalizer.MergeClassifierReport(refs, classified)
		}
	}
	return refs
}

// classifierReport evaluates the soft classifier-augmented update task
func (o *ExtractionOrchestrator) classifierReport(ctx context.Context, project entities.ProjectRef) *entities.UpdateReport {
	value, err := o.evaluator.Evaluate(ctx, gateways.TaskUpdateClassifiers, project)
	if err != nil {
		o.logger.Warn("classifier report unavailable, skipping sources/javadoc merge",
			interfaces.F("task", string(gateways.TaskUpdateClassifiers)),
			interfaces.F("project", project.Name),
			interfaces.F("error", err.Error()))
		return nil
	}
	report, ok := value.(*entities.UpdateReport)
	if !ok {
		o.logger.Warn("classifier task returned unexpected value, skipping merge",
			interfaces.F("task", string(gateways.TaskUpdateClassifiers)),
			interfaces.F("type", fmt.Sprintf("%T", value)))
		return nil
	}
	return report
}
