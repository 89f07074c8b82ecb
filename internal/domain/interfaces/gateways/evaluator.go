// Package gateways defines contracts for external build-tool capabilities.
package gateways

import (
	"context"
	"errors"

	"github.com/ochairo/ideagen/internal/domain/entities"
)

// TaskKey identifies a build-tool task understood by the evaluator
type TaskKey string

// Tasks the extractor evaluates against the build graph
const (
	TaskUpdate              TaskKey = "update"
	TaskUpdateClassifiers   TaskKey = "update-classifiers"
	TaskDependencyClasspath TaskKey = "dependency-classpath"
)

// ErrTaskNotFound signals that the build graph does not define the task
var ErrTaskNotFound = errors.New("task not found")

// TaskEvaluator executes a named task within the build graph's current state
// and returns its computed value. Evaluation may trigger actual dependency
// resolution as a side effect; that is entirely the build tool's concern.
// The evaluator never retries or caches.
type TaskEvaluator interface {
	Evaluate(ctx context.Context, task TaskKey, project entities.ProjectRef) (interface{}, error)
}
