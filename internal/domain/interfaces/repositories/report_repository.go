// Package repositories defines contracts for loading dumped build reports.
package repositories

import (
	"context"

	"github.com/ochairo/ideagen/internal/domain/entities"
)

// ReportRepository loads the report dumps the host build tool writes for a
// project: the update report, its classifier-augmented variant, and the
// per-configuration classpath listing.
type ReportRepository interface {
	GetUpdateReport(ctx context.Context, project string) (*entities.UpdateReport, error)
	GetClassifierReport(ctx context.Context, project string) (*entities.UpdateReport, error)
	GetClasspathReport(ctx context.Context, project string) (*entities.ClasspathReport, error)
}
