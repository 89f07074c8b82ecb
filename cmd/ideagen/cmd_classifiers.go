package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/ochairo/ideagen/internal/domain-adapters/gateways"
	orchestrators "github.com/ochairo/ideagen/internal/domain-orchestrators"
	"github.com/ochairo/ideagen/internal/domain/entities"
	"github.com/ochairo/ideagen/internal/external-adapters/logging"
	reportsyaml "github.com/ochairo/ideagen/internal/external-adapters/yaml"
)

// classifiedOutput is the serialized form of one sources/javadoc library
type classifiedOutput struct {
	Name     string   `yaml:"name"`
	Sources  []string `yaml:"sources,omitempty"`
	Javadocs []string `yaml:"javadocs,omitempty"`
}

func runClassifiers(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("classifiers", flag.ExitOnError)
	var (
		configFile = fs.String("config", "", "Path to settings file (default: ./ideagen.yml if present)")
		reportsDir = fs.String("reports-dir", "", "Directory holding per-project report dumps")
		output     = fs.String("output", "", "Output file (default: stdout)")
	)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: ideagen classifiers <project> [options]

Extract sources/javadoc libraries from a project's classifier report,
regardless of configuration scope.

Options:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing flags: %v\n", err)
		os.Exit(1)
	}

	if fs.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Error: project name is required\n\n")
		fs.Usage()
		os.Exit(1)
	}
	project := entities.ProjectRef{Name: fs.Arg(0)}

	settings, err := loadSettings(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *reportsDir != "" {
		settings.ReportsDir = *reportsDir
	}

	logger := logging.NewLogger(settings.LogLevel, settings.LogFormat)
	reportRepo := reportsyaml.NewReportRepository(settings.ReportsDir)
	evaluator := gateways.NewReportTaskEvaluator(reportRepo, logger)

	orchestrator := orchestrators.NewExtractionOrchestrator(
		evaluator,
		gateways.NewFilesystemProber(),
		orchestrators.ExtractionConfig{
			ScalaVersion: settings.ScalaVersion,
			Classifiers: entities.ClassifierSpec{
				Sources:  settings.SourceClassifiers,
				Javadocs: settings.JavadocClassifiers,
			},
		},
		logger,
	)

	libraries, err := orchestrator.ExtractClassified(ctx, project)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	out := make([]classifiedOutput, 0, len(libraries))
	for _, lib := range libraries {
		out = append(out, classifiedOutput{
			Name:     lib.Name,
			Sources:  lib.Sources,
			Javadocs: lib.Javadocs,
		})
	}

	if err := writeYAML(*output, out); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
