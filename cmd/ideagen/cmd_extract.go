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
	"gopkg.in/yaml.v3"
)

// libraryOutput is the serialized form of one extracted library reference
type libraryOutput struct {
	Scope         string   `yaml:"scope"`
	Configuration string   `yaml:"configuration"`
	Name          string   `yaml:"name"`
	Managed       bool     `yaml:"managed"`
	Classes       []string `yaml:"classes"`
	Sources       []string `yaml:"sources,omitempty"`
	Javadocs      []string `yaml:"javadocs,omitempty"`
}

// extractOutput is the serialized result of an extraction run
type extractOutput struct {
	Project      string          `yaml:"project"`
	ScalaVersion string          `yaml:"scala_version,omitempty"`
	Libraries    []libraryOutput `yaml:"libraries"`
}

func runExtract(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("extract", flag.ExitOnError)
	var (
		configFile    = fs.String("config", "", "Path to settings file (default: ./ideagen.yml if present)")
		reportsDir    = fs.String("reports-dir", "", "Directory holding per-project report dumps")
		scalaVersion  = fs.String("scala-version", "", "Toolchain version for cross-version name rewriting")
		output        = fs.String("output", "", "Output file (default: stdout)")
		noClassifiers = fs.Bool("no-classifiers", false, "Skip the sources/javadoc classifier merge step")
	)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: ideagen extract <project> [options]

Extract the deduplicated, scope-tagged library references for a project from
its build-report dumps.

Examples:
  ideagen extract server
  ideagen extract server --scala-version 2.10.4 --output server-libraries.yml
  ideagen extract server --reports-dir target/ideagen-reports --no-classifiers

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
	if *scalaVersion != "" {
		settings.ScalaVersion = *scalaVersion
	}

	classifiers := entities.ClassifierSpec{
		Sources:  settings.SourceClassifiers,
		Javadocs: settings.JavadocClassifiers,
	}
	if *noClassifiers {
		classifiers = entities.ClassifierSpec{}
	}

	logger := logging.NewLogger(settings.LogLevel, settings.LogFormat)
	reportRepo := reportsyaml.NewReportRepository(settings.ReportsDir)
	evaluator := gateways.NewReportTaskEvaluator(reportRepo, logger)

	orchestrator := orchestrators.NewExtractionOrchestrator(
		evaluator,
		gateways.NewFilesystemProber(),
		orchestrators.ExtractionConfig{
			ScalaVersion: settings.ScalaVersion,
			Classifiers:  classifiers,
		},
		logger,
	)

	result, err := orchestrator.Extract(ctx, project)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	out := extractOutput{
		Project:      project.Name,
		ScalaVersion: settings.ScalaVersion,
		Libraries:    make([]libraryOutput, 0, len(result.Libraries)),
	}
	for _, ref := range result.Libraries {
		out.Libraries = append(out.Libraries, libraryOutput{
			Scope:         string(ref.Scope),
			Configuration: ref.Configuration,
			Name:          ref.Library.Name,
			Managed:       ref.Module != nil,
			Classes:       ref.Library.Classes,
			Sources:       ref.Library.Sources,
			Javadocs:      ref.Library.Javadocs,
		})
	}

	if err := writeYAML(*output, out); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "Extracted %d libraries (%d managed, %d unmanaged) in %v\n",
		len(result.Libraries), result.ManagedCount, result.UnmanagedCount, result.Duration)
}

// writeYAML marshals a value to the named file, or stdout when path is empty
func writeYAML(path string, value interface{}) error {
	data, err := yaml.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}

	if path == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
