// Package services implements the dependency-normalization domain logic.
package services

import "github.com/ochairo/ideagen/internal/domain/entities"

// Build configurations recognized by the extractor
const (
	ConfigCompile  = "compile"
	ConfigRuntime  = "runtime"
	ConfigTest     = "test"
	ConfigProvided = "provided"
)

// ConfigurationPriority is the fixed order in which configurations claim
// modules during normalization. A module accepted under an earlier
// configuration is never re-accepted under a later one.
var ConfigurationPriority = []string{ConfigCompile, ConfigRuntime, ConfigTest, ConfigProvided}

// MapConfiguration translates a build configuration name into an IDE scope.
// Unrecognized names fall back to Compile rather than erroring; custom
// configurations are treated as compile-visible.
func MapConfiguration(name string) entities.Scope {
	switch name {
	case ConfigCompile:
		return entities.ScopeCompile
	case ConfigRuntime:
		return entities.ScopeRuntime
	case ConfigTest:
		return entities.ScopeTest
	case ConfigProvided:
		return entities.ScopeProvided
	default:
		return entities.ScopeCompile
	}
}
