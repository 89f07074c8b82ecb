// Package entities defines core domain models and data structures.
package entities

// Scope identifies the IDE visibility bucket a library belongs to
type Scope string

// IDE library scopes
const (
	ScopeCompile  Scope = "compile"
	ScopeRuntime  Scope = "runtime"
	ScopeTest     Scope = "test"
	ScopeProvided Scope = "provided"
)
