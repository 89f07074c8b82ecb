package entities

import "fmt"

// ModuleID identifies a resolved dependency by its coordinates
type ModuleID struct {
	Organization string
	Name         string
	Revision     string
}

// Key returns the composite identity used as a managed library name
func (m ModuleID) Key() string {
	return fmt.Sprintf("%s_%s_%s", m.Organization, m.Name, m.Revision)
}

// Equal reports exact coordinate equality, with no cross-version rewriting
func (m ModuleID) Equal(other ModuleID) bool {
	return m.Organization == other.Organization &&
		m.Name == other.Name &&
		m.Revision == other.Revision
}
