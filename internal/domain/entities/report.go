package entities

// UpdateReport is the resolved-dependency-graph result of running dependency
// resolution, grouped by build configuration.
type UpdateReport struct {
	Configurations []ConfigurationReport
}

// ConfigurationReport holds the modules resolved for one configuration
type ConfigurationReport struct {
	Name    string
	Modules []ModuleReport
}

// ModuleReport pairs a resolved module with its artifact locations
type ModuleReport struct {
	Module    ModuleID
	Artifacts []ResolvedArtifact
}

// Configuration returns the report for the named configuration, or nil
func (r *UpdateReport) Configuration(name string) *ConfigurationReport {
	for i := range r.Configurations {
		if r.Configurations[i].Name == name {
			return &r.Configurations[i]
		}
	}
	return nil
}

// FindModule returns the module report with exactly the given coordinates, or nil
func (c *ConfigurationReport) FindModule(id ModuleID) *ModuleReport {
	for i := range c.Modules {
		if c.Modules[i].Module.Equal(id) {
			return &c.Modules[i]
		}
	}
	return nil
}

// ClasspathReport lists the entries actually present on each configuration's
// classpath. Entries resolved by dependency management carry their module
// coordinates; unmanaged entries do not.
type ClasspathReport struct {
	Configurations []ClasspathConfiguration
}

// ClasspathConfiguration holds one configuration's classpath entries
type ClasspathConfiguration struct {
	Name    string
	Entries []ClasspathEntry
}

// ClasspathEntry is a single classpath element. Module is nil for unmanaged
// entries (files placed on the classpath outside dependency resolution).
type ClasspathEntry struct {
	Path   string
	Module *ModuleID
}

// Configuration returns the listing for the named configuration, or nil
func (r *ClasspathReport) Configuration(name string) *ClasspathConfiguration {
	for i := range r.Configurations {
		if r.Configurations[i].Name == name {
			return &r.Configurations[i]
		}
	}
	return nil
}

// Managed returns the entries that carry module coordinates
func (c *ClasspathConfiguration) Managed() []ClasspathEntry {
	var entries []ClasspathEntry
	for _, e := range c.Entries {
		if e.Module != nil {
			entries = append(entries, e)
		}
	}
	return entries
}

// Unmanaged returns the entries without module coordinates
func (c *ClasspathConfiguration) Unmanaged() []ClasspathEntry {
	var entries []ClasspathEntry
	for _, e := range c.Entries {
		if e.Module == nil {
			entries = append(entries, e)
		}
	}
	return entries
}
