package entities

import "testing"

func TestLibrary_Equal(t *testing.T) {
	base := Library{
		Name:    "org_lib_1.0",
		Classes: []string{"/cache/lib-1.0.jar"},
		Sources: []string{"/cache/lib-1.0-sources.jar"},
	}

	tests := []struct {
		name  string
		other Library
		want  bool
	}{
		{
			name:  "identical",
			other: Library{Name: "org_lib_1.0", Classes: []string{"/cache/lib-1.0.jar"}, Sources: []string{"/cache/lib-1.0-sources.jar"}},
			want:  true,
		},
		{
			name:  "different name",
			other: Library{Name: "org_lib_1.1", Classes: []string{"/cache/lib-1.0.jar"}, Sources: []string{"/cache/lib-1.0-sources.jar"}},
			want:  false,
		},
		{
			name:  "different classes",
			other: Library{Name: "org_lib_1.0", Classes: []string{"/other/lib-1.0.jar"}, Sources: []string{"/cache/lib-1.0-sources.jar"}},
			want:  false,
		},
		{
			name:  "missing sources",
			other: Library{Name: "org_lib_1.0", Classes: []string{"/cache/lib-1.0.jar"}},
			want:  false,
		},
		{
			name: "extra javadoc",
			other: Library{
				Name:     "org_lib_1.0",
				Classes:  []string{"/cache/lib-1.0.jar"},
				Sources:  []string{"/cache/lib-1.0-sources.jar"},
				Javadocs: []string{"/cache/lib-1.0-javadoc.jar"},
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Equal(tt.other); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestModuleID_Key(t *testing.T) {
	id := ModuleID{Organization: "org", Name: "lib", Revision: "1.0"}
	if got := id.Key(); got != "org_lib_1.0" {
		t.Errorf("Key() = %q, want %q", got, "org_lib_1.0")
	}
}

func TestModuleID_Equal(t *testing.T) {
	a := ModuleID{Organization: "org", Name: "lib", Revision: "1.0"}

	if !a.Equal(ModuleID{Organization: "org", Name: "lib", Revision: "1.0"}) {
		t.Error("identical coordinates should be equal")
	}
	if a.Equal(ModuleID{Organization: "org", Name: "lib", Revision: "2.0"}) {
		t.Error("different revisions should not be exactly equal")
	}
	if a.Equal(ModuleID{Organization: "org", Name: "lib_2.10", Revision: "1.0"}) {
		t.Error("exact equality must not apply cross-version rewriting")
	}
}

func TestClassifierSpec_RoleOf(t *testing.T) {
	spec := DefaultClassifiers()

	tests := []struct {
		classifier string
		want       ArtifactRole
	}{
		{"", RoleClasses},
		{"sources", RoleSources},
		{"javadoc", RoleJavadoc},
		{"tests", RoleUnknown},
		{"native", RoleUnknown},
	}

	for _, tt := range tests {
		if got := spec.RoleOf(tt.classifier); got != tt.want {
			t.Errorf("RoleOf(%q) = %v, want %v", tt.classifier, got, tt.want)
		}
	}
}

func TestClassifierSpec_Enabled(t *testing.T) {
	if (ClassifierSpec{}).Enabled() {
		t.Error("empty spec should be disabled")
	}
	if !(ClassifierSpec{Sources: []string{"sources"}}).Enabled() {
		t.Error("spec with sources should be enabled")
	}
	if !(ClassifierSpec{Javadocs: []string{"javadoc"}}).Enabled() {
		t.Error("spec with javadocs should be enabled")
	}
}
