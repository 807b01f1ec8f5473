package addon

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArtifactIsInstallable(t *testing.T) {
	tests := []struct {
		name     string
		artifact Artifact
		want     bool
	}{
		{
			name:     "library with target and coordinates",
			artifact: Artifact{Type: TypeLibrary, Target: "cms", GroupID: "g", ArtifactID: "a"},
			want:     true,
		},
		{
			name:     "module artifact",
			artifact: Artifact{Type: TypeModule, Target: "cms", GroupID: "g", ArtifactID: "a"},
			want:     false,
		},
		{
			name:     "missing target",
			artifact: Artifact{Type: TypeLibrary, GroupID: "g", ArtifactID: "a"},
			want:     false,
		},
		{
			name:     "missing group id",
			artifact: Artifact{Type: TypeLibrary, Target: "cms", ArtifactID: "a"},
			want:     false,
		},
		{
			name:     "missing artifact id",
			artifact: Artifact{Type: TypeLibrary, Target: "cms", GroupID: "g"},
			want:     false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.artifact.IsInstallable())
		})
	}
}

func TestLibraryArtifacts(t *testing.T) {
	a := &Addon{
		ID: "mixed",
		Artifacts: []Artifact{
			{Type: TypeLibrary, Target: "cms", GroupID: "g", ArtifactID: "lib"},
			{Type: TypeModule, GroupID: "g", ArtifactID: "mod"},
			{Type: TypeLibrary, GroupID: "g", ArtifactID: "lib-no-target"},
		},
	}
	libs := a.LibraryArtifacts()
	assert.Len(t, libs, 2)
	assert.Equal(t, "lib", libs[0].ArtifactID)
	assert.Equal(t, "lib-no-target", libs[1].ArtifactID)
}

func TestVersionProperty(t *testing.T) {
	assert.Equal(t, "brut.version", VersionProperty("brut"))
}

func TestErrorString(t *testing.T) {
	err := NewError(CodeAddonNotFound, "addon %q is not in the catalog", "brut")
	assert.Equal(t, CodeAddonNotFound, err.Code)
	assert.Equal(t, `ADDON_NOT_FOUND: addon "brut" is not in the catalog`, err.Error())
}
