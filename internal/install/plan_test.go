package install

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bloomreach-forge/addonctl/internal/addon"
	"github.com/bloomreach-forge/addonctl/internal/project"
)

func discardLogger() *log.Logger {
	return log.New(io.Discard)
}

func TestBuildPlan(t *testing.T) {
	plan := buildPlan(brutAddon(), discardLogger())

	assert.Equal(t, "brut", plan.AddonID)
	require.Len(t, plan.PropertyChanges, 1)
	assert.Equal(t, PropertyChange{File: project.RootPom, Name: "brut.version", Value: "4.0.2"}, plan.PropertyChanges[0])

	require.Len(t, plan.DependencyChanges, 1)
	assert.Equal(t, DependencyChange{
		File:            project.CmsPom,
		GroupID:         "org.bloomreach.forge",
		ArtifactID:      "brut-common",
		Version:         "${brut.version}",
		VersionProperty: "brut.version",
	}, plan.DependencyChanges[0])
}

func TestBuildPlan_SkipsUnusableArtifacts(t *testing.T) {
	a := &addon.Addon{
		ID:      "mixed",
		Version: "1.0",
		Artifacts: []addon.Artifact{
			{Type: addon.TypeModule, Target: "cms", GroupID: "g", ArtifactID: "module-only"},
			{Type: addon.TypeLibrary, Target: "nowhere", GroupID: "g", ArtifactID: "unmapped"},
			{Type: addon.TypeLibrary, GroupID: "g", ArtifactID: "no-target"},
			{Type: addon.TypeLibrary, Target: "site/webapp", GroupID: "g", ArtifactID: "kept", Scope: "provided"},
		},
	}
	plan := buildPlan(a, discardLogger())

	require.Len(t, plan.DependencyChanges, 1)
	assert.Equal(t, "kept", plan.DependencyChanges[0].ArtifactID)
	assert.Equal(t, project.SiteWebappPom, plan.DependencyChanges[0].File)
	assert.Equal(t, "provided", plan.DependencyChanges[0].Scope)
}

func TestResolveExistingProperty(t *testing.T) {
	root := writeProject(t, map[string]string{
		project.CmsPom: `<project>
  <dependencies>
    <dependency>
      <groupId>org.bloomreach.forge</groupId>
      <artifactId>brut-common</artifactId>
      <version>${custom.prop}</version>
    </dependency>
  </dependencies>
</project>
`,
	})
	plan := buildPlan(brutAddon(), discardLogger())

	resolveExistingProperty(RealSystem{}, root, &plan)

	assert.Equal(t, "custom.prop", plan.PropertyChanges[0].Name)
	assert.Equal(t, "4.0.2", plan.PropertyChanges[0].Value)
	assert.Equal(t, "${custom.prop}", plan.DependencyChanges[0].Version)
	assert.Equal(t, "custom.prop", plan.DependencyChanges[0].VersionProperty)
}

func TestResolveExistingProperty_CanonicalReferenceUnchanged(t *testing.T) {
	root := writeProject(t, map[string]string{
		project.CmsPom: `<project>
  <dependencies>
    <dependency>
      <groupId>org.bloomreach.forge</groupId>
      <artifactId>brut-common</artifactId>
      <version>${brut.version}</version>
    </dependency>
  </dependencies>
</project>
`,
	})
	plan := buildPlan(brutAddon(), discardLogger())

	resolveExistingProperty(RealSystem{}, root, &plan)

	assert.Equal(t, "brut.version", plan.PropertyChanges[0].Name)
	assert.Equal(t, "${brut.version}", plan.DependencyChanges[0].Version)
}

func TestResolveExistingProperty_LiteralVersionUnchanged(t *testing.T) {
	root := writeProject(t, map[string]string{
		project.CmsPom: `<project>
  <dependencies>
    <dependency>
      <groupId>org.bloomreach.forge</groupId>
      <artifactId>brut-common</artifactId>
      <version>4.0.1</version>
    </dependency>
  </dependencies>
</project>
`,
	})
	plan := buildPlan(brutAddon(), discardLogger())

	resolveExistingProperty(RealSystem{}, root, &plan)

	assert.Equal(t, "brut.version", plan.PropertyChanges[0].Name)
	assert.Equal(t, "${brut.version}", plan.DependencyChanges[0].Version)
}
