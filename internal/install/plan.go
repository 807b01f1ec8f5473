package install

import (
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/bloomreach-forge/addonctl/internal/addon"
	"github.com/bloomreach-forge/addonctl/internal/pomfile"
	"github.com/bloomreach-forge/addonctl/internal/project"
)

// DependencyChange is one planned dependency edit, bound to a target file.
// Version is the expression to declare, normally a reference to
// VersionProperty.
type DependencyChange struct {
	File            string
	GroupID         string
	ArtifactID      string
	Version         string
	VersionProperty string
	Scope           string
}

// PropertyChange is one planned property edit, bound to a target file.
type PropertyChange struct {
	File  string
	Name  string
	Value string
}

// Plan is the ordered, declarative edit set for one operation. Plans are pure
// data, computed fresh per operation and never persisted.
type Plan struct {
	AddonID           string
	DependencyChanges []DependencyChange
	PropertyChanges   []PropertyChange
}

// buildPlan computes the edit plan for an addon: exactly one version property
// change against the root POM plus one dependency change per installable
// artifact. Artifacts with an unmapped or missing target are skipped with a
// warning, never silently misplaced.
func buildPlan(a *addon.Addon, logger *log.Logger) Plan {
	property := addon.VersionProperty(a.ID)
	plan := Plan{
		AddonID: a.ID,
		PropertyChanges: []PropertyChange{
			{File: project.RootPom, Name: property, Value: a.Version},
		},
	}
	for _, artifact := range a.LibraryArtifacts() {
		if !artifact.IsInstallable() {
			logger.Warn("skipping artifact without target or coordinates",
				"addon", a.ID, "groupId", artifact.GroupID, "artifactId", artifact.ArtifactID)
			continue
		}
		file, ok := project.FileForTarget(artifact.Target)
		if !ok {
			logger.Warn("skipping artifact with unmapped target",
				"addon", a.ID, "target", artifact.Target,
				"groupId", artifact.GroupID, "artifactId", artifact.ArtifactID)
			continue
		}
		plan.DependencyChanges = append(plan.DependencyChanges, DependencyChange{
			File:            file,
			GroupID:         artifact.GroupID,
			ArtifactID:      artifact.ArtifactID,
			Version:         "${" + property + "}",
			VersionProperty: property,
			Scope:           artifact.Scope,
		})
	}
	return plan
}

// resolveExistingProperty checks whether a dependency the plan touches is
// already declared against a version property other than the addon's
// canonical one. If so, the plan is rewritten to reuse that property so
// upgrades and uninstalls never leave a second, orphaned property behind.
func resolveExistingProperty(sys System, root string, plan *Plan) {
	canonical := addon.VersionProperty(plan.AddonID)
	for _, change := range plan.DependencyChanges {
		raw, err := sys.ReadFile(filepath.Join(root, filepath.FromSlash(change.File)))
		if err != nil {
			continue
		}
		declared := pomfile.DeclaredVersion(string(raw), change.GroupID, change.ArtifactID)
		ref := pomfile.PropertyRef(declared)
		if ref == "" || ref == canonical {
			continue
		}
		for i := range plan.PropertyChanges {
			if plan.PropertyChanges[i].Name == canonical {
				plan.PropertyChanges[i].Name = ref
			}
		}
		for i := range plan.DependencyChanges {
			if plan.DependencyChanges[i].VersionProperty == canonical {
				plan.DependencyChanges[i].VersionProperty = ref
				plan.DependencyChanges[i].Version = "${" + ref + "}"
			}
		}
		return
	}
}
