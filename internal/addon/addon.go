// Package addon defines the catalog data model shared by the installation
// engine: addon records, their artifacts, historical version epochs, and the
// catalog lookup interface the engine is constructed with.
package addon

// ArtifactType distinguishes Maven library artifacts, which participate in
// POM editing, from non-Maven module artifacts, which do not.
type ArtifactType string

const (
	// TypeLibrary marks a Maven library artifact.
	TypeLibrary ArtifactType = "library"
	// TypeModule marks a non-Maven module artifact.
	TypeModule ArtifactType = "module"
)

// Artifact is one unit of an addon: a type, an optional placement target, an
// optional Maven scope, and Maven coordinates.
type Artifact struct {
	Type       ArtifactType
	Target     string
	Scope      string
	GroupID    string
	ArtifactID string
}

// IsInstallable reports whether the artifact participates in POM editing.
// Non-library artifacts and artifacts missing a target or coordinates are
// inert for installation purposes.
func (a Artifact) IsInstallable() bool {
	return a.Type == TypeLibrary && a.Target != "" && a.GroupID != "" && a.ArtifactID != ""
}

// VersionEpoch is a historical snapshot of an addon's artifact list. Epochs
// are consulted only for misconfiguration tolerance: an installed artifact
// satisfying any epoch's expected placement is considered correctly placed.
type VersionEpoch struct {
	Version   string
	Artifacts []Artifact
}

// Addon is a catalog entry describing an installable bundle of artifacts.
// Addons are owned by the catalog and treated as immutable by the engine
// within one operation.
type Addon struct {
	ID        string
	Version   string
	Artifacts []Artifact
	Epochs    []VersionEpoch
}

// LibraryArtifacts returns the addon's installable artifacts in declaration
// order.
func (a *Addon) LibraryArtifacts() []Artifact {
	var out []Artifact
	for _, artifact := range a.Artifacts {
		if artifact.Type == TypeLibrary {
			out = append(out, artifact)
		}
	}
	return out
}

// VersionProperty returns the canonical version property name for an addon.
func VersionProperty(addonID string) string {
	return addonID + ".version"
}

// Catalog resolves addon ids to their full metadata. Implementations are
// external collaborators; the engine never mutates what they return.
type Catalog interface {
	FindByID(id string) (*Addon, bool)
	FindAll() []*Addon
	Filter(keep func(*Addon) bool) []*Addon
}
