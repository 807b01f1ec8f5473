package project

import (
	"path/filepath"
	"sort"

	"github.com/bloomreach-forge/addonctl/internal/addon"
	"github.com/bloomreach-forge/addonctl/internal/pomfile"
)

// Context is the resolved installed state of one project tree. It is rebuilt
// from disk on every resolve and cached by Cache until invalidated.
type Context struct {
	// PlatformVersion is the parent version declared in the root POM.
	PlatformVersion string
	// JavaVersion is taken from the maven.compiler.source property, falling
	// back to java.version.
	JavaVersion string
	// Installed maps addon id to the installed version. The version may be
	// empty when no declaration carried a resolvable version.
	Installed map[string]string
	// Misconfigured maps addon id to its outstanding placement issues.
	Misconfigured map[string][]Issue
	// DependenciesByFile holds every declared dependency per scan-set file.
	DependenciesByFile map[string][]pomfile.Dependency
}

// InstalledIDs returns the installed addon ids in sorted order.
func (c *Context) InstalledIDs() []string {
	ids := make([]string, 0, len(c.Installed))
	for id := range c.Installed {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Resolve scans the project's declaration files and matches declared
// dependencies against the catalog. Missing or unreadable files are skipped;
// scanning is best-effort.
func Resolve(sys System, root string, catalog addon.Catalog) (*Context, error) {
	texts := make(map[string]string)
	props := make(map[string]string)
	depsByFile := make(map[string][]pomfile.Dependency)
	for _, rel := range ScanSet() {
		raw, err := sys.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
		if err != nil {
			continue
		}
		text := string(raw)
		texts[rel] = text
		// Later files override earlier ones on property collisions.
		for name, value := range pomfile.ExtractProperties(text) {
			props[name] = value
		}
		depsByFile[rel] = pomfile.ExtractDependencies(text)
	}

	index := coordinateIndex(catalog)
	installed := make(map[string]string)
	for _, rel := range ScanSet() {
		for _, dep := range depsByFile[rel] {
			id, ok := index[coordKey(dep.GroupID, dep.ArtifactID)]
			if !ok {
				continue
			}
			version := ""
			if dep.Version != "" {
				version = pomfile.ResolveVersion(dep.Version, props)
			}
			existing, seen := installed[id]
			// The first version-bearing occurrence wins; a versionless
			// declaration never overwrites a recorded version.
			if !seen || (existing == "" && version != "") {
				installed[id] = version
			}
		}
	}

	ctx := &Context{
		PlatformVersion:    pomfile.ExtractParentVersion(texts[RootPom]),
		Installed:          installed,
		DependenciesByFile: depsByFile,
	}
	if v, ok := props["maven.compiler.source"]; ok {
		ctx.JavaVersion = v
	} else {
		ctx.JavaVersion = props["java.version"]
	}
	ctx.Misconfigured = Detect(depsByFile, ctx.InstalledIDs(), catalog)
	return ctx, nil
}

// coordinateIndex maps (group, artifact) coordinates to the owning addon id.
// The first addon in catalog order wins on coordinate collisions.
func coordinateIndex(catalog addon.Catalog) map[string]string {
	index := make(map[string]string)
	for _, a := range catalog.FindAll() {
		for _, artifact := range a.LibraryArtifacts() {
			if artifact.GroupID == "" || artifact.ArtifactID == "" {
				continue
			}
			key := coordKey(artifact.GroupID, artifact.ArtifactID)
			if _, ok := index[key]; !ok {
				index[key] = a.ID
			}
		}
	}
	return index
}

func coordKey(groupID string, artifactID string) string {
	return groupID + ":" + artifactID
}
