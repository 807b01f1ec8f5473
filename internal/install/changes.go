package install

import (
	"fmt"
	"path/filepath"

	"github.com/bloomreach-forge/addonctl/internal/messages"
	"github.com/bloomreach-forge/addonctl/internal/pomfile"
	"github.com/bloomreach-forge/addonctl/internal/project"
)

// change is one file-scoped edit. The two variants, dependency and property
// edits, each carry their own apply-to-text behavior and are dispatched by
// the edit set.
type change interface {
	file() string
	apply(text string) (string, []Change, error)
}

// dependencyUpsert inserts a dependency block or, when the coordinates are
// already declared, rewrites the declared version expression.
type dependencyUpsert struct {
	DependencyChange
}

func (c dependencyUpsert) file() string { return c.File }

func (c dependencyUpsert) apply(text string) (string, []Change, error) {
	if pomfile.ContainsDependency(text, c.GroupID, c.ArtifactID) {
		old := pomfile.DeclaredVersion(text, c.GroupID, c.ArtifactID)
		if old == c.Version {
			return text, nil, nil
		}
		updated, ok := pomfile.UpdateDependencyVersion(text, c.GroupID, c.ArtifactID, c.Version)
		if !ok {
			return text, nil, fmt.Errorf(messages.ChangeUpdateDependencyFailedFmt, c.GroupID, c.ArtifactID, c.File)
		}
		return updated, []Change{{
			Kind: ChangeUpdatedDependency, File: c.File,
			GroupID: c.GroupID, ArtifactID: c.ArtifactID,
			Old: old, New: c.Version,
		}}, nil
	}
	updated, ok := pomfile.InsertDependency(text, pomfile.Dependency{
		GroupID:    c.GroupID,
		ArtifactID: c.ArtifactID,
		Version:    c.Version,
		Scope:      c.Scope,
	})
	if !ok {
		return text, nil, fmt.Errorf(messages.ChangeNoDependenciesSectionFmt, c.File)
	}
	return updated, []Change{{
		Kind: ChangeAddedDependency, File: c.File,
		GroupID: c.GroupID, ArtifactID: c.ArtifactID,
		New: c.Version,
	}}, nil
}

// dependencyRemove deletes every declaration of the coordinates from its
// target file. Absent coordinates are a no-op; the orchestration decides
// whether that warrants a warning.
type dependencyRemove struct {
	targetFile string
	groupID    string
	artifactID string
}

func (c dependencyRemove) file() string { return c.targetFile }

func (c dependencyRemove) apply(text string) (string, []Change, error) {
	old := pomfile.DeclaredVersion(text, c.groupID, c.artifactID)
	updated, ok := pomfile.RemoveDependency(text, c.groupID, c.artifactID)
	if !ok {
		return text, nil, nil
	}
	return updated, []Change{{
		Kind: ChangeRemovedDependency, File: c.targetFile,
		GroupID: c.groupID, ArtifactID: c.artifactID,
		Old: old,
	}}, nil
}

// dependencyCollapse removes all but the first declaration of the
// coordinates within its target file.
type dependencyCollapse struct {
	targetFile string
	groupID    string
	artifactID string
}

func (c dependencyCollapse) file() string { return c.targetFile }

func (c dependencyCollapse) apply(text string) (string, []Change, error) {
	updated, removed := pomfile.CollapseDuplicateDependencies(text, c.groupID, c.artifactID)
	if removed == 0 {
		return text, nil, nil
	}
	return updated, []Change{{
		Kind: ChangeRemovedDependency, File: c.targetFile,
		GroupID: c.groupID, ArtifactID: c.artifactID,
		Old: fmt.Sprintf(messages.ChangeDuplicateCountFmt, removed),
	}}, nil
}

// propertySet creates or updates a property entry in its target file.
type propertySet struct {
	PropertyChange
}

func (c propertySet) file() string { return c.File }

func (c propertySet) apply(text string) (string, []Change, error) {
	props := pomfile.ExtractProperties(text)
	old, exists := props[c.Name]
	if exists && old == c.Value {
		return text, nil, nil
	}
	updated, ok := pomfile.SetProperty(text, c.Name, c.Value)
	if !ok {
		return text, nil, fmt.Errorf(messages.ChangeNoPropertiesSectionFmt, c.File)
	}
	kind := ChangeAddedProperty
	if exists {
		kind = ChangeUpdatedProperty
	}
	return updated, []Change{{
		Kind: kind, File: c.File, Property: c.Name,
		Old: old, New: c.Value,
	}}, nil
}

// propertyRemove deletes a property entry. Absent entries are a no-op.
type propertyRemove struct {
	targetFile string
	name       string
}

func (c propertyRemove) file() string { return c.targetFile }

func (c propertyRemove) apply(text string) (string, []Change, error) {
	old := pomfile.ExtractProperties(text)[c.name]
	updated, ok := pomfile.RemoveProperty(text, c.name)
	if !ok {
		return text, nil, nil
	}
	return updated, []Change{{
		Kind: ChangeRemovedProperty, File: c.targetFile, Property: c.name,
		Old: old,
	}}, nil
}

// editSet accumulates in-memory text edits across files before the
// transactional write, so a failing change leaves no file touched.
type editSet struct {
	sys      System
	root     string
	original map[string]string
	texts    map[string]string
	changes  []Change
}

func newEditSet(sys System, root string) *editSet {
	return &editSet{
		sys:      sys,
		root:     root,
		original: make(map[string]string),
		texts:    make(map[string]string),
	}
}

// load returns the current working text for a scan-set relative path,
// reading the file on first access.
func (e *editSet) load(rel string) (string, error) {
	if text, ok := e.texts[rel]; ok {
		return text, nil
	}
	raw, err := e.sys.ReadFile(filepath.Join(e.root, filepath.FromSlash(rel)))
	if err != nil {
		return "", fmt.Errorf(messages.ChangeReadFileFailedFmt, rel, err)
	}
	text := string(raw)
	e.original[rel] = text
	e.texts[rel] = text
	return text, nil
}

// contains reports whether the working text of rel declares the coordinates.
// Missing files read as empty.
func (e *editSet) contains(rel string, groupID string, artifactID string) bool {
	text, err := e.load(rel)
	if err != nil {
		return false
	}
	return pomfile.ContainsDependency(text, groupID, artifactID)
}

// apply dispatches one change against its target file's working text.
func (e *editSet) apply(c change) error {
	text, err := e.load(c.file())
	if err != nil {
		return err
	}
	updated, applied, err := c.apply(text)
	if err != nil {
		return err
	}
	e.texts[c.file()] = updated
	e.changes = append(e.changes, applied...)
	return nil
}

// dirty returns the files whose working text differs from disk, in scan-set
// order.
func (e *editSet) dirty() map[string]string {
	out := make(map[string]string)
	for _, rel := range project.ScanSet() {
		text, ok := e.texts[rel]
		if ok && text != e.original[rel] {
			out[rel] = text
		}
	}
	return out
}
