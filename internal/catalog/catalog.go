// Package catalog provides a directory-backed addon catalog: one YAML
// descriptor file per addon. It is the collaborator implementation handed to
// the installation engine; the engine itself only sees the addon.Catalog
// interface.
package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/bloomreach-forge/addonctl/internal/addon"
	"github.com/bloomreach-forge/addonctl/internal/messages"
)

// descriptor is the on-disk YAML shape of one addon.
type descriptor struct {
	ID        string               `yaml:"id"`
	Version   string               `yaml:"version"`
	Artifacts []artifactDescriptor `yaml:"artifacts"`
	History   []epochDescriptor    `yaml:"history"`
}

type artifactDescriptor struct {
	Type       string `yaml:"type"`
	Target     string `yaml:"target"`
	Scope      string `yaml:"scope"`
	GroupID    string `yaml:"groupId"`
	ArtifactID string `yaml:"artifactId"`
}

type epochDescriptor struct {
	Version   string               `yaml:"version"`
	Artifacts []artifactDescriptor `yaml:"artifacts"`
}

// Directory is an addon.Catalog loaded from a directory of YAML descriptors.
type Directory struct {
	addons []*addon.Addon
	byID   map[string]*addon.Addon
}

// Load reads every .yaml/.yml descriptor in dir. Unreadable or invalid
// descriptors are skipped with a warning rather than failing the whole
// catalog; duplicate ids keep the first descriptor in name order.
func Load(dir string, logger *log.Logger) (*Directory, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf(messages.CatalogReadDirFailedFmt, dir, err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	cat := &Directory{byID: make(map[string]*addon.Addon)}
	for _, name := range names {
		path := filepath.Join(dir, name)
		a, err := loadDescriptor(path)
		if err != nil {
			logger.Warn("skipping addon descriptor", "path", path, "error", err)
			continue
		}
		if _, dup := cat.byID[a.ID]; dup {
			logger.Warn("skipping duplicate addon descriptor", "path", path, "addon", a.ID)
			continue
		}
		cat.addons = append(cat.addons, a)
		cat.byID[a.ID] = a
	}
	sort.Slice(cat.addons, func(i, j int) bool { return cat.addons[i].ID < cat.addons[j].ID })
	return cat, nil
}

func loadDescriptor(path string) (*addon.Addon, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var desc descriptor
	if err := yaml.Unmarshal(raw, &desc); err != nil {
		return nil, err
	}
	if strings.TrimSpace(desc.ID) == "" {
		return nil, fmt.Errorf(messages.CatalogDescriptorMissingIDFmt, filepath.Base(path))
	}
	a := &addon.Addon{
		ID:        desc.ID,
		Version:   desc.Version,
		Artifacts: toArtifacts(desc.Artifacts),
	}
	for _, epoch := range desc.History {
		a.Epochs = append(a.Epochs, addon.VersionEpoch{
			Version:   epoch.Version,
			Artifacts: toArtifacts(epoch.Artifacts),
		})
	}
	return a, nil
}

func toArtifacts(descs []artifactDescriptor) []addon.Artifact {
	out := make([]addon.Artifact, 0, len(descs))
	for _, d := range descs {
		artifactType := addon.ArtifactType(d.Type)
		if artifactType == "" {
			artifactType = addon.TypeLibrary
		}
		out = append(out, addon.Artifact{
			Type:       artifactType,
			Target:     d.Target,
			Scope:      d.Scope,
			GroupID:    d.GroupID,
			ArtifactID: d.ArtifactID,
		})
	}
	return out
}

// FindByID returns the addon with the given id.
func (c *Directory) FindByID(id string) (*addon.Addon, bool) {
	a, ok := c.byID[id]
	return a, ok
}

// FindAll returns every addon sorted by id.
func (c *Directory) FindAll() []*addon.Addon {
	out := make([]*addon.Addon, len(c.addons))
	copy(out, c.addons)
	return out
}

// Filter returns the addons for which keep returns true, preserving order.
func (c *Directory) Filter(keep func(*addon.Addon) bool) []*addon.Addon {
	var out []*addon.Addon
	for _, a := range c.addons {
		if keep(a) {
			out = append(out, a)
		}
	}
	return out
}
