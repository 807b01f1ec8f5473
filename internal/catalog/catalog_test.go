package catalog

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bloomreach-forge/addonctl/internal/addon"
)

const brutDescriptor = `id: brut
version: 4.0.2
artifacts:
  - type: library
    target: cms
    groupId: org.bloomreach.forge
    artifactId: brut-common
history:
  - version: 3.0.0
    artifacts:
      - type: library
        target: site/components
        groupId: org.bloomreach.forge
        artifactId: brut-common
`

func writeCatalog(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return dir
}

func TestLoad(t *testing.T) {
	dir := writeCatalog(t, map[string]string{
		"brut.yaml":  brutDescriptor,
		"other.yml":  "id: other\nversion: \"1.0\"\n",
		"notes.txt":  "not a descriptor",
		"README.md":  "ignored",
		"empty.yaml": "id: aardvark\n",
	})

	cat, err := Load(dir, log.New(io.Discard))
	require.NoError(t, err)

	a, ok := cat.FindByID("brut")
	require.True(t, ok)
	assert.Equal(t, "4.0.2", a.Version)
	require.Len(t, a.Artifacts, 1)
	assert.Equal(t, addon.TypeLibrary, a.Artifacts[0].Type)
	assert.Equal(t, "cms", a.Artifacts[0].Target)
	assert.Equal(t, "brut-common", a.Artifacts[0].ArtifactID)
	require.Len(t, a.Epochs, 1)
	assert.Equal(t, "3.0.0", a.Epochs[0].Version)
	assert.Equal(t, "site/components", a.Epochs[0].Artifacts[0].Target)

	ids := make([]string, 0, 3)
	for _, entry := range cat.FindAll() {
		ids = append(ids, entry.ID)
	}
	assert.Equal(t, []string{"aardvark", "brut", "other"}, ids)
}

func TestLoad_MissingDirectory(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope"), log.New(io.Discard))
	assert.Error(t, err)
}

func TestLoad_SkipsInvalidDescriptors(t *testing.T) {
	dir := writeCatalog(t, map[string]string{
		"good.yaml":  "id: good\n",
		"bad.yaml":   "id: [broken\n",
		"no-id.yaml": "version: \"1.0\"\n",
	})

	cat, err := Load(dir, log.New(io.Discard))
	require.NoError(t, err)
	assert.Len(t, cat.FindAll(), 1)
	_, ok := cat.FindByID("good")
	assert.True(t, ok)
}

func TestLoad_DuplicateIDKeepsFirstInNameOrder(t *testing.T) {
	dir := writeCatalog(t, map[string]string{
		"a-first.yaml": "id: dup\nversion: \"1.0\"\n",
		"b-later.yaml": "id: dup\nversion: \"2.0\"\n",
	})

	cat, err := Load(dir, log.New(io.Discard))
	require.NoError(t, err)
	a, ok := cat.FindByID("dup")
	require.True(t, ok)
	assert.Equal(t, "1.0", a.Version)
}

func TestLoad_DefaultsArtifactTypeToLibrary(t *testing.T) {
	dir := writeCatalog(t, map[string]string{
		"a.yaml": "id: a\nartifacts:\n  - target: cms\n    groupId: g\n    artifactId: x\n",
	})

	cat, err := Load(dir, log.New(io.Discard))
	require.NoError(t, err)
	a, ok := cat.FindByID("a")
	require.True(t, ok)
	require.Len(t, a.Artifacts, 1)
	assert.Equal(t, addon.TypeLibrary, a.Artifacts[0].Type)
}

func TestFilter(t *testing.T) {
	dir := writeCatalog(t, map[string]string{
		"a.yaml": "id: a\n",
		"b.yaml": "id: b\n",
	})
	cat, err := Load(dir, log.New(io.Discard))
	require.NoError(t, err)

	kept := cat.Filter(func(a *addon.Addon) bool { return a.ID == "b" })
	require.Len(t, kept, 1)
	assert.Equal(t, "b", kept[0].ID)
}
