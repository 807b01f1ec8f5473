package install

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bloomreach-forge/addonctl/internal/addon"
	"github.com/bloomreach-forge/addonctl/internal/project"
)

// failOnceSystem fails the first atomic write against failPath and behaves
// normally afterwards, so restore paths can be exercised.
type failOnceSystem struct {
	System
	failPath string
	failed   bool
}

func (f *failOnceSystem) WriteFileAtomic(name string, data []byte, perm os.FileMode) error {
	if !f.failed && name == f.failPath {
		f.failed = true
		return errors.New("disk full")
	}
	return f.System.WriteFileAtomic(name, data, perm)
}

func TestApplyEdits_Empty(t *testing.T) {
	assert.NoError(t, applyEdits(RealSystem{}, t.TempDir(), nil))
}

func TestApplyEdits_WritesAndRemovesBackups(t *testing.T) {
	root := writeProject(t, map[string]string{
		project.RootPom: baseRootPom,
	})

	edited := "<project>\n  <dependencies>\n  </dependencies>\n</project>\n"
	require.NoError(t, applyEdits(RealSystem{}, root, map[string]string{project.RootPom: edited}))

	assert.Equal(t, edited, readProjectFile(t, root, project.RootPom))
	_, err := os.Stat(filepath.Join(root, project.RootPom+backupSuffix))
	assert.True(t, os.IsNotExist(err))
}

func TestApplyEdits_RejectsMalformedContent(t *testing.T) {
	root := writeProject(t, map[string]string{
		project.RootPom: baseRootPom,
	})

	err := applyEdits(RealSystem{}, root, map[string]string{project.RootPom: "<project><dependencies></project>"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not well-formed")
	assert.Equal(t, baseRootPom, readProjectFile(t, root, project.RootPom))
}

func TestApplyEdits_RefusesSymlink(t *testing.T) {
	root := writeProject(t, map[string]string{
		"real.xml": baseRootPom,
	})
	require.NoError(t, os.Symlink(filepath.Join(root, "real.xml"), filepath.Join(root, project.RootPom)))

	err := applyEdits(RealSystem{}, root, map[string]string{project.RootPom: "<project></project>"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "symbolic link")
	assert.Equal(t, baseRootPom, readProjectFile(t, root, "real.xml"))
}

func TestApplyEdits_MissingTarget(t *testing.T) {
	err := applyEdits(RealSystem{}, t.TempDir(), map[string]string{project.RootPom: "<project></project>"})
	assert.Error(t, err)
}

func TestApplyEdits_RestoresAllFilesOnWriteFailure(t *testing.T) {
	root := writeProject(t, map[string]string{
		project.RootPom: baseRootPom,
		project.CmsPom:  baseCmsPom,
	})
	// Files write in sorted order, so the root POM write fails after the cms
	// POM write already succeeded and must be rolled back.
	sys := &failOnceSystem{
		System:   RealSystem{},
		failPath: filepath.Join(root, project.RootPom),
	}

	edits := map[string]string{
		project.RootPom: "<project>\n  <dependencies>\n  </dependencies>\n</project>\n",
		project.CmsPom:  "<project>\n  <dependencies>\n  </dependencies>\n</project>\n",
	}
	err := applyEdits(sys, root, edits)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")

	assert.Equal(t, baseRootPom, readProjectFile(t, root, project.RootPom))
	assert.Equal(t, baseCmsPom, readProjectFile(t, root, project.CmsPom))
	_, statErr := os.Stat(filepath.Join(root, project.RootPom+backupSuffix))
	assert.True(t, os.IsNotExist(statErr))
	_, statErr = os.Stat(filepath.Join(root, filepath.FromSlash(project.CmsPom)) + backupSuffix)
	assert.True(t, os.IsNotExist(statErr))
}

func TestInstall_WriteFailureRollsBack(t *testing.T) {
	root := writeProject(t, map[string]string{
		project.RootPom: baseRootPom,
		project.CmsPom:  baseCmsPom,
	})
	sys := &failOnceSystem{
		System:   RealSystem{},
		failPath: filepath.Join(root, project.RootPom),
	}
	svc := NewService(&stubCatalog{addons: []*addon.Addon{brutAddon()}}, Options{System: sys})

	result := svc.Install("brut", root, false)
	require.Equal(t, StatusFailed, result.Status)
	assert.Equal(t, []addon.Code{addon.CodeIOError}, errorCodes(result))

	assert.Equal(t, baseRootPom, readProjectFile(t, root, project.RootPom))
	assert.Equal(t, baseCmsPom, readProjectFile(t, root, project.CmsPom))

	// A later attempt against a recovered filesystem succeeds.
	result = svc.Install("brut", root, false)
	assert.Equal(t, StatusCompleted, result.Status, "errors: %v", result.Errors)
}
