package install

import (
	"fmt"

	"github.com/bloomreach-forge/addonctl/internal/addon"
	"github.com/bloomreach-forge/addonctl/internal/messages"
	"github.com/bloomreach-forge/addonctl/internal/pomfile"
	"github.com/bloomreach-forge/addonctl/internal/project"
)

// Uninstall removes every declaration of an installed addon. It searches the
// full scan set rather than only the canonical target files, so declarations
// that drifted to another file are still removed. An artifact found nowhere
// is reported as a warning, not a failure: the addon's primary removable
// state was still cleared.
func (s *Service) Uninstall(addonID string, root string) Result {
	a, errs := s.prepare(addonID, root)
	if len(errs) > 0 {
		return failed(addonID, errs...)
	}
	ctx, err := s.Context(root)
	if err != nil {
		return failed(addonID, ioError(err))
	}
	if _, installed := ctx.Installed[addonID]; !installed {
		return failed(addonID, addon.NewError(addon.CodeNotInstalled, messages.ServiceNotInstalledFmt, addonID))
	}

	plan := buildPlan(a, s.logger)
	if len(plan.DependencyChanges) == 0 {
		return failed(addonID, addon.NewError(addon.CodeMissingTarget, messages.ValidateNoInstallableArtifactsFmt, addonID))
	}
	resolveExistingProperty(s.sys, root, &plan)

	edits := newEditSet(s.sys, root)
	var warnings []string
	for _, dc := range plan.DependencyChanges {
		found := false
		for _, rel := range project.ScanSet() {
			if !edits.contains(rel, dc.GroupID, dc.ArtifactID) {
				continue
			}
			found = true
			if err := edits.apply(dependencyRemove{targetFile: rel, groupID: dc.GroupID, artifactID: dc.ArtifactID}); err != nil {
				return failed(addonID, ioError(err))
			}
		}
		if !found {
			warnings = append(warnings, fmt.Sprintf(messages.UninstallDependencyNotFoundFmt, dc.GroupID, dc.ArtifactID))
		}
	}
	for _, pc := range plan.PropertyChanges {
		found := false
		for _, rel := range project.ScanSet() {
			text, err := edits.load(rel)
			if err != nil {
				continue
			}
			if _, ok := pomfile.ExtractProperties(text)[pc.Name]; !ok {
				continue
			}
			found = true
			if err := edits.apply(propertyRemove{targetFile: rel, name: pc.Name}); err != nil {
				return failed(addonID, ioError(err))
			}
		}
		if !found {
			warnings = append(warnings, fmt.Sprintf(messages.UninstallPropertyNotFoundFmt, pc.Name))
		}
	}

	if err := applyEdits(s.sys, root, edits.dirty()); err != nil {
		return failed(addonID, ioError(err))
	}
	s.cache.Invalidate()
	s.logger.Debug("uninstall completed", "addon", addonID, "changes", len(edits.changes), "warnings", len(warnings))
	return completed(addonID, edits.changes, warnings)
}
