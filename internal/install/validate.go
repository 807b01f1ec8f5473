package install

import (
	"path/filepath"

	"github.com/bloomreach-forge/addonctl/internal/addon"
	"github.com/bloomreach-forge/addonctl/internal/messages"
	"github.com/bloomreach-forge/addonctl/internal/pomfile"
)

// validatePlan checks plan preconditions before any edit is attempted.
// Checks run in sequenced categories, short-circuiting on the first category
// that yields errors; all errors of the failing category are returned
// together.
func validatePlan(sys System, root string, plan Plan, upgrade bool) []addon.Error {
	if len(plan.DependencyChanges) == 0 {
		return []addon.Error{addon.NewError(addon.CodeMissingTarget, messages.ValidateNoInstallableArtifactsFmt, plan.AddonID)}
	}

	var errs []addon.Error
	anyExisting := false
	for _, change := range plan.DependencyChanges {
		path := filepath.Join(root, filepath.FromSlash(change.File))
		raw, err := sys.ReadFile(path)
		if err != nil {
			errs = append(errs, addon.NewError(addon.CodeTargetFileNotFound, messages.ValidateTargetFileMissingFmt, change.File))
			continue
		}
		text := string(raw)
		if !pomfile.HasDependenciesSection(text) {
			errs = append(errs, addon.NewError(addon.CodeNoDependenciesSection, messages.ValidateNoDependenciesSectionFmt, change.File))
			continue
		}
		if pomfile.ContainsDependency(text, change.GroupID, change.ArtifactID) {
			anyExisting = true
			if !upgrade {
				errs = append(errs, addon.NewError(addon.CodeAlreadyInstalled, messages.ValidateAlreadyInstalledFmt,
					change.GroupID, change.ArtifactID, change.File))
			}
		}
	}
	if len(errs) > 0 {
		return errs
	}

	if upgrade && !anyExisting {
		return []addon.Error{addon.NewError(addon.CodeNotInstalled, messages.ValidateNotInstalledFmt, plan.AddonID)}
	}

	for _, change := range plan.PropertyChanges {
		raw, err := sys.ReadFile(filepath.Join(root, filepath.FromSlash(change.File)))
		if err != nil {
			continue
		}
		props := pomfile.ExtractProperties(string(raw))
		existing, ok := props[change.Name]
		if ok && existing != change.Value && !upgrade {
			errs = append(errs, addon.NewError(addon.CodePropertyConflict, messages.ValidatePropertyConflictFmt,
				change.Name, existing, change.Value))
		}
	}
	return errs
}
