package install

import (
	"github.com/bloomreach-forge/addonctl/internal/addon"
	"github.com/bloomreach-forge/addonctl/internal/messages"
	"github.com/bloomreach-forge/addonctl/internal/pomfile"
)

// Fix repairs an addon's outstanding placement issues: misplaced or
// misscoped declarations move to their expected file and scope with their
// existing version expression preserved verbatim, and duplicated
// declarations collapse to a single occurrence in place.
func (s *Service) Fix(addonID string, root string) Result {
	_, errs := s.prepare(addonID, root)
	if len(errs) > 0 {
		return failed(addonID, errs...)
	}
	ctx, err := s.Context(root)
	if err != nil {
		return failed(addonID, ioError(err))
	}
	issues := ctx.Misconfigured[addonID]
	if len(issues) == 0 {
		return failed(addonID, addon.NewError(addon.CodeNotMisconfigured, messages.ServiceNotMisconfiguredFmt, addonID))
	}

	edits := newEditSet(s.sys, root)
	for _, issue := range issues {
		if issue.Duplicate {
			if err := edits.apply(dependencyCollapse{targetFile: issue.ActualFile, groupID: issue.GroupID, artifactID: issue.ArtifactID}); err != nil {
				return failed(addonID, ioError(err))
			}
			continue
		}

		text, err := edits.load(issue.ActualFile)
		if err != nil {
			return failed(addonID, ioError(err))
		}
		version := pomfile.DeclaredVersion(text, issue.GroupID, issue.ArtifactID)
		if err := edits.apply(dependencyRemove{targetFile: issue.ActualFile, groupID: issue.GroupID, artifactID: issue.ArtifactID}); err != nil {
			return failed(addonID, ioError(err))
		}
		if err := edits.apply(dependencyUpsert{DependencyChange{
			File:       issue.ExpectedFile,
			GroupID:    issue.GroupID,
			ArtifactID: issue.ArtifactID,
			Version:    version,
			Scope:      issue.ExpectedScope,
		}}); err != nil {
			return failed(addonID, ioError(err))
		}
	}

	if err := applyEdits(s.sys, root, edits.dirty()); err != nil {
		return failed(addonID, ioError(err))
	}
	s.cache.Invalidate()
	s.logger.Debug("fix completed", "addon", addonID, "issues", len(issues), "changes", len(edits.changes))
	return completed(addonID, edits.changes, nil)
}
