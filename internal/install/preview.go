package install

import (
	"sort"

	"github.com/aymanbagabas/go-udiff"
)

// FilePreview is a per-file unified diff of the edits an operation would
// write.
type FilePreview struct {
	File string
	Diff string
}

// Preview computes the install or upgrade edit set without writing anything,
// returning unified diffs per touched file alongside the result the
// operation would have produced. The context cache is left untouched.
func (s *Service) Preview(addonID string, root string, upgrade bool) ([]FilePreview, Result) {
	a, errs := s.prepare(addonID, root)
	if len(errs) > 0 {
		return nil, failed(addonID, errs...)
	}

	plan := buildPlan(a, s.logger)
	if upgrade {
		resolveExistingProperty(s.sys, root, &plan)
	}
	if errs := validatePlan(s.sys, root, plan, upgrade); len(errs) > 0 {
		return nil, failed(addonID, errs...)
	}

	edits := newEditSet(s.sys, root)
	for _, pc := range plan.PropertyChanges {
		if err := edits.apply(propertySet{pc}); err != nil {
			return nil, failed(addonID, ioError(err))
		}
	}
	for _, dc := range plan.DependencyChanges {
		if err := edits.apply(dependencyUpsert{dc}); err != nil {
			return nil, failed(addonID, ioError(err))
		}
	}

	dirty := edits.dirty()
	rels := make([]string, 0, len(dirty))
	for rel := range dirty {
		rels = append(rels, rel)
	}
	sort.Strings(rels)

	previews := make([]FilePreview, 0, len(rels))
	for _, rel := range rels {
		previews = append(previews, FilePreview{
			File: rel,
			Diff: udiff.Unified(rel, rel, edits.original[rel], dirty[rel]),
		})
	}
	return previews, completed(addonID, edits.changes, nil)
}
