package project

import (
	"github.com/bloomreach-forge/addonctl/internal/addon"
	"github.com/bloomreach-forge/addonctl/internal/pomfile"
)

// DefaultScope is the Maven scope assumed for declarations without one.
const DefaultScope = "compile"

// Issue reports one misplaced, misscoped, or duplicated declaration of an
// installed addon's artifact.
type Issue struct {
	GroupID       string
	ArtifactID    string
	ActualFile    string
	ExpectedFile  string
	ActualScope   string
	ExpectedScope string
	Duplicate     bool
}

// expectation is one valid (file, scope) placement for a coordinate pair. An
// empty scope means the placement carries no scope constraint. current marks
// expectations drawn from the addon's current definition rather than a
// historical epoch.
type expectation struct {
	file    string
	scope   string
	current bool
}

// Detect compares the actual placement of every installed addon's artifacts
// against the placements its current definition and all historical epochs
// allow. An artifact satisfying any allowed placement is not reported;
// tolerance of old epochs keeps installations made under an older, still
// valid convention from being flagged.
func Detect(depsByFile map[string][]pomfile.Dependency, installedIDs []string, catalog addon.Catalog) map[string][]Issue {
	issues := make(map[string][]Issue)
	for _, id := range installedIDs {
		a, ok := catalog.FindByID(id)
		if !ok {
			continue
		}
		if found := detectAddon(a, depsByFile); len(found) > 0 {
			issues[id] = found
		}
	}
	return issues
}

func detectAddon(a *addon.Addon, depsByFile map[string][]pomfile.Dependency) []Issue {
	keys, expectations := collectExpectations(a)
	var issues []Issue
	for _, key := range keys {
		groupID, artifactID := splitCoordKey(key)
		occurrences := findOccurrences(depsByFile, groupID, artifactID)
		issues = append(issues, placementIssues(groupID, artifactID, expectations[key], occurrences)...)
		issues = append(issues, duplicateIssues(groupID, artifactID, occurrences)...)
	}
	return issues
}

// collectExpectations gathers the valid (file, scope) pairs per coordinate
// key across the current definition and every epoch, preserving first-seen
// coordinate order.
func collectExpectations(a *addon.Addon) ([]string, map[string][]expectation) {
	var keys []string
	expectations := make(map[string][]expectation)
	add := func(artifacts []addon.Artifact, current bool) {
		for _, artifact := range artifacts {
			if !artifact.IsInstallable() {
				continue
			}
			file, ok := FileForTarget(artifact.Target)
			if !ok {
				continue
			}
			key := coordKey(artifact.GroupID, artifact.ArtifactID)
			if _, seen := expectations[key]; !seen {
				keys = append(keys, key)
			}
			exp := expectation{file: file, scope: artifact.Scope, current: current}
			if !containsExpectation(expectations[key], exp) {
				expectations[key] = append(expectations[key], exp)
			}
		}
	}
	add(a.Artifacts, true)
	for _, epoch := range a.Epochs {
		add(epoch.Artifacts, false)
	}
	return keys, expectations
}

func containsExpectation(list []expectation, exp expectation) bool {
	for _, e := range list {
		if e.file == exp.file && e.scope == exp.scope {
			return true
		}
	}
	return false
}

// findOccurrences returns the defaulted scopes of every declaration of the
// coordinates, per file.
func findOccurrences(depsByFile map[string][]pomfile.Dependency, groupID string, artifactID string) map[string][]string {
	occurrences := make(map[string][]string)
	for _, rel := range ScanSet() {
		for _, dep := range depsByFile[rel] {
			if dep.GroupID != groupID || dep.ArtifactID != artifactID {
				continue
			}
			scope := dep.Scope
			if scope == "" {
				scope = DefaultScope
			}
			occurrences[rel] = append(occurrences[rel], scope)
		}
	}
	return occurrences
}

// placementIssues reports an unsatisfied coordinate pair. A scope mismatch
// inside an expected file is preferred over a wrong-file report; a pair
// present in no expected file is reported once per actual file against the
// primary expectation.
func placementIssues(groupID string, artifactID string, expectations []expectation, occurrences map[string][]string) []Issue {
	for _, exp := range expectations {
		for _, scope := range occurrences[exp.file] {
			if exp.scope == "" || scope == exp.scope {
				return nil
			}
		}
	}

	for _, exp := range expectations {
		scopes := occurrences[exp.file]
		if len(scopes) == 0 {
			continue
		}
		return []Issue{{
			GroupID:       groupID,
			ArtifactID:    artifactID,
			ActualFile:    exp.file,
			ExpectedFile:  exp.file,
			ActualScope:   scopes[0],
			ExpectedScope: exp.scope,
		}}
	}

	primary := primaryExpectation(expectations)
	if primary == nil {
		return nil
	}
	var issues []Issue
	for _, rel := range ScanSet() {
		scopes := occurrences[rel]
		if len(scopes) == 0 {
			continue
		}
		issues = append(issues, Issue{
			GroupID:       groupID,
			ArtifactID:    artifactID,
			ActualFile:    rel,
			ExpectedFile:  primary.file,
			ActualScope:   scopes[0],
			ExpectedScope: primary.scope,
		})
	}
	return issues
}

// primaryExpectation prefers the current definition's first expectation.
func primaryExpectation(expectations []expectation) *expectation {
	for i := range expectations {
		if expectations[i].current {
			return &expectations[i]
		}
	}
	if len(expectations) > 0 {
		return &expectations[0]
	}
	return nil
}

// duplicateIssues reports files declaring the coordinates more than once.
func duplicateIssues(groupID string, artifactID string, occurrences map[string][]string) []Issue {
	var issues []Issue
	for _, rel := range ScanSet() {
		if len(occurrences[rel]) > 1 {
			issues = append(issues, Issue{
				GroupID:    groupID,
				ArtifactID: artifactID,
				ActualFile: rel,
				Duplicate:  true,
			})
		}
	}
	return issues
}

func splitCoordKey(key string) (string, string) {
	for i := 0; i < len(key); i++ {
		if key[i] == ':' {
			return key[:i], key[i+1:]
		}
	}
	return key, ""
}
