package install

import "github.com/bloomreach-forge/addonctl/internal/addon"

// Status is the terminal outcome of one engine operation.
type Status string

const (
	// StatusCompleted means every intended edit was written. The result may
	// still carry warnings for partial outcomes such as artifacts that could
	// not be located for removal.
	StatusCompleted Status = "completed"
	// StatusFailed means no file mutation is visible to the caller.
	StatusFailed Status = "failed"
)

// ChangeKind identifies what a Change record did.
type ChangeKind string

const (
	ChangeAddedDependency   ChangeKind = "added-dependency"
	ChangeUpdatedDependency ChangeKind = "updated-dependency"
	ChangeRemovedDependency ChangeKind = "removed-dependency"
	ChangeAddedProperty     ChangeKind = "added-property"
	ChangeUpdatedProperty   ChangeKind = "updated-property"
	ChangeRemovedProperty   ChangeKind = "removed-property"
)

// Change records one applied edit. Dependency changes carry coordinates,
// property changes carry the property name. Old and New hold version
// expressions or property values as written.
type Change struct {
	Kind       ChangeKind
	File       string
	GroupID    string
	ArtifactID string
	Property   string
	Old        string
	New        string
}

// Result is the engine's only output contract. A completed result's change
// list reflects exactly the edits written; a failed result guarantees zero
// visible file mutations.
type Result struct {
	AddonID  string
	Status   Status
	Changes  []Change
	Errors   []addon.Error
	Warnings []string
}

func failed(addonID string, errs ...addon.Error) Result {
	return Result{AddonID: addonID, Status: StatusFailed, Errors: errs}
}

func completed(addonID string, changes []Change, warnings []string) Result {
	return Result{AddonID: addonID, Status: StatusCompleted, Changes: changes, Warnings: warnings}
}
