package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/bloomreach-forge/addonctl/internal/install"
	"github.com/bloomreach-forge/addonctl/internal/messages"
)

var (
	statusColor = map[install.Status]*color.Color{
		install.StatusCompleted: color.New(color.FgGreen),
		install.StatusFailed:    color.New(color.FgRed),
	}
	warnColor  = color.New(color.FgYellow)
	errorColor = color.New(color.FgRed)
)

// renderResult writes a result in the fixed order status line, changes,
// warnings, errors.
func renderResult(out io.Writer, result install.Result) {
	_, _ = fmt.Fprintf(out, messages.ResultCompletedFmt,
		statusColor[result.Status].Sprint(string(result.Status)), result.AddonID, changeSummary(result))
	for _, change := range result.Changes {
		_, _ = fmt.Fprintf(out, "  %s\n", describeChange(change))
	}
	if result.Status == install.StatusCompleted && len(result.Changes) == 0 {
		_, _ = fmt.Fprint(out, messages.ResultNoChanges)
	}
	for _, warning := range result.Warnings {
		_, _ = warnColor.Fprintf(out, messages.ResultWarningFmt, warning)
	}
	for _, err := range result.Errors {
		_, _ = errorColor.Fprintf(out, messages.ResultErrorFmt, err.Code, err.Message)
	}
}

func changeSummary(result install.Result) string {
	if result.Status == install.StatusFailed {
		return fmt.Sprintf("%d error(s)", len(result.Errors))
	}
	return fmt.Sprintf("%d change(s)", len(result.Changes))
}

func describeChange(change install.Change) string {
	switch change.Kind {
	case install.ChangeAddedDependency:
		return fmt.Sprintf("+ dependency %s:%s (%s) in %s", change.GroupID, change.ArtifactID, change.New, change.File)
	case install.ChangeUpdatedDependency:
		return fmt.Sprintf("~ dependency %s:%s %s -> %s in %s", change.GroupID, change.ArtifactID, change.Old, change.New, change.File)
	case install.ChangeRemovedDependency:
		return fmt.Sprintf("- dependency %s:%s in %s", change.GroupID, change.ArtifactID, change.File)
	case install.ChangeAddedProperty:
		return fmt.Sprintf("+ property %s = %s in %s", change.Property, change.New, change.File)
	case install.ChangeUpdatedProperty:
		return fmt.Sprintf("~ property %s %s -> %s in %s", change.Property, change.Old, change.New, change.File)
	case install.ChangeRemovedProperty:
		return fmt.Sprintf("- property %s in %s", change.Property, change.File)
	}
	return string(change.Kind)
}
