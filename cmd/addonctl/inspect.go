package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bloomreach-forge/addonctl/internal/messages"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   messages.ListUse,
		Short: messages.ListShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := a.service.Context(a.projectRoot)
			if err != nil {
				return err
			}
			for _, addon := range a.catalog.FindAll() {
				if version, ok := ctx.Installed[addon.ID]; ok {
					_, _ = fmt.Fprintf(a.out, messages.ListInstalledFmt, addon.ID, addon.Version, version)
					continue
				}
				_, _ = fmt.Fprintf(a.out, messages.ListNotInstalledFmt, addon.ID, addon.Version)
			}
			return nil
		},
	}
}

func newStatusCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   messages.StatusUse,
		Short: messages.StatusShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := a.service.Context(a.projectRoot)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(a.out, messages.StatusPlatformFmt, orUnknown(ctx.PlatformVersion))
			_, _ = fmt.Fprintf(a.out, messages.StatusJavaFmt, orUnknown(ctx.JavaVersion))
			ids := ctx.InstalledIDs()
			if len(ids) == 0 {
				_, _ = fmt.Fprintln(a.out, messages.StatusNoneInstalled)
				return nil
			}
			_, _ = fmt.Fprintln(a.out, messages.StatusInstalledHeader)
			for _, id := range ids {
				_, _ = fmt.Fprintf(a.out, messages.StatusInstalledLineFmt, id, orUnknown(ctx.Installed[id]))
			}
			for _, id := range ids {
				issues := ctx.Misconfigured[id]
				if len(issues) == 0 {
					continue
				}
				_, _ = fmt.Fprintf(a.out, messages.StatusIssuesHeaderFmt, id)
				for _, issue := range issues {
					switch {
					case issue.Duplicate:
						_, _ = fmt.Fprintf(a.out, messages.StatusIssueDupFmt, issue.GroupID, issue.ArtifactID, issue.ActualFile)
					case issue.ActualFile == issue.ExpectedFile:
						_, _ = fmt.Fprintf(a.out, messages.StatusIssueScopeFmt, issue.GroupID, issue.ArtifactID, issue.ActualFile, issue.ActualScope, issue.ExpectedScope)
					default:
						_, _ = fmt.Fprintf(a.out, messages.StatusIssueFileFmt, issue.GroupID, issue.ArtifactID, issue.ActualFile, issue.ExpectedFile)
					}
				}
			}
			return nil
		},
	}
}

func orUnknown(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
