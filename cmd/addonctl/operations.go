package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bloomreach-forge/addonctl/internal/install"
	"github.com/bloomreach-forge/addonctl/internal/messages"
)

func newInstallCmd(a *app) *cobra.Command {
	var upgrade bool
	var dryRun bool
	cmd := &cobra.Command{
		Use:   messages.InstallUse,
		Short: messages.InstallShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if dryRun {
				previews, result := a.service.Preview(args[0], a.projectRoot, upgrade)
				for _, preview := range previews {
					_, _ = fmt.Fprintln(a.out, preview.Diff)
				}
				return a.renderResult(result)
			}
			return a.renderResult(a.service.Install(args[0], a.projectRoot, upgrade))
		},
	}
	cmd.Flags().BoolVar(&upgrade, "upgrade", false, messages.InstallFlagUpgrade)
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, messages.InstallFlagDryRun)
	return cmd
}

func newUninstallCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   messages.UninstallUse,
		Short: messages.UninstallShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.renderResult(a.service.Uninstall(args[0], a.projectRoot))
		},
	}
}

func newFixCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   messages.FixUse,
		Short: messages.FixShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.renderResult(a.service.Fix(args[0], a.projectRoot))
		},
	}
}

// renderResult prints the result and converts failures into a silent
// non-zero exit.
func (a *app) renderResult(result install.Result) error {
	renderResult(a.out, result)
	if result.Status == install.StatusFailed {
		return &SilentExitError{Code: 1}
	}
	return nil
}
