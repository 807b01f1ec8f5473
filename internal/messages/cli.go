package messages

// CLI messages for commands, flags, and result rendering.
const (
	// RootUse is the CLI command name.
	RootUse = "addonctl"
	// RootShort is the short description for the root command.
	RootShort = "Install and reconcile project addons"
	RootLong  = "addonctl installs, upgrades, uninstalls, and repairs addon dependency declarations across a project's POM files without reformatting them."

	RootFlagProjectRoot = "Project root directory (defaults to the current directory)"
	RootFlagCatalogDir  = "Directory of addon descriptor files"
	RootFlagLogLevel    = "Log level (debug, info, warn, error)"

	InstallUse         = "install <addon-id>"
	InstallShort       = "Install an addon into the project"
	InstallFlagUpgrade = "Upgrade an already installed addon"
	InstallFlagDryRun  = "Show the planned edits as unified diffs without writing"

	UninstallUse   = "uninstall <addon-id>"
	UninstallShort = "Remove an addon's declarations from the project"

	FixUse   = "fix <addon-id>"
	FixShort = "Repair misplaced, misscoped, or duplicated addon declarations"

	ListUse   = "list"
	ListShort = "List catalog addons and their installed versions"

	StatusUse   = "status"
	StatusShort = "Show project versions, installed addons, and placement issues"

	CatalogDirRequired   = "catalog directory is not configured; pass --catalog-dir or set catalog-dir in .addonctl.toml"
	ConfigReadFailedFmt  = "read config %s: %w"
	ConfigParseFailedFmt = "parse config %s: %w"
	LogLevelInvalidFmt   = "invalid log level %q"

	ResultCompletedFmt = "%s %s: %s\n"
	ResultWarningFmt   = "  warning: %s\n"
	ResultErrorFmt     = "  %s: %s\n"
	ResultNoChanges    = "  no changes\n"

	ListInstalledFmt    = "%-20s %-10s installed %s\n"
	ListNotInstalledFmt = "%-20s %-10s -\n"

	StatusPlatformFmt      = "platform version: %s\n"
	StatusJavaFmt          = "java version: %s\n"
	StatusInstalledHeader  = "installed addons:"
	StatusNoneInstalled    = "installed addons: none"
	StatusInstalledLineFmt = "  %s %s\n"
	StatusIssuesHeaderFmt  = "placement issues for %s:\n"
	StatusIssueDupFmt      = "  duplicate declaration of %s:%s in %s\n"
	StatusIssueScopeFmt    = "  %s:%s in %s has scope %q, expected %q\n"
	StatusIssueFileFmt     = "  %s:%s declared in %s, expected %s\n"
)
