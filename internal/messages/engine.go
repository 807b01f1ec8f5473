// Package messages centralizes user-facing strings so wording stays
// consistent across the engine and the CLI.
package messages

// Engine messages for validation, change execution, and the transactional writer.
const (
	ServiceRootRequired        = "project root is not set"
	ServiceAddonUnknownFmt     = "addon %q is not in the catalog"
	ServiceNotInstalledFmt     = "addon %s is not installed"
	ServiceNotMisconfiguredFmt = "addon %s has no outstanding placement issues"

	ValidateNoInstallableArtifactsFmt = "addon %s has no artifacts bound to a known target file"
	ValidateTargetFileMissingFmt      = "target file %s does not exist"
	ValidateNoDependenciesSectionFmt  = "%s has no dependencies section"
	ValidateAlreadyInstalledFmt       = "dependency %s:%s is already declared in %s"
	ValidateNotInstalledFmt           = "addon %s is not installed; nothing to upgrade"
	ValidatePropertyConflictFmt       = "property %s is already set to %q; refusing to overwrite with %q"

	ChangeReadFileFailedFmt         = "read %s: %w"
	ChangeUpdateDependencyFailedFmt = "update version of %s:%s in %s"
	ChangeNoDependenciesSectionFmt  = "%s has no dependencies section to insert into"
	ChangeNoPropertiesSectionFmt    = "%s has no properties section to insert into"
	ChangeDuplicateCountFmt         = "%d duplicate declarations"

	UninstallDependencyNotFoundFmt = "dependency %s:%s was not found in any declaration file; nothing removed"
	UninstallPropertyNotFoundFmt   = "property %s was not found in any declaration file; nothing removed"

	WriterEditedContentMalformedFmt = "edited content for %s is not well-formed: %w"
	WriterStatFailedFmt             = "stat %s: %w"
	WriterRefuseSymlinkFmt          = "refusing to write through symbolic link %s"
	WriterBackupReadFailedFmt       = "read %s for backup: %w"
	WriterBackupWriteFailedFmt      = "write backup of %s: %w"
	WriterWriteFailedFmt            = "write %s: %w"
	WriterWriteAndRestoreFailedFmt  = "write %s: %v; restore from backups failed: %v"
	WriterRestoreReadFailedFmt      = "read backup %s: %w"
	WriterRestoreWriteFailedFmt     = "restore %s from backup: %w"
)

// Catalog messages for descriptor loading.
const (
	CatalogReadDirFailedFmt       = "read catalog directory %s: %w"
	CatalogDescriptorMissingIDFmt = "descriptor %s has no addon id"
)
