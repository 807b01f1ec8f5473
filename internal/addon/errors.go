package addon

import "fmt"

// Code is a stable engine error identifier. The string values are part of the
// compatibility contract and must not change.
type Code string

const (
	CodeAddonNotFound         Code = "ADDON_NOT_FOUND"
	CodeProjectRootNotSet     Code = "PROJECT_ROOT_NOT_SET"
	CodeMissingTarget         Code = "MISSING_TARGET"
	CodeTargetFileNotFound    Code = "TARGET_FILE_NOT_FOUND"
	CodeNoDependenciesSection Code = "NO_DEPENDENCIES_SECTION"
	CodeAlreadyInstalled      Code = "ALREADY_INSTALLED"
	CodeNotInstalled          Code = "NOT_INSTALLED"
	CodePropertyConflict      Code = "PROPERTY_CONFLICT"
	CodeIOError               Code = "IO_ERROR"
	CodeNotMisconfigured      Code = "NOT_MISCONFIGURED"
)

// Error is a structured engine error carried inside an InstallationResult.
type Error struct {
	Code    Code
	Message string
}

// NewError builds an Error with a formatted message.
func NewError(code Code, format string, args ...any) Error {
	return Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

func (e Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}
