// Package project resolves the installed state of a multi-module build
// project: which declaration files exist, which addons they declare, and
// whether declarations sit in the file and scope their addon expects.
package project

// Canonical declaration file paths, relative to the project root.
const (
	RootPom           = "pom.xml"
	CmsPom            = "cms-dependencies/pom.xml"
	SiteComponentsPom = "site/components/pom.xml"
	SiteWebappPom     = "site/webapp/pom.xml"
)

// targetFiles maps each logical placement target to the single declaration
// file that should carry its dependencies.
var targetFiles = map[string]string{
	"platform":        RootPom,
	"parent":          RootPom,
	"cms":             CmsPom,
	"site/components": SiteComponentsPom,
	"site/webapp":     SiteWebappPom,
}

// FileForTarget returns the canonical declaration file for a logical target.
func FileForTarget(target string) (string, bool) {
	file, ok := targetFiles[target]
	return file, ok
}

// ScanSet returns the relative paths of every declaration file considered
// during state resolution and uninstall fallback search, in merge order.
func ScanSet() []string {
	return []string{RootPom, CmsPom, SiteComponentsPom, SiteWebappPom}
}
