// Package pomfile reads and edits Maven POM files at the text level.
//
// Scanning is best-effort: malformed content yields empty results rather than
// errors, because scan output is advisory input to planning. Editing is
// format-preserving: files are never parsed and reserialized, only patched in
// place, so hand-edited formatting survives every operation.
package pomfile

import (
	"regexp"
	"strings"
)

// Dependency is a dependency declaration as found in a POM file. Version and
// Scope carry the raw text, so Version may be a ${property} reference and
// either field may be empty.
type Dependency struct {
	GroupID    string
	ArtifactID string
	Version    string
	Scope      string
}

var (
	dependencyRe  = regexp.MustCompile(`(?s)<dependency>(.*?)</dependency>`)
	groupIDRe     = regexp.MustCompile(`(?s)<groupId>\s*(.*?)\s*</groupId>`)
	artifactIDRe  = regexp.MustCompile(`(?s)<artifactId>\s*(.*?)\s*</artifactId>`)
	versionRe     = regexp.MustCompile(`(?s)<version>\s*(.*?)\s*</version>`)
	scopeRe       = regexp.MustCompile(`(?s)<scope>\s*(.*?)\s*</scope>`)
	parentRe      = regexp.MustCompile(`(?s)<parent>(.*?)</parent>`)
	propertiesRe  = regexp.MustCompile(`(?s)<properties>(.*?)</properties>`)
	propertyRe    = regexp.MustCompile(`(?s)<([A-Za-z0-9_.\-]+)>\s*(.*?)\s*</([A-Za-z0-9_.\-]+)>`)
	propertyRefRe = regexp.MustCompile(`^\$\{([^}]+)\}$`)
)

// span marks a half-open [start, end) byte range in file text.
type span struct {
	start int
	end   int
}

func (s span) contains(other span) bool {
	return other.start >= s.start && other.end <= s.end
}

// sectionSpans returns the [open, close) spans of every <tag>...</tag>
// section, pairing each opening tag with the next closing tag.
func sectionSpans(text string, tag string) []span {
	opening := "<" + tag + ">"
	closing := "</" + tag + ">"
	var spans []span
	offset := 0
	for {
		rest := text[offset:]
		start := strings.Index(rest, opening)
		if start < 0 {
			return spans
		}
		start += offset
		end := strings.Index(text[start:], closing)
		if end < 0 {
			return spans
		}
		end += start + len(closing)
		spans = append(spans, span{start: start, end: end})
		offset = end
	}
}

// dependencySections returns the spans of <dependencies> sections that are
// not nested inside a <dependencyManagement> section.
func dependencySections(text string) []span {
	managed := sectionSpans(text, "dependencyManagement")
	var out []span
	for _, section := range sectionSpans(text, "dependencies") {
		nested := false
		for _, mgmt := range managed {
			if mgmt.contains(section) {
				nested = true
				break
			}
		}
		if !nested {
			out = append(out, section)
		}
	}
	return out
}

// ExtractDependencies returns every dependency declared in the file's
// dependency sections, excluding managed dependency declarations.
func ExtractDependencies(text string) []Dependency {
	var deps []Dependency
	for _, section := range dependencySections(text) {
		for _, m := range dependencyRe.FindAllStringSubmatch(text[section.start:section.end], -1) {
			dep := parseDependencyBlock(m[1])
			if dep.GroupID == "" || dep.ArtifactID == "" {
				continue
			}
			deps = append(deps, dep)
		}
	}
	return deps
}

func parseDependencyBlock(block string) Dependency {
	return Dependency{
		GroupID:    firstSubmatch(groupIDRe, block),
		ArtifactID: firstSubmatch(artifactIDRe, block),
		Version:    firstSubmatch(versionRe, block),
		Scope:      firstSubmatch(scopeRe, block),
	}
}

func firstSubmatch(re *regexp.Regexp, text string) string {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return m[1]
}

// ExtractProperties returns the name/value pairs of the file's top-level
// properties section. Only the first properties section is considered.
func ExtractProperties(text string) map[string]string {
	props := make(map[string]string)
	m := propertiesRe.FindStringSubmatch(text)
	if m == nil {
		return props
	}
	for _, entry := range propertyRe.FindAllStringSubmatch(m[1], -1) {
		if entry[1] != entry[3] {
			continue
		}
		props[entry[1]] = entry[2]
	}
	return props
}

// ResolveVersion resolves a version expression against declared properties.
// A ${name} expression resolves to the property's value when the property is
// declared; otherwise the expression is returned unchanged.
func ResolveVersion(expr string, props map[string]string) string {
	m := propertyRefRe.FindStringSubmatch(expr)
	if m == nil {
		return expr
	}
	if value, ok := props[m[1]]; ok {
		return value
	}
	return expr
}

// PropertyRef returns the property name referenced by a ${name} version
// expression, or "" when the expression is a literal.
func PropertyRef(expr string) string {
	m := propertyRefRe.FindStringSubmatch(expr)
	if m == nil {
		return ""
	}
	return m[1]
}

// ExtractParentVersion returns the version declared in the file's <parent>
// section, or "" when the file has no parent declaration.
func ExtractParentVersion(text string) string {
	m := parentRe.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return firstSubmatch(versionRe, m[1])
}
