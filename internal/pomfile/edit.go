package pomfile

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// escaper covers the five reserved markup characters.
var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// EscapeText escapes a value for insertion into markup text.
func EscapeText(value string) string {
	return escaper.Replace(value)
}

// CheckWellFormed reports whether the text parses as well-formed markup.
// The tokenizer is used read-only; the text is never reserialized.
func CheckWellFormed(text string) error {
	decoder := xml.NewDecoder(strings.NewReader(text))
	for {
		_, err := decoder.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("malformed content: %w", err)
		}
	}
}

// HasDependenciesSection reports whether the file has at least one
// dependencies section outside dependency management.
func HasDependenciesSection(text string) bool {
	return len(dependencySections(text)) > 0
}

// ContainsDependency reports whether the file declares the given coordinates
// in a dependencies section outside dependency management.
func ContainsDependency(text string, groupID string, artifactID string) bool {
	return len(matchingDependencyBlocks(text, groupID, artifactID)) > 0
}

// DeclaredVersion returns the raw version expression of the first declaration
// of the given coordinates, or "" when absent.
func DeclaredVersion(text string, groupID string, artifactID string) string {
	blocks := matchingDependencyBlocks(text, groupID, artifactID)
	if len(blocks) == 0 {
		return ""
	}
	return firstSubmatch(versionRe, text[blocks[0].start:blocks[0].end])
}

// matchingDependencyBlocks returns the spans of every <dependency> block with
// the given coordinates, in file order.
func matchingDependencyBlocks(text string, groupID string, artifactID string) []span {
	var blocks []span
	for _, section := range dependencySections(text) {
		content := text[section.start:section.end]
		for _, loc := range dependencyRe.FindAllStringSubmatchIndex(content, -1) {
			block := content[loc[2]:loc[3]]
			if firstSubmatch(groupIDRe, block) != groupID || firstSubmatch(artifactIDRe, block) != artifactID {
				continue
			}
			blocks = append(blocks, span{start: section.start + loc[0], end: section.start + loc[1]})
		}
	}
	return blocks
}

// lastDependencyBlock returns the span of the final <dependency> block inside
// the section, if any.
func lastDependencyBlock(text string, section span) (span, bool) {
	content := text[section.start:section.end]
	locs := dependencyRe.FindAllStringIndex(content, -1)
	if len(locs) == 0 {
		return span{}, false
	}
	last := locs[len(locs)-1]
	return span{start: section.start + last[0], end: section.start + last[1]}, true
}

// InsertDependency inserts a dependency block into the last dependencies
// section outside dependency management, inferring indentation from
// surrounding content. It returns false when the file has no such section.
func InsertDependency(text string, dep Dependency) (string, bool) {
	sections := dependencySections(text)
	if len(sections) == 0 {
		return text, false
	}
	section := sections[len(sections)-1]
	closing := section.end - len("</dependencies>")

	unit := detectIndentUnit(text)
	lineStart := lineStartBefore(text, closing)
	linePrefix := text[lineStart:closing]

	var blockIndent string
	if sibling, ok := lastDependencyBlock(text, section); ok {
		blockIndent = lineIndentAt(text, sibling.start)
		if childUnit := childIndentUnit(text, sibling, blockIndent); childUnit != "" {
			unit = childUnit
		}
	}

	if strings.TrimSpace(linePrefix) == "" {
		// Closing tag sits on its own line: insert whole lines above it.
		if blockIndent == "" {
			blockIndent = linePrefix + unit
		}
		block := renderDependencyBlock(dep, blockIndent, unit)
		return text[:lineStart] + block + text[lineStart:], true
	}

	// Inline section such as <dependencies></dependencies>: expand it.
	lineIndent := leadingWhitespace(linePrefix)
	if blockIndent == "" {
		blockIndent = lineIndent + unit
	}
	block := renderDependencyBlock(dep, blockIndent, unit)
	return text[:closing] + "\n" + block + lineIndent + text[closing:], true
}

// childIndentUnit infers the indent unit from a sibling block's first child
// line, returning "" when the block is single-line.
func childIndentUnit(text string, block span, blockIndent string) string {
	content := text[block.start:block.end]
	nl := strings.IndexByte(content, '\n')
	if nl < 0 {
		return ""
	}
	childIndent := leadingWhitespace(content[nl+1:])
	if !strings.HasPrefix(childIndent, blockIndent) || childIndent == blockIndent {
		return ""
	}
	return childIndent[len(blockIndent):]
}

// renderDependencyBlock renders a dependency block with trailing newline.
func renderDependencyBlock(dep Dependency, indent string, unit string) string {
	var b strings.Builder
	inner := indent + unit
	b.WriteString(indent + "<dependency>\n")
	b.WriteString(inner + "<groupId>" + EscapeText(dep.GroupID) + "</groupId>\n")
	b.WriteString(inner + "<artifactId>" + EscapeText(dep.ArtifactID) + "</artifactId>\n")
	if dep.Version != "" {
		b.WriteString(inner + "<version>" + EscapeText(dep.Version) + "</version>\n")
	}
	if dep.Scope != "" {
		b.WriteString(inner + "<scope>" + EscapeText(dep.Scope) + "</scope>\n")
	}
	b.WriteString(indent + "</dependency>\n")
	return b.String()
}

// UpdateDependencyVersion rewrites the version expression of the first
// declaration of the given coordinates. A declaration without a version tag
// gains one after its artifactId. Returns false when the coordinates are not
// declared.
func UpdateDependencyVersion(text string, groupID string, artifactID string, version string) (string, bool) {
	blocks := matchingDependencyBlocks(text, groupID, artifactID)
	if len(blocks) == 0 {
		return text, false
	}
	block := blocks[0]
	content := text[block.start:block.end]
	if loc := versionRe.FindStringSubmatchIndex(content); loc != nil {
		updated := content[:loc[2]] + EscapeText(version) + content[loc[3]:]
		return text[:block.start] + updated + text[block.end:], true
	}
	artifactLoc := artifactIDRe.FindStringIndex(content)
	if artifactLoc == nil {
		return text, false
	}
	indent := lineIndentAt(content, artifactLoc[0])
	insert := "\n" + indent + "<version>" + EscapeText(version) + "</version>"
	updated := content[:artifactLoc[1]] + insert + content[artifactLoc[1]:]
	return text[:block.start] + updated + text[block.end:], true
}

// RemoveDependency deletes every declaration of the given coordinates,
// including each block's trailing whitespace and newline. Returns false when
// nothing was removed.
func RemoveDependency(text string, groupID string, artifactID string) (string, bool) {
	blocks := matchingDependencyBlocks(text, groupID, artifactID)
	if len(blocks) == 0 {
		return text, false
	}
	return removeSpans(text, blocks), true
}

// CollapseDuplicateDependencies removes all but the first declaration of the
// given coordinates, returning the number of removed blocks.
func CollapseDuplicateDependencies(text string, groupID string, artifactID string) (string, int) {
	blocks := matchingDependencyBlocks(text, groupID, artifactID)
	if len(blocks) < 2 {
		return text, 0
	}
	return removeSpans(text, blocks[1:]), len(blocks) - 1
}

// removeSpans deletes the given spans from text, widening each span to cover
// its whole line when the span is alone on it, plus the trailing newline.
func removeSpans(text string, spans []span) string {
	out := text
	for i := len(spans) - 1; i >= 0; i-- {
		widened := widenToLine(out, spans[i])
		out = out[:widened.start] + out[widened.end:]
	}
	return out
}

func widenToLine(text string, s span) span {
	start := s.start
	lineStart := lineStartBefore(text, start)
	if strings.TrimSpace(text[lineStart:start]) == "" {
		start = lineStart
	}
	end := s.end
	for end < len(text) && (text[end] == ' ' || text[end] == '\t') {
		end++
	}
	if end < len(text) && text[end] == '\n' {
		end++
	}
	return span{start: start, end: end}
}

// SetProperty sets a property in the file's top-level properties section,
// replacing an existing entry or inserting a new one. Returns false when the
// file has no properties section.
func SetProperty(text string, name string, value string) (string, bool) {
	loc := propertiesRe.FindStringSubmatchIndex(text)
	if loc == nil {
		return text, false
	}
	content := text[loc[2]:loc[3]]
	if entry := propertyEntrySpan(content, name); entry != nil {
		replaced := "<" + name + ">" + EscapeText(value) + "</" + name + ">"
		updated := content[:entry.start] + replaced + content[entry.end:]
		return text[:loc[2]] + updated + text[loc[3]:], true
	}

	closing := loc[3]
	unit := detectIndentUnit(text)
	lineStart := lineStartBefore(text, closing)
	linePrefix := text[lineStart:closing]
	entryLine := "<" + name + ">" + EscapeText(value) + "</" + name + ">"

	if indent := lastPropertyIndent(content); indent != "" {
		entryLine = indent + entryLine + "\n"
	} else if strings.TrimSpace(linePrefix) == "" {
		entryLine = linePrefix + unit + entryLine + "\n"
	} else {
		// Inline <properties></properties>: expand it.
		lineIndent := leadingWhitespace(linePrefix)
		return text[:closing] + "\n" + lineIndent + unit + entryLine + "\n" + lineIndent + text[closing:], true
	}
	return text[:lineStart] + entryLine + text[lineStart:], true
}

// RemoveProperty deletes a property entry from the top-level properties
// section. Returns false when the entry does not exist.
func RemoveProperty(text string, name string) (string, bool) {
	loc := propertiesRe.FindStringSubmatchIndex(text)
	if loc == nil {
		return text, false
	}
	content := text[loc[2]:loc[3]]
	entry := propertyEntrySpan(content, name)
	if entry == nil {
		return text, false
	}
	updated := removeSpans(content, []span{*entry})
	return text[:loc[2]] + updated + text[loc[3]:], true
}

// propertyEntrySpan locates the <name>...</name> entry inside properties
// content.
func propertyEntrySpan(content string, name string) *span {
	for _, loc := range propertyRe.FindAllStringSubmatchIndex(content, -1) {
		if content[loc[2]:loc[3]] != name || content[loc[6]:loc[7]] != name {
			continue
		}
		return &span{start: loc[0], end: loc[1]}
	}
	return nil
}

// lastPropertyIndent returns the indent of the final property entry, or ""
// when the section is empty or single-line.
func lastPropertyIndent(content string) string {
	locs := propertyRe.FindAllStringIndex(content, -1)
	if len(locs) == 0 {
		return ""
	}
	last := locs[len(locs)-1]
	indent := lineIndentAt(content, last[0])
	if indent == "" {
		return ""
	}
	return indent
}
