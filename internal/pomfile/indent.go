package pomfile

import "strings"

const defaultIndentUnit = "    "

// leadingWhitespace returns the run of spaces and tabs at the start of line.
func leadingWhitespace(line string) string {
	for i := 0; i < len(line); i++ {
		if line[i] != ' ' && line[i] != '\t' {
			return line[:i]
		}
	}
	return line
}

// lineStartBefore returns the index of the first byte of the line containing
// pos.
func lineStartBefore(text string, pos int) int {
	return strings.LastIndexByte(text[:pos], '\n') + 1
}

// lineIndentAt returns the leading whitespace of the line containing pos.
func lineIndentAt(text string, pos int) string {
	start := lineStartBefore(text, pos)
	line := text[start:]
	if nl := strings.IndexByte(line, '\n'); nl >= 0 {
		line = line[:nl]
	}
	return leadingWhitespace(line)
}

// detectIndentUnit infers the file-wide indentation unit. Tabs win when any
// indented line uses them; otherwise the shortest run of spaces that evenly
// divides every indented line is used, defaulting to four spaces.
func detectIndentUnit(text string) string {
	shortest := 0
	counts := make(map[int]bool)
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		indent := leadingWhitespace(line)
		if indent == "" {
			continue
		}
		if strings.ContainsRune(indent, '\t') {
			return "\t"
		}
		counts[len(indent)] = true
		if shortest == 0 || len(indent) < shortest {
			shortest = len(indent)
		}
	}
	if shortest == 0 {
		return defaultIndentUnit
	}
	for count := range counts {
		if count%shortest != 0 {
			return defaultIndentUnit
		}
	}
	return strings.Repeat(" ", shortest)
}
