package render

import (
	"regexp"
	"sort"
)

// Matches {name} where name is a valid placeholder identifier.
// Capture 1 = name. Anything else containing braces is left alone.
var placeholderPattern = regexp.MustCompile(`\{([a-zA-Z_][a-zA-Z0-9_]*)\}`)

// Placeholders returns all placeholder names in order of appearance.
// A name referenced more than once appears more than once.
func Placeholders(s string) []string {
	matches := placeholderPattern.FindAllStringSubmatch(s, -1)
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m[1])
	}
	return out
}

// Fields returns the sorted set of unique placeholder names across the
// given template sections (typically subject and body).
func Fields(sections ...string) []string {
	seen := map[string]bool{}
	var out []string
	for _, s := range sections {
		for _, name := range Placeholders(s) {
			if !seen[name] {
				seen[name] = true
				out = append(out, name)
			}
		}
	}
	sort.Strings(out)
	return out
}
