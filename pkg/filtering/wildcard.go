package filtering

import (
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
)

// wildcardChars are the metacharacters that switch a pattern from
// substring to wildcard matching.
const wildcardChars = "*?["

// hasWildcard reports whether the pattern contains a wildcard
// metacharacter.
func hasWildcard(pattern string) bool {
	return strings.ContainsAny(pattern, wildcardChars)
}

// braceEscaper neutralizes glob brace alternation. Only '*', '?' and
// '[...]' classes are wildcard syntax in filter patterns; braces and
// commas are ordinary name characters.
var braceEscaper = strings.NewReplacer("{", `\{`, "}", `\}`, ",", `\,`)

// compileWildcard compiles a pattern into a case-insensitive glob
// matcher. The pattern is probed with filepath.Match first, which rejects
// malformed character classes, then compiled lowercased so that matching
// lowercased names gives case-insensitive whole-name semantics.
func compileWildcard(pattern string) (glob.Glob, error) {
	if _, err := filepath.Match(pattern, "probe"); err != nil {
		return nil, err
	}
	return glob.Compile(braceEscaper.Replace(strings.ToLower(pattern)))
}

// whitelistMatcher matches one hidden-files whitelist entry against a
// display name. Wildcard entries carry a compiled glob; plain entries
// match the whole name case-insensitively.
type whitelistMatcher struct {
	pattern glob.Glob // nil for exact entries
	exact   string
}

func (m whitelistMatcher) matches(name string) bool {
	if m.pattern != nil {
		return m.pattern.Match(strings.ToLower(name))
	}
	return strings.EqualFold(m.exact, name)
}

// compileWhitelist builds the matcher list for the given whitelist
// patterns. Each pattern is trimmed; empty entries are skipped and
// wildcard entries that fail to compile are dropped without affecting
// the remaining entries.
func compileWhitelist(patterns []string) []whitelistMatcher {
	matchers := make([]whitelistMatcher, 0, len(patterns))
	for _, pattern := range patterns {
		trimmed := strings.TrimSpace(pattern)
		if trimmed == "" {
			continue
		}
		if hasWildcard(trimmed) {
			g, err := compileWildcard(trimmed)
			if err != nil {
				continue
			}
			matchers = append(matchers, whitelistMatcher{pattern: g})
		} else {
			matchers = append(matchers, whitelistMatcher{exact: trimmed})
		}
	}
	return matchers
}
