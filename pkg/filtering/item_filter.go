package filtering

import (
	"fmt"
	"slices"
	"strings"

	"github.com/gobwas/glob"
)

// Item exposes the entry attributes the filter inspects. The owning item
// model provides the concrete implementation; the filter never touches
// the file system itself.
type Item interface {
	// DisplayName returns the name shown in the item list.
	DisplayName() string

	// IsHidden reports whether the entry is a hidden file or directory.
	IsHidden() bool

	// MimeType returns the entry's MIME type, e.g. "text/plain".
	MimeType() string
}

// ItemFilter decides whether an item of a file list should be visible.
// It combines a name pattern, MIME type include/exclude lists and a
// hidden-file policy with a whitelist of always-visible hidden names.
//
// The zero value is not ready for use; create filters with NewItemFilter.
// All state is replaced through setters, each of which fully rebuilds the
// derived matchers. The filter performs no locking.
type ItemFilter struct {
	useGlob          bool      // if true patternGlob is used, otherwise lowerCasePattern
	patternGlob      glob.Glob // compiled from the lowercased pattern, nil in substring mode
	pattern          string    // property set by SetPattern
	lowerCasePattern string    // lowercase form for faster substring comparison

	mimeTypes        []string // property set by SetMimeTypes
	excludeMimeTypes []string // property set by SetExcludeMimeTypes

	hiddenFilesShown        bool // whether hidden items should be visible
	hiddenWhitelistEnabled  bool // whether the whitelist is active
	hiddenWhitelist         []string
	hiddenWhitelistMatchers []whitelistMatcher // compiled from hiddenWhitelist
}

// NewItemFilter creates an ItemFilter in its default state: no pattern,
// no MIME type filters, hidden files shown, whitelist disabled. In that
// state Matches returns true for every item.
func NewItemFilter() *ItemFilter {
	return &ItemFilter{
		hiddenFilesShown: true,
	}
}

// SetPattern sets the pattern that is compared against the display name
// in Matches. Per default the pattern defines a case-insensitive
// substring. As soon as it contains at least one '*', '?' or '[' it is
// treated as a wildcard pattern covering the whole name; if the wildcard
// pattern fails to compile the filter silently falls back to substring
// matching on the raw text.
func (f *ItemFilter) SetPattern(pattern string) {
	f.pattern = pattern
	f.lowerCasePattern = strings.ToLower(pattern)

	f.useGlob = false
	f.patternGlob = nil
	if hasWildcard(pattern) {
		if g, err := compileWildcard(pattern); err == nil {
			f.patternGlob = g
			f.useGlob = true
		}
	}
}

// Pattern returns the pattern set by SetPattern.
func (f *ItemFilter) Pattern() string {
	return f.pattern
}

// SetMimeTypes sets the list of MIME types that are compared against the
// item in Matches. A non-empty list acts as a strict allow-list. The
// entries are taken verbatim; MIME types are canonical lowercase tokens
// and the comparison is case-sensitive.
func (f *ItemFilter) SetMimeTypes(types []string) {
	f.mimeTypes = slices.Clone(types)
}

// MimeTypes returns the list set by SetMimeTypes.
func (f *ItemFilter) MimeTypes() []string {
	return f.mimeTypes
}

// SetExcludeMimeTypes sets the list of MIME types that are rejected in
// Matches. Exclusion wins over inclusion.
func (f *ItemFilter) SetExcludeMimeTypes(types []string) {
	f.excludeMimeTypes = slices.Clone(types)
}

// ExcludeMimeTypes returns the list set by SetExcludeMimeTypes.
func (f *ItemFilter) ExcludeMimeTypes() []string {
	return f.excludeMimeTypes
}

// SetHiddenFilesShown sets whether hidden items should be visible. When
// false, hidden items are filtered out unless they match the whitelist.
func (f *ItemFilter) SetHiddenFilesShown(shown bool) {
	f.hiddenFilesShown = shown
}

// HiddenFilesShown reports whether hidden items are visible.
func (f *ItemFilter) HiddenFilesShown() bool {
	return f.hiddenFilesShown
}

// SetHiddenFilesWhitelistEnabled sets whether the hidden-files whitelist
// is active. When enabled, hidden items matching a whitelist pattern stay
// visible even while hidden files are suppressed.
func (f *ItemFilter) SetHiddenFilesWhitelistEnabled(enabled bool) {
	f.hiddenWhitelistEnabled = enabled
}

// HiddenFilesWhitelistEnabled reports whether the whitelist is active.
func (f *ItemFilter) HiddenFilesWhitelistEnabled() bool {
	return f.hiddenWhitelistEnabled
}

// SetHiddenFilesWhitelist sets the patterns of hidden items that should
// always stay visible. Patterns support wildcards ('*', '?', '[');
// entries without wildcards match the whole name case-insensitively. The
// compiled matcher list is rebuilt from scratch on every call.
func (f *ItemFilter) SetHiddenFilesWhitelist(patterns []string) {
	f.hiddenWhitelist = slices.Clone(patterns)
	f.hiddenWhitelistMatchers = compileWhitelist(patterns)
}

// HiddenFilesWhitelist returns the patterns set by SetHiddenFilesWhitelist.
func (f *ItemFilter) HiddenFilesWhitelist() []string {
	return f.hiddenWhitelist
}

// HasSetFilters reports whether any filter is active: a non-empty
// pattern, a non-empty MIME type list, or hidden files being suppressed.
// The whitelist on its own does not count as a set filter.
func (f *ItemFilter) HasSetFilters() bool {
	return f.pattern != "" ||
		len(f.mimeTypes) > 0 ||
		len(f.excludeMimeTypes) > 0 ||
		!f.hiddenFilesShown
}

// Matches reports whether the item passes all active filters.
func (f *ItemFilter) Matches(item Item) bool {
	matched, _ := f.match(item)
	return matched
}

// match evaluates the filters in order and returns the decision together
// with a reason string for decision logging.
//
// Logic:
//  1. If hidden files are suppressed and the item is hidden, it is
//     rejected unless the whitelist is enabled and matches its name
//  2. If neither a pattern nor MIME type filters are set -> match
//  3. If both are set, both must match
//  4. Otherwise the one active filter decides
func (f *ItemFilter) match(item Item) (bool, string) {
	if !f.hiddenFilesShown && item.IsHidden() {
		whitelisted := f.hiddenWhitelistEnabled && f.matchesHiddenWhitelist(item.DisplayName())
		if !whitelisted {
			return false, "hidden item is not on the whitelist"
		}
		// Whitelisted hidden items continue through the remaining filters.
	}

	hasPatternFilter := f.pattern != ""
	hasMimeTypesFilter := len(f.mimeTypes) > 0 || len(f.excludeMimeTypes) > 0

	switch {
	case !hasPatternFilter && !hasMimeTypesFilter:
		return true, "no filters set"
	case hasPatternFilter && hasMimeTypesFilter:
		if !f.matchesPattern(item) {
			return false, fmt.Sprintf("name does not match pattern %q", f.pattern)
		}
		if !f.matchesType(item) {
			return false, fmt.Sprintf("MIME type %q rejected by type filters", item.MimeType())
		}
		return true, "matched pattern and MIME type filters"
	case hasPatternFilter:
		if !f.matchesPattern(item) {
			return false, fmt.Sprintf("name does not match pattern %q", f.pattern)
		}
		return true, fmt.Sprintf("name matches pattern %q", f.pattern)
	default:
		if !f.matchesType(item) {
			return false, fmt.Sprintf("MIME type %q rejected by type filters", item.MimeType())
		}
		return true, fmt.Sprintf("MIME type %q accepted by type filters", item.MimeType())
	}
}

// matchesPattern reports whether the display name matches the pattern set
// by SetPattern.
func (f *ItemFilter) matchesPattern(item Item) bool {
	if f.useGlob {
		return f.patternGlob.Match(strings.ToLower(item.DisplayName()))
	}
	return strings.Contains(strings.ToLower(item.DisplayName()), f.lowerCasePattern)
}

// matchesType reports whether the item's MIME type passes the
// include/exclude lists. Exclusion takes precedence; an empty include
// list admits any non-excluded type.
func (f *ItemFilter) matchesType(item Item) bool {
	if slices.Contains(f.excludeMimeTypes, item.MimeType()) {
		return false
	}
	if slices.Contains(f.mimeTypes, item.MimeType()) {
		return true
	}
	return len(f.mimeTypes) == 0
}

// matchesHiddenWhitelist reports whether any compiled whitelist matcher
// matches the display name. Only the name is checked, never the MIME
// type or a path.
func (f *ItemFilter) matchesHiddenWhitelist(name string) bool {
	for _, m := range f.hiddenWhitelistMatchers {
		if m.matches(name) {
			return true
		}
	}
	return false
}
