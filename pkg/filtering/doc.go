// Package filtering decides which entries of a file manager's item list
// are visible under the current filter configuration.
//
// The package implements a single predicate, ItemFilter.Matches, that
// combines three independent filters: a name pattern, MIME type
// include/exclude lists, and a hidden-file policy with a whitelist of
// always-visible hidden names.
//
// # Name Filtering
//
// A pattern without wildcard metacharacters is matched as a
// case-insensitive substring of the display name. As soon as the pattern
// contains '*', '?' or '[' it is compiled into a glob matcher covering
// the whole name. Examples:
//
//   - "report" matches "Report-2024.pdf", "quarterly_reports"
//   - "*.txt" matches "notes.txt" but not "notes.pdf"
//   - "img_????.jpg" matches "IMG_0042.jpg"
//   - "server[1-3]" matches "server1", "server2", "server3"
//
// A pattern that fails to compile falls back to substring matching on the
// raw text; filtering is a best-effort UI concern and never fails.
//
// # MIME Type Filtering
//
// MIME type filtering uses exact string matching against the item's MIME
// type. Exclusion always wins: an item whose type is on the exclude list
// is rejected even when the same type is on the include list. A non-empty
// include list acts as a strict allow-list; an empty one admits any
// non-excluded type.
//
// # Hidden Files
//
// When hidden files are not shown, a hidden item is rejected before any
// other filter runs — unless the whitelist is enabled and one of its
// patterns matches the display name, in which case the item continues
// through the remaining filters like any visible entry. Whitelist entries
// are matched against the display name only.
//
// # Evaluation Order
//
//  1. Hidden-file gate (whitelist can rescue)
//  2. If neither a pattern nor MIME filters are set -> visible
//  3. If both are set -> both must match
//  4. Otherwise the one active filter decides
//
// # Usage Example
//
//	filter := NewItemFilter()
//	filter.SetPattern("*.md")
//	filter.SetHiddenFilesShown(false)
//	filter.SetHiddenFilesWhitelistEnabled(true)
//	filter.SetHiddenFilesWhitelist([]string{".git", ".config*"})
//
//	service := NewDefaultFilterService()
//	visible := service.ApplyFilter(ctx, allItems, filter)
//
// The filter performs no locking; the owning item model serializes access
// when it is shared between goroutines.
package filtering
