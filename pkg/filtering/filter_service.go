package filtering

import (
	"context"
	"log/slog"
)

// FilterService applies an ItemFilter across a list of items. It is the
// collaborator an item model uses on every list refresh to compute row
// visibility.
type FilterService interface {
	// ApplyFilter returns the items that are visible under the given
	// filter, preserving input order.
	ApplyFilter(ctx context.Context, items []Item, filter *ItemFilter) []Item
}

// defaultFilterService implements FilterService on top of ItemFilter
type defaultFilterService struct{}

var _ FilterService = (*defaultFilterService)(nil)

// NewDefaultFilterService creates a new defaultFilterService
func NewDefaultFilterService() FilterService {
	return &defaultFilterService{}
}

// ApplyFilter filters the item list based on the given filter
//
// The filtering process:
//  1. If no filter is given or no filter is set, return the input unchanged
//  2. Otherwise keep every item the filter matches, in input order
//
// Every decision is logged at debug level with the reason for inclusion
// or exclusion, which makes filter configurations easy to debug.
func (*defaultFilterService) ApplyFilter(_ context.Context, items []Item, filter *ItemFilter) []Item {
	if filter == nil || !filter.HasSetFilters() {
		slog.Debug("No filters set, returning items unchanged",
			"itemCount", len(items))
		return items
	}

	visible := make([]Item, 0, len(items))
	for _, item := range items {
		matched, reason := filter.match(item)
		if matched {
			visible = append(visible, item)
			slog.Debug("Including item",
				"name", item.DisplayName(),
				"reason", reason)
		} else {
			slog.Debug("Excluding item",
				"name", item.DisplayName(),
				"reason", reason)
		}
	}

	slog.Info("Item filtering completed",
		"totalItems", len(items),
		"visibleItems", len(visible),
		"filteredItems", len(items)-len(visible))

	return visible
}
