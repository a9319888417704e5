package assistant

import "github.com/blacknovastudio/briefing-portal/internal/orders"

// SuggestedType returns the category to apply from a suggestion list: only
// the first element counts, the rest are discarded.
func SuggestedType(types []string) (string, bool) {
	if len(types) == 0 {
		return "", false
	}
	return types[0], true
}

// MergeChecklist unions suggested options into the current selection.
// Suggestions outside the fixed checklist enumeration are dropped silently;
// existing selections keep their position and duplicates are not introduced.
func MergeChecklist(current, suggested []string) []string {
	merged := make([]string, 0, len(current)+len(suggested))
	seen := map[string]struct{}{}
	for _, it := range current {
		if _, dup := seen[it]; dup {
			continue
		}
		seen[it] = struct{}{}
		merged = append(merged, it)
	}
	for _, it := range suggested {
		if !orders.ValidChecklistItem(it) {
			continue
		}
		if _, dup := seen[it]; dup {
			continue
		}
		seen[it] = struct{}{}
		merged = append(merged, it)
	}
	return merged
}
