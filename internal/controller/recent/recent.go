package recent

import (
	"context"
	"strings"
)

// Limit is how many recent searches are kept.
const Limit = 5

// Add puts q at the front of list. A case-insensitive duplicate is replaced so the latest
// casing wins. The rest of list is normalized first. Blank queries leave the list as is.
// The input slice is not modified.
func Add(list []string, q string) []string {
	q = strings.TrimSpace(q)
	if q == "" {
		return Normalize(list)
	}

	out := make([]string, 0, Limit)
	out = append(out, q)
	for _, existing := range Normalize(list) {
		if len(out) == Limit {
			break
		}
		if strings.EqualFold(existing, q) {
			continue
		}
		out = append(out, existing)
	}
	return out
}

// Normalize returns a copy without blanks or case-insensitive duplicates, bounded to Limit.
// Earlier entries win.
func Normalize(list []string) []string {
	out := make([]string, 0, min(len(list), Limit))
	seen := make(map[string]struct{}, len(list))
	for _, item := range list {
		item = strings.TrimSpace(item)
		key := strings.ToLower(item)
		if item == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, item)
		if len(out) == Limit {
			break
		}
	}
	return out
}

// Store persists the whole recent list for one owner. Save replaces the stored list.
type Store interface {
	Load(ctx context.Context, owner string) ([]string, error)
	Save(ctx context.Context, owner string, list []string) error
}
