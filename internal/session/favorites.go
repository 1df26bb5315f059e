package session

import "sort"

// Favorites is the set of starred asset ids.
type Favorites struct {
	ids map[string]struct{}
}

// NewFavorites returns an empty set.
func NewFavorites() *Favorites {
	return &Favorites{ids: make(map[string]struct{})}
}

// Toggle flips membership for id and reports whether it is now a member.
// Repeating the same toggle flips state exactly once each time.
func (f *Favorites) Toggle(id string) bool {
	if _, ok := f.ids[id]; ok {
		delete(f.ids, id)
		return false
	}
	f.ids[id] = struct{}{}
	return true
}

// Contains reports membership.
func (f *Favorites) Contains(id string) bool {
	_, ok := f.ids[id]
	return ok
}

// Sorted returns the members in lexicographic order for stable display.
func (f *Favorites) Sorted() []string {
	ids := make([]string, 0, len(f.ids))
	for id := range f.ids {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Len reports the number of starred assets.
func (f *Favorites) Len() int {
	return len(f.ids)
}
