package stats

import "sort"

// Entry pairs a group key with its stats in a ranking.
type Entry struct {
	Key   string
	Stats AggregateStats
}

// Rank orders the groups of g by mean descending. The sort is stable, so
// groups with equal means keep their first-seen input order.
func Rank(g *Grouped) []Entry {
	entries := make([]Entry, 0, g.Len())

	for _, key := range g.Keys() {
		stats, _ := g.Get(key)
		entries = append(entries, Entry{Key: key, Stats: stats})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Stats.Mean > entries[j].Stats.Mean
	})

	return entries
}
