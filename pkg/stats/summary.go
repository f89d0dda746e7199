package stats

// Summary aggregates across groups: the class-wide view when groups are
// per-student stats.
type Summary struct {
	// Mean is the mean of per-group means, rounded to 2 decimal places.
	Mean float64
	// Max is the maximum of per-group maxima.
	Max int
	// Min is the minimum of per-group minima.
	Min int
	// Groups is the number of groups reduced.
	Groups int
}

// Summarize reduces the per-group stats of g to a cross-group Summary.
// Returns ErrEmptyInput when g holds no groups.
func Summarize(g *Grouped) (Summary, error) {
	keys := g.Keys()
	if len(keys) == 0 {
		return Summary{}, ErrEmptyInput
	}

	first, _ := g.Get(keys[0])
	summary := Summary{Max: first.Max, Min: first.Min, Groups: len(keys)}
	meanSum := 0.0

	for _, key := range keys {
		stats, _ := g.Get(key)
		meanSum += stats.Mean

		if stats.Max > summary.Max {
			summary.Max = stats.Max
		}

		if stats.Min < summary.Min {
			summary.Min = stats.Min
		}
	}

	summary.Mean = RoundMean(meanSum / float64(len(keys)))

	return summary, nil
}
