package renderer

import (
	"fmt"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/Sumatoshi-tech/gradefang/pkg/stats"
)

// Medals awarded to the top ranked groups.
var rankMedals = []string{"🥇", "🥈", "🥉"}

// rankBadge returns the medal for the top three ranks and the plain
// rank number for everyone else. Ranks are 1-based.
func rankBadge(rank int) string {
	if rank >= 1 && rank <= len(rankMedals) {
		return fmt.Sprintf("%s %d", rankMedals[rank-1], rank)
	}

	return strconv.Itoa(rank)
}

// RankingTable renders ranked group statistics as a go-pretty table.
// Entries must already be ordered best-first. total is the full group
// count; when entries is a truncated prefix the footer says so.
func RankingTable(title string, entries []stats.Entry, total int) string {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.SeparateRows = false
	tbl.Style().Options.SeparateColumns = false
	tbl.Style().Options.DrawBorder = false

	tbl.AppendHeader(table.Row{"Rank", "Name", "Mean", "Max", "Min", "Count"})

	for i, entry := range entries {
		tbl.AppendRow(table.Row{
			rankBadge(i + 1),
			entry.Key,
			fmt.Sprintf("%.2f", entry.Stats.Mean),
			entry.Stats.Max,
			entry.Stats.Min,
			entry.Stats.Count,
		})
	}

	footer := fmt.Sprintf("Total: %d groups", total)
	if len(entries) < total {
		footer = fmt.Sprintf("Top %d of %d groups", len(entries), total)
	}

	tbl.AppendFooter(table.Row{footer})

	return fmt.Sprintf("%s:\n%s", title, tbl.Render())
}
