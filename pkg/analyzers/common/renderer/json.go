package renderer

import "github.com/Sumatoshi-tech/gradefang/pkg/analyzers/analyze"

// JSONReport is the machine-readable form of the full report. OverallMean
// mirrors the executive summary: the average of all scored sections as a
// 0-1 fraction of the point scale, or -1 when only info sections exist.
type JSONReport struct {
	OverallMean      float64       `json:"overall_mean"`
	OverallMeanLabel string        `json:"overall_mean_label"`
	Sections         []JSONSection `json:"sections"`
}

// JSONSection is one analyzer's section. Mean carries the section score
// fraction; Rows lists the per-student or per-subject lines.
type JSONSection struct {
	Title        string             `json:"title"`
	Mean         float64            `json:"mean"`
	MeanLabel    string             `json:"mean_label"`
	Status       string             `json:"status"`
	Metrics      []JSONMetric       `json:"metrics"`
	Distribution []JSONDistribution `json:"distribution,omitempty"`
	Rows         []JSONRow          `json:"rows"`
}

// JSONMetric is a labeled metric value.
type JSONMetric struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// JSONDistribution is one category of a section distribution.
type JSONDistribution struct {
	Label   string  `json:"label"`
	Percent float64 `json:"percent"`
	Count   int     `json:"count"`
}

// JSONRow is one student or subject line. Values carries the raw score
// sequence in input order.
type JSONRow struct {
	Name     string `json:"name"`
	Detail   string `json:"detail"`
	Value    string `json:"value"`
	Severity string `json:"severity"`
	Values   []int  `json:"values,omitempty"`
}

func jsonMetrics(metrics []analyze.Metric) []JSONMetric {
	out := make([]JSONMetric, 0, len(metrics))
	for _, m := range metrics {
		out = append(out, JSONMetric{Label: m.Label, Value: m.Value})
	}

	return out
}

func jsonDistribution(items []analyze.DistributionItem) []JSONDistribution {
	if len(items) == 0 {
		return nil
	}

	out := make([]JSONDistribution, 0, len(items))
	for _, d := range items {
		out = append(out, JSONDistribution{Label: d.Label, Percent: d.Percent, Count: d.Count})
	}

	return out
}

func jsonRows(rows []analyze.Row) []JSONRow {
	out := make([]JSONRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, JSONRow{
			Name:     row.Name,
			Detail:   row.Detail,
			Value:    row.Value,
			Severity: row.Severity,
			Values:   row.Values,
		})
	}

	return out
}

// SectionToJSON converts a ReportSection to its JSON form.
func SectionToJSON(section analyze.ReportSection) JSONSection {
	return JSONSection{
		Title:        section.SectionTitle(),
		Mean:         section.Score(),
		MeanLabel:    section.ScoreLabel(),
		Status:       section.StatusMessage(),
		Metrics:      jsonMetrics(section.KeyMetrics()),
		Distribution: jsonDistribution(section.Distribution()),
		Rows:         jsonRows(section.AllRows()),
	}
}

// SectionsToJSON assembles the full JSONReport including the overall mean.
func SectionsToJSON(sections []analyze.ReportSection) JSONReport {
	summary := NewExecutiveSummary(sections)

	jsonSections := make([]JSONSection, 0, len(sections))
	for _, s := range sections {
		jsonSections = append(jsonSections, SectionToJSON(s))
	}

	return JSONReport{
		OverallMean:      summary.OverallScore(),
		OverallMeanLabel: summary.OverallScoreLabel(),
		Sections:         jsonSections,
	}
}
