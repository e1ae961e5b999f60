package analysis

import (
	"math"
	"sort"
)

// minDrift is the smallest change, in percentage points, reported as drift.
const minDrift = 0.01

// calculateDrift compares the first and last cohorts that have data.
// Categories whose share fell are declined, ones whose share grew emerged.
func calculateDrift(series []CohortSeries) CategoryDrift {
	var withData []CohortSeries
	for _, s := range series {
		if s.Total > 0 {
			withData = append(withData, s)
		}
	}
	if len(withData) < 2 {
		return CategoryDrift{}
	}

	from, to := withData[0], withData[len(withData)-1]
	drift := CategoryDrift{From: from.Cohort, To: to.Cohort}

	for category, before := range from.Percentages {
		after := to.Percentages[category]
		if math.Abs(after-before) < minDrift {
			continue
		}
		tag := DriftTag{Category: category, FromPercent: before, ToPercent: after}
		if after < before {
			drift.Declined = append(drift.Declined, tag)
		} else {
			drift.Emerged = append(drift.Emerged, tag)
		}
	}
	for category, after := range to.Percentages {
		if _, ok := from.Percentages[category]; !ok && after >= minDrift {
			drift.Emerged = append(drift.Emerged, DriftTag{Category: category, ToPercent: after})
		}
	}

	byChange := func(tags []DriftTag) {
		sort.Slice(tags, func(i, j int) bool {
			ci := math.Abs(tags[i].ToPercent - tags[i].FromPercent)
			cj := math.Abs(tags[j].ToPercent - tags[j].FromPercent)
			if ci != cj {
				return ci > cj
			}
			return tags[i].Category < tags[j].Category
		})
	}
	byChange(drift.Declined)
	byChange(drift.Emerged)
	return drift
}
