package registration

// passingGrade is the Swiss passing threshold
const passingGrade = 4.0

// Summarize computes the summary statistics over grouped registrations.
// The raw average is the plain mean over every graded component, kept
// alongside the ECTS-weighted figure so users can sanity-check the
// computed value against the simpler one. All ratios are nil (not zero or
// NaN) when nothing is graded yet.
func Summarize(groups []ModuleGroup) Stats {
	stats := Stats{ModuleCount: len(groups)}

	var rawSum float64
	var passed int
	for _, g := range groups {
		for _, r := range g.Registrations {
			if r.FreieNote == nil {
				continue
			}
			stats.GradedCount++
			rawSum += *r.FreieNote
			if *r.FreieNote >= passingGrade {
				passed++
			}
		}
	}

	if stats.GradedCount > 0 {
		raw := rawSum / float64(stats.GradedCount)
		stats.RawAverage = &raw

		rate := float64(passed) / float64(stats.GradedCount)
		stats.PassRate = &rate
	}

	var weightedSum float64
	var ectsTotal int
	for _, g := range groups {
		if g.FinalGrade == nil {
			continue
		}
		weightedSum += *g.FinalGrade * float64(g.ECTS)
		ectsTotal += g.ECTS
	}

	if ectsTotal > 0 {
		// The half-grade rounding is applied once more to the aggregate
		weighted := RoundSwiss(weightedSum / float64(ectsTotal))
		stats.WeightedAverage = &weighted
	}

	return stats
}
