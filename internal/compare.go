package internal

import (
	"math"

	"github.com/aclements/go-moremath/stats"
	"github.com/score-law/litigation-analytics/specs"
)

// CompareDispositions implements specs.CompareDispositions.
func CompareDispositions(subject, baseline []specs.DispositionSeriesSpec) []specs.DispositionSeriesSpec {
	index := indexByType(baseline, func(s specs.DispositionSeriesSpec) string { return s.Type })

	out := make([]specs.DispositionSeriesSpec, 0, len(subject))
	for _, s := range subject {
		b := lookup(index, s.Type, "dispositions")
		out = append(out, specs.DispositionSeriesSpec{
			Type:            s.Type,
			Count:           s.Count,
			Ratio:           NeutralRatio(s.Ratio, b.Ratio),
			TrialTypeCounts: s.TrialTypeCounts,
			TrialTypeBreakdown: specs.TrialTypeBreakdownSpec{
				Bench: NeutralRatio(s.TrialTypeBreakdown.Bench, b.TrialTypeBreakdown.Bench),
				Jury:  NeutralRatio(s.TrialTypeBreakdown.Jury, b.TrialTypeBreakdown.Jury),
				None:  NeutralRatio(s.TrialTypeBreakdown.None, b.TrialTypeBreakdown.None),
			},
		})
	}
	return out
}

// CompareSentences divides every sentence ratio field by its baseline counterpart.
// Buckets are paired by label.
func CompareSentences(subject, baseline []specs.SentenceSeriesSpec) []specs.SentenceSeriesSpec {
	index := indexByType(baseline, func(s specs.SentenceSeriesSpec) string { return s.Type })

	out := make([]specs.SentenceSeriesSpec, 0, len(subject))
	for _, s := range subject {
		b := lookup(index, s.Type, "sentences")
		baseBuckets := indexByType(b.SentenceBuckets, func(bk specs.BucketSpec) string { return bk.Label })

		buckets := make([]specs.BucketSpec, 0, len(s.SentenceBuckets))
		for _, bk := range s.SentenceBuckets {
			buckets = append(buckets, specs.BucketSpec{
				Label:      bk.Label,
				Count:      bk.Count,
				Percentage: NeutralRatio(bk.Percentage, baseBuckets[bk.Label].Percentage),
			})
		}

		out = append(out, specs.SentenceSeriesSpec{
			Type:            s.Type,
			Count:           s.Count,
			Percentage:      NeutralRatio(s.Percentage, b.Percentage),
			AverageDays:     NeutralRatio(s.AverageDays, b.AverageDays),
			AverageCost:     NeutralRatio(s.AverageCost, b.AverageCost),
			SentenceBuckets: buckets,
		})
	}
	return out
}

// CompareBail divides every bail ratio field by its baseline counterpart.
// Buckets are paired by amount label.
func CompareBail(subject, baseline []specs.BailSeriesSpec) []specs.BailSeriesSpec {
	index := indexByType(baseline, func(s specs.BailSeriesSpec) string { return s.Type })

	out := make([]specs.BailSeriesSpec, 0, len(subject))
	for _, s := range subject {
		b := lookup(index, s.Type, "bail")
		baseBuckets := indexByType(b.BailBuckets, func(bk specs.BailBucketSpec) string { return bk.Amount })

		var buckets []specs.BailBucketSpec
		if s.BailBuckets != nil {
			buckets = make([]specs.BailBucketSpec, 0, len(s.BailBuckets))
		}
		for _, bk := range s.BailBuckets {
			buckets = append(buckets, specs.BailBucketSpec{
				Amount:     bk.Amount,
				Count:      bk.Count,
				Percentage: NeutralRatio(bk.Percentage, baseBuckets[bk.Amount].Percentage),
			})
		}

		out = append(out, specs.BailSeriesSpec{
			Type:        s.Type,
			Count:       s.Count,
			Percentage:  NeutralRatio(s.Percentage, b.Percentage),
			AverageCost: NeutralRatio(s.AverageCost, b.AverageCost),
			BailBuckets: buckets,
		})
	}
	return out
}

// CompareMotions implements specs.CompareMotions.
func CompareMotions(subject, baseline []specs.MotionSeriesSpec) []specs.MotionSeriesSpec {
	index := indexByType(baseline, func(s specs.MotionSeriesSpec) string { return s.Type })

	out := make([]specs.MotionSeriesSpec, 0, len(subject))
	for _, s := range subject {
		b := lookup(index, s.Type, "motions")
		subjectRates := grantRates(s)
		baselineRates := grantRates(b)

		entry := s
		entry.ComparativeRatios = &specs.MotionRatiosSpec{
			Overall:     NeutralRatio(subjectRates.Overall, baselineRates.Overall),
			Prosecution: NeutralRatio(subjectRates.Prosecution, baselineRates.Prosecution),
			Defense:     NeutralRatio(subjectRates.Defense, baselineRates.Defense),
		}
		out = append(out, entry)
	}
	return out
}

// grantRates returns the overall, prosecution and defense grant rates of one entry.
func grantRates(m specs.MotionSeriesSpec) specs.MotionRatiosSpec {
	return specs.MotionRatiosSpec{
		Overall:     GrantRate(m.Status),
		Prosecution: GrantRate(m.PartyFiled),
		Defense:     GrantRate(DefenseOutcome(m)),
	}
}

// ComparativeIndex summarizes comparative ratios as their geometric mean.
// Non-positive or non-finite ratios count as neutral. Empty input is neutral.
func ComparativeIndex(ratios []float64) float64 {
	if len(ratios) == 0 {
		return 1.0
	}
	clean := make([]float64, len(ratios))
	for i, r := range ratios {
		if r > 0 && !math.IsInf(r, 0) {
			clean[i] = r
		} else {
			clean[i] = 1.0
		}
	}
	return stats.GeoMean(clean)
}

func DispositionHeadlineRatios(series []specs.DispositionSeriesSpec) []float64 {
	ratios := make([]float64, len(series))
	for i, s := range series {
		ratios[i] = s.Ratio
	}
	return ratios
}

func SentenceHeadlineRatios(series []specs.SentenceSeriesSpec) []float64 {
	ratios := make([]float64, len(series))
	for i, s := range series {
		ratios[i] = s.Percentage
	}
	return ratios
}

func BailHeadlineRatios(series []specs.BailSeriesSpec) []float64 {
	ratios := make([]float64, len(series))
	for i, s := range series {
		ratios[i] = s.Percentage
	}
	return ratios
}

func MotionHeadlineRatios(series []specs.MotionSeriesSpec) []float64 {
	ratios := make([]float64, len(series))
	for i, s := range series {
		ratios[i] = 1.0
		if s.ComparativeRatios != nil {
			ratios[i] = s.ComparativeRatios.Overall
		}
	}
	return ratios
}

// indexByType keys items by category. The first occurrence of a key wins.
func indexByType[T any](items []T, key func(T) string) map[string]T {
	index := make(map[string]T, len(items))
	for _, item := range items {
		k := key(item)
		if _, ok := index[k]; !ok {
			index[k] = item
		}
	}
	return index
}

// lookup returns the baseline entry for key, or the zero entry when unmatched.
// A zero entry makes every ratio resolve to neutral.
func lookup[T any](index map[string]T, key, series string) T {
	b, ok := index[key]
	if !ok {
		pipelineLogger().Debug("no baseline entry for category; using neutral ratio",
			"series", series, "category", key)
	}
	return b
}
