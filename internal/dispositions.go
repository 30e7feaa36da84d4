package internal

import (
	"fmt"

	"github.com/score-law/litigation-analytics/specs"
)

// ExtractDispositions implements specs.ExtractDispositions.
func ExtractDispositions(recordSpecs []specs.AggregateRecordSpec, configSpec specs.ExtractionConfigSpec) ([]specs.DispositionSeriesSpec, error) {
	config, err := NewExtractionConfig(configSpec)
	if err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	records := newAggregateRecords(recordSpecs, "dispositions")
	return extractDispositions(newRecordSetLogged(records, "dispositions"), config.Dispositions()), nil
}

// extractDispositions emits one entry per configured label, in label order.
// An empty record set yields an empty series.
func extractDispositions(set recordSet, labels []DispositionLabel) []specs.DispositionSeriesSpec {
	series := make([]specs.DispositionSeriesSpec, 0, len(labels))
	if set.empty() {
		return series
	}

	total := set.base.TotalCases.ToInt64()

	// First pass: per-label counts and the per-trial-type totals across labels.
	var trialTotals specs.TrialTypeCountsSpec
	for _, label := range labels {
		fields := label.Fields()
		counts := set.trialTypeCounts(func(r AggregateRecord) int64 {
			return r.Dispositions.Sum(fields)
		})
		trialTotals.Bench += counts.Bench
		trialTotals.Jury += counts.Jury
		trialTotals.None += counts.None

		count := set.base.Dispositions.Sum(fields)
		series = append(series, specs.DispositionSeriesSpec{
			Type:            label.Label().ToString(),
			Count:           count,
			Ratio:           fraction(count, total),
			TrialTypeCounts: counts,
		})
	}

	// Second pass: normalize each trial type by its own total.
	for i := range series {
		counts := series[i].TrialTypeCounts
		series[i].TrialTypeBreakdown = specs.TrialTypeBreakdownSpec{
			Bench: fraction(counts.Bench, trialTotals.Bench),
			Jury:  fraction(counts.Jury, trialTotals.Jury),
			None:  fraction(counts.None, trialTotals.None),
		}
	}

	return series
}
