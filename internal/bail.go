package internal

import (
	"fmt"

	"github.com/score-law/litigation-analytics/specs"
)

// ExtractBail implements specs.ExtractBail.
func ExtractBail(recordSpecs []specs.AggregateRecordSpec, configSpec specs.ExtractionConfigSpec) ([]specs.BailSeriesSpec, error) {
	config, err := NewExtractionConfig(configSpec)
	if err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	records := newAggregateRecords(recordSpecs, "bail")
	set := newRecordSetLogged(records, "bail")
	return extractBail(set, config.Bail(), config.Options()), nil
}

// extractBail emits cash bail, personal recognizance and denied, in that order.
func extractBail(set recordSet, config BailConfig, options ExtractionOptions) []specs.BailSeriesSpec {
	total := set.base.TotalCases.ToInt64()
	bail := set.base.Bail

	cashCount := bail.CostCount()
	entries := []specs.BailSeriesSpec{
		{
			Type:        config.CashLabel().ToString(),
			Count:       cashCount,
			Percentage:  percentage(cashCount, total),
			AverageCost: averageAmount(bail.TotalCost(), cashCount),
			BailBuckets: bailBuckets(config.Ladder(), bail.Buckets(), cashCount),
		},
		{
			Type:       config.PersonalRecognizanceLabel().ToString(),
			Count:      bail.FreeCount(),
			Percentage: percentage(bail.FreeCount(), total),
		},
		{
			Type:       config.DeniedLabel().ToString(),
			Count:      bail.DeniedCount(),
			Percentage: percentage(bail.DeniedCount(), total),
		},
	}

	if !options.FilterEmptyBailKinds() {
		return entries
	}
	series := make([]specs.BailSeriesSpec, 0, len(entries))
	for _, e := range entries {
		if e.Count > 0 {
			series = append(series, e)
		}
	}
	return series
}

func bailBuckets(ladder BucketLadder, counts BucketCounts, cashCount int64) []specs.BailBucketSpec {
	buckets := make([]specs.BailBucketSpec, 0, len(ladder.Buckets()))
	for _, b := range ladder.Buckets() {
		n := counts.Get(b.Key)
		buckets = append(buckets, specs.BailBucketSpec{
			Amount:     b.Label,
			Count:      n,
			Percentage: percentage(n, cashCount),
		})
	}
	return buckets
}
