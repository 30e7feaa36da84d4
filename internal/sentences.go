package internal

import (
	"fmt"

	"github.com/score-law/litigation-analytics/specs"
)

// ExtractSentences implements specs.ExtractSentences.
func ExtractSentences(recordSpecs []specs.AggregateRecordSpec, configSpec specs.ExtractionConfigSpec) ([]specs.SentenceSeriesSpec, error) {
	config, err := NewExtractionConfig(configSpec)
	if err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	records := newAggregateRecords(recordSpecs, "sentences")
	set := newRecordSetLogged(records, "sentences")
	return extractSentences(set, config.Sentences(), config.Options()), nil
}

// extractSentences emits the configured kind list. With no records every kind
// is all-zero, so bucket alignment holds for any selection.
func extractSentences(set recordSet, kinds []SentenceKindConfig, options ExtractionOptions) []specs.SentenceSeriesSpec {
	total := set.base.TotalCases.ToInt64()

	series := make([]specs.SentenceSeriesSpec, 0, len(kinds))
	for _, kind := range kinds {
		counters := set.base.Sentences.Kind(kind.Kind())
		count := counters.Count()
		if count == 0 && options.FilterEmptySentenceKinds() {
			continue
		}

		series = append(series, specs.SentenceSeriesSpec{
			Type:            kind.Label().ToString(),
			Count:           count,
			Percentage:      percentage(count, total),
			AverageDays:     fraction(counters.TotalDays(), count),
			AverageCost:     averageAmount(counters.TotalAmount(), count),
			SentenceBuckets: sentenceBuckets(kind.Ladder(), counters.Buckets(), count),
		})
	}
	return series
}

func sentenceBuckets(ladder BucketLadder, counts BucketCounts, kindCount int64) []specs.BucketSpec {
	buckets := make([]specs.BucketSpec, 0, len(ladder.Buckets()))
	for _, b := range ladder.Buckets() {
		n := counts.Get(b.Key)
		buckets = append(buckets, specs.BucketSpec{
			Label:      b.Label,
			Count:      n,
			Percentage: percentage(n, kindCount),
		})
	}
	return buckets
}

// averageAmount divides an exact total by count, 0 when count is not positive.
func averageAmount(total Decimal, count int64) float64 {
	if count <= 0 {
		return 0
	}
	return total.Div(NewDecimalFromInt64(count)).Float64()
}
