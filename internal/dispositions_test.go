package internal

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/score-law/litigation-analytics/specs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureLogs routes pipeline logs into a buffer for the rest of the test.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { SetLogger(nil) })
	return &buf
}

func findDisposition(t *testing.T, series []specs.DispositionSeriesSpec, label string) specs.DispositionSeriesSpec {
	t.Helper()
	for _, s := range series {
		if s.Type == label {
			return s
		}
	}
	require.Failf(t, "missing disposition", "no entry for %q", label)
	return specs.DispositionSeriesSpec{}
}

func trialRecords() []specs.AggregateRecordSpec {
	return []specs.AggregateRecordSpec{
		newTestRecord(
			withTotalCases(200),
			withDispositions(specs.DispositionCountersSpec{Guilty: 50, Dismissed: 30, Acquitted: 20}),
		),
		newTestRecord(
			withTrialCategory(specs.TrialCategoryBench),
			withTotalCases(40),
			withDispositions(specs.DispositionCountersSpec{Guilty: 10, Dismissed: 5, Acquitted: 5}),
		),
		newTestRecord(
			withTrialCategory(specs.TrialCategoryJury),
			withTotalCases(60),
			withDispositions(specs.DispositionCountersSpec{Guilty: 20, Dismissed: 10, Acquitted: 10}),
		),
	}
}

func TestExtractDispositions(t *testing.T) {
	t.Run("ratio is the share of all cases in the any record", func(t *testing.T) {
		// Arrange
		records := []specs.AggregateRecordSpec{
			newTestRecord(withTotalCases(200), withDispositions(specs.DispositionCountersSpec{Guilty: 50})),
		}

		// Act
		series, err := ExtractDispositions(records, DefaultExtractionConfigSpec())

		// Assert
		require.NoError(t, err)
		guilty := findDisposition(t, series, "Guilty")
		assert.Equal(t, int64(50), guilty.Count)
		assert.InDelta(t, 0.25, guilty.Ratio, 1e-12)
	})

	t.Run("emits one entry per configured label in table order", func(t *testing.T) {
		series, err := ExtractDispositions(trialRecords(), DefaultExtractionConfigSpec())

		require.NoError(t, err)
		labels := make([]string, len(series))
		for i, s := range series {
			labels[i] = s.Type
		}
		assert.Equal(t, []string{
			"Acquitted", "Dismissed", "Nolle Prosequi", "CWOF", "Guilty",
			"Guilty Plea", "Responsible", "Not Responsible", "Other",
		}, labels)
	})

	t.Run("labels sum every mapped field", func(t *testing.T) {
		records := []specs.AggregateRecordSpec{
			newTestRecord(withDispositions(specs.DispositionCountersSpec{
				Dismissed:                   4,
				DismissedAtRequest:          3,
				DismissedAccordSatisfaction: 1,
				GuiltyPlea:                  6,
				GuiltyFiled:                 2,
			})),
		}

		series, err := ExtractDispositions(records, DefaultExtractionConfigSpec())

		require.NoError(t, err)
		assert.Equal(t, int64(8), findDisposition(t, series, "Dismissed").Count)
		assert.Equal(t, int64(8), findDisposition(t, series, "Guilty Plea").Count)
	})

	t.Run("trial type counts read the bench and jury records and infer no-trial", func(t *testing.T) {
		series, err := ExtractDispositions(trialRecords(), DefaultExtractionConfigSpec())

		require.NoError(t, err)
		assert.Equal(t, specs.TrialTypeCountsSpec{Bench: 10, Jury: 20, None: 20}, findDisposition(t, series, "Guilty").TrialTypeCounts)
		assert.Equal(t, specs.TrialTypeCountsSpec{Bench: 5, Jury: 10, None: 15}, findDisposition(t, series, "Dismissed").TrialTypeCounts)
	})

	t.Run("explicit no-trial record wins over the residual", func(t *testing.T) {
		records := append(trialRecords(), newTestRecord(
			withTrialCategory(specs.TrialCategoryNone),
			withDispositions(specs.DispositionCountersSpec{Guilty: 3}),
		))

		series, err := ExtractDispositions(records, DefaultExtractionConfigSpec())

		require.NoError(t, err)
		assert.Equal(t, int64(3), findDisposition(t, series, "Guilty").TrialTypeCounts.None)
	})

	t.Run("breakdown normalizes by each trial type's own total", func(t *testing.T) {
		series, err := ExtractDispositions(trialRecords(), DefaultExtractionConfigSpec())

		require.NoError(t, err)
		guilty := findDisposition(t, series, "Guilty").TrialTypeBreakdown
		assert.InDelta(t, 0.5, guilty.Bench, 1e-12)
		assert.InDelta(t, 0.5, guilty.Jury, 1e-12)
		assert.InDelta(t, 0.5, guilty.None, 1e-12)

		acquitted := findDisposition(t, series, "Acquitted").TrialTypeBreakdown
		assert.InDelta(t, 0.25, acquitted.Bench, 1e-12)
		assert.InDelta(t, 0.125, acquitted.None, 1e-12)

		var bench, jury, none float64
		for _, s := range series {
			bench += s.TrialTypeBreakdown.Bench
			jury += s.TrialTypeBreakdown.Jury
			none += s.TrialTypeBreakdown.None
		}
		assert.InDelta(t, 1.0, bench, 1e-9)
		assert.InDelta(t, 1.0, jury, 1e-9)
		assert.InDelta(t, 1.0, none, 1e-9)
	})

	t.Run("zero total cases yields zero ratios rather than NaN", func(t *testing.T) {
		records := []specs.AggregateRecordSpec{
			newTestRecord(withTotalCases(0), withDispositions(specs.DispositionCountersSpec{Guilty: 1})),
		}

		series, err := ExtractDispositions(records, DefaultExtractionConfigSpec())

		require.NoError(t, err)
		for _, s := range series {
			assert.Zero(t, s.Ratio, s.Type)
			assert.Zero(t, s.TrialTypeBreakdown.Bench, s.Type)
		}
	})

	t.Run("empty input yields an empty series", func(t *testing.T) {
		series, err := ExtractDispositions(nil, DefaultExtractionConfigSpec())

		require.NoError(t, err)
		assert.NotNil(t, series)
		assert.Empty(t, series)
	})

	t.Run("missing any record falls back to the first record and warns", func(t *testing.T) {
		// Arrange
		logs := captureLogs(t)
		records := []specs.AggregateRecordSpec{
			newTestRecord(
				withTrialCategory(specs.TrialCategoryJury),
				withJudge(42),
				withTotalCases(10),
				withDispositions(specs.DispositionCountersSpec{Guilty: 4}),
			),
		}

		// Act
		series, err := ExtractDispositions(records, DefaultExtractionConfigSpec())

		// Assert
		require.NoError(t, err)
		assert.InDelta(t, 0.4, findDisposition(t, series, "Guilty").Ratio, 1e-12)
		assert.Contains(t, logs.String(), "level=WARN")
		assert.Contains(t, logs.String(), "trialCategory=jury_trial")
		assert.Contains(t, logs.String(), "judgeId=42")
	})

	t.Run("invalid rows are dropped with a warning", func(t *testing.T) {
		// Arrange
		logs := captureLogs(t)
		records := []specs.AggregateRecordSpec{
			newTestRecord(withTrialCategory("mistrial")),
			newTestRecord(withTotalCases(200), withDispositions(specs.DispositionCountersSpec{Guilty: 50})),
		}

		// Act
		series, err := ExtractDispositions(records, DefaultExtractionConfigSpec())

		// Assert
		require.NoError(t, err)
		assert.InDelta(t, 0.25, findDisposition(t, series, "Guilty").Ratio, 1e-12)
		assert.Contains(t, logs.String(), "dropping invalid aggregate record")
	})

	t.Run("invalid config returns error", func(t *testing.T) {
		config := DefaultExtractionConfigSpec()
		config.Dispositions[0].Fields = []string{"bogus"}

		_, err := ExtractDispositions(trialRecords(), config)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid config")
	})

	t.Run("input records are not modified", func(t *testing.T) {
		records := trialRecords()
		before := trialRecords()

		_, err := ExtractDispositions(records, DefaultExtractionConfigSpec())

		require.NoError(t, err)
		assert.Equal(t, before, records)
	})
}
