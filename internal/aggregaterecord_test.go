package internal

import (
	"testing"

	"github.com/score-law/litigation-analytics/specs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test helpers

type recordOption func(*specs.AggregateRecordSpec)

func withTrialCategory(category string) recordOption {
	return func(s *specs.AggregateRecordSpec) { s.TrialCategory = category }
}

func withTotalCases(total int64) recordOption {
	return func(s *specs.AggregateRecordSpec) { s.TotalCases = total }
}

func withJudge(id int64) recordOption {
	return func(s *specs.AggregateRecordSpec) { s.JudgeID = id }
}

func withDispositions(d specs.DispositionCountersSpec) recordOption {
	return func(s *specs.AggregateRecordSpec) { s.Dispositions = d }
}

func withFine(fine specs.SentenceKindCountersSpec) recordOption {
	return func(s *specs.AggregateRecordSpec) { s.Sentences.Fine = fine }
}

func withIncarceration(incarceration specs.SentenceKindCountersSpec) recordOption {
	return func(s *specs.AggregateRecordSpec) { s.Sentences.Incarceration = incarceration }
}

func withBail(bail specs.BailCountersSpec) recordOption {
	return func(s *specs.AggregateRecordSpec) { s.Bail = bail }
}

// newTestRecord creates an AggregateRecordSpec with the given options.
// CourtID defaults to 3 if not specified.
// TrialCategory defaults to "any" if not specified.
// TotalCases defaults to 100 if not specified.
// All counters default to zero.
func newTestRecord(opts ...recordOption) specs.AggregateRecordSpec {
	spec := specs.AggregateRecordSpec{
		CourtID:       3,
		TrialCategory: specs.TrialCategoryAny,
		TotalCases:    100,
	}

	for _, opt := range opts {
		opt(&spec)
	}

	return spec
}

type motionOption func(*specs.MotionOutcomeRecordSpec)

func withParty(party string) motionOption {
	return func(s *specs.MotionOutcomeRecordSpec) { s.Party = party }
}

func withOutcomes(accepted, denied, noAction, advisement, unknown int64) motionOption {
	return func(s *specs.MotionOutcomeRecordSpec) {
		s.Accepted = accepted
		s.Denied = denied
		s.NoAction = noAction
		s.Advisement = advisement
		s.Unknown = unknown
	}
}

// newTestMotion creates a MotionOutcomeRecordSpec for motionID.
// Party defaults to "defense" if not specified.
func newTestMotion(motionID string, opts ...motionOption) specs.MotionOutcomeRecordSpec {
	spec := specs.MotionOutcomeRecordSpec{
		CourtID:  3,
		MotionID: motionID,
		Party:    "defense",
	}

	for _, opt := range opts {
		opt(&spec)
	}

	return spec
}

func TestNewAggregateRecord(t *testing.T) {
	t.Run("creates record with all counters", func(t *testing.T) {
		// Arrange
		spec := newTestRecord(
			withJudge(42),
			withTotalCases(200),
			withDispositions(specs.DispositionCountersSpec{Guilty: 50, Dismissed: 30, CWOF: 7}),
			withFine(specs.SentenceKindCountersSpec{
				Count:       4,
				TotalAmount: "1250.50",
				Buckets:     map[string]int64{"le_500": 3, "le_1000": 1},
			}),
			withBail(specs.BailCountersSpec{FreeCount: 10, CostCount: 5, DeniedCount: 1, TotalCost: "2500"}),
		)

		// Act
		record, err := NewAggregateRecord(spec)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, int64(3), record.CourtID.ToInt64())
		assert.Equal(t, int64(42), record.JudgeID.ToInt64())
		assert.True(t, record.ChargeID.IsWildcard())
		assert.True(t, record.TrialCategory.IsAny())
		assert.Equal(t, int64(200), record.TotalCases.ToInt64())
		assert.Equal(t, int64(50), record.Dispositions.Get(FieldGuilty))
		assert.Equal(t, int64(7), record.Dispositions.Get(FieldCWOF))

		fine := record.Sentences.Kind(SentenceKind{value: specs.SentenceKindFine})
		assert.Equal(t, int64(4), fine.Count())
		assert.Equal(t, "1250.50", fine.TotalAmount().String())
		assert.Equal(t, int64(3), fine.Buckets().Get("le_500"))
		assert.Equal(t, int64(0), fine.Buckets().Get("gt_5000"))

		assert.Equal(t, int64(10), record.Bail.FreeCount())
		assert.Equal(t, int64(5), record.Bail.CostCount())
		assert.Equal(t, int64(1), record.Bail.DeniedCount())
		assert.Equal(t, "2500", record.Bail.TotalCost().String())
	})

	t.Run("does not alias the caller's bucket map", func(t *testing.T) {
		// Arrange
		buckets := map[string]int64{"le_500": 3}
		spec := newTestRecord(withBail(specs.BailCountersSpec{CostCount: 3, Buckets: buckets}))

		// Act
		record, err := NewAggregateRecord(spec)
		buckets["le_500"] = 99

		// Assert
		require.NoError(t, err)
		assert.Equal(t, int64(3), record.Bail.Buckets().Get("le_500"))
	})

	t.Run("with unknown trial category returns error", func(t *testing.T) {
		_, err := NewAggregateRecord(newTestRecord(withTrialCategory("mistrial")))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid trial category")
	})

	t.Run("with missing trial category returns error", func(t *testing.T) {
		_, err := NewAggregateRecord(newTestRecord(withTrialCategory("")))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "trial category is required")
	})

	t.Run("with negative total cases returns error", func(t *testing.T) {
		_, err := NewAggregateRecord(newTestRecord(withTotalCases(-1)))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid total cases")
	})

	t.Run("with negative disposition counter returns error naming the field", func(t *testing.T) {
		_, err := NewAggregateRecord(newTestRecord(withDispositions(specs.DispositionCountersSpec{NolleProsequi: -2})))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "nolleProsequi")
	})

	t.Run("with unparseable sentence amount returns error", func(t *testing.T) {
		_, err := NewAggregateRecord(newTestRecord(withFine(specs.SentenceKindCountersSpec{Count: 1, TotalAmount: "12,50"})))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid sentences")
	})

	t.Run("with negative bail cost returns error", func(t *testing.T) {
		_, err := NewAggregateRecord(newTestRecord(withBail(specs.BailCountersSpec{TotalCost: "-5"})))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot be negative")
	})

	t.Run("with negative bucket count returns error", func(t *testing.T) {
		_, err := NewAggregateRecord(newTestRecord(withIncarceration(specs.SentenceKindCountersSpec{
			Buckets: map[string]int64{"m1": -1},
		})))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "incarceration")
	})
}

func TestDispositionField(t *testing.T) {
	t.Run("every field name round-trips", func(t *testing.T) {
		for field := FieldAcquitted; field < dispositionFieldCount; field++ {
			parsed, err := ParseDispositionField(field.ToString())

			require.NoError(t, err)
			assert.Equal(t, field, parsed)
		}
	})

	t.Run("unknown names are rejected", func(t *testing.T) {
		_, err := ParseDispositionField("Guilty")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown disposition field")
	})

	t.Run("Sum adds the selected counters", func(t *testing.T) {
		counters, err := NewDispositionCounters(specs.DispositionCountersSpec{
			Dismissed:                   4,
			DismissedAtRequest:          2,
			DismissedAccordSatisfaction: 1,
			Guilty:                      9,
		})
		require.NoError(t, err)

		total := counters.Sum([]DispositionField{FieldDismissed, FieldDismissedAtRequest, FieldDismissedAccordSatisfaction})

		assert.Equal(t, int64(7), total)
	})
}

func TestNewMotionOutcomeRecord(t *testing.T) {
	t.Run("creates record and totals every outcome", func(t *testing.T) {
		record, err := NewMotionOutcomeRecord(newTestMotion("dismiss", withOutcomes(8, 2, 1, 1, 3)))

		require.NoError(t, err)
		assert.Equal(t, "dismiss", record.MotionID.ToString())
		assert.Equal(t, "defense", record.Party)
		assert.Equal(t, int64(15), record.Total())
	})

	t.Run("with empty motion ID returns error", func(t *testing.T) {
		_, err := NewMotionOutcomeRecord(newTestMotion(""))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid motion ID")
	})

	t.Run("with negative outcome returns error", func(t *testing.T) {
		_, err := NewMotionOutcomeRecord(newTestMotion("dismiss", withOutcomes(1, 0, -1, 0, 0)))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid no action count")
	})
}

func TestDecimal(t *testing.T) {
	t.Run("empty string is zero", func(t *testing.T) {
		d, err := NewDecimal("  ")

		require.NoError(t, err)
		assert.True(t, d.IsZero())
	})

	t.Run("non-finite values are rejected", func(t *testing.T) {
		_, err := NewDecimal("Infinity")

		assert.Error(t, err)
	})

	t.Run("division keeps exact cents until conversion", func(t *testing.T) {
		total, err := NewDecimal("100.10")
		require.NoError(t, err)

		avg := total.Div(NewDecimalFromInt64(2))

		assert.Equal(t, 0, avg.Cmp(mustDecimal(t, "50.05")))
		assert.InDelta(t, 50.05, avg.Float64(), 1e-9)
	})

	t.Run("division by zero yields zero", func(t *testing.T) {
		assert.True(t, NewDecimalFromInt64(7).Div(Decimal{}).IsZero())
	})

	t.Run("Add sums exactly", func(t *testing.T) {
		sum := mustDecimal(t, "0.1").Add(mustDecimal(t, "0.2"))

		assert.Equal(t, 0, sum.Cmp(mustDecimal(t, "0.3")))
	})
}

func mustDecimal(t *testing.T, s string) Decimal {
	t.Helper()
	d, err := NewDecimal(s)
	require.NoError(t, err)
	return d
}
