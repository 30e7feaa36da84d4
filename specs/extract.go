package specs

// ExtractDispositions folds aggregate records into a disposition series.
//
// Process:
//  1. Select the base record: the "any" trial-category record, or the first
//     valid record when "any" is absent (logged as a warning)
//  2. For each configured label, sum the label's counters from the base record
//  3. Compute ratio = count / totalCases
//  4. Read bench, jury and no-trial counts from the trial-category records
//     (no-trial falls back to the residual any − bench − jury)
//  5. Normalize each trial-type count by that trial type's total across labels
//
// Output order follows the configured label list. Empty input yields an empty
// series. The error return is reserved for an invalid configuration table.
//
// This is the spec-level interface using only primitive types.
// See internal.ExtractDispositions for the reference implementation.
type ExtractDispositions func(records []AggregateRecordSpec, config ExtractionConfigSpec) ([]DispositionSeriesSpec, error)

// ExtractSentences folds aggregate records into a sentence series.
//
// For each configured sentence kind: percentage of all cases, average days,
// average cost and the bucket distribution in ladder order. Bucket counts are
// copied from the record and never redistributed. The fixed kind list is
// always emitted unless FilterEmptySentenceKinds is set.
type ExtractSentences func(records []AggregateRecordSpec, config ExtractionConfigSpec) ([]SentenceSeriesSpec, error)

// ExtractBail folds aggregate records into a bail series.
//
// Cash bail carries an average amount and a bucketed amount distribution;
// personal recognizance and denied carry count and percentage only.
type ExtractBail func(records []AggregateRecordSpec, config ExtractionConfigSpec) ([]BailSeriesSpec, error)

// ExtractMotions folds motion outcome rows into a motion series.
//
// Rows are grouped by motion type. Granted sums accepted outcomes; denied sums
// denied, no-action and advisement outcomes (plus unknown when
// CountUnknownAsDenied is set); other is the remainder. Every canonical motion
// type appears in the output, zero-filled when absent.
type ExtractMotions func(records []MotionOutcomeRecordSpec, config ExtractionConfigSpec) ([]MotionSeriesSpec, error)

// CompareDispositions divides a subject series by a baseline series.
//
// Entries are paired by exact category key. Every ratio field becomes
// subject/baseline when both are strictly positive, else 1.0. Counts are
// preserved. Unmatched subject entries resolve to 1.0 and are kept.
type CompareDispositions func(subject, baseline []DispositionSeriesSpec) []DispositionSeriesSpec

// CompareMotions computes comparative grant-rate ratios.
//
// For each side independently: grant rate = granted / (granted + denied) for
// all motions, prosecution-filed motions and defense-filed motions. Then
// ComparativeRatios = subject rate / baseline rate with the neutral fallback.
type CompareMotions func(subject, baseline []MotionSeriesSpec) []MotionSeriesSpec
