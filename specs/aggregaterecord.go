package specs

import "encoding/json"

// Trial category values carried by AggregateRecordSpec.TrialCategory.
const (
	TrialCategoryBench = "bench_trial"
	TrialCategoryJury  = "jury_trial"
	TrialCategoryNone  = "no_trial"
	TrialCategoryAny   = "any"
)

// AggregateRecordSpec represents one pre-aggregated statistics row.
//
// The data source persists one row per (court, judge, charge, trial category)
// combination. Each row carries pre-summed counters for dispositions, sentences
// and bail decisions. Rows are the input boundary of the transformation core:
// they are fetched per request, read once by the extractors and never modified.
type AggregateRecordSpec struct {
	// Court this row is scoped to.
	//
	// Zero means the row aggregates across all courts (wildcard).
	CourtID int64 `json:"courtId"`

	// Judge this row is scoped to.
	//
	// Zero means the row aggregates across all judges (wildcard).
	JudgeID int64 `json:"judgeId"`

	// Charge this row is scoped to.
	//
	// Zero means the row aggregates across all charges (wildcard).
	ChargeID int64 `json:"chargeId"`

	// Trial category this row is restricted to.
	//
	// One of "bench_trial", "jury_trial", "no_trial" or "any". The "any" row is
	// the unconditional base used as the denominator for ratio calculations.
	// The "no_trial" row is optional; when absent its counts are inferred as
	// the residual any − bench − jury.
	TrialCategory string `json:"trialCategory"`

	// Number of cases represented by this row.
	//
	// Denominator for ratio and percentage calculations. Disposition counters
	// need not sum to this value (some cases may be uncategorized).
	TotalCases int64 `json:"totalCases"`

	// Named disposition counters.
	Dispositions DispositionCountersSpec `json:"dispositions"`

	// Per-kind sentence counters and bucket ladders.
	Sentences SentenceCountersSpec `json:"sentences"`

	// Bail decision counters and the cash-bail bucket ladder.
	Bail BailCountersSpec `json:"bail"`

	// Recent-cases metadata.
	//
	// Opaque to the transformation core. Passed through by the data source for
	// display purposes and never read by any extractor.
	RecentCases json.RawMessage `json:"recentCases,omitempty"`
}

// DispositionCountersSpec holds the fixed set of disposition counters.
//
// Each counter is the number of cases in the row that ended with that
// disposition. Schema-variant subtypes (for example dismissals at the request
// of the prosecution) are kept as separate counters; configuration tables
// decide which counters roll up into which display label.
type DispositionCountersSpec struct {
	Acquitted                   int64 `json:"acquitted"`
	Dismissed                   int64 `json:"dismissed"`
	DismissedAtRequest          int64 `json:"dismissedAtRequest"`
	DismissedAccordSatisfaction int64 `json:"dismissedAccordSatisfaction"`
	NolleProsequi               int64 `json:"nolleProsequi"`
	CWOF                        int64 `json:"cwof"`
	Guilty                      int64 `json:"guilty"`
	GuiltyPlea                  int64 `json:"guiltyPlea"`
	GuiltyFiled                 int64 `json:"guiltyFiled"`
	Responsible                 int64 `json:"responsible"`
	NotResponsible              int64 `json:"notResponsible"`
	Other                       int64 `json:"other"`
}

// Sentence kind identifiers used by SentenceCountersSpec and configuration tables.
const (
	SentenceKindFine              = "fine"
	SentenceKindFee               = "fee"
	SentenceKindIncarceration     = "incarceration"
	SentenceKindProbation         = "probation"
	SentenceKindLicenseSuspension = "license_suspension"
)

// SentenceCountersSpec holds counters for each sentence kind.
type SentenceCountersSpec struct {
	Fine              SentenceKindCountersSpec `json:"fine"`
	Fee               SentenceKindCountersSpec `json:"fee"`
	Incarceration     SentenceKindCountersSpec `json:"incarceration"`
	Probation         SentenceKindCountersSpec `json:"probation"`
	LicenseSuspension SentenceKindCountersSpec `json:"licenseSuspension"`
}

// SentenceKindCountersSpec holds the counters for one sentence kind.
type SentenceKindCountersSpec struct {
	// Number of cases that received this kind of sentence.
	Count int64 `json:"count"`

	// Sum of monetary amounts as a decimal string.
	//
	// Stored as string to preserve precision. Empty means zero. Only meaningful
	// for monetary kinds (fine, fee). Examples: "12500", "731.50".
	TotalAmount string `json:"totalAmount,omitempty"`

	// Sum of durations in days.
	//
	// Only meaningful for duration kinds (incarceration, probation, license
	// suspension).
	TotalDays int64 `json:"totalDays,omitempty"`

	// Bucket counts keyed by bucket ladder key.
	//
	// The ladder (keys, order and display labels) is declared by the
	// configuration table. Counts of a well-formed row sum to Count. Missing
	// keys count as zero.
	Buckets map[string]int64 `json:"buckets,omitempty"`
}

// BailCountersSpec holds bail decision counters.
type BailCountersSpec struct {
	// Cases released on personal recognizance (no cash bail).
	FreeCount int64 `json:"freeBailCount"`

	// Cases where cash bail was set.
	CostCount int64 `json:"costBailCount"`

	// Cases where bail was denied.
	DeniedCount int64 `json:"deniedBailCount"`

	// Sum of cash bail amounts as a decimal string. Empty means zero.
	TotalCost string `json:"totalBailCost,omitempty"`

	// Cash-bail amount bucket counts keyed by bucket ladder key.
	//
	// Counts of a well-formed row sum to CostCount.
	Buckets map[string]int64 `json:"buckets,omitempty"`
}

// MotionOutcomeRecordSpec represents the outcomes of one motion type filed by one party.
//
// The data source returns one row per (aggregate record, motion type, filing
// party). Defense-filed counts are never stored: they are derived by
// subtracting prosecution-filed counts from the totals.
type MotionOutcomeRecordSpec struct {
	CourtID  int64 `json:"courtId"`
	JudgeID  int64 `json:"judgeId"`
	ChargeID int64 `json:"chargeId"`

	// Motion type key.
	//
	// Joins against the configured canonical motion list. Examples: "dismiss",
	// "suppress", "discovery".
	MotionID string `json:"motionId"`

	// Filing party.
	//
	// Compared case-insensitively against the configured prosecution parties.
	// Any other value is attributed to the defense by subtraction.
	Party string `json:"party"`

	Accepted   int64 `json:"accepted"`
	Denied     int64 `json:"denied"`
	NoAction   int64 `json:"noAction"`
	Advisement int64 `json:"advisement"`
	Unknown    int64 `json:"unknown"`
}
