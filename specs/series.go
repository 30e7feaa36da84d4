package specs

// DispositionSeriesSpec is one disposition category in a chart-ready series.
//
// Produced by ExtractDispositions in objective mode and by CompareDispositions
// in comparative mode. In comparative mode the ratio fields hold
// subject/baseline ratios (1.0 = same as baseline) while counts are preserved.
type DispositionSeriesSpec struct {
	// Category key (the configured disposition label).
	//
	// Stable join key between a subject series and its baseline series.
	// Examples: "Guilty", "Dismissed", "CWOF".
	Type string `json:"type"`

	// Number of cases with this disposition in the base record.
	Count int64 `json:"count"`

	// Share of all cases that ended with this disposition.
	//
	// count / totalCases, 0 when the base record has no cases.
	Ratio float64 `json:"ratio"`

	// Counts of this disposition per trial type.
	TrialTypeCounts TrialTypeCountsSpec `json:"trialTypeCounts"`

	// Share of each trial type's disposed cases that ended with this disposition.
	//
	// Each field is normalized by the trial-type total summed across all
	// configured labels, not by the grand total.
	TrialTypeBreakdown TrialTypeBreakdownSpec `json:"trialTypeBreakdown"`
}

// TrialTypeCountsSpec holds raw counts split by trial type.
type TrialTypeCountsSpec struct {
	Bench int64 `json:"bench"`
	Jury  int64 `json:"jury"`
	None  int64 `json:"none"`
}

// TrialTypeBreakdownSpec holds per-trial-type proportions.
type TrialTypeBreakdownSpec struct {
	Bench float64 `json:"bench"`
	Jury  float64 `json:"jury"`
	None  float64 `json:"none"`
}

// SentenceSeriesSpec is one sentence kind in a chart-ready series.
type SentenceSeriesSpec struct {
	// Category key (the configured sentence label). Examples: "Fine", "Incarceration".
	Type string `json:"type"`

	// Number of cases that received this kind of sentence.
	Count int64 `json:"count"`

	// count / totalCases × 100.
	Percentage float64 `json:"percentage"`

	// totalDays / count, 0 when count is 0.
	AverageDays float64 `json:"averageDays"`

	// totalAmount / count, 0 when count is 0.
	AverageCost float64 `json:"averageCost"`

	// Distribution over the configured bucket ladder, in ladder order.
	SentenceBuckets []BucketSpec `json:"sentenceBuckets"`
}

// BucketSpec is one sentence bucket.
type BucketSpec struct {
	// Bucket label from the configured ladder. Examples: "$500", "24+ months".
	Label string `json:"label"`

	// Cases that fell in this bucket.
	Count int64 `json:"count"`

	// bucketCount / kindCount × 100.
	Percentage float64 `json:"percentage"`
}

// BailSeriesSpec is one bail decision type in a chart-ready series.
type BailSeriesSpec struct {
	// Category key. Examples: "Cash Bail", "Personal Recognizance", "Denied".
	Type string `json:"type"`

	Count int64 `json:"count"`

	// count / totalCases × 100.
	Percentage float64 `json:"percentage"`

	// Average cash bail amount. Always 0 for non-cash decisions.
	AverageCost float64 `json:"averageCost"`

	// Cash-bail amount distribution. Only populated for cash bail.
	BailBuckets []BailBucketSpec `json:"bailBuckets,omitempty"`
}

// BailBucketSpec is one cash-bail amount bucket.
type BailBucketSpec struct {
	// Bucket label from the configured ladder. Examples: "$1000", "$10000+".
	Amount string `json:"amount"`

	Count int64 `json:"count"`

	// bucketCount / cashBailCount × 100.
	Percentage float64 `json:"percentage"`
}

// MotionSeriesSpec is one motion type in a chart-ready series.
type MotionSeriesSpec struct {
	// Category key (the configured display label, or the motion ID for motion
	// types missing from the canonical list).
	Type string `json:"type"`

	// Motion type key this entry was grouped by.
	MotionID string `json:"motionId"`

	// granted + denied + other.
	Count int64 `json:"count"`

	// Outcomes across all filing parties.
	Status MotionOutcomeSpec `json:"status"`

	// Outcomes restricted to motions filed by the prosecution.
	//
	// Defense outcomes are Status − PartyFiled and are computed on demand.
	PartyFiled MotionOutcomeSpec `json:"partyFiled"`

	// Subject/baseline grant-rate ratios. Only set in comparative mode.
	ComparativeRatios *MotionRatiosSpec `json:"comparativeRatios,omitempty"`
}

// MotionOutcomeSpec groups motion outcomes.
type MotionOutcomeSpec struct {
	Granted int64 `json:"granted"`
	Denied  int64 `json:"denied"`
	Other   int64 `json:"other"`
}

// MotionRatiosSpec holds comparative grant-rate ratios.
type MotionRatiosSpec struct {
	Overall     float64 `json:"overall"`
	Prosecution float64 `json:"prosecution"`
	Defense     float64 `json:"defense"`
}
