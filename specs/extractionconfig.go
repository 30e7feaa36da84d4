package specs

// ExtractionConfigSpec is the configuration table shared by all extractors.
//
// It declares every fixed list the extractors depend on: disposition labels
// and the counters they roll up, sentence kinds with their bucket ladders, the
// bail ladder, the canonical motion list and the behavioral flags that select
// between legitimate product variants. Passing the table explicitly keeps each
// extractor a pure function of its inputs.
type ExtractionConfigSpec struct {
	// Disposition labels in output order.
	Dispositions []DispositionLabelSpec `json:"dispositions" yaml:"dispositions"`

	// Sentence kinds in output order.
	Sentences []SentenceKindSpec `json:"sentences" yaml:"sentences"`

	// Bail labels and the cash-bail bucket ladder.
	Bail BailConfigSpec `json:"bail" yaml:"bail"`

	// Canonical motion types in output order.
	//
	// Every listed motion type appears in the output, zero-filled when absent
	// from the data, so chart category axes stay stable across selections.
	Motions []MotionTypeSpec `json:"motions" yaml:"motions"`

	// Behavioral flags.
	Options ExtractionOptionsSpec `json:"options" yaml:"options"`
}

// DispositionLabelSpec maps a display label to the counters it sums.
type DispositionLabelSpec struct {
	// Display label and category key. Examples: "Guilty", "Dismissed".
	Label string `json:"label" yaml:"label"`

	// Counter field names summed into this label.
	//
	// Must name fields of DispositionCountersSpec using their JSON names.
	// Examples: ["guilty"], ["dismissed", "dismissedAtRequest"].
	Fields []string `json:"fields" yaml:"fields"`
}

// SentenceKindSpec configures one sentence kind.
type SentenceKindSpec struct {
	// Display label and category key. Examples: "Fine", "Incarceration".
	Label string `json:"label" yaml:"label"`

	// Sentence kind identifier. One of the SentenceKind* constants.
	Kind string `json:"kind" yaml:"kind"`

	// Bucket ladder in display order.
	Buckets []BucketLadderSpec `json:"buckets" yaml:"buckets"`
}

// BucketLadderSpec declares one bucket of a ladder.
type BucketLadderSpec struct {
	// Key the bucket count is stored under in the record. Example: "le_500".
	Key string `json:"key" yaml:"key"`

	// Display label. Example: "$500".
	Label string `json:"label" yaml:"label"`
}

// BailConfigSpec configures the bail extractor.
type BailConfigSpec struct {
	CashLabel                 string             `json:"cashLabel" yaml:"cashLabel"`
	PersonalRecognizanceLabel string             `json:"personalRecognizanceLabel" yaml:"personalRecognizanceLabel"`
	DeniedLabel               string             `json:"deniedLabel" yaml:"deniedLabel"`
	Buckets                   []BucketLadderSpec `json:"buckets" yaml:"buckets"`
}

// MotionTypeSpec maps a motion type key to its display label.
type MotionTypeSpec struct {
	ID    string `json:"id" yaml:"id"`
	Label string `json:"label" yaml:"label"`
}

// ExtractionOptionsSpec holds the flags that select between product variants.
type ExtractionOptionsSpec struct {
	// Omit sentence kinds with a zero count instead of emitting the fixed list.
	FilterEmptySentenceKinds bool `json:"filterEmptySentenceKinds" yaml:"filterEmptySentenceKinds"`

	// Omit bail decision types with a zero count instead of emitting the fixed list.
	FilterEmptyBailKinds bool `json:"filterEmptyBailKinds" yaml:"filterEmptyBailKinds"`

	// Count "unknown" motion outcomes as denied rather than other.
	CountUnknownAsDenied bool `json:"countUnknownAsDenied" yaml:"countUnknownAsDenied"`

	// Drop motion types that are not in the canonical list.
	HideOtherMotions bool `json:"hideOtherMotions" yaml:"hideOtherMotions"`

	// Party values that identify prosecution-filed motions.
	//
	// Compared case-insensitively. Examples: ["prosecution", "commonwealth"].
	ProsecutionParties []string `json:"prosecutionParties" yaml:"prosecutionParties"`
}
