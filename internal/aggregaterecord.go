package internal

import (
	"fmt"
	"maps"

	"github.com/score-law/litigation-analytics/specs"
)

type AggregateRecord struct {
	CourtID       EntityID
	JudgeID       EntityID
	ChargeID      EntityID
	TrialCategory TrialCategory
	TotalCases    CaseCount
	Dispositions  DispositionCounters
	Sentences     SentenceCounters
	Bail          BailCounters
}

func NewAggregateRecord(spec specs.AggregateRecordSpec) (AggregateRecord, error) {
	courtID, err := NewEntityID(spec.CourtID)
	if err != nil {
		return AggregateRecord{}, fmt.Errorf("invalid court ID: %w", err)
	}

	judgeID, err := NewEntityID(spec.JudgeID)
	if err != nil {
		return AggregateRecord{}, fmt.Errorf("invalid judge ID: %w", err)
	}

	chargeID, err := NewEntityID(spec.ChargeID)
	if err != nil {
		return AggregateRecord{}, fmt.Errorf("invalid charge ID: %w", err)
	}

	category, err := NewTrialCategory(spec.TrialCategory)
	if err != nil {
		return AggregateRecord{}, fmt.Errorf("invalid trial category: %w", err)
	}

	totalCases, err := NewCaseCount(spec.TotalCases)
	if err != nil {
		return AggregateRecord{}, fmt.Errorf("invalid total cases: %w", err)
	}

	dispositions, err := NewDispositionCounters(spec.Dispositions)
	if err != nil {
		return AggregateRecord{}, fmt.Errorf("invalid dispositions: %w", err)
	}

	sentences, err := NewSentenceCounters(spec.Sentences)
	if err != nil {
		return AggregateRecord{}, fmt.Errorf("invalid sentences: %w", err)
	}

	bail, err := NewBailCounters(spec.Bail)
	if err != nil {
		return AggregateRecord{}, fmt.Errorf("invalid bail: %w", err)
	}

	return AggregateRecord{
		CourtID:       courtID,
		JudgeID:       judgeID,
		ChargeID:      chargeID,
		TrialCategory: category,
		TotalCases:    totalCases,
		Dispositions:  dispositions,
		Sentences:     sentences,
		Bail:          bail,
	}, nil
}

// EntityID identifies a court, judge or charge. Zero is the wildcard.
type EntityID struct {
	value int64
}

func NewEntityID(value int64) (EntityID, error) {
	if value < 0 {
		return EntityID{}, fmt.Errorf("ID cannot be negative: %d", value)
	}
	return EntityID{value: value}, nil
}

func (id EntityID) ToInt64() int64 {
	return id.value
}

func (id EntityID) IsWildcard() bool {
	return id.value == 0
}

type TrialCategory struct {
	value string
}

func NewTrialCategory(value string) (TrialCategory, error) {
	switch value {
	case specs.TrialCategoryBench, specs.TrialCategoryJury, specs.TrialCategoryNone, specs.TrialCategoryAny:
		return TrialCategory{value: value}, nil
	case "":
		return TrialCategory{}, fmt.Errorf("trial category is required")
	default:
		return TrialCategory{}, fmt.Errorf("unknown trial category: %q", value)
	}
}

func (c TrialCategory) ToString() string {
	return c.value
}

func (c TrialCategory) IsAny() bool {
	return c.value == specs.TrialCategoryAny
}

func (c TrialCategory) IsBench() bool {
	return c.value == specs.TrialCategoryBench
}

func (c TrialCategory) IsJury() bool {
	return c.value == specs.TrialCategoryJury
}

func (c TrialCategory) IsNone() bool {
	return c.value == specs.TrialCategoryNone
}

// CaseCount is a non-negative counter.
type CaseCount struct {
	value int64
}

func NewCaseCount(value int64) (CaseCount, error) {
	if value < 0 {
		return CaseCount{}, fmt.Errorf("count cannot be negative: %d", value)
	}
	return CaseCount{value: value}, nil
}

func (c CaseCount) ToInt64() int64 {
	return c.value
}

// DispositionCounters holds validated disposition counters indexed by field.
type DispositionCounters struct {
	counts [dispositionFieldCount]int64
}

func NewDispositionCounters(spec specs.DispositionCountersSpec) (DispositionCounters, error) {
	var counters DispositionCounters
	for field, def := range dispositionFields {
		v := def.read(spec)
		if v < 0 {
			return DispositionCounters{}, fmt.Errorf("%s cannot be negative: %d", def.name, v)
		}
		counters.counts[field] = v
	}
	return counters, nil
}

// Get returns the counter for field.
func (c DispositionCounters) Get(field DispositionField) int64 {
	if field < 0 || field >= dispositionFieldCount {
		return 0
	}
	return c.counts[field]
}

// Sum returns the total of the given counters.
func (c DispositionCounters) Sum(fields []DispositionField) int64 {
	var total int64
	for _, f := range fields {
		total += c.Get(f)
	}
	return total
}

// DispositionField names one counter of DispositionCountersSpec.
type DispositionField int

const (
	FieldAcquitted DispositionField = iota
	FieldDismissed
	FieldDismissedAtRequest
	FieldDismissedAccordSatisfaction
	FieldNolleProsequi
	FieldCWOF
	FieldGuilty
	FieldGuiltyPlea
	FieldGuiltyFiled
	FieldResponsible
	FieldNotResponsible
	FieldOther
	dispositionFieldCount
)

// dispositionFields declares the field-name to accessor mapping, indexed by DispositionField.
var dispositionFields = [dispositionFieldCount]struct {
	name string
	read func(specs.DispositionCountersSpec) int64
}{
	FieldAcquitted:                   {"acquitted", func(s specs.DispositionCountersSpec) int64 { return s.Acquitted }},
	FieldDismissed:                   {"dismissed", func(s specs.DispositionCountersSpec) int64 { return s.Dismissed }},
	FieldDismissedAtRequest:          {"dismissedAtRequest", func(s specs.DispositionCountersSpec) int64 { return s.DismissedAtRequest }},
	FieldDismissedAccordSatisfaction: {"dismissedAccordSatisfaction", func(s specs.DispositionCountersSpec) int64 { return s.DismissedAccordSatisfaction }},
	FieldNolleProsequi:               {"nolleProsequi", func(s specs.DispositionCountersSpec) int64 { return s.NolleProsequi }},
	FieldCWOF:                        {"cwof", func(s specs.DispositionCountersSpec) int64 { return s.CWOF }},
	FieldGuilty:                      {"guilty", func(s specs.DispositionCountersSpec) int64 { return s.Guilty }},
	FieldGuiltyPlea:                  {"guiltyPlea", func(s specs.DispositionCountersSpec) int64 { return s.GuiltyPlea }},
	FieldGuiltyFiled:                 {"guiltyFiled", func(s specs.DispositionCountersSpec) int64 { return s.GuiltyFiled }},
	FieldResponsible:                 {"responsible", func(s specs.DispositionCountersSpec) int64 { return s.Responsible }},
	FieldNotResponsible:              {"notResponsible", func(s specs.DispositionCountersSpec) int64 { return s.NotResponsible }},
	FieldOther:                       {"other", func(s specs.DispositionCountersSpec) int64 { return s.Other }},
}

// ParseDispositionField resolves a counter by its JSON field name.
func ParseDispositionField(name string) (DispositionField, error) {
	for field, def := range dispositionFields {
		if def.name == name {
			return DispositionField(field), nil
		}
	}
	return 0, fmt.Errorf("unknown disposition field: %q", name)
}

func (f DispositionField) ToString() string {
	if f < 0 || f >= dispositionFieldCount {
		return ""
	}
	return dispositionFields[f].name
}

// SentenceKind identifies one of the fixed sentence kinds.
type SentenceKind struct {
	value string
}

func NewSentenceKind(value string) (SentenceKind, error) {
	switch value {
	case specs.SentenceKindFine, specs.SentenceKindFee, specs.SentenceKindIncarceration,
		specs.SentenceKindProbation, specs.SentenceKindLicenseSuspension:
		return SentenceKind{value: value}, nil
	case "":
		return SentenceKind{}, fmt.Errorf("sentence kind is required")
	default:
		return SentenceKind{}, fmt.Errorf("unknown sentence kind: %q", value)
	}
}

func (k SentenceKind) ToString() string {
	return k.value
}

type SentenceCounters struct {
	kinds map[string]SentenceKindCounters
}

func NewSentenceCounters(spec specs.SentenceCountersSpec) (SentenceCounters, error) {
	bySpec := map[string]specs.SentenceKindCountersSpec{
		specs.SentenceKindFine:              spec.Fine,
		specs.SentenceKindFee:               spec.Fee,
		specs.SentenceKindIncarceration:     spec.Incarceration,
		specs.SentenceKindProbation:         spec.Probation,
		specs.SentenceKindLicenseSuspension: spec.LicenseSuspension,
	}

	kinds := make(map[string]SentenceKindCounters, len(bySpec))
	for kind, kindSpec := range bySpec {
		counters, err := NewSentenceKindCounters(kindSpec)
		if err != nil {
			return SentenceCounters{}, fmt.Errorf("%s: %w", kind, err)
		}
		kinds[kind] = counters
	}
	return SentenceCounters{kinds: kinds}, nil
}

// Kind returns the counters for kind. Unknown kinds are all-zero.
func (c SentenceCounters) Kind(kind SentenceKind) SentenceKindCounters {
	return c.kinds[kind.ToString()]
}

type SentenceKindCounters struct {
	count       CaseCount
	totalAmount Decimal
	totalDays   int64
	buckets     BucketCounts
}

func NewSentenceKindCounters(spec specs.SentenceKindCountersSpec) (SentenceKindCounters, error) {
	count, err := NewCaseCount(spec.Count)
	if err != nil {
		return SentenceKindCounters{}, fmt.Errorf("invalid count: %w", err)
	}

	totalAmount, err := NewDecimal(spec.TotalAmount)
	if err != nil {
		return SentenceKindCounters{}, fmt.Errorf("invalid total amount: %w", err)
	}
	if totalAmount.IsNegative() {
		return SentenceKindCounters{}, fmt.Errorf("total amount cannot be negative: %s", totalAmount)
	}

	if spec.TotalDays < 0 {
		return SentenceKindCounters{}, fmt.Errorf("total days cannot be negative: %d", spec.TotalDays)
	}

	buckets, err := NewBucketCounts(spec.Buckets)
	if err != nil {
		return SentenceKindCounters{}, fmt.Errorf("invalid buckets: %w", err)
	}

	return SentenceKindCounters{
		count:       count,
		totalAmount: totalAmount,
		totalDays:   spec.TotalDays,
		buckets:     buckets,
	}, nil
}

func (c SentenceKindCounters) Count() int64 {
	return c.count.ToInt64()
}

func (c SentenceKindCounters) TotalAmount() Decimal {
	return c.totalAmount
}

func (c SentenceKindCounters) TotalDays() int64 {
	return c.totalDays
}

func (c SentenceKindCounters) Buckets() BucketCounts {
	return c.buckets
}

type BailCounters struct {
	free      CaseCount
	cost      CaseCount
	denied    CaseCount
	totalCost Decimal
	buckets   BucketCounts
}

func NewBailCounters(spec specs.BailCountersSpec) (BailCounters, error) {
	free, err := NewCaseCount(spec.FreeCount)
	if err != nil {
		return BailCounters{}, fmt.Errorf("invalid free bail count: %w", err)
	}

	cost, err := NewCaseCount(spec.CostCount)
	if err != nil {
		return BailCounters{}, fmt.Errorf("invalid cost bail count: %w", err)
	}

	denied, err := NewCaseCount(spec.DeniedCount)
	if err != nil {
		return BailCounters{}, fmt.Errorf("invalid denied bail count: %w", err)
	}

	totalCost, err := NewDecimal(spec.TotalCost)
	if err != nil {
		return BailCounters{}, fmt.Errorf("invalid total bail cost: %w", err)
	}
	if totalCost.IsNegative() {
		return BailCounters{}, fmt.Errorf("total bail cost cannot be negative: %s", totalCost)
	}

	buckets, err := NewBucketCounts(spec.Buckets)
	if err != nil {
		return BailCounters{}, fmt.Errorf("invalid buckets: %w", err)
	}

	return BailCounters{
		free:      free,
		cost:      cost,
		denied:    denied,
		totalCost: totalCost,
		buckets:   buckets,
	}, nil
}

func (c BailCounters) FreeCount() int64 {
	return c.free.ToInt64()
}

func (c BailCounters) CostCount() int64 {
	return c.cost.ToInt64()
}

func (c BailCounters) DeniedCount() int64 {
	return c.denied.ToInt64()
}

func (c BailCounters) TotalCost() Decimal {
	return c.totalCost
}

func (c BailCounters) Buckets() BucketCounts {
	return c.buckets
}

// BucketCounts is a read-only copy of a record's bucket ladder counts.
type BucketCounts struct {
	counts map[string]int64
}

func NewBucketCounts(counts map[string]int64) (BucketCounts, error) {
	for key, v := range counts {
		if v < 0 {
			return BucketCounts{}, fmt.Errorf("bucket %q cannot be negative: %d", key, v)
		}
	}
	return BucketCounts{counts: maps.Clone(counts)}, nil
}

// Get returns the count stored under key, zero when absent.
func (b BucketCounts) Get(key string) int64 {
	return b.counts[key]
}

type MotionOutcomeRecord struct {
	MotionID   MotionID
	Party      string
	Accepted   CaseCount
	Denied     CaseCount
	NoAction   CaseCount
	Advisement CaseCount
	Unknown    CaseCount
}

func NewMotionOutcomeRecord(spec specs.MotionOutcomeRecordSpec) (MotionOutcomeRecord, error) {
	motionID, err := NewMotionID(spec.MotionID)
	if err != nil {
		return MotionOutcomeRecord{}, fmt.Errorf("invalid motion ID: %w", err)
	}

	accepted, err := NewCaseCount(spec.Accepted)
	if err != nil {
		return MotionOutcomeRecord{}, fmt.Errorf("invalid accepted count: %w", err)
	}

	denied, err := NewCaseCount(spec.Denied)
	if err != nil {
		return MotionOutcomeRecord{}, fmt.Errorf("invalid denied count: %w", err)
	}

	noAction, err := NewCaseCount(spec.NoAction)
	if err != nil {
		return MotionOutcomeRecord{}, fmt.Errorf("invalid no action count: %w", err)
	}

	advisement, err := NewCaseCount(spec.Advisement)
	if err != nil {
		return MotionOutcomeRecord{}, fmt.Errorf("invalid advisement count: %w", err)
	}

	unknown, err := NewCaseCount(spec.Unknown)
	if err != nil {
		return MotionOutcomeRecord{}, fmt.Errorf("invalid unknown count: %w", err)
	}

	return MotionOutcomeRecord{
		MotionID:   motionID,
		Party:      spec.Party,
		Accepted:   accepted,
		Denied:     denied,
		NoAction:   noAction,
		Advisement: advisement,
		Unknown:    unknown,
	}, nil
}

// Total returns the number of motions across all outcomes.
func (r MotionOutcomeRecord) Total() int64 {
	return r.Accepted.ToInt64() + r.Denied.ToInt64() + r.NoAction.ToInt64() +
		r.Advisement.ToInt64() + r.Unknown.ToInt64()
}

type MotionID struct {
	value string
}

func NewMotionID(value string) (MotionID, error) {
	if value == "" {
		return MotionID{}, fmt.Errorf("motion ID is required")
	}
	return MotionID{value: value}, nil
}

func (id MotionID) ToString() string {
	return id.value
}
