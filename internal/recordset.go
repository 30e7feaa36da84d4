package internal

import (
	"github.com/score-law/litigation-analytics/specs"
)

type baseSource int

const (
	baseMissing baseSource = iota
	baseAny
	baseFallback
)

// recordSet indexes the records of one result set by trial category.
// The first record of each category wins.
type recordSet struct {
	base   AggregateRecord
	source baseSource
	first  *AggregateRecord
	bench  *AggregateRecord
	jury   *AggregateRecord
	none   *AggregateRecord
}

func newRecordSet(records []AggregateRecord) recordSet {
	var set recordSet
	for _, r := range records {
		set = set.with(r)
	}
	return set.resolveBase()
}

// with returns a copy of s that includes r.
func (s recordSet) with(r AggregateRecord) recordSet {
	next := s
	switch {
	case r.TrialCategory.IsAny() && next.source != baseAny:
		next.base = r
		next.source = baseAny
	case r.TrialCategory.IsBench() && next.bench == nil:
		next.bench = &r
	case r.TrialCategory.IsJury() && next.jury == nil:
		next.jury = &r
	case r.TrialCategory.IsNone() && next.none == nil:
		next.none = &r
	}
	if next.first == nil {
		next.first = &r
	}
	return next
}

// resolveBase falls back to the first record when no "any" record was seen.
func (s recordSet) resolveBase() recordSet {
	if s.source == baseAny || s.first == nil {
		return s
	}
	next := s
	next.base = *s.first
	next.source = baseFallback
	return next
}

func (s recordSet) empty() bool {
	return s.source == baseMissing
}

// trialTypeCounts splits a counter across bench, jury and no-trial records.
// No-trial counts fall back to the residual base − bench − jury.
func (s recordSet) trialTypeCounts(read func(AggregateRecord) int64) specs.TrialTypeCountsSpec {
	var counts specs.TrialTypeCountsSpec
	if s.bench != nil {
		counts.Bench = read(*s.bench)
	}
	if s.jury != nil {
		counts.Jury = read(*s.jury)
	}
	if s.none != nil {
		counts.None = read(*s.none)
	} else if residual := read(s.base) - counts.Bench - counts.Jury; residual > 0 {
		counts.None = residual
	}
	return counts
}

// newAggregateRecords converts record specs, dropping rows that fail validation.
func newAggregateRecords(recordSpecs []specs.AggregateRecordSpec, series string) []AggregateRecord {
	records := make([]AggregateRecord, 0, len(recordSpecs))
	for i, spec := range recordSpecs {
		record, err := NewAggregateRecord(spec)
		if err != nil {
			pipelineLogger().Warn("dropping invalid aggregate record",
				"series", series, "index", i, "error", err)
			continue
		}
		records = append(records, record)
	}
	return records
}

// newRecordSetLogged builds a record set and reports the base-record fallback.
func newRecordSetLogged(records []AggregateRecord, series string) recordSet {
	set := newRecordSet(records)
	if set.source == baseFallback {
		pipelineLogger().Warn("no \"any\" trial-category record; using first record as base",
			"series", series,
			"trialCategory", set.base.TrialCategory.ToString(),
			"courtId", set.base.CourtID.ToInt64(),
			"judgeId", set.base.JudgeID.ToInt64(),
			"chargeId", set.base.ChargeID.ToInt64())
	}
	return set
}
