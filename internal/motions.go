package internal

import (
	"fmt"
	"sort"

	"github.com/score-law/litigation-analytics/specs"
)

// ExtractMotions implements specs.ExtractMotions.
func ExtractMotions(recordSpecs []specs.MotionOutcomeRecordSpec, configSpec specs.ExtractionConfigSpec) ([]specs.MotionSeriesSpec, error) {
	config, err := NewExtractionConfig(configSpec)
	if err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	records := make([]MotionOutcomeRecord, 0, len(recordSpecs))
	for i, spec := range recordSpecs {
		record, err := NewMotionOutcomeRecord(spec)
		if err != nil {
			pipelineLogger().Warn("dropping invalid motion outcome record",
				"series", "motions", "index", i, "error", err)
			continue
		}
		records = append(records, record)
	}

	return extractMotions(records, config.Motions(), config.Options()), nil
}

// motionTally accumulates the outcomes of one motion type.
type motionTally struct {
	status     specs.MotionOutcomeSpec
	partyFiled specs.MotionOutcomeSpec
}

// plus returns the sum of t and other.
func (t motionTally) plus(other motionTally) motionTally {
	return motionTally{
		status:     addOutcomes(t.status, other.status),
		partyFiled: addOutcomes(t.partyFiled, other.partyFiled),
	}
}

func tallyOf(r MotionOutcomeRecord, options ExtractionOptions) motionTally {
	granted := r.Accepted.ToInt64()
	denied := r.Denied.ToInt64() + r.NoAction.ToInt64() + r.Advisement.ToInt64()
	if options.CountUnknownAsDenied() {
		denied += r.Unknown.ToInt64()
	}
	outcome := specs.MotionOutcomeSpec{
		Granted: granted,
		Denied:  denied,
		Other:   r.Total() - granted - denied,
	}

	t := motionTally{status: outcome}
	if options.IsProsecution(r.Party) {
		t.partyFiled = outcome
	}
	return t
}

func extractMotions(records []MotionOutcomeRecord, canonical []MotionType, options ExtractionOptions) []specs.MotionSeriesSpec {
	tallies := make(map[string]motionTally)
	for _, r := range records {
		id := r.MotionID.ToString()
		tallies[id] = tallies[id].plus(tallyOf(r, options))
	}

	series := make([]specs.MotionSeriesSpec, 0, len(canonical)+len(tallies))
	listed := make(map[string]bool, len(canonical))
	for _, m := range canonical {
		id := m.ID().ToString()
		listed[id] = true
		series = append(series, motionEntry(id, m.Label().ToString(), tallies[id]))
	}

	if options.HideOtherMotions() {
		return series
	}

	others := make([]string, 0, len(tallies))
	for id := range tallies {
		if !listed[id] {
			others = append(others, id)
		}
	}
	sort.Strings(others)
	for _, id := range others {
		series = append(series, motionEntry(id, id, tallies[id]))
	}
	return series
}

func motionEntry(id, label string, t motionTally) specs.MotionSeriesSpec {
	return specs.MotionSeriesSpec{
		Type:       label,
		MotionID:   id,
		Count:      t.status.Granted + t.status.Denied + t.status.Other,
		Status:     t.status,
		PartyFiled: t.partyFiled,
	}
}

// DefenseOutcome derives defense-filed outcomes as Status − PartyFiled.
func DefenseOutcome(m specs.MotionSeriesSpec) specs.MotionOutcomeSpec {
	return specs.MotionOutcomeSpec{
		Granted: max(m.Status.Granted-m.PartyFiled.Granted, 0),
		Denied:  max(m.Status.Denied-m.PartyFiled.Denied, 0),
		Other:   max(m.Status.Other-m.PartyFiled.Other, 0),
	}
}

// GrantRate returns granted / (granted + denied), 0 when nothing was decided.
func GrantRate(o specs.MotionOutcomeSpec) float64 {
	return fraction(o.Granted, o.Granted+o.Denied)
}

func addOutcomes(a, b specs.MotionOutcomeSpec) specs.MotionOutcomeSpec {
	return specs.MotionOutcomeSpec{
		Granted: a.Granted + b.Granted,
		Denied:  a.Denied + b.Denied,
		Other:   a.Other + b.Other,
	}
}
