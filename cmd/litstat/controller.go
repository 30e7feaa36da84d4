package main

import (
	"fmt"
	"log/slog"

	"github.com/score-law/litigation-analytics/internal"
	"github.com/score-law/litigation-analytics/internal/infra"
	"github.com/score-law/litigation-analytics/specs"
)

// Result domains.
const (
	domainDispositions = "dispositions"
	domainSentences    = "sentences"
	domainBail         = "bail"
	domainMotions      = "motions"
)

// resultSet is one fetched page of rows.
type resultSet struct {
	Records []specs.AggregateRecordSpec     `json:"records"`
	Motions []specs.MotionOutcomeRecordSpec `json:"motions"`
}

// seriesSet holds the series of one domain; only that domain's field is set.
type seriesSet struct {
	Dispositions []specs.DispositionSeriesSpec
	Sentences    []specs.SentenceSeriesSpec
	Bail         []specs.BailSeriesSpec
	Motions      []specs.MotionSeriesSpec
}

// output is what the CLI prints.
type output struct {
	Series any                   `json:"series"`
	Chart  specs.ChartSeriesSpec `json:"chart"`
	Domain *specs.DomainSpec     `json:"domain"`
	Index  *float64              `json:"index,omitempty"`
}

// === EVENTS ===

type ResultSetFetchedEvent struct {
	Domain   string
	Subject  resultSet
	Baseline *resultSet
}

func (e ResultSetFetchedEvent) EventType() infra.EventType { return infra.ResultSetFetched }

type SeriesExtractedEvent struct {
	Domain   string
	Subject  seriesSet
	Baseline *seriesSet
}

func (e SeriesExtractedEvent) EventType() infra.EventType { return infra.SeriesExtracted }

type SeriesComparedEvent struct {
	Domain      string
	Series      seriesSet
	Comparative bool
}

func (e SeriesComparedEvent) EventType() infra.EventType { return infra.SeriesCompared }

type ChartPreparedEvent struct {
	Output output
}

func (e ChartPreparedEvent) EventType() infra.EventType { return infra.ChartPrepared }

// === CONTROLLER ===

// controller sequences one result page through the pipeline stages. The first
// stage error stops the chain.
type controller struct {
	bus    *infra.Bus
	tables specs.ExtractionConfigSpec
	scale  string
	log    *slog.Logger

	result *output
	err    error
}

func newController(tables specs.ExtractionConfigSpec, scale string, log *slog.Logger) *controller {
	c := &controller{bus: infra.NewBus(), tables: tables, scale: scale, log: log}
	c.bus.Subscribe(infra.ResultSetFetched, c.extract)
	c.bus.Subscribe(infra.SeriesExtracted, c.compare)
	c.bus.Subscribe(infra.SeriesCompared, c.prepareChart)
	c.bus.Subscribe(infra.ChartPrepared, c.collect)
	return c
}

// Run transforms one fetched page and returns the prepared output.
func (c *controller) Run(fetched ResultSetFetchedEvent) (output, error) {
	c.result, c.err = nil, nil
	c.bus.Publish(fetched)
	if c.err != nil {
		return output{}, c.err
	}
	if c.result == nil {
		return output{}, fmt.Errorf("pipeline produced no chart for %q", fetched.Domain)
	}
	return *c.result, nil
}

func (c *controller) extract(e infra.Event) {
	fetched := e.(ResultSetFetchedEvent)

	subject, err := c.extractSet(fetched.Domain, fetched.Subject)
	if err != nil {
		c.err = fmt.Errorf("extract subject: %w", err)
		return
	}

	extracted := SeriesExtractedEvent{Domain: fetched.Domain, Subject: subject}
	if fetched.Baseline != nil {
		baseline, err := c.extractSet(fetched.Domain, *fetched.Baseline)
		if err != nil {
			c.err = fmt.Errorf("extract baseline: %w", err)
			return
		}
		extracted.Baseline = &baseline
	}

	c.log.Debug("series extracted", "domain", fetched.Domain, "comparative", extracted.Baseline != nil)
	c.bus.Publish(extracted)
}

func (c *controller) extractSet(domain string, rows resultSet) (seriesSet, error) {
	var set seriesSet
	var err error
	switch domain {
	case domainDispositions:
		set.Dispositions, err = internal.ExtractDispositions(rows.Records, c.tables)
	case domainSentences:
		set.Sentences, err = internal.ExtractSentences(rows.Records, c.tables)
	case domainBail:
		set.Bail, err = internal.ExtractBail(rows.Records, c.tables)
	case domainMotions:
		set.Motions, err = internal.ExtractMotions(rows.Motions, c.tables)
	default:
		err = fmt.Errorf("unknown domain %q", domain)
	}
	return set, err
}

func (c *controller) compare(e infra.Event) {
	extracted := e.(SeriesExtractedEvent)
	if extracted.Baseline == nil {
		c.bus.Publish(SeriesComparedEvent{Domain: extracted.Domain, Series: extracted.Subject})
		return
	}

	s, b := extracted.Subject, *extracted.Baseline
	var compared seriesSet
	switch extracted.Domain {
	case domainDispositions:
		compared.Dispositions = internal.CompareDispositions(s.Dispositions, b.Dispositions)
	case domainSentences:
		compared.Sentences = internal.CompareSentences(s.Sentences, b.Sentences)
	case domainBail:
		compared.Bail = internal.CompareBail(s.Bail, b.Bail)
	case domainMotions:
		compared.Motions = internal.CompareMotions(s.Motions, b.Motions)
	}
	c.bus.Publish(SeriesComparedEvent{Domain: extracted.Domain, Series: compared, Comparative: true})
}

func (c *controller) prepareChart(e infra.Event) {
	compared := e.(SeriesComparedEvent)
	s := compared.Series

	var out output
	var headline []float64
	switch compared.Domain {
	case domainDispositions:
		out.Series = s.Dispositions
		out.Chart = internal.DispositionChart(s.Dispositions, compared.Comparative)
		headline = internal.DispositionHeadlineRatios(s.Dispositions)
	case domainSentences:
		out.Series = s.Sentences
		out.Chart = internal.SentenceChart(s.Sentences, compared.Comparative)
		headline = internal.SentenceHeadlineRatios(s.Sentences)
	case domainBail:
		out.Series = s.Bail
		out.Chart = internal.BailChart(s.Bail, compared.Comparative)
		headline = internal.BailHeadlineRatios(s.Bail)
	case domainMotions:
		out.Series = s.Motions
		out.Chart = internal.MotionChart(s.Motions, compared.Comparative)
		headline = internal.MotionHeadlineRatios(s.Motions)
	}

	if compared.Comparative {
		index := internal.ComparativeIndex(headline)
		out.Index = &index
	}

	domain, err := internal.ComputeDomain(internal.ChartMaxAbs(out.Chart), scalePolicy(c.scale, compared.Comparative))
	if err != nil {
		c.err = fmt.Errorf("compute domain: %w", err)
		return
	}
	out.Domain = domain

	c.bus.Publish(ChartPreparedEvent{Output: out})
}

func (c *controller) collect(e infra.Event) {
	out := e.(ChartPreparedEvent).Output
	c.result = &out
}

// scalePolicy maps a scale name to an axis policy. Fixed objective charts span
// 0–100%, fixed comparative charts span ±100%.
func scalePolicy(scale string, comparative bool) specs.DomainPolicySpec {
	switch scale {
	case "fixed":
		if comparative {
			return specs.DomainPolicySpec{Kind: specs.DomainPolicyFixed, Min: -100, Max: 100}
		}
		return specs.DomainPolicySpec{Kind: specs.DomainPolicyFixed, Min: 0, Max: 100}
	case "auto":
		return specs.DomainPolicySpec{Kind: specs.DomainPolicyAuto}
	default:
		return internal.DefaultDynamicPolicy(comparative)
	}
}
