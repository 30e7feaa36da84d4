package internal

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/score-law/litigation-analytics/specs"
	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultTables []byte

// DefaultExtractionConfigSpec returns the built-in extraction tables.
// Each call returns a fresh copy.
func DefaultExtractionConfigSpec() specs.ExtractionConfigSpec {
	spec, err := ParseExtractionConfigSpec(defaultTables)
	if err != nil {
		panic(fmt.Sprintf("embedded extraction tables: %v", err))
	}
	return spec
}

// ParseExtractionConfigSpec decodes a YAML extraction table. Unknown keys are rejected.
func ParseExtractionConfigSpec(data []byte) (specs.ExtractionConfigSpec, error) {
	var spec specs.ExtractionConfigSpec
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&spec); err != nil {
		return specs.ExtractionConfigSpec{}, fmt.Errorf("invalid extraction tables: %w", err)
	}
	return spec, nil
}

// LoadExtractionConfigSpec reads and decodes a YAML extraction table file.
func LoadExtractionConfigSpec(path string) (specs.ExtractionConfigSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return specs.ExtractionConfigSpec{}, fmt.Errorf("read extraction tables: %w", err)
	}
	return ParseExtractionConfigSpec(data)
}

type ExtractionConfig struct {
	dispositions []DispositionLabel
	sentences    []SentenceKindConfig
	bail         BailConfig
	motions      []MotionType
	options      ExtractionOptions
}

func NewExtractionConfig(spec specs.ExtractionConfigSpec) (ExtractionConfig, error) {
	dispositions := make([]DispositionLabel, 0, len(spec.Dispositions))
	seen := make(map[string]bool)
	for i, d := range spec.Dispositions {
		label, err := NewDispositionLabel(d)
		if err != nil {
			return ExtractionConfig{}, fmt.Errorf("disposition %d: %w", i, err)
		}
		if seen[label.Label().ToString()] {
			return ExtractionConfig{}, fmt.Errorf("disposition %d: duplicate label %q", i, d.Label)
		}
		seen[label.Label().ToString()] = true
		dispositions = append(dispositions, label)
	}

	sentences := make([]SentenceKindConfig, 0, len(spec.Sentences))
	seen = make(map[string]bool)
	for i, s := range spec.Sentences {
		kind, err := NewSentenceKindConfig(s)
		if err != nil {
			return ExtractionConfig{}, fmt.Errorf("sentence %d: %w", i, err)
		}
		if seen[kind.Label().ToString()] {
			return ExtractionConfig{}, fmt.Errorf("sentence %d: duplicate label %q", i, s.Label)
		}
		seen[kind.Label().ToString()] = true
		sentences = append(sentences, kind)
	}

	bail, err := NewBailConfig(spec.Bail)
	if err != nil {
		return ExtractionConfig{}, fmt.Errorf("invalid bail: %w", err)
	}

	motions := make([]MotionType, 0, len(spec.Motions))
	seenIDs := make(map[string]bool)
	seen = make(map[string]bool)
	for i, m := range spec.Motions {
		motion, err := NewMotionType(m)
		if err != nil {
			return ExtractionConfig{}, fmt.Errorf("motion %d: %w", i, err)
		}
		if seenIDs[m.ID] {
			return ExtractionConfig{}, fmt.Errorf("motion %d: duplicate ID %q", i, m.ID)
		}
		if seen[m.Label] {
			return ExtractionConfig{}, fmt.Errorf("motion %d: duplicate label %q", i, m.Label)
		}
		seenIDs[m.ID] = true
		seen[m.Label] = true
		motions = append(motions, motion)
	}

	return ExtractionConfig{
		dispositions: dispositions,
		sentences:    sentences,
		bail:         bail,
		motions:      motions,
		options:      NewExtractionOptions(spec.Options),
	}, nil
}

func (c ExtractionConfig) Dispositions() []DispositionLabel {
	return c.dispositions
}

func (c ExtractionConfig) Sentences() []SentenceKindConfig {
	return c.sentences
}

func (c ExtractionConfig) Bail() BailConfig {
	return c.bail
}

func (c ExtractionConfig) Motions() []MotionType {
	return c.motions
}

func (c ExtractionConfig) Options() ExtractionOptions {
	return c.options
}

// CategoryKey is the stable, case-sensitive join key of a series entry.
type CategoryKey struct {
	value string
}

func NewCategoryKey(value string) (CategoryKey, error) {
	if strings.TrimSpace(value) == "" {
		return CategoryKey{}, fmt.Errorf("label is required")
	}
	return CategoryKey{value: value}, nil
}

func (k CategoryKey) ToString() string {
	return k.value
}

type DispositionLabel struct {
	label  CategoryKey
	fields []DispositionField
}

func NewDispositionLabel(spec specs.DispositionLabelSpec) (DispositionLabel, error) {
	label, err := NewCategoryKey(spec.Label)
	if err != nil {
		return DispositionLabel{}, fmt.Errorf("invalid label: %w", err)
	}

	if len(spec.Fields) == 0 {
		return DispositionLabel{}, fmt.Errorf("label %q: at least one field is required", spec.Label)
	}

	fields := make([]DispositionField, 0, len(spec.Fields))
	for _, name := range spec.Fields {
		field, err := ParseDispositionField(name)
		if err != nil {
			return DispositionLabel{}, fmt.Errorf("label %q: %w", spec.Label, err)
		}
		fields = append(fields, field)
	}

	return DispositionLabel{label: label, fields: fields}, nil
}

func (d DispositionLabel) Label() CategoryKey {
	return d.label
}

func (d DispositionLabel) Fields() []DispositionField {
	return d.fields
}

type SentenceKindConfig struct {
	label  CategoryKey
	kind   SentenceKind
	ladder BucketLadder
}

func NewSentenceKindConfig(spec specs.SentenceKindSpec) (SentenceKindConfig, error) {
	label, err := NewCategoryKey(spec.Label)
	if err != nil {
		return SentenceKindConfig{}, fmt.Errorf("invalid label: %w", err)
	}

	kind, err := NewSentenceKind(spec.Kind)
	if err != nil {
		return SentenceKindConfig{}, fmt.Errorf("label %q: %w", spec.Label, err)
	}

	ladder, err := NewBucketLadder(spec.Buckets)
	if err != nil {
		return SentenceKindConfig{}, fmt.Errorf("label %q: %w", spec.Label, err)
	}

	return SentenceKindConfig{label: label, kind: kind, ladder: ladder}, nil
}

func (s SentenceKindConfig) Label() CategoryKey {
	return s.label
}

func (s SentenceKindConfig) Kind() SentenceKind {
	return s.kind
}

func (s SentenceKindConfig) Ladder() BucketLadder {
	return s.ladder
}

type BailConfig struct {
	cash         CategoryKey
	recognizance CategoryKey
	denied       CategoryKey
	ladder       BucketLadder
}

func NewBailConfig(spec specs.BailConfigSpec) (BailConfig, error) {
	cash, err := NewCategoryKey(spec.CashLabel)
	if err != nil {
		return BailConfig{}, fmt.Errorf("invalid cash label: %w", err)
	}

	recognizance, err := NewCategoryKey(spec.PersonalRecognizanceLabel)
	if err != nil {
		return BailConfig{}, fmt.Errorf("invalid personal recognizance label: %w", err)
	}

	denied, err := NewCategoryKey(spec.DeniedLabel)
	if err != nil {
		return BailConfig{}, fmt.Errorf("invalid denied label: %w", err)
	}

	if cash == recognizance || cash == denied || recognizance == denied {
		return BailConfig{}, fmt.Errorf("bail labels must be distinct")
	}

	ladder, err := NewBucketLadder(spec.Buckets)
	if err != nil {
		return BailConfig{}, err
	}

	return BailConfig{cash: cash, recognizance: recognizance, denied: denied, ladder: ladder}, nil
}

func (b BailConfig) CashLabel() CategoryKey {
	return b.cash
}

func (b BailConfig) PersonalRecognizanceLabel() CategoryKey {
	return b.recognizance
}

func (b BailConfig) DeniedLabel() CategoryKey {
	return b.denied
}

func (b BailConfig) Ladder() BucketLadder {
	return b.ladder
}

// BucketLadder is an ordered list of buckets with unique keys and labels.
type BucketLadder struct {
	buckets []LadderBucket
}

type LadderBucket struct {
	Key   string
	Label string
}

func NewBucketLadder(spec []specs.BucketLadderSpec) (BucketLadder, error) {
	buckets := make([]LadderBucket, 0, len(spec))
	keys := make(map[string]bool)
	labels := make(map[string]bool)
	for i, b := range spec {
		if b.Key == "" {
			return BucketLadder{}, fmt.Errorf("bucket %d: key is required", i)
		}
		if b.Label == "" {
			return BucketLadder{}, fmt.Errorf("bucket %d: label is required", i)
		}
		if keys[b.Key] {
			return BucketLadder{}, fmt.Errorf("bucket %d: duplicate key %q", i, b.Key)
		}
		if labels[b.Label] {
			return BucketLadder{}, fmt.Errorf("bucket %d: duplicate label %q", i, b.Label)
		}
		keys[b.Key] = true
		labels[b.Label] = true
		buckets = append(buckets, LadderBucket{Key: b.Key, Label: b.Label})
	}
	return BucketLadder{buckets: buckets}, nil
}

func (l BucketLadder) Buckets() []LadderBucket {
	return l.buckets
}

type MotionType struct {
	id    MotionID
	label CategoryKey
}

func NewMotionType(spec specs.MotionTypeSpec) (MotionType, error) {
	id, err := NewMotionID(spec.ID)
	if err != nil {
		return MotionType{}, fmt.Errorf("invalid ID: %w", err)
	}

	label, err := NewCategoryKey(spec.Label)
	if err != nil {
		return MotionType{}, fmt.Errorf("motion %q: invalid label: %w", spec.ID, err)
	}

	return MotionType{id: id, label: label}, nil
}

func (m MotionType) ID() MotionID {
	return m.id
}

func (m MotionType) Label() CategoryKey {
	return m.label
}

type ExtractionOptions struct {
	filterEmptySentenceKinds bool
	filterEmptyBailKinds     bool
	countUnknownAsDenied     bool
	hideOtherMotions         bool
	prosecutionParties       []string
}

func NewExtractionOptions(spec specs.ExtractionOptionsSpec) ExtractionOptions {
	parties := make([]string, 0, len(spec.ProsecutionParties))
	for _, p := range spec.ProsecutionParties {
		if p = strings.TrimSpace(p); p != "" {
			parties = append(parties, p)
		}
	}
	return ExtractionOptions{
		filterEmptySentenceKinds: spec.FilterEmptySentenceKinds,
		filterEmptyBailKinds:     spec.FilterEmptyBailKinds,
		countUnknownAsDenied:     spec.CountUnknownAsDenied,
		hideOtherMotions:         spec.HideOtherMotions,
		prosecutionParties:       parties,
	}
}

func (o ExtractionOptions) FilterEmptySentenceKinds() bool {
	return o.filterEmptySentenceKinds
}

func (o ExtractionOptions) FilterEmptyBailKinds() bool {
	return o.filterEmptyBailKinds
}

func (o ExtractionOptions) CountUnknownAsDenied() bool {
	return o.countUnknownAsDenied
}

func (o ExtractionOptions) HideOtherMotions() bool {
	return o.hideOtherMotions
}

// IsProsecution reports whether party filed on behalf of the prosecution.
func (o ExtractionOptions) IsProsecution(party string) bool {
	party = strings.TrimSpace(party)
	for _, p := range o.prosecutionParties {
		if strings.EqualFold(p, party) {
			return true
		}
	}
	return false
}
