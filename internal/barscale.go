package internal

import (
	"fmt"
	"math"

	"github.com/score-law/litigation-analytics/specs"
)

// minBarFraction keeps bars from collapsing when a buffer approaches 1.
const minBarFraction = 0.05

// comparativeScale converts a ratio threshold to the signed-percentage scale.
const comparativeScale = 100

// DomainPolicy is a validated axis scaling policy.
type DomainPolicy struct {
	kind         string
	min          float64
	max          float64
	baseBuffer   float64
	minBuffer    float64
	decayFactor  float64
	threshold    float64
	safeguardMin float64
	comparative  bool
}

func NewDomainPolicy(spec specs.DomainPolicySpec) (DomainPolicy, error) {
	policy := DomainPolicy{
		kind:        spec.Kind,
		min:         spec.Min,
		max:         spec.Max,
		baseBuffer:  spec.BaseBuffer,
		minBuffer:   spec.MinBuffer,
		decayFactor: spec.DecayFactor,
		threshold:   spec.ThresholdValue,
		comparative: spec.Comparative,
	}
	if spec.SafeguardMin != nil {
		policy.safeguardMin = *spec.SafeguardMin
	}

	switch spec.Kind {
	case specs.DomainPolicyFixed:
		if !isFinite(spec.Min) || !isFinite(spec.Max) {
			return DomainPolicy{}, fmt.Errorf("fixed range must be finite")
		}
		if spec.Min > spec.Max {
			return DomainPolicy{}, fmt.Errorf("fixed range min %v exceeds max %v", spec.Min, spec.Max)
		}
	case specs.DomainPolicyAuto:
	case specs.DomainPolicyDynamic, specs.DomainPolicyExponential:
		if !(spec.ThresholdValue > 0) || math.IsInf(spec.ThresholdValue, 0) {
			return DomainPolicy{}, fmt.Errorf("threshold must be positive, got %v", spec.ThresholdValue)
		}
		if !inUnitInterval(spec.BaseBuffer) {
			return DomainPolicy{}, fmt.Errorf("base buffer must be in [0, 1), got %v", spec.BaseBuffer)
		}
		if !inUnitInterval(spec.MinBuffer) {
			return DomainPolicy{}, fmt.Errorf("min buffer must be in [0, 1), got %v", spec.MinBuffer)
		}
		if !(spec.DecayFactor >= 0) || math.IsInf(spec.DecayFactor, 0) {
			return DomainPolicy{}, fmt.Errorf("decay factor must be non-negative, got %v", spec.DecayFactor)
		}
		if spec.SafeguardMin != nil && !isFinite(*spec.SafeguardMin) {
			return DomainPolicy{}, fmt.Errorf("safeguard min must be finite")
		}
	default:
		return DomainPolicy{}, fmt.Errorf("unknown kind %q", spec.Kind)
	}

	return policy, nil
}

// DefaultDynamicPolicy returns the exponential policy used for result charts.
func DefaultDynamicPolicy(comparative bool) specs.DomainPolicySpec {
	return specs.DomainPolicySpec{
		Kind:           specs.DomainPolicyDynamic,
		BaseBuffer:     0.35,
		MinBuffer:      0.1,
		DecayFactor:    0.5,
		ThresholdValue: 1,
		Comparative:    comparative,
	}
}

// ComputeDomain implements specs.ComputeDomain.
func ComputeDomain(maxAbsValue float64, policySpec specs.DomainPolicySpec) (*specs.DomainSpec, error) {
	policy, err := NewDomainPolicy(policySpec)
	if err != nil {
		return nil, fmt.Errorf("invalid policy: %w", err)
	}
	return computeDomain(maxAbsValue, policy), nil
}

func computeDomain(maxAbsValue float64, policy DomainPolicy) *specs.DomainSpec {
	switch policy.kind {
	case specs.DomainPolicyFixed:
		return &specs.DomainSpec{Min: policy.min, Max: policy.max}
	case specs.DomainPolicyAuto:
		return nil
	}

	value := math.Abs(maxAbsValue)
	if math.IsNaN(value) {
		value = 0
	}

	threshold := policy.threshold
	if policy.comparative {
		threshold *= comparativeScale
	}

	buffer := policy.baseBuffer
	if value > threshold {
		excess := (value - threshold) / threshold
		buffer = policy.minBuffer + (policy.baseBuffer-policy.minBuffer)*math.Exp(-policy.decayFactor*excess)
	}

	barFraction := math.Max(1-buffer, minBarFraction)
	domainMax := value / barFraction

	if policy.comparative {
		return &specs.DomainSpec{Min: -domainMax, Max: domainMax}
	}
	return &specs.DomainSpec{Min: policy.safeguardMin, Max: domainMax}
}

// MaxAbsValue returns the largest finite magnitude in values, or 0.
func MaxAbsValue(values []float64) float64 {
	maxAbs := 0.0
	for _, v := range values {
		if !isFinite(v) {
			continue
		}
		maxAbs = math.Max(maxAbs, math.Abs(v))
	}
	return maxAbs
}

// ComparativeValue maps a ratio to a signed percentage above or below baseline.
func ComparativeValue(ratio float64) float64 {
	return (ratio - 1) * 100
}

// FormatComparative renders a ratio for display. Differences under one
// percentage point read as "Average".
func FormatComparative(ratio float64) string {
	diff := ComparativeValue(ratio)
	if math.IsNaN(diff) || math.Abs(diff) < 1 {
		return "Average"
	}
	if diff > 0 {
		return fmt.Sprintf("%.0f%% above average", diff)
	}
	return fmt.Sprintf("%.0f%% below average", -diff)
}

// FormatObjective renders a percentage with one decimal place.
func FormatObjective(percentage float64) string {
	return fmt.Sprintf("%.1f%%", percentage)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func inUnitInterval(v float64) bool {
	return v >= 0 && v < 1
}
