package specs

// Domain policy kinds accepted by DomainPolicySpec.Kind.
const (
	DomainPolicyFixed       = "fixed"
	DomainPolicyAuto        = "auto"
	DomainPolicyDynamic     = "dynamic"
	DomainPolicyExponential = "exponential"
)

// DomainPolicySpec selects how a bar chart's value axis is scaled.
type DomainPolicySpec struct {
	// Policy kind.
	//
	//   - "fixed": use Min and Max unchanged (0–100% objective bars)
	//   - "auto": let the rendering surface choose
	//   - "dynamic" or "exponential": shrink a headroom buffer exponentially as
	//     the data magnitude grows past ThresholdValue
	Kind string `json:"kind" yaml:"kind"`

	// Fixed range bounds. Used by "fixed" only.
	Min float64 `json:"min,omitempty" yaml:"min,omitempty"`
	Max float64 `json:"max,omitempty" yaml:"max,omitempty"`

	// Buffer fraction of the domain left empty for small values. In [0, 1).
	BaseBuffer float64 `json:"baseBuffer,omitempty" yaml:"baseBuffer,omitempty"`

	// Buffer fraction approached for very large values. In [0, BaseBuffer].
	MinBuffer float64 `json:"minBuffer,omitempty" yaml:"minBuffer,omitempty"`

	// Rate at which the buffer decays from BaseBuffer toward MinBuffer.
	DecayFactor float64 `json:"decayFactor,omitempty" yaml:"decayFactor,omitempty"`

	// Magnitude below which the full BaseBuffer applies.
	//
	// Multiplied by 100 in comparative mode, where values are signed
	// percentages.
	ThresholdValue float64 `json:"thresholdValue,omitempty" yaml:"thresholdValue,omitempty"`

	// Lower bound used outside comparative mode. Nil means 0.
	SafeguardMin *float64 `json:"safeguardMin,omitempty" yaml:"safeguardMin,omitempty"`

	// Comparative mode: values are signed percent-above/below-baseline and the
	// domain is symmetric around zero.
	Comparative bool `json:"comparative,omitempty" yaml:"comparative,omitempty"`
}

// DomainSpec is a numeric axis range.
type DomainSpec struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// ComputeDomain maps the largest absolute bar value to an axis range.
//
// Returns nil for the "auto" policy, meaning the rendering surface keeps its
// built-in scaling. The error return is reserved for an invalid policy.
type ComputeDomain func(maxAbsValue float64, policy DomainPolicySpec) (*DomainSpec, error)

// ChartSeriesSpec is the labeled numeric series handed to the rendering surface.
type ChartSeriesSpec struct {
	// Chart title. Example: "Dispositions".
	Title string `json:"title"`

	// Values are signed percentages relative to baseline when true, objective
	// percentages otherwise.
	Comparative bool `json:"comparative"`

	// Bars in category order.
	Points []ChartPointSpec `json:"points"`
}

// ChartPointSpec is one labeled bar.
type ChartPointSpec struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`

	// Display text for the value. Examples: "25.0%", "12% above average", "Average".
	Display string `json:"display"`
}
