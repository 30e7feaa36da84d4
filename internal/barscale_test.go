package internal

import (
	"math"
	"testing"

	"github.com/score-law/litigation-analytics/specs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeDomain(t *testing.T) {
	t.Run("fixed policy returns the configured range", func(t *testing.T) {
		domain, err := ComputeDomain(250, specs.DomainPolicySpec{Kind: specs.DomainPolicyFixed, Min: 0, Max: 100})

		require.NoError(t, err)
		assert.Equal(t, &specs.DomainSpec{Min: 0, Max: 100}, domain)
	})

	t.Run("auto policy defers to the renderer", func(t *testing.T) {
		domain, err := ComputeDomain(42, specs.DomainPolicySpec{Kind: specs.DomainPolicyAuto})

		require.NoError(t, err)
		assert.Nil(t, domain)
	})

	t.Run("dynamic policy keeps the base buffer up to the threshold", func(t *testing.T) {
		domain, err := ComputeDomain(0.5, DefaultDynamicPolicy(false))

		require.NoError(t, err)
		assert.Equal(t, 0.0, domain.Min)
		assert.InDelta(t, 0.5/0.65, domain.Max, 1e-12)
	})

	t.Run("dynamic policy decays the buffer past the threshold", func(t *testing.T) {
		domain, err := ComputeDomain(3, DefaultDynamicPolicy(false))

		require.NoError(t, err)
		buffer := 0.1 + 0.25*math.Exp(-0.5*2)
		assert.InDelta(t, 3/(1-buffer), domain.Max, 1e-12)
	})

	t.Run("comparative mode scales the threshold and mirrors the domain", func(t *testing.T) {
		domain, err := ComputeDomain(60, DefaultDynamicPolicy(true))

		require.NoError(t, err)
		assert.InDelta(t, 60/0.65, domain.Max, 1e-12)
		assert.InDelta(t, -60/0.65, domain.Min, 1e-12)
	})

	t.Run("domain is continuous across the threshold", func(t *testing.T) {
		for _, comparative := range []bool{false, true} {
			policy := DefaultDynamicPolicy(comparative)
			threshold := policy.ThresholdValue
			if comparative {
				threshold *= 100
			}

			below, err := ComputeDomain(threshold-1e-9, policy)
			require.NoError(t, err)
			above, err := ComputeDomain(threshold+1e-9, policy)
			require.NoError(t, err)

			assert.InDelta(t, below.Max, above.Max, 1e-6)
		}
	})

	t.Run("domain max grows with the data", func(t *testing.T) {
		policy := DefaultDynamicPolicy(false)
		previous := 0.0
		for v := 0.25; v <= 50; v += 0.25 {
			domain, err := ComputeDomain(v, policy)
			require.NoError(t, err)
			assert.Greater(t, domain.Max, previous, "at %v", v)
			assert.GreaterOrEqual(t, domain.Max, v)
			previous = domain.Max
		}
	})

	t.Run("bars never fill less than five percent of the domain", func(t *testing.T) {
		policy := DefaultDynamicPolicy(false)
		policy.BaseBuffer = 0.99

		domain, err := ComputeDomain(1, policy)

		require.NoError(t, err)
		assert.InDelta(t, 20.0, domain.Max, 1e-9)
	})

	t.Run("safeguard min sets the objective lower bound", func(t *testing.T) {
		policy := DefaultDynamicPolicy(false)
		floor := -5.0
		policy.SafeguardMin = &floor

		domain, err := ComputeDomain(0.5, policy)

		require.NoError(t, err)
		assert.Equal(t, -5.0, domain.Min)
	})

	t.Run("negative and NaN magnitudes are normalized", func(t *testing.T) {
		negative, err := ComputeDomain(-3, DefaultDynamicPolicy(false))
		require.NoError(t, err)
		positive, err := ComputeDomain(3, DefaultDynamicPolicy(false))
		require.NoError(t, err)
		nan, err := ComputeDomain(math.NaN(), DefaultDynamicPolicy(false))
		require.NoError(t, err)

		assert.Equal(t, positive, negative)
		assert.Equal(t, &specs.DomainSpec{Min: 0, Max: 0}, nan)
	})

	t.Run("invalid policies return errors", func(t *testing.T) {
		dynamic := DefaultDynamicPolicy(false)
		zeroThreshold := dynamic
		zeroThreshold.ThresholdValue = 0
		fullBuffer := dynamic
		fullBuffer.BaseBuffer = 1
		negativeDecay := dynamic
		negativeDecay.DecayFactor = -0.5

		cases := map[string]specs.DomainPolicySpec{
			"unknown kind":   {Kind: "logarithmic"},
			"inverted fixed": {Kind: specs.DomainPolicyFixed, Min: 10, Max: 0},
			"zero threshold": zeroThreshold,
			"buffer of one":  fullBuffer,
			"negative decay": negativeDecay,
			"empty kind":     {},
		}
		for name, policy := range cases {
			_, err := ComputeDomain(1, policy)

			require.Error(t, err, name)
			assert.Contains(t, err.Error(), "invalid policy", name)
		}
	})
}

func TestMaxAbsValue(t *testing.T) {
	t.Run("returns the largest finite magnitude", func(t *testing.T) {
		assert.Equal(t, 30.0, MaxAbsValue([]float64{-30, 12, math.NaN(), math.Inf(-1)}))
	})

	t.Run("is zero for empty input", func(t *testing.T) {
		assert.Zero(t, MaxAbsValue(nil))
	})
}

func TestComparativeFormatting(t *testing.T) {
	t.Run("ratios map to signed percentages", func(t *testing.T) {
		assert.InDelta(t, 60.0, ComparativeValue(1.6), 1e-9)
		assert.InDelta(t, -20.0, ComparativeValue(0.8), 1e-9)
		assert.Zero(t, ComparativeValue(1))
	})

	t.Run("differences under one point read as average", func(t *testing.T) {
		assert.Equal(t, "Average", FormatComparative(1))
		assert.Equal(t, "Average", FormatComparative(1.009))
		assert.Equal(t, "Average", FormatComparative(0.995))
	})

	t.Run("larger differences read above or below average", func(t *testing.T) {
		assert.Equal(t, "25% above average", FormatComparative(1.25))
		assert.Equal(t, "20% below average", FormatComparative(0.8))
		assert.Equal(t, "60% above average", FormatComparative(1.6))
	})

	t.Run("objective values keep one decimal", func(t *testing.T) {
		assert.Equal(t, "25.0%", FormatObjective(25))
		assert.Equal(t, "33.3%", FormatObjective(100.0/3))
	})
}
