package internal

import (
	"github.com/score-law/litigation-analytics/specs"
)

// chartPoint labels a headline value. In comparative mode value is a ratio to
// baseline; otherwise it is already a percentage.
func chartPoint(label string, value float64, comparative bool) specs.ChartPointSpec {
	if comparative {
		return specs.ChartPointSpec{
			Label:   label,
			Value:   ComparativeValue(value),
			Display: FormatComparative(value),
		}
	}
	return specs.ChartPointSpec{
		Label:   label,
		Value:   value,
		Display: FormatObjective(value),
	}
}

// DispositionChart charts the share of cases ending in each disposition.
func DispositionChart(series []specs.DispositionSeriesSpec, comparative bool) specs.ChartSeriesSpec {
	points := make([]specs.ChartPointSpec, 0, len(series))
	for _, s := range series {
		value := s.Ratio
		if !comparative {
			value *= 100
		}
		points = append(points, chartPoint(s.Type, value, comparative))
	}
	return specs.ChartSeriesSpec{Title: "Dispositions", Comparative: comparative, Points: points}
}

func SentenceChart(series []specs.SentenceSeriesSpec, comparative bool) specs.ChartSeriesSpec {
	points := make([]specs.ChartPointSpec, 0, len(series))
	for _, s := range series {
		points = append(points, chartPoint(s.Type, s.Percentage, comparative))
	}
	return specs.ChartSeriesSpec{Title: "Sentences", Comparative: comparative, Points: points}
}

func BailChart(series []specs.BailSeriesSpec, comparative bool) specs.ChartSeriesSpec {
	points := make([]specs.ChartPointSpec, 0, len(series))
	for _, s := range series {
		points = append(points, chartPoint(s.Type, s.Percentage, comparative))
	}
	return specs.ChartSeriesSpec{Title: "Bail", Comparative: comparative, Points: points}
}

// MotionChart charts the overall grant rate per motion type. Comparative
// entries without ratios chart as average.
func MotionChart(series []specs.MotionSeriesSpec, comparative bool) specs.ChartSeriesSpec {
	points := make([]specs.ChartPointSpec, 0, len(series))
	for _, s := range series {
		var value float64
		switch {
		case !comparative:
			value = GrantRate(s.Status) * 100
		case s.ComparativeRatios != nil:
			value = s.ComparativeRatios.Overall
		default:
			value = 1.0
		}
		points = append(points, chartPoint(s.Type, value, comparative))
	}
	return specs.ChartSeriesSpec{Title: "Motions", Comparative: comparative, Points: points}
}

// ChartMaxAbs returns the largest bar magnitude of a chart.
func ChartMaxAbs(chart specs.ChartSeriesSpec) float64 {
	values := make([]float64, len(chart.Points))
	for i, p := range chart.Points {
		values[i] = p.Value
	}
	return MaxAbsValue(values)
}
