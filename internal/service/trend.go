package service

// Trend classifications for a numeric sequence.
const (
	TrendImproving        = "improving"
	TrendDeclining        = "declining"
	TrendStable           = "stable"
	TrendInsufficientData = "insufficient_data"
)

// Slope thresholds for trend classification. The fit runs over bucketed
// weekly averages, not raw per-entry scores; the smoothing is intentional.
const trendSlopeThreshold = 0.1

// olsSlope computes the ordinary least-squares slope of values indexed
// 0..n-1 in closed form.
func olsSlope(values []float64) float64 {
	n := float64(len(values))
	var sumX, sumY, sumXY, sumXX float64
	for i, v := range values {
		x := float64(i)
		sumX += x
		sumY += v
		sumXY += x * v
		sumXX += x * x
	}
	denom := n*sumXX - sumX*sumX
	if denom == 0 {
		return 0
	}
	return (n*sumXY - sumX*sumY) / denom
}

// classifyTrend fits a linear trend to the sequence and labels its
// direction. Fewer than two points cannot support a direction.
func classifyTrend(values []float64) string {
	if len(values) < 2 {
		return TrendInsufficientData
	}

	slope := olsSlope(values)
	switch {
	case slope > trendSlopeThreshold:
		return TrendImproving
	case slope < -trendSlopeThreshold:
		return TrendDeclining
	default:
		return TrendStable
	}
}
