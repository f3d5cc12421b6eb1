package profile

import (
	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"
)

// NumericSummary holds summary statistics for a numeric column
type NumericSummary struct {
	Mean     float64 `json:"mean"`
	StdDev   float64 `json:"std_dev"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Median   float64 `json:"median"`
	Q25      float64 `json:"q25"`
	Q75      float64 `json:"q75"`
	Skewness float64 `json:"skewness"`
	Kurtosis float64 `json:"kurtosis"`
}

// Summarize computes summary statistics over raw numeric values
func Summarize(data []float64) (*NumericSummary, error) {
	summary := &NumericSummary{}

	mean, err := stats.Mean(data)
	if err != nil {
		return nil, err
	}
	summary.Mean = mean

	stdDev, err := stats.StandardDeviation(data)
	if err != nil {
		return nil, err
	}
	summary.StdDev = stdDev

	min, err := stats.Min(data)
	if err != nil {
		return nil, err
	}
	summary.Min = min

	max, err := stats.Max(data)
	if err != nil {
		return nil, err
	}
	summary.Max = max

	median, err := stats.Median(data)
	if err != nil {
		return nil, err
	}
	summary.Median = median

	q25, err := stats.Percentile(data, 25)
	if err != nil {
		return nil, err
	}
	summary.Q25 = q25

	q75, err := stats.Percentile(data, 75)
	if err != nil {
		return nil, err
	}
	summary.Q75 = q75

	summary.Skewness = stat.Skew(data, nil)
	summary.Kurtosis = stat.ExKurtosis(data, nil)

	return summary, nil
}
