package profiling

import (
	"math"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat/distuv"

	"fatalview/domain/traffic"
)

// SpeedProfile describes the distribution of the numeric travel-speed
// column. Rows whose speed never parsed (unknown, pedestrian, stopped
// vehicle) are excluded, matching the speed-dimension edge-case policy.
type SpeedProfile struct {
	SampleSize int     `json:"sample_size"`
	Mean       float64 `json:"mean"`
	StdDev     float64 `json:"std_dev"`
	Min        float64 `json:"min"`
	Max        float64 `json:"max"`
	Median     float64 `json:"median"`
	Q25        float64 `json:"q25"`
	Q75        float64 `json:"q75"`
	Skewness   float64 `json:"skewness"`
	Kurtosis   float64 `json:"kurtosis"`
	IsNormal   bool    `json:"is_normal"`
	NormalP    float64 `json:"normal_p"`
	Outliers   int     `json:"outliers"`
}

// ProfileSpeeds computes the speed distribution profile for the Traffic
// table.
func ProfileSpeeds(table *traffic.Table) (SpeedProfile, error) {
	var speeds []float64
	for _, rec := range table.Records() {
		if rec.SpeedKnown {
			speeds = append(speeds, rec.Speed)
		}
	}
	return analyzeDistribution(speeds)
}

// analyzeDistribution performs the distribution analysis
func analyzeDistribution(data []float64) (SpeedProfile, error) {
	profile := SpeedProfile{SampleSize: len(data)}
	if len(data) == 0 {
		return profile, nil
	}

	mean, err := stats.Mean(data)
	if err != nil {
		return profile, err
	}

	stdDev, err := stats.StandardDeviation(data)
	if err != nil {
		return profile, err
	}

	min, err := stats.Min(data)
	if err != nil {
		return profile, err
	}

	max, err := stats.Max(data)
	if err != nil {
		return profile, err
	}

	median, err := stats.Median(data)
	if err != nil {
		return profile, err
	}

	// Quartiles for IQR-based outlier detection
	q25, err := stats.Percentile(data, 25)
	if err != nil {
		return profile, err
	}

	q75, err := stats.Percentile(data, 75)
	if err != nil {
		return profile, err
	}

	skewness := calculateSkewness(data, mean, stdDev)
	kurtosis := calculateKurtosis(data, mean, stdDev)
	isNormal, normalP := testNormality(skewness, kurtosis, len(data))

	profile.Mean = mean
	profile.StdDev = stdDev
	profile.Min = min
	profile.Max = max
	profile.Median = median
	profile.Q25 = q25
	profile.Q75 = q75
	profile.Skewness = skewness
	profile.Kurtosis = kurtosis
	profile.IsNormal = isNormal
	profile.NormalP = normalP
	profile.Outliers = detectOutliers(data, q25, q75)

	return profile, nil
}

// calculateSkewness computes sample skewness using the adjusted Fisher-Pearson coefficient
func calculateSkewness(data []float64, mean, stdDev float64) float64 {
	if len(data) < 3 || stdDev == 0 {
		return 0
	}

	n := float64(len(data))
	sumCubedDeviations := 0.0

	for _, x := range data {
		deviation := (x - mean) / stdDev
		sumCubedDeviations += deviation * deviation * deviation
	}

	skewness := sumCubedDeviations / n

	// Bias correction for sample skewness
	correction := math.Sqrt(n*(n-1)) / (n - 2)
	return skewness * correction
}

// calculateKurtosis computes sample kurtosis
func calculateKurtosis(data []float64, mean, stdDev float64) float64 {
	if len(data) < 4 || stdDev == 0 {
		return 0
	}

	n := float64(len(data))
	sumFourthDeviations := 0.0

	for _, x := range data {
		deviation := (x - mean) / stdDev
		sumFourthDeviations += deviation * deviation * deviation * deviation
	}

	return sumFourthDeviations / n
}

// testNormality approximates a normality test from the combined
// skewness/kurtosis statistic against a chi-square distribution. Good
// enough for a dashboard hint; not a substitute for a proper
// Shapiro-Wilk test.
func testNormality(skewness, kurtosis float64, n int) (isNormal bool, pValue float64) {
	if n < 3 {
		return false, 1.0
	}

	testStat := math.Abs(skewness) + math.Abs(kurtosis-3)/2

	chiDist := distuv.ChiSquared{K: 2}
	pValue = 1 - chiDist.CDF(testStat*testStat)

	return pValue > 0.05, pValue
}

// detectOutliers identifies outliers using the IQR method
func detectOutliers(data []float64, q25, q75 float64) int {
	iqr := q75 - q25
	lowerBound := q25 - 1.5*iqr
	upperBound := q75 + 1.5*iqr

	outlierCount := 0
	for _, x := range data {
		if x < lowerBound || x > upperBound {
			outlierCount++
		}
	}

	return outlierCount
}
