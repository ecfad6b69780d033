package rating

import (
	"math"

	"github.com/samber/lo"

	"github.com/BruksfildServices01/store-ratings/internal/dto"
)

// Mean is the arithmetic mean of values; ok is false for an empty slice.
func Mean(values []int) (mean float64, ok bool) {
	if len(values) == 0 {
		return 0, false
	}
	return float64(lo.Sum(values)) / float64(len(values)), true
}

// RoundOneDecimal rounds half away from zero to one decimal place.
func RoundOneDecimal(v float64) float64 {
	return math.Round(v*10) / 10
}

// RatersMean flattens the raters of several stores into one mean, rounded to
// one decimal. It is 0 when there are no raters.
func RatersMean(raters []dto.RaterDTO) float64 {
	mean, ok := Mean(lo.Map(raters, func(r dto.RaterDTO, _ int) int { return r.Rating }))
	if !ok {
		return 0
	}
	return RoundOneDecimal(mean)
}
