package recommend

import "math"

// Weights of the combined ranking score. These are fixed constants of the
// design, not runtime configuration.
const (
	weightSimilarity = 0.7
	weightRating     = 0.2
	weightPopularity = 0.1

	// popularityDamping divides ln(1+reviewCount). There is deliberately no
	// upper clamp, so corpora with extreme per-item review counts can push
	// the combined score past the similarity+rating ceiling.
	popularityDamping = 10.0

	maxRating = 5.0
)

// Demographic item scoring weights.
const (
	weightOverlap      = 0.45
	weightCohortRating = 0.35
	weightVolume       = 0.2
)

// CombinedScore blends aspect similarity with rating quality and a dampened
// review-volume term into the single value candidates are ranked by.
func CombinedScore(similarity, avgRating float64, reviewCount int) float64 {
	popularity := math.Log(1+float64(reviewCount)) / popularityDamping
	return weightSimilarity*similarity + weightRating*(avgRating/maxRating) + weightPopularity*popularity
}

// cohortItemScore ranks an item by how strongly a demographic cohort engaged
// with it: distinct-user overlap, mean rating, and review volume.
func cohortItemScore(a ItemAggregate) float64 {
	overlap := math.Log(1 + float64(a.UserOverlap))
	volume := math.Log(1 + float64(a.Reviews))
	return weightOverlap*overlap + weightCohortRating*(a.AvgRating/maxRating) + weightVolume*volume
}

// round6 rounds scores to the 6 decimal digits the API emits.
func round6(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}

// round3 rounds the per-item average rating shown in cold-start stats.
func round3(v float64) float64 {
	return math.Round(v*1e3) / 1e3
}
