package recommend

import (
	"context"
	"math"
	"regexp"
	"sort"
	"strings"
)

const (
	// DefaultAgeTolerance is the age window (in years) inside which two
	// users are considered demographically close.
	DefaultAgeTolerance = 5.0

	// candidatePoolCap bounds the similar-user set handed to the cohort
	// interaction query.
	candidatePoolCap = 200
)

var nonWord = regexp.MustCompile(`\W+`)

// DemographicQuery is a cold-start request. All demographic attributes are
// optional; absent attributes simply contribute nothing to user scores.
type DemographicQuery struct {
	Age       *float64
	Gender    string
	Address   string
	TopN      int
	Tolerance float64
}

type scoredUser struct {
	userID string
	score  float64
}

// RecommendDemographic recommends items for a user with no interaction
// history by aggregating what demographically similar existing users liked.
func (s *Service) RecommendDemographic(ctx context.Context, q DemographicQuery) (DemographicResult, error) {
	if q.TopN <= 0 {
		q.TopN = 20
	}
	if q.Tolerance <= 0 {
		q.Tolerance = DefaultAgeTolerance
	}

	withReviews, err := s.store.UsersWithReviews(ctx)
	if err != nil {
		return DemographicResult{}, err
	}
	candidates, err := s.store.UsersByIDs(ctx, withReviews)
	if err != nil {
		return DemographicResult{}, err
	}

	scored := make([]scoredUser, 0, len(candidates))
	for _, u := range candidates {
		if score := demographicScore(u, q); score > 0 {
			scored = append(scored, scoredUser{userID: u.UserID, score: score})
		}
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})
	if len(scored) > candidatePoolCap {
		scored = scored[:candidatePoolCap]
	}

	if len(scored) == 0 {
		return DemographicResult{
			Strategy:        "demographic",
			Message:         "No similar users found by demographics",
			Recommendations: []DemographicItem{},
			Statistics:      map[string]int{"consideredUsers": len(candidates)},
		}, nil
	}

	cohortIDs := make([]string, len(scored))
	for i, u := range scored {
		cohortIDs[i] = u.userID
	}

	aggregates, err := s.store.ItemStatsForUsers(ctx, cohortIDs)
	if err != nil {
		return DemographicResult{}, err
	}
	if len(aggregates) == 0 {
		return DemographicResult{
			Strategy:        "demographic",
			Message:         "No interactions found for similar users",
			Recommendations: []DemographicItem{},
			Statistics:      map[string]int{"similarUsers": len(cohortIDs)},
		}, nil
	}

	items := make([]DemographicItem, 0, len(aggregates))
	for _, a := range aggregates {
		items = append(items, DemographicItem{
			Asin:  a.Asin,
			Score: round6(cohortItemScore(a)),
			Stats: ItemStats{
				UserOverlap: a.UserOverlap,
				Reviews:     a.Reviews,
				AvgRating:   round3(a.AvgRating),
			},
		})
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Score > items[j].Score
	})
	if len(items) > q.TopN {
		items = items[:q.TopN]
	}

	return DemographicResult{
		Strategy:        "demographic",
		Message:         "Cold-start demographic recommendations",
		Recommendations: items,
		Statistics: map[string]int{
			"similarUsers":    len(cohortIDs),
			"consideredUsers": len(candidates),
			"topN":            q.TopN,
		},
		Inputs: &DemographicInputs{Age: q.Age, Gender: q.Gender, Address: q.Address},
	}, nil
}

// demographicScore measures how close an existing user is to the query:
// up to +3 for age (a flat +2 inside the tolerance window plus a linearly
// decaying bonus), +2 for an exact case-insensitive gender match, and up to
// +1.5 for address containment or capped token overlap.
func demographicScore(u UserDemographics, q DemographicQuery) float64 {
	var score float64

	if q.Age != nil && u.Age != nil {
		diff := math.Abs(float64(*u.Age) - *q.Age)
		if diff <= q.Tolerance {
			score += 2
			score += math.Max(0, 1-diff/q.Tolerance)
		}
	}

	if q.Gender != "" && u.Gender != "" && strings.EqualFold(q.Gender, u.Gender) {
		score += 2
	}

	target := normalizeAddress(q.Address)
	addr := normalizeAddress(u.Address)
	if target != "" && addr != "" {
		if strings.Contains(addr, target) || strings.Contains(target, addr) {
			score += 1.5
		} else {
			targetTokens := make(map[string]bool)
			for _, tok := range nonWord.Split(target, -1) {
				if tok != "" {
					targetTokens[tok] = true
				}
			}
			overlap := 0
			for _, tok := range nonWord.Split(addr, -1) {
				if tok != "" && targetTokens[tok] {
					overlap++
				}
			}
			if overlap > 0 {
				score += math.Min(1, float64(overlap)*0.3)
			}
		}
	}

	return score
}

func normalizeAddress(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
