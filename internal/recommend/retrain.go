package recommend

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"
)

// Retrain thresholds. The check fires when either is reached.
const (
	reviewThreshold      = 2500
	interactionThreshold = 3000
)

// RetrainStats is the interaction snapshot the verdict was computed from.
type RetrainStats struct {
	TotalReviews         int `json:"totalReviews"`
	TotalLikes           int `json:"totalLikes"`
	TotalOrders          int `json:"totalOrders"`
	TotalInteractions    int `json:"totalInteractions"`
	ReviewThreshold      int `json:"reviewThreshold"`
	InteractionThreshold int `json:"interactionThreshold"`
}

// RetrainVerdict reports whether interaction volume warrants rerunning the
// offline model build. It is a monitoring signal only: acting on it is an
// external retraining job's responsibility.
type RetrainVerdict struct {
	ShouldRerun bool         `json:"shouldRerun"`
	Reason      string       `json:"reason,omitempty"`
	Statistics  RetrainStats `json:"statistics"`
	Timestamp   string       `json:"timestamp"`
}

// CheckRetrain counts reviews, likes and orders and compares them against the
// fixed thresholds. Store faults propagate: this signal feeds an operational
// decision, so a wrong answer is worse than no answer.
func (s *Service) CheckRetrain(ctx context.Context) (RetrainVerdict, error) {
	totalReviews, err := s.store.CountReviews(ctx)
	if err != nil {
		return RetrainVerdict{}, err
	}
	totalLikes, err := s.store.TotalLikedProducts(ctx)
	if err != nil {
		return RetrainVerdict{}, err
	}
	totalOrders, err := s.store.CountOrders(ctx)
	if err != nil {
		return RetrainVerdict{}, err
	}

	totalInteractions := totalLikes + totalOrders
	reviewsMet := totalReviews >= reviewThreshold
	interactionsMet := totalInteractions >= interactionThreshold

	verdict := RetrainVerdict{
		ShouldRerun: reviewsMet || interactionsMet,
		Statistics: RetrainStats{
			TotalReviews:         totalReviews,
			TotalLikes:           totalLikes,
			TotalOrders:          totalOrders,
			TotalInteractions:    totalInteractions,
			ReviewThreshold:      reviewThreshold,
			InteractionThreshold: interactionThreshold,
		},
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	if verdict.ShouldRerun {
		if reviewsMet {
			verdict.Reason = fmt.Sprintf("Reviews threshold reached (%d >= %d)", totalReviews, reviewThreshold)
		} else {
			verdict.Reason = fmt.Sprintf("Interactions threshold reached (%d >= %d)", totalInteractions, interactionThreshold)
		}
		// advisory look at the current model artifact; it is never loaded
		if info, err := os.Stat(s.modelPath); err == nil {
			log.Printf("retrain-check: hybrid model artifact %s present (%d bytes)", s.modelPath, info.Size())
		} else {
			log.Printf("retrain-check: hybrid model artifact %s not found; retrain job would rebuild it", s.modelPath)
		}
	}

	return verdict, nil
}
