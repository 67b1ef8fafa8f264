package recommend

import (
	"context"
	"strings"
	"testing"
)

func TestCheckRetrain_BelowThresholds(t *testing.T) {
	store := NewInMemoryStore(nil, nil)
	store.SetInteractionCounts(10, 20)
	svc := NewService(store, "", "", "model.pkl")

	verdict, err := svc.CheckRetrain(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if verdict.ShouldRerun {
		t.Fatalf("should not rerun below thresholds")
	}
	if verdict.Reason != "" {
		t.Fatalf("unexpected reason %q", verdict.Reason)
	}
	if verdict.Statistics.TotalInteractions != 30 {
		t.Fatalf("totalInteractions = %d, want 30", verdict.Statistics.TotalInteractions)
	}
	if verdict.Timestamp == "" {
		t.Fatalf("timestamp missing")
	}
}

func TestCheckRetrain_ReviewThreshold(t *testing.T) {
	reviews := make([]StoredReview, 2500)
	for i := range reviews {
		reviews[i] = StoredReview{UserID: "u", Asin: "a"}
	}
	store := NewInMemoryStore(reviews, nil)
	svc := NewService(store, "", "", "model.pkl")

	verdict, err := svc.CheckRetrain(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !verdict.ShouldRerun {
		t.Fatalf("expected rerun at review threshold")
	}
	if !strings.HasPrefix(verdict.Reason, "Reviews threshold reached") {
		t.Fatalf("reason = %q", verdict.Reason)
	}
}

func TestCheckRetrain_InteractionThreshold(t *testing.T) {
	store := NewInMemoryStore(nil, nil)
	store.SetInteractionCounts(1500, 1500)
	svc := NewService(store, "", "", "model.pkl")

	verdict, err := svc.CheckRetrain(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !verdict.ShouldRerun {
		t.Fatalf("expected rerun at interaction threshold")
	}
	if !strings.HasPrefix(verdict.Reason, "Interactions threshold reached") {
		t.Fatalf("reason = %q", verdict.Reason)
	}
	if verdict.Statistics.TotalOrders != 1500 || verdict.Statistics.TotalLikes != 1500 {
		t.Fatalf("statistics = %+v", verdict.Statistics)
	}
}
