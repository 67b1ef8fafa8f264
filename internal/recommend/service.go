package recommend

import (
	"fmt"
	"sort"

	"github.com/nextsocial/shop-backend/internal/aspect"
	"github.com/nextsocial/shop-backend/internal/dataset"
)

// DemoUserIDs is the pool a target user is drawn from when the caller does
// not name one.
var DemoUserIDs = []string{
	"AGP7EEKKJLA6CWVVGFW35VOUJDCA",
	"AGK75AOJP6GW6GYYDMMIKLWBIMMA",
	"AGH4VWMDVSXIEJVCNFZ3PMVUNM7Q",
	"AGYIN4WCKIPEJFB3EHDKBBZ53Z3Q",
	"AHTDWJH73LM6QYUN2LARA3SNAFRA",
	"AG3M7LZBCFPKYTG6GQAGZQD2QAHQ",
	"AG7QVV3NBCA3FB35XOIGKFMH4RLQ",
}

// Service orchestrates the recommenders and the retrain check. The review
// and metadata files are re-read on every request; profiles are never cached.
type Service struct {
	store        Store
	reviewsFile  string
	metadataFile string
	modelPath    string
}

func NewService(store Store, reviewsFile, metadataFile, modelPath string) *Service {
	return &Service{
		store:        store,
		reviewsFile:  reviewsFile,
		metadataFile: metadataFile,
		modelPath:    modelPath,
	}
}

type scoredCandidate struct {
	asin       string
	score      float64
	similarity float64
	topAspects []string
}

// Recommend produces up to topN content-based recommendations for userID.
// Missing data, an unknown user, or a corpus without aspect columns are
// normal empty-result paths; only I/O faults surface as errors.
func (s *Service) Recommend(userID string, topN int) (Result, error) {
	reviews, err := dataset.Load(s.reviewsFile)
	if err != nil {
		return Result{}, err
	}
	metadata, err := dataset.Load(s.metadataFile)
	if err != nil {
		return Result{}, err
	}

	if len(reviews) == 0 {
		return emptyResult(userID, "No reviews data found"), nil
	}

	cols := aspect.Columns(reviews)
	if len(cols) == 0 {
		return emptyResult(userID, "No aspect score columns found"), nil
	}

	userReviews := make([]dataset.Record, 0)
	for _, r := range reviews {
		if r.Str("user_id") == userID {
			userReviews = append(userReviews, r)
		}
	}
	if len(userReviews) == 0 {
		return emptyResult(userID, fmt.Sprintf("User %s not found in dataset", userID)), nil
	}

	userVectors := make([]aspect.Vector, 0, len(userReviews))
	owned := make(map[string]bool, len(userReviews))
	for _, r := range userReviews {
		userVectors = append(userVectors, aspect.VectorFor(r, cols))
		owned[r.Str("asin")] = true
	}
	userProfile := aspect.Average(userVectors)

	// group the corpus by item; candidates keep corpus discovery order so
	// score ties stay deterministic under the stable sort below
	byAsin := make(map[string][]dataset.Record)
	candidates := make([]string, 0)
	for _, r := range reviews {
		asin := r.Str("asin")
		if asin == "" {
			continue
		}
		if _, seen := byAsin[asin]; !seen && !owned[asin] {
			candidates = append(candidates, asin)
		}
		byAsin[asin] = append(byAsin[asin], r)
	}

	scored := make([]scoredCandidate, 0, len(candidates))
	for _, asin := range candidates {
		itemReviews := byAsin[asin]
		vectors := make([]aspect.Vector, 0, len(itemReviews))
		for _, r := range itemReviews {
			vectors = append(vectors, aspect.VectorFor(r, cols))
		}
		profile := aspect.Average(vectors)
		similarity := aspect.Cosine(userProfile, profile, cols)
		avgRating := meanRating(itemReviews)
		scored = append(scored, scoredCandidate{
			asin:       asin,
			score:      CombinedScore(similarity, avgRating, len(itemReviews)),
			similarity: similarity,
			topAspects: aspect.Top(profile, cols, 3),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})
	if len(scored) > topN {
		scored = scored[:topN]
	}

	metaByAsin := metadataIndex(metadata)
	recommendations := make([]Item, 0, len(scored))
	for i, cand := range scored {
		item := Item{
			Rank:       i + 1,
			Asin:       cand.asin,
			Score:      round6(cand.score),
			Similarity: round6(cand.similarity),
			TopAspects: cand.topAspects,
		}
		if meta, ok := metaByAsin[cand.asin]; ok {
			enrich(&item, meta)
		}
		recommendations = append(recommendations, item)
	}

	return Result{UserID: userID, Recommendations: recommendations}, nil
}

func emptyResult(userID, message string) Result {
	return Result{UserID: userID, Recommendations: []Item{}, Message: message}
}

// meanRating averages the numeric, finite rating values of the given reviews.
// Reviews without a usable rating are excluded from the mean; no ratings at
// all yields 0.
func meanRating(reviews []dataset.Record) float64 {
	var sum float64
	var n int
	for _, r := range reviews {
		if v, ok := dataset.Coerce(r["rating"]); ok {
			sum += v
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// metadataIndex maps asins to metadata records. The first record claiming a
// parent asin wins that slot; a record's own asin fills the slot only when
// nothing claimed it yet.
func metadataIndex(records []dataset.Record) map[string]dataset.Record {
	idx := make(map[string]dataset.Record, len(records))
	for _, m := range records {
		if p := m.Str("parent_asin"); p != "" {
			if _, ok := idx[p]; !ok {
				idx[p] = m
			}
		}
		if a := m.Str("asin"); a != "" {
			if _, ok := idx[a]; !ok {
				idx[a] = m
			}
		}
	}
	return idx
}

// enrich attaches catalog metadata to a ranked item. A missing title is
// synthesized from the asin so enriched items always render with a name.
func enrich(item *Item, meta dataset.Record) {
	title := meta.Str("title")
	if title == "" {
		title = "Product " + item.Asin
	}
	item.Title = &title

	if price, ok := meta["price"]; ok && price != nil {
		item.Price = price
	}

	category := meta.Str("main_category")
	item.Category = &category

	avgRating := meta.Float("average_rating")
	item.AvgRating = &avgRating

	if images, ok := meta["images"].([]any); ok {
		item.Images = images
	}
}
