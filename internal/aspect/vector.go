// Package aspect builds and compares per-aspect sentiment profiles derived
// from review records.
package aspect

import (
	"math"
	"sort"
	"strings"

	"github.com/nextsocial/shop-backend/internal/dataset"
)

// Suffix tags the review fields that carry per-aspect sentiment scores
// (e.g. "cleanliness_score").
const Suffix = "_score"

// Vector maps an aspect column name to a numeric value. Two vectors are only
// comparable over a shared column set.
type Vector map[string]float64

// Columns returns the aspect score columns present across the given records.
// Keys inside a record are sorted before collection so the resulting order is
// deterministic for a given corpus; that order later breaks top-aspect ties.
func Columns(records []dataset.Record) []string {
	seen := make(map[string]bool)
	cols := make([]string, 0)
	keys := make([]string, 0, 8)
	for _, r := range records {
		keys = keys[:0]
		for k := range r {
			if strings.HasSuffix(k, Suffix) {
				keys = append(keys, k)
			}
		}
		sort.Strings(keys)
		for _, k := range keys {
			if !seen[k] {
				seen[k] = true
				cols = append(cols, k)
			}
		}
	}
	return cols
}

// VectorFor projects a record onto the aspect columns, coercing every value
// to a finite number or 0.
func VectorFor(r dataset.Record, cols []string) Vector {
	v := make(Vector, len(cols))
	for _, c := range cols {
		v[c] = r.Float(c)
	}
	return v
}

// Average computes the elementwise mean of the given vectors. The denominator
// is always len(vectors), even for columns that only some vectors carry.
// No input yields an empty vector.
func Average(vectors []Vector) Vector {
	avg := Vector{}
	if len(vectors) == 0 {
		return avg
	}
	sums := make(map[string]float64)
	for _, v := range vectors {
		for k, val := range v {
			if math.IsNaN(val) || math.IsInf(val, 0) {
				val = 0
			}
			sums[k] += val
		}
	}
	n := float64(len(vectors))
	for k, s := range sums {
		avg[k] = s / n
	}
	return avg
}

// Cosine computes cosine similarity between a and b over exactly the given
// columns, with missing entries counted as 0. A zero norm on either side is a
// defined degenerate case and yields 0 rather than NaN.
func Cosine(a, b Vector, cols []string) float64 {
	var dot, na, nb float64
	for _, c := range cols {
		av := a[c]
		bv := b[c]
		dot += av * bv
		na += av * av
		nb += bv * bv
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}

// Top returns the n column names with the highest values in v, ties keeping
// the order of cols, with the aspect suffix stripped for display.
func Top(v Vector, cols []string, n int) []string {
	ranked := make([]string, len(cols))
	copy(ranked, cols)
	sort.SliceStable(ranked, func(i, j int) bool {
		return v[ranked[i]] > v[ranked[j]]
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	out := make([]string, len(ranked))
	for i, c := range ranked {
		out[i] = strings.TrimSuffix(c, Suffix)
	}
	return out
}
