// Package utils provides vector math helpers for working with embeddings.
package utils

import (
	"container/heap"
	"math"
)

// CosineSimilarity calculates the cosine similarity between two float32 vectors.
// Returns 0 if vectors have different lengths, are empty, or either has zero magnitude.
// The result is in the range [-1, 1], where 1 means identical direction,
// 0 means orthogonal, and -1 means opposite direction.
func CosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dotProduct, normA, normB float64
	for i := range a {
		dotProduct += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0
	}
	return dotProduct / (math.Sqrt(normA) * math.Sqrt(normB))
}

// Normalize returns a unit-length copy of the vector. A zero vector is
// returned unchanged.
func Normalize(v []float32) []float32 {
	var norm float64
	for _, x := range v {
		norm += float64(x) * float64(x)
	}
	out := make([]float32, len(v))
	if norm == 0 {
		copy(out, v)
		return out
	}
	scale := 1 / math.Sqrt(norm)
	for i, x := range v {
		out[i] = float32(float64(x) * scale)
	}
	return out
}

// Match is one ranked result of a nearest-neighbor lookup.
type Match struct {
	// Index is the position of the matched vector in the candidate set
	Index int
	// Score is the cosine similarity to the query
	Score float64
}

// matchHeap is a min-heap of matches keyed by score, so the worst of the
// current top k sits at the root.
type matchHeap []Match

func (h matchHeap) Len() int            { return len(h) }
func (h matchHeap) Less(i, j int) bool  { return h[i].Score < h[j].Score }
func (h matchHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *matchHeap) Push(x interface{}) { *h = append(*h, x.(Match)) }
func (h *matchHeap) Pop() interface{} {
	old := *h
	n := len(old)
	m := old[n-1]
	*h = old[:n-1]
	return m
}

// TopK returns the k candidate vectors most similar to the query by
// cosine similarity, ordered best first. If k exceeds the candidate
// count, all candidates are ranked.
func TopK(query []float32, candidates [][]float32, k int) []Match {
	if k <= 0 || len(candidates) == 0 {
		return nil
	}
	if k > len(candidates) {
		k = len(candidates)
	}

	h := make(matchHeap, 0, k)
	heap.Init(&h)
	for i, candidate := range candidates {
		score := CosineSimilarity(query, candidate)
		if len(h) < k {
			heap.Push(&h, Match{Index: i, Score: score})
			continue
		}
		if score > h[0].Score {
			h[0] = Match{Index: i, Score: score}
			heap.Fix(&h, 0)
		}
	}

	out := make([]Match, len(h))
	for i := len(h) - 1; i >= 0; i-- {
		out[i] = heap.Pop(&h).(Match)
	}
	return out
}
