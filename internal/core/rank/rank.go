// Package rank orders scored videos and keeps the best K
package rank

import (
	"slices"

	"creatorscout/internal/core/media"
	"creatorscout/internal/core/score"
)

// PerCreatorK is the shortlist length stored for every creator
const PerCreatorK = 5

// ScoredVideo is VideoMetadata with the score it was ranked by
type ScoredVideo struct {
	media.VideoMetadata
	PerformanceScore float64 `json:"performance_score"`
}

// Score attaches p's score to every video, order is kept
func Score(videos []media.VideoMetadata, p score.Profile) []ScoredVideo {
	out := make([]ScoredVideo, len(videos))
	for i, v := range videos {
		out[i] = ScoredVideo{VideoMetadata: v, PerformanceScore: p.Score(v.Counters())}
	}
	return out
}

// Rescore recomputes every score under p, stored scores are ignored
func Rescore(videos []ScoredVideo, p score.Profile) []ScoredVideo {
	out := make([]ScoredVideo, len(videos))
	for i, v := range videos {
		v.PerformanceScore = p.Score(v.Counters())
		out[i] = v
	}
	return out
}

// Merge concatenates lists in argument order
func Merge(lists ...[]ScoredVideo) []ScoredVideo {
	return slices.Concat(lists...)
}

// TopK returns the k highest scores, equal scores keep their input order
// The input slice is not modified
func TopK(videos []ScoredVideo, k int) []ScoredVideo {
	if k <= 0 {
		return []ScoredVideo{}
	}
	out := slices.Clone(videos)
	slices.SortStableFunc(out, func(a, b ScoredVideo) int {
		switch {
		case a.PerformanceScore > b.PerformanceScore:
			return -1
		case a.PerformanceScore < b.PerformanceScore:
			return 1
		}
		return 0
	})
	if len(out) > k {
		out = out[:k]
	}
	if out == nil {
		out = []ScoredVideo{}
	}
	return out
}
