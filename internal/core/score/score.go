// Package score computes engagement weighted performance scores
package score

// Counters are the engagement numbers a score is computed from
type Counters struct {
	Likes    int64
	Comments int64
	Plays    int64
}

// Profile is a set of linear weights over Counters
type Profile struct {
	Name     string
	Likes    float64
	Comments float64
	Plays    float64
}

var (
	// PerCreator ranks one creator's own videos
	PerCreator = Profile{Name: "per_creator", Likes: 0.4, Comments: 0.3, Plays: 0.3}

	// CrossCreator ranks videos merged from many creators
	CrossCreator = Profile{Name: "cross_creator", Likes: 0.65, Comments: 0.3, Plays: 0.05}
)

// Score returns the weighted sum of c
func (p Profile) Score(c Counters) float64 {
	return float64(c.Likes)*p.Likes + float64(c.Comments)*p.Comments + float64(c.Plays)*p.Plays
}
