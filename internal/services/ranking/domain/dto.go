// Package domain holds DTOs and ports for the ranking stage
package domain

import "creatorscout/internal/core/rank"

// RankInput lists the creators whose stored reels are ranked
type RankInput struct {
	Usernames []string `json:"usernames" validate:"required,min=1,max=100,dive,username" example:"gym_bro,yoga_jo"`
}

// Ranked is the stored shortlist of one creator
type Ranked struct {
	Username string             `json:"username" example:"gym_bro"`
	Videos   []rank.ScoredVideo `json:"videos"`
}

// RankResult is the outcome of one per creator ranking run
type RankResult struct {
	RunID  string   `json:"run_id"`
	Ranked []Ranked `json:"ranked"`
	Logs   []string `json:"logs"`
}

// AggregateInput asks for the best K videos across creators
// X is accepted as an alias of K, K wins when both are set
type AggregateInput struct {
	Usernames []string `json:"usernames" validate:"required,min=1,max=100,dive,username" example:"gym_bro,yoga_jo"`
	K         *int     `json:"k,omitempty" validate:"omitempty,min=1" example:"5"`
	X         *int     `json:"X,omitempty" validate:"omitempty,min=1"`
}

// Limit returns the requested K, zero when neither K nor X was sent
func (in AggregateInput) Limit() int {
	switch {
	case in.K != nil:
		return *in.K
	case in.X != nil:
		return *in.X
	}
	return 0
}

// AggregateResult is the cross creator ranking
type AggregateResult struct {
	RunID string             `json:"run_id"`
	Data  []rank.ScoredVideo `json:"data"`
	Logs  []string           `json:"logs"`
}
