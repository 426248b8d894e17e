// Package domain holds DTOs and ports for the screening stage
package domain

import (
	"strconv"
	"strings"

	perr "creatorscout/internal/platform/errors"
)

// FilterInput is the wire form of a screening request
// followercount travels as a string of digits
type FilterInput struct {
	Usernames     []string `json:"usernames" validate:"required,min=1,max=100,dive,username" example:"gym_bro,yoga_jo"`
	Niche         string   `json:"niche" validate:"required" example:"fitness"`
	Level         string   `json:"level" validate:"required" example:"beginner"`
	FollowerCount string   `json:"followercount" validate:"required,number" example:"50000"`
}

// Criteria is a parsed screening request
type Criteria struct {
	Usernames   []string
	Niche       string
	Level       string
	FollowerCap int64
}

// Criteria parses the follower cap and returns the service form of in
func (in FilterInput) Criteria() (Criteria, error) {
	capStr := strings.TrimSpace(in.FollowerCount)
	followerCap, err := strconv.ParseInt(capStr, 10, 64)
	if err != nil || followerCap < 0 {
		return Criteria{}, perr.Validationf("followercount must be a non negative integer, got %q", in.FollowerCount)
	}
	return Criteria{
		Usernames:   in.Usernames,
		Niche:       in.Niche,
		Level:       in.Level,
		FollowerCap: followerCap,
	}, nil
}

// Verdict is the screening decision for one candidate
type Verdict struct {
	Username string `json:"username" example:"gym_bro"`
	Accepted bool   `json:"accepted"`
	Reason   string `json:"reason,omitempty" example:"outside niche"`
}

// Result is the outcome of one screening run
type Result struct {
	RunID               string    `json:"run_id"`
	SuccessfulUsernames []string  `json:"successful_usernames"`
	Verdicts            []Verdict `json:"verdicts"`
	Logs                []string  `json:"logs"`
}
