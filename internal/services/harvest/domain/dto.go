// Package domain holds DTOs and ports for the harvest stage
package domain

// HarvestInput lists the creators whose reels are collected
type HarvestInput struct {
	Usernames []string `json:"usernames" validate:"required,min=1,max=100,dive,username" example:"gym_bro,yoga_jo"`
}

// Harvested reports one stored reels payload
type Harvested struct {
	Username string `json:"username" example:"gym_bro"`
	Items    int    `json:"items" example:"30"`
}

// Result is the outcome of one harvest run
type Result struct {
	RunID     string      `json:"run_id"`
	Harvested []Harvested `json:"harvested"`
	Logs      []string    `json:"logs"`
}
