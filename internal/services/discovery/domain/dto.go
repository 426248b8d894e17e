// Package domain holds DTOs and ports for the discovery stage
package domain

// SeedInput asks for the accounts a creator follows
type SeedInput struct {
	Username string `json:"username" validate:"required,username" example:"fit_al"`
	Count    int    `json:"count,omitempty" validate:"omitempty,min=1,max=200" example:"25"`
}

// SeedResult is the stored seed list
type SeedResult struct {
	RunID               string   `json:"run_id" example:"5f0c6a8e-8f5e-4c8e-9d53-0d6f3f1b7c2a"`
	Message             string   `json:"message" example:"usernames stored at fit_al/usernames.json"`
	SuccessfulUsernames []string `json:"successful_usernames"`
	Logs                []string `json:"logs"`
}

// SeedsResult is a previously stored seed list
type SeedsResult struct {
	Username  string   `json:"username" example:"fit_al"`
	Usernames []string `json:"usernames"`
}
