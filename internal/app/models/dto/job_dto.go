package dto

import "time"

// CreateJobRequest is the payload for posting a new drive.
type CreateJobRequest struct {
	CollegeID   int64     `json:"collegeId" binding:"required"`
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	Ctc         string    `json:"ctc" binding:"required" example:"12 LPA"`
	Deadline    time.Time `json:"deadline" binding:"required"`
	MinCgpa     float64   `json:"minCgpa"`
	Branches    []string  `json:"branches"`
	Rounds      []string  `json:"rounds"`
}
