package dto

import (
	"time"

	"github.com/google/uuid"
)

type AnalyzeResponse struct {
	JobID  uuid.UUID `json:"job_id"`
	Status string    `json:"status"`
}

type ResultResponse struct {
	ID              uuid.UUID `json:"id"`
	Status          string    `json:"status"` // e.g. "pending", "processing", "completed", "failed"
	OverallScore    *float64  `json:"overall_score"`
	MatchPercentage *float64  `json:"match_percentage"`
	Strengths       []string  `json:"strengths"`
	Weaknesses      []string  `json:"weaknesses"`
	MissingSkills   []string  `json:"missing_skills"`
	AnalysisSummary string    `json:"analysis_summary"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
