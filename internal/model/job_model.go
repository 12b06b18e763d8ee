package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)

// ResumeData is the structured record extracted from the resume text.
type ResumeData struct {
	Skills               []string `json:"skills"`
	TotalExperienceYears float64  `json:"total_experience_years"`
	Education            string   `json:"education"`
	Projects             []string `json:"projects"`
}

// JobRequirements is the structured record extracted from the job description.
type JobRequirements struct {
	RequiredSkills     []string `json:"required_skills"`
	OptionalSkills     []string `json:"optional_skills"`
	MinExperienceYears float64  `json:"min_experience_years"`
}

// QualitativeAnalysis is the prose-style output of the analysis service.
type QualitativeAnalysis struct {
	Strengths  []string `json:"strengths"`
	Weaknesses []string `json:"weaknesses"`
	Summary    string   `json:"summary"`
}

type Job struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ResumePath     string    `gorm:"type:varchar(512);not null" json:"resume_path"`
	JobDescription *string   `gorm:"type:text" json:"job_description"`

	ExtractedResume *ResumeData      `gorm:"type:jsonb;serializer:json" json:"extracted_resume"`
	ExtractedJD     *JobRequirements `gorm:"type:jsonb;serializer:json" json:"extracted_jd"`

	OverallScore    *float64 `gorm:"type:float" json:"overall_score"`
	MatchPercentage *float64 `gorm:"type:float" json:"match_percentage"`

	MatchedSkills []string `gorm:"type:jsonb;serializer:json" json:"matched_skills"`
	MissingSkills []string `gorm:"type:jsonb;serializer:json" json:"missing_skills"`
	Strengths     []string `gorm:"type:jsonb;serializer:json" json:"strengths"`
	Weaknesses    []string `gorm:"type:jsonb;serializer:json" json:"weaknesses"`

	AnalysisSummary string `gorm:"type:text" json:"analysis_summary"`

	Status string `gorm:"type:varchar(20);default:pending" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (j *Job) TableName() string {
	return "jobs"
}
