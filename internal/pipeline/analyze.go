// Package pipeline drives one submitted job through text extraction,
// structured extraction, matching, qualitative analysis and scoring, managing
// the job's status transitions along the way.
package pipeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/mukulnagar-gammaedge/resume-analyzer/internal/matching"
	"github.com/mukulnagar-gammaedge/resume-analyzer/internal/model"
	"github.com/mukulnagar-gammaedge/resume-analyzer/internal/repository"
	"github.com/mukulnagar-gammaedge/resume-analyzer/internal/scoring"
	"github.com/mukulnagar-gammaedge/resume-analyzer/internal/service"
	"go.uber.org/zap"
)

// JobStore is the slice of the job repository the pipeline needs.
type JobStore interface {
	FindByID(ctx context.Context, id string) (*model.Job, error)
	Update(ctx context.Context, job *model.Job) error
	ClaimPending(ctx context.Context, id string) (bool, error)
}

// TextExtractor converts a stored resume blob into plain text.
type TextExtractor func(path string) (string, error)

type Pipeline struct {
	jobs        JobStore
	extraction  service.ExtractionServiceInterface
	analysis    service.AnalysisServiceInterface
	extractText TextExtractor
	logger      *zap.Logger
}

func New(jobs JobStore, extraction service.ExtractionServiceInterface, analysis service.AnalysisServiceInterface, extractText TextExtractor, logger *zap.Logger) *Pipeline {
	return &Pipeline{
		jobs:        jobs,
		extraction:  extraction,
		analysis:    analysis,
		extractText: extractText,
		logger:      logger,
	}
}

// Process runs the full analysis pipeline for one job id. Status moves
// pending -> processing -> completed|failed; terminal states are never
// touched again. The returned error is diagnostic only: by the time Process
// returns, the job record already reflects the outcome, and the task caller
// does not consume the result.
func (p *Pipeline) Process(ctx context.Context, jobID string) error {
	log := p.logger.With(zap.String("job_id", jobID))
	log.Info("analysis task started")

	job, err := p.jobs.FindByID(ctx, jobID)
	if errors.Is(err, repository.ErrJobNotFound) {
		// A vanished job is an operational anomaly, not a processing
		// failure: nothing to mark failed.
		log.Warn("job record not found, skipping")
		return nil
	}
	if err != nil {
		return fmt.Errorf("load job %s: %w", jobID, err)
	}

	claimed, err := p.jobs.ClaimPending(ctx, jobID)
	if err != nil {
		return fmt.Errorf("claim job %s: %w", jobID, err)
	}
	if !claimed {
		log.Warn("job not in pending state, skipping delivery",
			zap.String("status", job.Status))
		return nil
	}
	job.Status = model.StatusProcessing

	if err := p.run(ctx, job, log); err != nil {
		log.Error("analysis pipeline failed", zap.Error(err))
		job.Status = model.StatusFailed
		if uerr := p.jobs.Update(ctx, job); uerr != nil {
			log.Error("failed to persist failed status", zap.Error(uerr))
		}
		return err
	}

	log.Info("analysis task completed")
	return nil
}

// run executes the fallible section of the pipeline. Whatever it wrote onto
// the job record before an error is kept: the failure branch in Process
// persists the record as-is, so partial progress stays observable.
func (p *Pipeline) run(ctx context.Context, job *model.Job, log *zap.Logger) error {
	log.Info("extracting resume text")
	resumeText, err := p.extractText(job.ResumePath)
	if err != nil {
		return fmt.Errorf("extract resume text: %w", err)
	}

	log.Info("extracting structured resume data")
	resumeData := p.extraction.ExtractResumeStructured(ctx, resumeText)
	job.ExtractedResume = &resumeData
	if err := p.jobs.Update(ctx, job); err != nil {
		return fmt.Errorf("persist extracted resume: %w", err)
	}

	matchPercentage := 0.0
	experienceScore := 0.0
	projectScore := scoring.DefaultProjectScore
	optionalBonus := 0.0

	if job.JobDescription != nil && *job.JobDescription != "" {
		log.Info("extracting structured JD data")
		jdData := p.extraction.ExtractJDStructured(ctx, *job.JobDescription)
		job.ExtractedJD = &jdData

		log.Info("computing skill matching")
		matched, missing, pct := matching.ComputeSkillMatching(resumeData.Skills, jdData.RequiredSkills)
		matchPercentage = pct
		job.MatchedSkills = matched
		job.MissingSkills = missing
		job.MatchPercentage = &pct
		if err := p.jobs.Update(ctx, job); err != nil {
			return fmt.Errorf("persist skill matching: %w", err)
		}

		experienceScore = scoring.ExperienceScore(resumeData.TotalExperienceYears, jdData.MinExperienceYears)

		if len(jdData.OptionalSkills) > 0 {
			_, _, optionalPct := matching.ComputeSkillMatching(resumeData.Skills, jdData.OptionalSkills)
			optionalBonus = optionalPct
		}
	} else {
		log.Info("no JD provided, using generic scoring")
		matchPercentage = scoring.GenericMatchScore
		experienceScore = scoring.GenericExperienceScore
		job.MatchPercentage = nil
	}

	log.Info("generating qualitative analysis")
	qualitative := p.analysis.GenerateQualitativeAnalysis(ctx, resumeText, job.JobDescription)
	job.Strengths = qualitative.Strengths
	job.Weaknesses = qualitative.Weaknesses
	job.AnalysisSummary = qualitative.Summary

	log.Info("computing final score")
	finalScore := scoring.Round2(scoring.ComputeFinalScore(
		matchPercentage,
		experienceScore,
		projectScore,
		optionalBonus,
	))
	job.OverallScore = &finalScore

	job.Status = model.StatusCompleted
	return p.jobs.Update(ctx, job)
}
