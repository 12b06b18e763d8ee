package handler

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/mukulnagar-gammaedge/resume-analyzer/internal/dto"
	"github.com/mukulnagar-gammaedge/resume-analyzer/internal/middleware"
	"github.com/mukulnagar-gammaedge/resume-analyzer/internal/model"
	"github.com/mukulnagar-gammaedge/resume-analyzer/internal/repository"
	"github.com/mukulnagar-gammaedge/resume-analyzer/internal/storage"
	"github.com/mukulnagar-gammaedge/resume-analyzer/internal/util"
)

const maxResumeSize = 5 * 1024 * 1024

// TaskEnqueuer hands a created job off to the worker side.
type TaskEnqueuer interface {
	Enqueue(ctx context.Context, jobID string) error
}

// JobStore is the slice of the job repository the HTTP handlers need.
type JobStore interface {
	Create(ctx context.Context, job *model.Job) error
	FindByID(ctx context.Context, id string) (*model.Job, error)
}

type AnalyzeHandler struct {
	jobs    JobStore
	resumes *storage.ResumeStore
	tasks   TaskEnqueuer
}

func NewAnalyzeHandler(jobs JobStore, resumes *storage.ResumeStore, tasks TaskEnqueuer) *AnalyzeHandler {
	return &AnalyzeHandler{jobs: jobs, resumes: resumes, tasks: tasks}
}

func (h *AnalyzeHandler) RegisterRoutes(app *fiber.App) {
	app.Post("/analyze", middleware.RateLimiter(1, 4*time.Second), h.Analyze)
	app.Get("/result/:id", h.Result)
}

// Analyze accepts the resume PDF plus an optional job description, stores the
// blob, creates the pending job row and enqueues the analysis task. The job
// id is returned immediately; results are polled via /result/:id.
func (h *AnalyzeHandler) Analyze(c *fiber.Ctx) error {
	file, err := c.FormFile("resume")
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "resume file is required",
		}, err)
	}

	if file.Size > maxResumeSize {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "resume file size is too large (max 5MB)",
		})
	}

	if strings.ToLower(filepath.Ext(file.Filename)) != ".pdf" {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "only PDF resumes are supported",
		})
	}

	jobID := uuid.New()

	src, err := file.Open()
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "cannot read resume file",
		}, err)
	}
	defer src.Close()

	resumePath, err := h.resumes.Save(jobID.String(), src)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "cannot save resume file",
		}, err)
	}

	var jobDescription *string
	if jd := strings.TrimSpace(c.FormValue("job_description")); jd != "" {
		jobDescription = &jd
	}

	job := model.Job{
		ID:             jobID,
		ResumePath:     resumePath,
		JobDescription: jobDescription,
		Status:         model.StatusPending,
	}
	if err := h.jobs.Create(c.Context(), &job); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to create analysis job",
		}, err)
	}

	if err := h.tasks.Enqueue(c.Context(), jobID.String()); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to enqueue analysis job",
		}, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusAccepted,
		Message: "Resume submitted for analysis",
		Data: dto.AnalyzeResponse{
			JobID:  jobID,
			Status: job.Status,
		},
	})
}

// Result returns the current status and whatever analysis fields have been
// populated so far.
func (h *AnalyzeHandler) Result(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid job id",
		}, err)
	}

	job, err := h.jobs.FindByID(c.Context(), id.String())
	if errors.Is(err, repository.ErrJobNotFound) {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: "job not found",
		}, err)
	}
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to load analysis job",
		}, err)
	}

	data := dto.ResultResponse{
		ID:              job.ID,
		Status:          job.Status,
		OverallScore:    job.OverallScore,
		MatchPercentage: job.MatchPercentage,
		Strengths:       job.Strengths,
		Weaknesses:      job.Weaknesses,
		MissingSkills:   job.MissingSkills,
		AnalysisSummary: job.AnalysisSummary,
		CreatedAt:       job.CreatedAt,
		UpdatedAt:       job.UpdatedAt,
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get analysis result",
		Data:    data,
	})
}
