package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/mukulnagar-gammaedge/resume-analyzer/internal/model"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

// Structured extraction runs at temperature 0: the output feeds deterministic
// matching and scoring, so sampling variance buys nothing.
const extractionTemperature float32 = 0.0

// jdSkillMaxWords guards against the model returning requirement sentences
// instead of skill tokens.
const jdSkillMaxWords = 6

type ExtractionServiceInterface interface {
	ExtractResumeStructured(ctx context.Context, text string) model.ResumeData
	ExtractJDStructured(ctx context.Context, text string) model.JobRequirements
}

type ExtractionService struct {
	llm    LLMClientInterface
	model  string
	logger *zap.Logger
}

func NewExtractionService(llm LLMClientInterface, modelName string, logger *zap.Logger) *ExtractionService {
	return &ExtractionService{llm: llm, model: modelName, logger: logger}
}

// ExtractResumeStructured turns free resume text into a normalized structured
// record. It never fails: any LLM or parse problem degrades to the
// all-defaults record so the pipeline can proceed with what it has.
func (s *ExtractionService) ExtractResumeStructured(ctx context.Context, text string) model.ResumeData {
	prompt := fmt.Sprintf(`You are a JSON generator.

Return ONLY valid JSON.
No explanations.
No markdown.
If a field is not found, return a sensible empty value.

Schema:
{
  "skills": [],
  "total_experience_years": 0,
  "education": "",
  "projects": []
}

Rules:
- skills must be short skill tokens (1-3 words). Example: "Python", "FastAPI", "PostgreSQL", "Docker".
- projects must be short titles (not paragraphs).

Resume:
%s`, text)

	raw, err := s.llm.GenerateText(ctx, s.model, prompt, extractionTemperature)
	if err != nil {
		s.logger.Warn("resume extraction LLM call failed, falling back to defaults", zap.Error(err))
		return emptyResumeData()
	}

	obj, err := extractJSONObject(raw)
	if err != nil {
		s.logger.Warn("malformed model output for resume extraction",
			zap.Error(err),
			zap.String("raw", truncate(raw, 200)))
		return emptyResumeData()
	}

	root := gjson.Parse(obj)

	education := ""
	if e := root.Get("education"); e.Type == gjson.String {
		education = strings.TrimSpace(e.Str)
	}

	return model.ResumeData{
		Skills:               normalizeTokens(stringItems(root.Get("skills")), 0),
		TotalExperienceYears: root.Get("total_experience_years").Float(),
		Education:            education,
		Projects:             normalizeTokens(stringItems(root.Get("projects")), 0),
	}
}

// ExtractJDStructured turns job description text into a normalized
// requirements record, with the same degrade-to-defaults policy.
func (s *ExtractionService) ExtractJDStructured(ctx context.Context, text string) model.JobRequirements {
	prompt := fmt.Sprintf(`You are a JSON generator.

Return ONLY valid JSON.
No explanations.
No markdown.
If a field is not found, return a sensible empty value.

Schema:
{
  "required_skills": [],
  "optional_skills": [],
  "min_experience_years": 0
}

Rules:
- required_skills and optional_skills MUST be short skill tokens only (1-3 words).
  Good: "Python", "PostgreSQL", "Docker", "Kubernetes", "Redis", "CI/CD"
  Bad: "Proficiency in at least one backend language such as Python..."
- Do not include sentences in skills.
- min_experience_years must be a number (0 if not specified).

Job Description:
%s`, text)

	raw, err := s.llm.GenerateText(ctx, s.model, prompt, extractionTemperature)
	if err != nil {
		s.logger.Warn("JD extraction LLM call failed, falling back to defaults", zap.Error(err))
		return emptyJobRequirements()
	}

	obj, err := extractJSONObject(raw)
	if err != nil {
		s.logger.Warn("malformed model output for JD extraction",
			zap.Error(err),
			zap.String("raw", truncate(raw, 200)))
		return emptyJobRequirements()
	}

	root := gjson.Parse(obj)

	return model.JobRequirements{
		RequiredSkills:     normalizeTokens(stringItems(root.Get("required_skills")), jdSkillMaxWords),
		OptionalSkills:     normalizeTokens(stringItems(root.Get("optional_skills")), jdSkillMaxWords),
		MinExperienceYears: root.Get("min_experience_years").Float(),
	}
}

func emptyResumeData() model.ResumeData {
	return model.ResumeData{Skills: []string{}, Projects: []string{}}
}

func emptyJobRequirements() model.JobRequirements {
	return model.JobRequirements{RequiredSkills: []string{}, OptionalSkills: []string{}}
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
