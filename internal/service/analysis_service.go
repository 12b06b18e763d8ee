package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/mukulnagar-gammaedge/resume-analyzer/internal/model"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

// Qualitative output is prose, so a little sampling variance is allowed.
const analysisTemperature float32 = 0.3

const jdNotProvided = "Not provided"

type AnalysisServiceInterface interface {
	GenerateQualitativeAnalysis(ctx context.Context, resumeText string, jdText *string) model.QualitativeAnalysis
}

type AnalysisService struct {
	llm    LLMClientInterface
	model  string
	logger *zap.Logger
}

func NewAnalysisService(llm LLMClientInterface, modelName string, logger *zap.Logger) *AnalysisService {
	return &AnalysisService{llm: llm, model: modelName, logger: logger}
}

// GenerateQualitativeAnalysis produces strengths, weaknesses and a short
// summary. Same sanitize/parse discipline as structured extraction, same
// never-fail policy: on any problem the caller gets empty lists and an empty
// summary.
func (s *AnalysisService) GenerateQualitativeAnalysis(ctx context.Context, resumeText string, jdText *string) model.QualitativeAnalysis {
	jd := jdNotProvided
	if jdText != nil && strings.TrimSpace(*jdText) != "" {
		jd = *jdText
	}

	prompt := fmt.Sprintf(`You are a JSON generator.

Return ONLY valid JSON.
No explanations.
No markdown.

Schema:
{
  "strengths": [],
  "weaknesses": [],
  "summary": ""
}

Rules:
- strengths/weaknesses: short bullet-like strings (max 12 words each)
- summary: 1-3 sentences, professional tone

Resume:
%s

Job Description:
%s`, resumeText, jd)

	raw, err := s.llm.GenerateText(ctx, s.model, prompt, analysisTemperature)
	if err != nil {
		s.logger.Warn("qualitative analysis LLM call failed, falling back to empty analysis", zap.Error(err))
		return emptyAnalysis()
	}

	obj, err := extractJSONObject(raw)
	if err != nil {
		s.logger.Warn("malformed model output for qualitative analysis",
			zap.Error(err),
			zap.String("raw", truncate(raw, 200)))
		return emptyAnalysis()
	}

	root := gjson.Parse(obj)

	summary := ""
	if v := root.Get("summary"); v.Type == gjson.String {
		summary = strings.TrimSpace(v.Str)
	}

	return model.QualitativeAnalysis{
		Strengths:  trimNonEmpty(stringItems(root.Get("strengths"))),
		Weaknesses: trimNonEmpty(stringItems(root.Get("weaknesses"))),
		Summary:    summary,
	}
}

func emptyAnalysis() model.QualitativeAnalysis {
	return model.QualitativeAnalysis{Strengths: []string{}, Weaknesses: []string{}}
}
