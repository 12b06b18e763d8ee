package service

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"go.uber.org/zap"
)

type stubLLM struct {
	response   string
	err        error
	lastPrompt string
	lastTemp   float32
}

func (s *stubLLM) GenerateText(_ context.Context, _ string, prompt string, temperature float32) (string, error) {
	s.lastPrompt = prompt
	s.lastTemp = temperature
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func TestExtractResumeStructured(t *testing.T) {
	stub := &stubLLM{response: "Here is the extracted data:\n```json\n" +
		`{"skills": ["Python", "python", "PYTHON", "Go"], "total_experience_years": 3.5, "education": " B.Tech CS ", "projects": [" Resume Analyzer ", "Resume Analyzer", 42]}` +
		"\n```\nLet me know if you need anything else."}
	svc := NewExtractionService(stub, "test-model", zap.NewNop())

	got := svc.ExtractResumeStructured(context.Background(), "resume text")

	if want := []string{"Python", "Go"}; !reflect.DeepEqual(got.Skills, want) {
		t.Fatalf("expected skills %v, got %v", want, got.Skills)
	}
	if got.TotalExperienceYears != 3.5 {
		t.Fatalf("expected 3.5 years, got %v", got.TotalExperienceYears)
	}
	if got.Education != "B.Tech CS" {
		t.Fatalf("unexpected education: %q", got.Education)
	}
	if want := []string{"Resume Analyzer"}; !reflect.DeepEqual(got.Projects, want) {
		t.Fatalf("expected projects %v, got %v", want, got.Projects)
	}
	if stub.lastTemp != 0 {
		t.Fatalf("expected temperature 0, got %v", stub.lastTemp)
	}
}

func TestExtractResumeStructuredTypeMismatchesDefault(t *testing.T) {
	stub := &stubLLM{response: `{"skills": "Python", "total_experience_years": "lots", "education": 12, "projects": {"a": 1}}`}
	svc := NewExtractionService(stub, "test-model", zap.NewNop())

	got := svc.ExtractResumeStructured(context.Background(), "resume text")

	if len(got.Skills) != 0 {
		t.Fatalf("expected empty skills for non-list value, got %v", got.Skills)
	}
	if got.TotalExperienceYears != 0 {
		t.Fatalf("expected 0 years for non-numeric value, got %v", got.TotalExperienceYears)
	}
	if got.Education != "" {
		t.Fatalf("expected empty education for non-string value, got %q", got.Education)
	}
	if len(got.Projects) != 0 {
		t.Fatalf("expected empty projects, got %v", got.Projects)
	}
}

func TestExtractResumeStructuredStringExperienceCoerced(t *testing.T) {
	stub := &stubLLM{response: `{"skills": [], "total_experience_years": "4", "education": "", "projects": []}`}
	svc := NewExtractionService(stub, "test-model", zap.NewNop())

	got := svc.ExtractResumeStructured(context.Background(), "resume text")
	if got.TotalExperienceYears != 4 {
		t.Fatalf("expected coerced 4 years, got %v", got.TotalExperienceYears)
	}
}

func TestExtractResumeStructuredLLMFailureDegrades(t *testing.T) {
	stub := &stubLLM{err: errors.New("connection refused")}
	svc := NewExtractionService(stub, "test-model", zap.NewNop())

	got := svc.ExtractResumeStructured(context.Background(), "resume text")

	if len(got.Skills) != 0 || len(got.Projects) != 0 || got.TotalExperienceYears != 0 || got.Education != "" {
		t.Fatalf("expected all-defaults record, got %+v", got)
	}
}

func TestExtractResumeStructuredMalformedOutputDegrades(t *testing.T) {
	stub := &stubLLM{response: "I could not find any structured data in this resume."}
	svc := NewExtractionService(stub, "test-model", zap.NewNop())

	got := svc.ExtractResumeStructured(context.Background(), "resume text")
	if len(got.Skills) != 0 || got.TotalExperienceYears != 0 {
		t.Fatalf("expected all-defaults record, got %+v", got)
	}
}

func TestExtractJDStructuredDropsSentences(t *testing.T) {
	stub := &stubLLM{response: `{
		"required_skills": ["Proficiency in at least one backend language such as Python", "CI/CD", "Docker"],
		"optional_skills": ["Kubernetes", "kubernetes"],
		"min_experience_years": 2
	}`}
	svc := NewExtractionService(stub, "test-model", zap.NewNop())

	got := svc.ExtractJDStructured(context.Background(), "jd text")

	if want := []string{"CI/CD", "Docker"}; !reflect.DeepEqual(got.RequiredSkills, want) {
		t.Fatalf("expected required skills %v, got %v", want, got.RequiredSkills)
	}
	if want := []string{"Kubernetes"}; !reflect.DeepEqual(got.OptionalSkills, want) {
		t.Fatalf("expected optional skills %v, got %v", want, got.OptionalSkills)
	}
	if got.MinExperienceYears != 2 {
		t.Fatalf("expected 2 years minimum, got %v", got.MinExperienceYears)
	}
}

func TestExtractJDStructuredLLMFailureDegrades(t *testing.T) {
	stub := &stubLLM{err: errors.New("timeout")}
	svc := NewExtractionService(stub, "test-model", zap.NewNop())

	got := svc.ExtractJDStructured(context.Background(), "jd text")
	if len(got.RequiredSkills) != 0 || len(got.OptionalSkills) != 0 || got.MinExperienceYears != 0 {
		t.Fatalf("expected all-defaults record, got %+v", got)
	}
}
