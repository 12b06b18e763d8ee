package service

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestGenerateQualitativeAnalysis(t *testing.T) {
	stub := &stubLLM{response: `{
		"strengths": [" Strong backend experience ", "", 3, "Clear project ownership"],
		"weaknesses": ["No cloud exposure"],
		"summary": " Solid mid-level backend candidate. "
	}`}
	svc := NewAnalysisService(stub, "test-model", zap.NewNop())

	jd := "We need a Go developer"
	got := svc.GenerateQualitativeAnalysis(context.Background(), "resume text", &jd)

	if want := []string{"Strong backend experience", "Clear project ownership"}; !reflect.DeepEqual(got.Strengths, want) {
		t.Fatalf("expected strengths %v, got %v", want, got.Strengths)
	}
	if want := []string{"No cloud exposure"}; !reflect.DeepEqual(got.Weaknesses, want) {
		t.Fatalf("expected weaknesses %v, got %v", want, got.Weaknesses)
	}
	if got.Summary != "Solid mid-level backend candidate." {
		t.Fatalf("unexpected summary: %q", got.Summary)
	}
	if stub.lastTemp != 0.3 {
		t.Fatalf("expected temperature 0.3, got %v", stub.lastTemp)
	}
	if !strings.Contains(stub.lastPrompt, jd) {
		t.Fatalf("expected JD text in prompt")
	}
}

func TestGenerateQualitativeAnalysisWithoutJD(t *testing.T) {
	stub := &stubLLM{response: `{"strengths": [], "weaknesses": [], "summary": "ok"}`}
	svc := NewAnalysisService(stub, "test-model", zap.NewNop())

	svc.GenerateQualitativeAnalysis(context.Background(), "resume text", nil)

	if !strings.Contains(stub.lastPrompt, jdNotProvided) {
		t.Fatalf("expected %q sentinel in prompt, got: %s", jdNotProvided, stub.lastPrompt)
	}
}

func TestGenerateQualitativeAnalysisFailureDegrades(t *testing.T) {
	stub := &stubLLM{err: errors.New("service unavailable")}
	svc := NewAnalysisService(stub, "test-model", zap.NewNop())

	got := svc.GenerateQualitativeAnalysis(context.Background(), "resume text", nil)
	if len(got.Strengths) != 0 || len(got.Weaknesses) != 0 || got.Summary != "" {
		t.Fatalf("expected empty analysis, got %+v", got)
	}
}

func TestGenerateQualitativeAnalysisNonStringSummary(t *testing.T) {
	stub := &stubLLM{response: `{"strengths": ["a"], "weaknesses": [], "summary": {"text": "nested"}}`}
	svc := NewAnalysisService(stub, "test-model", zap.NewNop())

	got := svc.GenerateQualitativeAnalysis(context.Background(), "resume text", nil)
	if got.Summary != "" {
		t.Fatalf("expected empty summary for non-string value, got %q", got.Summary)
	}
}
