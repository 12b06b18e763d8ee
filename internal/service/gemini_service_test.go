package service

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"
)

func brokenGeminiService() *GeminiService {
	svc := &GeminiService{
		MaxRetries:        3,
		BaseDelay:         time.Second,
		MaxDelay:          90 * time.Second,
		RequestTimeout:    90 * time.Second,
		logger:            zap.NewNop(),
		circuitBreakerMax: 5,
	}
	svc.consecutiveErrors.Store(svc.circuitBreakerMax)
	return svc
}

func TestGenerateTextCircuitBreakerOpen(t *testing.T) {
	svc := brokenGeminiService()

	_, err := svc.GenerateText(context.Background(), "test-model", "prompt", 0)
	if err == nil || !strings.Contains(err.Error(), "circuit breaker open") {
		t.Fatalf("expected circuit breaker error, got %v", err)
	}

	errs, open := svc.GetCircuitBreakerStatus()
	if !open {
		t.Fatalf("expected breaker to report open at %d consecutive errors", errs)
	}
}

func TestGenerateTextCircuitBreakerSharedAcrossWorkers(t *testing.T) {
	// One GeminiService is shared by every pipeline worker goroutine, so
	// concurrent GenerateText calls and status reads must be safe together.
	svc := brokenGeminiService()

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 25; j++ {
				_, err := svc.GenerateText(context.Background(), "test-model", "prompt", 0)
				if err == nil || !strings.Contains(err.Error(), "circuit breaker open") {
					t.Errorf("expected circuit breaker error, got %v", err)
					return
				}
				if _, open := svc.GetCircuitBreakerStatus(); !open {
					t.Errorf("expected breaker to stay open")
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestGenerateTextValidatesArguments(t *testing.T) {
	svc := brokenGeminiService()

	if _, err := svc.GenerateText(context.Background(), "", "prompt", 0); err == nil {
		t.Fatalf("expected error for empty model name")
	}
	if _, err := svc.GenerateText(context.Background(), "test-model", "   ", 0); err == nil {
		t.Fatalf("expected error for blank prompt")
	}
}
