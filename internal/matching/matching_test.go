package matching

import "testing"

func contains(items []string, want string) bool {
	for _, item := range items {
		if item == want {
			return true
		}
	}
	return false
}

func TestComputeSkillMatchingIntersection(t *testing.T) {
	candidate := []string{"Python", "PostgreSQL", "Docker"}
	required := []string{"python", "Kubernetes", "docker"}

	matched, missing, pct := ComputeSkillMatching(candidate, required)

	if len(matched) != 2 {
		t.Fatalf("expected 2 matched skills, got %v", matched)
	}
	if !contains(matched, "python") || !contains(matched, "docker") {
		t.Fatalf("unexpected matched set: %v", matched)
	}
	if len(missing) != 1 || !contains(missing, "kubernetes") {
		t.Fatalf("unexpected missing set: %v", missing)
	}
	want := float64(2) / float64(3) * 100
	if pct != want {
		t.Fatalf("expected match percentage %v, got %v", want, pct)
	}
}

func TestComputeSkillMatchingEmptyRequired(t *testing.T) {
	matched, missing, pct := ComputeSkillMatching([]string{"Go"}, nil)
	if pct != 0 {
		t.Fatalf("expected 0 percentage for empty required set, got %v", pct)
	}
	if len(matched) != 0 || len(missing) != 0 {
		t.Fatalf("expected empty sets, got matched=%v missing=%v", matched, missing)
	}
}

func TestComputeSkillMatchingNoOverlap(t *testing.T) {
	matched, missing, pct := ComputeSkillMatching([]string{"Excel"}, []string{"Go", "Rust"})
	if len(matched) != 0 {
		t.Fatalf("expected no matches, got %v", matched)
	}
	if len(missing) != 2 {
		t.Fatalf("expected 2 missing, got %v", missing)
	}
	if pct != 0 {
		t.Fatalf("expected 0 percentage, got %v", pct)
	}
}

func TestComputeSkillMatchingDuplicateRequired(t *testing.T) {
	// Set semantics: duplicate required tokens must not inflate the denominator.
	_, _, pct := ComputeSkillMatching([]string{"go"}, []string{"Go", "GO", "Rust"})
	if pct != 50 {
		t.Fatalf("expected 50, got %v", pct)
	}
}

func TestComputeSkillMatchingFullMatch(t *testing.T) {
	matched, missing, pct := ComputeSkillMatching(
		[]string{"Python", "FastAPI", "PostgreSQL"},
		[]string{"python", "postgresql"},
	)
	if pct != 100 {
		t.Fatalf("expected 100, got %v", pct)
	}
	if len(missing) != 0 {
		t.Fatalf("expected no missing skills, got %v", missing)
	}
	if len(matched) != 2 {
		t.Fatalf("expected 2 matched, got %v", matched)
	}
}
