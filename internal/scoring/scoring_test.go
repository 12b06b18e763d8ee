package scoring

import "testing"

func TestComputeFinalScoreBounds(t *testing.T) {
	if got := ComputeFinalScore(0, 0, 0, 0); got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
	if got := ComputeFinalScore(100, 100, 100, 100); got != 100 {
		t.Fatalf("expected 100, got %v", got)
	}
}

func TestComputeFinalScoreWeights(t *testing.T) {
	cases := []struct {
		name                          string
		skill, exp, project, optional float64
		want                          float64
	}{
		{"skill half weight", 100, 0, 0, 0, 50},
		{"experience fifth weight", 0, 100, 0, 0, 20},
		{"project fifth weight", 0, 0, 100, 0, 20},
		{"optional tenth weight", 0, 0, 0, 100, 10},
		{"no JD placeholders", 60, 60, 60, 0, 54},
	}
	for _, tc := range cases {
		if got := ComputeFinalScore(tc.skill, tc.exp, tc.project, tc.optional); got != tc.want {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, got)
		}
	}
}

func TestExperienceScoreCapsAt100(t *testing.T) {
	if got := ExperienceScore(10, 2); got != 100 {
		t.Fatalf("expected cap at 100, got %v", got)
	}
}

func TestExperienceScoreZeroMinimumFloorsDivisor(t *testing.T) {
	// min(100, years / max(0, 1) * 100): one year against no requirement is
	// already a full score.
	if got := ExperienceScore(1, 0); got != 100 {
		t.Fatalf("expected 100, got %v", got)
	}
	if got := ExperienceScore(0.5, 0); got != 50 {
		t.Fatalf("expected 50, got %v", got)
	}
}

func TestExperienceScorePartial(t *testing.T) {
	if got := ExperienceScore(2, 4); got != 50 {
		t.Fatalf("expected 50, got %v", got)
	}
	if got := ExperienceScore(0, 3); got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
}

func TestRound2(t *testing.T) {
	if got := Round2(2.0 / 3.0 * 100); got != 66.67 {
		t.Fatalf("expected 66.67, got %v", got)
	}
	if got := Round2(81.994); got != 81.99 {
		t.Fatalf("expected 81.99, got %v", got)
	}
}
