// Package scoring holds the deterministic arithmetic that turns the pipeline's
// sub-scores into a single overall score.
package scoring

import "math"

// Weights of the overall score formula. All inputs are on a 0-100 scale.
const (
	skillMatchWeight    = 0.5
	experienceWeight    = 0.2
	projectWeight       = 0.2
	optionalBonusWeight = 0.1
)

const (
	// DefaultProjectScore is a fixed placeholder, not a computed value.
	DefaultProjectScore = 60.0

	// Generic sub-scores used when no job description was supplied.
	GenericMatchScore      = 60.0
	GenericExperienceScore = 60.0
)

// ComputeFinalScore is the fixed weighted sum of the four sub-scores. It does
// no clamping; callers are responsible for bounding the inputs.
func ComputeFinalScore(skillMatch, experienceScore, projectScore, optionalBonus float64) float64 {
	return skillMatch*skillMatchWeight +
		experienceScore*experienceWeight +
		projectScore*projectWeight +
		optionalBonus*optionalBonusWeight
}

// ExperienceScore scores the candidate's years of experience against the
// job's minimum. The divisor floors at 1 to avoid division by zero; the
// result is capped at 100 on the upper side only.
func ExperienceScore(resumeYears, minRequiredYears float64) float64 {
	if minRequiredYears < 1 {
		minRequiredYears = 1
	}
	score := resumeYears / minRequiredYears * 100
	if score > 100 {
		return 100
	}
	return score
}

// Round2 rounds to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
