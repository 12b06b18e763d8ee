// Package matching implements the deterministic skill comparison between a
// candidate's extracted skills and a job description's skill lists.
package matching

import "strings"

// ComputeSkillMatching compares the two token lists with case-insensitive set
// semantics. Matched and missing tokens are returned in their lower-cased
// form; callers must not rely on any particular order. The percentage is 0
// when the required set is empty.
func ComputeSkillMatching(candidateSkills, requiredSkills []string) (matched, missing []string, matchPercentage float64) {
	candidate := make(map[string]struct{}, len(candidateSkills))
	for _, s := range candidateSkills {
		candidate[strings.ToLower(s)] = struct{}{}
	}

	matched = []string{}
	missing = []string{}
	required := make(map[string]struct{}, len(requiredSkills))
	for _, s := range requiredSkills {
		key := strings.ToLower(s)
		if _, seen := required[key]; seen {
			continue
		}
		required[key] = struct{}{}
		if _, ok := candidate[key]; ok {
			matched = append(matched, key)
		} else {
			missing = append(missing, key)
		}
	}

	if len(required) == 0 {
		return matched, missing, 0
	}
	return matched, missing, float64(len(matched)) / float64(len(required)) * 100
}
