package matcher

import (
	"sort"

	"github.com/chayal-connect/matchmaker/pkg/core/model"
)

// GenerateCandidates scores every student against every soldier and
// returns, per soldier, the candidates with a positive score sorted
// descending by score. With the scoring floor of 1 every pair survives
// the filter; the filter exists so a future floor change doesn't silently
// admit dead candidates.
//
// Ties keep the students' input order (stable sort); callers must not
// depend on tie order beyond that.
func (e *Engine) GenerateCandidates(students []model.Student, soldiers []model.Soldier) map[string][]Candidate {
	candidatesBySoldier := make(map[string][]Candidate, len(soldiers))

	for _, soldier := range soldiers {
		candidates := make([]Candidate, 0, len(students))

		for _, student := range students {
			score, criteria := e.Score(student, soldier)
			if score <= 0 {
				continue
			}
			candidates = append(candidates, Candidate{
				Student:  student,
				Soldier:  soldier,
				Score:    score,
				Criteria: criteria,
			})
		}

		sort.SliceStable(candidates, func(i, j int) bool {
			return candidates[i].Score > candidates[j].Score
		})

		candidatesBySoldier[soldier.ID] = candidates
	}

	return candidatesBySoldier
}
