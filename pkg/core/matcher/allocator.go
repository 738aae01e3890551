package matcher

import (
	"sort"

	"github.com/chayal-connect/matchmaker/pkg/core/model"
)

// runState is the mutable state of a single allocation run. It is local
// to one Allocate call and discarded afterwards; nothing here survives
// across runs.
type runState struct {
	// primaryCount is the live number of rank-1 assignments per student.
	// Rank-2 assignments are deliberately free: an alternate suggestion
	// is not a commitment, so it must not eat into the student's load
	// for subsequent soldiers.
	primaryCount map[string]int

	// usedStudents tracks students appearing in any assignment of either
	// rank, for the rebalancing pass
	usedStudents map[string]bool
}

// Allocate turns per-soldier ranked candidate lists into a final list of
// ranked matches.
//
// Soldiers are processed in ascending order of candidate-list length:
// soldiers with scarce options claim their best-fit students before
// soldiers with abundant options use them up. Each soldier receives up to
// two matches (rank 1 then rank 2), never the same student twice. At the
// moment of assignment the soldier's candidates are re-sorted to prefer
// students with the fewest rank-1 assignments so far, ties broken by
// higher score.
//
// Capacity (AvailableSlots) is advisory only and not enforced here; the
// fairness re-sort spreads load instead. A single best-effort rebalancing
// pass then hands rank-2 slots of overloaded students to students who
// received nothing.
func (e *Engine) Allocate(candidatesBySoldier map[string][]Candidate, students []model.Student, soldiers []model.Soldier) []Match {
	state := &runState{
		primaryCount: make(map[string]int, len(students)),
		usedStudents: make(map[string]bool, len(students)),
	}

	// Scarce soldiers first
	ordered := make([]model.Soldier, len(soldiers))
	copy(ordered, soldiers)
	sort.SliceStable(ordered, func(i, j int) bool {
		return len(candidatesBySoldier[ordered[i].ID]) < len(candidatesBySoldier[ordered[j].ID])
	})

	matches := make([]Match, 0, len(soldiers)*2)
	for _, soldier := range ordered {
		matches = append(matches, e.assignSoldier(state, candidatesBySoldier[soldier.ID])...)
	}

	e.rebalance(state, matches, students, soldiers)

	return matches
}

// assignSoldier picks up to two students for one soldier from its
// candidate list, using live load counts rather than the static pre-sort.
func (e *Engine) assignSoldier(state *runState, candidates []Candidate) []Match {
	if len(candidates) == 0 {
		return nil
	}

	// Load-balancing re-sort: fewest rank-1 assignments first, then
	// higher score. Uses live counts, so earlier soldiers' picks push
	// busy students down the list.
	resorted := make([]Candidate, len(candidates))
	copy(resorted, candidates)
	sort.SliceStable(resorted, func(i, j int) bool {
		loadI := state.primaryCount[resorted[i].Student.ID]
		loadJ := state.primaryCount[resorted[j].Student.ID]
		if loadI != loadJ {
			return loadI < loadJ
		}
		return resorted[i].Score > resorted[j].Score
	})

	matches := make([]Match, 0, 2)
	assignedHere := make(map[string]bool, 2)
	rank := RankPrimary

	for _, candidate := range resorted {
		if assignedHere[candidate.Student.ID] {
			continue
		}

		matches = append(matches, Match{
			StudentID: candidate.Student.ID,
			SoldierID: candidate.Soldier.ID,
			Score:     candidate.Score,
			Rank:      rank,
			Criteria:  candidate.Criteria,
			Status:    model.StatusSuggested,
		})

		assignedHere[candidate.Student.ID] = true
		state.usedStudents[candidate.Student.ID] = true
		if rank == RankPrimary {
			state.primaryCount[candidate.Student.ID]++
		}

		rank++
		if rank > RankAlternate {
			break
		}
	}

	return matches
}
