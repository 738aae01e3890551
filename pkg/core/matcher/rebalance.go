package matcher

import "github.com/chayal-connect/matchmaker/pkg/core/model"

// rebalance is the post-allocation repair pass: students who received no
// assignment at all take over rank-2 slots currently held by students
// with more than one rank-1 assignment, starting with the slot of the
// most loaded holder. The reclaimed slot is re-scored for its new
// student.
//
// The pass runs exactly once and is best-effort: it is not iterated to a
// fixed point, it never guarantees full student coverage, and it never
// touches a rank-1 assignment. Matches are edited in place.
func (e *Engine) rebalance(state *runState, matches []Match, students []model.Student, soldiers []model.Soldier) {
	soldiersByID := make(map[string]model.Soldier, len(soldiers))
	for _, soldier := range soldiers {
		soldiersByID[soldier.ID] = soldier
	}

	for _, student := range students {
		if state.usedStudents[student.ID] {
			continue
		}

		slot := e.findReclaimableSlot(state, matches)
		if slot < 0 {
			continue
		}

		soldier, ok := soldiersByID[matches[slot].SoldierID]
		if !ok {
			continue
		}

		score, criteria := e.Score(student, soldier)
		matches[slot].StudentID = student.ID
		matches[slot].Score = score
		matches[slot].Criteria = criteria

		state.usedStudents[student.ID] = true
	}
}

// findReclaimableSlot returns the index of the rank-2 match whose holder
// carries the most rank-1 assignments, considering only holders with
// more than one. Returns -1 when no slot qualifies.
func (e *Engine) findReclaimableSlot(state *runState, matches []Match) int {
	best := -1
	bestLoad := 1

	for i, match := range matches {
		if match.Rank != RankAlternate {
			continue
		}
		load := state.primaryCount[match.StudentID]
		if load > bestLoad {
			best = i
			bestLoad = load
		}
	}

	return best
}
