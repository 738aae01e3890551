package matcher

import (
	"fmt"

	"github.com/chayal-connect/matchmaker/pkg/core/model"
)

// Engine runs the matching pipeline: score all pairs, rank candidates
// per soldier, allocate up to two ranked matches per soldier, rebalance,
// summarize. An Engine holds only its injected collaborators; all run
// state is local to one Run call, so a fresh Engine per run is cheap and
// runs never leak state into each other.
type Engine struct {
	distance  DistanceScorer
	languages LanguageResolver
}

// NewEngine creates an engine with the given geographic and language
// collaborators.
func NewEngine(distance DistanceScorer, languages LanguageResolver) *Engine {
	return &Engine{
		distance:  distance,
		languages: languages,
	}
}

// Run executes one complete matching run and returns the replacement
// match set plus its summary. Deterministic given identical inputs and
// unchanged resolver state.
//
// Empty student or soldier lists produce an empty match list and a
// zeroed summary, not an error. The only hard precondition is record
// identity: every record must carry a non-empty ID and IDs must be
// unique within their list — colliding IDs are an input-validation bug
// in the caller and are rejected here rather than silently coalesced.
func (e *Engine) Run(students []model.Student, soldiers []model.Soldier) (*Result, error) {
	if err := validateIDs(students, soldiers); err != nil {
		return nil, err
	}

	candidatesBySoldier := e.GenerateCandidates(students, soldiers)
	matches := e.Allocate(candidatesBySoldier, students, soldiers)

	return &Result{
		Matches: matches,
		Summary: Summarize(matches, students, soldiers),
	}, nil
}

func validateIDs(students []model.Student, soldiers []model.Soldier) error {
	seenStudents := make(map[string]bool, len(students))
	for i, student := range students {
		if student.ID == "" {
			return fmt.Errorf("student at index %d has an empty ID", i)
		}
		if seenStudents[student.ID] {
			return fmt.Errorf("duplicate student ID %q", student.ID)
		}
		seenStudents[student.ID] = true
	}

	seenSoldiers := make(map[string]bool, len(soldiers))
	for i, soldier := range soldiers {
		if soldier.ID == "" {
			return fmt.Errorf("soldier at index %d has an empty ID", i)
		}
		if seenSoldiers[soldier.ID] {
			return fmt.Errorf("duplicate soldier ID %q", soldier.ID)
		}
		seenSoldiers[soldier.ID] = true
	}

	return nil
}
