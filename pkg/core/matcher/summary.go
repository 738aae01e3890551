package matcher

import "github.com/chayal-connect/matchmaker/pkg/core/model"

// Score band thresholds
const (
	highScoreThreshold   = 70
	mediumScoreThreshold = 30
)

// Summarize folds a final match set into coverage and quality
// statistics. Read-only; unmatched soldiers and unused students are
// counted, not reported as errors.
func Summarize(matches []Match, students []model.Student, soldiers []model.Soldier) Summary {
	summary := Summary{
		TotalSoldiers: len(soldiers),
		TotalStudents: len(students),
		TotalMatches:  len(matches),
	}

	matchesPerSoldier := make(map[string]int, len(soldiers))
	usedStudents := make(map[string]bool, len(students))
	scoreTotal := 0

	for _, match := range matches {
		matchesPerSoldier[match.SoldierID]++
		usedStudents[match.StudentID] = true
		scoreTotal += match.Score

		switch {
		case match.Score >= highScoreThreshold:
			summary.HighScoreMatches++
		case match.Score >= mediumScoreThreshold:
			summary.MediumScoreMatches++
		default:
			summary.LowScoreMatches++
		}
	}

	for _, soldier := range soldiers {
		switch matchesPerSoldier[soldier.ID] {
		case 0:
			summary.SoldiersWithNoMatch++
		case 1:
			summary.SoldiersWithOneMatch++
		default:
			summary.SoldiersWithTwoMatches++
		}
	}

	for _, student := range students {
		if usedStudents[student.ID] {
			summary.StudentsUsed++
		} else {
			summary.StudentsNotUsed++
		}
	}

	if len(matches) > 0 {
		summary.AverageScore = float64(scoreTotal) / float64(len(matches))
	}

	return summary
}
