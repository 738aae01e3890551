package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chayal-connect/matchmaker/pkg/core/model"
)

func TestSummarize_Counts(t *testing.T) {
	students := []model.Student{{ID: "st1"}, {ID: "st2"}, {ID: "st3"}}
	soldiers := []model.Soldier{{ID: "so1"}, {ID: "so2"}, {ID: "so3"}}

	matches := []Match{
		{StudentID: "st1", SoldierID: "so1", Rank: RankPrimary, Score: 95},
		{StudentID: "st2", SoldierID: "so1", Rank: RankAlternate, Score: 45},
		{StudentID: "st1", SoldierID: "so2", Rank: RankPrimary, Score: 20},
		// so3 has no matches, st3 is never used
	}

	summary := Summarize(matches, students, soldiers)

	assert.Equal(t, 3, summary.TotalSoldiers)
	assert.Equal(t, 3, summary.TotalStudents)
	assert.Equal(t, 3, summary.TotalMatches)
	assert.Equal(t, 1, summary.SoldiersWithTwoMatches)
	assert.Equal(t, 1, summary.SoldiersWithOneMatch)
	assert.Equal(t, 1, summary.SoldiersWithNoMatch)
	assert.Equal(t, 2, summary.StudentsUsed)
	assert.Equal(t, 1, summary.StudentsNotUsed)
	assert.InDelta(t, (95.0+45.0+20.0)/3.0, summary.AverageScore, 0.0001)
	assert.Equal(t, 1, summary.HighScoreMatches)
	assert.Equal(t, 1, summary.MediumScoreMatches)
	assert.Equal(t, 1, summary.LowScoreMatches)
}

func TestSummarize_CountsAreConsistent(t *testing.T) {
	students := []model.Student{{ID: "st1"}, {ID: "st2"}}
	soldiers := []model.Soldier{{ID: "so1"}, {ID: "so2"}, {ID: "so3"}}

	engine := newTestEngine(nil, nil, nil)
	candidates := engine.GenerateCandidates(students, soldiers)
	matches := engine.Allocate(candidates, students, soldiers)

	summary := Summarize(matches, students, soldiers)

	assert.Equal(t, summary.TotalSoldiers,
		summary.SoldiersWithTwoMatches+summary.SoldiersWithOneMatch+summary.SoldiersWithNoMatch)
	assert.Equal(t, summary.TotalStudents,
		summary.StudentsUsed+summary.StudentsNotUsed)
	assert.Equal(t, summary.TotalMatches,
		summary.HighScoreMatches+summary.MediumScoreMatches+summary.LowScoreMatches)
}

func TestSummarize_ScoreBandBoundaries(t *testing.T) {
	students := []model.Student{{ID: "st1"}}
	soldiers := []model.Soldier{{ID: "so1"}, {ID: "so2"}, {ID: "so3"}, {ID: "so4"}}

	matches := []Match{
		{StudentID: "st1", SoldierID: "so1", Score: 70}, // lowest high
		{StudentID: "st1", SoldierID: "so2", Score: 69}, // highest medium
		{StudentID: "st1", SoldierID: "so3", Score: 30}, // lowest medium
		{StudentID: "st1", SoldierID: "so4", Score: 29}, // highest low
	}

	summary := Summarize(matches, students, soldiers)

	assert.Equal(t, 1, summary.HighScoreMatches)
	assert.Equal(t, 2, summary.MediumScoreMatches)
	assert.Equal(t, 1, summary.LowScoreMatches)
}

func TestSummarize_Empty(t *testing.T) {
	summary := Summarize(nil, nil, nil)

	assert.Equal(t, 0, summary.TotalSoldiers)
	assert.Equal(t, 0, summary.TotalStudents)
	assert.Equal(t, 0, summary.TotalMatches)
	assert.Equal(t, 0.0, summary.AverageScore)
}
