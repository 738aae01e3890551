package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/chayal-connect/matchmaker/pkg/db"
)

func TestViewSummary(t *testing.T) {
	store := &mockRunMatchingStore{
		students: []db.Student{{ID: "st1"}, {ID: "st2"}, {ID: "st3"}},
		soldiers: []db.Soldier{{ID: "so1"}, {ID: "so2"}},
		matches: []db.Match{
			{ID: "m1", StudentID: "st1", SoldierID: "so1", Score: 100, Rank: 1, Status: "suggested"},
			{ID: "m2", StudentID: "st2", SoldierID: "so1", Score: 40, Rank: 2, Status: "approved"},
		},
	}

	summary, err := ViewSummary(context.Background(), store, zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, 2, summary.TotalMatches)
	assert.Equal(t, 2, summary.TotalSoldiers)
	assert.Equal(t, 3, summary.TotalStudents)
	assert.Equal(t, 1, summary.SoldiersWithTwoMatches)
	assert.Equal(t, 1, summary.SoldiersWithNoMatch)
	assert.Equal(t, 2, summary.StudentsUsed)
	assert.Equal(t, 1, summary.StudentsNotUsed)
	assert.Equal(t, 1, summary.HighScoreMatches)
	assert.Equal(t, 1, summary.MediumScoreMatches)
	assert.InDelta(t, 70.0, summary.AverageScore, 0.001)
}

func TestViewSummary_Empty(t *testing.T) {
	summary, err := ViewSummary(context.Background(), &mockRunMatchingStore{}, zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, 0, summary.TotalMatches)
	assert.Zero(t, summary.AverageScore)
}

func TestViewSummary_StoreError(t *testing.T) {
	store := &mockRunMatchingStore{getMatchesErr: errors.New("boom")}

	_, err := ViewSummary(context.Background(), store, zap.NewNop())
	assert.ErrorContains(t, err, "failed to fetch matches")
}
