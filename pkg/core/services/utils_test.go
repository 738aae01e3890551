package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chayal-connect/matchmaker/pkg/core/matcher"
	"github.com/chayal-connect/matchmaker/pkg/core/model"
	"github.com/chayal-connect/matchmaker/pkg/db"
)

func TestToModelStudents(t *testing.T) {
	students := toModelStudents([]db.Student{
		{ID: "st1", FirstName: "Dana", Gender: "female", City: "Tel Aviv", Language: "Hebrew", Scholarship: true, AssignmentCount: 3},
		{ID: "st2", Gender: "nonsense"},
	})

	require.Len(t, students, 2)
	assert.Equal(t, model.GenderFemale, students[0].Gender)
	assert.True(t, students[0].Scholarship)
	assert.Equal(t, 3, students[0].AssignmentCount)
	assert.Equal(t, model.GenderUnknown, students[1].Gender)
}

func TestToModelSoldiers(t *testing.T) {
	soldiers := toModelSoldiers([]db.Soldier{
		{ID: "so1", Gender: "male", PreferredGender: "female"},
		{ID: "so2", Gender: "male"},
	})

	require.Len(t, soldiers, 2)
	assert.Equal(t, model.PreferenceFemale, soldiers[0].PreferredGender)
	assert.Empty(t, soldiers[1].PreferredGender)
}

func TestToDBMatches(t *testing.T) {
	now := time.Now().UTC()
	matches := toDBMatches([]matcher.Match{
		{
			StudentID: "st1", SoldierID: "so1", Score: 90, Rank: 1,
			Status:   model.StatusSuggested,
			Criteria: matcher.Criteria{GenderMatch: true, DistanceScore: 90},
		},
		{StudentID: "st2", SoldierID: "so1", Score: 40, Rank: 2, Status: model.StatusSuggested},
	}, now)

	require.Len(t, matches, 2)
	assert.NotEmpty(t, matches[0].ID)
	assert.NotEqual(t, matches[0].ID, matches[1].ID)
	assert.Equal(t, "suggested", matches[0].Status)
	assert.True(t, matches[0].GenderMatch)
	assert.Equal(t, 90, matches[0].DistanceScore)
	assert.Equal(t, now, matches[1].CreatedAt)
}

func TestToMatcherMatchesRoundTrip(t *testing.T) {
	original := matcher.Match{
		StudentID: "st1", SoldierID: "so1", Score: 90, Rank: 1,
		Status:   model.StatusApproved,
		Criteria: matcher.Criteria{LanguageMatch: true, RegionMatch: true, DistanceScore: 80},
	}

	back := toMatcherMatches(toDBMatches([]matcher.Match{original}, time.Now()))
	require.Len(t, back, 1)
	assert.Equal(t, original, back[0])
}
