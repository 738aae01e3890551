package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/chayal-connect/matchmaker/pkg/core/matcher"
	"github.com/chayal-connect/matchmaker/pkg/db"
	"github.com/chayal-connect/matchmaker/pkg/lang"
)

// mockRunMatchingStore implements RunMatchingStore for testing
type mockRunMatchingStore struct {
	students []db.Student
	soldiers []db.Soldier
	matches  []db.Match
	codes    []db.LanguageCode

	replacedMatches []db.Match
	insertedCodes   []db.LanguageCode
	updatedMatchID  string
	updatedStatus   string

	getStudentsErr    error
	getSoldiersErr    error
	getMatchesErr     error
	getCodesErr       error
	replaceMatchesErr error
	insertCodesErr    error
	updateStatusErr   error
}

func (m *mockRunMatchingStore) GetStudents(ctx context.Context) ([]db.Student, error) {
	if m.getStudentsErr != nil {
		return nil, m.getStudentsErr
	}
	return m.students, nil
}

func (m *mockRunMatchingStore) InsertStudents(ctx context.Context, students []db.Student) error {
	m.students = append(m.students, students...)
	return nil
}

func (m *mockRunMatchingStore) DeleteStudent(ctx context.Context, studentID string) error {
	for i, s := range m.students {
		if s.ID == studentID {
			m.students = append(m.students[:i], m.students[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("student %s not found", studentID)
}

func (m *mockRunMatchingStore) GetSoldiers(ctx context.Context) ([]db.Soldier, error) {
	if m.getSoldiersErr != nil {
		return nil, m.getSoldiersErr
	}
	return m.soldiers, nil
}

func (m *mockRunMatchingStore) InsertSoldiers(ctx context.Context, soldiers []db.Soldier) error {
	m.soldiers = append(m.soldiers, soldiers...)
	return nil
}

func (m *mockRunMatchingStore) DeleteSoldier(ctx context.Context, soldierID string) error {
	for i, s := range m.soldiers {
		if s.ID == soldierID {
			m.soldiers = append(m.soldiers[:i], m.soldiers[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("soldier %s not found", soldierID)
}

func (m *mockRunMatchingStore) GetMatches(ctx context.Context) ([]db.Match, error) {
	if m.getMatchesErr != nil {
		return nil, m.getMatchesErr
	}
	return m.matches, nil
}

func (m *mockRunMatchingStore) ReplaceMatches(ctx context.Context, matches []db.Match) error {
	if m.replaceMatchesErr != nil {
		return m.replaceMatchesErr
	}
	m.replacedMatches = matches
	return nil
}

func (m *mockRunMatchingStore) UpdateMatchStatus(ctx context.Context, matchID, status string) error {
	if m.updateStatusErr != nil {
		return m.updateStatusErr
	}
	m.updatedMatchID = matchID
	m.updatedStatus = status
	return nil
}

func (m *mockRunMatchingStore) GetLanguageCodes(ctx context.Context) ([]db.LanguageCode, error) {
	if m.getCodesErr != nil {
		return nil, m.getCodesErr
	}
	return m.codes, nil
}

func (m *mockRunMatchingStore) InsertLanguageCodes(ctx context.Context, codes []db.LanguageCode) error {
	if m.insertCodesErr != nil {
		return m.insertCodesErr
	}
	m.insertedCodes = append(m.insertedCodes, codes...)
	return nil
}

// fixedDistance scores every city pair the same
type fixedDistance struct {
	score  int
	region string
}

func (f fixedDistance) DistanceScore(cityA, cityB string) int { return f.score }
func (f fixedDistance) Region(city string) string             { return f.region }

func testStore() *mockRunMatchingStore {
	return &mockRunMatchingStore{
		students: []db.Student{
			{ID: "st1", FirstName: "Dana", Gender: "female", City: "Tel Aviv", Language: "Hebrew"},
			{ID: "st2", FirstName: "Noam", Gender: "male", City: "Haifa", Language: "Russian"},
		},
		soldiers: []db.Soldier{
			{ID: "so1", FirstName: "Yael", Gender: "female", PreferredGender: "female", City: "Tel Aviv", Language: "Hebrew"},
		},
	}
}

func TestRunMatching_PersistsReplacedMatchSet(t *testing.T) {
	store := testStore()
	logger := zap.NewNop()

	result, err := RunMatching(context.Background(), store, fixedDistance{score: 100, region: "center"}, lang.NewRegistry(), logger, false)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.False(t, result.DryRun)

	// One soldier gets a primary and an alternate
	require.Len(t, store.replacedMatches, 2)
	assert.Equal(t, "st1", store.replacedMatches[0].StudentID)
	assert.Equal(t, matcher.RankPrimary, store.replacedMatches[0].Rank)
	assert.Equal(t, "st2", store.replacedMatches[1].StudentID)
	assert.Equal(t, matcher.RankAlternate, store.replacedMatches[1].Rank)

	for _, m := range store.replacedMatches {
		assert.NotEmpty(t, m.ID)
		assert.Equal(t, "so1", m.SoldierID)
		assert.Equal(t, "suggested", m.Status)
		assert.False(t, m.CreatedAt.IsZero())
	}

	// Full gender + language + distance agreement for the primary
	assert.Equal(t, 100, store.replacedMatches[0].Score)
	assert.True(t, store.replacedMatches[0].GenderMatch)
	assert.True(t, store.replacedMatches[0].LanguageMatch)

	assert.Equal(t, 2, result.Summary.TotalMatches)
	assert.Equal(t, 1, result.Summary.SoldiersWithTwoMatches)
}

func TestRunMatching_DryRunWritesNothing(t *testing.T) {
	store := testStore()
	store.students[1].Language = "Klingon" // would mint a code

	result, err := RunMatching(context.Background(), store, fixedDistance{score: 100}, lang.NewRegistry(), zap.NewNop(), true)
	require.NoError(t, err)
	assert.True(t, result.DryRun)
	assert.Len(t, result.Matches, 2)

	assert.Nil(t, store.replacedMatches)
	assert.Nil(t, store.insertedCodes)
}

func TestRunMatching_PersistsMintedLanguageCodes(t *testing.T) {
	store := testStore()
	store.students[1].Language = "Klingon"

	_, err := RunMatching(context.Background(), store, fixedDistance{score: 100}, lang.NewRegistry(), zap.NewNop(), false)
	require.NoError(t, err)

	require.Len(t, store.insertedCodes, 1)
	assert.Equal(t, "klingon", store.insertedCodes[0].Text)
	assert.Equal(t, "X1", store.insertedCodes[0].Code)
}

func TestRunMatching_SeededCodesAreStableAndNotReinserted(t *testing.T) {
	store := testStore()
	store.students[1].Language = "Klingon"
	store.codes = []db.LanguageCode{{Text: "klingon", Code: "X7"}}

	_, err := RunMatching(context.Background(), store, fixedDistance{score: 100}, lang.NewRegistry(), zap.NewNop(), false)
	require.NoError(t, err)

	// Already stored, so nothing new to insert
	assert.Empty(t, store.insertedCodes)
}

func TestRunMatching_StoreErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*mockRunMatchingStore)
		wantMsg string
	}{
		{
			name:    "students fetch fails",
			mutate:  func(s *mockRunMatchingStore) { s.getStudentsErr = errors.New("boom") },
			wantMsg: "failed to fetch students",
		},
		{
			name:    "soldiers fetch fails",
			mutate:  func(s *mockRunMatchingStore) { s.getSoldiersErr = errors.New("boom") },
			wantMsg: "failed to fetch soldiers",
		},
		{
			name:    "language codes fetch fails",
			mutate:  func(s *mockRunMatchingStore) { s.getCodesErr = errors.New("boom") },
			wantMsg: "failed to fetch language codes",
		},
		{
			name:    "replace matches fails",
			mutate:  func(s *mockRunMatchingStore) { s.replaceMatchesErr = errors.New("boom") },
			wantMsg: "failed to replace matches",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := testStore()
			tt.mutate(store)

			_, err := RunMatching(context.Background(), store, fixedDistance{score: 100}, lang.NewRegistry(), zap.NewNop(), false)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}
