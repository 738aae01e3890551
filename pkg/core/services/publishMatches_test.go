package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/chayal-connect/matchmaker/pkg/clients/sheetsclient"
	"github.com/chayal-connect/matchmaker/pkg/db"
)

// mockPublisher implements MatchPublisher for testing
type mockPublisher struct {
	sheetID    string
	published  *sheetsclient.PublishedMatches
	publishErr error
}

func (m *mockPublisher) PublishMatches(spreadsheetID string, published *sheetsclient.PublishedMatches) error {
	if m.publishErr != nil {
		return m.publishErr
	}
	m.sheetID = spreadsheetID
	m.published = published
	return nil
}

func TestPublishMatches(t *testing.T) {
	store := &mockRunMatchingStore{
		matches: []db.Match{
			{ID: "m1", StudentID: "st1", SoldierID: "so1", Score: 90, Rank: 1, Status: "approved"},
			{ID: "m2", StudentID: "st2", SoldierID: "so1", Score: 40, Rank: 2, Status: "suggested"},
		},
	}
	publisher := &mockPublisher{}

	count, err := PublishMatches(context.Background(), store, publisher, zap.NewNop(), "sheet123")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	assert.Equal(t, "sheet123", publisher.sheetID)
	require.NotNil(t, publisher.published)
	require.Len(t, publisher.published.Rows, 2)
	assert.Equal(t, "st1", publisher.published.Rows[0].StudentID)
	assert.Equal(t, 90, publisher.published.Rows[0].Score)
	assert.False(t, publisher.published.RunDate.IsZero())
}

func TestPublishMatches_Errors(t *testing.T) {
	store := &mockRunMatchingStore{
		matches: []db.Match{{ID: "m1", StudentID: "st1", SoldierID: "so1"}},
	}

	_, err := PublishMatches(context.Background(), store, &mockPublisher{}, zap.NewNop(), "")
	assert.ErrorContains(t, err, "no match sheet configured")

	_, err = PublishMatches(context.Background(), &mockRunMatchingStore{}, &mockPublisher{}, zap.NewNop(), "sheet123")
	assert.ErrorContains(t, err, "no matches to publish")

	publisher := &mockPublisher{publishErr: errors.New("api down")}
	_, err = PublishMatches(context.Background(), store, publisher, zap.NewNop(), "sheet123")
	assert.ErrorContains(t, err, "failed to publish matches")
}
