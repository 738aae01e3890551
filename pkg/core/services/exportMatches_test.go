package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/chayal-connect/matchmaker/pkg/db"
)

func TestExportMatches(t *testing.T) {
	store := &mockRunMatchingStore{
		students: []db.Student{{ID: "st1", FirstName: "Dana", LastName: "Levi"}},
		soldiers: []db.Soldier{{ID: "so1", FirstName: "Yael", LastName: "Mizrahi"}},
		matches: []db.Match{
			{
				ID: "m1", StudentID: "st1", SoldierID: "so1",
				Score: 90, Rank: 1, Status: "suggested",
				GenderMatch: true, LanguageMatch: true, DistanceScore: 90,
			},
		},
	}

	var buf bytes.Buffer
	err := ExportMatches(context.Background(), store, zap.NewNop(), &buf)
	require.NoError(t, err)

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "match_id", records[0][0])
	assert.Equal(t, []string{
		"m1", "Dana Levi", "Yael Mizrahi", "90", "1", "suggested",
		"true", "true", "false", "90",
	}, records[1])
}

func TestExportMatches_EmptySetWritesHeaderOnly(t *testing.T) {
	var buf bytes.Buffer
	err := ExportMatches(context.Background(), &mockRunMatchingStore{}, zap.NewNop(), &buf)
	require.NoError(t, err)

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 1)
}
