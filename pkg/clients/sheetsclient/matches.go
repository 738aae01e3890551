package sheetsclient

import (
	"fmt"
	"time"
)

// PublishedMatchRow is a single anonymized row in the published match
// sheet. Only opaque record IDs and codes appear; names never leave the
// local database.
type PublishedMatchRow struct {
	StudentID string
	SoldierID string
	Score     int
	Rank      int
	Status    string
}

// PublishedMatches is the complete data set for one published run
type PublishedMatches struct {
	RunDate time.Time
	Rows    []PublishedMatchRow
}

// PublishMatches publishes an anonymized match set to Google Sheets.
// Each run gets a tab named for its date; re-publishing the same day
// overwrites the existing tab so the sheet always shows the latest set.
func (c *Client) PublishMatches(spreadsheetID string, published *PublishedMatches) error {
	tabTitle := published.RunDate.Format("Matches 2006-01-02")

	exists, err := c.SheetExists(spreadsheetID, tabTitle)
	if err != nil {
		return fmt.Errorf("failed to check for existing tab: %w", err)
	}

	if !exists {
		if _, err := c.CreateSheet(spreadsheetID, tabTitle); err != nil {
			return fmt.Errorf("failed to create tab: %w", err)
		}
	} else {
		// Overwrite in full so removed matches don't linger
		if err := c.ClearRange(spreadsheetID, fmt.Sprintf("'%s'", tabTitle)); err != nil {
			return fmt.Errorf("failed to clear existing tab: %w", err)
		}
	}

	values := make([][]interface{}, 0, len(published.Rows)+1)
	values = append(values, []interface{}{"Student", "Soldier", "Score", "Rank", "Status"})
	for _, row := range published.Rows {
		values = append(values, []interface{}{
			row.StudentID,
			row.SoldierID,
			row.Score,
			row.Rank,
			row.Status,
		})
	}

	if err := c.UpdateRows(spreadsheetID, fmt.Sprintf("'%s'!A1", tabTitle), values); err != nil {
		return fmt.Errorf("failed to write match rows: %w", err)
	}

	return nil
}
