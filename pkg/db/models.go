package db

import "time"

// Student represents a student/volunteer record as stored
type Student struct {
	ID              string
	FirstName       string
	LastName        string
	Gender          string
	City            string
	Language        string
	Scholarship     bool
	AssignmentCount int
}

// Soldier represents a soldier record as stored
type Soldier struct {
	ID                string
	FirstName         string
	LastName          string
	Gender            string
	City              string
	Language          string
	PreferredGender   string
	HasSpecialRequest bool
}

// Match represents a persisted match assignment.
// Criteria booleans are stored flat so reviewers can filter on them.
type Match struct {
	ID            string
	StudentID     string
	SoldierID     string
	Score         int
	Rank          int
	Status        string
	GenderMatch   bool
	LanguageMatch bool
	RegionMatch   bool
	DistanceScore int
	CreatedAt     time.Time
}

// LanguageCode is a minted language code mapping persisted so unseen
// language strings keep resolving to the same code across runs
type LanguageCode struct {
	Text string
	Code string
}
