package services

import (
	"time"

	"github.com/google/uuid"

	"github.com/chayal-connect/matchmaker/pkg/core/matcher"
	"github.com/chayal-connect/matchmaker/pkg/core/model"
	"github.com/chayal-connect/matchmaker/pkg/db"
)

// toModelStudents converts stored student records to domain records
func toModelStudents(students []db.Student) []model.Student {
	result := make([]model.Student, len(students))
	for i, s := range students {
		result[i] = model.Student{
			ID:              s.ID,
			FirstName:       s.FirstName,
			LastName:        s.LastName,
			Gender:          model.ParseGender(s.Gender),
			City:            s.City,
			Language:        s.Language,
			Scholarship:     s.Scholarship,
			AssignmentCount: s.AssignmentCount,
		}
	}
	return result
}

// toModelSoldiers converts stored soldier records to domain records
func toModelSoldiers(soldiers []db.Soldier) []model.Soldier {
	result := make([]model.Soldier, len(soldiers))
	for i, s := range soldiers {
		soldier := model.Soldier{
			ID:                s.ID,
			FirstName:         s.FirstName,
			LastName:          s.LastName,
			Gender:            model.ParseGender(s.Gender),
			City:              s.City,
			Language:          s.Language,
			HasSpecialRequest: s.HasSpecialRequest,
		}
		// An empty stored preference means "no preference"; parsing it
		// through ParseGenderPreference would also yield any, but keep
		// the distinction explicit for round-tripping
		if s.PreferredGender != "" {
			soldier.PreferredGender = model.ParseGenderPreference(s.PreferredGender)
		}
		result[i] = soldier
	}
	return result
}

// toDBMatches converts engine matches to storable records, assigning
// fresh IDs and a shared creation timestamp
func toDBMatches(matches []matcher.Match, createdAt time.Time) []db.Match {
	result := make([]db.Match, len(matches))
	for i, m := range matches {
		result[i] = db.Match{
			ID:            uuid.New().String(),
			StudentID:     m.StudentID,
			SoldierID:     m.SoldierID,
			Score:         m.Score,
			Rank:          m.Rank,
			Status:        string(m.Status),
			GenderMatch:   m.Criteria.GenderMatch,
			LanguageMatch: m.Criteria.LanguageMatch,
			RegionMatch:   m.Criteria.RegionMatch,
			DistanceScore: m.Criteria.DistanceScore,
			CreatedAt:     createdAt,
		}
	}
	return result
}

// toMatcherMatches converts stored matches back to engine matches for
// re-summarizing
func toMatcherMatches(matches []db.Match) []matcher.Match {
	result := make([]matcher.Match, len(matches))
	for i, m := range matches {
		result[i] = matcher.Match{
			StudentID: m.StudentID,
			SoldierID: m.SoldierID,
			Score:     m.Score,
			Rank:      m.Rank,
			Status:    model.MatchStatus(m.Status),
			Criteria: matcher.Criteria{
				GenderMatch:   m.GenderMatch,
				LanguageMatch: m.LanguageMatch,
				RegionMatch:   m.RegionMatch,
				DistanceScore: m.DistanceScore,
			},
		}
	}
	return result
}
