package matcher

import "github.com/chayal-connect/matchmaker/pkg/core/model"

// Base values for the gender/language decision table. The distance score
// is always the continuous input: a pair loses (100 - distance) points
// from the base of whichever row it lands in.
// A full gender+language match scores the raw distance score.
const (
	baseLanguageOnly = 70 // language matches, gender preference missed
	baseGenderOnly   = 60 // gender preference matches, languages differ
	baseNoMatch      = 30 // neither matches
	minimumScore     = 1  // every scored pair stays a viable candidate
)

// Score computes the confidence score and criteria for one
// (student, soldier) pair. Pure: no state is read or written beyond the
// injected resolvers, and missing attributes degrade the score instead
// of failing.
func (e *Engine) Score(student model.Student, soldier model.Soldier) (int, Criteria) {
	genderMatch := genderPreferenceMatch(student.Gender, soldier.PreferredGender)

	studentCode := e.languages.Resolve(student.Language)
	soldierCode := e.languages.Resolve(soldier.Language)
	languageMatch := e.languages.Match(studentCode, soldierCode)

	distanceScore := e.distance.DistanceScore(student.City, soldier.City)

	studentRegion := e.distance.Region(student.City)
	soldierRegion := e.distance.Region(soldier.City)
	regionMatch := studentRegion != "" && studentRegion == soldierRegion

	var score int
	switch {
	case genderMatch && languageMatch:
		score = distanceScore
	case !genderMatch && languageMatch:
		score = baseLanguageOnly - (100 - distanceScore)
	case genderMatch && !languageMatch:
		score = baseGenderOnly - (100 - distanceScore)
	default:
		score = baseNoMatch - (100 - distanceScore)
	}

	if score < minimumScore {
		score = minimumScore
	}

	return score, Criteria{
		GenderMatch:   genderMatch,
		LanguageMatch: languageMatch,
		RegionMatch:   regionMatch,
		DistanceScore: distanceScore,
	}
}

// genderPreferenceMatch reports whether a student satisfies a soldier's
// gender preference. No preference always matches; a specific preference
// requires the student's gender to be known and equal.
func genderPreferenceMatch(studentGender model.Gender, preference model.GenderPreference) bool {
	if preference == "" || preference == model.PreferenceAny {
		return true
	}
	if studentGender == model.GenderUnknown {
		return false
	}
	return string(studentGender) == string(preference)
}
