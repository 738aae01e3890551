package model

// Gender of a student or soldier as recorded at intake
type Gender string

const (
	GenderMale    Gender = "male"
	GenderFemale  Gender = "female"
	GenderUnknown Gender = ""
)

// ParseGender maps free-text gender values to a Gender.
// Unrecognized values map to GenderUnknown rather than failing.
func ParseGender(s string) Gender {
	switch s {
	case "male", "Male", "m", "M", "זכר":
		return GenderMale
	case "female", "Female", "f", "F", "נקבה":
		return GenderFemale
	default:
		return GenderUnknown
	}
}

// GenderPreference is a soldier's optional preference for the assigned student
type GenderPreference string

const (
	PreferenceMale   GenderPreference = "male"
	PreferenceFemale GenderPreference = "female"
	PreferenceAny    GenderPreference = "any"
)

// ParseGenderPreference maps free-text preference values to a GenderPreference.
// Absent or unrecognized values mean no preference.
func ParseGenderPreference(s string) GenderPreference {
	switch s {
	case "male", "Male", "m", "M":
		return PreferenceMale
	case "female", "Female", "f", "F":
		return PreferenceFemale
	default:
		return PreferenceAny
	}
}

// MatchStatus is the approval lifecycle state of a match.
// The matching engine always produces StatusSuggested; approval and
// rejection are external review actions.
type MatchStatus string

const (
	StatusSuggested MatchStatus = "suggested"
	StatusApproved  MatchStatus = "approved"
	StatusRejected  MatchStatus = "rejected"
)

func (s MatchStatus) IsValid() bool {
	return s == StatusSuggested || s == StatusApproved || s == StatusRejected
}

// Student represents a volunteer who can host soldiers
type Student struct {
	ID          string
	FirstName   string
	LastName    string
	Gender      Gender
	City        string
	Language    string
	Scholarship bool
	// AssignmentCount is the number of soldiers already committed to this
	// student from previous approved work, before a matching run starts.
	AssignmentCount int
}

// MaxCapacity returns how many soldiers the student can host.
// Scholarship students carry a higher cap.
func (s Student) MaxCapacity() int {
	if s.Scholarship {
		return 4
	}
	return 2
}

// AvailableSlots returns the remaining advisory capacity, never negative.
func (s Student) AvailableSlots() int {
	return max(s.MaxCapacity()-s.AssignmentCount, 0)
}

// Soldier represents a soldier needing up to two ranked student matches
type Soldier struct {
	ID                string
	FirstName         string
	LastName          string
	Gender            Gender
	City              string
	Language          string
	PreferredGender   GenderPreference
	HasSpecialRequest bool
}
