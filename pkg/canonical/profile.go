package canonical

import (
	"github.com/Ramsey-B/aster/pkg/models"
	"github.com/Ramsey-B/aster/pkg/normalizers"
)

// GPA scale names accepted by profile normalization.
const (
	GPAScale4          = "4.0"
	GPAScale5          = "5.0"
	GPAScale10         = "10.0"
	GPAScalePercentage = "Percentage"
)

// English test types accepted by profile normalization.
const (
	TestIELTS    = "IELTS"
	TestTOEFL    = "TOEFL"
	TestDuolingo = "Duolingo"
	TestNone     = "None"
)

var gpaScaleMax = map[string]float64{
	GPAScale4:          4.0,
	GPAScale5:          5.0,
	GPAScale10:         10.0,
	GPAScalePercentage: 100.0,
}

var testScoreMax = map[string]float64{
	TestIELTS:    9.0,
	TestTOEFL:    120.0,
	TestDuolingo: 160.0,
}

// GPA is a grade normalized to [0,1] alongside its source value and scale.
type GPA struct {
	Value float64 `json:"value"`
	Raw   float64 `json:"raw"`
	Scale string  `json:"scale"`
}

// Language is an English test result normalized to [0,1].
type Language struct {
	Type     string  `json:"type"`
	Value    float64 `json:"value"`
	RawScore float64 `json:"raw_score"`
}

// Budget is the parsed annual budget ceiling in USD.
type Budget struct {
	MaxAnnual  float64 `json:"max_annual"`
	IsFlexible bool    `json:"is_flexible"`
}

// Preferences holds the user's stated study preferences.
type Preferences struct {
	TargetDegree       string   `json:"target_degree"`
	PreferredCountries []string `json:"preferred_countries"`
}

// Background holds optional academic and citizenship context. Empty strings
// are valid; they only suppress bonus scoring.
type Background struct {
	HighestQualification string `json:"highest_qualification"`
	FieldOfStudy         string `json:"field_of_study"`
	Citizenship          string `json:"citizenship"`
}

// Profile is the normalized, unit-consistent representation of a user
// profile. It is rebuilt on every evaluation call and never persisted.
type Profile struct {
	UserID      string      `json:"user_id"`
	GPA         GPA         `json:"gpa"`
	Language    Language    `json:"language"`
	Budget      Budget      `json:"budget"`
	Preferences Preferences `json:"preferences"`
	Background  Background  `json:"background"`
}

// ProfileInput is the raw field set profile normalization consumes. All
// numeric fields are strings; unparseable values default to zero.
type ProfileInput struct {
	UserID               string
	GPA                  string
	GPAScale             string
	EnglishTest          string
	TestScore            string
	Budget               string
	TargetDegree         string
	PreferredCountries   []string
	HighestQualification string
	FieldOfStudy         string
	Citizenship          string
}

// NewProfile normalizes a raw profile. It never fails: GPA is divided by its
// scale maximum and clamped to [0,1] (unknown scale yields 0), the English
// score is divided by the test maximum, and an english test of "None" forces
// the language value to 0 even when a stray score was supplied. Background
// text runs through the named normalizers so whitespace-only fields read as
// empty and earn no bonus.
func NewProfile(in ProfileInput) Profile {
	rawGPA := parseOrZero(in.GPA)
	gpaValue := 0.0
	if max, ok := gpaScaleMax[in.GPAScale]; ok {
		gpaValue = clamp01(rawGPA / max)
	}

	rawScore := parseOrZero(in.TestScore)
	langValue := 0.0
	if in.EnglishTest != TestNone {
		if max, ok := testScoreMax[in.EnglishTest]; ok {
			langValue = clamp01(rawScore / max)
		}
	}

	maxAnnual, flexible := parseBudget(in.Budget)

	return Profile{
		UserID: in.UserID,
		GPA: GPA{
			Value: gpaValue,
			Raw:   rawGPA,
			Scale: in.GPAScale,
		},
		Language: Language{
			Type:     in.EnglishTest,
			Value:    langValue,
			RawScore: rawScore,
		},
		Budget: Budget{
			MaxAnnual:  maxAnnual,
			IsFlexible: flexible,
		},
		Preferences: Preferences{
			TargetDegree:       normalizers.ApplyChain(in.TargetDegree, "trim", "collapse_whitespace"),
			PreferredCountries: in.PreferredCountries,
		},
		Background: Background{
			HighestQualification: normalizers.ApplyChain(in.HighestQualification, "trim", "collapse_whitespace"),
			FieldOfStudy:         normalizers.Apply(in.FieldOfStudy, "nfield"),
			Citizenship:          normalizers.ApplyChain(in.Citizenship, "trim", "collapse_whitespace"),
		},
	}
}

// NewProfileFromRecord normalizes a persisted profile record. The stored
// preferred-countries JSON is decoded with a parse-or-empty policy.
func NewProfileFromRecord(record *models.Profile) Profile {
	return NewProfile(ProfileInput{
		UserID:               record.UserID,
		GPA:                  record.GPA,
		GPAScale:             record.GPAScale,
		EnglishTest:          record.EnglishTest,
		TestScore:            record.TestScore,
		Budget:               record.Budget,
		TargetDegree:         record.TargetDegree,
		PreferredCountries:   parseCountryList(record.PreferredCountries),
		HighestQualification: record.HighestQualification,
		FieldOfStudy:         record.FieldOfStudy,
		Citizenship:          record.Citizenship,
	})
}
