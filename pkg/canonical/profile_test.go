package canonical

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Ramsey-B/aster/pkg/models"
)

func TestNewProfile_GPANormalization(t *testing.T) {
	tests := []struct {
		name  string
		gpa   string
		scale string
		want  float64
	}{
		{"4.0 scale", "3.6", GPAScale4, 0.9},
		{"5.0 scale", "4.0", GPAScale5, 0.8},
		{"10.0 scale", "8.5", GPAScale10, 0.85},
		{"percentage", "85", GPAScalePercentage, 0.85},
		{"above scale max clamps to 1", "4.5", GPAScale4, 1.0},
		{"unknown scale yields 0", "3.6", "7.0", 0.0},
		{"unparseable gpa yields 0", "three point six", GPAScale4, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewProfile(ProfileInput{GPA: tt.gpa, GPAScale: tt.scale})
			assert.InDelta(t, tt.want, p.GPA.Value, 1e-9)
		})
	}
}

func TestNewProfile_LanguageNormalization(t *testing.T) {
	tests := []struct {
		name  string
		test  string
		score string
		want  float64
	}{
		{"IELTS", TestIELTS, "7.2", 0.8},
		{"TOEFL", TestTOEFL, "96", 0.8},
		{"Duolingo", TestDuolingo, "128", 0.8},
		{"None forces zero even with a score", TestNone, "7.5", 0.0},
		{"unknown test yields 0", "PTE", "70", 0.0},
		{"score above max clamps to 1", TestIELTS, "9.5", 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewProfile(ProfileInput{EnglishTest: tt.test, TestScore: tt.score})
			assert.InDelta(t, tt.want, p.Language.Value, 1e-9)
			assert.Equal(t, tt.test, p.Language.Type)
		})
	}
}

func TestNewProfile_NeverFails(t *testing.T) {
	// Garbage in every field still yields a usable zero-valued profile
	p := NewProfile(ProfileInput{
		UserID:      "user-1",
		GPA:         "??",
		GPAScale:    "binary",
		EnglishTest: "Klingon",
		TestScore:   "lots",
		Budget:      "money is no object",
	})

	assert.Equal(t, "user-1", p.UserID)
	assert.Equal(t, 0.0, p.GPA.Value)
	assert.Equal(t, 0.0, p.Language.Value)
	assert.Equal(t, 0.0, p.Budget.MaxAnnual)
	assert.False(t, p.Budget.IsFlexible)
}

func TestNewProfile_BackgroundNormalization(t *testing.T) {
	t.Run("whitespace-only fields read as empty", func(t *testing.T) {
		p := NewProfile(ProfileInput{
			HighestQualification: "   ",
			FieldOfStudy:         " \t ",
			Citizenship:          "  ",
		})
		assert.Empty(t, p.Background.HighestQualification)
		assert.Empty(t, p.Background.FieldOfStudy)
		assert.Empty(t, p.Background.Citizenship)
	})

	t.Run("field of study is canonicalized", func(t *testing.T) {
		p := NewProfile(ProfileInput{FieldOfStudy: "  Computer   Science. "})
		assert.Equal(t, "computer science", p.Background.FieldOfStudy)
	})

	t.Run("citizenship keeps its casing", func(t *testing.T) {
		p := NewProfile(ProfileInput{Citizenship: " India "})
		assert.Equal(t, "India", p.Background.Citizenship)
	})
}

func TestNewProfileFromRecord(t *testing.T) {
	record := &models.Profile{
		UserID:             "user-2",
		GPA:                "3.2",
		GPAScale:           GPAScale4,
		EnglishTest:        TestIELTS,
		TestScore:          "6.5",
		Budget:             "25k+",
		PreferredCountries: `["Canada","United Kingdom"]`,
		Citizenship:        "India",
	}

	p := NewProfileFromRecord(record)
	assert.Equal(t, "user-2", p.UserID)
	assert.InDelta(t, 0.8, p.GPA.Value, 1e-9)
	assert.Equal(t, []string{"Canada", "United Kingdom"}, p.Preferences.PreferredCountries)
	assert.True(t, p.Budget.IsFlexible)
	assert.Equal(t, "India", p.Background.Citizenship)

	t.Run("malformed country json degrades to empty", func(t *testing.T) {
		record.PreferredCountries = "not json"
		p := NewProfileFromRecord(record)
		assert.Empty(t, p.Preferences.PreferredCountries)
	})
}
