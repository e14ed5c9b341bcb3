package canonical

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Ramsey-B/aster/pkg/models"
)

func TestDifficultyForRank(t *testing.T) {
	tests := []struct {
		name         string
		rank         int
		wantAcademic float64
		wantLanguage float64
	}{
		{"top 10", 5, 0.92, 0.85},
		{"boundary 10", 10, 0.92, 0.85},
		{"top 50", 30, 0.85, 0.80},
		{"top 150", 120, 0.75, 0.70},
		{"top 500", 400, 0.65, 0.60},
		{"beyond 500", 501, 0.50, 0.50},
		{"unranked sentinel", models.UnrankedSentinel, 0.50, 0.50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			academic, language := difficultyForRank(tt.rank)
			assert.Equal(t, tt.wantAcademic, academic)
			assert.Equal(t, tt.wantLanguage, language)
		})
	}
}

func TestNewUniversity(t *testing.T) {
	t.Run("rank drives expectations", func(t *testing.T) {
		u := NewUniversity(&models.University{Rank: 8, Fees: "$52k", AcceptanceRate: "5%"})
		assert.Equal(t, 0.92, u.Difficulty.AcademicExpectation)
		assert.Equal(t, 0.85, u.Difficulty.LanguageExpectation)
		assert.Equal(t, 52000.0, u.Costs.Tuition)
		assert.Equal(t, 5.0, u.Difficulty.AcceptanceRate)
	})

	t.Run("zero rank falls to the unranked band", func(t *testing.T) {
		u := NewUniversity(&models.University{Rank: 0})
		assert.Equal(t, models.UnrankedSentinel, u.Rank)
		assert.Equal(t, 0.50, u.Difficulty.AcademicExpectation)
	})

	t.Run("unparseable acceptance rate uses the default", func(t *testing.T) {
		u := NewUniversity(&models.University{Rank: 20, AcceptanceRate: "varies"})
		assert.Equal(t, DefaultAcceptanceRate, u.Difficulty.AcceptanceRate)
	})

	t.Run("explicit zero acceptance rate is kept", func(t *testing.T) {
		u := NewUniversity(&models.University{Rank: 20, AcceptanceRate: "0%"})
		assert.Equal(t, 0.0, u.Difficulty.AcceptanceRate)
	})

	t.Run("overrides apply independently", func(t *testing.T) {
		u := NewUniversity(&models.University{
			Rank:         300,
			Expectations: json.RawMessage(`{"academic_expectation": 0.9}`),
		})
		// academic overridden, language still from the rank band
		assert.Equal(t, 0.9, u.Difficulty.AcademicExpectation)
		assert.Equal(t, 0.60, u.Difficulty.LanguageExpectation)
	})

	t.Run("malformed overrides fall back to rank", func(t *testing.T) {
		u := NewUniversity(&models.University{
			Rank:         300,
			Expectations: json.RawMessage(`{broken`),
		})
		assert.Equal(t, 0.65, u.Difficulty.AcademicExpectation)
	})
}

func TestParseLocation(t *testing.T) {
	t.Run("country column wins", func(t *testing.T) {
		loc := parseLocation("Canada", "Ontario, Toronto")
		assert.Equal(t, "Canada", loc.Country)
		assert.Equal(t, "Toronto", loc.City)
	})

	t.Run("location string supplies country when column empty", func(t *testing.T) {
		loc := parseLocation("", "Germany, Munich")
		assert.Equal(t, "Germany", loc.Country)
		assert.Equal(t, "Munich", loc.City)
	})

	t.Run("no comma means no city", func(t *testing.T) {
		loc := parseLocation("", "Singapore")
		assert.Equal(t, "Singapore", loc.Country)
		assert.Equal(t, "", loc.City)
	})
}
