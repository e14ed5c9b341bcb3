package integration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ramsey-B/aster/pkg/canonical"
	"github.com/Ramsey-B/aster/pkg/matching"
	"github.com/Ramsey-B/aster/pkg/models"
)

// catalog returns a small university catalog spanning the rank bands and a
// spread of costs, the way seeded data looks in a real environment.
func catalog() []models.University {
	return []models.University{
		{ID: "mit", Name: "MIT", Rank: 2, Country: "United States", Location: "United States, Cambridge", Fees: "$80k", AcceptanceRate: "4%"},
		{ID: "toronto", Name: "University of Toronto", Rank: 25, Country: "Canada", Location: "Canada, Toronto", Fees: "$45k", AcceptanceRate: "43%"},
		{ID: "tum", Name: "TU Munich", Rank: 40, Country: "Germany", Location: "Germany, Munich", Fees: "€3k", AcceptanceRate: "8%"},
		{ID: "unremarkable", Name: "Plains State College", Rank: 0, Country: "United States", Fees: "$18k", AcceptanceRate: ""},
	}
}

func TestScoringScenario_FullPipeline(t *testing.T) {
	record := &models.Profile{
		UserID:               "student-1",
		GPA:                  "3.7",
		GPAScale:             "4.0",
		EnglishTest:          "IELTS",
		TestScore:            "7.5",
		Budget:               "40k-50k",
		PreferredCountries:   `["Canada","Germany"]`,
		HighestQualification: "High School Diploma",
		FieldOfStudy:         "Computer Science",
		Citizenship:          "India",
	}

	profile := canonical.NewProfileFromRecord(record)
	ranked := matching.Rank(profile, catalog())
	require.Len(t, ranked, 4)

	t.Run("preferred affordable schools rank first", func(t *testing.T) {
		assert.Equal(t, "toronto", ranked[0].University.ID)
		assert.Equal(t, "tum", ranked[1].University.ID)
	})

	t.Run("elite school out of budget ranks last", func(t *testing.T) {
		assert.Equal(t, "mit", ranked[3].University.ID)
		assert.Equal(t, models.MatchCategoryDream, ranked[3].Result.Category)
	})

	t.Run("scores rescale to percentages", func(t *testing.T) {
		for _, m := range ranked {
			pct := matching.Percent(m.Result.Score)
			assert.GreaterOrEqual(t, pct, 0.0)
			assert.LessOrEqual(t, pct, 100.0)
		}
	})

	t.Run("categories align with chance labels", func(t *testing.T) {
		for _, m := range ranked {
			switch m.Result.Category {
			case models.MatchCategorySafe:
				assert.Equal(t, models.AcceptanceChanceHigh, m.Result.AcceptanceChance)
			case models.MatchCategoryTarget:
				assert.Equal(t, models.AcceptanceChanceMedium, m.Result.AcceptanceChance)
			case models.MatchCategoryDream:
				assert.Equal(t, models.AcceptanceChanceLow, m.Result.AcceptanceChance)
			}
		}
	})

	t.Run("breakdown points sum to the raw score", func(t *testing.T) {
		for _, m := range ranked {
			sum := 0.0
			for _, f := range m.Result.Breakdown {
				sum += f.Points
			}
			assert.InDelta(t, m.Result.Score, sum, 1e-9)
		}
	})
}

func TestScoringScenario_EmptyProfile(t *testing.T) {
	// Onboarding can save a nearly empty profile; evaluation must still work
	record := &models.Profile{UserID: "student-2"}

	profile := canonical.NewProfileFromRecord(record)
	ranked := matching.Rank(profile, catalog())
	require.Len(t, ranked, 4)

	for _, m := range ranked {
		assert.Equal(t, models.MatchCategoryDream, m.Result.Category)
	}
}
