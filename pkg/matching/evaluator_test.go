package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ramsey-B/aster/pkg/canonical"
	"github.com/Ramsey-B/aster/pkg/models"
)

func profileFixture(in canonical.ProfileInput) canonical.Profile {
	return canonical.NewProfile(in)
}

func universityFixture(record models.University) canonical.University {
	return canonical.NewUniversity(&record)
}

func TestEvaluate_AcademicFit(t *testing.T) {
	// rank 40 puts the academic expectation at 0.85
	uni := universityFixture(models.University{Rank: 40})

	tests := []struct {
		name       string
		gpa        string
		wantPoints float64
		wantReason string
	}{
		{"meets expectation", "3.6", 4, "Perfect Academic Match"},
		{"within 0.1", "3.2", 3, "Good Academic Fit"},
		{"within 0.2", "2.8", 2, "Ambitious Academic Reach"},
		{"too far below", "2.0", 0, "High Academic Barrier"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := profileFixture(canonical.ProfileInput{GPA: tt.gpa, GPAScale: canonical.GPAScale4})
			factor := academicFit(p, uni)
			assert.Equal(t, tt.wantPoints, factor.Points)
			assert.Equal(t, tt.wantReason, factor.Reason)
		})
	}
}

func TestEvaluate_BudgetFit(t *testing.T) {
	tests := []struct {
		name       string
		budget     string
		fees       string
		wantPoints float64
		wantReason string
	}{
		{"flexible budget always fits", "flexible", "$90k", 3, "Budget fit (Flexible)"},
		{"plus suffix is flexible", "20k+", "$90k", 3, "Budget fit (Flexible)"},
		{"within budget", "50k", "$45k", 3, "Within Budget"},
		{"unknown fees count as within", "50k", "", 3, "Within Budget"},
		{"within tolerance band", "20k", "$22,000", 2, "Slightly Over Budget"},
		{"over tolerance", "20k", "$30k", 0, "Exceeds Budget"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := profileFixture(canonical.ProfileInput{Budget: tt.budget})
			uni := universityFixture(models.University{Rank: 40, Fees: tt.fees})
			factor := budgetFit(p, uni)
			assert.Equal(t, tt.wantPoints, factor.Points)
			assert.Equal(t, tt.wantReason, factor.Reason)
		})
	}
}

func TestEvaluate_CountryPreference(t *testing.T) {
	uni := universityFixture(models.University{Rank: 40, Country: "United States of America"})

	t.Run("case-insensitive containment matches", func(t *testing.T) {
		p := profileFixture(canonical.ProfileInput{PreferredCountries: []string{"united states"}})
		factor, ok := countryPreference(p, uni)
		require.True(t, ok)
		assert.Equal(t, 2.0, factor.Points)
		assert.Equal(t, "Location Match", factor.Reason)
	})

	t.Run("miss contributes nothing", func(t *testing.T) {
		p := profileFixture(canonical.ProfileInput{PreferredCountries: []string{"Canada"}})
		_, ok := countryPreference(p, uni)
		assert.False(t, ok)
	})

	t.Run("empty preference entries are skipped", func(t *testing.T) {
		p := profileFixture(canonical.ProfileInput{PreferredCountries: []string{"", "  "}})
		_, ok := countryPreference(p, uni)
		assert.False(t, ok)
	})
}

func TestEvaluate_LanguageFit(t *testing.T) {
	// rank 40 puts the language expectation at 0.80
	uni := universityFixture(models.University{Rank: 40})

	tests := []struct {
		name        string
		englishTest string
		score       string
		wantPoints  float64
		wantReason  string
	}{
		{"meets expectation", canonical.TestIELTS, "7.5", 1, "English Score Met"},
		{"borderline within 0.1", canonical.TestIELTS, "6.5", 0.5, "English Score Borderline"},
		{"below borderline", canonical.TestIELTS, "5.5", 0, "English Score Low"},
		{"no test is always low", canonical.TestNone, "7.5", 0, "English Score Low"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := profileFixture(canonical.ProfileInput{EnglishTest: tt.englishTest, TestScore: tt.score})
			factor := languageFit(p, uni)
			assert.Equal(t, tt.wantPoints, factor.Points)
			assert.Equal(t, tt.wantReason, factor.Reason)
		})
	}
}

func TestEvaluate_DomesticApplicant(t *testing.T) {
	t.Run("exact match", func(t *testing.T) {
		p := profileFixture(canonical.ProfileInput{Citizenship: "Canada"})
		uni := universityFixture(models.University{Rank: 40, Country: "Canada"})
		factor, ok := domesticApplicant(p, uni)
		require.True(t, ok)
		assert.Equal(t, 1.0, factor.Points)
		assert.Equal(t, "Domestic Applicant (High Acceptance)", factor.Reason)
	})

	t.Run("containment either direction", func(t *testing.T) {
		p := profileFixture(canonical.ProfileInput{Citizenship: "United States"})
		uni := universityFixture(models.University{Rank: 40, Country: "United States of America"})
		_, ok := domesticApplicant(p, uni)
		assert.True(t, ok)
	})

	t.Run("empty citizenship never matches", func(t *testing.T) {
		p := profileFixture(canonical.ProfileInput{})
		uni := universityFixture(models.University{Rank: 40, Country: "Canada"})
		_, ok := domesticApplicant(p, uni)
		assert.False(t, ok)
	})

	t.Run("empty university country never matches", func(t *testing.T) {
		p := profileFixture(canonical.ProfileInput{Citizenship: "Canada"})
		uni := universityFixture(models.University{Rank: 40})
		_, ok := domesticApplicant(p, uni)
		assert.False(t, ok)
	})
}

func TestClassify(t *testing.T) {
	tests := []struct {
		score        float64
		wantCategory models.MatchCategory
		wantChance   models.AcceptanceChance
	}{
		{12, models.MatchCategorySafe, models.AcceptanceChanceHigh},
		{9, models.MatchCategorySafe, models.AcceptanceChanceHigh},
		{8.5, models.MatchCategoryTarget, models.AcceptanceChanceMedium},
		{7, models.MatchCategoryTarget, models.AcceptanceChanceMedium},
		{6.5, models.MatchCategoryDream, models.AcceptanceChanceLow},
		{0, models.MatchCategoryDream, models.AcceptanceChanceLow},
	}

	for _, tt := range tests {
		category, chance := Classify(tt.score)
		assert.Equal(t, tt.wantCategory, category, "score %v", tt.score)
		assert.Equal(t, tt.wantChance, chance, "score %v", tt.score)
	}
}

func TestPercent(t *testing.T) {
	assert.Equal(t, 100.0, Percent(MaxScore))
	assert.Equal(t, 50.0, Percent(6))
	assert.Equal(t, 0.0, Percent(0))
	assert.Equal(t, 100.0, Percent(MaxScore+1))
}

func TestEvaluate_EndToEnd(t *testing.T) {
	t.Run("strong profile is a safe match", func(t *testing.T) {
		p := profileFixture(canonical.ProfileInput{
			UserID:               "user-1",
			GPA:                  "3.9",
			GPAScale:             canonical.GPAScale4,
			EnglishTest:          canonical.TestIELTS,
			TestScore:            "8.0",
			Budget:               "Flexible",
			PreferredCountries:   []string{"United States"},
			HighestQualification: "Bachelor of Science",
			FieldOfStudy:         "Computer Science",
			Citizenship:          "United States",
		})
		uni := universityFixture(models.University{
			ID:      "uni-1",
			Name:    "State University",
			Rank:    40,
			Country: "United States",
			Fees:    "$55k",
		})

		result := Evaluate(p, uni)
		assert.Equal(t, 12.0, result.Score)
		assert.Equal(t, models.MatchCategorySafe, result.Category)
		assert.Equal(t, models.AcceptanceChanceHigh, result.AcceptanceChance)
		assert.Equal(t, []string{
			"Perfect Academic Match",
			"Budget fit (Flexible)",
			"Location Match",
			"English Score Met",
			"Academic Background Aligned",
			"Domestic Applicant (High Acceptance)",
		}, result.WhyItFits)
		// 7 breakdown entries: the qualification bonus has no display reason
		assert.Len(t, result.Breakdown, 7)
	})

	t.Run("domestic applicant without background history", func(t *testing.T) {
		// both background bonuses absent; the citizenship bonus alone
		// lands the profile at 11
		p := profileFixture(canonical.ProfileInput{
			GPA:                "3.8",
			GPAScale:           canonical.GPAScale4,
			EnglishTest:        canonical.TestIELTS,
			TestScore:          "7.5",
			Budget:             "50k",
			PreferredCountries: []string{"Canada"},
			Citizenship:        "Canada",
		})
		uni := universityFixture(models.University{Rank: 40, Country: "Canada", Fees: "$35k"})

		result := Evaluate(p, uni)
		assert.Equal(t, 11.0, result.Score)
		assert.Equal(t, models.MatchCategorySafe, result.Category)
		assert.Equal(t, models.AcceptanceChanceHigh, result.AcceptanceChance)
		assert.Equal(t, []string{
			"Perfect Academic Match",
			"Within Budget",
			"Location Match",
			"English Score Met",
			"Domestic Applicant (High Acceptance)",
		}, result.WhyItFits)
		assert.Len(t, result.Breakdown, 5)
	})

	t.Run("mid profile is a target match", func(t *testing.T) {
		p := profileFixture(canonical.ProfileInput{
			GPA:          "3.2",
			GPAScale:     canonical.GPAScale4,
			EnglishTest:  canonical.TestIELTS,
			TestScore:    "6.5",
			Budget:       "30k",
			FieldOfStudy: "Economics",
		})
		uni := universityFixture(models.University{Rank: 40, Country: "Australia", Fees: "$25k"})

		result := Evaluate(p, uni)
		assert.Equal(t, 7.0, result.Score)
		assert.Equal(t, models.MatchCategoryTarget, result.Category)
	})

	t.Run("weak profile against an elite school is a dream match", func(t *testing.T) {
		p := profileFixture(canonical.ProfileInput{
			GPA:         "2.8",
			GPAScale:    canonical.GPAScale4,
			EnglishTest: canonical.TestIELTS,
			TestScore:   "6.0",
			Budget:      "20k",
		})
		uni := universityFixture(models.University{Rank: 5, Country: "United Kingdom", Fees: "$60k"})

		result := Evaluate(p, uni)
		assert.Equal(t, 0.0, result.Score)
		assert.Equal(t, models.MatchCategoryDream, result.Category)
		assert.Equal(t, models.AcceptanceChanceLow, result.AcceptanceChance)
	})

	t.Run("evaluation is deterministic", func(t *testing.T) {
		p := profileFixture(canonical.ProfileInput{
			GPA: "3.5", GPAScale: canonical.GPAScale4,
			EnglishTest: canonical.TestIELTS, TestScore: "7.0",
			Budget: "40k", PreferredCountries: []string{"Germany"},
		})
		uni := universityFixture(models.University{Rank: 80, Country: "Germany", Fees: "€12k"})

		first := Evaluate(p, uni)
		second := Evaluate(p, uni)
		assert.Equal(t, first, second)
	})
}
