// Package matching implements the university-profile compatibility evaluator.
package matching

import (
	"strings"

	"github.com/Ramsey-B/aster/pkg/canonical"
	"github.com/Ramsey-B/aster/pkg/models"
	"github.com/Ramsey-B/aster/pkg/normalizers"
)

// MaxScore is the canonical factor total used to rescale raw scores for
// display: 4 academic + 3 budget + 2 country + 1 language + 2 bonus.
const MaxScore = 12.0

// BudgetTolerance is the band above a hard budget ceiling that still earns
// partial credit.
const BudgetTolerance = 1.15

// Factor names used in the structured breakdown.
const (
	FactorAcademic    = "academic_fit"
	FactorBudget      = "budget_fit"
	FactorCountry     = "country_preference"
	FactorLanguage    = "language_fit"
	FactorBackground  = "background_relevance"
	FactorCitizenship = "domestic_applicant"
)

// Evaluate computes the compatibility of one canonical profile with one
// canonical university. It is a pure function: deterministic, no I/O, and it
// never fails — upstream parse failures surface only as zero contributions.
//
// Factors are evaluated in a fixed order and each appends its display reason
// to WhyItFits; the structured Breakdown carries the same information with
// per-factor points.
func Evaluate(profile canonical.Profile, university canonical.University) models.MatchResult {
	result := models.MatchResult{
		WhyItFits: []string{},
		Breakdown: []models.FactorScore{},
	}

	addFactor(&result, academicFit(profile, university))
	addFactor(&result, budgetFit(profile, university))
	if factor, ok := countryPreference(profile, university); ok {
		addFactor(&result, factor)
	}
	addFactor(&result, languageFit(profile, university))
	for _, factor := range backgroundRelevance(profile) {
		addFactor(&result, factor)
	}
	if factor, ok := domesticApplicant(profile, university); ok {
		addFactor(&result, factor)
	}

	result.Category, result.AcceptanceChance = Classify(result.Score)
	return result
}

// addFactor accumulates a factor into the result. Factors without a display
// reason contribute points but no WhyItFits entry.
func addFactor(result *models.MatchResult, factor models.FactorScore) {
	result.Score += factor.Points
	result.Breakdown = append(result.Breakdown, factor)
	if factor.Reason != "" {
		result.WhyItFits = append(result.WhyItFits, factor.Reason)
	}
}

// Classify maps a raw score to its category and acceptance-chance labels.
func Classify(score float64) (models.MatchCategory, models.AcceptanceChance) {
	switch {
	case score >= 9:
		return models.MatchCategorySafe, models.AcceptanceChanceHigh
	case score >= 7:
		return models.MatchCategoryTarget, models.AcceptanceChanceMedium
	default:
		return models.MatchCategoryDream, models.AcceptanceChanceLow
	}
}

// Percent rescales a raw score to the 0-100 display percentage, clamped at
// 100. Every call path uses this single rescaler.
func Percent(score float64) float64 {
	pct := score / MaxScore * 100
	if pct > 100 {
		return 100
	}
	if pct < 0 {
		return 0
	}
	return pct
}

// academicFit compares the normalized GPA against the university's academic
// expectation, with graded credit for near misses.
func academicFit(profile canonical.Profile, university canonical.University) models.FactorScore {
	userAcad := profile.GPA.Value
	reqAcad := university.Difficulty.AcademicExpectation

	factor := models.FactorScore{Factor: FactorAcademic, Max: 4}
	switch {
	case userAcad >= reqAcad:
		factor.Points = 4
		factor.Reason = "Perfect Academic Match"
	case userAcad >= reqAcad-0.1:
		factor.Points = 3
		factor.Reason = "Good Academic Fit"
	case userAcad >= reqAcad-0.2:
		factor.Points = 2
		factor.Reason = "Ambitious Academic Reach"
	default:
		factor.Points = 0
		factor.Reason = "High Academic Barrier"
	}
	return factor
}

// budgetFit compares tuition against the budget ceiling. A flexible budget
// short-circuits the comparison entirely; a hard ceiling still earns partial
// credit inside the tolerance band.
func budgetFit(profile canonical.Profile, university canonical.University) models.FactorScore {
	cost := university.Costs.Tuition
	budget := profile.Budget

	factor := models.FactorScore{Factor: FactorBudget, Max: 3}
	switch {
	case budget.IsFlexible:
		factor.Points = 3
		factor.Reason = "Budget fit (Flexible)"
	case cost == 0 || cost <= budget.MaxAnnual:
		factor.Points = 3
		factor.Reason = "Within Budget"
	case cost <= budget.MaxAnnual*BudgetTolerance:
		factor.Points = 2
		factor.Reason = "Slightly Over Budget"
	default:
		factor.Points = 0
		factor.Reason = "Exceeds Budget"
	}
	return factor
}

// countryPreference awards binary credit when any preferred country is a
// substring of the university's country. A miss emits nothing at all: no
// points, no reason.
func countryPreference(profile canonical.Profile, university canonical.University) (models.FactorScore, bool) {
	uniCountry := normalizers.NormalizeCountry(university.Location.Country)
	for _, preferred := range profile.Preferences.PreferredCountries {
		preferred = normalizers.NormalizeCountry(preferred)
		if preferred == "" {
			continue
		}
		if strings.Contains(uniCountry, preferred) {
			return models.FactorScore{
				Factor: FactorCountry,
				Points: 2,
				Max:    2,
				Reason: "Location Match",
			}, true
		}
	}
	return models.FactorScore{}, false
}

// languageFit compares the normalized English score against the university's
// language expectation. A test type of "None" scores 0 unconditionally:
// absent test data cannot satisfy a language requirement.
func languageFit(profile canonical.Profile, university canonical.University) models.FactorScore {
	factor := models.FactorScore{Factor: FactorLanguage, Max: 1}
	if profile.Language.Type == canonical.TestNone {
		factor.Reason = "English Score Low"
		return factor
	}

	userLang := profile.Language.Value
	reqLang := university.Difficulty.LanguageExpectation
	switch {
	case userLang >= reqLang:
		factor.Points = 1
		factor.Reason = "English Score Met"
	case userLang >= reqLang-0.1:
		factor.Points = 0.5
		factor.Reason = "English Score Borderline"
	default:
		factor.Points = 0
		factor.Reason = "English Score Low"
	}
	return factor
}

// backgroundRelevance awards two independent half-point bonuses for a stated
// field of study and a stated highest qualification. Only the field-of-study
// half emits a display reason.
func backgroundRelevance(profile canonical.Profile) []models.FactorScore {
	factors := []models.FactorScore{}
	if profile.Background.FieldOfStudy != "" {
		factors = append(factors, models.FactorScore{
			Factor: FactorBackground,
			Points: 0.5,
			Max:    0.5,
			Reason: "Academic Background Aligned",
		})
	}
	if profile.Background.HighestQualification != "" {
		factors = append(factors, models.FactorScore{
			Factor: FactorBackground,
			Points: 0.5,
			Max:    0.5,
		})
	}
	return factors
}

// domesticApplicant awards a bonus when the stated citizenship and the
// university's country match by case-insensitive equality or containment in
// either direction. The permissive three-way check catches naming variants
// like "USA" against "United States of America".
func domesticApplicant(profile canonical.Profile, university canonical.University) (models.FactorScore, bool) {
	citizenship := normalizers.NormalizeCountry(profile.Background.Citizenship)
	country := normalizers.NormalizeCountry(university.Location.Country)
	if citizenship == "" || country == "" {
		return models.FactorScore{}, false
	}

	if citizenship == country || strings.Contains(country, citizenship) || strings.Contains(citizenship, country) {
		return models.FactorScore{
			Factor: FactorCitizenship,
			Points: 1,
			Max:    1,
			Reason: "Domestic Applicant (High Acceptance)",
		}, true
	}
	return models.FactorScore{}, false
}
