package models

import "time"

// MatchCategory is the coarse admission-likelihood classification.
type MatchCategory string

const (
	MatchCategorySafe   MatchCategory = "SAFE"
	MatchCategoryTarget MatchCategory = "TARGET"
	MatchCategoryDream  MatchCategory = "DREAM"
)

// AcceptanceChance is the display label paired with each category.
type AcceptanceChance string

const (
	AcceptanceChanceHigh   AcceptanceChance = "High"
	AcceptanceChanceMedium AcceptanceChance = "Medium"
	AcceptanceChanceLow    AcceptanceChance = "Low"
)

// FactorScore is the structured per-factor breakdown of a match evaluation.
// Reason is empty for factors that do not emit a display string (for example
// a missed country preference).
type FactorScore struct {
	Factor string  `json:"factor"`
	Points float64 `json:"points"`
	Max    float64 `json:"max"`
	Reason string  `json:"reason,omitempty"`
}

// MatchResult is the output of evaluating one profile against one university.
// It is a value object; the evaluation itself is never persisted, only the
// row derived from it (MatchRecord).
type MatchResult struct {
	Score            float64          `json:"score"`
	Category         MatchCategory    `json:"match_category"`
	AcceptanceChance AcceptanceChance `json:"acceptance_chance"`
	WhyItFits        []string         `json:"why_it_fits"`
	Breakdown        []FactorScore    `json:"breakdown"`
}

// MatchRecord is the persisted, display-ready form of a MatchResult for one
// (user, university) pair. MatchScore is the 0-100 rescaled percentage.
type MatchRecord struct {
	ID               string           `json:"id"`
	UserID           string           `json:"user_id"`
	UniversityID     string           `json:"university_id"`
	RawScore         float64          `json:"raw_score"`
	MatchScore       float64          `json:"match_score"`
	Category         MatchCategory    `json:"match_category"`
	AcceptanceChance AcceptanceChance `json:"acceptance_chance"`
	WhyItFits        []string         `json:"why_it_fits"`
	Breakdown        []FactorScore    `json:"breakdown"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}
