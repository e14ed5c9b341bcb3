package models

import (
	"encoding/json"
	"time"
)

// UnrankedSentinel marks universities with no usable global rank. Records
// ingested from external sources without a rank carry this value (or larger).
const UnrankedSentinel = 999

// University is a persisted university catalog record. Fees and acceptance
// rate are stored as display strings from the upstream sources ("$45k",
// "12%"); canonicalization parses them at evaluation time.
type University struct {
	ID             string          `json:"id" db:"id"`
	Name           string          `json:"name" db:"name"`
	Country        string          `json:"country" db:"country"`
	Location       string          `json:"location" db:"location"` // "Country, City"
	Rank           int             `json:"rank" db:"rank"`
	Fees           string          `json:"fees" db:"fees"`
	AcceptanceRate string          `json:"acceptance_rate" db:"acceptance_rate"`
	Expectations   json.RawMessage `json:"expectations,omitempty" db:"expectations"` // optional per-university difficulty overrides
	CreatedAt      time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at" db:"updated_at"`
	DeletedAt      *time.Time      `json:"deleted_at,omitempty" db:"deleted_at"`
}

// ExpectationOverrides is the shape of the optional expectations JSON on a
// university record. Either key may be present independently.
type ExpectationOverrides struct {
	AcademicExpectation *float64 `json:"academic_expectation,omitempty"`
	LanguageExpectation *float64 `json:"language_expectation,omitempty"`
}
