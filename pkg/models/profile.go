package models

import "time"

// Profile is the persisted study profile for a user. Numeric fields are stored
// as the raw strings the onboarding flow collected ("4.0", "$45k", "IELTS");
// canonicalization happens at evaluation time.
type Profile struct {
	UserID               string     `json:"user_id" db:"user_id"`
	GPA                  string     `json:"gpa" db:"gpa"`
	GPAScale             string     `json:"gpa_scale" db:"gpa_scale"` // "4.0", "5.0", "10.0", "Percentage"
	EnglishTest          string     `json:"english_test" db:"english_test"`
	TestScore            string     `json:"test_score" db:"test_score"`
	Budget               string     `json:"budget" db:"budget"`
	TargetDegree         string     `json:"target_degree" db:"target_degree"`
	PreferredCountries   string     `json:"preferred_countries" db:"preferred_countries"` // JSON-encoded string array
	HighestQualification string     `json:"highest_qualification" db:"highest_qualification"`
	FieldOfStudy         string     `json:"field_of_study" db:"field_of_study"`
	Citizenship          string     `json:"citizenship" db:"citizenship"`
	CreatedAt            time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at" db:"updated_at"`
	DeletedAt            *time.Time `json:"deleted_at,omitempty" db:"deleted_at"`
}

// UpsertProfileRequest is the request to create or replace a user's profile.
type UpsertProfileRequest struct {
	GPA                  string   `json:"gpa" validate:"required"`
	GPAScale             string   `json:"gpa_scale" validate:"required"`
	EnglishTest          string   `json:"english_test"`
	TestScore            string   `json:"test_score"`
	Budget               string   `json:"budget"`
	TargetDegree         string   `json:"target_degree"`
	PreferredCountries   []string `json:"preferred_countries"`
	HighestQualification string   `json:"highest_qualification"`
	FieldOfStudy         string   `json:"field_of_study"`
	Citizenship          string   `json:"citizenship"`
}
