package canonical

import (
	"encoding/json"
	"strings"

	"github.com/Ramsey-B/aster/pkg/models"
)

// DefaultAcceptanceRate is used when a university's acceptance rate string
// cannot be parsed.
const DefaultAcceptanceRate = 10.0

// Difficulty is a [0,1] proxy for how competitive a university's admitted
// cohort is, either explicitly configured per university or inferred from
// global rank.
type Difficulty struct {
	AcceptanceRate      float64 `json:"acceptance_rate"`
	AcademicExpectation float64 `json:"academic_expectation"`
	LanguageExpectation float64 `json:"language_expectation"`
}

// Costs holds the parsed annual cost of attendance.
type Costs struct {
	Tuition float64 `json:"tuition"`
}

// Location is the university's parsed location.
type Location struct {
	Country string `json:"country"`
	City    string `json:"city"`
}

// University is the normalized representation of a university record.
type University struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Rank       int        `json:"rank"`
	Costs      Costs      `json:"costs"`
	Difficulty Difficulty `json:"difficulty"`
	Location   Location   `json:"location"`
}

// difficultyForRank maps a global rank to inferred expectation levels. Ranks
// at or beyond the unranked sentinel fall into the last band.
func difficultyForRank(rank int) (academic, language float64) {
	switch {
	case rank <= 10:
		return 0.92, 0.85
	case rank <= 50:
		return 0.85, 0.80
	case rank <= 150:
		return 0.75, 0.70
	case rank <= 500:
		return 0.65, 0.60
	default:
		return 0.50, 0.50
	}
}

// NewUniversity normalizes a raw university record. It never fails: fees
// parse with the money heuristic (0 on no digits), the acceptance rate
// defaults to DefaultAcceptanceRate, and difficulty expectations come from
// the record's explicit overrides when present (each key independently) or
// from the rank step table otherwise.
func NewUniversity(record *models.University) University {
	rank := record.Rank
	if rank <= 0 {
		rank = models.UnrankedSentinel
	}

	academic, language := difficultyForRank(rank)
	if len(record.Expectations) > 0 {
		var overrides models.ExpectationOverrides
		if err := json.Unmarshal(record.Expectations, &overrides); err == nil {
			if overrides.AcademicExpectation != nil {
				academic = *overrides.AcademicExpectation
			}
			if overrides.LanguageExpectation != nil {
				language = *overrides.LanguageExpectation
			}
		}
	}

	acceptanceRate, ok := parseRate(record.AcceptanceRate)
	if !ok {
		acceptanceRate = DefaultAcceptanceRate
	}

	return University{
		ID:   record.ID,
		Name: record.Name,
		Rank: rank,
		Costs: Costs{
			Tuition: parseMoney(record.Fees),
		},
		Difficulty: Difficulty{
			AcceptanceRate:      acceptanceRate,
			AcademicExpectation: academic,
			LanguageExpectation: language,
		},
		Location: parseLocation(record.Country, record.Location),
	}
}

// parseLocation splits a "Country, City" display string on the first comma.
// An explicit country column wins over the location string's country segment.
func parseLocation(country, location string) Location {
	parts := strings.SplitN(location, ",", 2)

	city := ""
	if len(parts) == 2 {
		city = strings.TrimSpace(parts[1])
	}

	if country == "" {
		country = strings.TrimSpace(parts[0])
	}

	return Location{Country: country, City: city}
}
