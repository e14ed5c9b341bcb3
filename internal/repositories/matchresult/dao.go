package matchresult

import (
	"time"

	"github.com/Ramsey-B/aster/pkg/database"
	"github.com/Ramsey-B/aster/pkg/models"
)

// matchRecordRow is the database shape of a match record. The reason list and
// factor breakdown live in jsonb columns.
type matchRecordRow struct {
	ID               string                               `db:"id"`
	UserID           string                               `db:"user_id"`
	UniversityID     string                               `db:"university_id"`
	RawScore         float64                              `db:"raw_score"`
	MatchScore       float64                              `db:"match_score"`
	Category         models.MatchCategory                 `db:"match_category"`
	AcceptanceChance models.AcceptanceChance              `db:"acceptance_chance"`
	WhyItFits        database.JSONB[[]string]             `db:"why_it_fits"`
	Breakdown        database.JSONB[[]models.FactorScore] `db:"breakdown"`
	CreatedAt        time.Time                            `db:"created_at"`
	UpdatedAt        time.Time                            `db:"updated_at"`
}

func fromRecord(record *models.MatchRecord) matchRecordRow {
	return matchRecordRow{
		ID:               record.ID,
		UserID:           record.UserID,
		UniversityID:     record.UniversityID,
		RawScore:         record.RawScore,
		MatchScore:       record.MatchScore,
		Category:         record.Category,
		AcceptanceChance: record.AcceptanceChance,
		WhyItFits:        database.NewJSONB(record.WhyItFits),
		Breakdown:        database.NewJSONB(record.Breakdown),
		CreatedAt:        record.CreatedAt,
		UpdatedAt:        record.UpdatedAt,
	}
}

func (row matchRecordRow) toRecord() models.MatchRecord {
	return models.MatchRecord{
		ID:               row.ID,
		UserID:           row.UserID,
		UniversityID:     row.UniversityID,
		RawScore:         row.RawScore,
		MatchScore:       row.MatchScore,
		Category:         row.Category,
		AcceptanceChance: row.AcceptanceChance,
		WhyItFits:        row.WhyItFits.Data,
		Breakdown:        row.Breakdown.Data,
		CreatedAt:        row.CreatedAt,
		UpdatedAt:        row.UpdatedAt,
	}
}
