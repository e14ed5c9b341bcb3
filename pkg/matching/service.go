package matching

import (
	"context"
	"sort"

	"github.com/Gobusters/ectologger"

	"github.com/Ramsey-B/aster/internal/repositories/matchresult"
	"github.com/Ramsey-B/aster/pkg/canonical"
	"github.com/Ramsey-B/aster/pkg/events"
	"github.com/Ramsey-B/aster/pkg/models"
	"github.com/Ramsey-B/aster/pkg/tracing"
)

// RankedMatch pairs a university with its evaluation, ordered best first.
type RankedMatch struct {
	University models.University  `json:"university"`
	Result     models.MatchResult `json:"result"`
}

// Rank evaluates a profile against every university and returns the matches
// ordered by score descending. Ties keep the input order, so callers that
// pass universities sorted by rank get a stable, reproducible list.
func Rank(profile canonical.Profile, universities []models.University) []RankedMatch {
	matches := make([]RankedMatch, 0, len(universities))
	for i := range universities {
		result := Evaluate(profile, canonical.NewUniversity(&universities[i]))
		matches = append(matches, RankedMatch{
			University: universities[i],
			Result:     result,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Result.Score > matches[j].Result.Score
	})

	return matches
}

// Service runs batch evaluations and persists the outcome
type Service struct {
	logger  ectologger.Logger
	results *matchresult.Repository
	emitter *events.Emitter
}

// NewService creates a new matching service
func NewService(results *matchresult.Repository, emitter *events.Emitter, logger ectologger.Logger) *Service {
	return &Service{
		logger:  logger,
		results: results,
		emitter: emitter,
	}
}

// EvaluateBatch evaluates the profile against the given universities, stores
// one record per pair and emits match events. The ranked matches are returned
// for the caller to render.
func (s *Service) EvaluateBatch(ctx context.Context, profileRecord *models.Profile, universities []models.University) ([]RankedMatch, error) {
	ctx, span := tracing.StartSpan(ctx, "matching.Service.EvaluateBatch")
	defer span.End()

	profile := canonical.NewProfileFromRecord(profileRecord)
	matches := Rank(profile, universities)

	records := make([]*models.MatchRecord, 0, len(matches))
	for _, match := range matches {
		records = append(records, buildRecord(profileRecord.UserID, match))
	}

	if err := s.results.UpsertBatch(ctx, records); err != nil {
		return nil, err
	}

	s.emitter.EmitMatchesEvaluated(ctx, records)

	s.logger.WithContext(ctx).WithFields(map[string]any{
		"user_id": profileRecord.UserID,
		"count":   len(matches),
	}).Info("Evaluated university matches")

	return matches, nil
}

func buildRecord(userID string, match RankedMatch) *models.MatchRecord {
	return &models.MatchRecord{
		UserID:           userID,
		UniversityID:     match.University.ID,
		RawScore:         match.Result.Score,
		MatchScore:       Percent(match.Result.Score),
		Category:         match.Result.Category,
		AcceptanceChance: match.Result.AcceptanceChance,
		WhyItFits:        match.Result.WhyItFits,
		Breakdown:        match.Result.Breakdown,
	}
}
