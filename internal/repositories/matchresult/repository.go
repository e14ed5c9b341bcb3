package matchresult

import (
	"context"
	"net/http"
	"time"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/Gobusters/ectologger"
	"github.com/google/uuid"
	"github.com/huandu/go-sqlbuilder"

	"github.com/Ramsey-B/aster/pkg/database"
	"github.com/Ramsey-B/aster/pkg/models"
	"github.com/Ramsey-B/aster/pkg/tracing"
)

var columns = []string{
	"id", "user_id", "university_id", "raw_score", "match_score",
	"match_category", "acceptance_chance", "why_it_fits", "breakdown",
	"created_at", "updated_at",
}

// Repository handles persisted match records
type Repository struct {
	db     database.DB
	logger ectologger.Logger
}

// NewRepository creates a new match record repository
func NewRepository(db database.DB, logger ectologger.Logger) *Repository {
	return &Repository{
		db:     db,
		logger: logger,
	}
}

// UpsertBatch stores a ranked batch of match records, replacing any previous
// evaluation for each (user, university) pair
func (r *Repository) UpsertBatch(ctx context.Context, records []*models.MatchRecord) error {
	ctx, span := tracing.StartSpan(ctx, "matchresult.Repository.UpsertBatch")
	defer span.End()

	if len(records) == 0 {
		return nil
	}

	now := time.Now().UTC()
	ib := database.NewInsertBuilder().InsertInto("match_records").Cols(columns...)

	for _, record := range records {
		if record.ID == "" {
			record.ID = uuid.New().String()
		}
		record.CreatedAt = now
		record.UpdatedAt = now
		row := fromRecord(record)
		ib.Values(row.ID, row.UserID, row.UniversityID, row.RawScore, row.MatchScore, row.Category, row.AcceptanceChance, row.WhyItFits, row.Breakdown, row.CreatedAt, row.UpdatedAt)
	}

	ub := ib.OnConflict("user_id", "university_id")
	ub.Set(
		ub.Assign("raw_score", database.Excluded("raw_score")),
		ub.Assign("match_score", database.Excluded("match_score")),
		ub.Assign("match_category", database.Excluded("match_category")),
		ub.Assign("acceptance_chance", database.Excluded("acceptance_chance")),
		ub.Assign("why_it_fits", database.Excluded("why_it_fits")),
		ub.Assign("breakdown", database.Excluded("breakdown")),
		ub.Assign("updated_at", database.Excluded("updated_at")),
	)

	query, args := ib.Build()

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.WithContext(ctx).WithError(err).WithFields(map[string]any{"count": len(records)}).Error("Failed to upsert match records")
		return httperror.NewHTTPError(http.StatusInternalServerError, "failed to save match records")
	}

	r.logger.WithContext(ctx).WithFields(map[string]any{"count": len(records)}).Debug("Upserted match records")
	return nil
}

// ListByUser retrieves a user's persisted match records, best score first
func (r *Repository) ListByUser(ctx context.Context, userID string, limit int) ([]models.MatchRecord, error) {
	ctx, span := tracing.StartSpan(ctx, "matchresult.Repository.ListByUser")
	defer span.End()

	if limit < 1 || limit > 500 {
		limit = 100
	}

	sb := sqlbuilder.PostgreSQL.NewSelectBuilder()
	sb.Select(columns...)
	sb.From("match_records")
	sb.Where(sb.Equal("user_id", userID))
	sb.OrderBy("match_score DESC", "university_id ASC")
	sb.Limit(limit)

	query, args := sb.Build()
	var rows []matchRecordRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		r.logger.WithContext(ctx).WithError(err).WithFields(map[string]any{"user_id": userID}).Error("Failed to list match records")
		return nil, httperror.NewHTTPError(http.StatusInternalServerError, "failed to list match records")
	}

	records := make([]models.MatchRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, row.toRecord())
	}

	return records, nil
}

// DeleteByUser removes all of a user's match records (re-evaluation reset)
func (r *Repository) DeleteByUser(ctx context.Context, userID string) error {
	ctx, span := tracing.StartSpan(ctx, "matchresult.Repository.DeleteByUser")
	defer span.End()

	sb := sqlbuilder.PostgreSQL.NewDeleteBuilder()
	sb.DeleteFrom("match_records")
	sb.Where(sb.Equal("user_id", userID))

	query, args := sb.Build()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.WithContext(ctx).WithError(err).WithFields(map[string]any{"user_id": userID}).Error("Failed to delete match records")
		return httperror.NewHTTPError(http.StatusInternalServerError, "failed to delete match records")
	}

	return nil
}
