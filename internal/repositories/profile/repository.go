package profile

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/Gobusters/ectologger"
	"github.com/huandu/go-sqlbuilder"

	"github.com/Ramsey-B/aster/pkg/database"
	"github.com/Ramsey-B/aster/pkg/models"
	"github.com/Ramsey-B/aster/pkg/tracing"
)

var columns = []string{
	"user_id", "gpa", "gpa_scale", "english_test", "test_score", "budget",
	"target_degree", "preferred_countries", "highest_qualification",
	"field_of_study", "citizenship", "created_at", "updated_at", "deleted_at",
}

// Repository handles study profile persistence
type Repository struct {
	db     database.DB
	logger ectologger.Logger
}

// NewRepository creates a new profile repository
func NewRepository(db database.DB, logger ectologger.Logger) *Repository {
	return &Repository{
		db:     db,
		logger: logger,
	}
}

// Get retrieves a profile by user ID
func (r *Repository) Get(ctx context.Context, userID string) (*models.Profile, error) {
	ctx, span := tracing.StartSpan(ctx, "profile.Repository.Get")
	defer span.End()

	sb := sqlbuilder.PostgreSQL.NewSelectBuilder()
	sb.Select(columns...)
	sb.From("profiles")
	sb.Where(
		sb.Equal("user_id", userID),
		sb.IsNull("deleted_at"),
	)

	query, args := sb.Build()
	var profile models.Profile
	if err := r.db.GetContext(ctx, &profile, query, args...); err != nil {
		if err.Error() == "sql: no rows in result set" {
			return nil, httperror.NewHTTPError(http.StatusNotFound, fmt.Sprintf("profile for user %s not found", userID))
		}
		r.logger.WithContext(ctx).WithError(err).WithFields(map[string]any{"user_id": userID}).Error("Failed to get profile")
		return nil, httperror.NewHTTPError(http.StatusInternalServerError, "failed to get profile")
	}

	return &profile, nil
}

// Upsert creates or replaces a user's profile
func (r *Repository) Upsert(ctx context.Context, userID string, req *models.UpsertProfileRequest) (*models.Profile, error) {
	ctx, span := tracing.StartSpan(ctx, "profile.Repository.Upsert")
	defer span.End()

	countriesJSON, _ := json.Marshal(req.PreferredCountries)
	now := time.Now().UTC()

	profile := &models.Profile{
		UserID:               userID,
		GPA:                  req.GPA,
		GPAScale:             req.GPAScale,
		EnglishTest:          req.EnglishTest,
		TestScore:            req.TestScore,
		Budget:               req.Budget,
		TargetDegree:         req.TargetDegree,
		PreferredCountries:   string(countriesJSON),
		HighestQualification: req.HighestQualification,
		FieldOfStudy:         req.FieldOfStudy,
		Citizenship:          req.Citizenship,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	sb := sqlbuilder.PostgreSQL.NewInsertBuilder()
	sb.InsertInto("profiles")
	sb.Cols("user_id", "gpa", "gpa_scale", "english_test", "test_score", "budget", "target_degree", "preferred_countries", "highest_qualification", "field_of_study", "citizenship", "created_at", "updated_at")
	sb.Values(profile.UserID, profile.GPA, profile.GPAScale, profile.EnglishTest, profile.TestScore, profile.Budget, profile.TargetDegree, profile.PreferredCountries, profile.HighestQualification, profile.FieldOfStudy, profile.Citizenship, profile.CreatedAt, profile.UpdatedAt)

	query, args := sb.Build()
	query += ` ON CONFLICT (user_id) DO UPDATE SET
		gpa = EXCLUDED.gpa,
		gpa_scale = EXCLUDED.gpa_scale,
		english_test = EXCLUDED.english_test,
		test_score = EXCLUDED.test_score,
		budget = EXCLUDED.budget,
		target_degree = EXCLUDED.target_degree,
		preferred_countries = EXCLUDED.preferred_countries,
		highest_qualification = EXCLUDED.highest_qualification,
		field_of_study = EXCLUDED.field_of_study,
		citizenship = EXCLUDED.citizenship,
		updated_at = EXCLUDED.updated_at,
		deleted_at = NULL`

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.WithContext(ctx).WithError(err).WithFields(map[string]any{"user_id": userID}).Error("Failed to upsert profile")
		return nil, httperror.NewHTTPError(http.StatusInternalServerError, "failed to save profile")
	}

	return profile, nil
}

// Delete soft-deletes a user's profile and removes their computed match
// records in the same transaction.
func (r *Repository) Delete(ctx context.Context, userID string) error {
	ctx, span := tracing.StartSpan(ctx, "profile.Repository.Delete")
	defer span.End()

	ctx, tx, err := r.db.GetTx(ctx, nil)
	if err != nil {
		return httperror.NewHTTPError(http.StatusInternalServerError, "failed to start transaction")
	}
	defer tx.Rollback(ctx)

	sb := sqlbuilder.PostgreSQL.NewUpdateBuilder()
	sb.Update("profiles")
	sb.Set(sb.Assign("deleted_at", time.Now().UTC()))
	sb.Where(
		sb.Equal("user_id", userID),
		sb.IsNull("deleted_at"),
	)

	query, args := sb.Build()
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		r.logger.WithContext(ctx).WithError(err).WithFields(map[string]any{"user_id": userID}).Error("Failed to delete profile")
		return httperror.NewHTTPError(http.StatusInternalServerError, "failed to delete profile")
	}

	del := sqlbuilder.PostgreSQL.NewDeleteBuilder()
	del.DeleteFrom("match_records")
	del.Where(del.Equal("user_id", userID))

	query, args = del.Build()
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		r.logger.WithContext(ctx).WithError(err).WithFields(map[string]any{"user_id": userID}).Error("Failed to delete match records for profile")
		return httperror.NewHTTPError(http.StatusInternalServerError, "failed to delete profile")
	}

	if err := tx.Commit(ctx); err != nil {
		return httperror.NewHTTPError(http.StatusInternalServerError, "failed to commit")
	}

	return nil
}
