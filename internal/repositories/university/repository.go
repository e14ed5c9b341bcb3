package university

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/Gobusters/ectologger"
	"github.com/huandu/go-sqlbuilder"

	"github.com/Ramsey-B/aster/pkg/database"
	"github.com/Ramsey-B/aster/pkg/models"
	"github.com/Ramsey-B/aster/pkg/normalizers"
	"github.com/Ramsey-B/aster/pkg/tracing"
)

var columns = []string{
	"id", "name", "country", "location", "rank", "fees", "acceptance_rate",
	"expectations", "created_at", "updated_at", "deleted_at",
}

// Repository handles university catalog reads
type Repository struct {
	db     database.DB
	logger ectologger.Logger
}

// NewRepository creates a new university repository
func NewRepository(db database.DB, logger ectologger.Logger) *Repository {
	return &Repository{
		db:     db,
		logger: logger,
	}
}

// Get retrieves a university by ID
func (r *Repository) Get(ctx context.Context, id string) (*models.University, error) {
	ctx, span := tracing.StartSpan(ctx, "university.Repository.Get")
	defer span.End()

	sb := sqlbuilder.PostgreSQL.NewSelectBuilder()
	sb.Select(columns...)
	sb.From("universities")
	sb.Where(
		sb.Equal("id", id),
		sb.IsNull("deleted_at"),
	)

	query, args := sb.Build()
	var university models.University
	if err := r.db.GetContext(ctx, &university, query, args...); err != nil {
		if err.Error() == "sql: no rows in result set" {
			return nil, httperror.NewHTTPError(http.StatusNotFound, fmt.Sprintf("university %s not found", id))
		}
		r.logger.WithContext(ctx).WithError(err).WithFields(map[string]any{"university_id": id}).Error("Failed to get university")
		return nil, httperror.NewHTTPError(http.StatusInternalServerError, "failed to get university")
	}

	return &university, nil
}

// List retrieves universities ordered by rank, optionally filtered by country
func (r *Repository) List(ctx context.Context, country string, limit, offset int) ([]models.University, error) {
	ctx, span := tracing.StartSpan(ctx, "university.Repository.List")
	defer span.End()

	if limit < 1 || limit > 500 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	// "Canada," and " canada " filter the same rows
	country = normalizers.Apply(country, "ncountry")

	sb := sqlbuilder.PostgreSQL.NewSelectBuilder()
	sb.Select(columns...)
	sb.From("universities")
	sb.Where(sb.IsNull("deleted_at"))
	if country != "" {
		sb.Where(sb.ILike("country", "%"+country+"%"))
	}
	sb.OrderBy("rank ASC", "name ASC")
	sb.Limit(limit)
	sb.Offset(offset)

	query, args := sb.Build()
	var universities []models.University
	if err := r.db.SelectContext(ctx, &universities, query, args...); err != nil {
		r.logger.WithContext(ctx).WithError(err).Error("Failed to list universities")
		return nil, httperror.NewHTTPError(http.StatusInternalServerError, "failed to list universities")
	}

	return universities, nil
}

// ListByIDs retrieves a specific set of universities
func (r *Repository) ListByIDs(ctx context.Context, ids []string) ([]models.University, error) {
	ctx, span := tracing.StartSpan(ctx, "university.Repository.ListByIDs")
	defer span.End()

	if len(ids) == 0 {
		return []models.University{}, nil
	}

	args := make([]any, 0, len(ids))
	for _, id := range ids {
		args = append(args, id)
	}

	sb := sqlbuilder.PostgreSQL.NewSelectBuilder()
	sb.Select(columns...)
	sb.From("universities")
	sb.Where(
		sb.In("id", args...),
		sb.IsNull("deleted_at"),
	)
	sb.OrderBy("rank ASC")

	query, sqlArgs := sb.Build()
	var universities []models.University
	if err := r.db.SelectContext(ctx, &universities, query, sqlArgs...); err != nil {
		r.logger.WithContext(ctx).WithError(err).WithFields(map[string]any{"id_count": len(ids)}).Error("Failed to list universities by ids")
		return nil, httperror.NewHTTPError(http.StatusInternalServerError, "failed to list universities")
	}

	return universities, nil
}
