// Package events handles event emission for match evaluations
package events

import (
	"context"

	"github.com/Gobusters/ectologger"

	"github.com/Ramsey-B/aster/pkg/kafka"
	"github.com/Ramsey-B/aster/pkg/models"
	"github.com/Ramsey-B/aster/pkg/tracing"
)

// SchemaVersion is the current event schema version
const SchemaVersion = "1.0"

// EventTypeMatchEvaluated is emitted once per ranked (user, university) pair
const EventTypeMatchEvaluated = "match.evaluated"

// Emitter publishes match lifecycle events
type Emitter struct {
	producer *kafka.Producer
	logger   ectologger.Logger
}

// NewEmitter creates a new event emitter
func NewEmitter(producer *kafka.Producer, logger ectologger.Logger) *Emitter {
	return &Emitter{
		producer: producer,
		logger:   logger,
	}
}

// EmitMatchesEvaluated emits one match.evaluated event per persisted record.
// Emission is best-effort: a publish failure is logged but never fails the
// evaluation request that triggered it.
func (e *Emitter) EmitMatchesEvaluated(ctx context.Context, records []*models.MatchRecord) {
	ctx, span := tracing.StartSpan(ctx, "events.Emitter.EmitMatchesEvaluated")
	defer span.End()

	if e == nil || e.producer == nil || len(records) == 0 {
		return
	}

	matchEvents := make([]*kafka.MatchEvent, 0, len(records))
	for _, record := range records {
		matchEvents = append(matchEvents, &kafka.MatchEvent{
			EventType:        EventTypeMatchEvaluated,
			SchemaVersion:    SchemaVersion,
			UserID:           record.UserID,
			UniversityID:     record.UniversityID,
			RawScore:         record.RawScore,
			MatchScore:       record.MatchScore,
			Category:         string(record.Category),
			AcceptanceChance: string(record.AcceptanceChance),
		})
	}

	if err := e.producer.PublishMatchEvents(ctx, matchEvents); err != nil {
		e.logger.WithContext(ctx).WithError(err).Error("Failed to emit match.evaluated events")
	}
}
