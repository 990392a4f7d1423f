package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/DungeonBot_Go/internal/eventlog"
)

// eventColumns is the column list shared by the event queries, in scan order.
const eventColumns = "id, event_type, username, payload, metadata, created_at"

type eventLogRepository struct {
	db *pgxpool.Pool
}

// NewEventLogRepository creates a new PostgreSQL event log repository
func NewEventLogRepository(db *pgxpool.Pool) eventlog.Repository {
	return &eventLogRepository{db: db}
}

// LogEvent stores an event in the database
func (r *eventLogRepository) LogEvent(ctx context.Context, eventType string, username *string, payload, metadata map[string]interface{}) error {
	query := `
		INSERT INTO events (event_type, username, payload, metadata)
		VALUES ($1, $2, $3, $4)
	`

	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	var metadataJSON []byte
	if metadata != nil {
		metadataJSON, err = json.Marshal(metadata)
		if err != nil {
			return err
		}
	}

	_, err = r.db.Exec(ctx, query, eventType, username, payloadJSON, metadataJSON)
	return err
}

// GetEvents retrieves events matching the filter, newest first.
func (r *eventLogRepository) GetEvents(ctx context.Context, filter eventlog.EventFilter) ([]eventlog.Event, error) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "SELECT %s FROM events WHERE 1=1", eventColumns)

	var args []interface{}
	addClause := func(format string, arg interface{}) {
		args = append(args, arg)
		fmt.Fprintf(&sb, format, len(args))
	}

	if filter.Username != nil {
		addClause(" AND username = $%d", *filter.Username)
	}
	if filter.EventType != nil {
		addClause(" AND event_type = $%d", *filter.EventType)
	}
	if filter.Since != nil {
		addClause(" AND created_at >= $%d", *filter.Since)
	}
	if filter.Until != nil {
		addClause(" AND created_at <= $%d", *filter.Until)
	}

	sb.WriteString(" ORDER BY created_at DESC")

	if filter.Limit > 0 {
		addClause(" LIMIT $%d", filter.Limit)
	}

	rows, err := r.db.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEvents(rows)
}

// GetEventsByUsername retrieves events attributed to a specific user
func (r *eventLogRepository) GetEventsByUsername(ctx context.Context, username string, limit int) ([]eventlog.Event, error) {
	return r.GetEvents(ctx, eventlog.EventFilter{Username: &username, Limit: limit})
}

// GetEventsByType retrieves events of a specific type
func (r *eventLogRepository) GetEventsByType(ctx context.Context, eventType string, limit int) ([]eventlog.Event, error) {
	return r.GetEvents(ctx, eventlog.EventFilter{EventType: &eventType, Limit: limit})
}

// CleanupOldEvents deletes events older than retentionDays and reports how
// many rows went away.
func (r *eventLogRepository) CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error) {
	query := `
		DELETE FROM events
		WHERE created_at < NOW() - INTERVAL '1 day' * $1
	`

	result, err := r.db.Exec(ctx, query, retentionDays)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected(), nil
}

func scanEvents(rows pgx.Rows) ([]eventlog.Event, error) {
	var events []eventlog.Event

	for rows.Next() {
		var evt eventlog.Event
		var payloadJSON, metadataJSON []byte

		err := rows.Scan(
			&evt.ID,
			&evt.EventType,
			&evt.Username,
			&payloadJSON,
			&metadataJSON,
			&evt.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		if err := json.Unmarshal(payloadJSON, &evt.Payload); err != nil {
			return nil, err
		}
		// Metadata column is nullable
		if len(metadataJSON) > 0 {
			if err := json.Unmarshal(metadataJSON, &evt.Metadata); err != nil {
				return nil, err
			}
		}

		events = append(events, evt)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}
