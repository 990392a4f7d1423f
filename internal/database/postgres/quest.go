package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/DungeonBot_Go/internal/domain"
)

// questColumns is the canonical column list scanned by scanQuest
const questColumns = `quest_id, title, description, quest_giver, location_given, active, created_at, updated_at, completed_at`

// QuestRepository implements the quest log repository for PostgreSQL
type QuestRepository struct {
	db *pgxpool.Pool
}

// NewQuestRepository creates a new QuestRepository
func NewQuestRepository(db *pgxpool.Pool) *QuestRepository {
	return &QuestRepository{db: db}
}

// CreateQuest inserts a new active quest and fills in its generated fields
func (r *QuestRepository) CreateQuest(ctx context.Context, quest *domain.Quest) error {
	query := `
		INSERT INTO quests (title, description, quest_giver, location_given, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, TRUE, NOW(), NOW())
		RETURNING quest_id, active, created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query,
		quest.Title, quest.Description, quest.QuestGiver, quest.LocationGiven,
	).Scan(&quest.ID, &quest.Active, &quest.CreatedAt, &quest.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrQuestAlreadyExists
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertQuest, err)
	}
	return nil
}

// isUniqueViolation reports whether err is a postgres unique constraint error
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == PgErrorCodeUniqueViolation
}

// GetQuestByID finds a quest by its numeric ID
func (r *QuestRepository) GetQuestByID(ctx context.Context, id int) (*domain.Quest, error) {
	query := `SELECT ` + questColumns + ` FROM quests WHERE quest_id = $1`

	quest, err := scanQuest(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrQuestNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetQuest, err)
	}
	return quest, nil
}

// GetQuestByTitle finds a quest by exact title, ignoring case
func (r *QuestRepository) GetQuestByTitle(ctx context.Context, title string) (*domain.Quest, error) {
	query := `SELECT ` + questColumns + ` FROM quests WHERE LOWER(title) = LOWER($1)`

	quest, err := scanQuest(r.db.QueryRow(ctx, query, title))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrQuestNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetQuestByTitle, err)
	}
	return quest, nil
}

// UpdateQuest writes the quest's text fields and refreshes updated_at.
// Active and completion state change only through CompleteQuest.
func (r *QuestRepository) UpdateQuest(ctx context.Context, quest *domain.Quest) error {
	query := `
		UPDATE quests
		SET title = $2, description = $3, quest_giver = $4, location_given = $5, updated_at = NOW()
		WHERE quest_id = $1
		RETURNING updated_at
	`
	err := r.db.QueryRow(ctx, query,
		quest.ID, quest.Title, quest.Description, quest.QuestGiver, quest.LocationGiven,
	).Scan(&quest.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrQuestNotFound
		}
		if isUniqueViolation(err) {
			return domain.ErrQuestAlreadyExists
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateQuest, err)
	}
	return nil
}

// CompleteQuest marks the quest inactive and stamps completed_at. The row is
// locked so a concurrent completion surfaces as ErrQuestAlreadyComplete
// instead of silently rewriting the timestamp.
func (r *QuestRepository) CompleteQuest(ctx context.Context, id int) (*domain.Quest, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	defer SafeRollback(ctx, tx)

	var active bool
	err = tx.QueryRow(ctx, `SELECT active FROM quests WHERE quest_id = $1 FOR UPDATE`, id).Scan(&active)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrQuestNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetQuest, err)
	}
	if !active {
		return nil, domain.ErrQuestAlreadyComplete
	}

	query := `
		UPDATE quests
		SET active = FALSE, completed_at = NOW(), updated_at = NOW()
		WHERE quest_id = $1
		RETURNING ` + questColumns

	quest, err := scanQuest(tx.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCompleteQuest, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}
	return quest, nil
}

// ListQuests returns quests ordered per the filter. A limit <= 0 returns
// every match.
func (r *QuestRepository) ListQuests(ctx context.Context, filter string, limit int) ([]domain.Quest, error) {
	query := `SELECT ` + questColumns + ` FROM quests`

	switch filter {
	case domain.QuestFilterUpdated:
		query += ` ORDER BY updated_at DESC`
	case domain.QuestFilterActive:
		query += ` WHERE active ORDER BY quest_id ASC`
	case domain.QuestFilterInactive:
		query += ` WHERE NOT active ORDER BY completed_at ASC`
	default:
		// newest, all, and anything unrecognized list newest-first
		query += ` ORDER BY created_at DESC`
	}

	if limit > 0 {
		query += fmt.Sprintf(` LIMIT %d`, limit)
	}

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryQuests, err)
	}
	defer rows.Close()

	var quests []domain.Quest
	for rows.Next() {
		quest, err := scanQuest(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToScanQuest, err)
		}
		quests = append(quests, *quest)
	}
	return quests, rows.Err()
}

// scanQuest maps one quest row to the domain model
func scanQuest(row pgx.Row) (*domain.Quest, error) {
	var quest domain.Quest
	err := row.Scan(
		&quest.ID,
		&quest.Title,
		&quest.Description,
		&quest.QuestGiver,
		&quest.LocationGiven,
		&quest.Active,
		&quest.CreatedAt,
		&quest.UpdatedAt,
		&quest.CompletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &quest, nil
}
