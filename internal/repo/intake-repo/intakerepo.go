package intakerepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/waterlog-app/waterlog/internal/domain"
	"github.com/waterlog-app/waterlog/internal/pg"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

// Append inserts a new intake event carrying the previous running total
// plus amount. The owner's user row is locked for the duration of the
// transaction, so concurrent appends for one user are serialized and two
// writers can never read the same prior total. The transaction commits
// before Append returns.
func (r *Repository) Append(ctx context.Context, userID int, amount float64) (*domain.IntakeEvent, error) {
	var event domain.IntakeEvent
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		var id int
		err := r.db.QueryRow(ctx, "SELECT id FROM users WHERE id = $1 FOR UPDATE", userID).Scan(&id)
		if err != nil {
			zap.L().Error("can't lock user row", zap.Error(err))
			return err
		}

		var prevTotal float64
		err = r.db.QueryRow(ctx, "SELECT running_total FROM intake_events WHERE user_id = $1 ORDER BY id DESC LIMIT 1", userID).Scan(&prevTotal)
		if err != nil && !errors.Is(err, pgx.ErrNoRows) {
			zap.L().Error("can't read last running total", zap.Error(err))
			return err
		}

		event = domain.IntakeEvent{
			UserID:       userID,
			Amount:       amount,
			RunningTotal: prevTotal + amount,
			RecordedAt:   time.Now(),
		}
		query := `
			INSERT INTO intake_events (user_id, amount, running_total, recorded_at)
			VALUES ($1, $2, $3, $4)
			RETURNING id
		`
		err = r.db.QueryRow(ctx, query, event.UserID, event.Amount, event.RunningTotal, event.RecordedAt).Scan(&event.ID)
		if err != nil {
			zap.L().Error("can't save intake event", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID int) ([]domain.IntakeEvent, error) {
	query := `
        SELECT id, user_id, amount, running_total, recorded_at
        FROM intake_events
        WHERE user_id = $1
        ORDER BY id ASC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get intake events", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	return scanEvents(rows)
}

// FindAllInRange returns the events of every user that recorded at least
// one event inside [from, to], keyed by login and ordered by insertion
// within each user. Users with nothing in range are absent from the map.
func (r *Repository) FindAllInRange(ctx context.Context, from, to time.Time) (map[string][]domain.IntakeEvent, error) {
	query := `
        SELECT u.login, e.id, e.user_id, e.amount, e.running_total, e.recorded_at
        FROM intake_events e
        JOIN users u ON u.id = e.user_id
        WHERE e.recorded_at BETWEEN $1 AND $2
        ORDER BY e.user_id, e.id
    `
	rows, err := r.db.Query(ctx, query, from, to)
	if err != nil {
		zap.L().Error("can't get intake events in range", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	result := make(map[string][]domain.IntakeEvent)
	for rows.Next() {
		var login string
		var event domain.IntakeEvent
		err := rows.Scan(&login, &event.ID, &event.UserID, &event.Amount, &event.RunningTotal, &event.RecordedAt)
		if err != nil {
			zap.L().Error("can't scan intake event row", zap.Error(err))
			return nil, err
		}
		result[login] = append(result[login], event)
	}
	return result, nil
}

func (r *Repository) FindLastByUserID(ctx context.Context, userID int) (*domain.IntakeEvent, error) {
	query := `
        SELECT id, user_id, amount, running_total, recorded_at
        FROM intake_events
        WHERE user_id = $1
        ORDER BY id DESC
        LIMIT 1
    `
	return r.findOne(ctx, query, userID)
}

// FindLastBeforeByUserID returns the newest event recorded strictly
// before cutoff, or nil when the whole ledger is on or after it.
func (r *Repository) FindLastBeforeByUserID(ctx context.Context, userID int, cutoff time.Time) (*domain.IntakeEvent, error) {
	query := `
        SELECT id, user_id, amount, running_total, recorded_at
        FROM intake_events
        WHERE user_id = $1 AND recorded_at < $2
        ORDER BY id DESC
        LIMIT 1
    `
	return r.findOne(ctx, query, userID, cutoff)
}

func (r *Repository) findOne(ctx context.Context, query string, args ...interface{}) (*domain.IntakeEvent, error) {
	var event domain.IntakeEvent
	err := r.db.QueryRow(ctx, query, args...).Scan(&event.ID, &event.UserID, &event.Amount, &event.RunningTotal, &event.RecordedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find intake event", zap.Error(err))
		return nil, err
	}
	return &event, nil
}

func scanEvents(rows pgx.Rows) ([]domain.IntakeEvent, error) {
	var events []domain.IntakeEvent
	for rows.Next() {
		var event domain.IntakeEvent
		err := rows.Scan(&event.ID, &event.UserID, &event.Amount, &event.RunningTotal, &event.RecordedAt)
		if err != nil {
			zap.L().Error("can't scan intake event row", zap.Error(err))
			return nil, err
		}
		events = append(events, event)
	}
	return events, nil
}
