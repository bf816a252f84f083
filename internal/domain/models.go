package domain

import "time"

type User struct {
	ID           int       `db:"id"`
	Login        string    `db:"login"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

// IntakeEvent is a single immutable entry in a user's intake ledger.
// RunningTotal carries the cumulative sum of all amounts up to and
// including this event, so reads never re-sum the history.
type IntakeEvent struct {
	ID           int       `db:"id"`
	UserID       int       `db:"user_id"`
	Amount       float64   `db:"amount"`
	RunningTotal float64   `db:"running_total"`
	RecordedAt   time.Time `db:"recorded_at"`
}

type Totals struct {
	Cumulative float64
	Today      float64
}
