package intakeservice

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/waterlog-app/waterlog/internal/domain"
	"github.com/waterlog-app/waterlog/internal/timewindow"
)

//go:generate mockgen -source=intakeservice.go -destination=mock_intakeservice.go -package=intakeservice

var ErrNegativeAmount = errors.New("amount cannot be negative")

type Repo interface {
	Append(ctx context.Context, userID int, amount float64) (*domain.IntakeEvent, error)
	FindByUserID(ctx context.Context, userID int) ([]domain.IntakeEvent, error)
	FindAllInRange(ctx context.Context, from, to time.Time) (map[string][]domain.IntakeEvent, error)
	FindLastByUserID(ctx context.Context, userID int) (*domain.IntakeEvent, error)
	FindLastBeforeByUserID(ctx context.Context, userID int, cutoff time.Time) (*domain.IntakeEvent, error)
}

type Service struct {
	intakeRepo   Repo
	displayNames map[string]string
}

func New(intakeRepo Repo, displayNames map[string]string) *Service {
	return &Service{
		intakeRepo:   intakeRepo,
		displayNames: displayNames,
	}
}

// AddIntake appends an event to the user's ledger and returns the new
// running total.
func (s *Service) AddIntake(ctx context.Context, userID int, amount float64) (float64, error) {
	if amount < 0 {
		return 0, ErrNegativeAmount
	}
	event, err := s.intakeRepo.Append(ctx, userID, amount)
	if err != nil {
		zap.L().Error("failed to append intake event", zap.Error(err))
		return 0, err
	}
	return event.RunningTotal, nil
}

// UserWindow returns the user's events inside the window for the period,
// in insertion order. A user with nothing in the window gets an empty
// slice, not an error.
func (s *Service) UserWindow(ctx context.Context, userID int, period timewindow.Period) ([]domain.IntakeEvent, error) {
	window := timewindow.Resolve(time.Now(), period)

	events, err := s.intakeRepo.FindByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch intake events", zap.Error(err))
		return nil, err
	}

	filtered := make([]domain.IntakeEvent, 0, len(events))
	for _, event := range events {
		if window.Contains(event.RecordedAt) {
			filtered = append(filtered, event)
		}
	}
	return filtered, nil
}

// AllUsersWindow returns every user with at least one event in the
// window, keyed by display name. Logins without a display-name mapping
// fall back to the raw login.
func (s *Service) AllUsersWindow(ctx context.Context, period timewindow.Period) (map[string][]domain.IntakeEvent, error) {
	window := timewindow.Resolve(time.Now(), period)

	byLogin, err := s.intakeRepo.FindAllInRange(ctx, window.Start, window.End)
	if err != nil {
		zap.L().Error("failed to fetch intake events in range", zap.Error(err))
		return nil, err
	}

	result := make(map[string][]domain.IntakeEvent, len(byLogin))
	for login, events := range byLogin {
		name, ok := s.displayNames[login]
		if !ok {
			name = login
		}
		result[name] = events
	}
	return result, nil
}

// Totals derives the cumulative and today totals from running totals
// alone: cumulative is the last event's total, today is the difference
// against the last event recorded strictly before today's midnight.
// No history re-summation happens on this path.
func (s *Service) Totals(ctx context.Context, userID int) (*domain.Totals, error) {
	last, err := s.intakeRepo.FindLastByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch last intake event", zap.Error(err))
		return nil, err
	}
	if last == nil {
		return &domain.Totals{}, nil
	}

	dayStart := timewindow.Resolve(time.Now(), timewindow.Day).Start
	var beforeToday float64
	previous, err := s.intakeRepo.FindLastBeforeByUserID(ctx, userID, dayStart)
	if err != nil {
		zap.L().Error("failed to fetch pre-today intake event", zap.Error(err))
		return nil, err
	}
	if previous != nil {
		beforeToday = previous.RunningTotal
	}

	return &domain.Totals{
		Cumulative: last.RunningTotal,
		Today:      last.RunningTotal - beforeToday,
	}, nil
}
