package intakeservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/waterlog-app/waterlog/internal/domain"
	"github.com/waterlog-app/waterlog/internal/timewindow"
)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	intakeRepo := NewMockRepo(ctrl)
	service := New(intakeRepo, map[string]string{"123": "坏狗狗", "alice": "Alice"})
	defer ctrl.Finish()
	return service, intakeRepo
}

func TestAddIntake(t *testing.T) {
	service, intakeRepo := NewMock(t)

	tests := []struct {
		name          string
		amount        float64
		prepareMock   func()
		expectedTotal float64
		expectedError error
	}{
		{
			name:   "Successful append",
			amount: 200,
			prepareMock: func() {
				intakeRepo.EXPECT().Append(gomock.Any(), 1, 200.0).Return(&domain.IntakeEvent{
					ID:           1,
					UserID:       1,
					Amount:       200,
					RunningTotal: 650,
					RecordedAt:   time.Now(),
				}, nil)
			},
			expectedTotal: 650,
		},
		{
			name:          "Negative amount rejected",
			amount:        -50,
			prepareMock:   func() {},
			expectedError: ErrNegativeAmount,
		},
		{
			name:   "Zero amount is valid",
			amount: 0,
			prepareMock: func() {
				intakeRepo.EXPECT().Append(gomock.Any(), 1, 0.0).Return(&domain.IntakeEvent{
					UserID:       1,
					RunningTotal: 650,
					RecordedAt:   time.Now(),
				}, nil)
			},
			expectedTotal: 650,
		},
		{
			name:   "Repo error",
			amount: 200,
			prepareMock: func() {
				intakeRepo.EXPECT().Append(gomock.Any(), 1, 200.0).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			total, err := service.AddIntake(context.Background(), 1, tt.amount)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Zero(t, total)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedTotal, total)
			}
		})
	}
}

func TestUserWindow(t *testing.T) {
	service, intakeRepo := NewMock(t)

	now := time.Now()
	inWindow := domain.IntakeEvent{ID: 2, UserID: 1, Amount: 150, RunningTotal: 350, RecordedAt: now}
	outOfWindow := domain.IntakeEvent{ID: 1, UserID: 1, Amount: 200, RunningTotal: 200, RecordedAt: now.AddDate(0, 0, -2)}

	tests := []struct {
		name           string
		period         timewindow.Period
		prepareMock    func()
		expectedEvents []domain.IntakeEvent
		expectedError  error
	}{
		{
			name:   "Day window keeps only today's events",
			period: timewindow.Day,
			prepareMock: func() {
				intakeRepo.EXPECT().FindByUserID(gomock.Any(), 1).Return([]domain.IntakeEvent{outOfWindow, inWindow}, nil)
			},
			expectedEvents: []domain.IntakeEvent{inWindow},
		},
		{
			name:   "No events gives empty slice",
			period: timewindow.Day,
			prepareMock: func() {
				intakeRepo.EXPECT().FindByUserID(gomock.Any(), 1).Return(nil, nil)
			},
			expectedEvents: []domain.IntakeEvent{},
		},
		{
			name:   "Repo error",
			period: timewindow.Day,
			prepareMock: func() {
				intakeRepo.EXPECT().FindByUserID(gomock.Any(), 1).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			events, err := service.UserWindow(context.Background(), 1, tt.period)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Nil(t, events)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedEvents, events)
			}
		})
	}
}

func TestAllUsersWindow(t *testing.T) {
	service, intakeRepo := NewMock(t)

	now := time.Now()
	event := domain.IntakeEvent{ID: 1, UserID: 1, Amount: 200, RunningTotal: 200, RecordedAt: now}

	tests := []struct {
		name           string
		prepareMock    func()
		expectedResult map[string][]domain.IntakeEvent
		expectedError  error
	}{
		{
			name: "Display names applied with raw-login fallback",
			prepareMock: func() {
				intakeRepo.EXPECT().FindAllInRange(gomock.Any(), gomock.Any(), gomock.Any()).Return(map[string][]domain.IntakeEvent{
					"123":    {event},
					"nobody": {event},
				}, nil)
			},
			expectedResult: map[string][]domain.IntakeEvent{
				"坏狗狗":    {event},
				"nobody": {event},
			},
		},
		{
			name: "No users in window",
			prepareMock: func() {
				intakeRepo.EXPECT().FindAllInRange(gomock.Any(), gomock.Any(), gomock.Any()).Return(map[string][]domain.IntakeEvent{}, nil)
			},
			expectedResult: map[string][]domain.IntakeEvent{},
		},
		{
			name: "Repo error",
			prepareMock: func() {
				intakeRepo.EXPECT().FindAllInRange(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			result, err := service.AllUsersWindow(context.Background(), timewindow.Day)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedResult, result)
			}
		})
	}
}

func TestTotals(t *testing.T) {
	service, intakeRepo := NewMock(t)

	now := time.Now()

	tests := []struct {
		name           string
		prepareMock    func()
		expectedTotals *domain.Totals
		expectedError  error
	}{
		{
			name: "No events at all",
			prepareMock: func() {
				intakeRepo.EXPECT().FindLastByUserID(gomock.Any(), 1).Return(nil, nil)
			},
			expectedTotals: &domain.Totals{Cumulative: 0, Today: 0},
		},
		{
			name: "All events today",
			prepareMock: func() {
				intakeRepo.EXPECT().FindLastByUserID(gomock.Any(), 1).Return(&domain.IntakeEvent{
					ID: 3, UserID: 1, Amount: 300, RunningTotal: 650, RecordedAt: now,
				}, nil)
				intakeRepo.EXPECT().FindLastBeforeByUserID(gomock.Any(), 1, gomock.Any()).Return(nil, nil)
			},
			expectedTotals: &domain.Totals{Cumulative: 650, Today: 650},
		},
		{
			name: "History split across days",
			prepareMock: func() {
				intakeRepo.EXPECT().FindLastByUserID(gomock.Any(), 1).Return(&domain.IntakeEvent{
					ID: 5, UserID: 1, Amount: 100, RunningTotal: 900, RecordedAt: now,
				}, nil)
				intakeRepo.EXPECT().FindLastBeforeByUserID(gomock.Any(), 1, gomock.Any()).Return(&domain.IntakeEvent{
					ID: 3, UserID: 1, Amount: 300, RunningTotal: 650, RecordedAt: now.AddDate(0, 0, -1),
				}, nil)
			},
			expectedTotals: &domain.Totals{Cumulative: 900, Today: 250},
		},
		{
			name: "Nothing recorded today",
			prepareMock: func() {
				last := &domain.IntakeEvent{ID: 3, UserID: 1, Amount: 300, RunningTotal: 650, RecordedAt: now.AddDate(0, 0, -1)}
				intakeRepo.EXPECT().FindLastByUserID(gomock.Any(), 1).Return(last, nil)
				intakeRepo.EXPECT().FindLastBeforeByUserID(gomock.Any(), 1, gomock.Any()).Return(last, nil)
			},
			expectedTotals: &domain.Totals{Cumulative: 650, Today: 0},
		},
		{
			name: "Repo error",
			prepareMock: func() {
				intakeRepo.EXPECT().FindLastByUserID(gomock.Any(), 1).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			totals, err := service.Totals(context.Background(), 1)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Nil(t, totals)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedTotals, totals)
				assert.LessOrEqual(t, totals.Today, totals.Cumulative)
			}
		})
	}
}
