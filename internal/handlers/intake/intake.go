package intake

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/waterlog-app/waterlog/internal/domain"
	"github.com/waterlog-app/waterlog/internal/dto"
	"github.com/waterlog-app/waterlog/internal/service/intakeservice"
	"github.com/waterlog-app/waterlog/internal/timewindow"
	"github.com/waterlog-app/waterlog/pkg/auth"
	"github.com/waterlog-app/waterlog/pkg/utils"
)

//go:generate mockgen -source=intake.go -destination=mock_service.go -package=intake

type Service interface {
	AddIntake(ctx context.Context, userID int, amount float64) (float64, error)
	UserWindow(ctx context.Context, userID int, period timewindow.Period) ([]domain.IntakeEvent, error)
	AllUsersWindow(ctx context.Context, period timewindow.Period) (map[string][]domain.IntakeEvent, error)
	Totals(ctx context.Context, userID int) (*domain.Totals, error)
}

type IntakeHandler struct {
	intakeService Service
}

func New(intakeService Service) *IntakeHandler {
	return &IntakeHandler{
		intakeService: intakeService,
	}
}

// AddIntake godoc
//
//	@Summary		Record an intake event
//	@Description	Append an intake event to the authenticated user's ledger and return the new running total
//	@Tags			Intake
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.AddIntakeRequestDTO	true	"Intake request body"
//	@Success		200		{object}	dto.AddIntakeResponseDTO
//	@Failure		400		{object}	utils.Response	"Negative amount"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/add_water [post]
func (h *IntakeHandler) AddIntake(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.AddIntakeRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	total, err := h.intakeService.AddIntake(r.Context(), userID, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, intakeservice.ErrNegativeAmount):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.AddIntakeResponseDTO{
		Message: "Intake recorded",
		Total:   total,
	})
}

// GetUserData godoc
//
//	@Summary		Get the user's events for a period
//	@Description	Return the authenticated user's intake events inside the day/week/month window
//	@Tags			Intake
//	@Produce		json
//	@Param			period	query		string	false	"day, week or month; anything else means day"
//	@Success		200		{object}	dto.UserDataResponseDTO
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/get_user_data [get]
func (h *IntakeHandler) GetUserData(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	period := timewindow.ParsePeriod(r.URL.Query().Get("period"))

	events, err := h.intakeService.UserWindow(r.Context(), userID, period)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.UserDataResponseDTO{
		Data: toEventDTOs(events),
	})
}

// GetAllUsersData godoc
//
//	@Summary		Get every user's events for a period
//	@Description	Return the windowed events of every user with at least one event in range, keyed by display name
//	@Tags			Intake
//	@Produce		json
//	@Param			period	query		string	false	"day, week or month; anything else means day"
//	@Success		200		{object}	map[string][]dto.IntakeEventDTO
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/get_all_users_data [get]
func (h *IntakeHandler) GetAllUsersData(w http.ResponseWriter, r *http.Request) {
	period := timewindow.ParsePeriod(r.URL.Query().Get("period"))

	byName, err := h.intakeService.AllUsersWindow(r.Context(), period)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make(map[string][]dto.IntakeEventDTO, len(byName))
	for name, events := range byName {
		response[name] = toEventDTOs(events)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetTotal godoc
//
//	@Summary		Get cumulative and today totals
//	@Description	Return the authenticated user's all-time running total and today's share of it
//	@Tags			Intake
//	@Produce		json
//	@Success		200	{object}	dto.TotalsResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/get_total [get]
func (h *IntakeHandler) GetTotal(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	totals, err := h.intakeService.Totals(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.TotalsResponseDTO{
		Total:      totals.Cumulative,
		TodayTotal: totals.Today,
	})
}

func toEventDTOs(events []domain.IntakeEvent) []dto.IntakeEventDTO {
	result := make([]dto.IntakeEventDTO, len(events))
	for i, event := range events {
		result[i] = dto.IntakeEventDTO{
			Time:   event.RecordedAt,
			Amount: event.Amount,
			Total:  event.RunningTotal,
		}
	}
	return result
}
