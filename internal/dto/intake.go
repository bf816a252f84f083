package dto

import "time"

type AddIntakeRequestDTO struct {
	Amount float64 `json:"amount" example:"200"`
}

type AddIntakeResponseDTO struct {
	Message string  `json:"message"`
	Total   float64 `json:"total" example:"650"`
}

type IntakeEventDTO struct {
	Time   time.Time `json:"time" example:"2024-12-15T09:30:00+03:00"`
	Amount float64   `json:"amount" example:"200"`
	Total  float64   `json:"total" example:"650"`
}

type UserDataResponseDTO struct {
	Data []IntakeEventDTO `json:"data"`
}

type TotalsResponseDTO struct {
	Total      float64 `json:"total" example:"650"`
	TodayTotal float64 `json:"today_total" example:"650"`
}
