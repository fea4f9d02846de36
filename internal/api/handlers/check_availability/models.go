package check_availability

import (
	"time"

	"github.com/pkamnoy/PVB-BookingService/internal/domain"
	checkAvailability "github.com/pkamnoy/PVB-BookingService/internal/usecase/check_availability"
	"github.com/pkamnoy/PVB-BookingService/pkg/types"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	RoomID           int64              `json:"roomId"`
	CheckIn          types.DateString   `json:"checkIn"`
	CheckOut         types.DateString   `json:"checkOut"`
	Nights           int                `json:"nights"`
	Available        bool               `json:"available"`
	UnavailableDates []types.DateString `json:"unavailableDates"`
	Reasons          map[string]string  `json:"reasons,omitempty"`
	StayViolation    string             `json:"stayViolation,omitempty"`
}

// parseDates парсит query параметры checkIn/checkOut
func parseDates(checkIn, checkOut string) (time.Time, time.Time, error) {
	in, err := time.Parse(domain.DateFormat, checkIn)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	out, err := time.Parse(domain.DateFormat, checkOut)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	return in, out, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkAvailability.Response) *AvailabilityResponse {
	return &AvailabilityResponse{
		RoomID:           resp.RoomID,
		CheckIn:          resp.CheckIn,
		CheckOut:         resp.CheckOut,
		Nights:           resp.Nights,
		Available:        resp.Available,
		UnavailableDates: resp.UnavailableDates,
		Reasons:          resp.Reasons,
		StayViolation:    resp.StayViolation,
	}
}
