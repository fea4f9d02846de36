package create_booking

import (
	"time"

	"github.com/pkamnoy/PVB-BookingService/internal/domain"
	createBooking "github.com/pkamnoy/PVB-BookingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	RoomID   int64   `json:"roomId"`
	CheckIn  string  `json:"checkIn"`  // "2026-12-24"
	CheckOut string  `json:"checkOut"` // "2026-12-27"
	Guests   int     `json:"guests"`
	PolicyID *int64  `json:"policyId,omitempty"`
	Notes    *string `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID            int64   `json:"id"`
	UserID        int64   `json:"userId"`
	RoomID        int64   `json:"roomId"`
	CheckIn       string  `json:"checkIn"`
	CheckOut      string  `json:"checkOut"`
	Nights        int     `json:"nights"`
	Guests        int     `json:"guests"`
	PolicyID      *int64  `json:"policyId,omitempty"`
	Status        string  `json:"status"`
	NightlyRate   float64 `json:"nightlyRate"`
	TotalPrice    float64 `json:"totalPrice"`
	DepositAmount float64 `json:"depositAmount"`
	Notes         *string `json:"notes,omitempty"`
	CreatedAt     string  `json:"createdAt"`
	UpdatedAt     string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// userID приходит из контекста аутентификации, а не из тела запроса
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) (*createBooking.Request, error) {
	checkIn, err := time.Parse(domain.DateFormat, r.CheckIn)
	if err != nil {
		return nil, err
	}

	checkOut, err := time.Parse(domain.DateFormat, r.CheckOut)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		UserID:   userID,
		RoomID:   r.RoomID,
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Guests:   r.Guests,
		PolicyID: r.PolicyID,
		Notes:    r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:            resp.ID,
		UserID:        resp.UserID,
		RoomID:        resp.RoomID,
		CheckIn:       resp.CheckIn,
		CheckOut:      resp.CheckOut,
		Nights:        resp.Nights,
		Guests:        resp.Guests,
		PolicyID:      resp.PolicyID,
		Status:        resp.Status,
		NightlyRate:   resp.NightlyRate,
		TotalPrice:    resp.TotalPrice,
		DepositAmount: resp.DepositAmount,
		Notes:         resp.Notes,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     resp.UpdatedAt.Format(time.RFC3339),
	}
}
