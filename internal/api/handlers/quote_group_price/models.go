package quote_group_price

import (
	"time"

	"github.com/pkamnoy/PVB-BookingService/internal/domain"
	quoteGroupPrice "github.com/pkamnoy/PVB-BookingService/internal/usecase/quote_group_price"
)

// RoomRequest одна позиция группового запроса
type RoomRequest struct {
	RoomID   int64 `json:"roomId"`
	Quantity int   `json:"quantity"`
}

// GroupQuoteRequest HTTP request model
type GroupQuoteRequest struct {
	CheckIn  string        `json:"checkIn"`  // "2026-12-24"
	CheckOut string        `json:"checkOut"` // "2026-12-27"
	Rooms    []RoomRequest `json:"rooms"`
}

// RoomSubtotal стоимость одной позиции в HTTP ответе
type RoomSubtotal struct {
	RoomID        int64   `json:"roomId"`
	RoomName      string  `json:"roomName"`
	Quantity      int     `json:"quantity"`
	PricePerNight float64 `json:"pricePerNight"`
	Subtotal      float64 `json:"subtotal"`
}

// AppliedTier примененный тир скидки в HTTP ответе
type AppliedTier struct {
	ID                 int64   `json:"id"`
	Name               string  `json:"name"`
	MinRooms           int     `json:"minRooms"`
	MaxRooms           *int    `json:"maxRooms,omitempty"`
	DiscountPercentage float64 `json:"discountPercentage"`
}

// GroupQuoteResponse HTTP response model
type GroupQuoteResponse struct {
	QuoteID        string         `json:"quoteId"`
	CheckIn        string         `json:"checkIn"`
	CheckOut       string         `json:"checkOut"`
	Nights         int            `json:"nights"`
	TotalRooms     int            `json:"totalRooms"`
	Rooms          []RoomSubtotal `json:"rooms"`
	Subtotal       float64        `json:"subtotal"`
	AppliedTier    *AppliedTier   `json:"appliedTier,omitempty"`
	DiscountAmount float64        `json:"discountAmount"`
	TaxableAmount  float64        `json:"taxableAmount"`
	TaxAmount      float64        `json:"taxAmount"`
	TotalAmount    float64        `json:"totalAmount"`
	DepositAmount  float64        `json:"depositAmount"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *GroupQuoteRequest) ToUseCaseRequest() (*quoteGroupPrice.Request, error) {
	checkIn, err := time.Parse(domain.DateFormat, r.CheckIn)
	if err != nil {
		return nil, err
	}

	checkOut, err := time.Parse(domain.DateFormat, r.CheckOut)
	if err != nil {
		return nil, err
	}

	rooms := make([]quoteGroupPrice.RoomRequest, 0, len(r.Rooms))
	for _, room := range r.Rooms {
		rooms = append(rooms, quoteGroupPrice.RoomRequest{
			RoomID:   room.RoomID,
			Quantity: room.Quantity,
		})
	}

	return &quoteGroupPrice.Request{
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Rooms:    rooms,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *quoteGroupPrice.Response) *GroupQuoteResponse {
	out := &GroupQuoteResponse{
		QuoteID:        resp.QuoteID,
		CheckIn:        resp.CheckIn,
		CheckOut:       resp.CheckOut,
		Nights:         resp.Nights,
		TotalRooms:     resp.TotalRooms,
		Rooms:          make([]RoomSubtotal, 0, len(resp.Rooms)),
		Subtotal:       resp.Subtotal,
		DiscountAmount: resp.DiscountAmount,
		TaxableAmount:  resp.TaxableAmount,
		TaxAmount:      resp.TaxAmount,
		TotalAmount:    resp.TotalAmount,
		DepositAmount:  resp.DepositAmount,
	}

	for _, room := range resp.Rooms {
		out.Rooms = append(out.Rooms, RoomSubtotal{
			RoomID:        room.RoomID,
			RoomName:      room.RoomName,
			Quantity:      room.Quantity,
			PricePerNight: room.PricePerNight,
			Subtotal:      room.Subtotal,
		})
	}

	if resp.AppliedTier != nil {
		out.AppliedTier = &AppliedTier{
			ID:                 resp.AppliedTier.ID,
			Name:               resp.AppliedTier.Name,
			MinRooms:           resp.AppliedTier.MinRooms,
			MaxRooms:           resp.AppliedTier.MaxRooms,
			DiscountPercentage: resp.AppliedTier.DiscountPercentage,
		}
	}

	return out
}
