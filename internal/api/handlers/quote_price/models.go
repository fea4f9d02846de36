package quote_price

import (
	"net/url"
	"strconv"
	"time"

	"github.com/pkamnoy/PVB-BookingService/internal/domain"
	quotePrice "github.com/pkamnoy/PVB-BookingService/internal/usecase/quote_price"
)

// PriceQuoteRequest HTTP request model (query параметры)
type PriceQuoteRequest struct {
	RoomID    int64
	CheckIn   string // "2026-12-24"
	CheckOut  string // "2026-12-27"
	BasePrice string // опциональное переопределение базовой цены
}

// AppliedRule примененное правило в HTTP ответе
type AppliedRule struct {
	RuleID      int64   `json:"ruleId"`
	Source      string  `json:"source"`
	Strategy    string  `json:"strategy"`
	Value       float64 `json:"value"`
	Date        string  `json:"date"`
	PriceBefore float64 `json:"priceBefore"`
	PriceAfter  float64 `json:"priceAfter"`
}

// NightPrice цена одной ночи в HTTP ответе
type NightPrice struct {
	Date  string  `json:"date"`
	Price float64 `json:"price"`
}

// PriceQuoteResponse HTTP response model
type PriceQuoteResponse struct {
	QuoteID            string        `json:"quoteId"`
	RoomID             int64         `json:"roomId"`
	RoomName           string        `json:"roomName"`
	CheckIn            string        `json:"checkIn"`
	CheckOut           string        `json:"checkOut"`
	Nights             int           `json:"nights"`
	BasePrice          float64       `json:"basePrice"`
	NightlyPrices      []NightPrice  `json:"nightlyPrices"`
	AppliedRules       []AppliedRule `json:"appliedRules"`
	FinalPricePerNight float64       `json:"finalPricePerNight"`
	TotalPrice         float64       `json:"totalPrice"`
	MinStay            int           `json:"minStay,omitempty"`
	AdvanceBookingDays int           `json:"advanceBookingDays,omitempty"`
}

// ParseQuery извлекает даты из query параметров
func ParseQuery(roomID int64, query url.Values) PriceQuoteRequest {
	return PriceQuoteRequest{
		RoomID:    roomID,
		CheckIn:   query.Get("checkIn"),
		CheckOut:  query.Get("checkOut"),
		BasePrice: query.Get("basePrice"),
	}
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *PriceQuoteRequest) ToUseCaseRequest() (*quotePrice.Request, error) {
	checkIn, err := time.Parse(domain.DateFormat, r.CheckIn)
	if err != nil {
		return nil, err
	}

	checkOut, err := time.Parse(domain.DateFormat, r.CheckOut)
	if err != nil {
		return nil, err
	}

	req := &quotePrice.Request{
		RoomID:   r.RoomID,
		CheckIn:  checkIn,
		CheckOut: checkOut,
	}

	if r.BasePrice != "" {
		basePrice, err := strconv.ParseFloat(r.BasePrice, 64)
		if err != nil {
			return nil, err
		}
		req.BasePrice = &basePrice
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *quotePrice.Response) *PriceQuoteResponse {
	out := &PriceQuoteResponse{
		QuoteID:            resp.QuoteID,
		RoomID:             resp.RoomID,
		RoomName:           resp.RoomName,
		CheckIn:            resp.CheckIn,
		CheckOut:           resp.CheckOut,
		Nights:             resp.Nights,
		BasePrice:          resp.BasePrice,
		NightlyPrices:      make([]NightPrice, 0, len(resp.NightlyPrices)),
		AppliedRules:       make([]AppliedRule, 0, len(resp.AppliedRules)),
		FinalPricePerNight: resp.FinalPricePerNight,
		TotalPrice:         resp.TotalPrice,
		MinStay:            resp.MinStay,
		AdvanceBookingDays: resp.AdvanceBookingDays,
	}

	for _, night := range resp.NightlyPrices {
		out.NightlyPrices = append(out.NightlyPrices, NightPrice{Date: night.Date, Price: night.Price})
	}

	for _, rule := range resp.AppliedRules {
		out.AppliedRules = append(out.AppliedRules, AppliedRule{
			RuleID:      rule.RuleID,
			Source:      rule.Source,
			Strategy:    rule.Strategy,
			Value:       rule.Value,
			Date:        rule.Date,
			PriceBefore: rule.PriceBefore,
			PriceAfter:  rule.PriceAfter,
		})
	}

	return out
}
