package propertyservice

// Room модель номера из PropertyService
type Room struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	RoomType     string  `json:"room_type"` // villa, deluxe, standard
	BasePrice    float64 `json:"base_price"`
	MaxOccupancy int     `json:"max_occupancy"`
	IsActive     bool    `json:"is_active"`
}

// ErrorResponse модель ошибки от PropertyService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
