package get_policy

import (
	"context"

	"github.com/pkamnoy/PVB-BookingService/internal/service/bookings/models"
)

type BookingService interface {
	GetPolicy(ctx context.Context, policyID int64) (*models.PolicyResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
