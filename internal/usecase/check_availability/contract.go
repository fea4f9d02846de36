package check_availability

import (
	"context"
	"time"

	"github.com/pkamnoy/PVB-BookingService/internal/domain"
	"github.com/pkamnoy/PVB-BookingService/internal/integrations/propertyservice"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	ListOccupiedIntervals(ctx context.Context, roomID int64) ([]domain.OccupiedInterval, error)
}

// PropertyServiceClient интерфейс клиента для PropertyService
type PropertyServiceClient interface {
	GetActiveRoom(ctx context.Context, roomID int64) (*propertyservice.Room, error)
}

// RulesService интерфейс сервиса ограничений доступности
type RulesService interface {
	ListRestrictions(ctx context.Context, asOf time.Time) ([]domain.Restriction, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
