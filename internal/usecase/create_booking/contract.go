package create_booking

import (
	"context"
	"time"

	"github.com/pkamnoy/PVB-BookingService/internal/domain"
	"github.com/pkamnoy/PVB-BookingService/internal/integrations/propertyservice"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	ListOccupiedIntervals(ctx context.Context, roomID int64) ([]domain.OccupiedInterval, error)
}

// PolicyRepository интерфейс репозитория политик отмены
type PolicyRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.CancellationPolicy, error)
}

// PropertyServiceClient интерфейс клиента для PropertyService
type PropertyServiceClient interface {
	GetActiveRoom(ctx context.Context, roomID int64) (*propertyservice.Room, error)
}

// RulesService интерфейс сервиса правил и ограничений
type RulesService interface {
	ListActiveRules(ctx context.Context, asOf time.Time) ([]domain.PricingRule, error)
	ListRestrictions(ctx context.Context, asOf time.Time) ([]domain.Restriction, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
