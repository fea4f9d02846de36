package quote_group_price

import (
	"context"
	"time"

	"github.com/pkamnoy/PVB-BookingService/internal/domain"
	"github.com/pkamnoy/PVB-BookingService/internal/integrations/propertyservice"
)

// PropertyServiceClient интерфейс клиента для PropertyService
type PropertyServiceClient interface {
	GetActiveRoom(ctx context.Context, roomID int64) (*propertyservice.Room, error)
}

// RulesService интерфейс сервиса правил и скидок
type RulesService interface {
	ListActiveRules(ctx context.Context, asOf time.Time) ([]domain.PricingRule, error)
	ListDiscountTiers(ctx context.Context) ([]domain.DiscountTier, error)
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
