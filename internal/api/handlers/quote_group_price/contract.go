package quote_group_price

import (
	"context"

	quoteGroupPrice "github.com/pkamnoy/PVB-BookingService/internal/usecase/quote_group_price"
)

type QuoteGroupPriceUseCase interface {
	Execute(ctx context.Context, req *quoteGroupPrice.Request) (*quoteGroupPrice.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
