package get_catalog

import (
	"context"

	"github.com/layananku/LSP-BookingGateway/internal/integrations/catalogservice"
)

type CatalogServiceClient interface {
	GetDoctors(ctx context.Context) ([]catalogservice.Doctor, error)
	GetDurations(ctx context.Context) ([]catalogservice.DurationOption, error)
	GetWorkshops(ctx context.Context) ([]catalogservice.Workshop, error)
	GetDailyServices(ctx context.Context) ([]catalogservice.DailyServiceOffering, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
