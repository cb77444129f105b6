package journal

import (
	"github.com/layananku/LSP-BookingGateway/pkg/dbmetrics"
)

// Переиспользуем интерфейс исполнителя запросов из dbmetrics
// Поддерживает *sql.DB и *dbmetrics.DB
type DBExecutor = dbmetrics.DBExecutor
