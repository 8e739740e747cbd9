package schedule

import "github.com/m04kA/LashBookingService/pkg/dbmetrics"

// DBExecutor переиспользуем интерфейс из dbmetrics (поддерживает *dbmetrics.DB и транзакцию из контекста)
type DBExecutor = dbmetrics.DBExecutor
