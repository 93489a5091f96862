package cashflow

import (
	"github.com/nkosach/SLN-SalonService/pkg/dbmetrics"
)

// Переиспользуем интерфейс из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor
