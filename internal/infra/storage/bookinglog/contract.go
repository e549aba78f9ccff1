package bookinglog

import (
	"github.com/m04kA/SMC-ScheduleAssistant/pkg/dbmetrics"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor
