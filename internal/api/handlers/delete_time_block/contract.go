package delete_time_block

import (
	"context"
)

type ScheduleService interface {
	DeleteTimeBlock(ctx context.Context, salonID, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
